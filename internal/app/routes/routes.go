package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/controllers"
	"github.com/anvesh/placementcell/internal/middleware"
	"github.com/anvesh/placementcell/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	driveController *controllers.DriveController,
	applicationController *controllers.ApplicationController,
	shortlistController *controllers.ShortlistController,
	notificationController *controllers.NotificationController,
	queryController *controllers.QueryController,
	analyticsController *controllers.AnalyticsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/admin/login", authController.AdminLogin)
		authGroup.POST("/reset-password", authController.ResetPassword)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	studentOnly := authenticated.Group("")
	studentOnly.Use(authMiddleware.RoleRequired(auth.RoleStudent))
	{
		studentOnly.GET("/students/me", studentController.GetProfile)
		studentOnly.PUT("/students/me", studentController.UpdateProfile)
		studentOnly.POST("/students/me/resume", studentController.UploadResume)
		studentOnly.POST("/students/me/photo", studentController.UploadProfilePic)

		studentOnly.GET("/drives/eligible", driveController.Eligible)
		studentOnly.POST("/applications", applicationController.Apply)

		studentOnly.POST("/queries", queryController.Submit)
		studentOnly.GET("/queries/mine", queryController.ListMine)
		studentOnly.GET("/queries/answers", queryController.Answers)
	}

	// The announcement feed is visible to every authenticated caller
	authenticated.GET("/notifications", notificationController.List)

	adminOnly := authenticated.Group("")
	adminOnly.Use(authMiddleware.RoleRequired(auth.RoleAdmin))
	{
		adminOnly.GET("/students", studentController.Directory)

		adminOnly.POST("/drives", driveController.Create)
		adminOnly.GET("/drives", driveController.List)
		adminOnly.PUT("/drives/:id/complete", driveController.MarkCompleted)
		adminOnly.DELETE("/drives/:id", driveController.Delete)
		adminOnly.GET("/drives/:id/shortlist", shortlistController.DriveShortlist)

		adminOnly.POST("/shortlists", shortlistController.MarkShortlisted)
		adminOnly.POST("/selections", shortlistController.MarkSelected)

		adminOnly.POST("/notifications", notificationController.Create)

		adminOnly.GET("/queries", queryController.ListAll)
		adminOnly.POST("/queries/respond", queryController.Respond)

		adminOnly.GET("/analytics", analyticsController.Dashboard)
	}
}
