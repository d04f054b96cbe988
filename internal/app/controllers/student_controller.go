package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anvesh/placementcell/internal/app/models/dto"
	"github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/middleware"
)

// StudentController handles student profiles and the admin directory
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new student controller
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetProfile returns the authenticated student's profile
// @Summary Get own profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/me [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	student, err := c.studentService.GetProfile(ctx.Request.Context(), middleware.SubjectStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudent(student)))
}

// UpdateProfile edits the authenticated student's profile
// @Summary Update own profile
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile data"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/me [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateProfile(ctx.Request.Context(), middleware.SubjectStudentID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudent(student)))
}

// UploadResume stores the authenticated student's resume
// @Summary Upload a resume
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/me/resume [post]
func (c *StudentController) UploadResume(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.studentService.UploadResume(ctx.Request.Context(), middleware.SubjectStudentID(ctx), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudent(student)))
}

// UploadProfilePic stores the authenticated student's profile picture
// @Summary Upload a profile picture
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /students/me/photo [post]
func (c *StudentController) UploadProfilePic(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.BindError(ctx, err)
		return
	}

	student, err := c.studentService.UploadProfilePic(ctx.Request.Context(), middleware.SubjectStudentID(ctx), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromStudent(student)))
}

// Directory lists students for placement staff
// @Summary List students
// @Description Directory with optional search, branch, CGPA and placement filters
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match against student ID or name"
// @Param branch query string false "Branch code"
// @Param minCgpa query number false "Minimum CGPA"
// @Param placed query boolean false "Placement status"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /students [get]
func (c *StudentController) Directory(ctx *gin.Context) {
	var filter dto.StudentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		middleware.BindError(ctx, err)
		return
	}

	students, err := c.studentService.Directory(ctx.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list := dto.StudentListResponse{
		Students: make([]dto.StudentResponse, 0, len(students)),
		Total:    len(students),
	}
	for i := range students {
		list.Students = append(list.Students, dto.FromStudent(&students[i]))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(list))
}
