// Package bootstrap assembles the application: configuration, logging,
// storage, services, controllers and routes.
package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/anvesh/placementcell/internal/app/controllers"
	appRepos "github.com/anvesh/placementcell/internal/app/repositories"
	appRoutes "github.com/anvesh/placementcell/internal/app/routes"
	appServices "github.com/anvesh/placementcell/internal/app/services"
	"github.com/anvesh/placementcell/internal/config"
	"github.com/anvesh/placementcell/internal/docstore"
	appMiddleware "github.com/anvesh/placementcell/internal/middleware"
	pkgAuth "github.com/anvesh/placementcell/internal/pkg/auth"
	"github.com/anvesh/placementcell/internal/pkg/email"
	"github.com/anvesh/placementcell/internal/pkg/filestorage"
	"github.com/anvesh/placementcell/internal/pkg/logger"
	"github.com/anvesh/placementcell/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Mailer                 email.Mailer
	FileStorage            *filestorage.LocalStorage
	AuthService            *appServices.AuthService
	StudentService         *appServices.StudentService
	DriveService           *appServices.DriveService
	ApplicationService     *appServices.ApplicationService
	ShortlistService       *appServices.ShortlistService
	NotificationService    *appServices.NotificationService
	QueryService           *appServices.QueryService
	AnalyticsService       *appServices.AnalyticsService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	DriveController        *appControllers.DriveController
	ApplicationController  *appControllers.ApplicationController
	ShortlistController    *appControllers.ShortlistController
	NotificationController *appControllers.NotificationController
	QueryController        *appControllers.QueryController
	AnalyticsController    *appControllers.AnalyticsController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the document store and seeds missing collections.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*docstore.Store, error) {
	lgr.Info().Str("dataDir", cfg.Store.DataDir).Msg("Opening document store...")
	store, err := docstore.New(cfg.Store.DataDir, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open document store")
		return nil, err
	}

	if err := seed.EnsureCollections(store, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed collection files, proceeding anyway...")
	}

	lgr.Info().Msg("Document store ready.")
	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *docstore.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)

	// The base URL must match the static file serving endpoint
	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenDuration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Mailer = email.NewSMTPMailer(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.Student,
		deps.JWTService,
		deps.Mailer,
		appServices.AdminCredentials{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
		},
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Student, deps.FileStorage)
	deps.DriveService = appServices.NewDriveService(deps.Repos.Drive, deps.Repos.Student)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.Student, deps.Repos.Drive, deps.Mailer)
	deps.ShortlistService = appServices.NewShortlistService(deps.Repos.Student, deps.Repos.Drive, deps.Mailer)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.Notification, deps.Repos.Drive)
	deps.QueryService = appServices.NewQueryService(deps.Repos.Query, deps.Repos.Response, deps.Repos.Student)
	deps.AnalyticsService = appServices.NewAnalyticsService(deps.Repos.Student, deps.Repos.Drive, deps.Repos.Query, deps.Repos.Response)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.DriveController = appControllers.NewDriveController(deps.DriveService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.ShortlistController = appControllers.NewShortlistController(deps.ShortlistService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)
	deps.QueryController = appControllers.NewQueryController(deps.QueryService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.DriveController,
		deps.ApplicationController,
		deps.ShortlistController,
		deps.NotificationController,
		deps.QueryController,
		deps.AnalyticsController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
