package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushq/recruithub/docs" // Import generated swagger docs
	appControllers "github.com/campushq/recruithub/internal/app/controllers"
	appMigrations "github.com/campushq/recruithub/internal/app/migrations"
	appRepos "github.com/campushq/recruithub/internal/app/repositories"
	appRoutes "github.com/campushq/recruithub/internal/app/routes"
	appServices "github.com/campushq/recruithub/internal/app/services"
	"github.com/campushq/recruithub/internal/config"
	"github.com/campushq/recruithub/internal/db"
	appMiddleware "github.com/campushq/recruithub/internal/middleware"
	pkgAuth "github.com/campushq/recruithub/internal/pkg/auth"
	"github.com/campushq/recruithub/internal/pkg/logger"
	"github.com/campushq/recruithub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	CollegeService       *appServices.CollegeService
	DriveService         *appServices.DriveService
	StudentService       *appServices.StudentService
	BoardService         *appServices.BoardService
	PanelService         *appServices.PanelService
	EvaluationService    *appServices.EvaluationService
	AuthController       *appControllers.AuthController
	CollegeController    *appControllers.CollegeController
	DriveController      *appControllers.DriveController
	StudentController    *appControllers.StudentController
	BoardController      *appControllers.BoardController
	PanelController      *appControllers.PanelController
	EvaluationController *appControllers.EvaluationController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup continues without default data
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenExp(),
		RefreshTokenExp: cfg.RefreshTokenExp(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository, lgr)
	deps.DriveService = appServices.NewDriveService(
		deps.Repos.DriveRepository,
		deps.Repos.CollegeRepository,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.DriveRepository,
		deps.Repos.RoundRepository,
		lgr,
	)
	deps.BoardService = appServices.NewBoardService(
		deps.Repos.DriveRepository,
		deps.Repos.StudentRepository,
		deps.Repos.RoundRepository,
		lgr,
	)
	deps.PanelService = appServices.NewPanelService(
		deps.Repos.PanelRepository,
		deps.Repos.DriveRepository,
		deps.Repos.UserRepository,
		deps.Repos.RoundRepository,
		lgr,
	)
	deps.EvaluationService = appServices.NewEvaluationService(
		deps.Repos.EvaluationJobRepository,
		deps.Repos.DriveRepository,
		deps.Repos.StudentRepository,
		deps.Repos.RoundRepository,
		cfg.EvaluationPollInterval(),
		cfg.EvaluationStaleAfter(),
		lgr,
	)

	// Jobs interrupted by a previous crash must not block their drive forever.
	if err := deps.EvaluationService.Resume(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Could not resume evaluation job supervision")
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService)
	deps.DriveController = appControllers.NewDriveController(deps.DriveService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.BoardController = appControllers.NewBoardController(deps.BoardService)
	deps.PanelController = appControllers.NewPanelController(deps.PanelService)
	deps.EvaluationController = appControllers.NewEvaluationController(deps.EvaluationService)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CollegeController,
		deps.DriveController,
		deps.StudentController,
		deps.BoardController,
		deps.PanelController,
		deps.EvaluationController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
