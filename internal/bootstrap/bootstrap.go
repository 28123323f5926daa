package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/stucomas/internal/app/controllers"
	appMigrations "github.com/kaan/stucomas/internal/app/migrations"
	appRepos "github.com/kaan/stucomas/internal/app/repositories"
	appRoutes "github.com/kaan/stucomas/internal/app/routes"
	appServices "github.com/kaan/stucomas/internal/app/services"
	"github.com/kaan/stucomas/internal/config"
	"github.com/kaan/stucomas/internal/db"
	appMiddleware "github.com/kaan/stucomas/internal/middleware"
	"github.com/kaan/stucomas/internal/pkg/logger"
	"github.com/kaan/stucomas/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       appServices.StudentService
	InstructorService    appServices.InstructorService
	CourseService        appServices.CourseService
	EnrollmentService    appServices.EnrollmentService
	StudentController    *appControllers.StudentController
	InstructorController *appControllers.InstructorController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	AdminController      *appControllers.AdminController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A .env file takes effect before the YAML config is read so its
	// variables participate in the env overrides. Missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := cfg.Migrations.Dir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDemoData(context.Background(), database, lgr); err != nil {
			// Demo data is a convenience, startup continues without it
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.InstructorService = appServices.NewInstructorService(
		deps.Repos.InstructorRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.InstructorRepository,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.AdminController = appControllers.NewAdminController(deps.EnrollmentService)

	return deps
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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.InstructorController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AdminController,
	)

	return router
}
