package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dpetrov/campusreg/internal/app/controllers"
	appMigrations "github.com/dpetrov/campusreg/internal/app/migrations"
	appRepos "github.com/dpetrov/campusreg/internal/app/repositories"
	appRoutes "github.com/dpetrov/campusreg/internal/app/routes"
	appServices "github.com/dpetrov/campusreg/internal/app/services"
	"github.com/dpetrov/campusreg/internal/config"
	"github.com/dpetrov/campusreg/internal/db"
	appMiddleware "github.com/dpetrov/campusreg/internal/middleware"
	pkgAuth "github.com/dpetrov/campusreg/internal/pkg/auth"
	"github.com/dpetrov/campusreg/internal/pkg/logger"
	"github.com/dpetrov/campusreg/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	TokenCodec             *pkgAuth.TokenCodec
	UserService            *appServices.UserService
	OptionsService         *appServices.OptionsService
	TermService            *appServices.TermService
	CourseService          *appServices.CourseService
	SectionService         *appServices.SectionService
	RegistrationService    *appServices.RegistrationService
	TokenController        *appControllers.TokenController
	UserController         *appControllers.UserController
	OptionsController      *appControllers.OptionsController
	TermController         *appControllers.TermController
	CourseController       *appControllers.CourseController
	SectionController      *appControllers.SectionController
	RegistrationController *appControllers.RegistrationController
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.ApplyDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.TokenCodec = pkgAuth.NewTokenCodec(cfg.JWT.Secret)

	repos := deps.Repos
	deps.UserService = appServices.NewUserService(repos.UserRepository, deps.TokenCodec)
	deps.OptionsService = appServices.NewOptionsService()
	deps.TermService = appServices.NewTermService(repos.TermRepository)
	deps.CourseService = appServices.NewCourseService(
		repos.CourseRepository,
		repos.SectionRepository,
		repos.RegistrationRepository,
		repos.AuditRepository,
		repos.TermRepository,
		database,
	)
	deps.SectionService = appServices.NewSectionService(
		repos.SectionRepository,
		repos.CourseRepository,
		repos.RegistrationRepository,
		repos.AuditRepository,
		database,
	)
	deps.RegistrationService = appServices.NewRegistrationService(
		repos.RegistrationRepository,
		repos.SectionRepository,
		database,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.TokenCodec, repos.UserRepository)

	deps.TokenController = appControllers.NewTokenController(deps.UserService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.OptionsController = appControllers.NewOptionsController(deps.OptionsService)
	deps.TermController = appControllers.NewTermController(deps.TermService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SectionController = appControllers.NewSectionController(deps.SectionService)
	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.RequestMetrics())

	appRoutes.SetupRouter(router,
		deps.TokenController,
		deps.UserController,
		deps.OptionsController,
		deps.TermController,
		deps.CourseController,
		deps.SectionController,
		deps.RegistrationController,
		deps.AuthMiddleware,
	)

	return router
}
