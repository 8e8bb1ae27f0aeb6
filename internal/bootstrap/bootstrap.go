package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/gradebook/internal/app/controllers"
	appMigrations "github.com/yigit/gradebook/internal/app/migrations"
	appRepos "github.com/yigit/gradebook/internal/app/repositories"
	appRoutes "github.com/yigit/gradebook/internal/app/routes"
	appServices "github.com/yigit/gradebook/internal/app/services"
	"github.com/yigit/gradebook/internal/config"
	"github.com/yigit/gradebook/internal/db"
	appMiddleware "github.com/yigit/gradebook/internal/middleware"
	"github.com/yigit/gradebook/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB        *db.PostgresDB
	Repos     *appRepos.Repositories
	GradeBook appServices.GradeBookService
	Reports   appServices.ReportService
	Logger    zerolog.Logger
}

// Close releases the connection pool
func (d *Dependencies) Close() {
	if d.DB != nil {
		d.DB.Close()
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = config.DefaultPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and, when auto_migrate
// is on, applies the embedded schema.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Debug().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, database, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}
	return database, nil
}

// Migrate applies every pending migration
func Migrate(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Debug().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Debug().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes repositories and services on top of the pool.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{DB: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.GradeBook = appServices.NewGradeBookService(appServices.StoresFrom(deps.Repos))
	deps.Reports = appServices.NewReportService(deps.GradeBook)

	return deps
}

// Setup runs the whole chain: config, logger, database, services.
// Every command of the CLI starts here.
func Setup(ctx context.Context, configPath string) (*config.Config, *Dependencies, error) {
	cfg, lgr, err := LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	database, err := SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return cfg, BuildDependencies(database, lgr), nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := appMiddleware.NewMetrics(registry)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		metrics.Handler(),
		appMiddleware.ErrorHandler(),
	)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Groups:   appControllers.NewGroupController(deps.GradeBook),
		Teachers: appControllers.NewTeacherController(deps.GradeBook),
		Courses:  appControllers.NewCourseController(deps.GradeBook),
		Students: appControllers.NewStudentController(deps.GradeBook),
		Grades:   appControllers.NewGradeController(deps.GradeBook),
		Reports:  appControllers.NewReportController(deps.GradeBook, deps.Reports),
	})

	return router
}
