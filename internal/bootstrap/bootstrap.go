package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/collegescope/api/internal/app/controllers"
	appRepos "github.com/collegescope/api/internal/app/repositories"
	appRoutes "github.com/collegescope/api/internal/app/routes"
	"github.com/collegescope/api/internal/app/schema"
	appServices "github.com/collegescope/api/internal/app/services"
	"github.com/collegescope/api/internal/config"
	"github.com/collegescope/api/internal/db"
	appMiddleware "github.com/collegescope/api/internal/middleware"
	"github.com/collegescope/api/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                 *appRepos.Repositories
	Services              *appServices.Services
	SchoolController      *appControllers.SchoolController
	ProgramController     *appControllers.ProgramController
	AggregationController *appControllers.AggregationController
	AnalyticsController   *appControllers.AnalyticsController
	HealthController      *appControllers.HealthController
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Format: strings.ToLower(cfg.Logging.Format),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore validates the field-path table and establishes the document
// store connection. A mapping typo or an unreachable store fails startup.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	if err := schema.Validate(); err != nil {
		lgr.Error().Err(err).Msg("Field-path table validation failed")
		return nil, fmt.Errorf("field-path table validation failed: %w", err)
	}
	lgr.Info().Msg("Field-path table validated")

	lgr.Info().Str("database", cfg.Database.Name).Msg("Connecting to document store...")
	store, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to document store")
		return nil, err
	}
	lgr.Info().Msg("Document store connection established")
	return store, nil
}

// BuildDependencies wires repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(store)
	services := appServices.NewServices(repos, cfg)

	return &Dependencies{
		Repos:                 repos,
		Services:              services,
		SchoolController:      appControllers.NewSchoolController(services.School),
		ProgramController:     appControllers.NewProgramController(services.Program),
		AggregationController: appControllers.NewAggregationController(services.Aggregation),
		AnalyticsController:   appControllers.NewAnalyticsController(services.Analytics),
		HealthController:      appControllers.NewHealthController(store),
		Logger:                lgr,
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.SchoolController,
		deps.ProgramController,
		deps.AggregationController,
		deps.AnalyticsController,
		deps.HealthController,
	)

	lgr.Info().Msg("Routes registered")
	return router
}
