package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ecan/pathways/internal/app/controllers"
	appRepos "github.com/ecan/pathways/internal/app/repositories"
	appRoutes "github.com/ecan/pathways/internal/app/routes"
	appServices "github.com/ecan/pathways/internal/app/services"
	"github.com/ecan/pathways/internal/app/services/narrator"
	"github.com/ecan/pathways/internal/config"
	appMiddleware "github.com/ecan/pathways/internal/middleware"
	"github.com/ecan/pathways/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Catalog           *appRepos.CatalogRepository
	PlannerService    *appServices.PlannerService
	ScheduleService   *appServices.ScheduleService
	Narrator          narrator.Narrator
	CatalogController *appControllers.CatalogController
	PlannerController *appControllers.PlannerController
	Logger            zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalog loads and validates the course catalog and college
// curricula. Any failure here is startup-fatal.
func SetupCatalog(cfg *config.Config, lgr zerolog.Logger) (*appRepos.CatalogRepository, error) {
	lgr.Info().
		Str("courses", cfg.Catalog.CoursesPath).
		Str("colleges", cfg.Catalog.CollegesPath).
		Msg("Loading catalog data...")

	catalog, err := appRepos.LoadCatalog(cfg.Catalog.CoursesPath, cfg.Catalog.CollegesPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load catalog data")
		return nil, err
	}

	lgr.Info().
		Int("courses", len(catalog.Courses())).
		Int("colleges", len(catalog.Colleges())).
		Int("careerPaths", len(catalog.CareerPaths())).
		Msg("Catalog data loaded.")
	return catalog, nil
}

// BuildDependencies initializes the narrator, services and controllers. The
// narrator implementation is chosen once here: Gemini-backed when an API key
// is configured, heuristic otherwise.
func BuildDependencies(ctx context.Context, cfg *config.Config, catalog *appRepos.CatalogRepository, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Catalog: catalog, Logger: lgr}

	heuristic := narrator.NewHeuristicNarrator()
	if cfg.NarrationEnabled() {
		gemini, err := narrator.NewGeminiNarrator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.GeminiTimeout(), heuristic, lgr)
		if err != nil {
			// A misconfigured key is a mode switch, not a startup failure.
			lgr.Warn().Err(err).Msg("Failed to initialize Gemini narrator, using heuristic narration")
			deps.Narrator = heuristic
		} else {
			lgr.Info().Str("model", cfg.Gemini.Model).Msg("Gemini narration enabled")
			deps.Narrator = gemini
		}
	} else {
		lgr.Info().Msg("No Gemini API key configured, using heuristic narration")
		deps.Narrator = heuristic
	}

	deps.PlannerService = appServices.NewPlannerService(catalog)
	deps.ScheduleService = appServices.NewScheduleService(catalog, deps.PlannerService, deps.Narrator, appServices.ScheduleConfig{
		MinCredits: cfg.Planner.MinCredits,
		MaxCredits: cfg.Planner.MaxCredits,
		MaxCourses: cfg.Planner.MaxCourses,
		Semesters:  cfg.Planner.Semesters,
	}, lgr)

	deps.CatalogController = appControllers.NewCatalogController(catalog)
	deps.PlannerController = appControllers.NewPlannerController(deps.PlannerService, deps.ScheduleService)

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
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CatalogController,
		deps.PlannerController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
