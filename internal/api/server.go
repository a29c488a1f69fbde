// Package api wires the HTTP routes for the analyzer.
package api

import (
	"net/http"

	"cng-analyzer/internal/api/handlers"
	"cng-analyzer/internal/api/middleware"
	"cng-analyzer/internal/config"
	"cng-analyzer/internal/logging"
	"cng-analyzer/internal/metrics"
	"cng-analyzer/internal/pipeline"
	"cng-analyzer/internal/store"
	"cng-analyzer/internal/usagelog"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps are the long-lived pieces a router needs.
type Deps struct {
	Config  *config.Config
	Store   *store.Store
	Metrics *metrics.Metrics
	Logger  zerolog.Logger
}

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(d Deps) *gin.Engine {
	defaults := d.Config.Defaults.ToModel()
	httpLog := logging.Component(d.Logger, "http")

	router := gin.New()
	router.Use(middleware.ErrorHandler(httpLog))
	router.Use(middleware.CORS(d.Config.Server.AllowedOrigins))
	router.Use(middleware.Logger(httpLog, d.Metrics))

	engine := pipeline.New(
		usagelog.NewAppender(d.Config.LogFile),
		d.Metrics,
		logging.Component(d.Logger, "pipeline"),
	)
	analyzeHandler := handlers.NewAnalyzeHandler(engine, d.Store, defaults, logging.Component(d.Logger, "analyze"))
	compareHandler := handlers.NewCompareHandler(defaults)
	defaultsHandler := handlers.NewDefaultsHandler(defaults)
	reportHandler := handlers.NewReportHandler(d.Store, d.Metrics, logging.Component(d.Logger, "reports"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/defaults", defaultsHandler.GetDefaults)
		api.POST("/analyze", analyzeHandler.Analyze)
		api.POST("/compare", compareHandler.Compare)

		api.GET("/reports/:id/pdf", reportHandler.PDF)
		api.GET("/reports/:id/xlsx", reportHandler.XLSX)
		api.GET("/reports/:id/charts/:name", reportHandler.Chart)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
