package main

import (
	"herald/internal/adcopy"
	"herald/internal/handlers"
	"herald/internal/promokit"
	"herald/internal/seo"
	"herald/pkg/auth"
	"herald/pkg/config"
	"herald/pkg/database"
	"herald/pkg/llm"
	"herald/pkg/logging"
	"herald/pkg/monitoring"
	"herald/pkg/server"
	"herald/pkg/version"
)

const serviceName = "herald-api"

func main() {
	logger := logging.NewLoggerWithService(serviceName)
	config.LoadEnv(logger)

	logger.WithFields(logging.Fields{
		"version": version.Version,
		"commit":  version.GetShortCommit(),
	}).Info("Starting Herald API")

	dbCfg := database.DefaultConfig()
	dbCfg.URL = config.RequireEnv("DATABASE_URL")
	db := database.MustConnect(dbCfg, logger)
	defer db.Close()

	if config.GetEnvBool("DB_AUTO_MIGRATE", true) {
		if err := database.ApplySchema(db, logger); err != nil {
			logger.WithError(err).Fatal("Failed to apply database schema")
		}
	}

	jwtSecret := []byte(config.RequireEnv("JWT_SECRET"))

	llmCfg := llm.LoadConfig()
	var provider llm.Provider
	if llmCfg.Configured() {
		p, err := llm.NewProvider(llmCfg)
		if err != nil {
			logger.WithError(err).Fatal("Invalid generation provider configuration")
		}
		provider = p
		logger.WithFields(logging.Fields{
			"provider": llmCfg.Provider,
			"model":    llmCfg.Model,
		}).Info("Generation provider configured")
	} else {
		logger.Info("No generation credential configured; generation endpoints run in demo mode")
	}

	metricsCollector := monitoring.NewMetricsCollector(serviceName, version.Version, version.GitCommit)
	healthChecker := monitoring.NewHealthChecker(serviceName, version.Version)
	healthChecker.AddCheck("database", monitoring.DatabaseHealthCheck(db))
	healthChecker.AddCheck("generation_provider", monitoring.GenerationProviderHealthCheck(llmCfg.Configured()))

	h := handlers.New(db, logger, handlers.NewMetrics(metricsCollector), jwtSecret,
		adcopy.NewGenerator(provider, logger),
		promokit.NewGenerator(provider, logger),
		seo.NewOptimizer(provider, logger))

	router := server.SetupServiceRouter(logger, serviceName, healthChecker, metricsCollector)

	// Public endpoints
	router.POST("/api/register", h.Register)
	router.POST("/api/login", h.Login)
	router.GET("/p/:slug", h.GetPublishedPage)

	// Authenticated API
	api := router.Group("/api", auth.JWTAuthMiddleware(jwtSecret))
	{
		api.GET("/me", h.GetMe)

		api.GET("/newsletters", h.ListNewsletters)
		api.POST("/newsletters", h.CreateNewsletter)
		api.DELETE("/newsletters/:id", h.DeleteNewsletter)

		api.GET("/campaigns", h.ListCampaigns)
		api.POST("/campaigns", h.CreateCampaign)
		api.PUT("/campaigns/:id/status", h.UpdateCampaignStatus)

		api.GET("/pages", h.ListPages)
		api.POST("/pages", h.CreatePage)

		api.GET("/network", h.GetNetwork)

		api.POST("/ai/generate-ad-copy", h.GenerateAdCopy)
		api.POST("/ai/optimize-seo", h.OptimizeSEO)
		api.POST("/promotion-kit", h.GeneratePromotionKit)
	}

	cfg := server.DefaultConfig(serviceName, "8080")
	if err := server.Start(cfg, router, logger); err != nil {
		logger.WithError(err).Fatal("Server error")
	}
}
