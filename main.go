package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dripfolio/dripfolio/config"
	_ "github.com/dripfolio/dripfolio/docs"
	"github.com/dripfolio/dripfolio/internal/brokers"
	"github.com/dripfolio/dripfolio/internal/cache"
	"github.com/dripfolio/dripfolio/internal/database"
	"github.com/dripfolio/dripfolio/internal/export"
	"github.com/dripfolio/dripfolio/internal/handlers"
	"github.com/dripfolio/dripfolio/internal/middleware"
	"github.com/dripfolio/dripfolio/internal/repository"
	"github.com/dripfolio/dripfolio/internal/services"
	"github.com/dripfolio/dripfolio/internal/yahoo"
)

// @title Dripfolio API
// @version 1.0
// @description Dividend report parsing and reinvestment recommendation service
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Persistent quote cache is optional, the in-memory cache always runs
	var quoteRepo *repository.QuoteCacheRepository
	if cfg.PGURL != "" {
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		quoteRepo = repository.NewQuoteCacheRepository(db.Pool)
	} else {
		log.Info("PG_URL not set, quotes cached in memory only")
	}

	// Initialize quote source and caches
	yahooClient := yahoo.NewClient()
	memCache := cache.NewQuoteCache(cfg.PriceTTL)

	// Initialize registries
	brokerRegistry := brokers.DefaultRegistry()
	exportRegistry := export.DefaultRegistry()

	// Initialize services
	pricingSvc := services.NewPricingService(memCache, quoteRepo, yahooClient, cfg.PriceTTL, cfg.PriceConcurrency)
	reportSvc := services.NewReportService(brokerRegistry)
	recommendSvc := services.NewRecommendationService(pricingSvc)

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(reportSvc)
	priceHandler := handlers.NewPriceHandler(pricingSvc)
	recommendHandler := handlers.NewRecommendHandler(recommendSvc)
	exportHandler := handlers.NewExportHandler(exportRegistry)
	brokerHandler := handlers.NewBrokerHandler(brokerRegistry)

	// Setup Gin router
	router := gin.Default()

	// Apply global middleware
	router.Use(middleware.RequestID())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	router.GET("/brokers", brokerHandler.List)
	router.POST("/reports/parse", reportHandler.ParseReport)
	router.POST("/prices", priceHandler.GetPrices)
	router.POST("/recommendations", recommendHandler.Recommend)
	router.POST("/export/:broker", exportHandler.Export)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
