package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/listingai/listingai-backend/docs"
	"github.com/listingai/listingai-backend/internal/config"
	"github.com/listingai/listingai-backend/internal/router"
	"github.com/listingai/listingai-backend/internal/services"
	"github.com/listingai/listingai-backend/internal/services/excel"
	"github.com/listingai/listingai-backend/internal/services/llm"
	"github.com/listingai/listingai-backend/internal/services/payment"
	"github.com/listingai/listingai-backend/internal/utils"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title ListingAI API
// @version 1.0
// @description Generates marketplace product listings with a hosted language model and creates Stripe checkout sessions.

// @contact.name API Support
// @contact.email support@listingai.app

// @BasePath /

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Configure logging
	configureLogging(cfg.Server)

	// Set Swagger base path dynamically
	if cfg.Server.BasePath != "" {
		docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	}

	// Initialize Sentry
	if enabled, err := utils.InitSentry(cfg.Server.SentryDSN, cfg.Server.Environment); err != nil {
		logrus.Warnf("Failed to initialize Sentry: %v", err)
	} else if enabled {
		defer sentry.Flush(2 * time.Second)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogFile, cfg.Payment.Currency)
	if err != nil {
		logrus.Fatalf("Failed to load catalog: %v", err)
	}

	generator, err := llm.NewTextGenerator(context.Background(), cfg.LLM)
	if err != nil {
		logrus.Fatalf("Failed to initialize text generation provider: %v", err)
	}
	logrus.Infof("Text generation provider: %s (%s)", generator.Provider(), generator.Model())

	gateway, err := payment.NewStripeGateway(cfg.Payment.StripeSecretKey, cfg.Payment.StripeAPIBase)
	if err != nil {
		logrus.Fatalf("Failed to initialize payment gateway: %v", err)
	}

	// Checkout events are optional; the server runs without a broker
	var publisher services.EventPublisher
	if cfg.RabbitMQ.Enabled() {
		rabbitMQService, err := services.NewRabbitMQService(cfg.RabbitMQ)
		if err != nil {
			logrus.Warnf("Failed to initialize RabbitMQ, checkout events disabled: %v", err)
		} else {
			logrus.Info("RabbitMQ service initialized")
			defer rabbitMQService.Close()
			publisher = rabbitMQService
		}
	}

	r := router.SetupRouter(cfg.Server, &router.Services{
		Listing:  services.NewListingService(generator, catalog, cfg.Server.UpstreamTimeout),
		Checkout: services.NewCheckoutService(gateway, cfg.Payment, publisher, cfg.Server.UpstreamTimeout),
		Excel:    excel.NewExcelService(),
		Catalog:  catalog,
	})

	// Configure HTTP server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %d", cfg.Server.Port)
		logrus.Infof("API Health Check: http://localhost:%d%s/api/v1/health", cfg.Server.Port, cfg.Server.BasePath)
		logrus.Infof("Swagger UI: http://localhost:%d%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logrus.Info("Server exited properly")
}

func configureLogging(cfg config.ServerConfig) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
