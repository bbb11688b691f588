package router

import (
	"net/http"
	"time"

	"github.com/listingai/listingai-backend/internal/config"
	"github.com/listingai/listingai-backend/internal/handlers"
	"github.com/listingai/listingai-backend/internal/middleware"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services"
	"github.com/listingai/listingai-backend/internal/services/excel"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services groups everything the HTTP layer depends on
type Services struct {
	Listing  *services.ListingService
	Checkout *services.CheckoutService
	Excel    *excel.Service
	Catalog  *config.Catalog
}

// SetupRouter configures the Gin router with the generator, checkout and catalog routes
func SetupRouter(cfg config.ServerConfig, svc *Services) *gin.Engine {
	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Configure CORS
	allowAll := len(cfg.CORSAllowOrigins) == 0 || (len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*")
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Create handlers with services
	listingHandler := handlers.NewListingHandler(svc.Listing)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Checkout)
	excelHandler := handlers.NewExcelHandler(svc.Excel)
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)

	root := r.Group(cfg.BasePath)

	root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logrus.Debug("Swagger UI endpoint registered at /swagger/index.html")

	// API v1 routes
	api := root.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, models.HealthResponse{
				Status: "ok",
				Time:   time.Now().Format(time.RFC3339),
			})
		})

		api.GET("/catalog", catalogHandler.GetCatalog)
		api.POST("/generate", listingHandler.GenerateListing)
		api.POST("/checkout", checkoutHandler.CreateCheckoutSession)

		listings := api.Group("/listings")
		{
			listings.POST("/export", excelHandler.ExportListings)
		}
	}

	return r
}
