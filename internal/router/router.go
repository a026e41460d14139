// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agntslab/marketplace-backend/internal/config"
	"github.com/agntslab/marketplace-backend/internal/handlers"
	"github.com/agntslab/marketplace-backend/internal/identity"
	"github.com/agntslab/marketplace-backend/internal/middleware"
	"github.com/agntslab/marketplace-backend/internal/payments"
	"github.com/agntslab/marketplace-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Collaborators
	verifier := identity.NewJWTVerifier(cfg.Identity.JWTSecret, cfg.Identity.Issuer)
	gateway := payments.NewStripeGateway(cfg.Stripe)
	storageService, err := services.NewStorageService(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize services
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db)
	entitlementService := services.NewEntitlementService(db)
	purchaseService := services.NewPurchaseService(db, gateway, cfg.Stripe.Currency)
	publishingService := services.NewPublishingService(db)
	reviewService := services.NewReviewService(db)
	contactService := services.NewContactService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	agentHandler := handlers.NewAgentHandler(catalogService, publishingService, storageService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	downloadHandler := handlers.NewDownloadHandler(entitlementService)
	paymentHandler := handlers.NewPaymentHandler(purchaseService, gateway)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.GET("/user", middleware.AuthRequired(verifier), authHandler.GetCurrentUser)
		}

		// Catalog routes (public)
		agents := api.Group("/agents")
		{
			agents.GET("", middleware.OptionalAuth(verifier), agentHandler.GetAgents)
			agents.GET("/:id", middleware.OptionalAuth(verifier), agentHandler.GetAgent)
			agents.GET("/:id/reviews", reviewHandler.GetAgentReviews)

			// Authenticated routes
			protected := agents.Group("")
			protected.Use(middleware.AuthRequired(verifier))
			{
				protected.POST("", middleware.UploadRateLimit(), agentHandler.CreateAgent)
				protected.POST("/:id/reviews", reviewHandler.CreateAgentReview)
			}
		}

		api.GET("/categories", categoryHandler.GetCategories)

		// Vendor routes
		vendor := api.Group("/vendor")
		vendor.Use(middleware.AuthRequired(verifier))
		{
			vendor.GET("/agents", agentHandler.GetVendorAgents)
		}

		// Download routes
		api.POST("/download/:agentId", middleware.AuthRequired(verifier), downloadHandler.DownloadAgent)

		// Payment routes
		api.POST("/create-payment-intent", middleware.AuthRequired(verifier), paymentHandler.CreatePaymentIntent)
		api.POST("/webhook", paymentHandler.HandleWebhook)

		// Contact routes
		api.POST("/contact", contactHandler.CreateContactMessage)
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", cfg.Storage.UploadsDir)
	}

	return r, nil
}
