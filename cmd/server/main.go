package main

import (
	"context"
	"log"
	"time"

	"gallery_store/internal/cart"
	"gallery_store/internal/config"
	"gallery_store/internal/database"
	"gallery_store/internal/handlers"
	"gallery_store/internal/repository"
	"gallery_store/internal/services"
	"gallery_store/pkg/objstore"
	"gallery_store/pkg/stripe"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize cart persistence
	cartPersister, err := cart.NewRedisStore(cfg.RedisURL, time.Duration(cfg.CartTTLDays)*24*time.Hour)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	cartStore := cart.NewStore(cartPersister)

	// Initialize object storage
	uploader, err := objstore.NewS3Uploader(context.Background(), objstore.S3Options{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		Key:       cfg.S3Key,
		Secret:    cfg.S3Secret,
		Endpoint:  cfg.S3Endpoint,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		log.Fatal("Failed to configure object storage:", err)
	}

	// Initialize payment gateway client
	gateway := stripe.NewClient(cfg.StripeSecretKey)

	// Initialize repositories
	artworkRepo := repository.NewArtworkRepository(db)
	imageRepo := repository.NewArtworkImageRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	pageRepo := repository.NewPageContentRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(artworkRepo, artistRepo, pageRepo)
	artworkAdminService := services.NewArtworkAdminService(artworkRepo, imageRepo)
	imageService := services.NewImageService(imageRepo, uploader)
	checkoutService := services.NewCheckoutService(artworkRepo, gateway, cfg.BaseURL)
	orderService := services.NewOrderService(orderRepo)
	authService := services.NewAuthService(adminRepo, cfg.JWTSecret)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartStore, catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg.StripePublishableKey)
	webhookHandler := handlers.NewWebhookHandler(orderService, cfg.StripeWebhookSecret)
	adminHandler := handlers.NewAdminHandler(authService, artworkAdminService, imageService, orderService)

	// Setup routes
	router := gin.Default()
	router.Use(cors.Default())
	handlers.RegisterRoutes(router, catalogHandler, cartHandler, checkoutHandler, webhookHandler, adminHandler, cfg.JWTSecret)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
