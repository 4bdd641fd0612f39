package handlers

import (
	"gallery_store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full route table. Kept out of main so endpoint
// tests run against the same routing the server does.
func RegisterRoutes(
	router *gin.Engine,
	catalog *CatalogHandler,
	cartHandler *CartHandler,
	checkout *CheckoutHandler,
	webhook *WebhookHandler,
	admin *AdminHandler,
	jwtSecret string,
) {
	api := router.Group("/api")
	{
		api.GET("/artworks", catalog.ListArtworks)
		api.GET("/artworks/:slug", catalog.GetArtworkBySlug)
		api.GET("/artworks/:slug/related", catalog.GetRelatedArtworks)
		api.GET("/categories", catalog.ListCategories)
		api.GET("/artist", catalog.GetArtistProfile)
		api.GET("/pages/:key", catalog.GetPageContent)

		api.GET("/cart/:cart_id", cartHandler.GetCart)
		api.POST("/cart/:cart_id/items", cartHandler.AddItem)
		api.PUT("/cart/:cart_id/items/:artwork_id", cartHandler.SetItemQuantity)
		api.DELETE("/cart/:cart_id/items/:artwork_id", cartHandler.RemoveItem)
		api.DELETE("/cart/:cart_id", cartHandler.ClearCart)

		api.POST("/checkout/session", checkout.CreateSession)
		api.GET("/checkout/session", MethodNotAllowed)
		api.GET("/checkout/config", checkout.Config)

		api.POST("/webhooks/stripe", webhook.HandleStripeWebhook)
		api.GET("/webhooks/stripe", MethodNotAllowed)

		api.POST("/admin/login", admin.Login)

		authorized := api.Group("/admin", middleware.RequireAdmin(jwtSecret))
		{
			authorized.POST("/artworks", admin.CreateArtwork)
			authorized.PUT("/artworks/:id", admin.UpdateArtwork)
			authorized.DELETE("/artworks/:id", admin.DeleteArtwork)
			authorized.GET("/artworks/:id/images", admin.ListImages)
			authorized.POST("/artworks/:id/images", admin.UploadImage)
			authorized.DELETE("/images/:id", admin.DeleteImage)
			authorized.GET("/orders", admin.ListOrders)
			authorized.GET("/orders/:id", admin.GetOrder)
			authorized.PUT("/orders/:id/status", admin.UpdateOrderStatus)
		}
	}
}
