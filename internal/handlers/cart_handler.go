package handlers

import (
	"net/http"

	"gallery_store/internal/cart"
	"gallery_store/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	store          *cart.Store
	catalogService services.CatalogService
}

func NewCartHandler(store *cart.Store, catalogService services.CatalogService) *CartHandler {
	return &CartHandler{store: store, catalogService: catalogService}
}

func cartResponse(state cart.State) gin.H {
	subtotal := cart.TotalAmount(state)
	shipping := cart.ShippingFee(subtotal)
	return gin.H{
		"lines":            state.Lines,
		"total_amount":     subtotal,
		"total_item_count": cart.TotalItemCount(state),
		"shipping_fee":     shipping,
		"grand_total":      subtotal + shipping,
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	state, err := h.store.Get(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(state))
}

// AddItem puts an artwork in the cart. The snapshot is built server-side from
// the catalog record, so the line carries the stored price.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ArtworkID string `json:"artwork_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	artwork := h.catalogService.ArtworkByID(req.ArtworkID)
	if artwork == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	if !artwork.IsAvailable {
		c.JSON(http.StatusConflict, gin.H{"error": "Artwork is no longer available"})
		return
	}

	state, err := h.store.AddItem(c.Request.Context(), c.Param("cart_id"), cart.Snapshot{
		ArtworkID:   artwork.ID,
		Title:       artwork.Title,
		Price:       artwork.Price,
		Medium:      artwork.Medium,
		YearCreated: artwork.YearCreated,
		ImageURL:    artwork.PrimaryImageURL(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(state))
}

func (h *CartHandler) SetItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	state, err := h.store.SetItemQuantity(c.Request.Context(), c.Param("cart_id"), c.Param("artwork_id"), req.Quantity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(state))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	state, err := h.store.RemoveItem(c.Request.Context(), c.Param("cart_id"), c.Param("artwork_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(state))
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.store.Clear(c.Request.Context(), c.Param("cart_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart.State{}))
}
