package handlers

import (
	"errors"
	"log"
	"net/http"

	"gallery_store/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutService services.CheckoutService
	publishableKey  string
}

func NewCheckoutHandler(checkoutService services.CheckoutService, publishableKey string) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, publishableKey: publishableKey}
}

type createSessionRequest struct {
	Items        []services.CheckoutItem `json:"items"`
	CustomerInfo services.CustomerInfo   `json:"customer_info" binding:"required"`
}

func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	session, err := h.checkoutService.CreateSession(c.Request.Context(), req.Items, req.CustomerInfo)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, services.ErrArtworkUnavailable):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Checkout session creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"url":        session.URL,
	})
}

// Config exposes the gateway publishable key the browser needs to redirect to
// the hosted payment page.
func (h *CheckoutHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"publishable_key": h.publishableKey})
}

// MethodNotAllowed answers non-POST requests on the checkout and webhook
// paths.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}
