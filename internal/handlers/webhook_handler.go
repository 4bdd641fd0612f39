package handlers

import (
	"io"
	"log"
	"net/http"

	"gallery_store/internal/services"
	"gallery_store/pkg/stripe"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	orderService  services.OrderService
	webhookSecret string
}

func NewWebhookHandler(orderService services.OrderService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{orderService: orderService, webhookSecret: webhookSecret}
}

// HandleStripeWebhook receives gateway lifecycle events. The signature covers
// the raw body, so it is read before any decoding.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	event, err := stripe.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	switch event.Type {
	case stripe.EventCheckoutSessionCompleted:
		session, err := event.CheckoutSession()
		if err != nil {
			log.Printf("Failed to decode completed session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
			return
		}
		if _, err := h.orderService.CompleteCheckout(session); err != nil {
			log.Printf("Failed to process completed session %s: %v", session.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
			return
		}
	case "payment_intent.succeeded":
		log.Printf("Payment succeeded: %s", event.ID)
	default:
		log.Printf("Unhandled event type: %s", event.Type)
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
