package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"gallery_store/internal/models"
	"gallery_store/internal/repository"
	"gallery_store/pkg/stripe"
)

// OrderService reconciles completed payment sessions into order records and
// serves the admin order screens.
type OrderService interface {
	CompleteCheckout(session *stripe.CheckoutSession) (*models.Order, error)
	GetOrder(id string) (*models.Order, error)
	ListOrders() ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// CompleteCheckout is idempotent per gateway session: the gateway retries
// webhook delivery, and a redelivered completed session must not create a
// second order.
func (s *orderService) CompleteCheckout(session *stripe.CheckoutSession) (*models.Order, error) {
	if existing, err := s.orderRepo.GetBySessionID(session.ID); err == nil {
		log.Printf("Order already exists for session %s, skipping duplicate delivery", session.ID)
		return existing, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing order: %w", err)
	}

	customerName := session.Metadata["customerName"]
	if customerName == "" {
		customerName = "Unknown"
	}

	customerEmail := session.CustomerEmail
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		customerEmail = session.CustomerDetails.Email
	}

	var shippingAddress string
	if session.ShippingDetails != nil && session.ShippingDetails.Address != nil {
		if data, err := json.Marshal(session.ShippingDetails.Address); err == nil {
			shippingAddress = string(data)
		}
	}

	currency := session.Currency
	if currency == "" {
		currency = "jpy"
	}

	order := &models.Order{
		CustomerName:          customerName,
		CustomerEmail:         customerEmail,
		CustomerPhone:         session.Metadata["customerPhone"],
		ShippingAddress:       shippingAddress,
		TotalAmount:           session.AmountTotal,
		Currency:              currency,
		PaymentStatus:         session.PaymentStatus,
		Status:                string(models.OrderConfirmed),
		StripeSessionID:       session.ID,
		StripePaymentIntentID: session.PaymentIntent,
	}

	var items []models.OrderItem
	if raw := session.Metadata["orderItems"]; raw != "" {
		var metaItems []metadataItem
		if err := json.Unmarshal([]byte(raw), &metaItems); err != nil {
			log.Printf("Failed to decode order items metadata for session %s: %v", session.ID, err)
		} else {
			for _, item := range metaItems {
				items = append(items, models.OrderItem{
					ArtworkID:  item.ArtworkID,
					Quantity:   item.Quantity,
					UnitPrice:  item.Price,
					TotalPrice: item.Price * int64(item.Quantity),
				})
			}
		}
	}

	if err := s.orderRepo.CreateWithItems(order, items); err != nil {
		return nil, fmt.Errorf("failed to persist order for session %s: %w", session.ID, err)
	}

	log.Printf("Order %s created for session %s", order.ID, session.ID)
	return order, nil
}

func (s *orderService) GetOrder(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) ListOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) UpdateStatus(id string, status models.OrderStatus) error {
	switch status {
	case models.OrderConfirmed, models.OrderShipped, models.OrderDelivered, models.OrderCancelled:
	default:
		return fmt.Errorf("invalid order status %q", status)
	}
	return s.orderRepo.UpdateStatus(id, status)
}
