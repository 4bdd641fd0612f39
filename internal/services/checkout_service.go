package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gallery_store/internal/repository"
	"gallery_store/pkg/stripe"
)

const checkoutCurrency = "jpy"

var (
	ErrEmptyCart          = errors.New("checkout requires at least one cart item")
	ErrArtworkUnavailable = errors.New("artwork is no longer available")
)

type CheckoutItem struct {
	ArtworkID string `json:"artwork_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CustomerInfo struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

// metadataItem is the per-line order summary embedded in session metadata and
// read back by the webhook.
type metadataItem struct {
	ArtworkID string `json:"artworkId"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CheckoutService turns a cart into a gateway-hosted payment session.
type CheckoutService interface {
	CreateSession(ctx context.Context, items []CheckoutItem, customer CustomerInfo) (*stripe.CheckoutSession, error)
}

type checkoutService struct {
	artworkRepo repository.ArtworkRepository
	gateway     *stripe.Client
	baseURL     string
}

func NewCheckoutService(artworkRepo repository.ArtworkRepository, gateway *stripe.Client, baseURL string) CheckoutService {
	return &checkoutService{artworkRepo: artworkRepo, gateway: gateway, baseURL: baseURL}
}

func (s *checkoutService) CreateSession(ctx context.Context, items []CheckoutItem, customer CustomerInfo) (*stripe.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lineItems := make([]stripe.LineItem, 0, len(items))
	metaItems := make([]metadataItem, 0, len(items))
	for _, item := range items {
		// Unit amounts come from the stored record, never from the
		// client, so a stale or tampered cart can't set the price.
		artwork, err := s.artworkRepo.GetByID(item.ArtworkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrArtworkUnavailable, item.ArtworkID)
			}
			return nil, fmt.Errorf("failed to look up artwork %s: %w", item.ArtworkID, err)
		}
		if !artwork.IsAvailable {
			return nil, fmt.Errorf("%w: %s", ErrArtworkUnavailable, artwork.Title)
		}

		lineItems = append(lineItems, stripe.LineItem{
			Name:        artwork.Title,
			Description: fmt.Sprintf("%s | %d年", artwork.Medium, artwork.YearCreated),
			Currency:    checkoutCurrency,
			UnitAmount:  artwork.Price,
			Quantity:    item.Quantity,
		})
		metaItems = append(metaItems, metadataItem{
			ArtworkID: artwork.ID,
			Title:     artwork.Title,
			Price:     artwork.Price,
			Quantity:  item.Quantity,
		})
	}

	orderItemsJSON, err := json.Marshal(metaItems)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order metadata: %w", err)
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, stripe.CheckoutSessionParams{
		LineItems:                lineItems,
		SuccessURL:               s.baseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:                s.baseURL + "/cart",
		CustomerEmail:            customer.Email,
		AllowedShippingCountries: []string{"JP"},
		Metadata: map[string]string{
			"customerName":  customer.FirstName + " " + customer.LastName,
			"customerPhone": customer.Phone,
			"orderItems":    string(orderItemsJSON),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session, nil
}
