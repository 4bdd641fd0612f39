package repository

import (
	"testing"

	"gallery_store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_CreateWithItems(t *testing.T) {
	db := testDB(t)
	orderRepo := NewOrderRepository(db)
	artworkRepo := NewArtworkRepository(db)

	artwork := &models.Artwork{Title: "Morning Light", Slug: "morning-light", Price: 85000, IsAvailable: true}
	require.NoError(t, artworkRepo.Create(artwork))

	order := &models.Order{
		CustomerName:    "Hanako Sato",
		CustomerEmail:   "buyer@example.com",
		TotalAmount:     85000,
		Status:          string(models.OrderConfirmed),
		StripeSessionID: "cs_test_1",
	}
	items := []models.OrderItem{{
		ArtworkID:  artwork.ID,
		Quantity:   1,
		UnitPrice:  85000,
		TotalPrice: 85000,
	}}
	require.NoError(t, orderRepo.CreateWithItems(order, items))

	got, err := orderRepo.GetBySessionID("cs_test_1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, artwork.ID, got.Items[0].ArtworkID)

	// the purchased piece is no longer for sale
	updated, err := artworkRepo.GetByID(artwork.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
}

func TestOrderRepository_CreateWithoutItems(t *testing.T) {
	orderRepo := NewOrderRepository(testDB(t))

	order := &models.Order{
		CustomerName:    "Unknown",
		CustomerEmail:   "buyer@example.com",
		TotalAmount:     1000,
		StripeSessionID: "cs_test_2",
	}
	require.NoError(t, orderRepo.CreateWithItems(order, nil))

	got, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestOrderRepository_SessionIDIsUnique(t *testing.T) {
	orderRepo := NewOrderRepository(testDB(t))

	first := &models.Order{CustomerName: "A", CustomerEmail: "a@example.com", StripeSessionID: "cs_dup"}
	require.NoError(t, orderRepo.CreateWithItems(first, nil))

	second := &models.Order{CustomerName: "B", CustomerEmail: "b@example.com", StripeSessionID: "cs_dup"}
	assert.Error(t, orderRepo.CreateWithItems(second, nil))
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	orderRepo := NewOrderRepository(testDB(t))

	order := &models.Order{CustomerName: "A", CustomerEmail: "a@example.com", StripeSessionID: "cs_1", Status: string(models.OrderConfirmed)}
	require.NoError(t, orderRepo.CreateWithItems(order, nil))

	require.NoError(t, orderRepo.UpdateStatus(order.ID, models.OrderShipped))

	got, err := orderRepo.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderShipped), got.Status)

	assert.ErrorIs(t, orderRepo.UpdateStatus("missing", models.OrderShipped), ErrNotFound)
}
