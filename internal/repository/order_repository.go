package repository

import (
	"errors"

	"gallery_store/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// CreateWithItems inserts the order, its items, and flips the sold
	// artworks to unavailable in a single transaction.
	CreateWithItems(order *models.Order, items []models.OrderItem) error
	GetByID(id string) (*models.Order, error)
	GetBySessionID(sessionID string) (*models.Order, error)
	GetAll() ([]models.Order, error)
	UpdateStatus(id string, status models.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(order *models.Order, items []models.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			artworkIDs := make([]string, 0, len(items))
			for _, item := range items {
				artworkIDs = append(artworkIDs, item.ArtworkID)
			}
			// One-of-a-kind inventory: a purchase takes the piece off sale.
			if err := tx.Model(&models.Artwork{}).
				Where("id IN ?", artworkIDs).
				Update("is_available", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetBySessionID(sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, "stripe_session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
