package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItem struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID    string    `json:"order_id" gorm:"type:uuid;not null;index"`
	ArtworkID  string    `json:"artwork_id" gorm:"type:uuid;not null"`
	Quantity   int       `json:"quantity" gorm:"not null;default:1"`
	UnitPrice  int64     `json:"unit_price" gorm:"not null"`
	TotalPrice int64     `json:"total_price" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
