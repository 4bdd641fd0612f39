package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID                    string      `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerName          string      `json:"customer_name" gorm:"not null"`
	CustomerEmail         string      `json:"customer_email" gorm:"not null"`
	CustomerPhone         string      `json:"customer_phone"`
	ShippingAddress       string      `json:"shipping_address" gorm:"type:text"` // JSON as delivered by the gateway
	TotalAmount           int64       `json:"total_amount" gorm:"not null"`
	Currency              string      `json:"currency" gorm:"default:'jpy'"`
	PaymentStatus         string      `json:"payment_status"`
	Status                string      `json:"status" gorm:"default:'confirmed'"`
	StripeSessionID       string      `json:"stripe_session_id" gorm:"uniqueIndex"`
	StripePaymentIntentID string      `json:"stripe_payment_intent_id"`
	Notes                 string      `json:"notes" gorm:"type:text"`
	Items                 []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderStatus string

const (
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)
