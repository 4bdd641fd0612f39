package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtworkImage struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	ArtworkID    string    `json:"artwork_id" gorm:"type:uuid;not null;index"`
	ImageURL     string    `json:"image_url" gorm:"not null"`
	AltText      string    `json:"alt_text"`
	IsPrimary    bool      `json:"is_primary" gorm:"default:false"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

func (i *ArtworkImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
