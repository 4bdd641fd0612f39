package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Artwork struct {
	ID           string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string         `json:"title" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Story        string         `json:"story" gorm:"type:text"`
	Price        int64          `json:"price" gorm:"not null"` // yen, no minor unit
	Width        *float64       `json:"width"`
	Height       *float64       `json:"height"`
	Depth        *float64       `json:"depth"`
	Medium       string         `json:"medium"`
	YearCreated  int            `json:"year_created"`
	Category     string         `json:"category" gorm:"index"`
	IsAvailable  bool           `json:"is_available" gorm:"default:true"`
	IsFeatured   bool           `json:"is_featured" gorm:"default:false"`
	DisplayOrder int            `json:"display_order" gorm:"default:0"`
	Images       []ArtworkImage `json:"images" gorm:"foreignKey:ArtworkID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// PrimaryImageURL returns the URL of the image flagged primary, or "" when the
// artwork has none. Callers render their own placeholder.
func (a *Artwork) PrimaryImageURL() string {
	for _, img := range a.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	return ""
}
