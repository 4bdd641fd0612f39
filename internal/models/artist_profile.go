package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArtistProfile is a singleton row describing the gallery's artist. The
// storefront only ever reads it.
type ArtistProfile struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null"`
	Bio             string    `json:"bio" gorm:"type:text"`
	ProfileImageURL string    `json:"profile_image_url"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	StudioAddress   string    `json:"studio_address"`
	WebsiteURL      string    `json:"website_url"`
	InstagramURL    string    `json:"instagram_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *ArtistProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
