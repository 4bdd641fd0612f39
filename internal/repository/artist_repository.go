package repository

import (
	"errors"

	"gallery_store/internal/models"

	"gorm.io/gorm"
)

type ArtistRepository interface {
	GetProfile() (*models.ArtistProfile, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetProfile() (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	err := r.db.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
