package repository

import (
	"gallery_store/internal/models"

	"gorm.io/gorm"
)

type ArtworkImageRepository interface {
	Create(image *models.ArtworkImage) error
	GetByArtwork(artworkID string) ([]models.ArtworkImage, error)
	CountByArtwork(artworkID string) (int64, error)
	Delete(id string) error
}

type artworkImageRepository struct {
	db *gorm.DB
}

func NewArtworkImageRepository(db *gorm.DB) ArtworkImageRepository {
	return &artworkImageRepository{db: db}
}

func (r *artworkImageRepository) Create(image *models.ArtworkImage) error {
	return r.db.Create(image).Error
}

func (r *artworkImageRepository) GetByArtwork(artworkID string) ([]models.ArtworkImage, error) {
	var images []models.ArtworkImage
	err := r.db.
		Where("artwork_id = ?", artworkID).
		Order("display_order ASC").
		Find(&images).Error
	return images, err
}

func (r *artworkImageRepository) CountByArtwork(artworkID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ArtworkImage{}).
		Where("artwork_id = ?", artworkID).
		Count(&count).Error
	return count, err
}

func (r *artworkImageRepository) Delete(id string) error {
	result := r.db.Delete(&models.ArtworkImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
