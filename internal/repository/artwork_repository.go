package repository

import (
	"errors"

	"gallery_store/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned for single-row lookups that match nothing, so
// callers don't have to depend on gorm directly.
var ErrNotFound = errors.New("record not found")

type ArtworkRepository interface {
	Create(artwork *models.Artwork) error
	GetByID(id string) (*models.Artwork, error)
	GetBySlug(slug string) (*models.Artwork, error)
	GetAll() ([]models.Artwork, error)
	GetAvailable() ([]models.Artwork, error)
	GetByCategory(category string) ([]models.Artwork, error)
	GetRelated(excludeID, category string, limit int) ([]models.Artwork, error)
	GetFeatured(limit int) ([]models.Artwork, error)
	GetCategories() ([]string, error)
	Update(id string, fields map[string]interface{}) error
	DeleteWithImages(id string) error
}

type artworkRepository struct {
	db *gorm.DB
}

func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &artworkRepository{db: db}
}

// listing returns the base query for catalog listings: images preloaded in
// display order, artworks in display order with newest-first tie-break.
func (r *artworkRepository) listing() *gorm.DB {
	return r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Order("display_order ASC").
		Order("created_at DESC")
}

func (r *artworkRepository) Create(artwork *models.Artwork) error {
	return r.db.Create(artwork).Error
}

func (r *artworkRepository) GetByID(id string) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.listing().First(&artwork, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *artworkRepository) GetBySlug(slug string) (*models.Artwork, error) {
	var artwork models.Artwork
	err := r.listing().First(&artwork, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artwork, nil
}

func (r *artworkRepository) GetAll() ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.listing().Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) GetAvailable() ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.listing().Where("is_available = ?", true).Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) GetByCategory(category string) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.listing().Where("category = ?", category).Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) GetRelated(excludeID, category string, limit int) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.listing().
		Where("category = ? AND id <> ? AND is_available = ?", category, excludeID, true).
		Limit(limit).
		Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) GetFeatured(limit int) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.listing().
		Where("is_featured = ? AND is_available = ?", true, true).
		Limit(limit).
		Find(&artworks).Error
	return artworks, err
}

func (r *artworkRepository) GetCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Artwork{}).
		Distinct("category").
		Where("category <> ''").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *artworkRepository) Update(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.Artwork{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteWithImages removes the artwork's image rows and the artwork itself in
// one transaction, so a failure can't leave either half behind.
func (r *artworkRepository) DeleteWithImages(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", id).Delete(&models.ArtworkImage{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Artwork{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
