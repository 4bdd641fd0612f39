package repository

import (
	"errors"

	"gallery_store/internal/models"

	"gorm.io/gorm"
)

type PageContentRepository interface {
	GetByKey(pageKey string) (*models.PageContent, error)
}

type pageContentRepository struct {
	db *gorm.DB
}

func NewPageContentRepository(db *gorm.DB) PageContentRepository {
	return &pageContentRepository{db: db}
}

func (r *pageContentRepository) GetByKey(pageKey string) (*models.PageContent, error) {
	var content models.PageContent
	err := r.db.First(&content, "page_key = ?", pageKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}
