package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PageContent struct {
	ID              string    `json:"id" gorm:"type:uuid;primaryKey"`
	PageKey         string    `json:"page_key" gorm:"uniqueIndex;not null"`
	Title           string    `json:"title"`
	Content         string    `json:"content" gorm:"type:text"`
	MetaDescription string    `json:"meta_description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p *PageContent) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
