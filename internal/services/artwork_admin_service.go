package services

import (
	"fmt"
	"strings"

	"gallery_store/internal/models"
	"gallery_store/internal/repository"
)

type ArtworkDraft struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Description string   `json:"description"`
	Story       string   `json:"story"`
	Price       int64    `json:"price" binding:"required,min=1"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	Depth       *float64 `json:"depth"`
	Medium      string   `json:"medium"`
	YearCreated int      `json:"year_created"`
	Category    string   `json:"category"`
	IsAvailable *bool    `json:"is_available"`
	IsFeatured  bool     `json:"is_featured"`
}

// ArtworkAdminService is the back-office write side for artwork records.
type ArtworkAdminService interface {
	Create(draft ArtworkDraft) (string, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
	ImagesFor(artworkID string) ([]models.ArtworkImage, error)
}

type artworkAdminService struct {
	artworkRepo repository.ArtworkRepository
	imageRepo   repository.ArtworkImageRepository
}

func NewArtworkAdminService(
	artworkRepo repository.ArtworkRepository,
	imageRepo repository.ArtworkImageRepository,
) ArtworkAdminService {
	return &artworkAdminService{artworkRepo: artworkRepo, imageRepo: imageRepo}
}

func (s *artworkAdminService) Create(draft ArtworkDraft) (string, error) {
	available := true
	if draft.IsAvailable != nil {
		available = *draft.IsAvailable
	}

	artwork := &models.Artwork{
		Title:       draft.Title,
		Slug:        strings.TrimSpace(draft.Slug),
		Description: draft.Description,
		Story:       draft.Story,
		Price:       draft.Price,
		Width:       draft.Width,
		Height:      draft.Height,
		Depth:       draft.Depth,
		Medium:      draft.Medium,
		YearCreated: draft.YearCreated,
		Category:    draft.Category,
		IsAvailable: available,
		IsFeatured:  draft.IsFeatured,
		// New pieces sort first until the artist reorders them.
		DisplayOrder: 0,
	}

	if err := s.artworkRepo.Create(artwork); err != nil {
		return "", fmt.Errorf("failed to create artwork: %w", err)
	}
	return artwork.ID, nil
}

// allowed patch fields, keyed by column name
var updatableArtworkFields = map[string]bool{
	"title":         true,
	"slug":          true,
	"description":   true,
	"story":         true,
	"price":         true,
	"width":         true,
	"height":        true,
	"depth":         true,
	"medium":        true,
	"year_created":  true,
	"category":      true,
	"is_available":  true,
	"is_featured":   true,
	"display_order": true,
}

func (s *artworkAdminService) Update(id string, fields map[string]interface{}) error {
	patch := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if updatableArtworkFields[key] {
			patch[key] = value
		}
	}
	if len(patch) == 0 {
		return fmt.Errorf("no updatable fields in patch")
	}
	if err := s.artworkRepo.Update(id, patch); err != nil {
		return fmt.Errorf("failed to update artwork %s: %w", id, err)
	}
	return nil
}

func (s *artworkAdminService) Delete(id string) error {
	if err := s.artworkRepo.DeleteWithImages(id); err != nil {
		return fmt.Errorf("failed to delete artwork %s: %w", id, err)
	}
	return nil
}

func (s *artworkAdminService) ImagesFor(artworkID string) ([]models.ArtworkImage, error) {
	return s.imageRepo.GetByArtwork(artworkID)
}
