package services

import (
	"errors"
	"log"

	"gallery_store/internal/models"
	"gallery_store/internal/repository"
)

// CatalogService serves the storefront's read paths. Repositories return
// honest errors; this layer implements the storefront policy of logging a
// failed read and degrading to an empty result so pages still render.
type CatalogService interface {
	AllArtworks() []models.Artwork
	AvailableArtworks() []models.Artwork
	ArtworksByCategory(category string) []models.Artwork
	ArtworkBySlug(slug string) *models.Artwork
	ArtworkByID(id string) *models.Artwork
	RelatedArtworks(currentID, category string, limit int) []models.Artwork
	FeaturedArtworks(limit int) []models.Artwork
	Categories() []string
	ArtistProfile() *models.ArtistProfile
	PageContent(pageKey string) *models.PageContent
}

type catalogService struct {
	artworkRepo repository.ArtworkRepository
	artistRepo  repository.ArtistRepository
	pageRepo    repository.PageContentRepository
}

func NewCatalogService(
	artworkRepo repository.ArtworkRepository,
	artistRepo repository.ArtistRepository,
	pageRepo repository.PageContentRepository,
) CatalogService {
	return &catalogService{
		artworkRepo: artworkRepo,
		artistRepo:  artistRepo,
		pageRepo:    pageRepo,
	}
}

func (s *catalogService) AllArtworks() []models.Artwork {
	artworks, err := s.artworkRepo.GetAll()
	if err != nil {
		log.Printf("Failed to fetch artworks: %v", err)
		return []models.Artwork{}
	}
	return artworks
}

func (s *catalogService) AvailableArtworks() []models.Artwork {
	artworks, err := s.artworkRepo.GetAvailable()
	if err != nil {
		log.Printf("Failed to fetch available artworks: %v", err)
		return []models.Artwork{}
	}
	return artworks
}

func (s *catalogService) ArtworksByCategory(category string) []models.Artwork {
	artworks, err := s.artworkRepo.GetByCategory(category)
	if err != nil {
		log.Printf("Failed to fetch artworks for category %s: %v", category, err)
		return []models.Artwork{}
	}
	return artworks
}

func (s *catalogService) ArtworkBySlug(slug string) *models.Artwork {
	artwork, err := s.artworkRepo.GetBySlug(slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("Failed to fetch artwork %s: %v", slug, err)
		}
		return nil
	}
	return artwork
}

func (s *catalogService) ArtworkByID(id string) *models.Artwork {
	artwork, err := s.artworkRepo.GetByID(id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("Failed to fetch artwork %s: %v", id, err)
		}
		return nil
	}
	return artwork
}

func (s *catalogService) RelatedArtworks(currentID, category string, limit int) []models.Artwork {
	if limit <= 0 {
		limit = 3
	}
	artworks, err := s.artworkRepo.GetRelated(currentID, category, limit)
	if err != nil {
		log.Printf("Failed to fetch related artworks: %v", err)
		return []models.Artwork{}
	}
	return artworks
}

func (s *catalogService) FeaturedArtworks(limit int) []models.Artwork {
	if limit <= 0 {
		limit = 6
	}
	artworks, err := s.artworkRepo.GetFeatured(limit)
	if err != nil {
		log.Printf("Failed to fetch featured artworks: %v", err)
		return []models.Artwork{}
	}
	return artworks
}

func (s *catalogService) Categories() []string {
	categories, err := s.artworkRepo.GetCategories()
	if err != nil {
		log.Printf("Failed to fetch categories: %v", err)
		return []string{}
	}
	return categories
}

func (s *catalogService) ArtistProfile() *models.ArtistProfile {
	profile, err := s.artistRepo.GetProfile()
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("Failed to fetch artist profile: %v", err)
		}
		return nil
	}
	return profile
}

func (s *catalogService) PageContent(pageKey string) *models.PageContent {
	content, err := s.pageRepo.GetByKey(pageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("Failed to fetch page content %s: %v", pageKey, err)
		}
		return nil
	}
	return content
}
