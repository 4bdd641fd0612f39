package handlers

import (
	"net/http"
	"strconv"

	"gallery_store/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListArtworks serves the gallery listings. Filters combine through query
// parameters: ?available=true, ?category=..., ?featured=true&limit=N.
func (h *CatalogHandler) ListArtworks(c *gin.Context) {
	if c.Query("featured") == "true" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
		c.JSON(http.StatusOK, gin.H{"artworks": h.catalogService.FeaturedArtworks(limit)})
		return
	}
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"artworks": h.catalogService.ArtworksByCategory(category)})
		return
	}
	if c.Query("available") == "true" {
		c.JSON(http.StatusOK, gin.H{"artworks": h.catalogService.AvailableArtworks()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artworks": h.catalogService.AllArtworks()})
}

func (h *CatalogHandler) GetArtworkBySlug(c *gin.Context) {
	artwork := h.catalogService.ArtworkBySlug(c.Param("slug"))
	if artwork == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"artwork":           artwork,
		"primary_image_url": artwork.PrimaryImageURL(),
	})
}

func (h *CatalogHandler) GetRelatedArtworks(c *gin.Context) {
	artwork := h.catalogService.ArtworkBySlug(c.Param("slug"))
	if artwork == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "3"))
	related := h.catalogService.RelatedArtworks(artwork.ID, artwork.Category, limit)
	c.JSON(http.StatusOK, gin.H{"artworks": related})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.Categories()})
}

func (h *CatalogHandler) GetArtistProfile(c *gin.Context) {
	profile := h.catalogService.ArtistProfile()
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *CatalogHandler) GetPageContent(c *gin.Context) {
	content := h.catalogService.PageContent(c.Param("key"))
	if content == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": content})
}
