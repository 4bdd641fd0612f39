package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gallery_store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	return env.do(req)
}

type artworkListBody struct {
	Artworks []models.Artwork `json:"artworks"`
}

func decodeArtworks(t *testing.T, data []byte) []models.Artwork {
	t.Helper()
	var body artworkListBody
	require.NoError(t, json.Unmarshal(data, &body))
	return body.Artworks
}

func TestCatalog_ListOrdering(t *testing.T) {
	env := setupTestEnv(t)

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "Second", Slug: "second", Price: 1000, DisplayOrder: 1, CreatedAt: newer,
	}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "Third", Slug: "third", Price: 1000, DisplayOrder: 1, CreatedAt: older,
	}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "First", Slug: "first", Price: 1000, DisplayOrder: 0, CreatedAt: older,
	}).Error)

	w := env.get(t, "/api/artworks")
	require.Equal(t, http.StatusOK, w.Code)

	artworks := decodeArtworks(t, w.Body.Bytes())
	require.Len(t, artworks, 3)
	// display_order ascending, newest first within the same slot
	assert.Equal(t, "First", artworks[0].Title)
	assert.Equal(t, "Second", artworks[1].Title)
	assert.Equal(t, "Third", artworks[2].Title)
}

func TestCatalog_ListFilters(t *testing.T) {
	env := setupTestEnv(t)

	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "Sold Piece", Slug: "sold", Price: 1000, Category: "painting", IsAvailable: false,
	}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "Featured Piece", Slug: "featured", Price: 1000, Category: "print",
		IsAvailable: true, IsFeatured: true,
	}).Error)

	w := env.get(t, "/api/artworks?available=true")
	require.Equal(t, http.StatusOK, w.Code)
	artworks := decodeArtworks(t, w.Body.Bytes())
	require.Len(t, artworks, 1)
	assert.Equal(t, "Featured Piece", artworks[0].Title)

	w = env.get(t, "/api/artworks?category=painting")
	require.Equal(t, http.StatusOK, w.Code)
	artworks = decodeArtworks(t, w.Body.Bytes())
	require.Len(t, artworks, 1)
	assert.Equal(t, "Sold Piece", artworks[0].Title)

	w = env.get(t, "/api/artworks?featured=true&limit=5")
	require.Equal(t, http.StatusOK, w.Code)
	artworks = decodeArtworks(t, w.Body.Bytes())
	require.Len(t, artworks, 1)
	assert.Equal(t, "Featured Piece", artworks[0].Title)
}

func TestCatalog_GetBySlug(t *testing.T) {
	env := setupTestEnv(t)

	artwork := &models.Artwork{Title: "Morning Light", Slug: "morning-light", Price: 85000, IsAvailable: true}
	require.NoError(t, env.db.Create(artwork).Error)
	require.NoError(t, env.db.Create(&models.ArtworkImage{
		ArtworkID: artwork.ID, ImageURL: "https://img/primary.jpg", IsPrimary: true,
	}).Error)

	w := env.get(t, "/api/artworks/morning-light")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Artwork         models.Artwork `json:"artwork"`
		PrimaryImageURL string         `json:"primary_image_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, artwork.ID, body.Artwork.ID)
	assert.Equal(t, "https://img/primary.jpg", body.PrimaryImageURL)

	assert.Equal(t, http.StatusNotFound, env.get(t, "/api/artworks/no-such-slug").Code)
}

func TestCatalog_RelatedExcludesSelfAndSold(t *testing.T) {
	env := setupTestEnv(t)

	base := &models.Artwork{Title: "Base", Slug: "base", Price: 1000, Category: "painting", IsAvailable: true}
	require.NoError(t, env.db.Create(base).Error)
	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "Sibling", Slug: "sibling", Price: 1000, Category: "painting", IsAvailable: true,
	}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{
		Title: "Sold Sibling", Slug: "sold-sibling", Price: 1000, Category: "painting", IsAvailable: false,
	}).Error)

	w := env.get(t, "/api/artworks/base/related")
	require.Equal(t, http.StatusOK, w.Code)
	artworks := decodeArtworks(t, w.Body.Bytes())
	require.Len(t, artworks, 1)
	assert.Equal(t, "Sibling", artworks[0].Title)
}

func TestCatalog_Categories(t *testing.T) {
	env := setupTestEnv(t)

	require.NoError(t, env.db.Create(&models.Artwork{Title: "A", Slug: "a", Price: 1, Category: "print"}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{Title: "B", Slug: "b", Price: 1, Category: "painting"}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{Title: "C", Slug: "c", Price: 1, Category: "painting"}).Error)
	require.NoError(t, env.db.Create(&models.Artwork{Title: "D", Slug: "d", Price: 1}).Error)

	w := env.get(t, "/api/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"painting", "print"}, body.Categories)
}

func TestCatalog_ArtistAndPages(t *testing.T) {
	env := setupTestEnv(t)

	assert.Equal(t, http.StatusNotFound, env.get(t, "/api/artist").Code)
	assert.Equal(t, http.StatusNotFound, env.get(t, "/api/pages/about").Code)

	require.NoError(t, env.db.Create(&models.ArtistProfile{Name: "Yuki Tanaka", Bio: "Landscape painter."}).Error)
	require.NoError(t, env.db.Create(&models.PageContent{PageKey: "about", Title: "About", Content: "The studio."}).Error)

	w := env.get(t, "/api/artist")
	require.Equal(t, http.StatusOK, w.Code)
	var profileBody struct {
		Profile models.ArtistProfile `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profileBody))
	assert.Equal(t, "Yuki Tanaka", profileBody.Profile.Name)

	w = env.get(t, "/api/pages/about")
	require.Equal(t, http.StatusOK, w.Code)
	var pageBody struct {
		Page models.PageContent `json:"page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pageBody))
	assert.Equal(t, "The studio.", pageBody.Page.Content)
}
