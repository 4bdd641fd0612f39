package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"gallery_store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedAdmin(t *testing.T, env *testEnv) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, env.db.Create(&models.AdminUser{Email: "admin@example.com", PasswordHash: string(hash)}).Error)

	w := env.do(postJSON("/api/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "secret",
	}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func authed(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAdmin_LoginRejectsWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	seedAdmin(t, env)

	w := env.do(postJSON("/api/admin/login", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_RoutesRequireToken(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(postJSON("/api/admin/artworks", map[string]interface{}{"title": "X", "slug": "x", "price": 1}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, env.do(req).Code)
}

func TestAdmin_ArtworkLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	token := seedAdmin(t, env)

	// create
	w := env.do(authed(postJSON("/api/admin/artworks", map[string]interface{}{
		"title":        "Morning Light",
		"slug":         "morning-light",
		"price":        85000,
		"medium":       "Oil on canvas",
		"year_created": 2024,
		"category":     "painting",
	}), token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// partial update
	w = env.do(authed(putJSON("/api/admin/artworks/"+created.ID, map[string]interface{}{
		"price":       90000,
		"is_featured": true,
	}), token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var artwork models.Artwork
	require.NoError(t, env.db.First(&artwork, "id = ?", created.ID).Error)
	assert.Equal(t, int64(90000), artwork.Price)
	assert.True(t, artwork.IsFeatured)
	assert.Equal(t, "Morning Light", artwork.Title)

	// delete removes the artwork and its images
	require.NoError(t, env.db.Create(&models.ArtworkImage{ArtworkID: created.ID, ImageURL: "https://img/1.jpg"}).Error)
	req, _ := http.NewRequest(http.MethodDelete, "/api/admin/artworks/"+created.ID, nil)
	w = env.do(authed(req, token))
	require.Equal(t, http.StatusOK, w.Code)

	var artworkCount, imageCount int64
	env.db.Model(&models.Artwork{}).Count(&artworkCount)
	env.db.Model(&models.ArtworkImage{}).Count(&imageCount)
	assert.Zero(t, artworkCount)
	assert.Zero(t, imageCount)
}

func TestAdmin_UpdateIgnoresUnknownFields(t *testing.T) {
	env := setupTestEnv(t)
	token := seedAdmin(t, env)

	artwork := &models.Artwork{Title: "A", Slug: "a", Price: 1000}
	require.NoError(t, env.db.Create(artwork).Error)

	w := env.do(authed(putJSON("/api/admin/artworks/"+artwork.ID, map[string]interface{}{
		"id":      "attacker-chosen",
		"unknown": "field",
	}), token))
	// a patch with nothing updatable is rejected
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdmin_UploadImage(t *testing.T) {
	env := setupTestEnv(t)
	token := seedAdmin(t, env)

	artwork := &models.Artwork{Title: "A", Slug: "a", Price: 1000}
	require.NoError(t, env.db.Create(artwork).Error)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="image"; filename="front.jpg"`},
		"Content-Type":        {"image/jpeg"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/artworks/"+artwork.ID+"/images", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := env.do(authed(req, token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// first image becomes the primary one
	var image models.ArtworkImage
	require.NoError(t, env.db.First(&image, "artwork_id = ?", artwork.ID).Error)
	assert.True(t, image.IsPrimary)
	assert.Contains(t, image.ImageURL, artwork.ID)
}

func TestAdmin_OrderListingAndStatus(t *testing.T) {
	env := setupTestEnv(t)
	token := seedAdmin(t, env)

	order := &models.Order{
		CustomerName:    "Hanako Sato",
		CustomerEmail:   "buyer@example.com",
		TotalAmount:     85000,
		Status:          string(models.OrderConfirmed),
		StripeSessionID: "cs_1",
	}
	require.NoError(t, env.db.Create(order).Error)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	w := env.do(authed(req, token))
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Orders, 1)

	w = env.do(authed(putJSON("/api/admin/orders/"+order.ID+"/status", map[string]string{"status": "shipped"}), token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got models.Order
	require.NoError(t, env.db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, "shipped", got.Status)

	w = env.do(authed(putJSON("/api/admin/orders/"+order.ID+"/status", map[string]string{"status": "bogus"}), token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
