package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"gallery_store/internal/models"
	"gallery_store/internal/repository"
	"gallery_store/pkg/objstore"
)

// MaxImageSize caps uploads at 10MB.
const MaxImageSize = 10 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

var (
	ErrImageTooLarge    = fmt.Errorf("image exceeds the %dMB limit", MaxImageSize>>20)
	ErrUnsupportedImage = fmt.Errorf("unsupported image type, expected JPEG, PNG, or WebP")
)

// ImageService uploads artwork images to object storage and records them.
type ImageService interface {
	Upload(ctx context.Context, artworkID, filename, contentType string, size int64, body io.Reader) (*models.ArtworkImage, error)
	Delete(id string) error
}

type imageService struct {
	imageRepo repository.ArtworkImageRepository
	uploader  objstore.Uploader
}

func NewImageService(imageRepo repository.ArtworkImageRepository, uploader objstore.Uploader) ImageService {
	return &imageService{imageRepo: imageRepo, uploader: uploader}
}

func (s *imageService) Upload(ctx context.Context, artworkID, filename, contentType string, size int64, body io.Reader) (*models.ArtworkImage, error) {
	if size > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedImage
	}
	if e := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), "."); e != "" {
		ext = e
	}

	count, err := s.imageRepo.CountByArtwork(artworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing images: %w", err)
	}

	key := fmt.Sprintf("artworks/%s/%d.%s", artworkID, time.Now().UnixMilli(), ext)
	url, err := s.uploader.Upload(ctx, key, contentType, io.LimitReader(body, MaxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image := &models.ArtworkImage{
		ArtworkID:    artworkID,
		ImageURL:     url,
		DisplayOrder: int(count),
		// The first uploaded image represents the artwork in listings.
		IsPrimary: count == 0,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, fmt.Errorf("failed to record image: %w", err)
	}
	return image, nil
}

func (s *imageService) Delete(id string) error {
	if err := s.imageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}
	return nil
}
