package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/models/response_models"
	"urbanscribe/pkg/utils"
)

type UploadServiceInterface interface {
	UploadImage(ctx context.Context, file request_models.ImageFile) (*response_models.UploadResult, error)
}

// MaxUploadSize is the hard ceiling on accepted image files.
const MaxUploadSize = 10 * 1024 * 1024

// allowedImageTypes is the exact MIME allow-list for uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadService validates uploads and fabricates an acknowledgment without
// persisting anything. A real storage backend satisfies the same interface.
type UploadService struct {
	delay   time.Duration
	maxSize int64
}

func NewUploadService(delay time.Duration, maxSize int64) UploadServiceInterface {
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	return &UploadService{delay: delay, maxSize: maxSize}
}

func (s *UploadService) UploadImage(ctx context.Context, file request_models.ImageFile) (*response_models.UploadResult, error) {
	if file.Filename == "" {
		return nil, utils.ErrNoImageFile
	}
	if !allowedImageTypes[file.ContentType] {
		return nil, fmt.Errorf("%w: %q (allowed: JPEG, PNG, WEBP, GIF)", utils.ErrUnsupportedImage, file.ContentType)
	}
	if file.Size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", utils.ErrImageTooLarge, file.Size, s.maxSize)
	}

	if err := sleepFor(ctx, s.delay); err != nil {
		return nil, err
	}

	return &response_models.UploadResult{
		Success:    true,
		ImageURL:   fmt.Sprintf("https://picsum.photos/seed/%s/800/600", uuid.New().String()),
		Filename:   file.Filename,
		Size:       file.Size,
		UploadedAt: utils.NowRFC3339(),
	}, nil
}
