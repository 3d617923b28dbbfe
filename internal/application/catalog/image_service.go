package catalog

import (
	"context"
	"time"

	"github.com/erp/bizhub/internal/domain/catalog"
	"github.com/erp/bizhub/internal/domain/identity"
	"go.uber.org/zap"
)

// ObjectStorage issues presigned URLs for product image binaries.
// Implemented by the S3 client and by the local stub.
type ObjectStorage interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string) (string, time.Time, error)
	GenerateDownloadURL(ctx context.Context, storageKey string) (string, time.Time, error)
}

// ImageService registers product images and hands out presigned URLs.
// The binary never passes through the API.
type ImageService struct {
	productRepo catalog.ProductRepository
	imageRepo   catalog.ProductImageRepository
	storage     ObjectStorage
	logger      *zap.Logger
}

// NewImageService creates a new ImageService
func NewImageService(
	productRepo catalog.ProductRepository,
	imageRepo catalog.ProductImageRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *ImageService {
	return &ImageService{
		productRepo: productRepo,
		imageRepo:   imageRepo,
		storage:     storage,
		logger:      logger,
	}
}

// RequestUpload records an image for a visible product and returns where to PUT it
func (s *ImageService) RequestUpload(ctx context.Context, scope identity.Scope, productID int64, req ImageUploadRequest) (*ImageUploadResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, scope, productID); err != nil {
		return nil, err
	}
	image, err := catalog.NewProductImage(productID, req.ContentType, req.IsPrimary)
	if err != nil {
		return nil, err
	}
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, image.StorageKey, image.ContentType)
	if err != nil {
		s.logger.Error("Failed to presign upload", zap.String("key", image.StorageKey), zap.Error(err))
		return nil, err
	}
	if image.IsPrimary {
		if err := s.imageRepo.ClearPrimary(ctx, productID); err != nil {
			return nil, err
		}
	}
	if err := s.imageRepo.Save(ctx, image); err != nil {
		return nil, err
	}
	return &ImageUploadResponse{
		ImageID:    image.ID,
		StorageKey: image.StorageKey,
		UploadURL:  url,
		ExpiresAt:  expiresAt,
	}, nil
}

// List returns the images of a visible product, primary first
func (s *ImageService) List(ctx context.Context, scope identity.Scope, productID int64) ([]ImageResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, scope, productID); err != nil {
		return nil, err
	}
	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		url, expires, err := s.storage.GenerateDownloadURL(ctx, img.StorageKey)
		if err != nil {
			return nil, err
		}
		out = append(out, ImageResponse{
			ID:          img.ID,
			ProductID:   img.ProductID,
			ContentType: img.ContentType,
			IsPrimary:   img.IsPrimary,
			URL:         url,
			URLExpires:  expires,
			CreatedAt:   img.CreatedAt,
		})
	}
	return out, nil
}
