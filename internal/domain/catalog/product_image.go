package catalog

import (
	"fmt"
	"path"
	"strings"

	"github.com/erp/bizhub/internal/domain/shared"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ProductImage points at an image stored in object storage
type ProductImage struct {
	shared.BaseEntity
	ProductID   int64
	StorageKey  string
	ContentType string
	IsPrimary   bool
}

// NewProductImage allocates a storage key for a new product image
func NewProductImage(productID int64, contentType string, isPrimary bool) (*ProductImage, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, shared.NewValidationError("unsupported image content type %q", contentType)
	}
	key := path.Join("products", fmt.Sprintf("%d", productID), uuid.NewString()+ext)
	return &ProductImage{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		StorageKey:  key,
		ContentType: contentType,
		IsPrimary:   isPrimary,
	}, nil
}
