// Package storage implements the image storage collaborator: it accepts an
// uploaded file and yields a URL string that is stored verbatim on the memory
// record. Two providers exist, local disk and Cloudinary, selected by
// configuration; callers only ever see the Store interface.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/nuestra-historia/backend/internal/config"
	"github.com/nuestra-historia/backend/internal/domain"
)

// Upload is a file received from a client, ready to be stored.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Store saves an uploaded image and returns its public URL. Remove deletes
// a previously stored image by that URL; it is best effort and callers must
// tolerate failures.
type Store interface {
	Save(ctx context.Context, up Upload) (string, error)
	Remove(ctx context.Context, url string) error
}

// allowedExtensions mirrors the formats the gallery accepts.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// New selects and constructs the configured storage provider.
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Provider {
	case "local":
		return NewLocal(cfg.UploadsDir, cfg.PublicPath)
	case "cloudinary":
		return NewCloudinary(cfg.Cloudinary), nil
	default:
		return nil, fmt.Errorf("storage: unknown provider %q", cfg.Provider)
	}
}

// ValidateUpload checks extension and size limits before any provider call.
// Violations are domain validation errors with user-facing messages.
func ValidateUpload(up Upload, maxSize int64) error {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	if !allowedExtensions[ext] {
		return domain.NewValidationError("image", "Formato de imagen no permitido")
	}
	if up.Size > maxSize {
		return domain.NewValidationError("image", "La imagen es demasiado grande")
	}
	return nil
}
