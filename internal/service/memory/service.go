// Package memory implements the photo-gallery business logic: the memory
// wall, its image uploads and the per-user like toggle.
package memory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/internal/storage"
)

type memoryRepo interface {
	List(ctx context.Context) ([]domain.Memory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Memory, error)
	Create(ctx context.Context, m *domain.Memory) (*domain.Memory, error)
	Update(ctx context.Context, id uuid.UUID, params domain.MemoryUpdate) (*domain.Memory, error)
	ToggleLike(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Memory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type imageStore interface {
	Save(ctx context.Context, up storage.Upload) (string, error)
	Remove(ctx context.Context, url string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements memory operations.
type Service struct {
	log           *slog.Logger
	memories      memoryRepo
	images        imageStore
	tx            txManager
	maxUploadSize int64
}

// NewService creates a new memory service instance.
func NewService(logger *slog.Logger, memories memoryRepo, images imageStore, tx txManager, maxUploadSize int64) *Service {
	return &Service{
		log:           logger.With("service", "memory"),
		memories:      memories,
		images:        images,
		tx:            tx,
		maxUploadSize: maxUploadSize,
	}
}

// saveImage validates and stores an upload, returning its public URL.
func (s *Service) saveImage(ctx context.Context, up *storage.Upload) (*string, error) {
	if up == nil {
		return nil, nil
	}
	if err := storage.ValidateUpload(*up, s.maxUploadSize); err != nil {
		return nil, err
	}
	url, err := s.images.Save(ctx, *up)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
