package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

// Create adds a new memory to the wall, storing the attached image first
// if one was uploaded.
func (s *Service) Create(ctx context.Context, input CreateMemoryInput) (*domain.Memory, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Color = strings.TrimSpace(input.Color)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	imageURL, err := s.saveImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = domain.DefaultMemoryColor
	}

	memory, err := s.memories.Create(ctx, &domain.Memory{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    imageURL,
		Color:       color,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("memory.Create: %w", err)
	}

	s.log.InfoContext(ctx, "memory created",
		slog.String("memory_id", memory.ID.String()))

	return memory, nil
}
