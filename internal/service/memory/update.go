package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

// Update modifies the provided fields of a memory. A new image replaces the
// stored URL; fields left nil keep their current value.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateMemoryInput) (*domain.Memory, error) {
	params := domain.MemoryUpdate{
		Title:       trimPtr(input.Title),
		Description: trimPtr(input.Description),
		Color:       trimPtr(input.Color),
	}

	imageURL, err := s.saveImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}
	params.ImageURL = imageURL

	// An empty update still has to report whether the memory exists.
	if params.IsEmpty() {
		memory, err := s.memories.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("memory.Update: %w", err)
		}
		return memory, nil
	}

	memory, err := s.memories.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("memory.Update: %w", err)
	}

	return memory, nil
}

// trimPtr trims the pointed-to string, keeping nil as nil.
func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	return &t
}
