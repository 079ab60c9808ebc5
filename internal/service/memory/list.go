package memory

import (
	"context"
	"fmt"

	"github.com/nuestra-historia/backend/internal/domain"
)

// List returns all memories, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Memory, error) {
	memories, err := s.memories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory.List: %w", err)
	}
	return memories, nil
}
