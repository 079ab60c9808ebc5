package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes a memory from the wall. The row read and delete run in one
// transaction; the stored image, if any, is removed afterwards best effort.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	var imageURL *string

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		m, err := s.memories.GetByID(ctx, id)
		if err != nil {
			return err
		}
		imageURL = m.ImageURL

		return s.memories.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("memory.Delete: %w", err)
	}

	if imageURL != nil {
		if err := s.images.Remove(ctx, *imageURL); err != nil {
			s.log.WarnContext(ctx, "failed to remove memory image",
				slog.String("memory_id", id.String()),
				slog.String("error", err.Error()))
		}
	}

	s.log.InfoContext(ctx, "memory deleted",
		slog.String("memory_id", id.String()))

	return nil
}
