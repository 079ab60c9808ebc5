package memory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/pkg/ctxutil"
)

// ToggleLike flips the calling user's like on a memory. The toggle is a
// single database statement, so concurrent toggles by both partners are
// applied in some order and neither is lost.
func (s *Service) ToggleLike(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	memory, err := s.memories.ToggleLike(ctx, id, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("memory.ToggleLike: %w", err)
	}

	s.log.DebugContext(ctx, "like toggled",
		slog.String("memory_id", id.String()),
		slog.String("user_id", identity.ID.String()),
		slog.Bool("liked", memory.IsLikedBy(identity.ID)))

	return memory, nil
}
