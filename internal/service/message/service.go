// Package message implements the shared message board. The sender is taken
// from the authenticated identity, never from the request body.
package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/pkg/ctxutil"
)

const msgContentRequired = "El contenido es requerido"

type messageRepo interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements message board operations.
type Service struct {
	log      *slog.Logger
	messages messageRepo
}

// NewService creates a new message service instance.
func NewService(logger *slog.Logger, messages messageRepo) *Service {
	return &Service{
		log:      logger.With("service", "message"),
		messages: messages,
	}
}

// List returns all messages, oldest first.
func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.messages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("message.List: %w", err)
	}
	return messages, nil
}

// Create posts a message signed with the caller's display name.
func (s *Service) Create(ctx context.Context, content string) (*domain.Message, error) {
	identity, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", msgContentRequired)
	}

	message, err := s.messages.Create(ctx, &domain.Message{
		ID:        uuid.New(),
		Sender:    identity.Name,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("message.Create: %w", err)
	}

	s.log.InfoContext(ctx, "message posted",
		slog.String("message_id", message.ID.String()),
		slog.String("user_id", identity.ID.String()))

	return message, nil
}

// Delete removes a message from the board.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		return fmt.Errorf("message.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "message deleted",
		slog.String("message_id", id.String()))

	return nil
}
