// Package timeline implements the relationship timeline: dated milestones
// shown in chronological order.
package timeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

type eventRepo interface {
	List(ctx context.Context) ([]domain.TimelineEvent, error)
	Create(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error)
	Update(ctx context.Context, id uuid.UUID, e *domain.TimelineEvent) (*domain.TimelineEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements timeline operations.
type Service struct {
	log    *slog.Logger
	events eventRepo
}

// NewService creates a new timeline service instance.
func NewService(logger *slog.Logger, events eventRepo) *Service {
	return &Service{
		log:    logger.With("service", "timeline"),
		events: events,
	}
}

// List returns all events ordered by date.
func (s *Service) List(ctx context.Context) ([]domain.TimelineEvent, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("timeline.List: %w", err)
	}
	return events, nil
}

// Create adds a new event to the timeline.
func (s *Service) Create(ctx context.Context, input EventInput) (*domain.TimelineEvent, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	emoji := input.Emoji
	if emoji == "" {
		emoji = domain.DefaultEmoji
	}

	event, err := s.events.Create(ctx, &domain.TimelineEvent{
		ID:          uuid.New(),
		Date:        input.Date,
		Title:       input.Title,
		Description: input.Description,
		Emoji:       emoji,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("timeline.Create: %w", err)
	}

	s.log.InfoContext(ctx, "timeline event created",
		slog.String("event_id", event.ID.String()))

	return event, nil
}

// Update replaces an event's fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input EventInput) (*domain.TimelineEvent, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	emoji := input.Emoji
	if emoji == "" {
		emoji = domain.DefaultEmoji
	}

	event, err := s.events.Update(ctx, id, &domain.TimelineEvent{
		Date:        input.Date,
		Title:       input.Title,
		Description: input.Description,
		Emoji:       emoji,
	})
	if err != nil {
		return nil, fmt.Errorf("timeline.Update: %w", err)
	}

	return event, nil
}

// Delete removes an event from the timeline.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("timeline.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "timeline event deleted",
		slog.String("event_id", id.String()))

	return nil
}

const msgEventFieldsRequired = "Fecha, título y descripción son requeridos"

// EventInput holds parameters for creating or replacing a timeline event.
type EventInput struct {
	Date        string
	Title       string
	Description string
	Emoji       string
}

func (i *EventInput) normalize() {
	i.Date = strings.TrimSpace(i.Date)
	i.Title = strings.TrimSpace(i.Title)
	i.Description = strings.TrimSpace(i.Description)
	i.Emoji = strings.TrimSpace(i.Emoji)
}

// Validate validates the event input.
func (i EventInput) Validate() error {
	var errs []domain.FieldError

	if i.Date == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: msgEventFieldsRequired})
	}
	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: msgEventFieldsRequired})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: msgEventFieldsRequired})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
