// Package timeline implements the TimelineEvent repository using PostgreSQL.
package timeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nuestra-historia/backend/internal/adapter/postgres"
	"github.com/nuestra-historia/backend/internal/domain"
)

// Repo provides timeline event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new timeline repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, date, title, description, emoji, created_at`

const listEventsSQL = `
SELECT ` + eventColumns + `
FROM timeline_events
ORDER BY created_at ASC`

const createEventSQL = `
INSERT INTO timeline_events (id, date, title, description, emoji, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + eventColumns

const updateEventSQL = `
UPDATE timeline_events
SET date = $2, title = $3, description = $4, emoji = $5
WHERE id = $1
RETURNING ` + eventColumns

const deleteEventSQL = `DELETE FROM timeline_events WHERE id = $1`

// List returns all timeline events, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.TimelineEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listEventsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event")
	}
	defer rows.Close()

	events := []domain.TimelineEvent{}
	for rows.Next() {
		var e domain.TimelineEvent
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Description, &e.Emoji, &e.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "timeline_event")
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "timeline_event")
	}

	return events, nil
}

// Create inserts a new timeline event and returns the persisted row.
func (r *Repo) Create(ctx context.Context, e *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.TimelineEvent
	err := q.QueryRow(ctx, createEventSQL,
		e.ID, e.Date, e.Title, e.Description, e.Emoji, e.CreatedAt).
		Scan(&created.ID, &created.Date, &created.Title, &created.Description, &created.Emoji, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event")
	}

	return &created, nil
}

// Update replaces the editable fields of an event and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, e *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var updated domain.TimelineEvent
	err := q.QueryRow(ctx, updateEventSQL,
		id, e.Date, e.Title, e.Description, e.Emoji).
		Scan(&updated.ID, &updated.Date, &updated.Title, &updated.Description, &updated.Emoji, &updated.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "timeline_event")
	}

	return &updated, nil
}

// Delete removes an event. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteEventSQL, id)
	if err != nil {
		return postgres.MapError(err, "timeline_event")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "timeline_event")
	}

	return nil
}
