// Package message implements the Message repository using PostgreSQL.
package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nuestra-historia/backend/internal/adapter/postgres"
	"github.com/nuestra-historia/backend/internal/domain"
)

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const messageColumns = `id, sender, content, created_at`

const listMessagesSQL = `
SELECT ` + messageColumns + `
FROM messages
ORDER BY created_at ASC`

const createMessageSQL = `
INSERT INTO messages (id, sender, content, created_at)
VALUES ($1, $2, $3, $4)
RETURNING ` + messageColumns

const deleteMessageSQL = `DELETE FROM messages WHERE id = $1`

// List returns all messages, oldest first.
func (r *Repo) List(ctx context.Context) ([]domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMessagesSQL)
	if err != nil {
		return nil, postgres.MapError(err, "message")
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "message")
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "message")
	}

	return messages, nil
}

// Create inserts a new message and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Message
	err := q.QueryRow(ctx, createMessageSQL,
		m.ID, m.Sender, m.Content, m.CreatedAt).
		Scan(&created.ID, &created.Sender, &created.Content, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "message")
	}

	return &created, nil
}

// Delete removes a message. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteMessageSQL, id)
	if err != nil {
		return postgres.MapError(err, "message")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "message")
	}

	return nil
}
