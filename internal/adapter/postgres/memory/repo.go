// Package memory implements the Memory repository using PostgreSQL.
// The like toggle is a single-row UPDATE so concurrent toggles by different
// users serialize at the database and no update is lost.
package memory

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nuestra-historia/backend/internal/adapter/postgres"
	"github.com/nuestra-historia/backend/internal/domain"
)

// Repo provides memory persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new memory repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const memoryColumns = `id, title, description, image_url, color, liked_by, likes, created_at`

const listMemoriesSQL = `
SELECT ` + memoryColumns + `
FROM memories
ORDER BY created_at DESC`

const getMemoryByIDSQL = `
SELECT ` + memoryColumns + `
FROM memories
WHERE id = $1`

const createMemorySQL = `
INSERT INTO memories (id, title, description, image_url, color, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + memoryColumns

// toggleLikeSQL flips membership of one user in liked_by atomically.
// likes is a generated column (cardinality of liked_by), so it always
// matches the array and never needs a clamp.
const toggleLikeSQL = `
UPDATE memories
SET liked_by = CASE
	WHEN $2 = ANY(liked_by) THEN array_remove(liked_by, $2)
	ELSE array_append(liked_by, $2)
END
WHERE id = $1
RETURNING ` + memoryColumns

const deleteMemorySQL = `DELETE FROM memories WHERE id = $1`

// List returns all memories, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Memory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listMemoriesSQL)
	if err != nil {
		return nil, postgres.MapError(err, "memory")
	}
	defer rows.Close()

	memories := []domain.Memory{}
	for rows.Next() {
		m, err := scanMemory(rows)
		if err != nil {
			return nil, postgres.MapError(err, "memory")
		}
		memories = append(memories, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "memory")
	}

	return memories, nil
}

// GetByID returns a memory by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Memory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMemory(q.QueryRow(ctx, getMemoryByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "memory")
	}

	return m, nil
}

// Create inserts a new memory and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Memory) (*domain.Memory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanMemory(q.QueryRow(ctx, createMemorySQL,
		m.ID, m.Title, m.Description, m.ImageURL, m.Color, m.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "memory")
	}

	return created, nil
}

// Update modifies the provided fields of a memory and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.MemoryUpdate) (*domain.Memory, error) {
	b := sq.Update("memories").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + memoryColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.Color != nil {
		b = b.Set("color", *params.Color)
	}
	if params.ImageURL != nil {
		b = b.Set("image_url", *params.ImageURL)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "memory")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMemory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "memory")
	}

	return m, nil
}

// ToggleLike adds userID to liked_by if absent, removes it if present, in one
// atomic statement. Returns domain.ErrNotFound if the memory does not exist.
func (r *Repo) ToggleLike(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Memory, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMemory(q.QueryRow(ctx, toggleLikeSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "memory")
	}

	return m, nil
}

// Delete removes a memory. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteMemorySQL, id)
	if err != nil {
		return postgres.MapError(err, "memory")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "memory")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMemory(row rowScanner) (*domain.Memory, error) {
	var m domain.Memory
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.ImageURL,
		&m.Color, &m.LikedBy, &m.Likes, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	if m.LikedBy == nil {
		m.LikedBy = []uuid.UUID{}
	}
	return &m, nil
}
