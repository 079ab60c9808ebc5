// Package song implements the Song repository using PostgreSQL.
package song

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nuestra-historia/backend/internal/adapter/postgres"
	"github.com/nuestra-historia/backend/internal/domain"
)

// Repo provides song persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new song repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const songColumns = `id, song, artist, reason, created_at`

const listSongsSQL = `
SELECT ` + songColumns + `
FROM songs
ORDER BY created_at DESC`

const createSongSQL = `
INSERT INTO songs (id, song, artist, reason, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + songColumns

const updateSongSQL = `
UPDATE songs
SET song = $2, artist = $3, reason = $4
WHERE id = $1
RETURNING ` + songColumns

const deleteSongSQL = `DELETE FROM songs WHERE id = $1`

// List returns all songs, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSongsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "song")
	}
	defer rows.Close()

	songs := []domain.Song{}
	for rows.Next() {
		var s domain.Song
		if err := rows.Scan(&s.ID, &s.Song, &s.Artist, &s.Reason, &s.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "song")
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "song")
	}

	return songs, nil
}

// Create inserts a new song and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.Song) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.Song
	err := q.QueryRow(ctx, createSongSQL,
		s.ID, s.Song, s.Artist, s.Reason, s.CreatedAt).
		Scan(&created.ID, &created.Song, &created.Artist, &created.Reason, &created.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "song")
	}

	return &created, nil
}

// Update replaces the editable fields of a song and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, s *domain.Song) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var updated domain.Song
	err := q.QueryRow(ctx, updateSongSQL,
		id, s.Song, s.Artist, s.Reason).
		Scan(&updated.ID, &updated.Song, &updated.Artist, &updated.Reason, &updated.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "song")
	}

	return &updated, nil
}

// Delete removes a song. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSongSQL, id)
	if err != nil {
		return postgres.MapError(err, "song")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "song")
	}

	return nil
}
