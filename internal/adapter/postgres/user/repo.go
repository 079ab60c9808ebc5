// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/nuestra-historia/backend/internal/adapter/postgres"
	"github.com/nuestra-historia/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createUserSQL = `
INSERT INTO users (id, username, name, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, username, name, password_hash, created_at`

const getUserByUsernameSQL = `
SELECT id, username, name, password_hash, created_at
FROM users
WHERE username = $1`

// Create inserts a new user. Username uniqueness is enforced by the DB
// unique index; a violation surfaces as domain.ErrAlreadyExists, so two
// concurrent registrations with the same handle cannot both succeed.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createUserSQL,
		u.ID, u.Username, u.Name, u.PasswordHash, u.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return created, nil
}

// GetByUsername returns a user by normalized username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getUserByUsernameSQL, username)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
