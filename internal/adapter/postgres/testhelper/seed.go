package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuestra-historia/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique username and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$notarealhashbutitdoesnotmatterhere",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedMemory inserts a memory with no likes and returns it.
func SeedMemory(t *testing.T, pool *pgxpool.Pool) domain.Memory {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	memory := domain.Memory{
		ID:          uuid.New(),
		Title:       "Memory " + suffix,
		Description: "Description " + suffix,
		Color:       domain.DefaultMemoryColor,
		LikedBy:     []uuid.UUID{},
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO memories (id, title, description, color, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		memory.ID, memory.Title, memory.Description, memory.Color, memory.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemory insert: %v", err)
	}

	return memory
}
