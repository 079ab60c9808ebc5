package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is one half of the couple. Accounts are created via registration and
// never mutated or deleted afterwards.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// NormalizeUsername lowercases and trims a username. All lookups and the
// uniqueness constraint operate on the normalized form.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
