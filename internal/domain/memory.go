package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// DefaultMemoryColor is the card color applied when the client sends none.
const DefaultMemoryColor = "bg-pink-100"

// Memory is a photo-gallery entry. Likes holds the count of LikedBy; the
// database derives it from the array, so the two can never drift apart.
type Memory struct {
	ID          uuid.UUID
	Title       string
	Description string
	ImageURL    *string
	Color       string
	Likes       int
	LikedBy     []uuid.UUID
	CreatedAt   time.Time
}

// IsLikedBy reports whether the given user has liked this memory.
func (m *Memory) IsLikedBy(userID uuid.UUID) bool {
	return slices.Contains(m.LikedBy, userID)
}

// MemoryUpdate holds the optional fields of a memory update.
// Nil pointers leave the stored value untouched.
type MemoryUpdate struct {
	Title       *string
	Description *string
	Color       *string
	ImageURL    *string
}

// IsEmpty reports whether the update changes nothing.
func (u MemoryUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Color == nil && u.ImageURL == nil
}
