package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultEmoji decorates timeline events that arrive without one.
const DefaultEmoji = "💕"

// TimelineEvent is a milestone on the relationship timeline. Date is a
// free-form display string chosen by the client, not a parsed timestamp.
type TimelineEvent struct {
	ID          uuid.UUID
	Date        string
	Title       string
	Description string
	Emoji       string
	CreatedAt   time.Time
}
