package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a note on the private message board. Sender is the display name
// taken verbatim from the author's session token at creation time.
type Message struct {
	ID        uuid.UUID
	Sender    string
	Content   string
	CreatedAt time.Time
}
