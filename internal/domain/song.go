package domain

import (
	"time"

	"github.com/google/uuid"
)

// Song is an entry on the couple's shared song list.
type Song struct {
	ID        uuid.UUID
	Song      string
	Artist    string
	Reason    string
	CreatedAt time.Time
}
