package auth

import "github.com/google/uuid"

// Identity is the authenticated caller as asserted by a session token.
// Name is whatever the token carries; it is never re-checked against the
// user store, so outstanding tokens keep the name they were issued with.
type Identity struct {
	ID       uuid.UUID
	Username string
	Name     string
}
