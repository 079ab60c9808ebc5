package auth

import "github.com/nuestra-historia/backend/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  *domain.User
}
