package middleware

import (
	"net/http"
	"strings"

	"github.com/nuestra-historia/backend/internal/auth"
	"github.com/nuestra-historia/backend/pkg/ctxutil"
)

// Error messages returned by the auth guard. The missing-token and
// invalid-token cases are distinct on purpose; both are 401.
const (
	msgNoToken      = "No hay token, autorización denegada"
	msgInvalidToken = "Token inválido"
)

type tokenValidator interface {
	ValidateToken(token string) (auth.Identity, error)
}

// RequireAuth returns middleware that rejects any request without a valid
// session token. A well-formed token puts the asserted identity into the
// request context.
func RequireAuth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				jsonError(w, http.StatusUnauthorized, msgNoToken)
				return
			}

			identity, err := validator.ValidateToken(token)
			if err != nil {
				jsonError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			ctx := ctxutil.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken returns the token from an "Authorization: Bearer <tok>"
// header. Any other scheme counts as no token at all.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
