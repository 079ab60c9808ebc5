// Package rest implements the JSON HTTP API. Error responses are always
// {"error": "..."} with user-facing Spanish messages; success bodies carry
// the entity or a {"message": "..."} confirmation.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

const msgServerError = "Error del servidor"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps service errors to HTTP responses. notFound is the
// entity-specific message used for domain.ErrNotFound.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "No hay token, autorización denegada")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, msgServerError)
	}
}

// idParam parses the {id} URL parameter. A malformed ID behaves like an ID
// that matches nothing, so callers treat the error as not-found.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
