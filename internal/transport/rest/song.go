package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/internal/service/song"
)

const msgSongNotFound = "Canción no encontrada"

// songService defines the minimal interface needed by SongHandler.
type songService interface {
	List(ctx context.Context) ([]domain.Song, error)
	Create(ctx context.Context, input song.SongInput) (*domain.Song, error)
	Update(ctx context.Context, id uuid.UUID, input song.SongInput) (*domain.Song, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SongHandler serves the playlist REST endpoints.
type SongHandler struct {
	svc songService
	log *slog.Logger
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc songService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, log: logger.With("handler", "song")}
}

type songRequest struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
	Reason string `json:"reason"`
}

type songResponse struct {
	ID        string    `json:"id"`
	Song      string    `json:"song"`
	Artist    string    `json:"artist"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/songs.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	songs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, msgSongNotFound)
		return
	}

	out := make([]songResponse, 0, len(songs))
	for i := range songs {
		out = append(out, toSongResponse(&songs[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/songs.
func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Canción, artista y razón son requeridos")
		return
	}

	created, err := h.svc.Create(r.Context(), song.SongInput(req))
	if err != nil {
		handleError(w, r, h.log, err, msgSongNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toSongResponse(created))
}

// Update handles PUT /api/songs/{id}.
func (h *SongHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgSongNotFound)
		return
	}

	var req songRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Canción, artista y razón son requeridos")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, song.SongInput(req))
	if err != nil {
		handleError(w, r, h.log, err, msgSongNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toSongResponse(updated))
}

// Delete handles DELETE /api/songs/{id}.
func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgSongNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, msgSongNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Canción eliminada exitosamente"})
}

func toSongResponse(s *domain.Song) songResponse {
	return songResponse{
		ID:        s.ID.String(),
		Song:      s.Song,
		Artist:    s.Artist,
		Reason:    s.Reason,
		CreatedAt: s.CreatedAt,
	}
}
