package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/internal/service/timeline"
)

const msgEventNotFound = "Evento no encontrado"

// timelineService defines the minimal interface needed by TimelineHandler.
type timelineService interface {
	List(ctx context.Context) ([]domain.TimelineEvent, error)
	Create(ctx context.Context, input timeline.EventInput) (*domain.TimelineEvent, error)
	Update(ctx context.Context, id uuid.UUID, input timeline.EventInput) (*domain.TimelineEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TimelineHandler serves the timeline REST endpoints.
type TimelineHandler struct {
	svc timelineService
	log *slog.Logger
}

// NewTimelineHandler creates a TimelineHandler.
func NewTimelineHandler(svc timelineService, logger *slog.Logger) *TimelineHandler {
	return &TimelineHandler{svc: svc, log: logger.With("handler", "timeline")}
}

type eventRequest struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Emoji       string    `json:"emoji"`
	CreatedAt   time.Time `json:"createdAt"`
}

// List handles GET /api/timeline.
func (h *TimelineHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, msgEventNotFound)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for i := range events {
		out = append(out, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/timeline.
func (h *TimelineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Fecha, título y descripción son requeridos")
		return
	}

	event, err := h.svc.Create(r.Context(), timeline.EventInput(req))
	if err != nil {
		handleError(w, r, h.log, err, msgEventNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// Update handles PUT /api/timeline/{id}.
func (h *TimelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgEventNotFound)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Fecha, título y descripción son requeridos")
		return
	}

	event, err := h.svc.Update(r.Context(), id, timeline.EventInput(req))
	if err != nil {
		handleError(w, r, h.log, err, msgEventNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Delete handles DELETE /api/timeline/{id}.
func (h *TimelineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgEventNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, msgEventNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Evento eliminado exitosamente"})
}

func toEventResponse(e *domain.TimelineEvent) eventResponse {
	return eventResponse{
		ID:          e.ID.String(),
		Date:        e.Date,
		Title:       e.Title,
		Description: e.Description,
		Emoji:       e.Emoji,
		CreatedAt:   e.CreatedAt,
	}
}
