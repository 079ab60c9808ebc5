package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
)

const msgMessageNotFound = "Mensaje no encontrado"

// messageService defines the minimal interface needed by MessageHandler.
type messageService interface {
	List(ctx context.Context) ([]domain.Message, error)
	Create(ctx context.Context, content string) (*domain.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageHandler serves the message board REST endpoints.
type MessageHandler struct {
	svc messageService
	log *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(svc messageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{svc: svc, log: logger.With("handler", "message")}
}

type messageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /api/messages.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, msgMessageNotFound)
		return
	}

	out := make([]messageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toMessageResponse(&messages[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/messages. The sender comes from the session
// identity; a "sender" field in the body is ignored.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "El contenido es requerido")
		return
	}

	message, err := h.svc.Create(r.Context(), req.Content)
	if err != nil {
		handleError(w, r, h.log, err, msgMessageNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(message))
}

// Delete handles DELETE /api/messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgMessageNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, msgMessageNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Mensaje eliminado exitosamente"})
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		Sender:    m.Sender,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}
