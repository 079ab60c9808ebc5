package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/internal/service/memory"
	"github.com/nuestra-historia/backend/internal/storage"
)

const msgMemoryNotFound = "Memoria no encontrada"

// maxMultipartMemory bounds how much of a multipart body is buffered in
// memory; larger files spill to temp files.
const maxMultipartMemory = 8 << 20

// memoryService defines the minimal interface needed by MemoryHandler.
type memoryService interface {
	List(ctx context.Context) ([]domain.Memory, error)
	Create(ctx context.Context, input memory.CreateMemoryInput) (*domain.Memory, error)
	Update(ctx context.Context, id uuid.UUID, input memory.UpdateMemoryInput) (*domain.Memory, error)
	ToggleLike(ctx context.Context, id uuid.UUID) (*domain.Memory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemoryHandler serves the memory wall REST endpoints.
type MemoryHandler struct {
	svc memoryService
	log *slog.Logger
}

// NewMemoryHandler creates a MemoryHandler.
func NewMemoryHandler(svc memoryService, logger *slog.Logger) *MemoryHandler {
	return &MemoryHandler{svc: svc, log: logger.With("handler", "memory")}
}

type memoryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Color       string    `json:"color"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// List handles GET /api/memories.
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	memories, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err, msgMemoryNotFound)
		return
	}

	out := make([]memoryResponse, 0, len(memories))
	for i := range memories {
		out = append(out, toMemoryResponse(&memories[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/memories. The body is either JSON or
// multipart/form-data with an optional "image" file part.
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input memory.CreateMemoryInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeError(w, http.StatusBadRequest, "Título y descripción son requeridos")
			return
		}
		input.Title = r.FormValue("title")
		input.Description = r.FormValue("description")
		input.Color = r.FormValue("color")

		upload, file, err := formImage(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Título y descripción son requeridos")
			return
		}
		if file != nil {
			defer file.Close()
			input.Image = upload
		}
	} else {
		var req struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Color       string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Título y descripción son requeridos")
			return
		}
		input.Title = req.Title
		input.Description = req.Description
		input.Color = req.Color
	}

	m, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err, msgMemoryNotFound)
		return
	}

	writeJSON(w, http.StatusCreated, toMemoryResponse(m))
}

// Update handles PUT /api/memories/{id}. Only the fields present in the
// request are changed.
func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgMemoryNotFound)
		return
	}

	var input memory.UpdateMemoryInput

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			writeError(w, http.StatusBadRequest, "Título y descripción son requeridos")
			return
		}
		input.Title = multipartField(r, "title")
		input.Description = multipartField(r, "description")
		input.Color = multipartField(r, "color")

		upload, file, err := formImage(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Título y descripción son requeridos")
			return
		}
		if file != nil {
			defer file.Close()
			input.Image = upload
		}
	} else {
		var req struct {
			Title       *string `json:"title"`
			Description *string `json:"description"`
			Color       *string `json:"color"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Título y descripción son requeridos")
			return
		}
		input.Title = req.Title
		input.Description = req.Description
		input.Color = req.Color
	}

	m, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err, msgMemoryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toMemoryResponse(m))
}

// ToggleLike handles POST /api/memories/{id}/like.
func (h *MemoryHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgMemoryNotFound)
		return
	}

	m, err := h.svc.ToggleLike(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err, msgMemoryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toMemoryResponse(m))
}

// Delete handles DELETE /api/memories/{id}.
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, msgMemoryNotFound)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err, msgMemoryNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Memoria eliminada exitosamente"})
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// multipartField returns a pointer to the form value, or nil when the field
// was not sent at all.
func multipartField(r *http.Request, key string) *string {
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// formImage extracts the optional "image" file part. The returned file must
// be closed by the caller once the upload has been consumed.
func formImage(r *http.Request) (*storage.Upload, multipart.File, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return &storage.Upload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, file, nil
}

func toMemoryResponse(m *domain.Memory) memoryResponse {
	likedBy := make([]string, 0, len(m.LikedBy))
	for _, id := range m.LikedBy {
		likedBy = append(likedBy, id.String())
	}
	return memoryResponse{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Color:       m.Color,
		Likes:       m.Likes,
		LikedBy:     likedBy,
		CreatedAt:   m.CreatedAt,
	}
}
