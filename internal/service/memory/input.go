package memory

import (
	"github.com/nuestra-historia/backend/internal/domain"
	"github.com/nuestra-historia/backend/internal/storage"
)

const msgTitleDescriptionRequired = "Título y descripción son requeridos"

// CreateMemoryInput holds parameters for creating a memory.
type CreateMemoryInput struct {
	Title       string
	Description string
	Color       string
	Image       *storage.Upload
}

// Validate validates the create input.
func (i CreateMemoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: msgTitleDescriptionRequired})
	}
	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: msgTitleDescriptionRequired})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMemoryInput holds parameters for a partial memory update.
// Nil fields are left unchanged.
type UpdateMemoryInput struct {
	Title       *string
	Description *string
	Color       *string
	Image       *storage.Upload
}
