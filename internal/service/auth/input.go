package auth

import "github.com/nuestra-historia/backend/internal/domain"

// Validation messages are user-facing and returned verbatim by the API.
const (
	msgAllFieldsRequired = "Todos los campos son requeridos"
	msgPasswordTooShort  = "La contraseña debe tener al menos 6 caracteres"
)

const minPasswordLength = 6

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username string
	Name     string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: msgAllFieldsRequired})
	}
	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: msgAllFieldsRequired})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: msgAllFieldsRequired})
	} else if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: msgPasswordTooShort})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: msgAllFieldsRequired})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: msgAllFieldsRequired})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
