package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// loginInput mirrors the login form: both fields required, the password at
// least six characters, matching the backend's own account rules.
type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type createLandInput struct {
	Title       string  `validate:"required,min=3"`
	Description string  `validate:"required,min=10"`
	District    string  `validate:"required"`
	City        string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
}

type updateProfileInput struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
}

// checkInput validates in and converts the first rule violation into a
// *domain.ValidationError with a message fit for the terminal. Inputs are
// rejected locally; nothing malformed reaches the backend.
func checkInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &domain.ValidationError{Message: err.Error()}
	}
	return &domain.ValidationError{Message: fieldMessage(verrs[0])}
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
