package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance behind the client-side form
// checks, mirroring the rules the backend enforces so obviously bad input
// never leaves the terminal.
var validate = validator.New()

// checkForm validates a form struct and converts validator output into one
// human-readable message per failing field.
func checkForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "credit_card":
		return field + " must be a valid card number"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// registerForm mirrors the backend's registration serializer.
type registerForm struct {
	Username  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	FirstName string
	LastName  string
	Age       int `validate:"omitempty,min=10,max=120"`
}

// resetConfirmForm mirrors the password reset confirmation payload.
type resetConfirmForm struct {
	UID       string `validate:"required"`
	Token     string `validate:"required"`
	Password  string `validate:"required,min=8"`
	Password2 string `validate:"required,eqfield=Password"`
}
