package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guiguil03/Milliers-Coeurs-sub000/internal/domain"
)

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validationError flattens validator output into a single ErrValidation.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", toSnake(fe.Field())))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", toSnake(fe.Field()), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", toSnake(fe.Field()), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", toSnake(fe.Field()), fe.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func toSnake(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') {
				b.WriteByte('_')
			}
			b.WriteRune(r + 'a' - 'A')
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
