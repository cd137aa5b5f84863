// Package apperror classifies errors from the service layer into the kinds
// the presentation surfaces report.
package apperror

import (
	"errors"

	"restaurant-management/internal/repository"
	"restaurant-management/internal/validation"
)

type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindBackend    Kind = "backend"
)

// KindOf reports the kind of err. Unclassified errors are backend errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var ve validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return KindValidation
	case errors.Is(err, repository.ErrNotFound):
		return KindNotFound
	case errors.Is(err, repository.ErrConflict):
		return KindConflict
	default:
		return KindBackend
	}
}

// UserMessage returns the message to show an operator. Validation errors
// carry their own message; everything else gets the fallback naming the
// failed action.
func UserMessage(err error, fallback string) string {
	var ve validation.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return fallback
}
