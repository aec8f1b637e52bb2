package service

import (
	"errors"

	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
)

// ErrorKind tells the UI how to react to an error.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindValidation errors are recovered by reprompting the same field.
	KindValidation
	// KindNotFound errors are shown to the user with a retry offer.
	KindNotFound
	// KindAuth errors are shown to the user with a retry offer.
	KindAuth
	// KindConflict errors are shown and the current operation is left.
	KindConflict
	// KindStore errors abort the application.
	KindStore
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindAuth:
		return "auth"
	case KindConflict:
		return "conflict"
	default:
		return "store"
	}
}

var validationErrors = []error{
	validators.ErrInvalidUsername,
	validators.ErrInvalidPassword,
	validators.ErrInvalidPhone,
	validators.ErrInvalidCardNumber,
	validators.ErrInvalidChoice,
	store.ErrCardOutOfRange,
	ErrUsernameTaken,
	ErrPhoneTaken,
}

// Classify maps err to the kind of reaction it needs.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return KindValidation
		}
	}

	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPhoneNotFound):
		return KindNotFound
	case errors.Is(err, ErrWrongPassword):
		return KindAuth
	case errors.Is(err, ErrAlreadyOwned), errors.Is(err, ErrNotOwned), errors.Is(err, ErrInvalidTransition):
		return KindConflict
	default:
		return KindStore
	}
}
