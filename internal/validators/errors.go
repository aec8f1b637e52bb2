package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername   = errors.New("username must be 5-15 characters of letters, digits, '_' or '-'")
	ErrInvalidPassword   = errors.New("password must be 5-30 characters without spaces")
	ErrInvalidPhone      = errors.New("phone number must be 10-15 digits")
	ErrInvalidCardNumber = errors.New("card number must be between 1 and 102")
	ErrInvalidChoice     = errors.New("invalid selection")
)
