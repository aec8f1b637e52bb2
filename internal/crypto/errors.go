package crypto

import "errors"

var (
	ErrMismatchedPassword = errors.New("password does not match hash")
	ErrUnknownHashFormat  = errors.New("unknown password hash format")
	ErrUnknownHasher      = errors.New("unknown password hasher")
)
