package adapter

import "errors"

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("access to spreadsheet forbidden")
	ErrNotFound     = errors.New("spreadsheet not found")
	ErrRateLimited  = errors.New("sheets api quota exceeded")
	ErrUnavailable  = errors.New("sheets api unavailable")

	ErrInvalidCredentials = errors.New("invalid service account credentials")
	ErrMalformedResponse  = errors.New("malformed sheets api response")
)
