// Package utils provides general-purpose helpers used across the
// application: session identifiers, the HTTP client of the Sheets adapter and
// the JWT assertions of service-account authentication.
package utils

import "github.com/google/uuid"

// NewSessionID returns a time-ordered UUIDv7 string. If the v7 generator
// fails it falls back to a random v4 UUID.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
