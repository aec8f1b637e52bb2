// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-card-portfolio/internal/adapter"
	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("user quit the program")

// reasons are errors whose own text is the message shown to the user.
var reasons = []error{
	validators.ErrInvalidUsername,
	validators.ErrInvalidPassword,
	validators.ErrInvalidPhone,
	validators.ErrInvalidCardNumber,
	store.ErrCardOutOfRange,
	service.ErrUsernameTaken,
	service.ErrPhoneTaken,
	service.ErrUserNotFound,
	service.ErrPhoneNotFound,
	service.ErrWrongPassword,
	service.ErrAlreadyOwned,
	service.ErrNotOwned,
}

// humanizeError renders err for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, validators.ErrInvalidChoice) {
		return innermost(err)
	}
	for _, reason := range reasons {
		if errors.Is(err, reason) {
			return reason.Error()
		}
	}

	s := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, adapter.ErrRateLimited):
		return "Google Sheets quota exceeded, try again in a minute"
	case errors.Is(err, adapter.ErrForbidden):
		return "the spreadsheet is not shared with the service account"
	case strings.Contains(s, "connection refused"),
		strings.Contains(s, "no such host"),
		strings.Contains(s, "network is unreachable"),
		strings.Contains(s, "i/o timeout"),
		strings.Contains(s, "context deadline exceeded"):
		return "the spreadsheet is unreachable, check your network"
	}

	return err.Error()
}

// innermost returns the text after the first ": " separator.
func innermost(err error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, ": "); ok && detail != "" {
		return detail
	}
	return msg
}
