// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the prompts of the account forms, so a failed field can be
// reprompted on its own.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldPhone       = "phone"
	FieldNewPassword = "new_password"
)

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{5,15}$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10,15}$`)
)

const (
	minPasswordLen = 5
	maxPasswordLen = 30

	// bcrypt rejects longer input
	maxPasswordBytes = 72
)

// AccountValidator checks the format of the values entered on the signup,
// login and password recovery forms. Uniqueness is checked by the account
// service against the credential store.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ResetRequest:
		return v.validateReset(value, fields...)
	case *models.ResetRequest:
		return v.validateReset(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldPhone}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !ValidUsername(req.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if !ValidPassword(req.Password) {
				return ErrInvalidPassword
			}
		case FieldPhone:
			if !ValidPhone(req.Phone) {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin only checks the shape of the username. Password rules are not
// applied to login attempts; a wrong password is reported by hash
// verification.
func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !ValidUsername(req.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateReset(req models.ResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPhone, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPhone:
			if !ValidPhone(req.Phone) {
				return ErrInvalidPhone
			}
		case FieldNewPassword:
			if !ValidPassword(req.NewPassword) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// ValidPassword reports whether s has 5 to 30 characters, fits in 72 bytes
// and contains no whitespace.
func ValidPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minPasswordLen && n <= maxPasswordLen && len(s) <= maxPasswordBytes &&
		!strings.ContainsFunc(s, unicode.IsSpace)
}

func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}
