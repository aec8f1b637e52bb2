// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the account forms and the
// portfolio menu: username, password and phone syntax, card numbers and menu
// choices.
//
// The rules are plain functions; [Validator] bundles the account rules so the
// service layer can check a whole request or one field of it.
package validators

import "context"

// Validator checks a request value. When fields are given only those fields
// are checked, in the order given, and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
