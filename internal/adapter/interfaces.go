// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Google Sheets implementation of the
// spreadsheet abstraction defined in package sheet.
//
// [NewSheetsSpreadsheet] speaks the Sheets REST API v4 through resty. Requests
// are authorised with an OAuth2 access token obtained by a [TokenSource];
// [NewServiceAccountTokenSource] implements the JWT-bearer grant for Google
// service-account keys.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrRateLimited] for
// 429, [ErrForbidden] when the service account has no access to the
// spreadsheet).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_source_mock.go -package=mock

// TokenSource supplies OAuth2 access tokens for the Sheets API.
type TokenSource interface {
	// Token returns a valid access token, refreshing it when it is about to
	// expire.
	Token(ctx context.Context) (string, error)
}
