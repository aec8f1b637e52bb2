// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/internal/utils"
)

const (
	valueInputRaw = "RAW"

	rateLimitRetries = 3
	rateLimitWait    = 2 * time.Second
)

// SheetsSpreadsheet is a [sheet.Spreadsheet] backed by one Google spreadsheet.
type SheetsSpreadsheet struct {
	client        *utils.HTTPClient
	tokens        TokenSource
	spreadsheetID string

	logger *logger.Logger
}

// NewSheetsSpreadsheet constructs a Sheets API client for the spreadsheet
// cfg.SpreadsheetID. Every request carries a bearer token from tokens.
// Requests rejected with 429 are retried with backoff; nothing else is
// retried, since appends are not idempotent.
func NewSheetsSpreadsheet(cfg config.Sheets, tokens TokenSource, logger *logger.Logger) (*SheetsSpreadsheet, error) {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return nil, errors.New("empty spreadsheet id")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("empty sheets api base url")
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout)
	client.
		SetRetryCount(rateLimitRetries).
		SetRetryWaitTime(rateLimitWait).
		AddRetryCondition(func(resp *resty.Response, _ error) bool {
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		})

	return &SheetsSpreadsheet{
		client:        client,
		tokens:        tokens,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// Worksheet implements [sheet.Spreadsheet].
func (s *SheetsSpreadsheet) Worksheet(ctx context.Context, title string) (sheet.Worksheet, error) {
	props, err := s.properties(ctx, title)
	if err != nil {
		return nil, err
	}
	return &sheetsWorksheet{book: s, sheetID: props.SheetID, title: props.Title}, nil
}

// AddWorksheet implements [sheet.Spreadsheet].
func (s *SheetsSpreadsheet) AddWorksheet(ctx context.Context, title string, rows, cols int) (sheet.Worksheet, error) {
	var result batchUpdateResponse
	err := s.batchUpdate(ctx, []request{{
		AddSheet: &addSheetRequest{Properties: sheetProperties{
			Title:          title,
			GridProperties: gridProperties{RowCount: rows, ColumnCount: cols},
		}},
	}}, &result)
	if err != nil {
		return nil, fmt.Errorf("add worksheet %q: %w", title, err)
	}

	if len(result.Replies) == 0 || result.Replies[0].AddSheet == nil {
		return nil, fmt.Errorf("%w: addSheet reply missing", ErrMalformedResponse)
	}

	s.logger.Info().Str("worksheet", title).Int("rows", rows).Int("cols", cols).Msg("worksheet added")
	return &sheetsWorksheet{book: s, sheetID: result.Replies[0].AddSheet.Properties.SheetID, title: title}, nil
}

// Close implements [sheet.Spreadsheet]. It is a no-op.
func (s *SheetsSpreadsheet) Close() error {
	return nil
}

func (s *SheetsSpreadsheet) properties(ctx context.Context, title string) (sheetProperties, error) {
	req, err := s.request(ctx)
	if err != nil {
		return sheetProperties{}, err
	}

	var meta spreadsheetMetadata
	resp, err := req.
		SetPathParam("id", s.spreadsheetID).
		SetQueryParam("fields", "sheets.properties").
		SetResult(&meta).
		Get("/v4/spreadsheets/{id}")
	if err != nil {
		return sheetProperties{}, fmt.Errorf("get spreadsheet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return sheetProperties{}, err
	}

	for _, sh := range meta.Sheets {
		if sh.Properties.Title == title {
			return sh.Properties, nil
		}
	}
	return sheetProperties{}, fmt.Errorf("%w: %s", sheet.ErrWorksheetNotFound, title)
}

func (s *SheetsSpreadsheet) batchUpdate(ctx context.Context, requests []request, result any) error {
	req, err := s.request(ctx)
	if err != nil {
		return err
	}

	req.
		SetPathParam("id", s.spreadsheetID).
		SetHeader("Content-Type", "application/json").
		SetBody(batchUpdateRequest{Requests: requests})
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post("/v4/spreadsheets/{id}:batchUpdate")
	if err != nil {
		return fmt.Errorf("batch update request: %w", err)
	}
	return mapHTTPError(resp)
}

func (s *SheetsSpreadsheet) getValues(ctx context.Context, a1, majorDimension string) ([][]string, error) {
	req, err := s.request(ctx)
	if err != nil {
		return nil, err
	}

	var result valueRange
	resp, err := req.
		SetPathParams(map[string]string{"id": s.spreadsheetID, "range": a1}).
		SetQueryParam("majorDimension", majorDimension).
		SetResult(&result).
		Get("/v4/spreadsheets/{id}/values/{range}")
	if err != nil {
		return nil, fmt.Errorf("get values request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return result.Values, nil
}

func (s *SheetsSpreadsheet) putValues(ctx context.Context, a1 string, values [][]string) error {
	req, err := s.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"id": s.spreadsheetID, "range": a1}).
		SetQueryParam("valueInputOption", valueInputRaw).
		SetHeader("Content-Type", "application/json").
		SetBody(valueRange{Range: a1, MajorDimension: "ROWS", Values: values}).
		Put("/v4/spreadsheets/{id}/values/{range}")
	if err != nil {
		return fmt.Errorf("update values request: %w", err)
	}
	return mapHTTPError(resp)
}

func (s *SheetsSpreadsheet) appendValues(ctx context.Context, a1 string, values [][]string) error {
	req, err := s.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(map[string]string{"id": s.spreadsheetID, "range": a1}).
		SetQueryParams(map[string]string{
			"valueInputOption": valueInputRaw,
			"insertDataOption": "OVERWRITE",
		}).
		SetHeader("Content-Type", "application/json").
		SetBody(valueRange{Range: a1, MajorDimension: "ROWS", Values: values}).
		Post("/v4/spreadsheets/{id}/values/{range}:append")
	if err != nil {
		return fmt.Errorf("append values request: %w", err)
	}
	return mapHTTPError(resp)
}

func (s *SheetsSpreadsheet) batchUpdateValues(ctx context.Context, data []valueRange) error {
	req, err := s.request(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", s.spreadsheetID).
		SetHeader("Content-Type", "application/json").
		SetBody(batchUpdateValuesRequest{ValueInputOption: valueInputRaw, Data: data}).
		Post("/v4/spreadsheets/{id}/values:batchUpdate")
	if err != nil {
		return fmt.Errorf("batch update values request: %w", err)
	}
	return mapHTTPError(resp)
}

// request starts an authorised request bound to ctx.
func (s *SheetsSpreadsheet) request(ctx context.Context) (*resty.Request, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	return s.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// qualify prefixes an A1 reference with the quoted worksheet title.
func qualify(title, ref string) string {
	quoted := "'" + strings.ReplaceAll(title, "'", "''") + "'"
	if ref == "" {
		return quoted
	}
	return quoted + "!" + ref
}
