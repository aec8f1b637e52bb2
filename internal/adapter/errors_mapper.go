package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
)

// apiError is the error envelope of Google APIs.
type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if strings.Contains(msg, "exceeds grid limits") {
			return fmt.Errorf("%w: %s", sheet.ErrOutOfRange, msg)
		}
		if strings.Contains(msg, "already exists") {
			return fmt.Errorf("%w: %s", sheet.ErrWorksheetExists, msg)
		}
		if strings.Contains(msg, "Unable to parse range") {
			return fmt.Errorf("%w: %s", sheet.ErrWorksheetNotFound, msg)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, msg)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrUnavailable, msg)
	default:
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

// errorMessage extracts error.message from a Google API error body and falls
// back to the raw body.
func errorMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return strings.TrimSpace(string(body))
}
