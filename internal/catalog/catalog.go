// Package catalog holds the reference data of the tracked card set.
//
// The data is embedded in the binary and is used to seed the ownership
// worksheet when the layout is bootstrapped; at runtime the worksheet copy is
// the source of truth.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-card-portfolio/models"
	"github.com/shopspring/decimal"
)

//go:embed base_set.csv
var baseSetCSV []byte

// ErrMalformedCatalog is returned when the embedded catalogue cannot be parsed.
var ErrMalformedCatalog = errors.New("malformed card catalog")

// BaseSet returns the 102 cards of the set ordered by card number.
func BaseSet() ([]models.Card, error) {
	return parse(baseSetCSV)
}

func parse(data []byte) ([]models.Card, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCatalog, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: no cards", ErrMalformedCatalog)
	}

	cards := make([]models.Card, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrMalformedCatalog, i+2, len(rec))
		}

		number, err := strconv.Atoi(rec[0])
		if err != nil || number != i+1 {
			return nil, fmt.Errorf("%w: line %d: card number %q out of order", ErrMalformedCatalog, i+2, rec[0])
		}

		value, err := decimal.NewFromString(rec[3])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: market value: %w", ErrMalformedCatalog, i+2, err)
		}

		cards = append(cards, models.Card{
			Number:        number,
			Name:          rec[1],
			SetCardNumber: rec[2],
			MarketValue:   value,
		})
	}

	if len(cards) != models.SetSize {
		return nil, fmt.Errorf("%w: %d cards, want %d", ErrMalformedCatalog, len(cards), models.SetSize)
	}

	return cards, nil
}
