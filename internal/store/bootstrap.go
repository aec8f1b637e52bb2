package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
)

const credentialInitialRows = 100

// Bootstrap creates the worksheets of layout that do not exist yet. The
// credential worksheet gets its header row; the ownership worksheet gets its
// header, the pointer to the first user column and the reference data of
// cards. Existing worksheets are left untouched.
func Bootstrap(ctx context.Context, book sheet.Spreadsheet, layout Layout, cards []models.Card, log *logger.Logger) error {
	if len(cards) != models.SetSize {
		return fmt.Errorf("%w: %d cards to seed, want %d", ErrLayoutInvalid, len(cards), models.SetSize)
	}

	created, err := ensureWorksheet(ctx, book, layout.Credentials, credentialInitialRows, credentialCols)
	if err != nil {
		return err
	}
	if created != nil {
		log.Info().Str("worksheet", layout.Credentials).Msg("creating credential worksheet")
		err := created.BatchUpdate(ctx, sheet.RangeUpdate{
			Range:  sheet.RangeRef(credentialHeaderRow, 1, credentialHeaderRow, credentialCols),
			Values: [][]string{credentialHeader},
		})
		if err != nil {
			return fmt.Errorf("error writing credential header: %w", err)
		}
	}

	created, err = ensureWorksheet(ctx, book, layout.Ownership, labelRow, FirstUserColumn)
	if err != nil {
		return err
	}
	if created != nil {
		log.Info().Str("worksheet", layout.Ownership).Msg("creating ownership worksheet")
		if err := created.BatchUpdate(ctx, ownershipSeed(cards)...); err != nil {
			return fmt.Errorf("error seeding ownership worksheet: %w", err)
		}
	}

	return nil
}

// ensureWorksheet returns the new worksheet when it had to be created and nil
// when a worksheet with that title already exists.
func ensureWorksheet(ctx context.Context, book sheet.Spreadsheet, title string, rows, cols int) (sheet.Worksheet, error) {
	_, err := book.Worksheet(ctx, title)
	if err == nil {
		return nil, nil
	}
	if !errors.Is(err, sheet.ErrWorksheetNotFound) {
		return nil, fmt.Errorf("error opening worksheet %s: %w", title, err)
	}

	ws, err := book.AddWorksheet(ctx, title, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("error creating worksheet %s: %w", title, err)
	}
	return ws, nil
}

func ownershipSeed(cards []models.Card) []sheet.RangeUpdate {
	reference := make([][]string, len(cards))
	for i, c := range cards {
		reference[i] = []string{c.Name, c.SetCardNumber, strconv.Itoa(c.Number), c.MarketValue.StringFixed(2)}
	}

	return []sheet.RangeUpdate{
		{
			Range:  sheet.RangeRef(headerRow, 1, headerRow, len(ownershipHeader)),
			Values: [][]string{ownershipHeader},
		},
		{
			Range:  sheet.CellRef(pointerRow, pointerCol),
			Values: [][]string{{sheet.ColumnLabel(FirstUserColumn)}},
		},
		{
			Range:  sheet.RangeRef(firstCardRow, cardNameCol, lastCardRow, marketValueCol),
			Values: reference,
		},
	}
}
