package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
	"github.com/shopspring/decimal"
)

// ownershipRepository is the worksheet-backed implementation of
// [OwnershipRepository].
type ownershipRepository struct {
	ws     sheet.Worksheet
	logger *logger.Logger
}

// NewOwnershipRepository constructs an [OwnershipRepository] over the
// ownership worksheet ws.
func NewOwnershipRepository(ws sheet.Worksheet, logger *logger.Logger) OwnershipRepository {
	logger.Debug().Str("worksheet", ws.Title()).Msg("creating ownership repository")
	return &ownershipRepository{
		ws:     ws,
		logger: logger,
	}
}

// ColumnForUsername finds the column owned by username in the header row.
func (r *ownershipRepository) ColumnForUsername(ctx context.Context, username string) (int, error) {
	cell, err := r.ws.Find(ctx, username, sheet.InRow(headerRow))
	if errors.Is(err, sheet.ErrCellNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, username)
	}
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*ownershipRepository.ColumnForUsername").Msg("error searching header row")
		return 0, fmt.Errorf("error searching ownership header: %w", err)
	}
	if cell.Col >= FirstUserColumn {
		return cell.Col, nil
	}

	// username equals a reference header label
	header, err := r.ws.Row(ctx, headerRow)
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*ownershipRepository.ColumnForUsername").Msg("error reading header row")
		return 0, fmt.Errorf("error reading ownership header: %w", err)
	}
	for i := FirstUserColumn - 1; i < len(header); i++ {
		if header[i] == username {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ErrColumnNotFound, username)
}

// LabelForColumn reads the label row of col. A blank label is computed from
// the index and returned together with ErrLabelMissing.
func (r *ownershipRepository) LabelForColumn(ctx context.Context, col int) (string, error) {
	if err := checkUserColumn(col); err != nil {
		return "", err
	}

	label, err := r.ws.Cell(ctx, labelRow, col)
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*ownershipRepository.LabelForColumn").Int("col", col).Msg("error reading column label")
		return "", fmt.Errorf("error reading column label: %w", err)
	}

	if label == "" {
		return sheet.ColumnLabel(col), fmt.Errorf("%w: column %d", ErrLabelMissing, col)
	}

	return label, nil
}

func (r *ownershipRepository) GetOwned(ctx context.Context, col, card int) (bool, error) {
	if err := checkCard(card); err != nil {
		return false, err
	}
	if err := checkUserColumn(col); err != nil {
		return false, err
	}

	value, err := r.ws.Cell(ctx, cardRow(card), col)
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*ownershipRepository.GetOwned").Int("card", card).Msg("error reading ownership flag")
		return false, fmt.Errorf("error reading ownership of card %d: %w", card, err)
	}

	return value == Yes, nil
}

// SetOwned writes the flag unconditionally, so repeating a call is harmless.
func (r *ownershipRepository) SetOwned(ctx context.Context, col, card int, owned bool) error {
	if err := checkCard(card); err != nil {
		return err
	}
	if err := checkUserColumn(col); err != nil {
		return err
	}

	value := No
	if owned {
		value = Yes
	}

	if err := r.ws.UpdateCell(ctx, cardRow(card), col, value); err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*ownershipRepository.SetOwned").Int("card", card).Msg("error writing ownership flag")
		return fmt.Errorf("error writing ownership of card %d: %w", card, err)
	}

	return nil
}

// ResetAll marks every card of the column labelled label as not owned in a
// single range write.
func (r *ownershipRepository) ResetAll(ctx context.Context, label string) error {
	col, err := sheet.ColumnIndex(label)
	if err != nil {
		return err
	}
	if err := checkUserColumn(col); err != nil {
		return err
	}

	err = r.ws.BatchUpdate(ctx, sheet.RangeUpdate{Range: cardColumnRange(label), Values: noColumn()})
	if err != nil {
		logger.FromContextOr(ctx, r.logger).Err(err).Str("func", "*ownershipRepository.ResetAll").Str("label", label).Msg("error resetting portfolio")
		return fmt.Errorf("error resetting column %s: %w", label, err)
	}

	return nil
}

// Snapshot reads the reference block and the user column with one range read
// each and zips them by card number.
func (r *ownershipRepository) Snapshot(ctx context.Context, col int) ([]models.PortfolioEntry, error) {
	log := logger.FromContextOr(ctx, r.logger)

	if err := checkUserColumn(col); err != nil {
		return nil, err
	}

	reference, err := r.ws.Values(ctx, sheet.RangeRef(firstCardRow, cardNameCol, lastCardRow, marketValueCol))
	if err != nil {
		log.Err(err).Str("func", "*ownershipRepository.Snapshot").Msg("error reading reference data")
		return nil, fmt.Errorf("error reading card reference data: %w", err)
	}

	flags, err := r.ws.Values(ctx, sheet.RangeRef(firstCardRow, col, lastCardRow, col))
	if err != nil {
		log.Err(err).Str("func", "*ownershipRepository.Snapshot").Int("col", col).Msg("error reading ownership column")
		return nil, fmt.Errorf("error reading ownership column: %w", err)
	}

	if len(reference) != models.SetSize || len(flags) != models.SetSize {
		return nil, fmt.Errorf("%w: snapshot has %d reference and %d flag rows", ErrLayoutInvalid, len(reference), len(flags))
	}

	entries := make([]models.PortfolioEntry, models.SetSize)
	for i := range entries {
		card, err := cardFromReference(i+1, reference[i])
		if err != nil {
			return nil, err
		}
		entries[i] = models.PortfolioEntry{
			Card:  card,
			Owned: len(flags[i]) > 0 && flags[i][0] == Yes,
		}
	}

	return entries, nil
}

// cardFromReference builds a card from one B..E row of the ownership sheet.
func cardFromReference(number int, row []string) (models.Card, error) {
	padded := make([]string, marketValueCol-cardNameCol+1)
	copy(padded, row)

	value := decimal.Zero
	if raw := strings.TrimSpace(padded[marketValueCol-cardNameCol]); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return models.Card{}, fmt.Errorf("%w: market value of card %d: %w", ErrLayoutInvalid, number, err)
		}
		value = parsed
	}

	return models.Card{
		Number:        number,
		Name:          padded[cardNameCol-cardNameCol],
		SetCardNumber: padded[setCardNumberCol-cardNameCol],
		MarketValue:   value,
	}, nil
}

func checkCard(card int) error {
	if !models.ValidCardNumber(card) {
		return fmt.Errorf("%w: %d", ErrCardOutOfRange, card)
	}
	return nil
}

func checkUserColumn(col int) error {
	if col < FirstUserColumn {
		return fmt.Errorf("%w: column %d is not a user column", ErrColumnNotFound, col)
	}
	return nil
}
