// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/sethvargo/go-retry"
)

const allocationBaseDelay = 50 * time.Millisecond

// columnAllocator implements [ColumnAllocator] over the ownership worksheet.
//
// The pointer cell A2 always names the next free column. An allocation
// claims that column and advances the pointer in one [sheet.Batch], so a
// failed allocation leaves the worksheet untouched.
type columnAllocator struct {
	ws          sheet.Worksheet
	mode        string
	maxAttempts int
	baseDelay   time.Duration
	logger      *logger.Logger
}

// NewColumnAllocator constructs a [ColumnAllocator]. In [config.AllocationCAS]
// mode every batch is guarded by the pointer value it was computed from and
// lost races are retried with exponential backoff.
func NewColumnAllocator(ws sheet.Worksheet, cfg config.Allocation, logger *logger.Logger) ColumnAllocator {
	logger.Debug().Str("mode", cfg.Mode).Int("max_attempts", cfg.MaxAttempts).Msg("creating column allocator")

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	return &columnAllocator{
		ws:          ws,
		mode:        cfg.Mode,
		maxAttempts: attempts,
		baseDelay:   allocationBaseDelay,
		logger:      logger,
	}
}

// Allocate claims the column named by the pointer for username and returns
// its index and label.
func (a *columnAllocator) Allocate(ctx context.Context, username string) (int, string, error) {
	if a.mode != config.AllocationCAS {
		return a.allocateOnce(ctx, username, false)
	}

	log := logger.FromContextOr(ctx, a.logger)

	var (
		col     int
		label   string
		attempt int
	)

	backoff := retry.WithMaxRetries(uint64(a.maxAttempts-1), retry.NewExponential(a.baseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		var err error
		col, label, err = a.allocateOnce(ctx, username, true)
		if errors.Is(err, sheet.ErrGuardFailed) {
			log.Warn().Err(err).Int("attempt", attempt).Str("username", username).Msg("pointer moved during allocation")
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, sheet.ErrGuardFailed) {
		return 0, "", fmt.Errorf("%w after %d attempts: %w", ErrAllocationConflict, attempt, err)
	}
	if err != nil {
		return 0, "", err
	}

	return col, label, nil
}

func (a *columnAllocator) allocateOnce(ctx context.Context, username string, guarded bool) (int, string, error) {
	log := logger.FromContextOr(ctx, a.logger)

	pointer, err := a.ws.Cell(ctx, pointerRow, pointerCol)
	if err != nil {
		log.Err(err).Str("func", "*columnAllocator.allocateOnce").Msg("error reading pointer")
		return 0, "", fmt.Errorf("error reading next free column: %w", err)
	}

	col, err := sheet.ColumnIndex(pointer)
	if err != nil || col < FirstUserColumn {
		return 0, "", fmt.Errorf("%w: %q", ErrPointerCorrupted, pointer)
	}

	owner, err := a.ws.Cell(ctx, headerRow, col)
	if errors.Is(err, sheet.ErrOutOfRange) {
		return 0, "", fmt.Errorf("%w: column %s does not exist", ErrPointerCorrupted, pointer)
	}
	if err != nil {
		return 0, "", fmt.Errorf("error reading column owner: %w", err)
	}
	if owner != "" {
		if guarded && a.pointerMoved(ctx, pointer) {
			return 0, "", fmt.Errorf("column %s claimed by %q: %w", pointer, owner, sheet.ErrGuardFailed)
		}
		return 0, "", fmt.Errorf("%w: column %s already belongs to %q", ErrPointerCorrupted, pointer, owner)
	}

	batch := sheet.Batch{
		InsertColumns: []int{col + 1},
		Updates: []sheet.RangeUpdate{
			{Range: sheet.CellRef(headerRow, col), Values: [][]string{{username}}},
			{Range: cardColumnRange(pointer), Values: noColumn()},
			{Range: sheet.CellRef(labelRow, col), Values: [][]string{{pointer}}},
			{Range: sheet.CellRef(pointerRow, pointerCol), Values: [][]string{{sheet.IncrementLabel(pointer)}}},
		},
	}
	if guarded {
		batch.Guard = &sheet.Guard{Row: pointerRow, Col: pointerCol, Expect: pointer}
	}

	if err := a.ws.Apply(ctx, batch); err != nil {
		log.Err(err).Str("func", "*columnAllocator.allocateOnce").Str("column", pointer).Msg("error applying allocation")
		return 0, "", fmt.Errorf("error allocating column %s: %w", pointer, err)
	}

	log.Info().Str("username", username).Str("column", pointer).Msg("ownership column allocated")
	return col, pointer, nil
}

// pointerMoved reports whether the pointer cell no longer holds pointer.
// A read failure counts as unchanged.
func (a *columnAllocator) pointerMoved(ctx context.Context, pointer string) bool {
	current, err := a.ws.Cell(ctx, pointerRow, pointerCol)
	return err == nil && current != pointer
}
