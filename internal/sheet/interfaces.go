// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sheet

import "context"

// Spreadsheet is a workbook of named worksheets.
type Spreadsheet interface {
	// Worksheet opens an existing worksheet by title.
	// Returns ErrWorksheetNotFound if there is none.
	Worksheet(ctx context.Context, title string) (Worksheet, error)

	// AddWorksheet creates an empty worksheet with the given physical size.
	// Returns ErrWorksheetExists if the title is already used.
	AddWorksheet(ctx context.Context, title string, rows, cols int) (Worksheet, error)

	// Close releases the underlying connection, if any.
	Close() error
}

// Worksheet is a single grid of string cells.
//
// Every method is an independent call against the backing store. Only
// Apply gives an all-or-nothing guarantee over several writes.
type Worksheet interface {
	// Title returns the worksheet title.
	Title() string

	// Size returns the physical number of rows and columns.
	Size(ctx context.Context) (rows, cols int, err error)

	// Cell returns the value at row, col ("" for an empty cell).
	Cell(ctx context.Context, row, col int) (string, error)

	// UpdateCell overwrites the value at row, col.
	UpdateCell(ctx context.Context, row, col int, value string) error

	// Row returns the values of a row up to its last non-empty cell.
	Row(ctx context.Context, row int) ([]string, error)

	// Column returns the values of a column, header included, up to its last
	// non-empty cell.
	Column(ctx context.Context, col int) ([]string, error)

	// Values reads the rectangular A1 range spec as rows of values. The
	// result always has the exact shape of the range; blank cells are "".
	Values(ctx context.Context, spec string) ([][]string, error)

	// Find returns the first cell whose value equals value exactly, searching
	// only the row or column named by scope. Returns ErrCellNotFound.
	Find(ctx context.Context, value string, scope Scope) (Cell, error)

	// AppendRow writes values into the row following the last non-empty row,
	// growing the grid if needed.
	AppendRow(ctx context.Context, values []string) error

	// BatchUpdate writes several A1 ranges in one call.
	BatchUpdate(ctx context.Context, updates ...RangeUpdate) error

	// InsertColumn inserts one blank column before the 1-based index at.
	// at may be cols+1 to append a column at the right edge.
	InsertColumn(ctx context.Context, at int) error

	// Apply executes batch atomically: either every step is applied or none.
	// When batch.Guard is set and does not hold, ErrGuardFailed is returned.
	Apply(ctx context.Context, batch Batch) error
}
