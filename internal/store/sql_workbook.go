package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
)

// SQLWorkbook is a [sheet.Spreadsheet] kept in the worksheets and cells
// tables of a SQL database. Only non-empty cells are stored; every write
// method runs in a transaction, which makes Apply all-or-nothing.
type SQLWorkbook struct {
	db *DB
}

// NewSQLWorkbook wraps db as a spreadsheet. The schema must be migrated.
func NewSQLWorkbook(db *DB) *SQLWorkbook {
	return &SQLWorkbook{db: db}
}

// Worksheet implements [sheet.Spreadsheet].
func (w *SQLWorkbook) Worksheet(ctx context.Context, title string) (sheet.Worksheet, error) {
	var rows, cols int
	err := queryRow(ctx, w.db, selectWorksheetQuery(w.db.builder(), title, false), &rows, &cols)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", sheet.ErrWorksheetNotFound, title)
	}
	if err != nil {
		w.db.logger.Err(err).Str("func", "*SQLWorkbook.Worksheet").Str("title", title).Msg("error loading worksheet")
		return nil, fmt.Errorf("error loading worksheet %s: %w", title, err)
	}

	return &sqlWorksheet{db: w.db, title: title}, nil
}

// AddWorksheet implements [sheet.Spreadsheet].
func (w *SQLWorkbook) AddWorksheet(ctx context.Context, title string, rows, cols int) (sheet.Worksheet, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", sheet.ErrOutOfRange, rows, cols)
	}

	err := exec(ctx, w.db, insertWorksheetQuery(w.db.builder(), title, rows, cols))
	if err != nil {
		if w.db.classify(err) == Conflict {
			return nil, fmt.Errorf("%w: %s", sheet.ErrWorksheetExists, title)
		}
		w.db.logger.Err(err).Str("func", "*SQLWorkbook.AddWorksheet").Str("title", title).Msg("error creating worksheet")
		return nil, fmt.Errorf("error creating worksheet %s: %w", title, err)
	}

	return &sqlWorksheet{db: w.db, title: title}, nil
}

// Close implements [sheet.Spreadsheet].
func (w *SQLWorkbook) Close() error {
	return w.db.Close()
}

type sqlWorksheet struct {
	db    *DB
	title string
}

func (s *sqlWorksheet) Title() string { return s.title }

func (s *sqlWorksheet) size(ctx context.Context, q querier, forUpdate bool) (int, int, error) {
	var rows, cols int
	// sqlite has no row locks; its transactions already serialise writers
	lock := forUpdate && s.db.dialect == DialectPostgres

	err := queryRow(ctx, q, selectWorksheetQuery(s.db.builder(), s.title, lock), &rows, &cols)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, fmt.Errorf("%w: %s", sheet.ErrWorksheetNotFound, s.title)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("error reading size of %s: %w", s.title, err)
	}
	return rows, cols, nil
}

func (s *sqlWorksheet) Size(ctx context.Context) (int, int, error) {
	return s.size(ctx, s.db, false)
}

func (s *sqlWorksheet) Cell(ctx context.Context, row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("%w: row %d column %d", sheet.ErrOutOfRange, row, col)
	}

	values, err := s.Values(ctx, sheet.CellRef(row, col))
	if err != nil {
		return "", err
	}
	return values[0][0], nil
}

func (s *sqlWorksheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	return s.Apply(ctx, sheet.Batch{Updates: []sheet.RangeUpdate{
		{Range: sheet.CellRef(row, col), Values: [][]string{{value}}},
	}})
}

func (s *sqlWorksheet) Row(ctx context.Context, row int) ([]string, error) {
	rows, cols, err := s.Size(ctx)
	if err != nil {
		return nil, err
	}
	if row < 1 || row > rows {
		return nil, fmt.Errorf("%w: row %d", sheet.ErrOutOfRange, row)
	}

	cells, err := queryCells(ctx, s.db, selectCellsQuery(s.db.builder(), s.title, sq.Eq{"row_idx": row}))
	if err != nil {
		return nil, err
	}

	values := make([]string, cols)
	for _, c := range cells {
		values[c.col-1] = c.value
	}
	return trimBlank(values), nil
}

func (s *sqlWorksheet) Column(ctx context.Context, col int) ([]string, error) {
	rows, cols, err := s.Size(ctx)
	if err != nil {
		return nil, err
	}
	if col < 1 || col > cols {
		return nil, fmt.Errorf("%w: column %d", sheet.ErrOutOfRange, col)
	}

	cells, err := queryCells(ctx, s.db, selectCellsQuery(s.db.builder(), s.title, sq.Eq{"col_idx": col}))
	if err != nil {
		return nil, err
	}

	values := make([]string, rows)
	for _, c := range cells {
		values[c.row-1] = c.value
	}
	return trimBlank(values), nil
}

func (s *sqlWorksheet) Values(ctx context.Context, spec string) ([][]string, error) {
	r, err := sheet.ParseRange(spec)
	if err != nil {
		return nil, err
	}

	rows, cols, err := s.Size(ctx)
	if err != nil {
		return nil, err
	}
	if r.EndRow > rows || r.EndCol > cols {
		return nil, fmt.Errorf("%w: %s", sheet.ErrOutOfRange, r)
	}

	cells, err := queryCells(ctx, s.db, selectCellsQuery(s.db.builder(), s.title, rangeCondition(r)))
	if err != nil {
		return nil, err
	}

	out := make([][]string, r.Rows())
	for i := range out {
		out[i] = make([]string, r.Cols())
	}
	for _, c := range cells {
		out[c.row-r.StartRow][c.col-r.StartCol] = c.value
	}
	return out, nil
}

func (s *sqlWorksheet) Find(ctx context.Context, value string, scope sheet.Scope) (sheet.Cell, error) {
	cells, err := queryCells(ctx, s.db, findCellQuery(s.db.builder(), s.title, value, scope))
	if err != nil {
		return sheet.Cell{}, err
	}
	if len(cells) == 0 {
		return sheet.Cell{}, fmt.Errorf("%w: %q", sheet.ErrCellNotFound, value)
	}

	return sheet.Cell{Row: cells[0].row, Col: cells[0].col, Value: cells[0].value}, nil
}

func (s *sqlWorksheet) AppendRow(ctx context.Context, values []string) error {
	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		rows, cols, err := s.size(ctx, tx, true)
		if err != nil {
			return err
		}
		if len(values) > cols {
			return fmt.Errorf("%w: %d values for %d columns", sheet.ErrShapeMismatch, len(values), cols)
		}

		var last int
		if err := queryRow(ctx, tx, lastRowQuery(s.db.builder(), s.title), &last); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		row := last + 1
		if row > rows {
			if err := exec(ctx, tx, updateWorksheetSizeQuery(s.db.builder(), s.title, row, cols)); err != nil {
				return err
			}
		}

		for i, v := range values {
			if err := s.writeCell(ctx, tx, sheet.Cell{Row: row, Col: i + 1, Value: v}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqlWorksheet) BatchUpdate(ctx context.Context, updates ...sheet.RangeUpdate) error {
	return s.Apply(ctx, sheet.Batch{Updates: updates})
}

func (s *sqlWorksheet) InsertColumn(ctx context.Context, at int) error {
	return s.Apply(ctx, sheet.Batch{InsertColumns: []int{at}})
}

// Apply runs the whole batch in one transaction. On PostgreSQL the worksheet
// row is locked first, so concurrent batches on the same worksheet are
// serialised and the guard is evaluated against committed data.
func (s *sqlWorksheet) Apply(ctx context.Context, batch sheet.Batch) error {
	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		rows, cols, err := s.size(ctx, tx, true)
		if err != nil {
			return err
		}

		if g := batch.Guard; g != nil {
			if g.Row < 1 || g.Col < 1 || g.Row > rows || g.Col > cols {
				return fmt.Errorf("%w: guard %s", sheet.ErrOutOfRange, sheet.CellRef(g.Row, g.Col))
			}
			actual, err := s.cell(ctx, tx, g.Row, g.Col)
			if err != nil {
				return err
			}
			if actual != g.Expect {
				return fmt.Errorf("%w: %s is %q, expected %q", sheet.ErrGuardFailed, sheet.CellRef(g.Row, g.Col), actual, g.Expect)
			}
		}

		for _, at := range batch.InsertColumns {
			if at < 1 || at > cols+1 {
				return fmt.Errorf("%w: insert column at %d", sheet.ErrOutOfRange, at)
			}
			park, restore := shiftColumnsQueries(s.db.builder(), s.title, at)
			if err := exec(ctx, tx, park); err != nil {
				return err
			}
			if err := exec(ctx, tx, restore); err != nil {
				return err
			}
			cols++
		}
		if len(batch.InsertColumns) > 0 {
			if err := exec(ctx, tx, updateWorksheetSizeQuery(s.db.builder(), s.title, rows, cols)); err != nil {
				return err
			}
		}

		for _, u := range batch.Updates {
			cells, err := u.Cells()
			if err != nil {
				return err
			}
			for _, c := range cells {
				if c.Row > rows || c.Col > cols {
					return fmt.Errorf("%w: %s", sheet.ErrOutOfRange, sheet.CellRef(c.Row, c.Col))
				}
				if err := s.writeCell(ctx, tx, c); err != nil {
					return err
				}
			}
		}

		return nil
	})

	// a guarded batch that lost a serialisation race behaves like a failed guard
	if err != nil && batch.Guard != nil && s.db.classify(err) == Retryable {
		return fmt.Errorf("%w: %w", sheet.ErrGuardFailed, err)
	}
	return err
}

func (s *sqlWorksheet) cell(ctx context.Context, q querier, row, col int) (string, error) {
	cells, err := queryCells(ctx, q, selectCellsQuery(s.db.builder(), s.title, sq.Eq{"row_idx": row, "col_idx": col}))
	if err != nil {
		return "", err
	}
	if len(cells) == 0 {
		return "", nil
	}
	return cells[0].value, nil
}

// writeCell stores c, or removes the stored cell when c is blank.
func (s *sqlWorksheet) writeCell(ctx context.Context, q querier, c sheet.Cell) error {
	if c.Value == "" {
		return exec(ctx, q, deleteCellQuery(s.db.builder(), s.title, c.Row, c.Col))
	}
	return exec(ctx, q, upsertCellQuery(s.db.builder(), s.title, c))
}

func trimBlank(values []string) []string {
	end := len(values)
	for end > 0 && values[end-1] == "" {
		end--
	}
	return values[:end]
}
