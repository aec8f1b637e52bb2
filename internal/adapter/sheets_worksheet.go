package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
)

type sheetsWorksheet struct {
	book    *SheetsSpreadsheet
	sheetID int64
	title   string
}

func (w *sheetsWorksheet) Title() string { return w.title }

func (w *sheetsWorksheet) Size(ctx context.Context) (int, int, error) {
	props, err := w.book.properties(ctx, w.title)
	if err != nil {
		return 0, 0, err
	}
	return props.GridProperties.RowCount, props.GridProperties.ColumnCount, nil
}

func (w *sheetsWorksheet) Cell(ctx context.Context, row, col int) (string, error) {
	values, err := w.Values(ctx, sheet.CellRef(row, col))
	if err != nil {
		return "", err
	}
	return values[0][0], nil
}

func (w *sheetsWorksheet) UpdateCell(ctx context.Context, row, col int, value string) error {
	return w.book.putValues(ctx, qualify(w.title, sheet.CellRef(row, col)), [][]string{{value}})
}

func (w *sheetsWorksheet) Row(ctx context.Context, row int) ([]string, error) {
	ref := strconv.Itoa(row) + ":" + strconv.Itoa(row)
	values, err := w.book.getValues(ctx, qualify(w.title, ref), "ROWS")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []string{}, nil
	}
	return trimTrailing(values[0]), nil
}

func (w *sheetsWorksheet) Column(ctx context.Context, col int) ([]string, error) {
	label := sheet.ColumnLabel(col)
	values, err := w.book.getValues(ctx, qualify(w.title, label+":"+label), "COLUMNS")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return []string{}, nil
	}
	return trimTrailing(values[0]), nil
}

// Values pads the API response, which omits trailing blank rows and cells,
// to the exact shape of spec.
func (w *sheetsWorksheet) Values(ctx context.Context, spec string) ([][]string, error) {
	r, err := sheet.ParseRange(spec)
	if err != nil {
		return nil, err
	}

	values, err := w.book.getValues(ctx, qualify(w.title, r.String()), "ROWS")
	if err != nil {
		return nil, err
	}

	out := make([][]string, r.Rows())
	for i := range out {
		out[i] = make([]string, r.Cols())
		if i < len(values) {
			copy(out[i], values[i])
		}
	}
	return out, nil
}

func (w *sheetsWorksheet) Find(ctx context.Context, value string, scope sheet.Scope) (sheet.Cell, error) {
	ref, firstRow, firstCol := "", 1, 1
	switch {
	case scope.Row > 0:
		ref = strconv.Itoa(scope.Row) + ":" + strconv.Itoa(scope.Row)
		firstRow = scope.Row
	case scope.Col > 0:
		label := sheet.ColumnLabel(scope.Col)
		ref = label + ":" + label
		firstCol = scope.Col
	}

	values, err := w.book.getValues(ctx, qualify(w.title, ref), "ROWS")
	if err != nil {
		return sheet.Cell{}, err
	}

	for i, r := range values {
		for j, v := range r {
			if v == value {
				return sheet.Cell{Row: firstRow + i, Col: firstCol + j, Value: v}, nil
			}
		}
	}
	return sheet.Cell{}, fmt.Errorf("%w: %q", sheet.ErrCellNotFound, value)
}

func (w *sheetsWorksheet) AppendRow(ctx context.Context, values []string) error {
	return w.book.appendValues(ctx, qualify(w.title, "A1"), [][]string{values})
}

func (w *sheetsWorksheet) BatchUpdate(ctx context.Context, updates ...sheet.RangeUpdate) error {
	data := make([]valueRange, 0, len(updates))
	for _, u := range updates {
		if _, err := u.Cells(); err != nil {
			return err
		}
		data = append(data, valueRange{Range: qualify(w.title, u.Range), MajorDimension: "ROWS", Values: u.Values})
	}
	return w.book.batchUpdateValues(ctx, data)
}

func (w *sheetsWorksheet) InsertColumn(ctx context.Context, at int) error {
	return w.Apply(ctx, sheet.Batch{InsertColumns: []int{at}})
}

// Apply sends the batch as one spreadsheets.batchUpdate call, which the API
// applies atomically. The Sheets API has no conditional write: the guard is
// read right before the call, so two concurrent writers may both pass it.
func (w *sheetsWorksheet) Apply(ctx context.Context, batch sheet.Batch) error {
	if g := batch.Guard; g != nil {
		actual, err := w.Cell(ctx, g.Row, g.Col)
		if err != nil {
			return fmt.Errorf("reading guard cell: %w", err)
		}
		if actual != g.Expect {
			return fmt.Errorf("%w: %s is %q, expected %q", sheet.ErrGuardFailed, sheet.CellRef(g.Row, g.Col), actual, g.Expect)
		}
	}

	requests := make([]request, 0, len(batch.InsertColumns)+len(batch.Updates))
	for _, at := range batch.InsertColumns {
		if at < 1 {
			return fmt.Errorf("%w: insert column at %d", sheet.ErrOutOfRange, at)
		}
		requests = append(requests, request{InsertDimension: &insertDimensionRequest{
			Range: dimensionRange{
				SheetID:    w.sheetID,
				Dimension:  "COLUMNS",
				StartIndex: at - 1,
				EndIndex:   at,
			},
			InheritFromBefore: at > 1,
		}})
	}

	for _, u := range batch.Updates {
		cells, err := u.Cells()
		if err != nil {
			return err
		}
		r, err := sheet.ParseRange(u.Range)
		if err != nil {
			return err
		}
		requests = append(requests, request{UpdateCells: w.updateCells(r, cells)})
	}

	if len(requests) == 0 {
		return nil
	}

	w.book.logger.Debug().
		Str("worksheet", w.title).
		Int("requests", len(requests)).
		Bool("guarded", batch.Guard != nil).
		Msg("applying batch")

	return w.book.batchUpdate(ctx, requests, nil)
}

func (w *sheetsWorksheet) updateCells(r sheet.Range, cells []sheet.Cell) *updateCellsRequest {
	rows := make([]rowData, r.Rows())
	for i := range rows {
		rows[i].Values = make([]cellData, r.Cols())
	}
	for _, c := range cells {
		if c.Value == "" {
			continue
		}
		v := c.Value
		rows[c.Row-r.StartRow].Values[c.Col-r.StartCol] = cellData{UserEnteredValue: &extendedValue{StringValue: &v}}
	}

	return &updateCellsRequest{
		Range: gridRange{
			SheetID:          w.sheetID,
			StartRowIndex:    r.StartRow - 1,
			EndRowIndex:      r.EndRow,
			StartColumnIndex: r.StartCol - 1,
			EndColumnIndex:   r.EndCol,
		},
		Rows:   rows,
		Fields: "userEnteredValue",
	}
}

func trimTrailing(values []string) []string {
	end := len(values)
	for end > 0 && values[end-1] == "" {
		end--
	}
	return values[:end]
}
