package sheet

// Cell is a located cell value.
type Cell struct {
	Row   int
	Col   int
	Value string
}

// Scope restricts Find to a single row or a single column.
// Exactly one of Row and Col is expected to be set; a zero Scope searches the
// whole worksheet row by row.
type Scope struct {
	Row int
	Col int
}

// InRow scopes a search to row.
func InRow(row int) Scope { return Scope{Row: row} }

// InColumn scopes a search to col.
func InColumn(col int) Scope { return Scope{Col: col} }

// RangeUpdate is a block of values written at an A1 range such as "F2:F103".
// Values are row-major and must fit inside the range.
type RangeUpdate struct {
	Range  string
	Values [][]string
}

// Guard is a compare-and-swap precondition on one cell.
type Guard struct {
	Row    int
	Col    int
	Expect string
}

// Batch groups writes that must land together.
// Steps run in order: the guard is checked, columns are inserted in the order
// listed, then updates are written against the grown grid.
type Batch struct {
	Guard         *Guard
	InsertColumns []int
	Updates       []RangeUpdate
}

// Cells expands the update into individual cell writes.
func (u RangeUpdate) Cells() ([]Cell, error) {
	r, err := ParseRange(u.Range)
	if err != nil {
		return nil, err
	}

	if len(u.Values) > r.Rows() {
		return nil, ErrShapeMismatch
	}

	cells := make([]Cell, 0, r.Rows()*r.Cols())
	for i, rowValues := range u.Values {
		if len(rowValues) > r.Cols() {
			return nil, ErrShapeMismatch
		}
		for j, v := range rowValues {
			cells = append(cells, Cell{Row: r.StartRow + i, Col: r.StartCol + j, Value: v})
		}
	}

	return cells, nil
}

// ColumnValues builds the row-major value block for a single-column range.
func ColumnValues(values ...string) [][]string {
	out := make([][]string, len(values))
	for i, v := range values {
		out[i] = []string{v}
	}
	return out
}
