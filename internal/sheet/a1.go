package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

// IncrementLabel returns the column label following label in spreadsheet
// order: "A" → "B", "Z" → "AA", "AZ" → "BA", "ZZ" → "AAA". The empty label
// increments to "A".
//
// The carry is taken from the last letter: a trailing "Z" rolls over to "A"
// and increments the prefix.
func IncrementLabel(label string) string {
	if label == "" {
		return "A"
	}

	prefix, last := label[:len(label)-1], label[len(label)-1]
	if last == 'Z' {
		return IncrementLabel(prefix) + "A"
	}

	return prefix + string(last+1)
}

// ColumnLabel converts a 1-based column index to its label (1 → "A", 27 → "AA").
// Non-positive indices yield "".
func ColumnLabel(index int) string {
	if index < 1 {
		return ""
	}

	var b []byte
	for index > 0 {
		index--
		b = append(b, byte('A'+index%26))
		index /= 26
	}

	// digits were produced least significant first
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// ColumnIndex converts a column label to its 1-based index ("AA" → 27).
func ColumnIndex(label string) (int, error) {
	if label == "" {
		return 0, ErrInvalidLabel
	}

	index := 0
	for _, r := range label {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
		}
		index = index*26 + int(r-'A'+1)
	}

	return index, nil
}

// CellRef renders an A1 reference for a single cell.
func CellRef(row, col int) string {
	return ColumnLabel(col) + strconv.Itoa(row)
}

// RangeRef renders an A1 range reference such as "F2:F103".
func RangeRef(startRow, startCol, endRow, endCol int) string {
	return CellRef(startRow, startCol) + ":" + CellRef(endRow, endCol)
}

// ColumnRangeRef renders the range of rows first..last in the column labelled
// label, e.g. ColumnRangeRef("C", 2, 103) == "C2:C103".
func ColumnRangeRef(label string, first, last int) string {
	return label + strconv.Itoa(first) + ":" + label + strconv.Itoa(last)
}

// Range is a parsed, inclusive A1 range.
type Range struct {
	StartRow, StartCol int
	EndRow, EndCol     int
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int { return r.EndRow - r.StartRow + 1 }

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int { return r.EndCol - r.StartCol + 1 }

// String renders the range back to A1 notation.
func (r Range) String() string {
	if r.StartRow == r.EndRow && r.StartCol == r.EndCol {
		return CellRef(r.StartRow, r.StartCol)
	}
	return RangeRef(r.StartRow, r.StartCol, r.EndRow, r.EndCol)
}

// ParseCell parses a single A1 cell reference such as "A2".
func ParseCell(ref string) (row, col int, err error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))

	split := strings.IndexFunc(ref, func(r rune) bool { return r >= '0' && r <= '9' })
	if split <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	col, err = ColumnIndex(ref[:split])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	row, err = strconv.Atoi(ref[split:])
	if err != nil || row < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	return row, col, nil
}

// ParseRange parses "F2:F103" or a single cell "A2" into a [Range].
// A leading worksheet qualifier ("'login'!A1:C3") is ignored.
func ParseRange(spec string) (Range, error) {
	if i := strings.LastIndex(spec, "!"); i >= 0 {
		spec = spec[i+1:]
	}

	start, end, isRange := strings.Cut(spec, ":")
	r1, c1, err := ParseCell(start)
	if err != nil {
		return Range{}, err
	}
	if !isRange {
		return Range{StartRow: r1, StartCol: c1, EndRow: r1, EndCol: c1}, nil
	}

	r2, c2, err := ParseCell(end)
	if err != nil {
		return Range{}, err
	}
	if r2 < r1 || c2 < c1 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
	}

	return Range{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2}, nil
}
