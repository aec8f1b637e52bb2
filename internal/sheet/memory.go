package sheet

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process [Spreadsheet]. All worksheets of one Memory share a
// single lock, so every method (and Apply as a whole) is atomic.
type Memory struct {
	mu     sync.Mutex
	sheets map[string]*memorySheet
}

// NewMemory returns an empty in-memory workbook.
func NewMemory() *Memory {
	return &Memory{sheets: make(map[string]*memorySheet)}
}

// Worksheet implements [Spreadsheet].
func (m *Memory) Worksheet(_ context.Context, title string) (Worksheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, ok := m.sheets[title]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, title)
	}
	return ws, nil
}

// AddWorksheet implements [Spreadsheet].
func (m *Memory) AddWorksheet(_ context.Context, title string, rows, cols int) (Worksheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sheets[title]; ok {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetExists, title)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrOutOfRange, rows, cols)
	}

	ws := &memorySheet{book: m, title: title, grid: newGrid(rows, cols)}
	m.sheets[title] = ws
	return ws, nil
}

// Close implements [Spreadsheet]. It is a no-op.
func (m *Memory) Close() error {
	return nil
}

type grid [][]string

func newGrid(rows, cols int) grid {
	g := make(grid, rows)
	for i := range g {
		g[i] = make([]string, cols)
	}
	return g
}

func (g grid) rows() int { return len(g) }

func (g grid) cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g grid) inside(row, col int) bool {
	return row >= 1 && col >= 1 && row <= g.rows() && col <= g.cols()
}

func (g grid) clone() grid {
	c := make(grid, len(g))
	for i, r := range g {
		c[i] = append([]string(nil), r...)
	}
	return c
}

func (g grid) insertColumn(at int) (grid, error) {
	if at < 1 || at > g.cols()+1 {
		return nil, fmt.Errorf("%w: insert column at %d", ErrOutOfRange, at)
	}
	for i, r := range g {
		grown := make([]string, 0, len(r)+1)
		grown = append(grown, r[:at-1]...)
		grown = append(grown, "")
		g[i] = append(grown, r[at-1:]...)
	}
	return g, nil
}

func (g grid) write(cells []Cell) error {
	for _, c := range cells {
		if !g.inside(c.Row, c.Col) {
			return fmt.Errorf("%w: %s", ErrOutOfRange, CellRef(c.Row, c.Col))
		}
	}
	for _, c := range cells {
		g[c.Row-1][c.Col-1] = c.Value
	}
	return nil
}

func (g grid) lastRow() int {
	for i := len(g) - 1; i >= 0; i-- {
		for _, v := range g[i] {
			if v != "" {
				return i + 1
			}
		}
	}
	return 0
}

func trimTrailing(values []string) []string {
	end := len(values)
	for end > 0 && values[end-1] == "" {
		end--
	}
	return values[:end]
}

type memorySheet struct {
	book  *Memory
	title string
	grid  grid
}

func (s *memorySheet) Title() string { return s.title }

func (s *memorySheet) Size(_ context.Context) (int, int, error) {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()
	return s.grid.rows(), s.grid.cols(), nil
}

func (s *memorySheet) Cell(_ context.Context, row, col int) (string, error) {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	if !s.grid.inside(row, col) {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, CellRef(row, col))
	}
	return s.grid[row-1][col-1], nil
}

func (s *memorySheet) UpdateCell(_ context.Context, row, col int, value string) error {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	return s.grid.write([]Cell{{Row: row, Col: col, Value: value}})
}

func (s *memorySheet) Row(_ context.Context, row int) ([]string, error) {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	if row < 1 || row > s.grid.rows() {
		return nil, fmt.Errorf("%w: row %d", ErrOutOfRange, row)
	}
	return trimTrailing(append([]string(nil), s.grid[row-1]...)), nil
}

func (s *memorySheet) Column(_ context.Context, col int) ([]string, error) {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	if col < 1 || col > s.grid.cols() {
		return nil, fmt.Errorf("%w: column %d", ErrOutOfRange, col)
	}

	values := make([]string, s.grid.rows())
	for i, r := range s.grid {
		values[i] = r[col-1]
	}
	return trimTrailing(values), nil
}

func (s *memorySheet) Values(_ context.Context, spec string) ([][]string, error) {
	r, err := ParseRange(spec)
	if err != nil {
		return nil, err
	}

	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	if !s.grid.inside(r.StartRow, r.StartCol) || !s.grid.inside(r.EndRow, r.EndCol) {
		return nil, fmt.Errorf("%w: %s", ErrOutOfRange, r)
	}

	out := make([][]string, r.Rows())
	for i := range out {
		out[i] = append([]string(nil), s.grid[r.StartRow-1+i][r.StartCol-1:r.EndCol]...)
	}
	return out, nil
}

func (s *memorySheet) Find(_ context.Context, value string, scope Scope) (Cell, error) {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	for i, r := range s.grid {
		if scope.Row > 0 && i+1 != scope.Row {
			continue
		}
		for j, v := range r {
			if scope.Col > 0 && j+1 != scope.Col {
				continue
			}
			if v == value {
				return Cell{Row: i + 1, Col: j + 1, Value: v}, nil
			}
		}
	}

	return Cell{}, fmt.Errorf("%w: %q", ErrCellNotFound, value)
}

func (s *memorySheet) AppendRow(_ context.Context, values []string) error {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	if len(values) > s.grid.cols() {
		return fmt.Errorf("%w: %d values for %d columns", ErrShapeMismatch, len(values), s.grid.cols())
	}

	row := s.grid.lastRow() + 1
	if row > s.grid.rows() {
		s.grid = append(s.grid, make([]string, s.grid.cols()))
	}
	copy(s.grid[row-1], values)
	return nil
}

func (s *memorySheet) BatchUpdate(ctx context.Context, updates ...RangeUpdate) error {
	return s.Apply(ctx, Batch{Updates: updates})
}

func (s *memorySheet) InsertColumn(ctx context.Context, at int) error {
	return s.Apply(ctx, Batch{InsertColumns: []int{at}})
}

// Apply works on a copy of the grid and swaps it in only when every step
// succeeded.
func (s *memorySheet) Apply(_ context.Context, batch Batch) error {
	s.book.mu.Lock()
	defer s.book.mu.Unlock()

	if g := batch.Guard; g != nil {
		if !s.grid.inside(g.Row, g.Col) {
			return fmt.Errorf("%w: guard %s", ErrOutOfRange, CellRef(g.Row, g.Col))
		}
		if actual := s.grid[g.Row-1][g.Col-1]; actual != g.Expect {
			return fmt.Errorf("%w: %s is %q, expected %q", ErrGuardFailed, CellRef(g.Row, g.Col), actual, g.Expect)
		}
	}

	next := s.grid.clone()

	var err error
	for _, at := range batch.InsertColumns {
		if next, err = next.insertColumn(at); err != nil {
			return err
		}
	}

	for _, u := range batch.Updates {
		cells, err := u.Cells()
		if err != nil {
			return err
		}
		if err = next.write(cells); err != nil {
			return err
		}
	}

	s.grid = next
	return nil
}
