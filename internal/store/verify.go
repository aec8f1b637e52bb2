package store

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// Issue is one violation of the workbook layout found by [Verify].
type Issue struct {
	Worksheet string
	Cell      string
	Problem   string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s!%s: %s", i.Worksheet, i.Cell, i.Problem)
}

// Verify checks both worksheets of layout against the layout invariants:
// the headers are in place, every registered username owns exactly one
// column whose card rows hold only Yes or No and whose label row names the
// column, and the pointer addresses an existing column without an owner.
//
// The returned error is reserved for read failures; layout violations are
// reported as issues.
func Verify(ctx context.Context, book sheet.Spreadsheet, layout Layout) ([]Issue, error) {
	credentials, err := book.Worksheet(ctx, layout.Credentials)
	if err != nil {
		return nil, fmt.Errorf("error opening worksheet %s: %w", layout.Credentials, err)
	}
	ownership, err := book.Worksheet(ctx, layout.Ownership)
	if err != nil {
		return nil, fmt.Errorf("error opening worksheet %s: %w", layout.Ownership, err)
	}

	var issues []Issue
	credIssue := func(ref, problem string, args ...any) {
		issues = append(issues, Issue{Worksheet: layout.Credentials, Cell: ref, Problem: fmt.Sprintf(problem, args...)})
	}
	ownIssue := func(ref, problem string, args ...any) {
		issues = append(issues, Issue{Worksheet: layout.Ownership, Cell: ref, Problem: fmt.Sprintf(problem, args...)})
	}

	header, err := credentials.Row(ctx, credentialHeaderRow)
	if err != nil {
		return nil, fmt.Errorf("error reading credential header: %w", err)
	}
	if !slices.Equal(header, credentialHeader) {
		credIssue("A1", "header is %q, want %q", header, credentialHeader)
	}

	usernames, err := credentials.Column(ctx, usernameCol)
	if err != nil {
		return nil, fmt.Errorf("error reading usernames: %w", err)
	}

	_, cols, err := ownership.Size(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading ownership size: %w", err)
	}
	if cols < FirstUserColumn {
		ownIssue("A1", "worksheet has %d columns, want at least %d", cols, FirstUserColumn)
		return issues, nil
	}

	grid, err := ownership.Values(ctx, sheet.RangeRef(headerRow, 1, labelRow, cols))
	if err != nil {
		return nil, fmt.Errorf("error reading ownership worksheet: %w", err)
	}

	if got := grid[headerRow-1][:len(ownershipHeader)]; !slices.Equal(got, ownershipHeader) {
		ownIssue("A1", "header is %q, want %q", got, ownershipHeader)
	}

	for card := 1; card <= models.SetSize; card++ {
		if got := grid[cardRow(card)-1][cardNumberCol-1]; got != strconv.Itoa(card) {
			ownIssue(sheet.CellRef(cardRow(card), cardNumberCol), "card number is %q, want %d", got, card)
		}
	}

	pointer := grid[pointerRow-1][pointerCol-1]
	pointerIdx, err := sheet.ColumnIndex(pointer)
	switch {
	case err != nil || pointerIdx < FirstUserColumn:
		ownIssue("A2", "pointer %q is not a user column", pointer)
		pointerIdx = cols + 1
	case pointerIdx > cols:
		ownIssue("A2", "pointer %q names a column that does not exist", pointer)
	case grid[headerRow-1][pointerIdx-1] != "":
		ownIssue("A2", "pointer %q names a column owned by %q", pointer, grid[headerRow-1][pointerIdx-1])
	}

	owners := make(map[string]int)
	for col := FirstUserColumn; col <= cols; col++ {
		owner := grid[headerRow-1][col-1]
		if owner == "" {
			if col < pointerIdx {
				ownIssue(sheet.CellRef(headerRow, col), "column before the pointer has no owner")
			}
			continue
		}
		owners[owner]++

		for row := firstCardRow; row <= lastCardRow; row++ {
			if v := grid[row-1][col-1]; v != Yes && v != No {
				ownIssue(sheet.CellRef(row, col), "flag of %q is %q, want %s or %s", owner, v, Yes, No)
			}
		}
		if label := grid[labelRow-1][col-1]; label != sheet.ColumnLabel(col) {
			ownIssue(sheet.CellRef(labelRow, col), "label is %q, want %q", label, sheet.ColumnLabel(col))
		}
	}

	registered := make(map[string]bool)
	for i := credentialHeaderRow; i < len(usernames); i++ {
		name := usernames[i]
		if name == "" {
			continue
		}
		if registered[name] {
			credIssue(sheet.CellRef(i+1, usernameCol), "username %q is registered twice", name)
		}
		registered[name] = true

		switch owners[name] {
		case 0:
			credIssue(sheet.CellRef(i+1, usernameCol), "username %q has no ownership column", name)
		case 1:
		default:
			credIssue(sheet.CellRef(i+1, usernameCol), "username %q owns %d columns", name, owners[name])
		}
	}
	for col := FirstUserColumn; col <= cols; col++ {
		if owner := grid[headerRow-1][col-1]; owner != "" && !registered[owner] {
			ownIssue(sheet.CellRef(headerRow, col), "column owner %q is not registered", owner)
		}
	}

	return issues, nil
}
