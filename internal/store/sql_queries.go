package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
)

const (
	worksheetsTable = "worksheets"
	cellsTable      = "cells"
)

// cellRecord is one stored, non-empty cell.
type cellRecord struct {
	row   int
	col   int
	value string
}

func selectWorksheetQuery(b sq.StatementBuilderType, title string, forUpdate bool) sq.SelectBuilder {
	q := b.Select("row_count", "col_count").
		From(worksheetsTable).
		Where(sq.Eq{"title": title})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	return q
}

func insertWorksheetQuery(b sq.StatementBuilderType, title string, rows, cols int) sq.InsertBuilder {
	return b.Insert(worksheetsTable).
		Columns("title", "row_count", "col_count").
		Values(title, rows, cols)
}

func updateWorksheetSizeQuery(b sq.StatementBuilderType, title string, rows, cols int) sq.UpdateBuilder {
	return b.Update(worksheetsTable).
		Set("row_count", rows).
		Set("col_count", cols).
		Where(sq.Eq{"title": title})
}

// selectCellsQuery selects the stored cells of title matching where, ordered
// row by row.
func selectCellsQuery(b sq.StatementBuilderType, title string, where sq.Sqlizer) sq.SelectBuilder {
	return b.Select("row_idx", "col_idx", "value").
		From(cellsTable).
		Where(sq.Eq{"worksheet": title}).
		Where(where).
		OrderBy("row_idx", "col_idx")
}

func rangeCondition(r sheet.Range) sq.Sqlizer {
	return sq.And{
		sq.GtOrEq{"row_idx": r.StartRow},
		sq.LtOrEq{"row_idx": r.EndRow},
		sq.GtOrEq{"col_idx": r.StartCol},
		sq.LtOrEq{"col_idx": r.EndCol},
	}
}

func findCellQuery(b sq.StatementBuilderType, title, value string, scope sheet.Scope) sq.SelectBuilder {
	where := sq.Eq{"value": value}
	if scope.Row > 0 {
		where["row_idx"] = scope.Row
	}
	if scope.Col > 0 {
		where["col_idx"] = scope.Col
	}
	return selectCellsQuery(b, title, where).Limit(1)
}

func lastRowQuery(b sq.StatementBuilderType, title string) sq.SelectBuilder {
	return b.Select("COALESCE(MAX(row_idx), 0)").
		From(cellsTable).
		Where(sq.Eq{"worksheet": title})
}

func upsertCellQuery(b sq.StatementBuilderType, title string, c sheet.Cell) sq.InsertBuilder {
	return b.Insert(cellsTable).
		Columns("worksheet", "row_idx", "col_idx", "value").
		Values(title, c.Row, c.Col, c.Value).
		Suffix("ON CONFLICT (worksheet, row_idx, col_idx) DO UPDATE SET value = excluded.value")
}

func deleteCellQuery(b sq.StatementBuilderType, title string, row, col int) sq.DeleteBuilder {
	return b.Delete(cellsTable).
		Where(sq.Eq{"worksheet": title, "row_idx": row, "col_idx": col})
}

// shiftColumnsQueries move every cell at or right of column at one column to
// the right. The cells are first parked at negated indices so no
// intermediate state collides with the primary key.
func shiftColumnsQueries(b sq.StatementBuilderType, title string, at int) (park, restore sq.UpdateBuilder) {
	park = b.Update(cellsTable).
		Set("col_idx", sq.Expr("-(col_idx + 1)")).
		Where(sq.Eq{"worksheet": title}).
		Where(sq.GtOrEq{"col_idx": at})

	restore = b.Update(cellsTable).
		Set("col_idx", sq.Expr("-col_idx")).
		Where(sq.Eq{"worksheet": title}).
		Where(sq.Lt{"col_idx": 0})

	return park, restore
}
