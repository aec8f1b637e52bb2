// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sheet defines the spreadsheet transport contract used as the only
// persistent store of the application.
//
// A [Spreadsheet] is a named workbook holding named [Worksheet] grids. Rows and
// columns are addressed 1-based, exactly like A1 notation ("F2" is row 2,
// column 6). Every worksheet has a physical size; writes outside of it fail
// with [ErrOutOfRange] until the grid is grown (see [Worksheet.InsertColumn]
// and [Worksheet.AppendRow]).
//
// Three implementations exist in the module:
//   - [Memory], an in-process workbook used by tests and the "memory" driver;
//   - the SQL workbook in internal/store (SQLite and PostgreSQL);
//   - the Google Sheets REST adapter in internal/adapter.
package sheet
