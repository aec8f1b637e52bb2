// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// Credential worksheet: header in row 1, one record per following row.
const (
	credentialHeaderRow = 1
	usernameCol         = 1
	passwordCol         = 2
	phoneCol            = 3
	credentialCols      = 3
)

// Ownership worksheet coordinates. Rows are 1-based A1 rows.
const (
	headerRow    = 1
	pointerRow   = 2
	pointerCol   = 1
	firstCardRow = 2
	lastCardRow  = firstCardRow + models.SetSize - 1
	labelRow     = lastCardRow + 1

	cardNameCol      = 2
	setCardNumberCol = 3
	cardNumberCol    = 4
	marketValueCol   = 5

	// FirstUserColumn is the index of the first ownership column ("F").
	FirstUserColumn = 6
)

// Ownership flag values.
const (
	Yes = "Yes"
	No  = "No"
)

var (
	credentialHeader = []string{"username", "password", "phone"}
	ownershipHeader  = []string{"next_free_column", "card_name", "set_card_number", "card_number", "market_value"}
)

// Layout names the two worksheets of the workbook.
type Layout struct {
	Credentials string
	Ownership   string
}

func cardRow(card int) int {
	return firstCardRow + card - 1
}

// cardColumnRange is the A1 range of the card rows of one column ("F2:F103").
func cardColumnRange(label string) string {
	return sheet.ColumnRangeRef(label, firstCardRow, lastCardRow)
}

func noColumn() [][]string {
	values := make([]string, models.SetSize)
	for i := range values {
		values[i] = No
	}
	return sheet.ColumnValues(values...)
}
