package adapter

// Wire types of the Sheets REST API v4. Only the fields used by this
// package are declared.

type gridProperties struct {
	RowCount    int `json:"rowCount"`
	ColumnCount int `json:"columnCount"`
}

type sheetProperties struct {
	SheetID        int64          `json:"sheetId,omitempty"`
	Title          string         `json:"title"`
	GridProperties gridProperties `json:"gridProperties"`
}

type spreadsheetMetadata struct {
	Sheets []struct {
		Properties sheetProperties `json:"properties"`
	} `json:"sheets"`
}

type valueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values"`
}

type batchUpdateValuesRequest struct {
	ValueInputOption string       `json:"valueInputOption"`
	Data             []valueRange `json:"data"`
}

type batchUpdateRequest struct {
	Requests []request `json:"requests"`
}

type batchUpdateResponse struct {
	Replies []struct {
		AddSheet *addSheetRequest `json:"addSheet,omitempty"`
	} `json:"replies"`
}

type request struct {
	AddSheet        *addSheetRequest        `json:"addSheet,omitempty"`
	InsertDimension *insertDimensionRequest `json:"insertDimension,omitempty"`
	UpdateCells     *updateCellsRequest     `json:"updateCells,omitempty"`
}

type addSheetRequest struct {
	Properties sheetProperties `json:"properties"`
}

type dimensionRange struct {
	SheetID    int64  `json:"sheetId"`
	Dimension  string `json:"dimension"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

type insertDimensionRequest struct {
	Range             dimensionRange `json:"range"`
	InheritFromBefore bool           `json:"inheritFromBefore"`
}

// gridRange indexes are zero-based and end-exclusive.
type gridRange struct {
	SheetID          int64 `json:"sheetId"`
	StartRowIndex    int   `json:"startRowIndex"`
	EndRowIndex      int   `json:"endRowIndex"`
	StartColumnIndex int   `json:"startColumnIndex"`
	EndColumnIndex   int   `json:"endColumnIndex"`
}

type updateCellsRequest struct {
	Range  gridRange `json:"range"`
	Rows   []rowData `json:"rows"`
	Fields string    `json:"fields"`
}

type rowData struct {
	Values []cellData `json:"values"`
}

// cellData without a value clears the cell when "userEnteredValue" is in the
// update mask.
type cellData struct {
	UserEnteredValue *extendedValue `json:"userEnteredValue,omitempty"`
}

type extendedValue struct {
	StringValue *string `json:"stringValue,omitempty"`
}
