package sheet

import "errors"

var (
	// ErrWorksheetNotFound is returned when a worksheet with the requested
	// title does not exist in the spreadsheet.
	ErrWorksheetNotFound = errors.New("worksheet not found")

	// ErrWorksheetExists is returned by AddWorksheet when the title is taken.
	ErrWorksheetExists = errors.New("worksheet already exists")

	// ErrCellNotFound is returned by Find when no cell holds the value.
	ErrCellNotFound = errors.New("cell not found")

	// ErrOutOfRange is returned when a row or column lies outside the
	// physical grid of the worksheet.
	ErrOutOfRange = errors.New("cell out of worksheet range")

	// ErrInvalidLabel is returned for column labels that are not made of A-Z.
	ErrInvalidLabel = errors.New("invalid column label")

	// ErrInvalidRange is returned for malformed A1 references.
	ErrInvalidRange = errors.New("invalid A1 range")

	// ErrShapeMismatch is returned when update values do not fit their range.
	ErrShapeMismatch = errors.New("values do not fit the range")

	// ErrGuardFailed is returned by Apply when the guarded cell no longer
	// holds the expected value. Nothing of the batch is applied.
	ErrGuardFailed = errors.New("batch guard failed")
)
