package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when no credential row holds the
	// requested username or phone number.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrColumnNotFound is returned when no ownership column carries the
	// requested username in its header cell.
	ErrColumnNotFound = errors.New("ownership column not found")

	// ErrLabelMissing is returned together with a computed label when the
	// label row of an ownership column is blank.
	ErrLabelMissing = errors.New("ownership column label missing")

	// ErrPointerCorrupted is returned when the next-free-column pointer does
	// not address a free column of the ownership worksheet.
	ErrPointerCorrupted = errors.New("next free column pointer corrupted")

	// ErrCardOutOfRange is returned for card numbers outside the set.
	ErrCardOutOfRange = errors.New("card number out of range")

	// ErrAllocationConflict is returned in compare-and-swap mode when every
	// allocation attempt lost the race for the pointer.
	ErrAllocationConflict = errors.New("column allocation kept conflicting")

	// ErrLayoutInvalid is returned by [Verify] and [Bootstrap] when a
	// worksheet does not have the expected header or shape.
	ErrLayoutInvalid = errors.New("worksheet layout invalid")

	// ErrUnknownDriver is returned by [OpenSQLWorkbook] for drivers that are
	// not backed by a SQL database.
	ErrUnknownDriver = errors.New("unknown sql storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by the
// SQL workbook when a SQL-level operation fails before any worksheet logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning cell values fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan cell rows")
)
