package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the SQL workbook how to report a failed statement.
type ErrorClassification int

const (
	// NonRetryable is reported as is. Unknown errors fall here.
	NonRetryable ErrorClassification = iota

	// Retryable failures are lost races or dropped connections. A guarded
	// batch failing this way is reported as a failed guard.
	Retryable

	// Conflict is a uniqueness violation, such as a worksheet title that is
	// already taken.
	Conflict
)

// PostgresErrorClassifier classifies errors of the pgx driver by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to an [ErrorClassification]:
//   - class 08 (connection exception) and class 40 (transaction rollback),
//     55P03 lock_not_available and 57P03 cannot_connect_now are Retryable;
//   - 23505 unique_violation is a Conflict;
//   - everything else is NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code), pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.LockNotAvailable, code == pgerrcode.CannotConnectNow:
		return Retryable
	case code == pgerrcode.UniqueViolation:
		return Conflict
	default:
		return NonRetryable
	}
}
