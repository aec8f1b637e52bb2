package models

// User is the handle of an authenticated session. It binds the session to the
// one ownership matrix column owned by Username and is never persisted.
type User struct {
	// Username is the login of the authenticated account.
	Username string

	// Column is the 1-based index of the user's ownership column.
	Column int

	// ColumnLabel is the A1 letter label of Column ("F").
	ColumnLabel string

	// SessionID identifies the session in logs.
	SessionID string
}
