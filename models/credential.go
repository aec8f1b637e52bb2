package models

// Credential is one record of the credential worksheet.
//
// PasswordHash is always the output of a salted one-way hash, never the
// plaintext password.
type Credential struct {
	Username     string
	PasswordHash string
	Phone        string
}

// SignupRequest carries the raw values entered on the account creation form.
type SignupRequest struct {
	Username string
	Password string
	Phone    string
}

// LoginRequest carries the raw values entered on the login form.
type LoginRequest struct {
	Username string
	Password string
}

// ResetRequest carries the raw values entered on the password recovery form.
type ResetRequest struct {
	Phone       string
	NewPassword string
}
