package service

import (
	"context"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// AccountService implements the signup, login and password recovery flows
// over the credential store and the column allocator.
type AccountService interface {
	// CheckSignupField validates one field of req (see validators.Field*)
	// including uniqueness of username and phone, so a form can reprompt the
	// offending field alone.
	CheckSignupField(ctx context.Context, req models.SignupRequest, field string) error

	// Signup registers a new account and allocates its ownership column. It
	// does not log the user in.
	Signup(ctx context.Context, req models.SignupRequest) error

	// CheckUsername returns ErrUserNotFound if no account has username.
	CheckUsername(ctx context.Context, username string) error

	// Login authenticates req. session must be Authenticating; it moves to
	// Authenticated on success and to Rejected on a missing username or a
	// wrong password.
	Login(ctx context.Context, session *Session, req models.LoginRequest) (models.User, error)

	// CheckPhone returns ErrPhoneNotFound if no account has phone.
	CheckPhone(ctx context.Context, phone string) error

	// ResetPassword replaces the password of the account registered with
	// req.Phone.
	ResetPassword(ctx context.Context, req models.ResetRequest) error
}

// AccountServiceWrapper decorates an AccountService, e.g. with validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// PortfolioService runs the portfolio operations of one authenticated user.
// Every method reads or writes only the ownership column of user.
type PortfolioService interface {
	// Add marks card as owned and returns it. Returns ErrAlreadyOwned if it
	// already was.
	Add(ctx context.Context, user models.User, card int) (models.Card, error)

	// Remove marks card as not owned and returns it. Returns ErrNotOwned if
	// it was not owned.
	Remove(ctx context.Context, user models.User, card int) (models.Card, error)

	// Owned lists the owned cards in card number order.
	Owned(ctx context.Context, user models.User) ([]models.Card, models.Completion, error)

	// Needed lists the cards still missing in card number order.
	Needed(ctx context.Context, user models.User) ([]models.Card, models.Completion, error)

	// Appraise sums the market values of the owned cards.
	Appraise(ctx context.Context, user models.User) (models.Appraisal, error)

	// Delete marks every card as not owned.
	Delete(ctx context.Context, user models.User) error
}
