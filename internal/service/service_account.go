package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// accountService is the concrete implementation of AccountService. It does
// not check field formats; see accountValidationService.
type accountService struct {
	credentials store.CredentialRepository
	ownership   store.OwnershipRepository
	allocator   store.ColumnAllocator
	hasher      crypto.PasswordHasher

	// newSessionID returns the id of a fresh session.
	newSessionID func() string

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over the given repositories.
// The returned service performs no format validation; wrap it with
// NewAccountValidationService for that.
func NewAccountService(
	credentials store.CredentialRepository,
	ownership store.OwnershipRepository,
	allocator store.ColumnAllocator,
	hasher crypto.PasswordHasher,
	newSessionID func() string,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		credentials:  credentials,
		ownership:    ownership,
		allocator:    allocator,
		hasher:       hasher,
		newSessionID: newSessionID,
		logger:       logger,
	}
}

func (a *accountService) CheckSignupField(ctx context.Context, req models.SignupRequest, field string) error {
	switch field {
	case validators.FieldUsername:
		return a.usernameFree(ctx, req.Username)
	case validators.FieldPhone:
		return a.phoneFree(ctx, req.Phone)
	case validators.FieldPassword:
		return nil
	default:
		return validators.ErrUnknownField
	}
}

// Signup checks uniqueness, stores the credential and allocates the
// ownership column of the new account.
//
// The credential is written before the column is allocated. If allocation
// fails the account exists without a column; the verify command of the admin
// tool reports such accounts.
func (a *accountService) Signup(ctx context.Context, req models.SignupRequest) error {
	log := a.logger.With().Str("username", req.Username).Logger()

	if err := a.usernameFree(ctx, req.Username); err != nil {
		return err
	}
	if err := a.phoneFree(ctx, req.Phone); err != nil {
		return err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signup").Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	err = a.credentials.Append(ctx, models.Credential{Username: req.Username, PasswordHash: hash, Phone: req.Phone})
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signup").Msg("error storing credential")
		return fmt.Errorf("error storing credential: %w", err)
	}

	col, label, err := a.allocator.Allocate(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signup").Msg("credential stored but column allocation failed")
		return fmt.Errorf("error allocating portfolio column: %w", err)
	}

	log.Info().Int("column", col).Str("label", label).Msg("account created")
	return nil
}

func (a *accountService) CheckUsername(ctx context.Context, username string) error {
	_, _, err := a.credentials.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error looking up username: %w", err)
	}
	return nil
}

func (a *accountService) Login(ctx context.Context, session *Session, req models.LoginRequest) (models.User, error) {
	if state := session.State(); state != Authenticating {
		return models.User{}, fmt.Errorf("%w: login while %s", ErrInvalidTransition, state)
	}
	log := a.logger.With().Str("username", req.Username).Logger()

	credential, _, err := a.credentials.FindByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrCredentialNotFound) {
		log.Info().Msg("login rejected: unknown username")
		return models.User{}, a.reject(session, ErrUserNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error looking up username: %w", err)
	}

	err = a.hasher.Verify(credential.PasswordHash, req.Password)
	if errors.Is(err, crypto.ErrMismatchedPassword) {
		log.Info().Msg("login rejected: wrong password")
		return models.User{}, a.reject(session, ErrWrongPassword)
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Login").Msg("stored password hash unusable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}

	col, err := a.ownership.ColumnForUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Login").Msg("error resolving portfolio column")
		return models.User{}, fmt.Errorf("error resolving portfolio column: %w", err)
	}

	label, err := a.ownership.LabelForColumn(ctx, col)
	if errors.Is(err, store.ErrLabelMissing) {
		log.Warn().Int("column", col).Str("label", label).Msg("label row blank, using computed label")
	} else if err != nil {
		return models.User{}, fmt.Errorf("error resolving column label: %w", err)
	}

	user := models.User{
		Username:    req.Username,
		Column:      col,
		ColumnLabel: label,
		SessionID:   a.newSessionID(),
	}
	if err := session.Authenticate(user); err != nil {
		return models.User{}, err
	}

	a.logger.WithSession(user.SessionID, user.Username).Info().Str("label", label).Msg("user logged in")
	return user, nil
}

func (a *accountService) CheckPhone(ctx context.Context, phone string) error {
	_, _, err := a.credentials.FindByPhone(ctx, phone)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return ErrPhoneNotFound
	}
	if err != nil {
		return fmt.Errorf("error looking up phone number: %w", err)
	}
	return nil
}

func (a *accountService) ResetPassword(ctx context.Context, req models.ResetRequest) error {
	credential, row, err := a.credentials.FindByPhone(ctx, req.Phone)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return ErrPhoneNotFound
	}
	if err != nil {
		return fmt.Errorf("error looking up phone number: %w", err)
	}

	hash, err := a.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := a.credentials.UpdatePassword(ctx, row, hash); err != nil {
		a.logger.Err(err).Str("func", "*accountService.ResetPassword").Int("row", row).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	a.logger.Info().Str("username", credential.Username).Msg("password reset")
	return nil
}

func (a *accountService) usernameFree(ctx context.Context, username string) error {
	_, _, err := a.credentials.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case errors.Is(err, store.ErrCredentialNotFound):
		return nil
	default:
		return fmt.Errorf("error checking username: %w", err)
	}
}

func (a *accountService) phoneFree(ctx context.Context, phone string) error {
	_, _, err := a.credentials.FindByPhone(ctx, phone)
	switch {
	case err == nil:
		return ErrPhoneTaken
	case errors.Is(err, store.ErrCredentialNotFound):
		return nil
	default:
		return fmt.Errorf("error checking phone number: %w", err)
	}
}

// reject moves session to Rejected and returns cause.
func (a *accountService) reject(session *Session, cause error) error {
	if err := session.Fire(Fail); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}
