package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/mock"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
	"github.com/MKhiriev/go-card-portfolio/models"
)

type accountMocks struct {
	credentials *mock.MockCredentialRepository
	ownership   *mock.MockOwnershipRepository
	allocator   *mock.MockColumnAllocator
	hasher      *mock.MockPasswordHasher
}

// newTestAccountSvc returns the validated account service over mocks.
func newTestAccountSvc(t *testing.T) (AccountService, accountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := accountMocks{
		credentials: mock.NewMockCredentialRepository(ctrl),
		ownership:   mock.NewMockOwnershipRepository(ctrl),
		allocator:   mock.NewMockColumnAllocator(ctrl),
		hasher:      mock.NewMockPasswordHasher(ctrl),
	}

	inner := NewAccountService(m.credentials, m.ownership, m.allocator, m.hasher,
		func() string { return "session-1" }, logger.Nop())

	return NewAccountValidationService().Wrap(inner), m
}

func loggingIn(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	require.NoError(t, s.Fire(BeginLogin))
	return s
}

var (
	signupReq  = models.SignupRequest{Username: "trainer1", Password: "pass1", Phone: "5551234567"}
	storedCred = models.Credential{Username: "trainer1", PasswordHash: "$2a$hash", Phone: "5551234567"}
	errStore   = errors.New("sheets unavailable")
)

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAccountService_Signup_Success(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(models.Credential{}, 0, store.ErrCredentialNotFound),
		m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(models.Credential{}, 0, store.ErrCredentialNotFound),
		m.hasher.EXPECT().Hash("pass1").Return("$2a$hash", nil),
		m.credentials.EXPECT().Append(ctx, storedCred).Return(nil),
		m.allocator.EXPECT().Allocate(ctx, "trainer1").Return(6, "F", nil),
	)

	require.NoError(t, svc.Signup(ctx, signupReq))
}

func TestAccountService_Signup_InvalidFormatTouchesNothing(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	err := svc.Signup(context.Background(), models.SignupRequest{Username: "ash", Password: "pass1", Phone: "5551234567"})

	assert.ErrorIs(t, err, validators.ErrInvalidUsername)
	assert.Equal(t, KindValidation, Classify(err))
}

func TestAccountService_Signup_UsernameTaken(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil)

	err := svc.Signup(ctx, signupReq)

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, KindValidation, Classify(err))
}

func TestAccountService_Signup_PhoneTaken(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
	m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(storedCred, 2, nil)

	assert.ErrorIs(t, svc.Signup(ctx, signupReq), ErrPhoneTaken)
}

func TestAccountService_Signup_AppendFails(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
	m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
	m.hasher.EXPECT().Hash("pass1").Return("$2a$hash", nil)
	m.credentials.EXPECT().Append(ctx, storedCred).Return(errStore)

	err := svc.Signup(ctx, signupReq)

	assert.ErrorIs(t, err, errStore)
	assert.Equal(t, KindStore, Classify(err))
}

func TestAccountService_Signup_AllocationFails(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
	m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
	m.hasher.EXPECT().Hash("pass1").Return("$2a$hash", nil)
	m.credentials.EXPECT().Append(ctx, storedCred).Return(nil)
	m.allocator.EXPECT().Allocate(ctx, "trainer1").Return(0, "", store.ErrAllocationConflict)

	assert.ErrorIs(t, svc.Signup(ctx, signupReq), store.ErrAllocationConflict)
}

func TestAccountService_CheckSignupField(t *testing.T) {
	ctx := context.Background()

	t.Run("username format", func(t *testing.T) {
		svc, _ := newTestAccountSvc(t)
		err := svc.CheckSignupField(ctx, models.SignupRequest{Username: "a b"}, validators.FieldUsername)
		assert.ErrorIs(t, err, validators.ErrInvalidUsername)
	})
	t.Run("username taken", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil)
		err := svc.CheckSignupField(ctx, signupReq, validators.FieldUsername)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
	t.Run("password needs no lookup", func(t *testing.T) {
		svc, _ := newTestAccountSvc(t)
		assert.NoError(t, svc.CheckSignupField(ctx, signupReq, validators.FieldPassword))
	})
	t.Run("phone free", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
		assert.NoError(t, svc.CheckSignupField(ctx, signupReq, validators.FieldPhone))
	})
	t.Run("phone lookup fails", func(t *testing.T) {
		svc, m := newTestAccountSvc(t)
		m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(models.Credential{}, 0, errStore)
		err := svc.CheckSignupField(ctx, signupReq, validators.FieldPhone)
		assert.ErrorIs(t, err, errStore)
		assert.Equal(t, KindStore, Classify(err))
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAccountService_Login_Success(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	session := loggingIn(t)

	gomock.InOrder(
		m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil),
		m.hasher.EXPECT().Verify("$2a$hash", "pass1").Return(nil),
		m.ownership.EXPECT().ColumnForUsername(ctx, "trainer1").Return(6, nil),
		m.ownership.EXPECT().LabelForColumn(ctx, 6).Return("F", nil),
	)

	user, err := svc.Login(ctx, session, models.LoginRequest{Username: "trainer1", Password: "pass1"})

	require.NoError(t, err)
	want := models.User{Username: "trainer1", Column: 6, ColumnLabel: "F", SessionID: "session-1"}
	assert.Equal(t, want, user)
	assert.Equal(t, Authenticated, session.State())

	bound, err := session.User()
	require.NoError(t, err)
	assert.Equal(t, want, bound)
}

func TestAccountService_Login_LabelMissingUsesComputed(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	session := loggingIn(t)

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil)
	m.hasher.EXPECT().Verify("$2a$hash", "pass1").Return(nil)
	m.ownership.EXPECT().ColumnForUsername(ctx, "trainer1").Return(7, nil)
	m.ownership.EXPECT().LabelForColumn(ctx, 7).Return("G", store.ErrLabelMissing)

	user, err := svc.Login(ctx, session, models.LoginRequest{Username: "trainer1", Password: "pass1"})

	require.NoError(t, err)
	assert.Equal(t, "G", user.ColumnLabel)
}

func TestAccountService_Login_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(m accountMocks)
		wantErr error
		kind    ErrorKind
	}{
		{
			name: "unknown username",
			setup: func(m accountMocks) {
				m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(models.Credential{}, 0, store.ErrCredentialNotFound)
			},
			wantErr: ErrUserNotFound,
			kind:    KindNotFound,
		},
		{
			name: "wrong password",
			setup: func(m accountMocks) {
				m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil)
				m.hasher.EXPECT().Verify("$2a$hash", "pass1").Return(crypto.ErrMismatchedPassword)
			},
			wantErr: ErrWrongPassword,
			kind:    KindAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAccountSvc(t)
			session := loggingIn(t)
			tt.setup(m)

			_, err := svc.Login(ctx, session, models.LoginRequest{Username: "trainer1", Password: "pass1"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.kind, Classify(err))
			assert.Equal(t, Rejected, session.State())
		})
	}
}

func TestAccountService_Login_StoreErrorKeepsState(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	session := loggingIn(t)

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil)
	m.hasher.EXPECT().Verify("$2a$hash", "pass1").Return(nil)
	m.ownership.EXPECT().ColumnForUsername(ctx, "trainer1").Return(0, store.ErrColumnNotFound)

	_, err := svc.Login(ctx, session, models.LoginRequest{Username: "trainer1", Password: "pass1"})

	assert.ErrorIs(t, err, store.ErrColumnNotFound)
	assert.Equal(t, KindStore, Classify(err))
	assert.Equal(t, Authenticating, session.State())
}

func TestAccountService_Login_RequiresAuthenticating(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	_, err := svc.Login(context.Background(), NewSession(), models.LoginRequest{Username: "trainer1", Password: "pass1"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAccountService_CheckUsername(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByUsername(ctx, "trainer1").Return(storedCred, 2, nil)
	m.credentials.EXPECT().FindByUsername(ctx, "nobody1").Return(models.Credential{}, 0, store.ErrCredentialNotFound)

	assert.NoError(t, svc.CheckUsername(ctx, "trainer1"))
	assert.ErrorIs(t, svc.CheckUsername(ctx, "nobody1"), ErrUserNotFound)
	assert.ErrorIs(t, svc.CheckUsername(ctx, "x"), validators.ErrInvalidUsername)
}

// ── Password reset ───────────────────────────────────────────────────────────

func TestAccountService_ResetPassword_Success(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(storedCred, 3, nil),
		m.hasher.EXPECT().Hash("newpass").Return("$2a$new", nil),
		m.credentials.EXPECT().UpdatePassword(ctx, 3, "$2a$new").Return(nil),
	)

	require.NoError(t, svc.ResetPassword(ctx, models.ResetRequest{Phone: "5551234567", NewPassword: "newpass"}))
}

func TestAccountService_ResetPassword_UnknownPhone(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByPhone(ctx, "5550000000").Return(models.Credential{}, 0, store.ErrCredentialNotFound)

	err := svc.ResetPassword(ctx, models.ResetRequest{Phone: "5550000000", NewPassword: "newpass"})

	assert.ErrorIs(t, err, ErrPhoneNotFound)
	assert.Equal(t, KindNotFound, Classify(err))
}

func TestAccountService_ResetPassword_InvalidPassword(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	err := svc.ResetPassword(context.Background(), models.ResetRequest{Phone: "5551234567", NewPassword: "abc"})

	assert.ErrorIs(t, err, validators.ErrInvalidPassword)
}

func TestAccountService_CheckPhone(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.credentials.EXPECT().FindByPhone(ctx, "5551234567").Return(storedCred, 2, nil)

	assert.NoError(t, svc.CheckPhone(ctx, "5551234567"))
	assert.ErrorIs(t, svc.CheckPhone(ctx, "555"), validators.ErrInvalidPhone)
}
