package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-card-portfolio/internal/catalog"
	"github.com/MKhiriev/go-card-portfolio/internal/config"
	"github.com/MKhiriev/go-card-portfolio/internal/crypto"
	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/internal/sheet"
	"github.com/MKhiriev/go-card-portfolio/internal/store"
	"github.com/MKhiriev/go-card-portfolio/models"
)

func init() {
	statusTTL = time.Millisecond
}

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, sheet.NewMemory(),
		config.Storage{
			Worksheets: config.Worksheets{Credentials: "login", Ownership: "portfolio"},
			Bootstrap:  true,
		},
		config.Allocation{Mode: config.AllocationSingleWriter, MaxAttempts: 1},
		logger.Nop())
	require.NoError(t, err)

	cards, err := catalog.BaseSet()
	require.NoError(t, err)

	app := config.App{PasswordHasher: config.HasherBcrypt, BcryptCost: bcrypt.MinCost, Currency: "USD"}
	hasher, err := crypto.NewPasswordHasher(app)
	require.NoError(t, err)

	return service.NewServices(storages, cards, hasher, app, logger.Nop())
}

func signup(t *testing.T, svc *service.Services, username, password, phone string) {
	t.Helper()
	require.NoError(t, svc.AccountService.Signup(context.Background(), models.SignupRequest{
		Username: username, Password: password, Phone: phone,
	}))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

// typeText feeds s to m one rune at a time.
func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

// press sends msg and then delivers the messages of the returned command
// back to the model, skipping timers and cursor blinks.
func press(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()

	m, cmd := m.Update(msg)
	for cmd != nil {
		next := cmd()
		switch next.(type) {
		case fieldCheckedMsg, submitDoneMsg, LoginResult, FatalMsg,
			cardChangedMsg, portfolioLoadedMsg, appraisedMsg, portfolioDeletedMsg, copiedMsg:
			m, cmd = m.Update(next)
		default:
			return m
		}
	}
	return m
}

func loginRequest(username, password string) models.LoginRequest {
	return models.LoginRequest{Username: username, Password: password}
}
