// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/models"
)

const (
	loginUsername = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. The username is
// checked before the password is asked for. It drives session through
// Authenticating and, on success, produces a [LoginResult] that [RootModel]
// handles to finish the login flow.
type LoginModel struct {
	ctx      context.Context
	accounts service.AccountService
	session  *service.Session

	form stepForm
}

// NewLoginModel creates a [LoginModel] bound to session.
func NewLoginModel(ctx context.Context, accounts service.AccountService, session *service.Session) *LoginModel {
	return &LoginModel{
		ctx:      ctx,
		accounts: accounts,
		session:  session,
		form: newStepForm(
			newFormField("Username", "username", 15, false),
			newFormField("Password", "password", 30, true),
		),
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [fieldCheckedMsg] result of the username lookup.
//   - [LoginResult] with an error: the offending field is asked again.
//   - esc aborts the attempt and returns to the menu.
//   - enter submits the focused field.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fieldCheckedMsg:
		return m.handleChecked(msg)
	case LoginResult:
		return m.handleResult(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.abort()
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	return m, m.form.updateInput(msg)
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	return renderPage("LOG IN", m.form.view("Log in"), "esc: back │ enter: confirm")
}

func (m *LoginModel) submit() (tea.Model, tea.Cmd) {
	if m.form.busy {
		return m, nil
	}

	username := m.form.value(loginUsername)
	if username == "" {
		m.form.reprompt(loginUsername, "username is required")
		return m, nil
	}

	m.form.busy = true
	m.form.errMsg = ""

	if m.form.focus == loginUsername {
		return m, m.cmdCheckUsername(username)
	}
	return m, m.cmdLogin(username, m.form.raw(loginPassword))
}

func (m *LoginModel) handleChecked(msg fieldCheckedMsg) (tea.Model, tea.Cmd) {
	m.form.busy = false

	switch service.Classify(msg.err) {
	case service.KindNone:
		m.form.advance()
		return m, nil
	case service.KindStore:
		return m, fatal(msg.err)
	default:
		m.form.reprompt(loginUsername, humanizeError(msg.err))
		return m, nil
	}
}

func (m *LoginModel) handleResult(msg LoginResult) (tea.Model, tea.Cmd) {
	m.form.busy = false

	switch service.Classify(msg.Err) {
	case service.KindNone:
		return m, nil
	case service.KindStore:
		return m, fatal(msg.Err)
	case service.KindNotFound:
		m.form.reprompt(loginUsername, humanizeError(msg.Err))
	default:
		m.form.reprompt(loginPassword, humanizeError(msg.Err))
	}
	return m, nil
}

// abort returns the session to Anonymous unless it already is.
func (m *LoginModel) abort() {
	switch m.session.State() {
	case service.Authenticating, service.Rejected:
		_ = m.session.Fire(service.Abort)
	}
	m.form.reset()
}

func (m *LoginModel) cmdCheckUsername(username string) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts

	return func() tea.Msg {
		return fieldCheckedMsg{field: loginUsername, err: accounts.CheckUsername(ctx, username)}
	}
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx, accounts, session := m.ctx, m.accounts, m.session

	return func() tea.Msg {
		if err := beginAttempt(session); err != nil {
			return LoginResult{Err: err}
		}

		user, err := accounts.Login(ctx, session, models.LoginRequest{
			Username: username,
			Password: password,
		})
		return LoginResult{User: user, Err: err}
	}
}

// beginAttempt moves session to Authenticating. A session left there by an
// attempt rejected before the credential check is reused as is.
func beginAttempt(session *service.Session) error {
	switch session.State() {
	case service.Anonymous:
		return session.Fire(service.BeginLogin)
	case service.Rejected:
		return session.Fire(service.Retry)
	}
	return nil
}
