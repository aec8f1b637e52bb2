package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
	"github.com/MKhiriev/go-card-portfolio/models"
)

const (
	registerUsername = iota
	registerPassword
	registerPhone
)

var registerFields = []string{
	registerUsername: validators.FieldUsername,
	registerPassword: validators.FieldPassword,
	registerPhone:    validators.FieldPhone,
}

// RegisterModel collects username, password and phone number one field at
// a time and creates the account. The new user is not logged in.
type RegisterModel struct {
	ctx      context.Context
	accounts service.AccountService

	form stepForm
}

func NewRegisterModel(ctx context.Context, accounts service.AccountService) *RegisterModel {
	return &RegisterModel{
		ctx:      ctx,
		accounts: accounts,
		form: newStepForm(
			newFormField("Username", "5-15 letters, digits, _ or -", 15, false),
			newFormField("Password", "5-30 characters, no spaces", 30, true),
			newFormField("Phone", "10-15 digits", 15, false),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fieldCheckedMsg:
		m.form.busy = false
		switch service.Classify(msg.err) {
		case service.KindNone:
			if msg.field == registerPhone {
				m.form.busy = true
				return m, m.cmdSignup(m.request())
			}
			m.form.advance()
			return m, nil
		case service.KindStore:
			return m, fatal(msg.err)
		default:
			m.form.reprompt(msg.field, humanizeError(msg.err))
			return m, nil
		}
	case submitDoneMsg:
		return m.handleSignup(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.form.reset()
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.enter):
			if m.form.busy {
				return m, nil
			}
			m.form.busy = true
			m.form.errMsg = ""
			return m, m.cmdCheckField(m.form.focus, m.request())
		}
	}

	return m, m.form.updateInput(msg)
}

func (m *RegisterModel) View() string {
	return renderPage("CREATE ACCOUNT", m.form.view("Create"), "esc: back │ enter: confirm")
}

func (m *RegisterModel) handleSignup(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.form.busy = false

	switch service.Classify(msg.err) {
	case service.KindNone:
		username := m.form.value(registerUsername)
		m.form.reset()
		return m, navigateWithNotice(pageMenu, fmt.Sprintf("Account %s created. You can log in now.", username))
	case service.KindValidation:
		m.form.reprompt(signupFieldOf(msg.err), humanizeError(msg.err))
		return m, nil
	default:
		return m, fatal(msg.err)
	}
}

func (m *RegisterModel) request() models.SignupRequest {
	return models.SignupRequest{
		Username: m.form.value(registerUsername),
		Password: m.form.raw(registerPassword),
		Phone:    m.form.value(registerPhone),
	}
}

func (m *RegisterModel) cmdCheckField(field int, req models.SignupRequest) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts

	return func() tea.Msg {
		return fieldCheckedMsg{field: field, err: accounts.CheckSignupField(ctx, req, registerFields[field])}
	}
}

func (m *RegisterModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx, accounts := m.ctx, m.accounts

	return func() tea.Msg {
		return submitDoneMsg{err: accounts.Signup(ctx, req)}
	}
}

// signupFieldOf names the form field a signup validation error is about.
// Another account may have taken the username or phone number between the
// field check and the signup.
func signupFieldOf(err error) int {
	switch {
	case errors.Is(err, validators.ErrInvalidUsername), errors.Is(err, service.ErrUsernameTaken):
		return registerUsername
	case errors.Is(err, validators.ErrInvalidPassword):
		return registerPassword
	default:
		return registerPhone
	}
}
