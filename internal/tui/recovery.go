package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
	"github.com/MKhiriev/go-card-portfolio/models"
)

const (
	recoveryPhone = iota
	recoveryPassword
)

// RecoveryModel resets the password of the account registered with a phone
// number.
type RecoveryModel struct {
	ctx      context.Context
	accounts service.AccountService

	form stepForm
}

func NewRecoveryModel(ctx context.Context, accounts service.AccountService) *RecoveryModel {
	return &RecoveryModel{
		ctx:      ctx,
		accounts: accounts,
		form: newStepForm(
			newFormField("Phone", "registered phone number", 15, false),
			newFormField("New password", "5-30 characters, no spaces", 30, true),
		),
	}
}

func (m *RecoveryModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RecoveryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fieldCheckedMsg:
		m.form.busy = false
		switch service.Classify(msg.err) {
		case service.KindNone:
			m.form.advance()
			return m, nil
		case service.KindStore:
			return m, fatal(msg.err)
		default:
			m.form.reprompt(recoveryPhone, humanizeError(msg.err))
			return m, nil
		}
	case submitDoneMsg:
		m.form.busy = false
		switch service.Classify(msg.err) {
		case service.KindNone:
			m.form.reset()
			return m, navigateWithNotice(pageMenu, "Password updated. You can log in now.")
		case service.KindStore:
			return m, fatal(msg.err)
		default:
			field := recoveryPassword
			if errors.Is(msg.err, validators.ErrInvalidPhone) || errors.Is(msg.err, service.ErrPhoneNotFound) {
				field = recoveryPhone
			}
			m.form.reprompt(field, humanizeError(msg.err))
			return m, nil
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.form.reset()
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	return m, m.form.updateInput(msg)
}

func (m *RecoveryModel) View() string {
	return renderPage("RECOVER PASSWORD", m.form.view("Reset"), "esc: back │ enter: confirm")
}

func (m *RecoveryModel) submit() (tea.Model, tea.Cmd) {
	if m.form.busy {
		return m, nil
	}
	m.form.busy = true
	m.form.errMsg = ""

	ctx, accounts := m.ctx, m.accounts
	phone := m.form.value(recoveryPhone)

	if m.form.focus == recoveryPhone {
		return m, func() tea.Msg {
			return fieldCheckedMsg{field: recoveryPhone, err: accounts.CheckPhone(ctx, phone)}
		}
	}

	req := models.ResetRequest{Phone: phone, NewPassword: m.form.raw(recoveryPassword)}
	return m, func() tea.Msg {
		return submitDoneMsg{err: accounts.ResetPassword(ctx, req)}
	}
}
