package tui

import (
	"github.com/MKhiriev/go-card-portfolio/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageRecovery = "recovery"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// NoticeMsg carries a success message for the main menu.
type NoticeMsg struct {
	Text string
}

// LoginResult ends the login flow when Err is nil.
type LoginResult struct {
	User models.User
	Err  error
}

// FatalMsg aborts the running program with Err.
type FatalMsg struct {
	Err error
}

type fieldCheckedMsg struct {
	field int
	err   error
}

type submitDoneMsg struct {
	err error
}

type portfolioLoadedMsg struct {
	title      string
	cards      []models.Card
	completion models.Completion
	err        error
}

type cardChangedMsg struct {
	added bool
	card  models.Card
	err   error
}

type appraisedMsg struct {
	appraisal models.Appraisal
	err       error
}

type portfolioDeletedMsg struct {
	err error
}

type copiedMsg struct {
	count int
	err   error
}

type clearStatusMsg struct{}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func navigateWithNotice(page, text string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: NoticeMsg{Text: text}} }
}

func fatal(err error) tea.Cmd {
	return func() tea.Msg { return FatalMsg{Err: err} }
}
