// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/internal/validators"
	"github.com/MKhiriev/go-card-portfolio/models"
)

const (
	actionAdd = iota + 1
	actionRemove
	actionOwned
	actionNeeded
	actionAppraise
	actionDelete
	actionLogout
)

type portfolioScreen int

const (
	screenMenu portfolioScreen = iota
	screenCardInput
	screenList
	screenConfirmDelete
)

var (
	statusTTL = 3 * time.Second

	clipboardDefault = clipboard.WriteAll
	writeClipboard   = clipboardDefault
)

// portfolioModel is the main loop of an authenticated session.
type portfolioModel struct {
	ctx       context.Context
	portfolio service.PortfolioService
	session   *service.Session
	user      models.User

	screen portfolioScreen
	menu   choiceMenu

	adding    bool
	cardInput textinput.Model

	listTitle  string
	list       []models.Card
	completion models.Completion
	needed     bool

	busy   bool
	status string
	errMsg string

	fatal  error
	logout bool
}

func newPortfolioModel(ctx context.Context, portfolio service.PortfolioService, session *service.Session, user models.User) portfolioModel {
	cardInput := textinput.New()
	cardInput.Placeholder = "card number, e.g. 4 or BS4"
	cardInput.CharLimit = 6
	cardInput.Width = 30

	return portfolioModel{
		ctx:       ctx,
		portfolio: portfolio,
		session:   session,
		user:      user,
		menu: newChoiceMenu(
			"Add a card",
			"Remove a card",
			"View owned cards",
			"View needed cards",
			"Appraise collection",
			"Delete portfolio",
			"Log out",
		),
		cardInput: cardInput,
	}
}

func (m portfolioModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m portfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FatalMsg:
		m.fatal = msg.Err
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case cardChangedMsg:
		return m.handleCardChanged(msg)
	case portfolioLoadedMsg:
		m.busy = false
		if msg.err != nil {
			return m, fatal(msg.err)
		}
		m.screen = screenList
		m.listTitle = msg.title
		m.list = msg.cards
		m.completion = msg.completion
		return m, nil
	case appraisedMsg:
		m.busy = false
		if msg.err != nil {
			return m, fatal(msg.err)
		}
		return m.withStatus(appraisalMessage(msg.appraisal))
	case portfolioDeletedMsg:
		m.busy = false
		if msg.err != nil {
			return m, fatal(msg.err)
		}
		m.screen = screenMenu
		return m.withStatus("Your portfolio was deleted.")
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		return m.withStatus(fmt.Sprintf("Copied %d cards to the clipboard.", msg.count))
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}
	if m.fatal != nil {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	switch m.screen {
	case screenCardInput:
		return m.updateCardInput(keyMsg)
	case screenList:
		return m.updateList(keyMsg)
	case screenConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	default:
		return m.updateMenu(keyMsg)
	}
}

func (m portfolioModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		chosen int
		cmd    tea.Cmd
	)
	m.menu, chosen, cmd = m.menu.update(msg)
	if chosen != 0 {
		m.errMsg = ""
	}

	switch chosen {
	case actionAdd, actionRemove:
		m.adding = chosen == actionAdd
		m.screen = screenCardInput
		m.cardInput.SetValue("")
		m.cardInput.Focus()
		return m, textinput.Blink
	case actionOwned:
		m.busy = true
		m.needed = false
		return m, m.cmdLoad(false)
	case actionNeeded:
		m.busy = true
		m.needed = true
		return m, m.cmdLoad(true)
	case actionAppraise:
		m.busy = true
		return m, m.cmdAppraise()
	case actionDelete:
		m.screen = screenConfirmDelete
		return m, nil
	case actionLogout:
		_ = m.session.Fire(service.Logout)
		m.logout = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m portfolioModel) updateCardInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenMenu
		m.errMsg = ""
		m.cardInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		number, err := validators.ParseCardNumber(m.cardInput.Value())
		if err != nil {
			m.errMsg = humanizeError(err)
			m.cardInput.SetValue("")
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		return m, m.cmdChangeCard(m.adding, number)
	}

	var cmd tea.Cmd
	m.cardInput, cmd = m.cardInput.Update(msg)
	return m, cmd
}

func (m portfolioModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
		m.screen = screenMenu
		return m, nil
	case m.needed && key.Matches(msg, keys.copy):
		cards := m.list
		return m, func() tea.Msg {
			return copiedMsg{count: len(cards), err: writeClipboard(cardList(cards))}
		}
	}
	return m, nil
}

func (m portfolioModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.busy = true
		return m, m.cmdDelete()
	case key.Matches(msg, keys.no):
		m.screen = screenMenu
		return m, nil
	}
	return m, nil
}

func (m portfolioModel) handleCardChanged(msg cardChangedMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.cardInput.SetValue("")

	switch service.Classify(msg.err) {
	case service.KindNone:
		m.screen = screenMenu
		m.cardInput.Blur()
		verb := "Removed"
		if msg.added {
			verb = "Added"
		}
		return m.withStatus(fmt.Sprintf("%s %s.", verb, msg.card.Label()))
	case service.KindConflict:
		m.errMsg = fmt.Sprintf("%s: %s", msg.card.Label(), humanizeError(msg.err))
		return m, nil
	case service.KindValidation:
		m.errMsg = humanizeError(msg.err)
		return m, nil
	default:
		return m, fatal(msg.err)
	}
}

func (m portfolioModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.errMsg = ""
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m portfolioModel) View() string {
	if m.fatal != nil {
		return renderFatal(m.fatal)
	}

	var b strings.Builder
	hotKeys := "enter: select │ ↑/↓: navigate"
	title := "PORTFOLIO OF " + strings.ToUpper(m.user.Username)

	switch m.screen {
	case screenCardInput:
		verb := "remove"
		if m.adding {
			verb = "add"
		}
		b.WriteString(fmt.Sprintf("Which card do you want to %s? (1 - %d)\n\n", verb, models.SetSize))
		b.WriteString("Card: [")
		b.WriteString(m.cardInput.View())
		b.WriteString("]\n")
		hotKeys = "esc: back │ enter: confirm"
	case screenList:
		b.WriteString(m.listTitle)
		b.WriteString("\n\n")
		if grid := renderCardGrid(m.list); grid != "" {
			b.WriteString(grid)
		} else {
			b.WriteString("(none)")
		}
		b.WriteString("\n\n")
		b.WriteString(service.CompletionMessage(m.completion))
		b.WriteString("\n")
		hotKeys = "esc: back"
		if m.needed && len(m.list) > 0 {
			hotKeys = "esc: back │ c: copy list"
		}
	case screenConfirmDelete:
		b.WriteString(renderConfirm("Delete your portfolio? Every card will be marked as not owned."))
		b.WriteString("\n")
		hotKeys = "y: delete │ n: keep"
	default:
		b.WriteString(m.menu.view())
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString("\n[working...]\n")
	}
	writeStatus(&b, m.status, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m portfolioModel) cmdChangeCard(add bool, number int) tea.Cmd {
	ctx, portfolio, user := m.ctx, m.portfolio, m.user

	return func() tea.Msg {
		var (
			card models.Card
			err  error
		)
		if add {
			card, err = portfolio.Add(ctx, user, number)
		} else {
			card, err = portfolio.Remove(ctx, user, number)
		}
		return cardChangedMsg{added: add, card: card, err: err}
	}
}

func (m portfolioModel) cmdLoad(needed bool) tea.Cmd {
	ctx, portfolio, user := m.ctx, m.portfolio, m.user

	return func() tea.Msg {
		if needed {
			cards, completion, err := portfolio.Needed(ctx, user)
			return portfolioLoadedMsg{title: fmt.Sprintf("Cards you still need (%d):", len(cards)), cards: cards, completion: completion, err: err}
		}
		cards, completion, err := portfolio.Owned(ctx, user)
		return portfolioLoadedMsg{title: fmt.Sprintf("Cards you own (%d):", len(cards)), cards: cards, completion: completion, err: err}
	}
}

func (m portfolioModel) cmdAppraise() tea.Cmd {
	ctx, portfolio, user := m.ctx, m.portfolio, m.user

	return func() tea.Msg {
		appraisal, err := portfolio.Appraise(ctx, user)
		return appraisedMsg{appraisal: appraisal, err: err}
	}
}

func (m portfolioModel) cmdDelete() tea.Cmd {
	ctx, portfolio, user := m.ctx, m.portfolio, m.user

	return func() tea.Msg {
		return portfolioDeletedMsg{err: portfolio.Delete(ctx, user)}
	}
}

func appraisalMessage(a models.Appraisal) string {
	if len(a.Cards) == 0 {
		return "You do not own any cards yet."
	}
	return fmt.Sprintf("Your %d cards are worth %s.", len(a.Cards), service.FormatAppraisal(a))
}
