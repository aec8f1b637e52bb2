package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-card-portfolio/internal/validators"
)

// choiceMenu is a numbered list. An option is chosen either by typing its
// number or by moving the cursor, and confirmed with enter.
type choiceMenu struct {
	items  []string
	idx    int
	input  textinput.Model
	errMsg string
}

func newChoiceMenu(items ...string) choiceMenu {
	input := textinput.New()
	input.Placeholder = fmt.Sprintf("1 - %d", len(items))
	input.CharLimit = 4
	input.Width = 8
	input.Focus()

	return choiceMenu{items: items, input: input}
}

// update returns the 1-based number of the confirmed option, or 0.
func (c choiceMenu) update(msg tea.KeyMsg) (choiceMenu, int, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if c.idx > 0 {
			c.idx--
		}
		c.input.SetValue("")
		return c, 0, nil
	case key.Matches(msg, keys.down):
		if c.idx < len(c.items)-1 {
			c.idx++
		}
		c.input.SetValue("")
		return c, 0, nil
	case key.Matches(msg, keys.enter):
		typed := strings.TrimSpace(c.input.Value())
		if typed == "" {
			c.errMsg = ""
			return c, c.idx + 1, nil
		}

		n, err := validators.ParseChoice(typed, 1, len(c.items))
		c.input.SetValue("")
		if err != nil {
			c.errMsg = humanizeError(err)
			return c, 0, nil
		}
		c.idx = n - 1
		c.errMsg = ""
		return c, n, nil
	}

	if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
		return c, 0, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, 0, cmd
}

func (c choiceMenu) view() string {
	var b strings.Builder

	numWidth := lipgloss.Width(fmt.Sprintf("%d", len(c.items))) + 2
	actionWidth := lipgloss.Width("Action")
	for _, item := range c.items {
		if w := lipgloss.Width(item); w > actionWidth {
			actionWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", numWidth, "#", actionWidth, "Action"))
	b.WriteString(strings.Repeat("─", numWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionWidth))
	b.WriteString("\n")

	for i, item := range c.items {
		if i == c.idx {
			b.WriteString(cursorStyle.Render(fmt.Sprintf("%-*s │ %-*s", numWidth, fmt.Sprintf("> %d", i+1), actionWidth, item)))
		} else {
			b.WriteString(fmt.Sprintf("%-*s │ %-*s", numWidth, fmt.Sprintf("  %d", i+1), actionWidth, item))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nChoice: ")
	b.WriteString(c.input.View())
	b.WriteString("\n")

	if c.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(c.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(runes) > 0
}

const (
	mainLogin = iota + 1
	mainCreate
	mainRecover
)

// MenuModel is the main menu shown before login.
type MenuModel struct {
	menu   choiceMenu
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		menu: newChoiceMenu("Log in", "Create an account", "Recover password"),
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if notice, ok := msg.(NoticeMsg); ok {
		m.status = notice.Text
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var (
		chosen int
		cmd    tea.Cmd
	)
	m.menu, chosen, cmd = m.menu.update(keyMsg)

	switch chosen {
	case mainLogin:
		m.status = ""
		return m, navigate(pageLogin)
	case mainCreate:
		m.status = ""
		return m, navigate(pageRegister)
	case mainRecover:
		m.status = ""
		return m, navigate(pageRecovery)
	}
	return m, cmd
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Welcome to your Base Set card portfolio.\n\n")
	b.WriteString(m.menu.view())
	writeStatus(&b, m.status, "")

	return renderPage("MAIN MENU", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: version")
}
