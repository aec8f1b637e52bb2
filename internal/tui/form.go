package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField struct {
	label string
	input textinput.Model
}

func newFormField(label, placeholder string, charLimit int, secret bool) formField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = charLimit
	input.Width = 40
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	return formField{label: label, input: input}
}

// stepForm asks for its fields one at a time. A field is left only once its
// value was accepted, so a rejected value reprompts the same field.
type stepForm struct {
	fields []formField
	focus  int
	busy   bool
	errMsg string
}

func newStepForm(fields ...formField) stepForm {
	f := stepForm{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *stepForm) value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// raw returns the untrimmed value, for passwords.
func (f *stepForm) raw(i int) string {
	return f.fields[i].input.Value()
}

func (f *stepForm) last() bool {
	return f.focus == len(f.fields)-1
}

func (f *stepForm) focusField(i int) {
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[f.focus].input.Focus()
}

func (f *stepForm) advance() {
	if !f.last() {
		f.focusField(f.focus + 1)
	}
}

// reprompt clears field i, focuses it and shows reason.
func (f *stepForm) reprompt(i int, reason string) {
	f.busy = false
	f.errMsg = reason
	f.fields[i].input.SetValue("")
	f.focusField(i)
}

func (f *stepForm) reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
	}
	f.busy = false
	f.errMsg = ""
	f.focusField(0)
}

func (f *stepForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *stepForm) view(action string) string {
	var b strings.Builder

	labelWidth := lipgloss.Width("Field")
	for _, field := range f.fields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ Value\n", labelWidth, "Field"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")

	for i, field := range f.fields {
		if i > f.focus {
			break
		}
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, field.label))
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}

	if f.busy {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	writeStatus(&b, "", f.errMsg)
	return strings.TrimRight(b.String(), "\n")
}
