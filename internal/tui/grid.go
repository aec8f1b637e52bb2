package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-card-portfolio/models"
)

const gridColumns = 3

// renderCardGrid lays cards out row by row in gridColumns columns, each as
// wide as the longest label.
func renderCardGrid(cards []models.Card) string {
	if len(cards) == 0 {
		return ""
	}

	labels := make([]string, len(cards))
	width := 0
	for i, c := range cards {
		labels[i] = c.Label()
		if w := lipgloss.Width(labels[i]); w > width {
			width = w
		}
	}

	var b strings.Builder
	for i, label := range labels {
		last := i%gridColumns == gridColumns-1 || i == len(labels)-1
		if last {
			b.WriteString(label)
			b.WriteString("\n")
			continue
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(label)+2))
	}

	return strings.TrimRight(b.String(), "\n")
}

// cardList renders one label per line for the clipboard.
func cardList(cards []models.Card) string {
	labels := make([]string, len(cards))
	for i, c := range cards {
		labels[i] = c.Label()
	}
	return strings.Join(labels, "\n")
}
