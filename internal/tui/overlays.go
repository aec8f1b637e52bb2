package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// renderConfirm draws a yes/no question in a box.
func renderConfirm(question string) string {
	return overlayBoxStyle.Render(question + "\n\n" + helpStyle.Render("y: yes │ n/esc: no"))
}

// renderFatal draws the box shown after an error the session cannot recover
// from. Any of enter and esc closes the program.
func renderFatal(err error) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		errorStyle.Render("Something went wrong"),
		"",
		humanizeError(err),
		"",
		helpStyle.Render("enter / esc: quit"),
	)
	return overlayBoxStyle.BorderForeground(colorError).Render(body)
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "Card Portfolio"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s: %s", row[0], valueOrNA(row[1])))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "v/esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
