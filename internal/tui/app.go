package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-card-portfolio/models"
)

// RootModel is a TUI router of the login flow:
// 1) keeps active page
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages
// 4) ends the program on a successful login or a fatal error
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	user       models.User
	loggedIn   bool
	fatal      error
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case r.fatal != nil:
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				return r, tea.Quit
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			return r, func() tea.Msg { return msg.Payload }
		}
		return r, r.current.Init()
	case LoginResult:
		if msg.Err == nil {
			r.user = msg.User
			r.loggedIn = true
			return r, tea.Quit
		}
	case FatalMsg:
		r.fatal = msg.Err
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.fatal != nil {
		return renderFatal(r.fatal)
	}
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("CARD PORTFOLIO", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
