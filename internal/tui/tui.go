package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-card-portfolio/internal/logger"
	"github.com/MKhiriev/go-card-portfolio/internal/service"
	"github.com/MKhiriev/go-card-portfolio/models"
)

// TUI runs the interactive screens over the services.
type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	session   *service.Session

	logger *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		session:   service.NewSession(),
		logger:    logger,
	}, nil
}

// LoginFlow shows the main menu until the user logs in. Signup and password
// recovery return to the menu.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AccountService, t.session),
		pageRegister: NewRegisterModel(ctx, t.services.AccountService),
		pageRecovery: NewRecoveryModel(ctx, t.services.AccountService),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}

	switch {
	case result.fatal != nil:
		return models.User{}, result.fatal
	case result.quitByUser || !result.loggedIn:
		return models.User{}, ErrUserQuit
	}

	t.logger.WithSession(result.user.SessionID, result.user.Username).Info().Msg("login flow finished")
	return result.user, nil
}

// MainLoop runs the portfolio menu of user. It reports whether the user
// logged out, as opposed to quitting the program.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newPortfolioModel(ctx, t.services.PortfolioService, t.session, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(portfolioModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.fatal != nil {
		return false, result.fatal
	}
	return result.logout, nil
}
