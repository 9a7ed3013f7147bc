package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App routes between the pages.
type App struct {
	deps Deps
	path string
	page tea.Model

	width, height int
}

func NewApp(deps Deps) *App {
	return &App{deps: deps}
}

func (a *App) Path() string { return a.path }

func (a *App) Page() tea.Model { return a.page }

func (a *App) Init() tea.Cmd {
	return Navigate(PathRoot)
}

// resolve maps a requested path to the page actually shown. "/" and
// "/dashboard" depend on whether a session token is stored.
func (a *App) resolve(path string) string {
	signedIn := a.deps.signedIn()
	switch path {
	case PathRoot:
		if signedIn {
			return PathDashboard
		}
		return PathSignUp
	case PathDashboard:
		if !signedIn {
			return PathSignIn
		}
		return PathDashboard
	case PathSignUp, PathSignIn:
		return path
	}
	return a.resolve(PathRoot)
}

func (a *App) build(path string) tea.Model {
	switch path {
	case PathDashboard:
		return NewDashboard(a.deps)
	case PathSignIn:
		return NewAuthForm(ModeSignIn, a.deps.Auth)
	default:
		return NewAuthForm(ModeSignUp, a.deps.Auth)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case NavigateMsg:
		a.path = a.resolve(msg.Path)
		a.page = a.build(a.path)
		cmds := []tea.Cmd{a.page.Init()}
		if a.width > 0 {
			var cmd tea.Cmd
			a.page, cmd = a.page.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}

	if a.page == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.page == nil {
		return ""
	}
	v := a.page.View()
	if _, ok := a.page.(*AuthForm); ok && a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, v)
	}
	return v
}
