package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/brainly/internal/client/models"
)

// Routes.
const (
	PathRoot      = "/"
	PathSignUp    = "/signup"
	PathSignIn    = "/signin"
	PathDashboard = "/dashboard"
)

// NavigateMsg asks the App to switch pages.
type NavigateMsg struct{ Path string }

func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// DeleteIntentMsg is emitted by a Card once the user confirmed deletion.
type DeleteIntentMsg struct{ ID string }

// ModalClosedMsg is emitted when the create dialog reaches closed.
type ModalClosedMsg struct{}

// SidebarCollapsedMsg reports every collapse state change.
type SidebarCollapsedMsg struct{ Collapsed bool }

type contentLoadedMsg struct {
	seq   int
	items []models.Item
	err   error
}

type deleteDoneMsg struct {
	id  string
	err error
}

type shareDoneMsg struct {
	url string
	err error
}

type tweetLoadedMsg struct {
	id    string
	tweet *models.Tweet
	err   error
}

type userLoadedMsg struct {
	user *models.User
	err  error
}

type createDoneMsg struct{ err error }

type authDoneMsg struct{ err error }

type copiedMsg struct{ err error }

type successElapsedMsg struct{ gen int }

type modalOpenedMsg struct{}

type modalClosingDoneMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
