package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_RootRoutesBySession(t *testing.T) {
	tests := []struct {
		name     string
		signedIn bool
		want     string
	}{
		{"no token goes to signup", false, PathSignUp},
		{"token goes to dashboard", true, PathDashboard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &fakeAuth{signedIn: tt.signedIn, user: &models.User{Username: "a"}}
			a := NewApp(newDeps(auth, &fakeContent{}))
			start(t, a)
			assert.Equal(t, tt.want, a.Path())
		})
	}
}

func TestApp_DashboardRequiresSession(t *testing.T) {
	a := NewApp(newDeps(&fakeAuth{}, &fakeContent{}))
	pump(t, a, NavigateMsg{Path: PathDashboard})
	assert.Equal(t, PathSignIn, a.Path())

	pump(t, a, NavigateMsg{Path: "/nowhere"})
	assert.Equal(t, PathSignUp, a.Path())
}

func TestApp_SignInFlowLandsOnDashboard(t *testing.T) {
	auth := &fakeAuth{user: &models.User{Username: "alice"}}
	c := &fakeContent{items: []models.Item{{ID: "1", Title: "saved", Type: models.KindLink, Link: "https://go.dev"}}}
	a := NewApp(newDeps(auth, c))
	pump(t, a, tea.WindowSizeMsg{Width: 140, Height: 40}, NavigateMsg{Path: PathSignIn})
	require.Equal(t, PathSignIn, a.Path())

	pump(t, a, key("alice"), key("tab"), key("pw"), key("enter"))
	require.Equal(t, PathDashboard, a.Path())

	d, ok := a.Page().(*Dashboard)
	require.True(t, ok)
	assert.Equal(t, []string{"saved"}, titlesOf(d.Items()))
	assert.Contains(t, a.View(), "saved")
}

func TestApp_CtrlCQuits(t *testing.T) {
	a := NewApp(newDeps(&fakeAuth{}, &fakeContent{}))
	_, cmd := a.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
