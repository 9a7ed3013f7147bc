package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/brainly/internal/client/services"
)

type AuthMode int

const (
	ModeSignUp AuthMode = iota
	ModeSignIn
)

// AuthForm is the sign-up or sign-in page. It only navigates after the
// server accepted the request.
type AuthForm struct {
	mode       AuthMode
	username   Input
	password   Input
	focus      int
	submitting bool
	err        string

	auth services.AuthService
}

func NewAuthForm(mode AuthMode, auth services.AuthService) *AuthForm {
	f := &AuthForm{
		mode:     mode,
		username: NewInput("Username", "Enter your username", false),
		password: NewInput("Password", "Enter your password", true),
		auth:     auth,
	}
	return f
}

func (f *AuthForm) Mode() AuthMode { return f.mode }

func (f *AuthForm) Err() string { return f.err }

func (f *AuthForm) Submitting() bool { return f.submitting }

func (f *AuthForm) Init() tea.Cmd {
	return f.setFocus(0)
}

func (f *AuthForm) setFocus(i int) tea.Cmd {
	f.focus = (i + 3) % 3
	f.username.Blur()
	f.password.Blur()
	switch f.focus {
	case 0:
		return f.username.Focus()
	case 1:
		return f.password.Focus()
	}
	return nil
}

func (f *AuthForm) submit() tea.Cmd {
	if f.submitting {
		return nil
	}
	username := strings.TrimSpace(f.username.Value())
	password := f.password.Value()
	if username == "" || password == "" {
		f.err = "Username and password are required"
		return nil
	}

	f.err = ""
	f.submitting = true
	auth, mode := f.auth, f.mode
	return func() tea.Msg {
		ctx := context.Background()
		if mode == ModeSignUp {
			return authDoneMsg{err: auth.SignUp(ctx, username, []byte(password))}
		}
		return authDoneMsg{err: auth.SignIn(ctx, username, []byte(password))}
	}
}

func (f *AuthForm) other() string {
	if f.mode == ModeSignUp {
		return PathSignIn
	}
	return PathSignUp
}

func (f *AuthForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		f.submitting = false
		if msg.err != nil {
			fallback := "Sign in failed"
			if f.mode == ModeSignUp {
				fallback = "Sign up failed"
			}
			f.err = services.MessageOf(msg.err, fallback)
			return f, nil
		}
		if f.mode == ModeSignUp {
			return f, Navigate(PathSignIn)
		}
		return f, Navigate(PathDashboard)

	case tea.KeyMsg:
		if f.submitting {
			return f, nil
		}
		switch msg.String() {
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		case "ctrl+n":
			return f, Navigate(f.other())
		case "esc":
			return f, tea.Quit
		case "enter":
			if f.focus == 0 {
				return f, f.setFocus(1)
			}
			return f, f.submit()
		}

		var cmd tea.Cmd
		switch f.focus {
		case 0:
			f.username, cmd = f.username.Update(msg)
		case 1:
			f.password, cmd = f.password.Update(msg)
		}
		return f, cmd
	}
	return f, nil
}

func (f *AuthForm) View() string {
	title, sub, action, link := "Create Account", "Sign up to get started", "Sign Up", "Already have an account? ctrl+n to sign in"
	if f.mode == ModeSignIn {
		title, sub, action, link = "Welcome Back", "Sign in to your account", "Sign In", "Don't have an account? ctrl+n to sign up"
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("🧠 " + title))
	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render(sub))
	b.WriteString("\n\n")
	b.WriteString(f.username.View())
	b.WriteString("\n\n")
	b.WriteString(f.password.View())
	b.WriteString("\n\n")
	if f.err != "" {
		b.WriteString(styles.Error.Render(f.err))
		b.WriteString("\n\n")
	}
	b.WriteString(Button{Text: action, Loading: f.submitting, Focused: f.focus == 2}.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render(link))
	return styles.Dialog.Render(b.String())
}
