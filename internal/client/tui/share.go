package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

// ShareDialog shows the public link of the collection.
type ShareDialog struct {
	open    bool
	url     string
	status  string
	copyErr bool
}

func (s ShareDialog) Open() bool { return s.open }

func (s ShareDialog) URL() string { return s.url }

func (s *ShareDialog) Show(url string) {
	s.open, s.url, s.status, s.copyErr = true, url, "", false
}

func (s *ShareDialog) Hide() {
	s.open, s.status, s.copyErr = false, "", false
}

func (s ShareDialog) copy() tea.Cmd {
	url := s.url
	return func() tea.Msg {
		return copiedMsg{err: clipboardWriteAll(url)}
	}
}

func (s ShareDialog) Update(msg tea.Msg) (ShareDialog, tea.Cmd) {
	if !s.open {
		return s, nil
	}
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			s.status, s.copyErr = "Could not copy: "+msg.err.Error(), true
		} else {
			s.status, s.copyErr = "Link copied to clipboard!", false
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "c", "enter":
			return s, s.copy()
		case "esc", "q":
			s.Hide()
		}
	}
	return s, nil
}

func (s ShareDialog) View() string {
	if !s.open {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render("Share Your Brain"))
	b.WriteString("\n\n")
	b.WriteString("Share this link with others to give them access to your brain:")
	b.WriteString("\n\n")
	b.WriteString(styles.Label.Render(s.url))
	b.WriteString("\n\n")
	b.WriteString(Button{Text: "Copy", Focused: true}.View())
	if s.status != "" {
		b.WriteString("\n\n")
		if s.copyErr {
			b.WriteString(styles.Error.Render(s.status))
		} else {
			b.WriteString(styles.Success.Render(s.status))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("c copy • esc close"))
	return styles.Dialog.Render(b.String())
}
