package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Input is a labelled single-line text field.
type Input struct {
	Label string
	field textinput.Model
}

func NewInput(label, placeholder string, secret bool) Input {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 512
	ti.Cursor.SetMode(cursor.CursorStatic)
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return Input{Label: label, field: ti}
}

func (i *Input) Focus() tea.Cmd { return i.field.Focus() }

func (i *Input) Blur() { i.field.Blur() }

func (i Input) Focused() bool { return i.field.Focused() }

func (i Input) Value() string { return i.field.Value() }

func (i *Input) SetValue(s string) { i.field.SetValue(s) }

func (i *Input) SetPlaceholder(s string) { i.field.Placeholder = s }

func (i *Input) SetWidth(w int) { i.field.Width = w }

func (i *Input) Reset() { i.field.Reset() }

func (i Input) Update(msg tea.Msg) (Input, tea.Cmd) {
	var cmd tea.Cmd
	i.field, cmd = i.field.Update(msg)
	return i, cmd
}

func (i Input) View() string {
	label := styles.Label.Render(i.Label)
	if i.Label == "" {
		return i.field.View()
	}
	return label + "\n" + i.field.View()
}
