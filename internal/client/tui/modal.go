package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/brainly/internal/client/content"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/client/services"
)

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpening
	ModalOpen
	ModalSubmitting
	ModalSuccess
	ModalClosing
)

func (s ModalState) String() string {
	return [...]string{"closed", "opening", "open", "submitting", "success", "closing"}[s]
}

const (
	focusKind = iota
	focusTitle
	focusLink
	focusSubmit
	focusCount
)

// Modal is the create-content dialog.
//
// closed -> opening -> open -> submitting -> success -> closing -> closed.
// A failed submit goes back to open with the error shown.
type Modal struct {
	state ModalState
	kind  models.Kind
	title Input
	link  Input
	focus int
	err   string
	// gen numbers submits so a success tick from an earlier submit is ignored.
	gen int

	create   func(ctx context.Context, c models.NewContent) error
	signedIn func() bool
	delay    time.Duration
}

func NewModal(create func(ctx context.Context, c models.NewContent) error, signedIn func() bool, delay time.Duration) Modal {
	m := Modal{
		kind:     models.KindYouTube,
		title:    NewInput("Title", "Enter content title", false),
		link:     NewInput("Link", "", false),
		create:   create,
		signedIn: signedIn,
		delay:    delay,
	}
	m.syncHint()
	return m
}

func (m Modal) State() ModalState { return m.state }

func (m Modal) Visible() bool { return m.state != ModalClosed }

func (m Modal) Err() string { return m.err }

func (m Modal) Kind() models.Kind { return m.kind }

// Open starts the opening transition; it is a no-op unless closed.
func (m *Modal) Open() tea.Cmd {
	if m.state != ModalClosed {
		return nil
	}
	m.state = ModalOpening
	return emit(modalOpenedMsg{})
}

// Close is refused while a request is in flight.
func (m *Modal) Close() tea.Cmd {
	switch m.state {
	case ModalClosed, ModalClosing, ModalSubmitting:
		return nil
	}
	m.state = ModalClosing
	m.reset()
	return emit(modalClosingDoneMsg{})
}

func (m *Modal) reset() {
	m.err = ""
	m.kind = models.KindYouTube
	m.title.Reset()
	m.link.Reset()
	m.setFocus(focusTitle)
	m.title.Blur()
	m.syncHint()
}

func (m *Modal) setFocus(f int) tea.Cmd {
	m.focus = (f + focusCount) % focusCount
	m.title.Blur()
	m.link.Blur()
	switch m.focus {
	case focusTitle:
		return m.title.Focus()
	case focusLink:
		return m.link.Focus()
	}
	return nil
}

func (m *Modal) syncHint() {
	m.link.SetPlaceholder("Enter " + strings.ToLower(string(m.kind)) + " link")
}

// selectableKinds are the kinds offered as type tabs. A kind without a
// descriptor cannot be drawn and is left out.
func selectableKinds() []content.Descriptor {
	var out []content.Descriptor
	for _, k := range models.Kinds() {
		if d, err := content.MustDescribe(k); err == nil {
			out = append(out, d)
		}
	}
	return out
}

func (m *Modal) cycleKind(step int) {
	var kinds []models.Kind
	for _, d := range selectableKinds() {
		kinds = append(kinds, d.Kind)
	}
	idx := 0
	for i, k := range kinds {
		if k == m.kind {
			idx = i
		}
	}
	m.kind = kinds[(idx+step+len(kinds))%len(kinds)]
	m.syncHint()
}

// Submit validates locally and only then issues the create request.
func (m *Modal) Submit() tea.Cmd {
	if m.state != ModalOpen {
		return nil
	}
	payload := models.NewContent{
		Type:  m.kind,
		Title: strings.TrimSpace(m.title.Value()),
		Link:  strings.TrimSpace(m.link.Value()),
	}
	if payload.Title == "" || payload.Link == "" {
		m.err = "Title and link are required"
		return nil
	}
	if m.signedIn != nil && !m.signedIn() {
		m.err = "You are not signed in"
		return nil
	}

	m.err = ""
	m.state = ModalSubmitting
	m.gen++
	create := m.create
	return func() tea.Msg {
		return createDoneMsg{err: create(context.Background(), payload)}
	}
}

func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	switch msg := msg.(type) {
	case modalOpenedMsg:
		if m.state != ModalOpening {
			return m, nil
		}
		m.state = ModalOpen
		return m, m.setFocus(focusTitle)

	case createDoneMsg:
		if m.state != ModalSubmitting {
			return m, nil
		}
		if msg.err != nil {
			m.state = ModalOpen
			m.err = services.MessageOf(msg.err, "Failed to add content. Please try again.")
			return m, nil
		}
		m.state = ModalSuccess
		gen := m.gen
		return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return successElapsedMsg{gen: gen} })

	case successElapsedMsg:
		if m.state != ModalSuccess || msg.gen != m.gen {
			return m, nil
		}
		m.state = ModalClosing
		m.reset()
		return m, emit(modalClosingDoneMsg{})

	case modalClosingDoneMsg:
		if m.state != ModalClosing {
			return m, nil
		}
		m.state = ModalClosed
		return m, emit(ModalClosedMsg{})

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Modal) handleKey(msg tea.KeyMsg) (Modal, tea.Cmd) {
	if m.state != ModalOpen {
		if msg.String() == "esc" {
			return m, m.Close()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, m.Close()
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)
	case "ctrl+s":
		return m, m.Submit()
	case "enter":
		switch m.focus {
		case focusKind, focusTitle:
			return m, m.setFocus(m.focus + 1)
		default:
			return m, m.Submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusKind:
		switch msg.String() {
		case "left", "h":
			m.cycleKind(-1)
		case "right", "l", " ":
			m.cycleKind(1)
		}
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusLink:
		m.link, cmd = m.link.Update(msg)
	}
	return m, cmd
}

func (m Modal) View() string {
	if m.state == ModalClosed {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Add New Content"))
	b.WriteString("\n\n")

	if m.state == ModalSuccess {
		b.WriteString(styles.Success.Render("✓ Content added successfully!"))
		return styles.Dialog.Render(b.String())
	}

	b.WriteString(styles.Label.Render("Content Type"))
	b.WriteString("\n")
	var tabs []string
	for _, d := range selectableKinds() {
		label := d.Icon + " " + string(d.Kind)
		if d.Kind == m.kind {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(White).Background(d.Badge).Padding(0, 1).Render(label))
			continue
		}
		tabs = append(tabs, styles.Tab.Render(label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.focus == focusKind {
		row = "› " + row
	}
	b.WriteString(row)
	b.WriteString("\n\n")

	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(m.link.View())
	b.WriteString("\n")
	b.WriteString(styles.Help.Render(content.Describe(m.kind).Hint))
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(styles.Error.Render(m.err))
		b.WriteString("\n\n")
	}

	btn := Button{
		Text:    "Add Content",
		Icon:    "+",
		Loading: m.state == ModalSubmitting,
		Focused: m.focus == focusSubmit,
	}
	b.WriteString(btn.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("tab next field • ←/→ type • enter submit • esc close"))

	return styles.Dialog.Render(b.String())
}
