package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/brainly/internal/client/content"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/logging"
)

const (
	DefaultUsername = "Guest"

	sidebarWidth     = 22
	sidebarWidthSlim = 5
)

type navItem struct {
	label string
	kind  models.Kind
}

// The nav list only moves a local highlight; it does not filter the
// dashboard.
var navItems = []navItem{
	{"X", models.KindTwitter},
	{"YouTube", models.KindYouTube},
	{"Documents", models.KindDocument},
	{"Links", models.KindLink},
	{"Tags", models.KindTag},
}

type Sidebar struct {
	username   string
	collapsed  bool
	active     int
	focused    bool
	breakpoint int

	me       func(ctx context.Context) (*models.User, error)
	signedIn bool
	logger   logging.Logger
}

func NewSidebar(me func(ctx context.Context) (*models.User, error), signedIn bool, breakpoint int, l logging.Logger) Sidebar {
	return Sidebar{
		username:   DefaultUsername,
		breakpoint: breakpoint,
		me:         me,
		signedIn:   signedIn,
		logger:     l,
	}
}

func (s Sidebar) Collapsed() bool { return s.collapsed }

func (s Sidebar) Username() string { return s.username }

func (s Sidebar) Active() int { return s.active }

func (s *Sidebar) SetFocused(v bool) { s.focused = v }

func (s Sidebar) Width() int {
	if s.collapsed {
		return sidebarWidthSlim
	}
	return sidebarWidth
}

// Init fetches the display name when a session exists.
func (s Sidebar) Init() tea.Cmd {
	if !s.signedIn || s.me == nil {
		return nil
	}
	me := s.me
	return func() tea.Msg {
		u, err := me(context.Background())
		return userLoadedMsg{user: u, err: err}
	}
}

// Seed shows name until /me answers. An empty name keeps the default.
func (s *Sidebar) Seed(name string) {
	if name != "" {
		s.username = name
	}
}

// Toggle flips the collapsed state on explicit user action.
func (s *Sidebar) Toggle() tea.Cmd {
	s.collapsed = !s.collapsed
	return emit(SidebarCollapsedMsg{Collapsed: s.collapsed})
}

func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case userLoadedMsg:
		if msg.err != nil {
			if s.logger != nil {
				s.logger.Warn(context.Background(), "fetch user failed", "error", msg.err)
			}
			return s, nil
		}
		if msg.user != nil && msg.user.Username != "" {
			s.username = msg.user.Username
		}

	case tea.WindowSizeMsg:
		// Narrow terminals force collapse; widening never auto-expands.
		if msg.Width < s.breakpoint && !s.collapsed {
			s.collapsed = true
			return s, emit(SidebarCollapsedMsg{Collapsed: true})
		}

	case tea.KeyMsg:
		if !s.focused {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.active = (s.active - 1 + len(navItems)) % len(navItems)
		case "down", "j":
			s.active = (s.active + 1) % len(navItems)
		}
	}
	return s, nil
}

func (s Sidebar) View(height int) string {
	var b strings.Builder

	initial := "G"
	if s.username != "" {
		initial = strings.ToUpper(string([]rune(s.username)[0]))
	}
	avatar := lipgloss.NewStyle().Foreground(White).Background(Purple).Padding(0, 1).Render(initial)

	if s.collapsed {
		b.WriteString(styles.Title.Render("🧠"))
		b.WriteString("\n\n")
		for i, it := range navItems {
			icon := content.Describe(it.kind).Icon
			if i == s.active {
				b.WriteString(styles.ActiveNav.Render(icon))
			} else {
				b.WriteString(styles.NavItem.Render(icon))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(avatar)
		return styles.Sidebar.Width(sidebarWidthSlim).Height(height).Render(b.String())
	}

	b.WriteString(styles.Title.Render("🧠 Brainly"))
	b.WriteString("\n\n")
	for i, it := range navItems {
		line := content.Describe(it.kind).Icon + " " + it.label
		switch {
		case i == s.active && s.focused:
			b.WriteString(styles.ActiveNav.Render("› " + line))
		case i == s.active:
			b.WriteString(styles.ActiveNav.Render("  " + line))
		default:
			b.WriteString(styles.NavItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(avatar + " " + truncate(s.username, sidebarWidth-6))
	return styles.Sidebar.Width(sidebarWidth).Height(height).Render(b.String())
}
