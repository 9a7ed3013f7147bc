package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/client/collection"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/client/services"
)

// Dashboard owns the item list. Everything on screen is derived from
// items and view; the list only changes through a full reload.
type Dashboard struct {
	deps Deps

	items []models.Item
	view  collection.View
	cards []Card

	cursor  int
	loading bool
	seq     int
	settled int // seq of the last list response applied
	err     string

	searching bool
	search    Input

	sidebar      Sidebar
	sidebarFocus bool
	modal        Modal
	share        ShareDialog
	spinner      spinner.Model

	width, height int
}

func NewDashboard(deps Deps) *Dashboard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(Purple)

	d := &Dashboard{
		deps:    deps,
		search:  NewInput("", "Search content...", false),
		spinner: sp,
	}
	d.sidebar = NewSidebar(deps.Auth.Me, deps.signedIn(), deps.Breakpoint, deps.logger())
	if deps.signedIn() {
		d.sidebar.Seed(deps.Auth.CachedUsername(context.Background()))
	}
	d.modal = NewModal(deps.Content.Create, deps.signedIn, deps.SuccessDelay)
	return d
}

func (d *Dashboard) Items() []models.Item { return d.items }

func (d *Dashboard) Visible() []models.Item { return d.view.Visible(d.items) }

func (d *Dashboard) ViewState() collection.View { return d.view }

func (d *Dashboard) Loading() bool { return d.loading }

func (d *Dashboard) Err() string { return d.err }

func (d *Dashboard) Modal() Modal { return d.modal }

func (d *Dashboard) Sidebar() Sidebar { return d.sidebar }

func (d *Dashboard) Share() ShareDialog { return d.share }

func (d *Dashboard) Cards() []Card { return d.cards }

// FilterTabs lists the kinds offered as filters: only those present.
func (d *Dashboard) FilterTabs() []models.Kind { return collection.KindsPresent(d.items) }

func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(d.sidebar.Init(), d.refresh(), d.spinner.Tick)
}

// refresh reloads the list. Only the response to the newest request is
// applied; older ones are dropped by sequence number.
func (d *Dashboard) refresh() tea.Cmd {
	d.seq++
	seq := d.seq
	d.loading = true
	list := d.deps.Content.List
	return func() tea.Msg {
		items, err := list(context.Background())
		return contentLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (d *Dashboard) listPending() bool { return d.settled != d.seq }

func (d *Dashboard) deleteItem(id string) tea.Cmd {
	d.loading = true
	del := d.deps.Content.Delete
	return func() tea.Msg {
		return deleteDoneMsg{id: id, err: del(context.Background(), id)}
	}
}

func (d *Dashboard) shareBrain() tea.Cmd {
	d.loading = true
	share := d.deps.Content.Share
	return func() tea.Msg {
		url, err := share(context.Background())
		return shareDoneMsg{url: url, err: err}
	}
}

// syncCards rebuilds the visible cards, keeping per-card state (embed,
// selection) for items that stay visible.
func (d *Dashboard) syncCards() tea.Cmd {
	visible := d.view.Visible(d.items)
	prev := make(map[string]Card, len(d.cards))
	for _, c := range d.cards {
		prev[c.Item().ID] = c
	}

	var cmds []tea.Cmd
	cards := make([]Card, 0, len(visible))
	for _, it := range visible {
		if c, ok := prev[it.ID]; ok {
			cmds = append(cmds, c.SetItem(it))
			cards = append(cards, c)
			continue
		}
		c := NewCard(it, d.deps.Content.Tweet)
		cmds = append(cmds, c.Init())
		cards = append(cards, c)
	}
	d.cards = cards

	if d.cursor >= len(d.cards) {
		d.cursor = len(d.cards) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
	d.selectCursor()
	return tea.Batch(cmds...)
}

func (d *Dashboard) selectCursor() {
	for i := range d.cards {
		d.cards[i].SetSelected(i == d.cursor && !d.sidebarFocus)
	}
}

func (d *Dashboard) setFilter(k models.Kind) tea.Cmd {
	d.view.Filter = k
	return d.syncCards()
}

func (d *Dashboard) cycleFilter(step int) tea.Cmd {
	opts := append([]models.Kind{""}, d.FilterTabs()...)
	idx := 0
	for i, k := range opts {
		if k == d.view.Filter {
			idx = i
		}
	}
	return d.setFilter(opts[(idx+step+len(opts))%len(opts)])
}

func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		var cmd tea.Cmd
		d.sidebar, cmd = d.sidebar.Update(msg)
		return d, cmd

	case contentLoadedMsg:
		if msg.seq != d.seq {
			return d, nil
		}
		d.settled = msg.seq
		d.loading = false
		if msg.err != nil {
			d.deps.logger().Error(context.Background(), "load content failed", "error", msg.err)
			d.err = services.MessageOf(msg.err, "Failed to load content")
			if errors.Is(msg.err, client.ErrUnauthenticated) {
				return d, Navigate(PathSignIn)
			}
			return d, nil
		}
		d.err = ""
		d.items = msg.items
		if d.view.Filter != "" && !containsKind(d.FilterTabs(), d.view.Filter) {
			d.view.Filter = ""
		}
		return d, d.syncCards()

	case DeleteIntentMsg:
		return d, d.deleteItem(msg.ID)

	case deleteDoneMsg:
		d.loading = d.listPending()
		if msg.err != nil {
			d.deps.logger().Error(context.Background(), "delete failed", "id", msg.id, "error", msg.err)
			d.err = services.MessageOf(msg.err, "Failed to delete content")
			return d, nil
		}
		return d, d.refresh()

	case shareDoneMsg:
		d.loading = d.listPending()
		if msg.err != nil {
			d.deps.logger().Error(context.Background(), "share failed", "error", msg.err)
			return d, nil
		}
		d.share.Show(msg.url)
		return d, nil

	case ModalClosedMsg:
		return d, d.refresh()

	case modalOpenedMsg, createDoneMsg, successElapsedMsg, modalClosingDoneMsg:
		var cmd tea.Cmd
		d.modal, cmd = d.modal.Update(msg)
		return d, cmd

	case copiedMsg:
		var cmd tea.Cmd
		d.share, cmd = d.share.Update(msg)
		return d, cmd

	case tweetLoadedMsg:
		for i := range d.cards {
			d.cards[i], _ = d.cards[i].Update(msg)
		}
		return d, nil

	case userLoadedMsg:
		var cmd tea.Cmd
		d.sidebar, cmd = d.sidebar.Update(msg)
		return d, cmd

	case SidebarCollapsedMsg:
		return d, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case d.modal.Visible():
		d.modal, cmd = d.modal.Update(msg)
		return d, cmd
	case d.share.Open():
		d.share, cmd = d.share.Update(msg)
		return d, cmd
	case d.searching:
		switch msg.String() {
		case "enter", "esc":
			d.searching = false
			d.search.Blur()
			return d, nil
		}
		d.search, cmd = d.search.Update(msg)
		d.view.Query = d.search.Value()
		return d, tea.Batch(cmd, d.syncCards())
	}

	if d.cursor < len(d.cards) && d.cards[d.cursor].Confirming() {
		d.cards[d.cursor], cmd = d.cards[d.cursor].Update(msg)
		return d, cmd
	}

	switch msg.String() {
	case "q":
		return d, tea.Quit
	case "tab":
		d.sidebarFocus = !d.sidebarFocus
		d.sidebar.SetFocused(d.sidebarFocus)
		d.selectCursor()
		return d, nil
	case "b":
		return d, d.sidebar.Toggle()
	case "a":
		return d, d.modal.Open()
	case "s":
		if d.loading {
			return d, nil
		}
		return d, d.shareBrain()
	case "r":
		return d, d.refresh()
	case "/":
		d.searching = true
		return d, d.search.Focus()
	case "f", "right":
		return d, d.cycleFilter(1)
	case "F", "left":
		return d, d.cycleFilter(-1)
	case "0":
		return d, d.setFilter("")
	case "o":
		return d, d.signOut()
	}

	if d.sidebarFocus {
		d.sidebar, cmd = d.sidebar.Update(msg)
		return d, cmd
	}

	switch msg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
		d.selectCursor()
	case "down", "j":
		if d.cursor < len(d.cards)-1 {
			d.cursor++
		}
		d.selectCursor()
	case "d":
		if d.cursor < len(d.cards) {
			d.cards[d.cursor], cmd = d.cards[d.cursor].Update(msg)
		}
	}
	return d, cmd
}

func (d *Dashboard) signOut() tea.Cmd {
	if err := d.deps.Auth.SignOut(context.Background()); err != nil {
		d.err = services.MessageOf(err, "Sign out failed")
		return nil
	}
	return Navigate(PathSignIn)
}

func containsKind(ks []models.Kind, k models.Kind) bool {
	for _, x := range ks {
		if x == k {
			return true
		}
	}
	return false
}

func (d *Dashboard) View() string {
	if d.modal.Visible() {
		return d.overlay(d.modal.View())
	}
	if d.share.Open() {
		return d.overlay(d.share.View())
	}

	height := d.height
	if height <= 0 {
		height = 24
	}
	side := d.sidebar.View(height - 2)
	main := d.mainView(d.width - d.sidebar.Width() - 4)
	return lipgloss.JoinHorizontal(lipgloss.Top, side, " ", main)
}

func (d *Dashboard) overlay(s string) string {
	if d.width <= 0 || d.height <= 0 {
		return s
	}
	return lipgloss.Place(d.width, d.height, lipgloss.Center, lipgloss.Center, s)
}

func (d *Dashboard) mainView(width int) string {
	var b strings.Builder

	header := styles.Title.Render("My Content") + "  " +
		Button{Text: "Add Content", Icon: "+"}.View() + " " +
		Button{Text: "Share Brain", Icon: "⇪", Variant: VariantSecondary, Loading: d.loading}.View()
	b.WriteString(header)
	b.WriteString("\n\n")

	if d.searching || d.view.Query != "" {
		b.WriteString("🔍 " + d.search.View())
		b.WriteString("\n")
	}

	if tabs := d.FilterTabs(); len(tabs) > 0 {
		row := []string{tab("All", d.view.Filter == "")}
		for _, k := range tabs {
			row = append(row, tab(string(k), d.view.Filter == k))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n\n")
	}

	if d.err != "" {
		b.WriteString(styles.Error.Render(d.err))
		b.WriteString("\n\n")
	}

	switch {
	case d.loading:
		b.WriteString(d.spinner.View() + " Loading...")
	case len(d.cards) == 0:
		if d.view.Query != "" || d.view.Filter != "" {
			b.WriteString(styles.Subtle.Render("No matching content found"))
			b.WriteString("\n")
			b.WriteString(styles.Help.Render("Try adjusting your search or filters"))
		} else {
			b.WriteString(styles.Subtle.Render("No content available"))
			b.WriteString("\n")
			b.WriteString(styles.Help.Render("Press 'a' to add content and get started"))
		}
	default:
		b.WriteString(d.grid(width))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Help.Render("a add • s share • / search • f filter • d delete • r reload • b sidebar • o sign out • q quit"))
	return b.String()
}

func tab(label string, active bool) string {
	if active {
		return styles.ActiveTab.Render(label)
	}
	return styles.Tab.Render(label)
}

func (d *Dashboard) grid(width int) string {
	perRow := 1
	if width > 0 {
		perRow = max(1, width/(cardWidth+3))
	}
	var rows []string
	for i := 0; i < len(d.cards); i += perRow {
		end := min(i+perRow, len(d.cards))
		views := make([]string, 0, perRow)
		for _, c := range d.cards[i:end] {
			views = append(views, c.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
