package tui

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	mu        sync.Mutex
	signedIn  bool
	cached    string
	user      *models.User
	meErr     error
	signUpErr error
	signInErr error
	calls     []string
}

func (f *fakeAuth) SignUp(ctx context.Context, username string, password []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "signup:"+username)
	return f.signUpErr
}

func (f *fakeAuth) SignIn(ctx context.Context, username string, password []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "signin:"+username)
	if f.signInErr == nil {
		f.signedIn = true
	}
	return f.signInErr
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "signout")
	f.signedIn = false
	return nil
}

func (f *fakeAuth) Me(ctx context.Context) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "me")
	return f.user, f.meErr
}

func (f *fakeAuth) CachedUsername(ctx context.Context) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached
}

func (f *fakeAuth) SignedIn(ctx context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signedIn
}

// fakeContent behaves like a tiny server: Create appends, Delete removes.
type fakeContent struct {
	mu        sync.Mutex
	items     []models.Item
	listErr   error
	createErr error
	deleteErr error
	shareURL  string
	shareErr  error
	tweets    map[string]*models.Tweet

	listCalls int
	created   []models.NewContent
	deleted   []string
	nextID    int
}

func (f *fakeContent) List(ctx context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Item(nil), f.items...), nil
}

func (f *fakeContent) Create(ctx context.Context, c models.NewContent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, c)
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	f.items = append(f.items, models.Item{ID: "new-" + strconv.Itoa(f.nextID), Title: c.Title, Link: c.Link, Type: c.Type})
	return nil
}

func (f *fakeContent) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeContent) Share(ctx context.Context) (string, error) {
	return f.shareURL, f.shareErr
}

func (f *fakeContent) Tweet(ctx context.Context, id string) (*models.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.tweets[id]; ok {
		return t, nil
	}
	return nil, client.ErrUnavailable
}

func newDeps(auth *fakeAuth, c *fakeContent) Deps {
	return Deps{
		Auth:         auth,
		Content:      c,
		Logger:       logging.Discard(),
		SuccessDelay: 0,
		Breakpoint:   100,
	}
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// pump feeds msgs to m and then every message the resulting commands
// produce, until the queue drains. Spinner ticks and quit are dropped.
func pump(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, []tea.Msg) {
	t.Helper()
	queue := append([]tea.Msg(nil), msgs...)
	var seen []tea.Msg
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "message loop did not settle")
		next := queue[0]
		queue = queue[1:]
		seen = append(seen, next)

		var cmd tea.Cmd
		m, cmd = m.Update(next)
		for _, out := range collect(cmd) {
			switch out.(type) {
			case spinner.TickMsg, tea.QuitMsg:
				continue
			}
			queue = append(queue, out)
		}
	}
	return m, seen
}

func start(t *testing.T, m tea.Model) tea.Model {
	t.Helper()
	var msgs []tea.Msg
	for _, msg := range collect(m.Init()) {
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		msgs = append(msgs, msg)
	}
	m, _ = pump(t, m, msgs...)
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func hasMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
