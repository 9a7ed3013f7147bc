package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/brainly/internal/client/collection"
	"github.com/dmitrijs2005/brainly/internal/client/models"
	"github.com/dmitrijs2005/brainly/internal/client/services"
	"github.com/dmitrijs2005/brainly/internal/logging"
)

// App holds the services and the transient list state of one REPL session.
type App struct {
	authService    services.AuthService
	contentService services.ContentService
	logger         logging.Logger

	view  collection.View
	items []models.Item

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(as services.AuthService, cs services.ContentService, l logging.Logger) *App {
	if l == nil {
		l = logging.Discard()
	}
	return &App{
		authService:    as,
		contentService: cs,
		logger:         l,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}
}

// Run prints the banner and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) {
	printlnFn("Brainly CLI (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.status(ctx) }, a.reader)
}

func (a *App) isSignedIn(ctx context.Context) bool {
	return a.authService.SignedIn(ctx)
}

// status is shown in the prompt: the signed-in name and the active filter.
func (a *App) status(ctx context.Context) string {
	if !a.isSignedIn(ctx) {
		return "signed out"
	}
	var parts []string
	if name := a.authService.CachedUsername(ctx); name != "" {
		parts = append(parts, name)
	}
	if a.view.Filter != "" {
		parts = append(parts, string(a.view.Filter))
	}
	return strings.Join(parts, " ")
}
