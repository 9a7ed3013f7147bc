// Package app assembles the Brainly client from its configuration: log
// file, session database, API client and services, and then runs either the
// terminal UI or the REPL on top of them.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/brainly/internal/client/cli"
	"github.com/dmitrijs2005/brainly/internal/client/client"
	"github.com/dmitrijs2005/brainly/internal/client/config"
	"github.com/dmitrijs2005/brainly/internal/client/services"
	"github.com/dmitrijs2005/brainly/internal/client/session"
	"github.com/dmitrijs2005/brainly/internal/client/tui"
	"github.com/dmitrijs2005/brainly/internal/filex"
	"github.com/dmitrijs2005/brainly/internal/logging"
)

type App struct {
	cfg *config.Config

	db        *sql.DB
	api       *client.HTTPClient
	logCloser io.Closer
	logger    logging.Logger

	auth    services.AuthService
	content services.ContentService
}

// runProgram is a test seam around the bubbletea program loop.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// New opens every resource the client needs. On failure, whatever was
// already opened is closed again.
func New(ctx context.Context, cfg *config.Config) (_ *App, err error) {
	a := &App{cfg: cfg}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	for _, p := range []string{cfg.LogFile, cfg.DatabasePath} {
		if err := filex.EnsureParentDir(p); err != nil {
			return nil, err
		}
	}

	logger, closer, err := logging.NewFileLogger(cfg.LogFile, slog.LevelInfo)
	if err != nil {
		return nil, err
	}
	a.logCloser = closer
	a.logger = logger.With("mode", cfg.Mode)

	a.db, err = client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	a.api, err = client.NewHTTPClient(cfg.BaseURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithOEmbedURL(cfg.OEmbedURL),
		client.WithLogger(a.logger.With("component", "api")),
	)
	if err != nil {
		return nil, err
	}

	store := session.NewSQLiteStore(a.db)
	a.auth = services.NewAuthService(a.api, store, a.logger)
	a.content = services.NewContentService(a.api, store, a.logger, cfg.ShareBaseURL)

	a.logger.Info(ctx, "client started", "base_url", cfg.BaseURL, "database", cfg.DatabasePath)
	return a, nil
}

// Run blocks until the user quits the selected front end.
func (a *App) Run(ctx context.Context) error {
	switch a.cfg.Mode {
	case config.ModeREPL:
		cli.NewApp(a.auth, a.content, a.logger.With("component", "repl")).Run(ctx)
		return nil
	case config.ModeTUI:
		deps := tui.Deps{
			Auth:         a.auth,
			Content:      a.content,
			Logger:       a.logger.With("component", "tui"),
			SuccessDelay: a.cfg.SuccessDelay,
			Breakpoint:   a.cfg.MobileBreakpoint,
		}
		if err := runProgram(tui.NewApp(deps), tea.WithAltScreen(), tea.WithContext(ctx)); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown mode %q", a.cfg.Mode)
}

// Close releases the API connections, the database and the log file.
func (a *App) Close() error {
	var errs []error
	if a.api != nil {
		errs = append(errs, a.api.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}
