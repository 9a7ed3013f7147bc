package tui

import (
	"context"
	"time"

	"github.com/dmitrijs2005/brainly/internal/client/services"
	"github.com/dmitrijs2005/brainly/internal/logging"
)

// Deps is everything the screens need from the outside.
type Deps struct {
	Auth         services.AuthService
	Content      services.ContentService
	Logger       logging.Logger
	SuccessDelay time.Duration
	Breakpoint   int
}

func (d Deps) signedIn() bool {
	return d.Auth != nil && d.Auth.SignedIn(context.Background())
}

func (d Deps) logger() logging.Logger {
	if d.Logger == nil {
		return logging.Discard()
	}
	return d.Logger
}
