package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/brainly/internal/buildinfo"
	"github.com/dmitrijs2005/brainly/internal/client/app"
	"github.com/dmitrijs2005/brainly/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()

	ctx := context.Background()
	if cfg.Mode == config.ModeREPL {
		buildinfo.PrintBuildData(os.Stdout)
	} else {
		// The REPL blocks on stdin, so only the TUI traps signals.
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	runErr := a.Run(ctx)
	if err := a.Close(); err != nil {
		log.Printf("close: %v", err)
	}
	if runErr != nil {
		log.Fatalf("%v", runErr)
	}
}
