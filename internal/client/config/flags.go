package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/brainly/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the API
//	-s string   base URL for share links
//	-t int      request timeout in seconds
//	-d string   session database path
//	-l string   log file path
//	-m string   ui mode: tui or repl
//
// os.Args is filtered with flagx.FilterArgs first so -c/-config and
// unrelated flags do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-d", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the Brainly API")
	fs.StringVar(&cfg.ShareBaseURL, "s", cfg.ShareBaseURL, "base URL used for share links")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the session database")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "path to the log file")
	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "ui mode (tui or repl)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
