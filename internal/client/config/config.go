package config

import (
	"fmt"
	"time"
)

const (
	ModeTUI  = "tui"
	ModeREPL = "repl"
)

// Config holds runtime settings for the Brainly client.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the Brainly API.
//   - ShareBaseURL: origin used to build public share links.
//   - OEmbedURL: endpoint that resolves tweet embeds.
//   - RequestTimeout: upper bound for every API call.
//   - SuccessDelay: how long the create dialog shows its success state.
//   - MobileBreakpoint: terminal width (columns) below which the sidebar
//     collapses.
//   - DatabasePath: SQLite file holding the session (":memory:" allowed).
//   - LogFile: destination of the structured log.
//   - Mode: "tui" or "repl".
type Config struct {
	BaseURL          string
	ShareBaseURL     string
	OEmbedURL        string
	RequestTimeout   time.Duration
	SuccessDelay     time.Duration
	MobileBreakpoint int
	DatabasePath     string
	LogFile          string
	Mode             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:3000"
	c.ShareBaseURL = "http://localhost:5173"
	c.OEmbedURL = "https://publish.twitter.com/oembed"
	c.RequestTimeout = 10 * time.Second
	c.SuccessDelay = 1500 * time.Millisecond
	c.MobileBreakpoint = 100
	c.DatabasePath = "brainly.db"
	c.LogFile = "brainly.log"
	c.Mode = ModeTUI
}

// Validate reports settings no component can work with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.SuccessDelay < 0 {
		return fmt.Errorf("success delay must not be negative, got %s", c.SuccessDelay)
	}
	if c.Mode != ModeTUI && c.Mode != ModeREPL {
		return fmt.Errorf("unknown mode %q (want %s or %s)", c.Mode, ModeTUI, ModeREPL)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones. It panics on unusable input.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
