package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/brainly/internal/flagx"
	"github.com/dmitrijs2005/brainly/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape. Durations go through timex.Duration so
// files may say "10s" or give integer nanoseconds.
type FileConfig struct {
	BaseURL          string         `json:"base_url" yaml:"base_url"`
	ShareBaseURL     string         `json:"share_base_url" yaml:"share_base_url"`
	OEmbedURL        string         `json:"oembed_url" yaml:"oembed_url"`
	RequestTimeout   timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	SuccessDelay     timex.Duration `json:"success_delay" yaml:"success_delay"`
	MobileBreakpoint int            `json:"mobile_breakpoint" yaml:"mobile_breakpoint"`
	DatabasePath     string         `json:"database_path" yaml:"database_path"`
	LogFile          string         `json:"log_file" yaml:"log_file"`
	Mode             string         `json:"mode" yaml:"mode"`
}

// decodeFile picks the decoder by extension: .yaml/.yml use YAML, anything
// else JSON.
func decodeFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &fc, nil
}

// apply copies the fields the file actually set.
func (fc *FileConfig) apply(cfg *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&cfg.BaseURL, fc.BaseURL)
	setString(&cfg.ShareBaseURL, fc.ShareBaseURL)
	setString(&cfg.OEmbedURL, fc.OEmbedURL)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.LogFile, fc.LogFile)
	setString(&cfg.Mode, fc.Mode)

	if fc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.SuccessDelay.Duration != 0 {
		cfg.SuccessDelay = fc.SuccessDelay.Duration
	}
	if fc.MobileBreakpoint != 0 {
		cfg.MobileBreakpoint = fc.MobileBreakpoint
	}
}

// parseFile overlays cfg with the file named by -c/-config. Without the
// flag nothing happens; read or decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	fc, err := decodeFile(path)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}
