package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	jsonPath := writeTemp(t, "cfg.json", `{
		"base_url": "http://json:3000",
		"request_timeout": "3s",
		"mobile_breakpoint": 80
	}`)
	yamlPath := writeTemp(t, "cfg.yaml", "base_url: http://yaml:3000\nsuccess_delay: 2s\nmode: repl\n")

	t.Run("json from -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", jsonPath}

		var cfg Config
		cfg.LoadDefaults()
		parseFile(&cfg)

		assert.Equal(t, "http://json:3000", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 80, cfg.MobileBreakpoint)
		assert.Equal(t, "http://localhost:5173", cfg.ShareBaseURL, "unset field keeps default")
	})

	t.Run("yaml from -c", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", yamlPath}

		var cfg Config
		cfg.LoadDefaults()
		parseFile(&cfg)

		assert.Equal(t, "http://yaml:3000", cfg.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.SuccessDelay)
		assert.Equal(t, ModeREPL, cfg.Mode)
	})

	t.Run("no flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := Config{BaseURL: "defaults:1234"}
		parseFile(&cfg)

		assert.Equal(t, "defaults:1234", cfg.BaseURL)
	})

	t.Run("flags win over file", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", jsonPath, "-a", "http://flag:1"}

		cfg := LoadConfig()
		assert.Equal(t, "http://flag:1", cfg.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.json", `{ this is not valid json`)
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("bad duration panics", func(t *testing.T) {
		bad := writeTemp(t, "bad.yml", "request_timeout: soon\n")
		os.Args = []string{"testbin", "-c", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(t.TempDir(), "nope.json")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
