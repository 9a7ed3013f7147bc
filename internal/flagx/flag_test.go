package flagx

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", "http://api:3000", "-x", "1"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://api:3000"},
		},
		{
			name:         "equals form",
			args:         []string{"-config=brainly.yaml", "-m", "repl"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=brainly.yaml"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-m"},
			allowedFlags: []string{"-m"},
			want:         []string{"-m"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-t", "-d", "x.db"},
			allowedFlags: []string{"-t", "-d"},
			want:         []string{"-t", "-d", "x.db"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-a", "one", "-a", "two"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "one", "-a", "two"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"brainly", "-c", "/etc/brainly.json"}
		assert.Equal(t, "/etc/brainly.json", ConfigFileFlag())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"brainly", "-m", "repl", "-config", "brainly.yaml"}
		assert.Equal(t, "brainly.yaml", ConfigFileFlag())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"brainly", "-a", "http://localhost:3000"}
		assert.Empty(t, ConfigFileFlag())
	})
}
