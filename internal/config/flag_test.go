package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name        string
		args        []string
		expected    func() *Config
		expectPanic bool
	}{
		{
			name: "files and delay",
			args: []string{"cmd", "-u", "u.csv", "-b", "b.txt", "-t", "t.html", "-l", "-", "-d", "10"},
			expected: func() *Config {
				c := base()
				c.UsersFile, c.BatchFile, c.TemplateFile, c.LogFile = "u.csv", "b.txt", "t.html", "-"
				c.BulkDelay = 10 * time.Second
				return c
			},
		},
		{
			name: "dry run switches transport",
			args: []string{"cmd", "-dry-run"},
			expected: func() *Config {
				c := base()
				c.Transport = TransportLog
				return c
			},
		},
		{
			name: "config flag is ignored here",
			args: []string{"cmd", "-c", "x.json"},
			expected: base,
		},
		{
			name:        "bad delay panics",
			args:        []string{"cmd", "-d", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected(), cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondDelayWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := &Config{BulkDelay: 500 * time.Millisecond}
	parseFlags(cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.BulkDelay)
}
