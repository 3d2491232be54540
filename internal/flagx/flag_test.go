package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	valueFlags := []string{"-c", "-u", "-d"}
	boolFlags := []string{"-dry-run"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "value flag with separate value",
			args: []string{"-c", "conf.json", "-x", "1"},
			want: []string{"-c", "conf.json"},
		},
		{
			name: "joined form",
			args: []string{"-u=users.csv", "-x=1"},
			want: []string{"-u=users.csv"},
		},
		{
			name: "bool flag does not eat the next token",
			args: []string{"-dry-run", "stray", "-d", "2"},
			want: []string{"-dry-run", "-d", "2"},
		},
		{
			name: "value flag followed by another flag",
			args: []string{"-c", "-dry-run"},
			want: []string{"-c", "-dry-run"},
		},
		{
			name: "lone dash is a value",
			args: []string{"-u", "-", "-d", "10"},
			want: []string{"-u", "-", "-d", "10"},
		},
		{
			name: "value flag at end",
			args: []string{"-u"},
			want: []string{"-u"},
		},
		{
			name: "order preserved",
			args: []string{"-d", "3", "-c", "a.json", "-u", "b.csv"},
			want: []string{"-d", "3", "-c", "a.json", "-u", "b.csv"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, valueFlags, boolFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"bin", "-u", "users.csv", "-config", "/etc/mailadmin.json"}
	assert.Equal(t, "/etc/mailadmin.json", ConfigFileFlag())

	os.Args = []string{"bin", "-c=short.json"}
	assert.Equal(t, "short.json", ConfigFileFlag())

	os.Args = []string{"bin", "-dry-run"}
	assert.Equal(t, "", ConfigFileFlag())
}
