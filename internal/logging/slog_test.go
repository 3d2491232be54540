package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		kv    string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}
	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.kv)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("op", "send_all", "user", "alice").Info(context.Background(), "hello", "k", "v")

	for _, s := range []string{"level=INFO", "msg=hello", "op=send_all", "user=alice", "k=v"} {
		assert.Contains(t, buf.String(), s)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages_sent.log")

	log, closer, err := New(path, "warn")
	require.NoError(t, err)

	log.Info(context.Background(), "dropped")
	log.Warn(context.Background(), "kept", "to", "bob@gmail.com")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.False(t, strings.Contains(out, "dropped"))
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "to=bob@gmail.com")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("-", "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	log := Discard()
	ctx := context.TODO()
	log.Info(ctx, "x")
	log.With("a", 1).Error(ctx, "y")
}
