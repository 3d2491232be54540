package filex

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDir_CreatesNestedDirectory(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a", "b", "users.csv")

	require.NoError(t, EnsureParentDir(target))

	fi, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	// idempotent
	require.NoError(t, EnsureParentDir(target))
}

func TestWriteAtomic_CreatesWithMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.txt")

	err := WriteAtomic(target, 0o600, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello\n")
		return err
	})
	require.NoError(t, err)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "hello\n", string(b))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(target)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestWriteAtomic_KeepsExistingMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not portable")
	}
	target := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
	require.NoError(t, os.Chmod(target, 0o644))

	require.NoError(t, WriteAtomic(target, 0o600, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	}))

	fi, err := os.Stat(target)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o644), fi.Mode().Perm())
}

func TestWriteAtomic_FillErrorKeepsOldContent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o600))

	boom := errors.New("boom")
	err := WriteAtomic(target, 0o600, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "old", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be cleaned up")
}
