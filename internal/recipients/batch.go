// Package recipients parses ad-hoc batch files: recipient lists kept outside
// the user store, one "username,email" pair per line.
package recipients

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/mailadmin/internal/common"
)

// DefaultMax caps how many entries a batch file may contribute.
const DefaultMax = 100

// MaxLineBytes is the longest batch line accepted.
const MaxLineBytes = 1 << 20

// Entry is one parsed recipient. It is never persisted.
type Entry struct {
	Username string
	Email    string
}

// Parse reads entries from r until EOF or max entries are collected.
//
// Blank lines and lines starting with '#' are skipped. Data lines are
// "username,email[,extra...]"; fields are trimmed and extras ignored. A line
// without a non-empty second field is dropped. An empty username becomes the
// local part of the email. The address itself is not validated here.
func Parse(r io.Reader, max int) ([]Entry, error) {
	if max <= 0 {
		max = DefaultMax
	}

	var out []Entry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	for sc.Scan() {
		if len(out) >= max {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < 2 {
			continue
		}
		username := strings.TrimSpace(parts[0])
		email := strings.TrimSpace(parts[1])
		if email == "" {
			continue
		}
		if username == "" {
			username, _, _ = strings.Cut(email, "@")
		}
		out = append(out, Entry{Username: username, Email: email})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}
	return out, nil
}

// LoadFile parses the batch file at path. A missing file yields
// common.ErrResourceMissing.
func LoadFile(path string, max int) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("batch file %s: %w", path, common.ErrResourceMissing)
		}
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	return Parse(f, max)
}
