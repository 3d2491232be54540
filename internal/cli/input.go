package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for the terminal package.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints prompt to w and reads one line from reader, trimmed.
// If EOF occurs after some input was read, the partial line is returned.
//
// Example prompt format:
//
//	New username: _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt and reads a password without echo when stdin is
// a terminal. Otherwise (pipes, tests) it reads a plain line from reader.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}

	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimSpace(string(pw))), nil
}

// Confirm asks a yes/no question. Only the exact answer want (any case)
// counts as yes.
func Confirm(reader *bufio.Reader, prompt, want string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, want), nil
}
