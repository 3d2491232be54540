package message

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dmitrijs2005/mailadmin/internal/common"
)

// UsernamePlaceholder is replaced literally with the recipient's username.
const UsernamePlaceholder = "{{username}}"

// TemplateSource supplies the HTML template text.
type TemplateSource interface {
	Load() (string, error)
}

// FileTemplate reads the template from disk on every Load, so edits show up
// without restarting the shell.
type FileTemplate struct {
	Path string
}

func (t FileTemplate) Load() (string, error) {
	data, err := os.ReadFile(t.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("template %s: %w", t.Path, common.ErrResourceMissing)
		}
		return "", fmt.Errorf("read template %s: %w", t.Path, err)
	}
	return string(data), nil
}

// Render substitutes every placeholder occurrence. No escaping is done.
func Render(tmpl, username string) string {
	return strings.ReplaceAll(tmpl, UsernamePlaceholder, username)
}
