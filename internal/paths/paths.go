package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/agentlint/internal/errors"
)

// AppName names the per-user configuration directory.
const AppName = "agentlint"

const (
	// DefaultAgentsDir is where agent configurations live, relative to the
	// repository root.
	DefaultAgentsDir = ".github/agents"

	// DefaultPattern selects agent configuration files inside the agents directory.
	DefaultPattern = "*.yaml"
)

// ErrInvalidPath indicates the provided path is malformed or invalid.
var ErrInvalidPath = errors.New("invalid path")

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the per-user agentlint configuration directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// Clean validates a user-supplied directory and returns its cleaned form.
// It does not check that the directory exists.
func Clean(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty path")
	}
	if strings.ContainsRune(path, '\x00') {
		return "", errors.Wrapf(ErrInvalidPath, "%q contains a null byte", path)
	}
	return filepath.Clean(path), nil
}

// ValidPattern reports whether pattern is a well-formed filepath.Match glob
// that matches a single path element.
func ValidPattern(pattern string) bool {
	if pattern == "" || strings.ContainsRune(pattern, filepath.Separator) {
		return false
	}
	_, err := filepath.Match(pattern, "")
	return err == nil
}
