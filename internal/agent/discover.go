package agent

import (
	"os"
	"path/filepath"

	"github.com/thoreinstein/agentlint/internal/errors"
)

// ErrDirNotFound indicates the agents directory is missing or not a directory.
var ErrDirNotFound = errors.New("agents directory not found")

// Discover returns the files in dir whose names match pattern, sorted by
// file name. Subdirectories are not descended into. A missing dir is
// reported as ErrDirNotFound; an empty result is not an error.
func Discover(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Wrap(ErrDirNotFound, dir)
	}

	// os.ReadDir sorts entries by file name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "matching %q", pattern)
		}
		if ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
