// Package fileutil holds small file helpers shared by agentlint packages.
package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/agentlint/internal/errors"
)

// MaxFileSize is the largest agent configuration we read (1 MiB).
const MaxFileSize = 1 << 20

var (
	// ErrFileTooLarge indicates that a file exceeded MaxFileSize.
	ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

	// ErrIsDirectory indicates the path names a directory, not a file.
	ErrIsDirectory = errors.New("is a directory")
)

// ReadFileWithLimit reads a regular file up to MaxFileSize.
// The file handle is closed before it returns.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// fail fast on directories and oversized files
	if info, err := f.Stat(); err == nil {
		if info.IsDir() {
			return nil, errors.Wrap(ErrIsDirectory, path)
		}
		if info.Size() > MaxFileSize {
			return nil, ErrFileTooLarge
		}
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}
