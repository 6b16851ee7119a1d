package studio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidSaverDir is returned when a DirSaver cannot use its directory.
var ErrInvalidSaverDir = errors.New("invalid saver directory")

// DirSaver persists images into a local directory. All writes are confined
// to the base directory; filenames are flattened to their base component to
// prevent path traversal.
type DirSaver struct {
	dir string
}

// NewDirSaver resolves dir to an absolute path and creates it if missing.
func NewDirSaver(dir string) (*DirSaver, error) {
	if dir == "" {
		return nil, ErrInvalidSaverDir
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSaverDir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSaverDir, err)
	}

	return &DirSaver{dir: abs}, nil
}

// Save writes data under the base component of filename and returns the
// absolute path of the written file.
func (s *DirSaver) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: unusable filename %q", ErrInvalidSaverDir, filename)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
