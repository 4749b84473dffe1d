// Package paths resolves filesystem locations relative to an extension's
// base directory. It performs no I/O.
package paths

import (
	"errors"
	"os"
	"path/filepath"
)

// Permission constants for generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// ErrEmptyBase is returned when a base directory is empty.
var ErrEmptyBase = errors.New("base directory must not be empty")

// Base is a base directory that relative segments are joined onto.
type Base struct {
	dir string
}

// New returns a Base rooted at dir. dir is cleaned but not made absolute.
func New(dir string) (Base, error) {
	if dir == "" {
		return Base{}, ErrEmptyBase
	}
	return Base{dir: filepath.Clean(dir)}, nil
}

// Dir returns the cleaned base directory.
func (b Base) Dir() string { return b.dir }

// Join joins segments onto the base directory. Segments may use "/" as a
// separator (e.g. "CRM/Myextension"); the result uses the OS separator.
func (b Base) Join(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, b.dir)
	for _, s := range segments {
		parts = append(parts, filepath.FromSlash(s))
	}
	return filepath.Join(parts...)
}

// Join is the one-shot form of New(base).Join(segments...).
func Join(base string, segments ...string) (string, error) {
	b, err := New(base)
	if err != nil {
		return "", err
	}
	return b.Join(segments...), nil
}
