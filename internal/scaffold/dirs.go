package scaffold

import (
	"fmt"
	"os"

	"github.com/civix-labs/civix/internal/paths"
)

// DirsBuilder creates a fixed set of directories.
type DirsBuilder struct {
	dirs []string
}

// NewDirsBuilder returns a builder for the given directories, created in order.
func NewDirsBuilder(dirs ...string) *DirsBuilder {
	return &DirsBuilder{dirs: dirs}
}

func (b *DirsBuilder) Name() string { return "dirs" }

// Load is a no-op; the directories are fixed at construction.
func (b *DirsBuilder) Load(*Context) error { return nil }

// Save creates each directory and its parents. A directory that already
// exists is reported as such, not treated as an error.
func (b *DirsBuilder) Save(*Context) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(b.dirs))
	for _, dir := range b.dirs {
		if info, err := os.Stat(dir); err == nil {
			if !info.IsDir() {
				return artifacts, &IOError{Builder: b.Name(), Op: "mkdir", Path: dir, Err: fmt.Errorf("path exists and is not a directory")}
			}
			artifacts = append(artifacts, Artifact{Kind: KindDir, Path: dir, Action: ActionExists})
			continue
		}

		if err := os.MkdirAll(dir, paths.DirPerm); err != nil {
			return artifacts, &IOError{Builder: b.Name(), Op: "mkdir", Path: dir, Err: err}
		}
		artifacts = append(artifacts, Artifact{Kind: KindDir, Path: dir, Action: ActionCreated})
	}
	return artifacts, nil
}
