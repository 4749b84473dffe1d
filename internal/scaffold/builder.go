package scaffold

import (
	"errors"
	"io/fs"
	"os"

	"github.com/civix-labs/civix/internal/paths"
)

// Builder produces one category of output. Load derives state from the
// Context; Save writes artifacts. Save may return the artifacts it managed
// to produce alongside an error.
type Builder interface {
	Name() string
	Load(ctx *Context) error
	Save(ctx *Context) ([]Artifact, error)
}

// ArtifactKind distinguishes directories from files.
type ArtifactKind string

const (
	KindDir  ArtifactKind = "dir"
	KindFile ArtifactKind = "file"
)

// Action records what happened to an artifact's path.
type Action string

const (
	ActionCreated     Action = "created"
	ActionExists      Action = "exists"
	ActionOverwritten Action = "overwritten"
)

// Artifact describes one path a builder produced.
type Artifact struct {
	Kind   ArtifactKind
	Path   string
	Action Action
}

// writeFile writes data to path, replacing any existing file.
func writeFile(builder, path string, data []byte) (Artifact, error) {
	action := ActionCreated
	if _, err := os.Stat(path); err == nil {
		action = ActionOverwritten
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Artifact{}, &IOError{Builder: builder, Op: "stat", Path: path, Err: err}
	}

	if err := os.WriteFile(path, data, paths.FilePerm); err != nil {
		return Artifact{}, &IOError{Builder: builder, Op: "write", Path: path, Err: err}
	}
	return Artifact{Kind: KindFile, Path: path, Action: action}, nil
}
