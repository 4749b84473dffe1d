package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/civix-labs/civix/internal/manifest"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports input rejected before any filesystem mutation.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IOError reports a failed directory or file operation.
type IOError struct {
	Builder string
	Op      string // "mkdir", "write", "stat"
	Path    string
	Err     error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Builder, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// TemplateError reports a template that could not be found or rendered.
// Nothing is written for the failed template.
type TemplateError struct {
	Builder  string
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%s: rendering template %s: %v", e.Builder, e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error { return e.Err }

// ManifestError reports a manifest model that failed schema validation.
type ManifestError struct {
	Path   string
	Issues []manifest.ValidationIssue
}

func (e *ManifestError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.String())
	}
	return fmt.Sprintf("info: manifest %s is invalid: %s", e.Path, strings.Join(msgs, "; "))
}

// LoadError wraps the first builder failure during Collection.LoadInit.
type LoadError struct {
	Builder string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Builder, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
