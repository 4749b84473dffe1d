package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// Renderer turns a named template and its variables into text.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// TemplateRenderer renders text/template files from a filesystem.
// Variables referenced by a template but absent from data are an error.
type TemplateRenderer struct {
	fsys fs.FS
}

// NewTemplateRenderer returns a renderer reading templates from fsys.
func NewTemplateRenderer(fsys fs.FS) *TemplateRenderer {
	return &TemplateRenderer{fsys: fsys}
}

// DefaultRenderer returns a renderer over the embedded module templates.
func DefaultRenderer() *TemplateRenderer {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewTemplateRenderer(sub)
}

func (r *TemplateRenderer) Render(name string, data any) (string, error) {
	src, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}
