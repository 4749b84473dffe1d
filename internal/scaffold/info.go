package scaffold

import (
	"errors"

	"github.com/civix-labs/civix/internal/manifest"
)

// InfoBuilder writes the info.xml manifest.
type InfoBuilder struct {
	path  string
	model *manifest.Info
}

// NewInfoBuilder returns a builder writing the manifest to path.
func NewInfoBuilder(path string) *InfoBuilder {
	return &InfoBuilder{path: path}
}

func (b *InfoBuilder) Name() string { return "info" }

// Model returns the manifest built by Load, or nil before Load.
func (b *InfoBuilder) Model() *manifest.Info { return b.model }

// Load fills the manifest model from ctx.
func (b *InfoBuilder) Load(ctx *Context) error {
	m := manifest.NewModule(ctx.FullName, ctx.MainFile)
	m.License = ctx.License.ID
	if ctx.License.URL != "" {
		m.SetURL(manifest.URLLicensing, ctx.License.URL)
	}
	m.Maintainer = manifest.Maintainer{Author: ctx.Author, Email: ctx.Email}
	m.ReleaseDate = ctx.ReleaseDate.Format("2006-01-02")
	m.Version = ctx.Version
	m.Civix.Namespace = ctx.Namespace

	b.model = m
	return nil
}

// Save validates the model and writes it, overwriting any existing file.
func (b *InfoBuilder) Save(*Context) ([]Artifact, error) {
	if b.model == nil {
		return nil, errors.New("info: Save called before Load")
	}

	result, err := manifest.Validate(b.model)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &ManifestError{Path: b.path, Issues: result.Issues}
	}

	data, err := manifest.Marshal(b.model)
	if err != nil {
		return nil, err
	}

	a, err := writeFile(b.Name(), b.path, data)
	if err != nil {
		return nil, err
	}
	return []Artifact{a}, nil
}
