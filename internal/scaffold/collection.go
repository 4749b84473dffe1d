package scaffold

import (
	"errors"

	"github.com/civix-labs/civix/internal/paths"
)

// Layout of a generated module, relative to its base directory.
const (
	DirBuild     = "build"
	DirTemplates = "templates"
	DirXML       = "xml"
	InfoFile     = "info.xml"
	LicenseFile  = "LICENSE.txt"
)

// Reporter receives per-builder progress during Collection.Save.
type Reporter interface {
	Artifact(builder string, a Artifact)
	Failure(builder string, err error)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) Artifact(string, Artifact) {}
func (NopReporter) Failure(string, error)     {}

// Outcome is the result of one builder's Save.
type Outcome struct {
	Builder   string
	Artifacts []Artifact
	Err       error
}

// Report collects the outcome of every builder in collection order.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the names of builders whose Save failed.
func (r *Report) Failed() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Err != nil {
			names = append(names, o.Builder)
		}
	}
	return names
}

// Artifacts returns every artifact produced, in order.
func (r *Report) Artifacts() []Artifact {
	var all []Artifact
	for _, o := range r.Outcomes {
		all = append(all, o.Artifacts...)
	}
	return all
}

// Err joins every builder error, or returns nil if all succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// Collection runs builders in insertion order.
type Collection struct {
	builders []Builder
}

// NewCollection returns a collection running builders in the given order.
func NewCollection(builders ...Builder) *Collection {
	return &Collection{builders: builders}
}

// Builders returns the builders in execution order.
func (c *Collection) Builders() []Builder {
	out := make([]Builder, len(c.builders))
	copy(out, c.builders)
	return out
}

// LoadInit loads every builder in order and stops at the first failure.
func (c *Collection) LoadInit(ctx *Context) error {
	for _, b := range c.builders {
		if err := b.Load(ctx); err != nil {
			return &LoadError{Builder: b.Name(), Err: err}
		}
	}
	return nil
}

// Save saves every builder in order. A failing builder is reported and
// the rest still run; nothing already written is rolled back.
func (c *Collection) Save(ctx *Context, r Reporter) *Report {
	if r == nil {
		r = NopReporter{}
	}

	report := &Report{Outcomes: make([]Outcome, 0, len(c.builders))}
	for _, b := range c.builders {
		artifacts, err := b.Save(ctx)
		for _, a := range artifacts {
			r.Artifact(b.Name(), a)
		}
		if err != nil {
			r.Failure(b.Name(), err)
		}
		report.Outcomes = append(report.Outcomes, Outcome{Builder: b.Name(), Artifacts: artifacts, Err: err})
	}
	return report
}

// NewModuleCollection returns the builders for a module extension. The
// directory builder always comes first so later builders can write into it.
func NewModuleCollection(ctx *Context, renderer Renderer) (*Collection, error) {
	base, err := paths.New(ctx.BaseDir)
	if err != nil {
		return nil, err
	}

	return NewCollection(
		NewDirsBuilder(
			base.Join(DirBuild),
			base.Join(DirTemplates),
			base.Join(DirXML),
			base.Join(ctx.Namespace),
		),
		NewInfoBuilder(base.Join(InfoFile)),
		NewModuleBuilder(renderer),
		NewLicenseBuilder(ctx.License, base.Join(LicenseFile), false),
	), nil
}

// Generate builds the module collection for ctx, loads it, and saves it.
// A load failure is returned before anything is written. Save failures are
// recorded in the Report.
func Generate(ctx *Context, renderer Renderer, r Reporter) (*Report, error) {
	c, err := NewModuleCollection(ctx, renderer)
	if err != nil {
		return nil, err
	}
	if err := c.LoadInit(ctx); err != nil {
		return nil, err
	}
	return c.Save(ctx, r), nil
}
