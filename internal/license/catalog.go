package license

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"go.yaml.in/yaml/v3"
)

// DefaultID is the license used when neither a flag nor a config value names one.
const DefaultID = "AGPL-3.0"

const indexFile = "licenses.yaml"

//go:embed data
var embedded embed.FS

// Entry is a single known license.
type Entry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	File string `yaml:"file"`
	Text string `yaml:"-"`
}

// Catalog is a read-only set of licenses keyed by identifier.
type Catalog struct {
	order   []string
	entries map[string]Entry
}

type index struct {
	Licenses []Entry `yaml:"licenses"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load()
	})
	return defaultCatalog, defaultErr
}

// Load parses the embedded license index and reads every text body.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded license data: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS builds a catalog from an index file and text bodies in fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, indexFile)
	if err != nil {
		return nil, fmt.Errorf("reading license index: %w", err)
	}

	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing license index: %w", err)
	}

	c := &Catalog{entries: make(map[string]Entry, len(idx.Licenses))}
	for _, e := range idx.Licenses {
		if e.ID == "" {
			return nil, fmt.Errorf("license index entry missing id")
		}
		if _, dup := c.entries[e.ID]; dup {
			return nil, fmt.Errorf("duplicate license id %q", e.ID)
		}
		if e.File == "" {
			return nil, fmt.Errorf("license %q has no text file", e.ID)
		}

		text, err := fs.ReadFile(fsys, path.Clean(e.File))
		if err != nil {
			return nil, fmt.Errorf("reading text for license %q: %w", e.ID, err)
		}
		e.Text = string(text)

		c.entries[e.ID] = e
		c.order = append(c.order, e.ID)
	}

	return c, nil
}

// Get looks up a license by exact, case-sensitive identifier.
func (c *Catalog) Get(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Identifiers returns the known identifiers in index order.
func (c *Catalog) Identifiers() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Entries returns every license in index order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.entries[id])
	}
	return out
}
