package scaffold

import (
	"errors"

	"github.com/civix-labs/civix/internal/license"
)

// ErrLicenseHeaderUnsupported is returned by LicenseBuilder.Load when
// header mode is requested.
var ErrLicenseHeaderUnsupported = errors.New("license header injection is not supported; only plain-text LICENSE.txt is generated")

// LicenseBuilder writes a license's text verbatim.
type LicenseBuilder struct {
	entry  license.Entry
	path   string
	header bool
}

// NewLicenseBuilder returns a builder writing entry's text to path. header
// selects templated header injection instead of a plain file.
func NewLicenseBuilder(entry license.Entry, path string, header bool) *LicenseBuilder {
	return &LicenseBuilder{entry: entry, path: path, header: header}
}

func (b *LicenseBuilder) Name() string { return "license" }

func (b *LicenseBuilder) Load(*Context) error {
	if b.header {
		return ErrLicenseHeaderUnsupported
	}
	return nil
}

func (b *LicenseBuilder) Save(*Context) ([]Artifact, error) {
	a, err := writeFile(b.Name(), b.path, []byte(b.entry.Text))
	if err != nil {
		return nil, err
	}
	return []Artifact{a}, nil
}
