package scaffold

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/civix-labs/civix/internal/branding"
	"github.com/civix-labs/civix/internal/license"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TypeModule is the Context type for module extensions.
const TypeModule = "module"

// DefaultVersion is the initial version written to info.xml.
const DefaultVersion = "1.0"

// namePattern matches a fully qualified extension name; the capture is the
// short name.
var namePattern = regexp.MustCompile(`^[a-z0-9.]+\.([a-z0-9]+)$`)

var upper = cases.Upper(language.Und)

// Input is the raw, unvalidated request to scaffold an extension.
type Input struct {
	FullName    string
	BaseDir     string // defaults to FullName
	Author      string
	Email       string
	License     string
	Version     string    // defaults to DefaultVersion
	ReleaseDate time.Time // defaults to today
}

// LicenseLookup resolves license identifiers.
type LicenseLookup interface {
	Get(id string) (license.Entry, bool)
}

// Context is the validated set of parameters threaded through the builders.
// It can only be obtained from NewContext.
type Context struct {
	Type        string
	FullName    string // e.g. "com.example.myextension"
	MainFile    string // e.g. "myextension"
	Namespace   string // e.g. "CRM/Myextension"
	BaseDir     string
	Author      string
	Email       string
	License     license.Entry
	Version     string
	ReleaseDate time.Time

	// Vars holds values derived by builders during load.
	Vars map[string]string
}

// NewContext validates in and derives the remaining fields. Checks run in
// order: name, author and email, license, version. The first failure is
// returned as a *ValidationError.
func NewContext(in Input, licenses LicenseLookup) (*Context, error) {
	m := namePattern.FindStringSubmatch(in.FullName)
	if m == nil {
		return nil, &ValidationError{
			Field:   "fullName",
			Value:   in.FullName,
			Message: fmt.Sprintf("malformed package name %q: expected a dotted lowercase name like com.example.myextension", in.FullName),
		}
	}

	if in.Author == "" || in.Email == "" {
		return nil, &ValidationError{
			Field:   "author",
			Value:   in.Author + " <" + in.Email + ">",
			Message: "missing author name or email address",
		}
	}

	entry, ok := licenses.Get(in.License)
	if !ok {
		return nil, &ValidationError{
			Field:   "license",
			Value:   in.License,
			Message: fmt.Sprintf("unrecognized license (%s)", in.License),
		}
	}

	version := in.Version
	if version == "" {
		version = DefaultVersion
	}
	if _, err := semver.NewVersion(version); err != nil {
		return nil, &ValidationError{
			Field:   "version",
			Value:   version,
			Message: fmt.Sprintf("invalid version %q: %v", version, err),
		}
	}

	baseDir := in.BaseDir
	if baseDir == "" {
		baseDir = in.FullName
	}

	released := in.ReleaseDate
	if released.IsZero() {
		released = time.Now()
	}

	mainFile := m[1]
	return &Context{
		Type:        TypeModule,
		FullName:    in.FullName,
		MainFile:    mainFile,
		Namespace:   NamespaceFor(mainFile),
		BaseDir:     baseDir,
		Author:      in.Author,
		Email:       in.Email,
		License:     entry,
		Version:     version,
		ReleaseDate: released,
		Vars:        make(map[string]string),
	}, nil
}

// NamespaceFor returns the class directory for a short name, e.g.
// "myextension" → "CRM/Myextension".
func NamespaceFor(mainFile string) string {
	return branding.NamespaceRoot() + "/" + upperFirst(mainFile)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return upper.String(s[:1]) + s[1:]
}
