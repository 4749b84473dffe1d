package manifest

import "encoding/xml"

// TypeModule is the only extension type the generator produces.
const TypeModule = "module"

// Defaults for fields the generator does not ask the user about.
const (
	DefaultDescription   = "FIXME"
	DefaultDevelStage    = "alpha"
	DefaultCompatibility = "4.7"
	DefaultComments      = "This is a new, undeveloped module"
	PlaceholderURL       = "http://FIXME"
)

// Info is the root <extension> element of info.xml.
type Info struct {
	XMLName       xml.Name      `xml:"extension" json:"-"`
	Key           string        `xml:"key,attr" json:"key"`
	Type          string        `xml:"type,attr" json:"type"`
	File          string        `xml:"file" json:"file"`
	Name          string        `xml:"name" json:"name"`
	Description   string        `xml:"description" json:"description"`
	License       string        `xml:"license" json:"license"`
	Maintainer    Maintainer    `xml:"maintainer" json:"maintainer"`
	URLs          []URL         `xml:"urls>url" json:"urls"`
	ReleaseDate   string        `xml:"releaseDate" json:"releaseDate"`
	Version       string        `xml:"version" json:"version"`
	DevelStage    string        `xml:"develStage" json:"develStage"`
	Compatibility Compatibility `xml:"compatibility" json:"compatibility"`
	Comments      string        `xml:"comments,omitempty" json:"comments,omitempty"`
	Civix         Civix         `xml:"civix" json:"civix"`
}

// Maintainer identifies the extension author.
type Maintainer struct {
	Author string `xml:"author" json:"author"`
	Email  string `xml:"email" json:"email"`
}

// URL is a labelled link, e.g. <url desc="Licensing">...</url>.
type URL struct {
	Desc string `xml:"desc,attr" json:"desc"`
	Href string `xml:",chardata" json:"href"`
}

// Compatibility lists the host versions the extension declares support for.
type Compatibility struct {
	Ver []string `xml:"ver" json:"ver"`
}

// Civix holds generator bookkeeping read back by later generate commands.
type Civix struct {
	Namespace string `xml:"namespace" json:"namespace"`
}

// URL returns the href for the link labelled desc, or "" if absent.
func (i *Info) URL(desc string) string {
	for _, u := range i.URLs {
		if u.Desc == desc {
			return u.Href
		}
	}
	return ""
}

// Link labels used in <urls>.
const (
	URLMain          = "Main Extension Page"
	URLDocumentation = "Documentation"
	URLSupport       = "Support"
	URLLicensing     = "Licensing"
)

// NewModule returns a module manifest for key with placeholder metadata.
// file is the short name the extension's main PHP file is named after.
func NewModule(key, file string) *Info {
	return &Info{
		Key:         key,
		Type:        TypeModule,
		File:        file,
		Name:        key,
		Description: DefaultDescription,
		URLs: []URL{
			{Desc: URLMain, Href: PlaceholderURL},
			{Desc: URLDocumentation, Href: PlaceholderURL},
			{Desc: URLSupport, Href: PlaceholderURL},
			{Desc: URLLicensing, Href: PlaceholderURL},
		},
		DevelStage:    DefaultDevelStage,
		Compatibility: Compatibility{Ver: []string{DefaultCompatibility}},
		Comments:      DefaultComments,
	}
}

// SetURL sets the href for the link labelled desc, appending it if absent.
func (i *Info) SetURL(desc, href string) {
	for n := range i.URLs {
		if i.URLs[n].Desc == desc {
			i.URLs[n].Href = href
			return
		}
	}
	i.URLs = append(i.URLs, URL{Desc: desc, Href: href})
}
