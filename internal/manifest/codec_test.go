package manifest

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func sampleInfo() *Info {
	info := NewModule("com.example.myextension", "myextension")
	info.License = "AGPL-3.0"
	info.Maintainer = Maintainer{Author: "Jane Doe", Email: "jane@example.com"}
	info.SetURL(URLLicensing, "http://www.gnu.org/licenses/agpl-3.0.html")
	info.ReleaseDate = "2026-10-14"
	info.Version = "1.0"
	info.Civix.Namespace = "CRM/Myextension"
	return info
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(sampleInfo())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, `<?xml version="1.0"?>`+"\n") {
		t.Errorf("missing XML header:\n%s", out)
	}
	for _, want := range []string{
		`<extension key="com.example.myextension" type="module">`,
		"<file>myextension</file>",
		"<author>Jane Doe</author>",
		"<email>jane@example.com</email>",
		"<license>AGPL-3.0</license>",
		`<url desc="Licensing">http://www.gnu.org/licenses/agpl-3.0.html</url>`,
		"<namespace>CRM/Myextension</namespace>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMarshalUnmarshal_Fixture(t *testing.T) {
	parsed, err := ParseFile(testPath("valid-info.xml"))
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	want := sampleInfo()
	if diff := cmp.Diff(want, parsed, cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".XMLName"
	}, cmp.Ignore())); diff != "" {
		t.Errorf("parsed fixture mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_Errors(t *testing.T) {
	if _, err := ParseFile(testPath("does-not-exist.xml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := ParseFile(testPath("invalid-xml.xml")); err == nil {
		t.Error("expected error for malformed XML")
	}
}

func TestSetURL(t *testing.T) {
	info := NewModule("com.example.a", "a")
	info.SetURL(URLLicensing, "http://example.org/license")
	if got := info.URL(URLLicensing); got != "http://example.org/license" {
		t.Errorf("URL(Licensing) = %q", got)
	}
	if len(info.URLs) != 4 {
		t.Errorf("SetURL on existing label appended; got %d urls", len(info.URLs))
	}

	info.SetURL("Source", "http://example.org/src")
	if len(info.URLs) != 5 || info.URL("Source") != "http://example.org/src" {
		t.Errorf("SetURL did not append new label: %+v", info.URLs)
	}
	if info.URL("missing") != "" {
		t.Error("URL() of unknown label should be empty")
	}
}
