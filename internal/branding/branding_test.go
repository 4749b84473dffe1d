package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "civix" {
		t.Errorf("CLIName() = %q, want %q", got, "civix")
	}
	if got := NamespaceRoot(); got != "CRM" {
		t.Errorf("NamespaceRoot() = %q, want %q", got, "CRM")
	}
	if got := EnvVar("site_url"); got != "CIVIX_SITE_URL" {
		t.Errorf("EnvVar() = %q, want %q", got, "CIVIX_SITE_URL")
	}
}
