//go:build integration

package integration_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/civix-labs/civix/internal/license"
	"github.com/civix-labs/civix/internal/scaffold"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // CIVIX_HOME, where config.yaml lives
	WorkDir string // where extensions are generated
}

// setupTestEnv creates isolated temp directories and points CIVIX_HOME at
// one of them. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("CIVIX_HOME", env.HomeDir)
	return env
}

// newContext validates a module request rooted under env.WorkDir.
func newContext(t *testing.T, env *testEnv, fullName, licenseID string) *scaffold.Context {
	t.Helper()

	catalog, err := license.Default()
	if err != nil {
		t.Fatalf("loading license catalog: %v", err)
	}
	ctx, err := scaffold.NewContext(scaffold.Input{
		FullName:    fullName,
		BaseDir:     filepath.Join(env.WorkDir, fullName),
		Author:      "Test Author",
		Email:       "author@example.org",
		License:     licenseID,
		ReleaseDate: time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC),
	}, catalog)
	if err != nil {
		t.Fatalf("NewContext(%s): %v", fullName, err)
	}
	return ctx
}

// generate runs the full module collection and fails on any builder error.
func generate(t *testing.T, ctx *scaffold.Context) *scaffold.Report {
	t.Helper()

	report, err := scaffold.Generate(ctx, scaffold.DefaultRenderer(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("Generate failed builders %v: %v", report.Failed(), err)
	}
	return report
}

// fakeSite is a minimal stand-in for a CiviCRM REST endpoint.
type fakeSite struct {
	*httptest.Server

	mu       sync.Mutex
	actions  []string
	failWith map[string]string // action -> error_message
}

func newFakeSite(t *testing.T) *fakeSite {
	t.Helper()

	site := &fakeSite{failWith: map[string]string{}}
	site.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		action := r.PostForm.Get("action")
		if action == "install" {
			var params map[string]any
			_ = json.Unmarshal([]byte(r.PostForm.Get("json")), &params)
			action += " " + stringValue(params["keys"])
		}

		site.mu.Lock()
		site.actions = append(site.actions, action)
		msg, fail := site.failWith[r.PostForm.Get("action")]
		site.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fail {
			_ = json.NewEncoder(w).Encode(map[string]any{"is_error": 1, "error_message": msg})
			return
		}
		_, _ = w.Write([]byte(`{"is_error":0,"values":[]}`))
	}))
	t.Cleanup(site.Close)
	return site
}

func (s *fakeSite) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.actions...)
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// recordingNotifier collects messages from host.Enable.
type recordingNotifier struct {
	infos  []string
	errors []string
}

func (n *recordingNotifier) Info(msg string)  { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
