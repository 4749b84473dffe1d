package scaffold

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeBuilder records Load/Save calls into a shared log.
type fakeBuilder struct {
	name    string
	log     *[]string
	loadErr error
	saveErr error
	out     []Artifact
}

func (f *fakeBuilder) Name() string { return f.name }

func (f *fakeBuilder) Load(*Context) error {
	*f.log = append(*f.log, "load:"+f.name)
	return f.loadErr
}

func (f *fakeBuilder) Save(*Context) ([]Artifact, error) {
	*f.log = append(*f.log, "save:"+f.name)
	return f.out, f.saveErr
}

// recordingReporter captures reporter calls in order.
type recordingReporter struct {
	events []string
	errs   map[string]error
}

func (r *recordingReporter) Artifact(builder string, a Artifact) {
	r.events = append(r.events, builder+" "+string(a.Action)+" "+a.Path)
}

func (r *recordingReporter) Failure(builder string, err error) {
	if r.errs == nil {
		r.errs = make(map[string]error)
	}
	r.events = append(r.events, builder+" failed")
	r.errs[builder] = err
}

func TestCollection_Order(t *testing.T) {
	var log []string
	c := NewCollection(
		&fakeBuilder{name: "dirs", log: &log},
		&fakeBuilder{name: "info", log: &log},
		&fakeBuilder{name: "module", log: &log},
		&fakeBuilder{name: "license", log: &log},
	)

	ctx := &Context{Vars: map[string]string{}}
	if err := c.LoadInit(ctx); err != nil {
		t.Fatalf("LoadInit() error: %v", err)
	}
	report := c.Save(ctx, nil)
	if err := report.Err(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	want := []string{
		"load:dirs", "load:info", "load:module", "load:license",
		"save:dirs", "save:info", "save:module", "save:license",
	}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_LoadInitFailFast(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	c := NewCollection(
		&fakeBuilder{name: "a", log: &log},
		&fakeBuilder{name: "b", log: &log, loadErr: boom},
		&fakeBuilder{name: "c", log: &log},
	)

	err := c.LoadInit(&Context{})
	if !errors.Is(err, boom) {
		t.Fatalf("LoadInit() error = %v, want boom", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Builder != "b" {
		t.Errorf("expected *LoadError for builder b, got %v", err)
	}
	if diff := cmp.Diff([]string{"load:a", "load:b"}, log); diff != "" {
		t.Errorf("builders after the failure were loaded (-want +got):\n%s", diff)
	}
}

func TestCollection_SaveBestEffort(t *testing.T) {
	var log []string
	fail := &IOError{Builder: "b", Op: "write", Path: "x", Err: errors.New("disk full")}
	c := NewCollection(
		&fakeBuilder{name: "a", log: &log, out: []Artifact{{Kind: KindFile, Path: "a.txt", Action: ActionCreated}}},
		&fakeBuilder{name: "b", log: &log, saveErr: fail},
		&fakeBuilder{name: "c", log: &log, out: []Artifact{{Kind: KindFile, Path: "c.txt", Action: ActionCreated}}},
	)

	rep := &recordingReporter{}
	report := c.Save(&Context{}, rep)

	if diff := cmp.Diff([]string{"save:a", "save:b", "save:c"}, log); diff != "" {
		t.Errorf("save order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, report.Failed()); diff != "" {
		t.Errorf("Failed() mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(report.Err(), fail) {
		t.Errorf("Err() = %v, want the builder error", report.Err())
	}
	wantEvents := []string{"a created a.txt", "b failed", "c created c.txt"}
	if diff := cmp.Diff(wantEvents, rep.events); diff != "" {
		t.Errorf("reporter events mismatch (-want +got):\n%s", diff)
	}
	if len(report.Artifacts()) != 2 {
		t.Errorf("Artifacts() = %v, want 2 entries", report.Artifacts())
	}
}

func TestCollection_PartialArtifactsForwarded(t *testing.T) {
	var log []string
	partial := []Artifact{{Kind: KindDir, Path: "one", Action: ActionCreated}}
	c := NewCollection(&fakeBuilder{name: "dirs", log: &log, out: partial, saveErr: errors.New("mkdir two: denied")})

	rep := &recordingReporter{}
	report := c.Save(&Context{}, rep)

	if diff := cmp.Diff([]string{"dirs created one", "dirs failed"}, rep.events); diff != "" {
		t.Errorf("reporter events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(partial, report.Outcomes[0].Artifacts); diff != "" {
		t.Errorf("outcome artifacts mismatch (-want +got):\n%s", diff)
	}
}

func TestCollection_BuildersCopy(t *testing.T) {
	var log []string
	c := NewCollection(&fakeBuilder{name: "a", log: &log})
	bs := c.Builders()
	bs[0] = nil
	if c.Builders()[0] == nil {
		t.Error("Builders() exposes internal slice")
	}
}

func TestNewModuleCollection_Order(t *testing.T) {
	ctx, err := NewContext(validInput(), testCatalog(t))
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewModuleCollection(ctx, DefaultRenderer())
	if err != nil {
		t.Fatalf("NewModuleCollection() error: %v", err)
	}

	var names []string
	for _, b := range c.Builders() {
		names = append(names, b.Name())
	}
	if diff := cmp.Diff([]string{"dirs", "info", "module", "license"}, names); diff != "" {
		t.Errorf("builder order mismatch (-want +got):\n%s", diff)
	}
}

func TestReport_NoErrors(t *testing.T) {
	r := &Report{Outcomes: []Outcome{{Builder: "a"}, {Builder: "b"}}}
	if r.Err() != nil {
		t.Errorf("Err() = %v, want nil", r.Err())
	}
	if len(r.Failed()) != 0 {
		t.Errorf("Failed() = %v, want empty", r.Failed())
	}
}
