package report

import (
	"reflect"
	"testing"
)

func TestFilterRetainsOnlyChangedResources(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, sampleReportYAML)
	result := Filter(r)

	if result.Kept != 3 || result.Dropped != 2 {
		t.Fatalf("expected 3 kept and 2 dropped, got kept=%d dropped=%d", result.Kept, result.Dropped)
	}

	got := statusKeys(result.Report)
	want := []string{"File[/etc/motd]", "Notify[hello]", "Service[sshd]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered resources = %v, want %v", got, want)
	}
}

func TestFilterRetentionCases(t *testing.T) {
	t.Parallel()

	result := Filter(mustDecode(t, sampleReportYAML))
	kept := map[string]bool{}
	for _, key := range statusKeys(result.Report) {
		kept[key] = true
	}

	testCases := []struct {
		name     string
		resource string
		want     bool
	}{
		{name: "events without logs", resource: "File[/etc/motd]", want: true},
		{name: "property level log without events", resource: "Notify[hello]", want: true},
		{name: "resource level log without events", resource: "Service[sshd]", want: true},
		{name: "neither events nor logs", resource: "Package[vim]", want: false},
		{name: "non catalog log noise", resource: "Package[curl]", want: false},
	}

	for _, testCase := range testCases {
		if kept[testCase.resource] != testCase.want {
			t.Fatalf("%s: resource %q kept=%t, want %t", testCase.name, testCase.resource, kept[testCase.resource], testCase.want)
		}
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, sampleReportYAML)
	before := statusKeys(r)

	_ = Filter(r)

	if after := statusKeys(r); !reflect.DeepEqual(before, after) {
		t.Fatalf("input report changed: before=%v after=%v", before, after)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	once := Filter(mustDecode(t, sampleReportYAML))
	twice := Filter(once.Report)

	if twice.Dropped != 0 {
		t.Fatalf("expected second pass to drop nothing, dropped %d", twice.Dropped)
	}
	if !reflect.DeepEqual(mustValue(t, once.Report), mustValue(t, twice.Report)) {
		t.Fatal("expected filtering a filtered report to be a no-op")
	}
}

func TestFilterPassesThroughOtherFields(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, sampleReportYAML)
	filtered := Filter(r).Report

	original, ok := mustValue(t, r).(map[string]any)
	if !ok {
		t.Fatal("expected mapping report value")
	}
	got, ok := mustValue(t, filtered).(map[string]any)
	if !ok {
		t.Fatal("expected mapping filtered value")
	}

	for key, value := range original {
		if key == KeyResourceStatuses {
			continue
		}
		if !reflect.DeepEqual(got[key], value) {
			t.Fatalf("field %q changed: got %#v, want %#v", key, got[key], value)
		}
	}
	if len(got) != len(original) {
		t.Fatalf("expected %d top-level fields, got %d", len(original), len(got))
	}
}

func TestFilterWithoutResourceStatuses(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, "configuration_version: abc123\nlogs: []\n")
	result := Filter(r)

	if result.Kept != 0 || result.Dropped != 0 {
		t.Fatalf("expected no counts, got kept=%d dropped=%d", result.Kept, result.Dropped)
	}
	if !reflect.DeepEqual(mustValue(t, r), mustValue(t, result.Report)) {
		t.Fatal("expected report without resource_statuses to pass through")
	}
}

func TestFilterResourceFieldFallsBackToKey(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, `
logs:
  - source: /Stage[main]/Foo/Bar[baz]/ensure
resource_statuses:
  Bar[baz]:
    events: ~
  Bar[qux]:
    title: qux
`)
	got := statusKeys(Filter(r).Report)
	if want := []string{"Bar[baz]"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered resources = %v, want %v", got, want)
	}
}

func TestFilterJSONReport(t *testing.T) {
	t.Parallel()

	result := Filter(mustDecode(t, sampleReportJSON))
	got := statusKeys(result.Report)
	if want := []string{"Exec[migrate]"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("filtered resources = %v, want %v", got, want)
	}
}

func mustDecode(t *testing.T, payload string) *Report {
	t.Helper()

	r, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	return r
}

func mustValue(t *testing.T, r *Report) any {
	t.Helper()

	value, err := r.Value()
	if err != nil {
		t.Fatalf("Value returned error: %v", err)
	}
	return value
}

func statusKeys(r *Report) []string {
	statuses := r.ResourceStatuses()
	keys := make([]string, 0, len(statuses))
	for _, status := range statuses {
		keys = append(keys, status.Key)
	}
	return keys
}

func TestFilterSeesEventsMergedFromAnchors(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, `
templates:
  changed: &changed
    events:
      - property: ensure
        status: success
  unchanged: &unchanged
    events: []
resource_statuses:
  Package[vim]:
    <<: *changed
    resource: Package[vim]
  Package[curl]:
    <<: *unchanged
    resource: Package[curl]
  Package[git]:
    <<: *changed
    resource: Package[git]
    events: []
`)
	result := Filter(r)
	if want := []string{"Package[vim]"}; !reflect.DeepEqual(statusKeys(result.Report), want) {
		t.Fatalf("filtered resources = %v, want %v", statusKeys(result.Report), want)
	}
	if result.Kept != 1 || result.Dropped != 2 {
		t.Fatalf("expected 1 kept and 2 dropped, got kept=%d dropped=%d", result.Kept, result.Dropped)
	}
}
