package report

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/crmarques/heckler-report/faults"
)

func TestDecodeRejectsInvalidShapes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		payload string
	}{
		{name: "empty", payload: ""},
		{name: "whitespace", payload: "  \n\t"},
		{name: "scalar root", payload: "just a string"},
		{name: "sequence root", payload: "- a\n- b\n"},
		{name: "invalid yaml", payload: "logs: [unterminated"},
		{name: "logs mapping", payload: "logs:\n  source: Puppet\n"},
		{name: "statuses sequence", payload: "resource_statuses:\n  - File[/tmp]\n"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(testCase.payload))
			assertCategory(t, err, faults.ValidationError)
		})
	}
}

func TestDecodeAcceptsNullCollections(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, "logs: ~\nresource_statuses: ~\nconfiguration_version: abc\n")
	if len(r.Logs()) != 0 || len(r.ResourceStatuses()) != 0 {
		t.Fatal("expected null collections to read as empty")
	}
}

func TestConfigurationVersion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		payload string
		want    string
		wantErr bool
	}{
		{name: "commit hash", payload: "configuration_version: abc123\n", want: "abc123"},
		{name: "quoted digits", payload: "configuration_version: \"12345\"\n", want: "12345"},
		{name: "json string", payload: `{"configuration_version": "deadbeef"}`, want: "deadbeef"},
		{name: "missing", payload: "host: web01\n", wantErr: true},
		{name: "empty string", payload: "configuration_version: \"\"\n", wantErr: true},
		{name: "integer", payload: "configuration_version: 1712345678\n", wantErr: true},
		{name: "null", payload: "configuration_version: ~\n", wantErr: true},
		{name: "mapping", payload: "configuration_version:\n  sha: abc\n", wantErr: true},
		{name: "sequence", payload: "configuration_version: [abc]\n", wantErr: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := mustDecode(t, testCase.payload).ConfigurationVersion()
			if testCase.wantErr {
				assertCategory(t, err, faults.InvalidVersionError)
				return
			}
			if err != nil {
				t.Fatalf("ConfigurationVersion returned error: %v", err)
			}
			if got != testCase.want {
				t.Fatalf("ConfigurationVersion() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	t.Parallel()

	if got := mustDecode(t, sampleReportYAML).Host(); got != "web01.example.com" {
		t.Fatalf("Host() = %q, want web01.example.com", got)
	}
	if got := mustDecode(t, "configuration_version: abc\n").Host(); got != "" {
		t.Fatalf("Host() = %q, want empty", got)
	}
}

func TestLogsTypedView(t *testing.T) {
	t.Parallel()

	logs := mustDecode(t, sampleReportYAML).Logs()
	if len(logs) != 4 {
		t.Fatalf("expected 4 logs, got %d", len(logs))
	}
	first := logs[0]
	if first.Source != "/Stage[main]/Motd/Notify[hello]/message" || first.Level != "notice" {
		t.Fatalf("unexpected first log %+v", first)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{sampleReportYAML, sampleReportJSON} {
		filtered := Filter(mustDecode(t, payload)).Report

		encoded, err := filtered.Encode()
		if err != nil {
			t.Fatalf("Encode returned error: %v", err)
		}

		decoded := mustDecode(t, string(encoded))
		if !reflect.DeepEqual(mustValue(t, decoded), mustValue(t, filtered)) {
			t.Fatalf("round trip changed report:\n%s", encoded)
		}
		if !reflect.DeepEqual(statusKeys(decoded), statusKeys(filtered)) {
			t.Fatalf("round trip changed resource order: %v vs %v", statusKeys(decoded), statusKeys(filtered))
		}
	}
}

func TestEncodeRendersJSONAsBlockYAML(t *testing.T) {
	t.Parallel()

	encoded, err := mustDecode(t, sampleReportJSON).Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if strings.Contains(string(encoded), "{") {
		t.Fatalf("expected block style output, got:\n%s", encoded)
	}
}

func TestEncodePreservesTags(t *testing.T) {
	t.Parallel()

	payload := "--- !ruby/object:Puppet::Transaction::Report\nhost: web01\nconfiguration_version: abc123\n"
	encoded, err := mustDecode(t, payload).Encode()
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !strings.Contains(string(encoded), "!ruby/object:Puppet::Transaction::Report") {
		t.Fatalf("expected ruby object tag to survive encode, got:\n%s", encoded)
	}
}

func TestCloneKeepsAliasesConsistent(t *testing.T) {
	t.Parallel()

	r := mustDecode(t, `
defaults: &defaults
  events: []
resource_statuses:
  Bar[baz]: *defaults
`)
	clone := r.Clone()
	if !reflect.DeepEqual(mustValue(t, r), mustValue(t, clone)) {
		t.Fatal("expected clone to decode to the same value")
	}
	statuses := clone.ResourceStatuses()
	if len(statuses) != 1 || statuses[0].Resource != "Bar[baz]" {
		t.Fatalf("unexpected cloned statuses %+v", statuses)
	}
}

func assertCategory(t *testing.T, err error, category faults.ErrorCategory) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %q error, got nil", category)
	}
	var typed *faults.TypedError
	if !errors.As(err, &typed) {
		t.Fatalf("expected typed error, got %T", err)
	}
	if typed.Category != category {
		t.Fatalf("expected %q category, got %q", category, typed.Category)
	}
}
