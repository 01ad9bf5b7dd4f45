package repository

import (
	"path/filepath"
	"testing"
)

func TestReportFilePath(t *testing.T) {
	t.Parallel()

	got := ReportFilePath("/var/lib/puppet/reports", "web01.example.com", "abc123")
	want := filepath.Join("/var/lib/puppet/reports", "web01.example.com", "heckler_abc123.yaml")
	if got != want {
		t.Fatalf("ReportFilePath() = %q, want %q", got, want)
	}
}

func TestReportFileName(t *testing.T) {
	t.Parallel()

	if got, want := ReportFileName("0f1e2d3c"), "heckler_0f1e2d3c.yaml"; got != want {
		t.Fatalf("ReportFileName() = %q, want %q", got, want)
	}
}
