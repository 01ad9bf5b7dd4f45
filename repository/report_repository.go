package repository

import (
	"context"

	"github.com/crmarques/heckler-report/report"
)

// ReportStore persists filtered reports, one file per host and
// configuration version.
type ReportStore interface {
	Save(ctx context.Context, host string, value *report.Report) (string, error)
	Get(ctx context.Context, host string, version string) (*report.Report, error)
}

// VersionVerifier confirms that a configuration version names a real
// revision of the configuration code.
type VersionVerifier interface {
	Verify(ctx context.Context, version string) error
}
