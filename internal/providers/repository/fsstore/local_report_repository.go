package fsstore

import (
	"path/filepath"

	"github.com/crmarques/heckler-report/faults"
	"github.com/crmarques/heckler-report/repository"
)

var _ repository.ReportStore = (*LocalReportRepository)(nil)

// LocalReportRepository stores filtered reports below a report root as
// <root>/<host>/heckler_<configuration_version>.yaml.
type LocalReportRepository struct {
	baseDir  string
	verifier repository.VersionVerifier
}

type Option func(*LocalReportRepository)

// WithVersionVerifier makes Save reject configuration versions the
// verifier cannot resolve.
func WithVersionVerifier(verifier repository.VersionVerifier) Option {
	return func(r *LocalReportRepository) { r.verifier = verifier }
}

func NewLocalReportRepository(baseDir string, opts ...Option) *LocalReportRepository {
	cleaned := ""
	if baseDir != "" {
		cleaned = filepath.Clean(baseDir)
	}

	r := &LocalReportRepository{baseDir: cleaned}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *LocalReportRepository) BaseDir() string {
	return r.baseDir
}

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func notFoundError(message string) error {
	return faults.NewTypedError(faults.NotFoundError, message, nil)
}

func invalidVersionError(message string) error {
	return faults.NewTypedError(faults.InvalidVersionError, message, nil)
}

func writeFailureError(message string, cause error) error {
	return faults.NewTypedError(faults.WriteFailureError, message, cause)
}

func internalError(message string, cause error) error {
	return faults.NewTypedError(faults.InternalError, message, cause)
}
