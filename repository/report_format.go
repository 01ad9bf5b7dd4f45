package repository

import "path/filepath"

const (
	ReportFilePrefix    = "heckler_"
	ReportFileExtension = ".yaml"

	ReportDirMode  = 0o750
	ReportFileMode = 0o640
)

// ReportFileName returns the file name a report for version is stored under.
func ReportFileName(version string) string {
	return ReportFilePrefix + version + ReportFileExtension
}

// ReportFilePath returns <reportDir>/<host>/heckler_<version>.yaml.
func ReportFilePath(reportDir string, host string, version string) string {
	return filepath.Join(reportDir, host, ReportFileName(version))
}
