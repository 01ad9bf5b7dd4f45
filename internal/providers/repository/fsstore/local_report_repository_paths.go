package fsstore

import (
	"fmt"
	"path/filepath"

	"github.com/crmarques/heckler-report/internal/providers/shared/fsutil"
	"github.com/crmarques/heckler-report/repository"
)

func (r *LocalReportRepository) hostDirPath(host string) (string, error) {
	if r.baseDir == "" {
		return "", validationError("report directory must not be empty", nil)
	}
	if !fsutil.IsSinglePathSegment(host) {
		return "", validationError(fmt.Sprintf("invalid host %q", host), nil)
	}

	dirPath := filepath.Join(r.baseDir, host)
	if !fsutil.IsPathUnderRoot(r.baseDir, dirPath) {
		return "", validationError("host directory escapes report directory", nil)
	}
	return dirPath, nil
}

func (r *LocalReportRepository) reportFilePath(host string, version string) (string, error) {
	name := repository.ReportFileName(version)
	if !fsutil.IsSinglePathSegment(name) {
		return "", invalidVersionError(fmt.Sprintf("configuration_version %q is not a valid file name", version))
	}

	dirPath, err := r.hostDirPath(host)
	if err != nil {
		return "", err
	}

	filePath := filepath.Join(dirPath, name)
	if !fsutil.IsPathUnderRoot(r.baseDir, filePath) {
		return "", validationError("report path escapes report directory", nil)
	}
	return filePath, nil
}
