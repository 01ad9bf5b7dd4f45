package fsstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crmarques/heckler-report/internal/providers/shared/fsutil"
	"github.com/crmarques/heckler-report/report"
	"github.com/crmarques/heckler-report/repository"
)

// Save writes value atomically and returns the path of the written file.
// The host directory is created before the configuration version is
// checked, so an invalid version still leaves the directory in place.
func (r *LocalReportRepository) Save(ctx context.Context, host string, value *report.Report) (string, error) {
	if value == nil {
		return "", validationError("report must not be nil", nil)
	}

	dirPath, err := r.hostDirPath(host)
	if err != nil {
		return "", err
	}
	if err := fsutil.EnsureDir(dirPath, repository.ReportDirMode); err != nil {
		return "", writeFailureError(fmt.Sprintf("could not create report directory for %s at %s", host, dirPath), err)
	}

	version, err := value.ConfigurationVersion()
	if err != nil {
		return "", err
	}
	targetPath, err := r.reportFilePath(host, version)
	if err != nil {
		return "", err
	}
	if r.verifier != nil {
		if err := r.verifier.Verify(ctx, version); err != nil {
			return "", err
		}
	}

	encoded, err := value.Encode()
	if err != nil {
		return "", writeFailureError(fmt.Sprintf("could not encode report for %s at %s", host, targetPath), err)
	}
	if err := writeFileAtomic(targetPath, encoded, repository.ReportFileMode); err != nil {
		return "", writeFailureError(fmt.Sprintf("could not write report for %s at %s", host, targetPath), err)
	}

	return targetPath, nil
}

func (r *LocalReportRepository) Get(_ context.Context, host string, version string) (*report.Report, error) {
	if version == "" {
		return nil, invalidVersionError("configuration_version must not be empty")
	}

	targetPath, err := r.reportFilePath(host, version)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, notFoundError(fmt.Sprintf("report for %s at version %s not found", host, version))
		}
		return nil, internalError("failed to read report", err)
	}

	return report.Decode(data)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place. Readers of path observe either the previous file or the
// complete new one.
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".heckler-tmp-*")
	if err != nil {
		return fmt.Errorf("create temporary file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := tempFile.Chmod(mode); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("set report permissions: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("sync temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("finalize temporary file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace report file: %w", err)
	}
	return nil
}
