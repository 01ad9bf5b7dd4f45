// Package git verifies configuration versions against a local checkout of
// the configuration code repository.
package git

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/crmarques/heckler-report/faults"
	"github.com/crmarques/heckler-report/repository"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var _ repository.VersionVerifier = (*CommitVerifier)(nil)

// Abbreviated hashes shorter than four characters are ambiguous in any
// non-trivial repository.
var commitHashPattern = regexp.MustCompile(`^[0-9a-fA-F]{4,40}$`)

type CommitVerifier struct {
	baseDir string
}

func NewCommitVerifier(baseDir string) *CommitVerifier {
	return &CommitVerifier{baseDir: strings.TrimSpace(baseDir)}
}

func (v *CommitVerifier) BaseDir() string {
	return v.baseDir
}

// Verify resolves version as a full or abbreviated commit hash.
func (v *CommitVerifier) Verify(ctx context.Context, version string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !commitHashPattern.MatchString(version) {
		return invalidVersionError(fmt.Sprintf("configuration_version %q is not a commit hash", version), nil)
	}

	repo, err := v.open()
	if err != nil {
		return err
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(strings.ToLower(version)))
	if err != nil {
		return invalidVersionError(fmt.Sprintf("configuration_version %q does not resolve in %s", version, v.baseDir), err)
	}
	if _, err := repo.CommitObject(*hash); err != nil {
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			return invalidVersionError(fmt.Sprintf("configuration_version %q is not a commit in %s", version, v.baseDir), err)
		}
		return internalError("failed to read commit object", err)
	}
	return nil
}

func (v *CommitVerifier) open() (*gogit.Repository, error) {
	if v.baseDir == "" {
		return nil, internalError("code repository base directory is not configured", nil)
	}

	repo, err := gogit.PlainOpen(v.baseDir)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, internalError(fmt.Sprintf("code repository %s is not a git repository", v.baseDir), err)
		}
		return nil, internalError("failed to open code repository", err)
	}
	return repo, nil
}

func invalidVersionError(message string, cause error) error {
	return faults.NewTypedError(faults.InvalidVersionError, message, cause)
}

func internalError(message string, cause error) error {
	return faults.NewTypedError(faults.InternalError, message, cause)
}
