package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// IsPathUnderRoot reports whether candidate stays below root once symlinks
// in either path are followed.
func IsPathUnderRoot(root string, candidate string) bool {
	rootResolved, err := resolvePathWithSymlinks(root)
	if err != nil {
		return false
	}
	candidateResolved, err := resolvePathWithSymlinks(candidate)
	if err != nil {
		return false
	}
	return isPathUnderRootLexical(rootResolved, candidateResolved)
}

// EnsureDir creates dir and any missing parents, then applies perm to every
// level this call created so the result does not depend on the umask.
// Levels that already exist keep their mode.
func EnsureDir(dir string, perm fs.FileMode) error {
	cleaned := filepath.Clean(dir)

	var missing []string
	for current := cleaned; ; {
		info, err := os.Stat(current)
		if err == nil {
			if !info.IsDir() {
				return &fs.PathError{Op: "mkdir", Path: current, Err: syscall.ENOTDIR}
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		missing = append(missing, current)

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	if len(missing) == 0 {
		return nil
	}

	if err := os.MkdirAll(cleaned, perm); err != nil {
		return err
	}
	for idx := len(missing) - 1; idx >= 0; idx-- {
		if err := os.Chmod(missing[idx], perm); err != nil {
			return err
		}
	}
	return nil
}

// IsSinglePathSegment reports whether name can be used as one directory or
// file name below a root without traversing.
func IsSinglePathSegment(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	return filepath.VolumeName(name) == ""
}

func isPathUnderRootLexical(root string, candidate string) bool {
	rootClean := filepath.Clean(root)
	candidateClean := filepath.Clean(candidate)

	relPath, err := filepath.Rel(rootClean, candidateClean)
	if err != nil {
		return false
	}
	if relPath == ".." {
		return false
	}
	if strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}

// resolvePathWithSymlinks evaluates the existing prefix of path and appends
// the missing suffix lexically, so report paths that are about to be created
// can be checked against the root.
func resolvePathWithSymlinks(path string) (string, error) {
	cleaned := filepath.Clean(path)
	if cleaned == "." {
		return cleaned, nil
	}

	volume := filepath.VolumeName(cleaned)
	rest := strings.TrimPrefix(cleaned, volume)
	sep := string(filepath.Separator)

	current := ""
	switch {
	case strings.HasPrefix(rest, sep):
		current = volume + sep
		rest = strings.TrimPrefix(rest, sep)
	case volume != "":
		current = volume
	}

	parts := strings.FieldsFunc(rest, func(r rune) bool {
		return r == rune(filepath.Separator)
	})
	if len(parts) == 0 {
		if current == "" {
			return cleaned, nil
		}
		return filepath.Clean(current), nil
	}

	for idx, part := range parts {
		next := filepath.Join(current, part)

		info, err := os.Lstat(next)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				if idx < len(parts)-1 {
					next = filepath.Join(next, filepath.Join(parts[idx+1:]...))
				}
				return filepath.Clean(next), nil
			}
			return "", err
		}

		if info.Mode()&os.ModeSymlink != 0 {
			resolvedLink, err := filepath.EvalSymlinks(next)
			if err != nil {
				return "", err
			}
			current = resolvedLink
			continue
		}

		current = next
	}

	if current == "" {
		return cleaned, nil
	}
	return filepath.Clean(current), nil
}
