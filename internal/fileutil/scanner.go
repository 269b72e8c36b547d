package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/srcdump/internal/models"
)

// SwiftSuffix is the file name suffix selected for dumping.
const SwiftSuffix = ".swift"

// MatchFunc is called once per matched file with its root-relative path.
// Returning a non-nil error stops the walk.
type MatchFunc func(relPath string) error

// ValidateRoot checks that root exists and is a directory.
func ValidateRoot(root string) error {
	if root == "" {
		return fmt.Errorf("root directory is empty")
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}

	return nil
}

// HasSuffix reports whether the file name (never the full path) ends with
// suffix. The comparison is case-sensitive.
func HasSuffix(name, suffix string) bool {
	return strings.HasSuffix(filepath.Base(name), suffix)
}

// WalkSuffix walks root depth-first in lexical order and calls fn for every
// non-directory entry whose name ends with suffix.
//
// A directory that cannot be listed stops the walk with a *models.WalkError.
// Errors returned by fn are passed through unchanged. Symbolic links are not
// followed; a link that resolves to a directory is skipped.
func WalkSuffix(root, suffix string, fn MatchFunc) error {
	if err := ValidateRoot(root); err != nil {
		return err
	}

	// WalkDir does not descend into a root that is itself a symlink
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Report the path under root as the caller spelled it
			if rel, relErr := filepath.Rel(walkRoot, path); relErr == nil {
				path = filepath.Join(root, rel)
			}
			return &models.WalkError{Path: path, Err: err}
		}

		if d.IsDir() {
			return nil
		}

		if !HasSuffix(d.Name(), suffix) {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			// A dangling link falls through and fails on read.
			if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
				return nil
			}
		}

		relPath, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return fmt.Errorf("failed to resolve relative path for %s: %w", path, err)
		}

		return fn(relPath)
	})
}
