package naming

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTargetExists is returned when the rename target is already present.
// The file is skipped, never overwritten or auto-suffixed.
var ErrTargetExists = errors.New("target file already exists")

// NewName returns the tagged filename for filename (basename with
// extension): "<stem>_[tag1][tag2]...<ext>". An empty TagSet returns the
// filename unchanged; callers treat that as a no-op, not a failure.
func NewName(filename string, tags TagSet) string {
	ts := tags.Tags()
	if len(ts) == 0 {
		return filename
	}
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	return stem + "_" + strings.Join(ts, "") + ext
}

// Rename renames oldPath to newName within the same directory and returns
// the new path. Renaming a file to its own name is a no-op. Unless force is
// set, an existing target fails with [ErrTargetExists] before anything is
// touched; other failures surface the underlying filesystem error. No retry:
// every failure here is non-transient.
func Rename(oldPath, newName string, force bool) (string, error) {
	newPath := filepath.Join(filepath.Dir(oldPath), newName)
	if newPath == oldPath {
		return newPath, nil
	}

	if !force {
		if _, err := os.Lstat(newPath); err == nil {
			return "", fmt.Errorf("%q: %w", newName, ErrTargetExists)
		}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("rename %q: %w", oldPath, err)
	}
	return newPath, nil
}
