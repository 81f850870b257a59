// Package fileutil holds the file modes and write helpers used for every
// file swagsplit produces.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/erraggy/swagsplit/oaserrors"
)

// OwnerReadWrite is the file permission mode for split entity files, bundles
// and exclusion tables, which may contain sensitive API data.
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for output directories.
const ReadableByAll os.FileMode = 0o755

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, ReadableByAll); err != nil {
		return &oaserrors.WriteError{Path: dir, Cause: err}
	}
	return nil
}

// WriteFile writes data to path with OwnerReadWrite, creating the parent
// directory when it does not exist. Failures are returned as
// *oaserrors.WriteError.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, OwnerReadWrite); err != nil {
		return &oaserrors.WriteError{Path: path, Cause: err}
	}
	return nil
}
