// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	ownerReadWrite = 0o600
	executableBits = 0o111
)

// Options controls how WriteAtomic finishes the output file.
type Options struct {
	// PreserveTimestamps copies the source modification time to the output.
	PreserveTimestamps bool
}

// TransformFunc reads the source and writes the output. It reports whether the
// output should be executable.
type TransformFunc func(src io.Reader, dst io.Writer, srcExecutable bool) (executable bool, err error)

// WriteAtomic runs fn from filename into a temporary file next to outPath and renames
// it into place once fn and all file operations succeed. The temporary file is removed
// on any failure. It returns the size of the written output.
func WriteAtomic(filename, outPath string, opts Options, fn TransformFunc) (size int64, err error) {
	info, err := os.Stat(filename)
	if err != nil {
		return 0, fmt.Errorf("getting file info for %q: %w", filename, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(outPath), ".tmp-*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}

	tmpName := tmpFile.Name()

	defer func() {
		tmpFile.Close() //nolint:errcheck,gosec // best-effort cleanup

		if err != nil {
			os.Remove(tmpName) //nolint:errcheck,gosec // best-effort cleanup
		}
	}()

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	executable, err := fn(inFile, tmpFile, info.Mode()&executableBits != 0)
	if err != nil {
		return 0, err
	}

	perm := os.FileMode(ownerReadWrite)
	if executable {
		perm |= executableBits
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return 0, fmt.Errorf("setting file permissions: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, outPath); err != nil {
		return 0, fmt.Errorf("renaming output file: %w", err)
	}

	if opts.PreserveTimestamps {
		modTime := info.ModTime()

		if err := os.Chtimes(outPath, modTime, modTime); err != nil {
			return 0, fmt.Errorf("preserving timestamps: %w", err)
		}
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", outPath, err)
	}

	return outInfo.Size(), nil
}
