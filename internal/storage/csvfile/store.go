// Package csvfile persists a library to a single CSV file (optionally
// gzip- or zstd-compressed by extension) and watches it for external
// changes. Saves are atomic: content is written to a temp file in the
// same directory and renamed over the target.
package csvfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lcms/internal/library"
)

// Load reads the library file at path into a fresh library rooted at
// rootName. A missing file is not an error: it yields an empty
// library, so first runs work without setup. The import report carries
// per-reason skip counts for rows a hand-edited file may contain.
func Load(path, rootName string) (*library.Library, library.ImportReport, error) {
	lib := library.New(rootName)

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return lib, library.ImportReport{}, nil
	}
	if err != nil {
		return nil, library.ImportReport{}, fmt.Errorf("failed to open library file: %w", err)
	}
	defer f.Close()

	r, err := newDecompressionReader(f, path)
	if err != nil {
		return nil, library.ImportReport{}, fmt.Errorf("failed to read library file: %w", err)
	}
	defer r.Close()

	report, err := lib.Import(r)
	if err != nil {
		return nil, report, fmt.Errorf("failed to import library file: %w", err)
	}
	return lib, report, nil
}

// Save writes the library to path atomically, creating parent
// directories as needed. The previous file content survives any
// failure before the final rename.
func Save(path string, lib *library.Library) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".library-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w, err := newCompressionWriter(tmp, path)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write library file: %w", err)
	}
	if _, err := lib.Export(w); err != nil {
		w.Close()
		tmp.Close()
		return fmt.Errorf("failed to export library: %w", err)
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush library file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set library file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace library file: %w", err)
	}
	return nil
}

// Exists reports whether a library file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens an arbitrary CSV file for reading, layering decompression
// by extension the same way Load does. Closing the returned reader
// closes the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := newDecompressionReader(f, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &fileReadCloser{ReadCloser: r, file: f}, nil
}

// fileReadCloser closes the decompression layer and the file beneath it.
type fileReadCloser struct {
	io.ReadCloser
	file *os.File
}

func (frc *fileReadCloser) Close() error {
	err := frc.ReadCloser.Close()
	if cerr := frc.file.Close(); err == nil {
		err = cerr
	}
	return err
}
