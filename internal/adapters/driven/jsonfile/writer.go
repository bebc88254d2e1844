// Package jsonfile serialises documents as compact JSON files.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driven"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Encode returns the compact JSON form of doc with no trailing newline.
// Output for a given document is always byte-identical.
func Encode(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	if doc.Points == nil {
		// The consumer expects an array, never null.
		doc = &domain.Document{Points: []domain.Point{}, Bounds: doc.Bounds}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Writer writes documents to a filesystem.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer backed by fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Write encodes doc and replaces the file at path.
// The document is written to a temporary file beside path and renamed into
// place, so a failed run never leaves a truncated document behind.
func (w *Writer) Write(ctx context.Context, path string, doc *domain.Document) (int64, error) {
	data, err := Encode(doc)
	if err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = w.fs.Remove(tmpName)
		return 0, fmt.Errorf("writing %s: %w", tmpName, err)
	}

	if err := w.fs.Rename(tmpName, path); err != nil {
		_ = w.fs.Remove(tmpName)
		return 0, fmt.Errorf("replacing %s: %w", path, err)
	}

	logger.Debug("Wrote document", "path", path, "bytes", len(data))
	return int64(len(data)), nil
}
