// Package textfile reads newline-delimited label files.
package textfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/custodia-labs/embedmap/internal/core/domain"
	"github.com/custodia-labs/embedmap/internal/core/ports/driven"
	"github.com/custodia-labs/embedmap/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.PromptLoader = (*Loader)(nil)

// MaxLineSize is the longest line the loader accepts.
const MaxLineSize = 1 << 20

// Loader reads one label per line.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader backed by fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load returns every line of the file at path with surrounding whitespace
// and line endings removed. Lines end at \n, \r\n or a lone \r. A final newline does not add an empty label;
// blank lines elsewhere are kept so labels stay aligned with coordinates.
func (l *Loader) Load(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("prompts file not found: %s: %w", path, domain.ErrNotFound)
	}

	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening prompts: %w", err)
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		labels = append(labels, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading prompts %s after line %d: %w", path, len(labels), err)
	}

	logger.Debug("Read prompts", "path", path, "lines", len(labels))
	return labels, nil
}

// scanLines is bufio.ScanLines extended to treat a lone \r as a line break.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		switch {
		case data[i] == '\n':
			return i + 1, data[:i], nil
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// A trailing \r may be the first half of \r\n.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
