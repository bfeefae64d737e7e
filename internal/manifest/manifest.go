// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest reads plain-text manifests: one relative file name per
// line, no comments. Lines are streamed so callers can act on each entry
// before the whole file has been read.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pdiddy/mets2rdf/pkg/types"
)

// maxLineSize bounds a single manifest line.
const maxLineSize = 1 << 20

// Open opens the manifest at path. The returned error wraps the os error,
// so errors.Is(err, fs.ErrNotExist) holds for a missing file.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest %s: %w", path, err)
	}
	return f, nil
}

// Each calls fn for every line of r in order, with trailing whitespace
// (including the line terminator) removed. Leading whitespace is kept.
// Lines that are empty after stripping are passed through; skipping them
// is the caller's decision. lineNo is 1-based. Each stops at the first
// error from fn or from reading.
func Each(r io.Reader, fn func(lineNo int, ref types.FileReference) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if err := fn(n, types.FileReference(line)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading manifest line %d: %w", n+1, err)
	}
	return nil
}
