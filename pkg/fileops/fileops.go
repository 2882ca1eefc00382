// Package fileops provides file reading utilities for the numbered-line file view.
package fileops

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/joe/list-files/pkg/filesystem"
)

// Exported constants.
const (
	// MaxLineBytes caps a single line; longer lines fail the read rather
	// than exhausting memory on binary input
	MaxLineBytes = 1024 * 1024
)

// ReadNumbered reads the file at path and returns its contents with each
// line prefixed by a zero-padded line number ("001. ..."). Bytes that are not
// valid UTF-8 are passed through untouched rather than failing the read.
func ReadNumbered(fsys filesystem.FileSystem, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = file.Close()
	}()

	var b strings.Builder
	if err := WriteNumbered(&b, file); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return b.String(), nil
}

// WriteNumbered copies r to w line by line, prefixing each line with a
// zero-padded number and stripping trailing whitespace.
func WriteNumbered(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := strings.TrimRight(scanner.Text(), " \t\r")
		if _, err := fmt.Fprintf(w, "%03d. %s\n", lineNo, line); err != nil {
			return fmt.Errorf("failed to write line %d: %w", lineNo, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan input: %w", err)
	}

	return nil
}
