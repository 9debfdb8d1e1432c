/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package pinfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Options for configuring the Reader.
type Option func(*Reader)

// Reader reads small pin and marker files with customizable settings.
type Reader struct {
	maxSize      int
	skipComments bool
	kvDelimiter  string
}

// WithMaxSize sets the maximum size (in bytes) of a file to be read.
// Default is 64KB; pin files are one-liners and a larger file is almost
// certainly not a pin file.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// WithSkipComments sets whether to skip comment lines ("#" prefix).
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(r *Reader) {
		r.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used by GetMap.
// Default is "=".
func WithKVDelimiter(delim string) Option {
	return func(r *Reader) {
		r.kvDelimiter = delim
	}
}

// NewReader creates a new pin-file reader with the provided options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxSize:      64 << 10,
		skipComments: true,
		kvDelimiter:  "=",
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetLines reads the file at the given path and returns its non-empty,
// non-comment lines, whitespace-trimmed. An error is returned if the file
// cannot be read, exceeds the maximum size, or is not valid UTF-8.
func (r *Reader) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if len(b) > r.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, r.maxSize)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	lines := strings.Split(string(b), "\n")

	result := make([]string, 0, len(lines))
	for _, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		if r.skipComments && strings.HasPrefix(clean, "#") {
			continue
		}
		result = append(result, clean)
	}

	return result, nil
}

// FirstLine returns the first non-empty, non-comment line of the file.
// An error is returned when the file has no usable content, since a pin
// file without a pin is malformed.
func (r *Reader) FirstLine(path string) (string, error) {
	lines, err := r.GetLines(path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("file %q has no usable content", path)
	}
	return lines[0], nil
}

// GetMap reads the file at the given path and parses its lines into
// key-value pairs split on the configured delimiter. Lines without the
// delimiter are skipped. Keys and values are whitespace-trimmed, so
// "version = 3.9.7" parses the way pyvenv.cfg writes it.
func (r *Reader) GetMap(path string) (map[string]string, error) {
	lines, err := r.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		kv := strings.SplitN(line, r.kvDelimiter, 2)
		if len(kv) != 2 {
			continue
		}
		result[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return result, nil
}
