/*
Copyright © 2026 mayapy-launcher authors
SPDX-License-Identifier: MIT
*/

package fspath

import (
	"fmt"
	"iter"
	"path/filepath"
)

// Ancestors returns a sequence of directories starting at the resolved
// start path and walking upward through its parents, inclusive of the start
// path itself. The sequence is finite: it terminates once a directory is its
// own parent (the filesystem root, "/" on unix or a drive root on windows).
// The returned sequence can be ranged over multiple times; each iteration
// starts a fresh walk.
func Ancestors(start string) (iter.Seq[string], error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start path %q: %w", start, err)
	}

	return func(yield func(string) bool) {
		dir := abs
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}, nil
}
