// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package internal

import (
	"bufio"
	"io"
	"iter"
)

// Lines returns an iterator over the lines of input, paired with their
// 1-based line numbers. Scanning stops at the first read error, which is
// then reported by the returned function.
func Lines(input io.Reader) (seq iter.Seq2[int, string], errf func() error) {
	scanner := bufio.NewScanner(input)

	seq = func(yield func(int, string) bool) {
		lineno := 0
		for scanner.Scan() {
			lineno += 1
			if !yield(lineno, scanner.Text()) {
				return // Stop if the consumer stops
			}
		}
	}

	errf = scanner.Err

	return
}
