// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
	"unicode"
)

const (
	COMMENT_MARKER = "#" // Starts a comment running to end of line.
	LABEL_SUFFIX   = ":" // Ends a label token.
)

// Tokenize strips the comment from a line and splits the rest on
// whitespace and commas. Blank lines produce no tokens.
func Tokenize(line string) (tokens []string) {
	text, _, _ := strings.Cut(line, COMMENT_MARKER)
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	tokens = strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	return
}

// IsLabel returns true if the token defines a label.
func IsLabel(token string) bool {
	return len(token) > len(LABEL_SUFFIX) && strings.HasSuffix(token, LABEL_SUFFIX)
}

// SplitLabel separates a leading label definition from the instruction
// tokens. Only the first token may be a label.
func SplitLabel(tokens []string) (label string, words []string) {
	words = tokens
	if len(words) > 0 && IsLabel(words[0]) {
		label = strings.TrimSuffix(words[0], LABEL_SUFFIX)
		words = words[1:]
	}

	return
}
