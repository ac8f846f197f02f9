package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/mipsasm/isa"
)

// tokenLines tokenizes source text, skipping blank lines.
func tokenLines(program ...string) (lines []Line) {
	for n, text := range program {
		tokens := Tokenize(text)
		if len(tokens) == 0 {
			continue
		}
		lines = append(lines, Line{LineNo: n + 1, Text: text, Tokens: tokens})
	}
	return
}

func TestBuildSymbols(t *testing.T) {
	assert := assert.New(t)

	lines := tokenLines(
		"start: add $t0, $t0, $t1", // 0
		"",
		"# comment",
		"middle:",
		"after: sub $t0, $t0, $t1", // 1
		"       beq $t0, $zero, start",
		"end:",
	)

	sym, err := BuildSymbols(lines)
	require.NoError(t, err)
	assert.Equal(4, sym.Len())

	for label, expected := range map[string]uint32{
		"start":  0,
		"middle": 1,
		"after":  1,
		"end":    3,
	} {
		address, ok := sym.Lookup(label)
		assert.True(ok, label)
		assert.Equal(expected, address, label)
	}

	_, ok := sym.Lookup("Start")
	assert.False(ok)

	count := 0
	for range sym.All() {
		count++
	}
	assert.Equal(4, count)
}

func TestBuildSymbols_Duplicate(t *testing.T) {
	assert := assert.New(t)

	lines := tokenLines(
		"foo:",
		"foo:",
		"add $t0, $t0, $t1",
	)

	sym, err := BuildSymbols(lines)
	assert.Nil(sym)
	assert.ErrorIs(err, isa.ErrDuplicateLabel)

	var es *ErrSyntax
	if assert.True(errors.As(err, &es)) {
		assert.Equal(2, es.LineNo)
		assert.Equal("foo:", es.Line)
	}

	var ea *ErrAddress
	if assert.True(errors.As(err, &ea)) {
		assert.Equal(uint32(0), ea.Address)
	}

	var et *isa.ErrToken
	if assert.True(errors.As(err, &et)) {
		assert.Equal("foo", et.Token)
	}
}

func TestSymbols_Nil(t *testing.T) {
	assert := assert.New(t)

	var sym *Symbols
	_, ok := sym.Lookup("x")
	assert.False(ok)
	assert.Equal(0, sym.Len())
	for range sym.All() {
		t.Fatal("nil symbols are empty")
	}
}
