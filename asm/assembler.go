// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/mipsasm/internal"
	"github.com/ezrec/mipsasm/isa"
)

// Assembler is a two pass assembler.
type Assembler struct {
	Verbose bool       // If set, logs each assembled instruction.
	Table   *isa.Table // Opcode table used for encoding.

	Symbols *Symbols // Label table from the most recent Parse.
}

// readLines tokenizes the input, keeping only non-blank lines.
func readLines(input io.Reader) (lines []Line, err error) {
	seq, errf := internal.Lines(input)
	for lineno, text := range seq {
		tokens := Tokenize(text)
		if len(tokens) == 0 {
			continue
		}
		lines = append(lines, Line{LineNo: lineno, Text: text, Tokens: tokens})
	}

	err = errf()
	return
}

// Parse assembles an input stream into a Program. The label table is fully
// built before the first instruction is encoded. Any error aborts the run
// and no partial program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Symbols = nil

	lines, err := readLines(input)
	if err != nil {
		return
	}

	symbols, err := BuildSymbols(lines)
	if err != nil {
		return
	}
	asm.Symbols = symbols

	if asm.Verbose {
		for label, address := range symbols.All() {
			logrus.WithField("address", fmt.Sprintf("0x%04x", address)).Infof("label %v", label)
		}
	}

	enc := &Encoder{Table: asm.Table, Symbols: symbols}

	var insts []Instruction
	var address uint32
	for _, line := range lines {
		word, ok, _err := enc.Encode(line.Tokens, address)
		if _err != nil {
			err = &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: _err}
			return
		}
		if !ok {
			continue
		}

		if asm.Verbose {
			logrus.WithFields(logrus.Fields{
				"line":    line.LineNo,
				"address": fmt.Sprintf("0x%04x", address),
				"word":    fmt.Sprintf("%08x", uint32(word)),
			}).Info(line.Text)
		}

		insts = append(insts, Instruction{
			LineNo:  line.LineNo,
			Address: address,
			Tokens:  line.Tokens,
			Word:    word,
		})
		address++
	}

	prog = &Program{
		Instructions: insts,
		Symbols:      symbols,
	}

	return
}
