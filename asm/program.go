// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"

	"github.com/ezrec/mipsasm/isa"
)

// Instruction is a single assembled source line.
type Instruction struct {
	LineNo  int      // Source line number.
	Address uint32   // Word address.
	Tokens  []string // Source tokens, including any label.
	Word    isa.Word // Encoded instruction.
}

// Program is the output of the assembler.
type Program struct {
	Instructions []Instruction
	Symbols      *Symbols
}

// Words iterates over the (address, word) pairs of the program.
func (prog *Program) Words() iter.Seq2[uint32, isa.Word] {
	return func(yield func(address uint32, word isa.Word) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Address, inst.Word) {
				return
			}
		}
	}
}

// Binary returns the instruction words in address order.
func (prog *Program) Binary() (bins []uint32) {
	for _, word := range prog.Words() {
		bins = append(bins, uint32(word))
	}

	return
}
