// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"slices"
)

// Table is an immutable opcode table.
type Table struct {
	opcodes  []Descriptor
	mnemonic map[string]int // Mnemonic to opcodes index.
	opcode   map[uint8]int  // Non-zero opcode field to opcodes index.
	funct    map[uint8]int  // Funct field, under the zero opcode, to opcodes index.
}

// NewTable validates the descriptors and builds the forward and reverse
// lookup maps. Definition order is preserved by All.
func NewTable(descs ...Descriptor) (table *Table, err error) {
	tbl := &Table{
		opcodes:  make([]Descriptor, 0, len(descs)),
		mnemonic: make(map[string]int, len(descs)),
		opcode:   make(map[uint8]int),
		funct:    make(map[uint8]int),
	}

	for _, desc := range descs {
		err = desc.validate()
		if err != nil {
			return
		}

		_, ok := tbl.mnemonic[desc.Mnemonic]
		if ok {
			err = &ErrToken{Token: desc.Mnemonic, Err: ErrOpcodeDuplicate}
			return
		}

		reverse, key := tbl.opcode, desc.Opcode
		if desc.Opcode == 0 {
			reverse, key = tbl.funct, desc.Funct
		}
		_, ok = reverse[key]
		if ok {
			err = &ErrToken{Token: desc.Mnemonic, Err: ErrOpcodeAmbiguous}
			return
		}

		desc.Fixed = desc.fixedBits()

		index := len(tbl.opcodes)
		tbl.opcodes = append(tbl.opcodes, desc)
		tbl.mnemonic[desc.Mnemonic] = index
		reverse[key] = index
	}

	table = tbl
	return
}

// Len returns the number of opcodes in the table.
func (tbl *Table) Len() int {
	return len(tbl.opcodes)
}

// Lookup finds a descriptor by exact mnemonic.
func (tbl *Table) Lookup(mnemonic string) (desc Descriptor, ok bool) {
	index, ok := tbl.mnemonic[mnemonic]
	if !ok {
		return
	}

	desc = tbl.opcodes[index]
	return
}

// Decode finds the descriptor selected by a word. A zero opcode field
// dispatches on the funct field, anything else on the opcode field.
func (tbl *Table) Decode(word Word) (desc Descriptor, ok bool) {
	var index int
	if op := word.Opcode(); op == 0 {
		index, ok = tbl.funct[word.Funct()]
	} else {
		index, ok = tbl.opcode[op]
	}
	if !ok {
		return
	}

	desc = tbl.opcodes[index]
	return
}

// All iterates over the descriptors in definition order.
func (tbl *Table) All() iter.Seq[Descriptor] {
	return slices.Values(tbl.opcodes)
}
