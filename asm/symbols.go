// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"maps"

	"github.com/ezrec/mipsasm/isa"
)

// Symbols maps label names to instruction addresses.
// It is read-only once BuildSymbols returns it.
type Symbols struct {
	label map[string]uint32
}

// Lookup returns the address bound to a label.
func (sym *Symbols) Lookup(name string) (address uint32, ok bool) {
	if sym == nil {
		return
	}
	address, ok = sym.label[name]
	return
}

// Len returns the number of labels.
func (sym *Symbols) Len() int {
	if sym == nil {
		return 0
	}
	return len(sym.label)
}

// All iterates over the label bindings, in no particular order.
func (sym *Symbols) All() iter.Seq2[string, uint32] {
	if sym == nil {
		return func(func(string, uint32) bool) {}
	}
	return maps.All(sym.label)
}

// Line is a tokenized, non-blank source line.
type Line struct {
	LineNo int
	Text   string
	Tokens []string
}

// BuildSymbols assigns addresses to the instruction lines, starting at zero,
// and binds each label to the address of the instruction on or after it.
// A line holding only a label does not advance the address.
func BuildSymbols(lines []Line) (sym *Symbols, err error) {
	table := &Symbols{
		label: make(map[string]uint32, 16),
	}

	var address uint32
	for _, line := range lines {
		label, words := SplitLabel(line.Tokens)
		if len(label) != 0 {
			_, dup := table.label[label]
			if dup {
				err = &ErrSyntax{
					LineNo: line.LineNo,
					Line:   line.Text,
					Err: &ErrAddress{
						Address: address,
						Err:     &isa.ErrToken{Token: label, Err: isa.ErrDuplicateLabel},
					},
				}
				return
			}
			table.label[label] = address
		}

		if len(words) > 0 {
			address++
		}
	}

	sym = table
	return
}
