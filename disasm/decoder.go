// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package disasm reconstructs assembly text from instruction words.
//
// Decoding never recovers label names: branch displacements and jump
// targets are rendered as raw hexadecimal values.
package disasm

import (
	"fmt"

	"github.com/ezrec/mipsasm/isa"
	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

// ErrWord attaches the undecodable word, and its address, to an error.
type ErrWord struct {
	Address uint32
	Word    isa.Word
	Err     error
}

func (err *ErrWord) Error() string {
	return f("address 0x%04x word %08x %v", err.Address, uint32(err.Word), err.Err)
}

func (err *ErrWord) Unwrap() error {
	return err.Err
}

// Decoder turns words back into mnemonics and operand text.
type Decoder struct {
	Table *isa.Table // Opcode table used for dispatch.
}

// Decode selects the descriptor for a word, dispatching on funct for the
// zero opcode, then renders its operands according to the format.
func (dec *Decoder) Decode(word isa.Word) (mnemonic string, operands string, err error) {
	desc, ok := dec.Table.Decode(word)
	if !ok {
		err = &ErrWord{Word: word, Err: isa.ErrUnsupportedOpcode}
		return
	}

	mnemonic = desc.Mnemonic

	rs, rt, rd := word.Rs(), word.Rt(), word.Rd()
	imm := word.Immediate()

	switch desc.Format {
	case isa.FORMAT_R:
		switch {
		case desc.Shift:
			operands = fmt.Sprintf("%v, %v, %d", rd, rt, word.Shamt())
		case desc.IsJumpRegister():
			operands = rs.String()
		default:
			operands = fmt.Sprintf("%v, %v, %v", rd, rs, rt)
		}
	case isa.FORMAT_I:
		switch {
		case desc.IsBranch():
			operands = fmt.Sprintf("%v, %v, %#x", rs, rt, imm)
		case desc.IsLoadUpper():
			operands = fmt.Sprintf("%v, %#x", rt, imm)
		case desc.IsImmediateOp():
			operands = fmt.Sprintf("%v, %v, %#x", rt, rs, imm)
		default:
			operands = fmt.Sprintf("%v, %#x(%v)", rt, imm, rs)
		}
	case isa.FORMAT_J:
		operands = fmt.Sprintf("%#x", word.Target())
	}

	return
}

// Text decodes a word into a single line of assembly.
func (dec *Decoder) Text(word isa.Word) (text string, err error) {
	mnemonic, operands, err := dec.Decode(word)
	if err != nil {
		return
	}

	text = mnemonic
	if len(operands) != 0 {
		text += " " + operands
	}

	return
}
