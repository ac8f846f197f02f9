// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"

	"github.com/ezrec/mipsasm/isa"
)

// Encoder translates tokenized instructions into words.
type Encoder struct {
	Table   *isa.Table // Opcode table.
	Symbols *Symbols   // Completed label table. May be nil.
}

// Encode translates one tokenized line at the given address. A leading label
// is ignored; if nothing follows it, ok is false and no word is produced.
func (enc *Encoder) Encode(tokens []string, address uint32) (word isa.Word, ok bool, err error) {
	_, words := SplitLabel(tokens)
	if len(words) == 0 {
		return
	}

	ok = true

	defer func() {
		if err != nil {
			word = 0
			err = &ErrAddress{Address: address, Err: err}
		}
	}()

	mnemonic, operands := words[0], words[1:]

	desc, found := enc.Table.Lookup(mnemonic)
	if !found {
		err = &isa.ErrToken{Token: mnemonic, Err: isa.ErrUnsupportedOpcode}
		return
	}

	switch desc.Format {
	case isa.FORMAT_R:
		word, err = enc.encodeR(&desc, operands)
	case isa.FORMAT_I:
		word, err = enc.encodeI(&desc, operands, address)
	case isa.FORMAT_J:
		word, err = enc.encodeJ(&desc, operands)
	default:
		err = &isa.ErrToken{Token: mnemonic, Err: isa.ErrUnsupportedOpcode}
	}

	return
}

// registers resolves each token as a register.
func registers(tokens ...string) (regs []isa.Register, err error) {
	regs = make([]isa.Register, len(tokens))
	for n, token := range tokens {
		regs[n], err = isa.ParseRegister(token)
		if err != nil {
			return
		}
	}

	return
}

// badCount reports an operand count no layout accepts.
func badCount(desc *isa.Descriptor) error {
	return &isa.ErrToken{Token: desc.Mnemonic, Err: isa.ErrBadOperandCount}
}

// encodeR handles the shift, three register and jump register layouts.
func (enc *Encoder) encodeR(desc *isa.Descriptor, operands []string) (word isa.Word, err error) {
	word = desc.Fixed

	switch {
	case len(operands) == 3 && desc.Shift:
		// rd, rt, shamt
		var regs []isa.Register
		regs, err = registers(operands[0], operands[1])
		if err != nil {
			return
		}
		var shamt uint32
		shamt, err = isa.ParseImmediate(operands[2], isa.SHAMT_BITS)
		if err != nil {
			return
		}
		word = word.WithRd(regs[0]).WithRt(regs[1]).WithShamt(shamt)
	case len(operands) == 3:
		// rd, rs, rt
		var regs []isa.Register
		regs, err = registers(operands...)
		if err != nil {
			return
		}
		word = word.WithRd(regs[0]).WithRs(regs[1]).WithRt(regs[2])
	case len(operands) == 1:
		// rs
		var rs isa.Register
		rs, err = isa.ParseRegister(operands[0])
		if err != nil {
			return
		}
		word = word.WithRs(rs)
	default:
		err = badCount(desc)
	}

	return
}

// splitMemory splits an `offset(base)` operand. The offset may be empty.
func splitMemory(token string) (offset, base string, ok bool) {
	open := strings.IndexByte(token, '(')
	if open < 0 || !strings.HasSuffix(token, ")") {
		return
	}

	offset = token[:open]
	base = token[open+1 : len(token)-1]
	ok = true
	return
}

// displacement resolves a branch target relative to the next instruction.
// Tokens that are not labels are taken as literal displacements.
func (enc *Encoder) displacement(token string, address uint32) (imm uint32, err error) {
	target, ok := enc.Symbols.Lookup(token)
	if !ok {
		imm, err = isa.ParseImmediate(token, isa.IMMEDIATE_BITS)
		return
	}

	// Label displacements are signed; the sign bit must survive the mask.
	limit := int64(1) << (isa.IMMEDIATE_BITS - 1)
	disp := int64(target) - (int64(address) + 1)
	if disp < -limit || disp >= limit {
		err = &isa.ErrToken{Token: token, Err: isa.ErrOutOfRange}
		return
	}

	imm = uint32(disp) & (1<<isa.IMMEDIATE_BITS - 1)
	return
}

// encodeI handles the branch, immediate and load/store layouts.
func (enc *Encoder) encodeI(desc *isa.Descriptor, operands []string, address uint32) (word isa.Word, err error) {
	word = desc.Fixed

	var regs []isa.Register
	var imm uint32

	switch {
	case len(operands) == 3 && desc.IsBranch():
		// rs, rt, label
		regs, err = registers(operands[0], operands[1])
		if err != nil {
			return
		}
		imm, err = enc.displacement(operands[2], address)
		if err != nil {
			return
		}
		word = word.WithRs(regs[0]).WithRt(regs[1]).WithImmediate(imm)
	case len(operands) == 3:
		// rt, rs, imm
		regs, err = registers(operands[0], operands[1])
		if err != nil {
			return
		}
		imm, err = isa.ParseImmediate(operands[2], isa.IMMEDIATE_BITS)
		if err != nil {
			return
		}
		word = word.WithRt(regs[0]).WithRs(regs[1]).WithImmediate(imm)
	case len(operands) == 2:
		// rt, imm
		// rt, offset(base)
		regs, err = registers(operands[0])
		if err != nil {
			return
		}
		word = word.WithRt(regs[0])

		offset, base, is_memory := splitMemory(operands[1])
		if !is_memory {
			imm, err = isa.ParseImmediate(operands[1], isa.IMMEDIATE_BITS)
			if err != nil {
				return
			}
			word = word.WithImmediate(imm)
			break
		}

		var rs isa.Register
		rs, err = isa.ParseRegister(base)
		if err != nil {
			return
		}
		if len(offset) != 0 {
			imm, err = isa.ParseImmediate(offset, isa.IMMEDIATE_BITS)
			if err != nil {
				return
			}
		}
		word = word.WithRs(rs).WithImmediate(imm)
	default:
		err = badCount(desc)
	}

	return
}

// encodeJ handles the jump target layout.
func (enc *Encoder) encodeJ(desc *isa.Descriptor, operands []string) (word isa.Word, err error) {
	word = desc.Fixed

	if len(operands) != 1 {
		err = badCount(desc)
		return
	}

	token := operands[0]

	var target uint32
	address, ok := enc.Symbols.Lookup(token)
	if ok {
		target, err = isa.MaskImmediate(int64(address), isa.TARGET_BITS)
		if err != nil {
			err = &isa.ErrToken{Token: token, Err: err}
			return
		}
	} else {
		target, err = isa.ParseImmediate(token, isa.TARGET_BITS)
		if err != nil {
			return
		}
	}

	word = word.WithTarget(target)
	return
}
