// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Bit positions of the instruction fields.
const (
	OPCODE_SHIFT = 26
	RS_SHIFT     = 21
	RT_SHIFT     = 16
	RD_SHIFT     = 11
	SHAMT_SHIFT  = 6
	FUNCT_SHIFT  = 0
)

// Field widths, in bits.
const (
	OPCODE_BITS    = 6
	REGISTER_BITS  = 5
	SHAMT_BITS     = 5
	FUNCT_BITS     = 6
	IMMEDIATE_BITS = 16
	TARGET_BITS    = 26
)

const (
	mask5  = 0x1f
	mask6  = 0x3f
	mask16 = 0xffff
	mask26 = 0x3ffffff
)

// Word is a single 32-bit instruction.
type Word uint32

// Opcode returns the primary opcode field, bits 31-26.
func (w Word) Opcode() uint8 {
	return uint8((w >> OPCODE_SHIFT) & mask6)
}

// Rs returns the first source register field, bits 25-21.
func (w Word) Rs() Register {
	return Register((w >> RS_SHIFT) & mask5)
}

// Rt returns the second source register field, bits 20-16.
func (w Word) Rt() Register {
	return Register((w >> RT_SHIFT) & mask5)
}

// Rd returns the destination register field, bits 15-11.
func (w Word) Rd() Register {
	return Register((w >> RD_SHIFT) & mask5)
}

// Shamt returns the shift amount field, bits 10-6.
func (w Word) Shamt() uint32 {
	return uint32((w >> SHAMT_SHIFT) & mask5)
}

// Funct returns the function code field, bits 5-0.
func (w Word) Funct() uint8 {
	return uint8((w >> FUNCT_SHIFT) & mask6)
}

// Immediate returns the low 16 bits.
func (w Word) Immediate() uint32 {
	return uint32(w & mask16)
}

// Target returns the low 26 bits.
func (w Word) Target() uint32 {
	return uint32(w & mask26)
}

// WithRs places reg in the rs field.
func (w Word) WithRs(reg Register) Word {
	return w | (Word(reg)&mask5)<<RS_SHIFT
}

// WithRt places reg in the rt field.
func (w Word) WithRt(reg Register) Word {
	return w | (Word(reg)&mask5)<<RT_SHIFT
}

// WithRd places reg in the rd field.
func (w Word) WithRd(reg Register) Word {
	return w | (Word(reg)&mask5)<<RD_SHIFT
}

// WithShamt places a 5-bit shift amount.
func (w Word) WithShamt(shamt uint32) Word {
	return w | (Word(shamt)&mask5)<<SHAMT_SHIFT
}

// WithImmediate places a 16-bit immediate in the low bits.
func (w Word) WithImmediate(imm uint32) Word {
	return w | Word(imm)&mask16
}

// WithTarget places a 26-bit jump target in the low bits.
func (w Word) WithTarget(target uint32) Word {
	return w | Word(target)&mask26
}
