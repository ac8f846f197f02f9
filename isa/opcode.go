// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strings"
)

// Format is an instruction layout family.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
	FORMAT_J = Format(2) // J
)

// formatMap accepts both the short names and the `R_Type` spelling.
var formatMap = map[string]Format{
	"r":      FORMAT_R,
	"i":      FORMAT_I,
	"j":      FORMAT_J,
	"r_type": FORMAT_R,
	"i_type": FORMAT_I,
	"j_type": FORMAT_J,
}

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (format Format, err error) {
	format, ok := formatMap[strings.ToLower(name)]
	if !ok {
		err = &ErrToken{Token: name, Err: ErrOpcodeFormat}
		return
	}

	return
}

// Descriptor is the encoding metadata for a single mnemonic.
type Descriptor struct {
	Mnemonic string // Unique, case-sensitive key.
	Format   Format // Instruction layout.
	Opcode   uint8  // 6-bit primary opcode.
	Funct    uint8  // 6-bit function code, R-format only.
	HasFunct bool   // Set if Funct is meaningful.
	Shift    bool   // Third operand is a shift amount, not a register.

	// Fixed holds the opcode and funct bits already in place.
	// It is computed by NewTable; any caller supplied value is replaced.
	Fixed Word
}

// fixedBits computes the partial word with opcode and funct placed.
func (desc *Descriptor) fixedBits() (word Word) {
	word = (Word(desc.Opcode) & mask6) << OPCODE_SHIFT
	if desc.HasFunct {
		word |= (Word(desc.Funct) & mask6) << FUNCT_SHIFT
	}
	return
}

// validate checks the field widths and the decode selector rules.
func (desc *Descriptor) validate() (err error) {
	switch {
	case len(desc.Mnemonic) == 0:
		err = ErrOpcodeFormat
	case desc.Format < FORMAT_R || desc.Format > FORMAT_J:
		err = ErrOpcodeFormat
	case desc.Opcode > mask6 || desc.Funct > mask6:
		err = ErrOutOfRange
	case desc.Format != FORMAT_R && desc.HasFunct:
		err = ErrOpcodeFormat
	case desc.Format != FORMAT_R && desc.Shift:
		err = ErrOpcodeFormat
	case desc.Opcode == 0 && (desc.Format != FORMAT_R || !desc.HasFunct):
		// The zero opcode selects by function code.
		err = ErrOpcodeFormat
	}

	if err != nil {
		err = &ErrToken{Token: desc.Mnemonic, Err: err}
	}

	return
}

// IsBranch returns true for conditional branch mnemonics.
func (desc *Descriptor) IsBranch() bool {
	return desc.Format == FORMAT_I && strings.HasPrefix(desc.Mnemonic, "b")
}

// IsLoadUpper returns true for the load upper immediate mnemonic.
func (desc *Descriptor) IsLoadUpper() bool {
	return desc.Format == FORMAT_I && desc.Mnemonic == "lui"
}

// IsImmediateOp returns true for arithmetic or logical immediate mnemonics.
func (desc *Descriptor) IsImmediateOp() bool {
	return desc.Format == FORMAT_I &&
		(strings.HasSuffix(desc.Mnemonic, "i") || strings.HasSuffix(desc.Mnemonic, "iu"))
}

// IsJumpRegister returns true for the single-source jump register form.
func (desc *Descriptor) IsJumpRegister() bool {
	return desc.Format == FORMAT_R && strings.HasPrefix(desc.Mnemonic, "jr")
}
