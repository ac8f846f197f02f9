package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable is a small fabricated table.
func testTable(t *testing.T) *Table {
	table, err := NewTable(
		Descriptor{Mnemonic: "add", Format: FORMAT_R, Opcode: 0x00, Funct: 0x20, HasFunct: true},
		Descriptor{Mnemonic: "sll", Format: FORMAT_R, Opcode: 0x00, Funct: 0x00, HasFunct: true, Shift: true},
		Descriptor{Mnemonic: "jr", Format: FORMAT_R, Opcode: 0x00, Funct: 0x08, HasFunct: true},
		Descriptor{Mnemonic: "addi", Format: FORMAT_I, Opcode: 0x08},
		Descriptor{Mnemonic: "j", Format: FORMAT_J, Opcode: 0x02},
	)
	require.NoError(t, err)
	return table
}

func TestTable_Lookup(t *testing.T) {
	assert := assert.New(t)

	table := testTable(t)
	assert.Equal(5, table.Len())

	desc, ok := table.Lookup("add")
	assert.True(ok)
	assert.Equal(FORMAT_R, desc.Format)
	assert.Equal(Word(0x0000_0020), desc.Fixed)

	desc, ok = table.Lookup("addi")
	assert.True(ok)
	assert.Equal(Word(0x2000_0000), desc.Fixed)

	_, ok = table.Lookup("ADD")
	assert.False(ok)

	_, ok = table.Lookup("frobnicate")
	assert.False(ok)
}

func TestTable_Decode(t *testing.T) {
	assert := assert.New(t)

	table := testTable(t)

	// Zero opcode dispatches by funct.
	desc, ok := table.Decode(0x0000_0008)
	assert.True(ok)
	assert.Equal("jr", desc.Mnemonic)

	// Opcode 0x08 is addi, even though jr's funct is also 0x08.
	desc, ok = table.Decode(0x2000_0008)
	assert.True(ok)
	assert.Equal("addi", desc.Mnemonic)

	desc, ok = table.Decode(0x0800_0000)
	assert.True(ok)
	assert.Equal("j", desc.Mnemonic)

	_, ok = table.Decode(0x0000_003f)
	assert.False(ok)

	_, ok = table.Decode(0xfc00_0000)
	assert.False(ok)
}

func TestTable_All(t *testing.T) {
	assert := assert.New(t)

	table := testTable(t)

	var names []string
	for desc := range table.All() {
		names = append(names, desc.Mnemonic)
	}
	assert.Equal([]string{"add", "sll", "jr", "addi", "j"}, names)
}

func TestNewTable_Errors(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]struct {
		descs []Descriptor
		err   error
	}{
		"duplicate": {[]Descriptor{
			{Mnemonic: "add", Format: FORMAT_R, Funct: 0x20, HasFunct: true},
			{Mnemonic: "add", Format: FORMAT_R, Funct: 0x21, HasFunct: true},
		}, ErrOpcodeDuplicate},
		"ambiguous-funct": {[]Descriptor{
			{Mnemonic: "add", Format: FORMAT_R, Funct: 0x20, HasFunct: true},
			{Mnemonic: "plus", Format: FORMAT_R, Funct: 0x20, HasFunct: true},
		}, ErrOpcodeAmbiguous},
		"ambiguous-opcode": {[]Descriptor{
			{Mnemonic: "addi", Format: FORMAT_I, Opcode: 0x08},
			{Mnemonic: "j", Format: FORMAT_J, Opcode: 0x08},
		}, ErrOpcodeAmbiguous},
		"zero-opcode-i": {[]Descriptor{
			{Mnemonic: "nop", Format: FORMAT_I},
		}, ErrOpcodeFormat},
		"zero-opcode-no-funct": {[]Descriptor{
			{Mnemonic: "add", Format: FORMAT_R},
		}, ErrOpcodeFormat},
		"funct-on-j": {[]Descriptor{
			{Mnemonic: "j", Format: FORMAT_J, Opcode: 2, HasFunct: true},
		}, ErrOpcodeFormat},
		"wide-opcode": {[]Descriptor{
			{Mnemonic: "big", Format: FORMAT_I, Opcode: 0x40},
		}, ErrOutOfRange},
		"no-mnemonic": {[]Descriptor{
			{Format: FORMAT_I, Opcode: 1},
		}, ErrOpcodeFormat},
	}

	for name, test := range tests {
		table, err := NewTable(test.descs...)
		assert.Nil(table, name)
		assert.ErrorIs(err, test.err, name)

		var et *ErrToken
		assert.True(errors.As(err, &et), name)
	}
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	for name, expected := range map[string]Format{
		"R": FORMAT_R, "i": FORMAT_I, "J": FORMAT_J,
		"R_Type": FORMAT_R, "I_Type": FORMAT_I, "J_Type": FORMAT_J,
	} {
		format, err := ParseFormat(name)
		assert.NoError(err, name)
		assert.Equal(expected, format, name)
	}

	_, err := ParseFormat("X")
	assert.ErrorIs(err, ErrOpcodeFormat)

	assert.Equal("R", FORMAT_R.String())
	assert.Equal("J", FORMAT_J.String())
	assert.Equal("Format(7)", Format(7).String())
}

func TestDescriptor_Classes(t *testing.T) {
	assert := assert.New(t)

	beq := Descriptor{Mnemonic: "beq", Format: FORMAT_I}
	assert.True(beq.IsBranch())
	assert.False(beq.IsImmediateOp())

	lui := Descriptor{Mnemonic: "lui", Format: FORMAT_I}
	assert.True(lui.IsLoadUpper())
	assert.True(lui.IsImmediateOp())

	addiu := Descriptor{Mnemonic: "addiu", Format: FORMAT_I}
	assert.True(addiu.IsImmediateOp())

	lw := Descriptor{Mnemonic: "lw", Format: FORMAT_I}
	assert.False(lw.IsBranch())
	assert.False(lw.IsImmediateOp())
	assert.False(lw.IsLoadUpper())

	jr := Descriptor{Mnemonic: "jr", Format: FORMAT_R}
	assert.True(jr.IsJumpRegister())

	// Only R-format mnemonics are jump register forms.
	jri := Descriptor{Mnemonic: "jri", Format: FORMAT_I}
	assert.False(jri.IsJumpRegister())
}

func TestWord_Fields(t *testing.T) {
	assert := assert.New(t)

	// add $t0, $t1, $t2
	word := Word(0x0000_0020).WithRd(8).WithRs(9).WithRt(10)
	assert.Equal(Word(0x012a_4020), word)
	assert.Equal(uint8(0), word.Opcode())
	assert.Equal(Register(9), word.Rs())
	assert.Equal(Register(10), word.Rt())
	assert.Equal(Register(8), word.Rd())
	assert.Equal(uint32(0), word.Shamt())
	assert.Equal(uint8(0x20), word.Funct())

	// sll $t0, $t1, 4
	word = Word(0).WithRd(8).WithRt(9).WithShamt(4)
	assert.Equal(Word(0x0009_4100), word)
	assert.Equal(uint32(4), word.Shamt())

	// addi $t0, $t1, -1
	word = Word(0x2000_0000).WithRt(8).WithRs(9).WithImmediate(0xffff)
	assert.Equal(Word(0x2128_ffff), word)
	assert.Equal(uint32(0xffff), word.Immediate())

	// j 0x3ffffff
	word = Word(0x0800_0000).WithTarget(0xffff_ffff)
	assert.Equal(Word(0x0bff_ffff), word)
	assert.Equal(uint32(0x3ff_ffff), word.Target())
	assert.Equal(uint8(2), word.Opcode())
}
