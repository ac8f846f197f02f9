// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"

	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

var (
	// Translation errors
	ErrUnsupportedOpcode = errors.New(f("unsupported opcode"))
	ErrInvalidRegister   = errors.New(f("invalid register"))
	ErrInvalidImmediate  = errors.New(f("invalid immediate"))
	ErrOutOfRange        = errors.New(f("out of range"))
	ErrBadOperandCount   = errors.New(f("bad operand count"))
	ErrDuplicateLabel    = errors.New(f("label duplicated"))

	// Opcode table errors
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrOpcodeAmbiguous = errors.New(f("opcode ambiguous"))
	ErrOpcodeFormat    = errors.New(f("opcode format invalid"))
)

// ErrToken attaches the offending source token to an error.
type ErrToken struct {
	Token string
	Err   error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Token, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}
