// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"strconv"
	"strings"
)

// Register is a 5-bit register index.
type Register uint8

// REGISTER_SIGIL optionally prefixes register tokens.
const REGISTER_SIGIL = "$"

// registerNames are the conventional names, by index.
var registerNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// registerMap maps names, and aliases, to indexes.
var registerMap = func() map[string]Register {
	regs := make(map[string]Register, len(registerNames)+1)
	for n, name := range registerNames {
		regs[name] = Register(n)
	}
	regs["s8"] = 30
	return regs
}()

// ParseRegister resolves a numeric or named register token.
func ParseRegister(token string) (reg Register, err error) {
	name := strings.TrimPrefix(token, REGISTER_SIGIL)

	index, perr := strconv.ParseUint(name, 10, 64)
	if perr == nil {
		if index > mask5 {
			err = &ErrToken{Token: token, Err: ErrInvalidRegister}
			return
		}
		reg = Register(index)
		return
	}

	reg, ok := registerMap[name]
	if !ok {
		err = &ErrToken{Token: token, Err: ErrInvalidRegister}
		return
	}

	return
}

// Name returns the conventional register name, without sigil.
func (reg Register) Name() string {
	return registerNames[reg&mask5]
}

// String returns the register name with its sigil, ie `$t0`.
func (reg Register) String() string {
	return REGISTER_SIGIL + reg.Name()
}
