// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa describes the instruction set consumed by the assembler and
// the disassembler.
//
// Instructions are fixed 32-bit words in one of three layouts. R-format words
// carry three register fields, a shift amount and a function code; I-format
// words carry two registers and a 16-bit immediate; J-format words carry a
// 26-bit jump target. The primary opcode lives in bits 31-26 for every
// layout. An all-zero opcode selects the R-format function code in bits 5-0.
//
// The Table is immutable once built and is passed explicitly to the encoder
// and decoder. Register and immediate operands are resolved by ParseRegister
// and ParseImmediate.
package isa
