// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm translates assembly source text into 32-bit instruction words.
//
// Assembly runs as two strict stages. BuildSymbols walks every tokenized
// line and binds each label to the address of the instruction it marks,
// producing an immutable Symbols table. The Encoder then translates each
// instruction using the opcode table and the completed Symbols, so forward
// references always resolve. Addresses count instructions, not bytes.
package asm
