// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package optable loads opcode tables from definition files.
//
// Three layouts are understood, selected by file extension: Starlark
// scripts (.star) calling the predeclared `opcode()` builtin, YAML lists
// (.yaml, .yml) and XML documents (.xml) with binary bit strings.
package optable

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ezrec/mipsasm/isa"
	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

// ErrTableFormat is returned for unknown definition file extensions.
var ErrTableFormat = errors.New(f("opcode table format unknown"))

//go:embed mips.star
var mipsStar string

// Default returns the built-in MIPS opcode table.
func Default() (table *isa.Table, err error) {
	return LoadStarlark("mips.star", mipsStar)
}

// Load reads an opcode table file.
func Load(path string) (table *isa.Table, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".star":
		table, err = LoadStarlark(path, data)
	case ".yaml", ".yml":
		table, err = LoadYAML(data)
	case ".xml":
		table, err = LoadXML(data)
	default:
		err = ErrTableFormat
	}

	if err != nil {
		err = errors.Wrapf(err, "%v", path)
		return
	}

	return
}

// makeDescriptor validates the loader independent fields. A negative funct
// means the opcode has none.
func makeDescriptor(name string, format string, op int, funct int, shift bool) (desc isa.Descriptor, err error) {
	form, err := isa.ParseFormat(format)
	if err != nil {
		return
	}

	if op < 0 || op > 0x3f || funct > 0x3f {
		err = &isa.ErrToken{Token: name, Err: isa.ErrOutOfRange}
		return
	}

	desc = isa.Descriptor{
		Mnemonic: name,
		Format:   form,
		Opcode:   uint8(op),
		Shift:    shift,
	}
	if funct >= 0 {
		desc.Funct = uint8(funct)
		desc.HasFunct = true
	}

	return
}
