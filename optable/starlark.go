// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mipsasm/isa"
)

// LoadStarlark executes a Starlark opcode definition script. src may be a
// string, a []byte or nil to read filename.
func LoadStarlark(filename string, src any) (table *isa.Table, err error) {
	var descs []isa.Descriptor

	opcode := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var name, format string
		op := 0
		funct := -1
		shift := false
		err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"name", &name,
			"format", &format,
			"op?", &op,
			"funct?", &funct,
			"shift?", &shift)
		if err != nil {
			return nil, err
		}

		desc, err := makeDescriptor(name, format, op, funct, shift)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)

		return starlark.None, nil
	}

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	predeclared := starlark.StringDict{
		"opcode": starlark.NewBuiltin("opcode", opcode),
	}

	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	table, err = isa.NewTable(descs...)
	return
}
