// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/mipsasm/isa"
)

// yamlOpcode is a single YAML table entry.
type yamlOpcode struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Op     int    `yaml:"op"`
	Funct  *int   `yaml:"funct"`
	Shift  bool   `yaml:"shift"`
}

// LoadYAML decodes a YAML list of opcodes.
func LoadYAML(data []byte) (table *isa.Table, err error) {
	var entries []yamlOpcode

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(&entries)
	if err != nil && err != io.EOF {
		return
	}

	descs := make([]isa.Descriptor, 0, len(entries))
	for _, entry := range entries {
		funct := -1
		if entry.Funct != nil {
			funct = *entry.Funct
			if funct < 0 {
				err = &isa.ErrToken{Token: entry.Name, Err: isa.ErrOutOfRange}
				return
			}
		}

		var desc isa.Descriptor
		desc, err = makeDescriptor(entry.Name, entry.Format, entry.Op, funct, entry.Shift)
		if err != nil {
			return
		}
		descs = append(descs, desc)
	}

	table, err = isa.NewTable(descs...)
	return
}
