// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package optable

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ezrec/mipsasm/isa"
)

// xmlOpcode is an `<OpCode>` element. Field values are binary bit strings.
type xmlOpcode struct {
	Name  string `xml:"Name,attr"`
	Type  string `xml:"Type"`
	OP    string `xml:"OP"`
	Funct string `xml:"Funct"`
	Shift bool   `xml:"Shift"`
}

type xmlTable struct {
	XMLName xml.Name    `xml:"ArrayOfOpCode"`
	Opcodes []xmlOpcode `xml:"OpCode"`
}

// parseBits parses a binary bit string. An empty string is -1.
func parseBits(name string, bits string) (value int, err error) {
	bits = strings.TrimSpace(bits)
	if len(bits) == 0 {
		value = -1
		return
	}

	v64, err := strconv.ParseUint(bits, 2, 6)
	if err != nil {
		err = &isa.ErrToken{Token: name, Err: isa.ErrOutOfRange}
		return
	}

	value = int(v64)
	return
}

// LoadXML decodes an `<ArrayOfOpCode>` document.
func LoadXML(data []byte) (table *isa.Table, err error) {
	var doc xmlTable
	err = xml.Unmarshal(data, &doc)
	if err != nil {
		return
	}

	descs := make([]isa.Descriptor, 0, len(doc.Opcodes))
	for _, entry := range doc.Opcodes {
		var op, funct int
		op, err = parseBits(entry.Name, entry.OP)
		if err != nil {
			return
		}
		if op < 0 {
			op = 0
		}
		funct, err = parseBits(entry.Name, entry.Funct)
		if err != nil {
			return
		}

		var desc isa.Descriptor
		desc, err = makeDescriptor(entry.Name, strings.TrimSpace(entry.Type), op, funct, entry.Shift)
		if err != nil {
			return
		}
		descs = append(descs, desc)
	}

	table, err = isa.NewTable(descs...)
	return
}
