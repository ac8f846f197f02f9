// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/mipsasm/internal"
	"github.com/ezrec/mipsasm/isa"
)

const (
	MIF_WIDTH   = 32 // Bits per word.
	MIF_COMMENT = "--"
)

// mifRadix maps radix names to numeric bases.
var mifRadix = map[string]int{
	"BIN": 2,
	"OCT": 8,
	"DEC": 10,
	"UNS": 10,
	"HEX": 16,
}

// WriteMIF writes entries as a memory initialization file. The DEPTH is
// at least depth, and large enough to hold the highest address.
func WriteMIF(output io.Writer, entries []Entry, depth int) (err error) {
	for _, entry := range entries {
		depth = max(depth, int(entry.Address)+1)
	}
	depth = max(depth, 1)

	w := bufio.NewWriter(output)

	fmt.Fprintf(w, "WIDTH=%d;\n", MIF_WIDTH)
	fmt.Fprintf(w, "DEPTH=%d;\n", depth)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "ADDRESS_RADIX=HEX;\n")
	fmt.Fprintf(w, "DATA_RADIX=HEX;\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "CONTENT BEGIN\n")
	for _, entry := range entries {
		fmt.Fprintf(w, "%08X:%08X;\n", entry.Address, uint32(entry.Word))
	}
	fmt.Fprintf(w, "END;\n")

	err = w.Flush()
	return
}

// parseMifValue parses a radix-encoded unsigned 32-bit value.
func parseMifValue(text string, base int) (value uint32, err error) {
	v64, err := strconv.ParseUint(strings.TrimSpace(text), base, 32)
	if err != nil {
		err = ErrMifSyntax
		return
	}

	value = uint32(v64)
	return
}

// ReadMIF parses a memory initialization file, returning the content
// entries in file order.
func ReadMIF(input io.Reader) (entries []Entry, err error) {
	addressRadix := 16
	dataRadix := 16
	content := false
	ended := false

	seq, errf := internal.Lines(input)
	for lineno, text := range seq {
		line, _, _ := strings.Cut(text, MIF_COMMENT)
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		if ended {
			err = &ErrLine{LineNo: lineno, Err: ErrMifSyntax}
			return
		}

		if !content {
			upper := strings.ToUpper(line)
			switch upper {
			case "CONTENT BEGIN", "BEGIN":
				content = true
				continue
			case "CONTENT":
				continue
			}
			key, value, ok := strings.Cut(strings.TrimSuffix(upper, ";"), "=")
			if !ok {
				err = &ErrLine{LineNo: lineno, Err: ErrMifSyntax}
				return
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			switch key {
			case "ADDRESS_RADIX", "DATA_RADIX":
				base, known := mifRadix[value]
				if !known {
					err = &ErrLine{LineNo: lineno, Err: ErrMifRadix}
					return
				}
				if key == "ADDRESS_RADIX" {
					addressRadix = base
				} else {
					dataRadix = base
				}
			case "WIDTH":
				if value != strconv.Itoa(MIF_WIDTH) {
					err = &ErrLine{LineNo: lineno, Err: ErrMifSyntax}
					return
				}
			}
			continue
		}

		if strings.ToUpper(line) == "END;" {
			ended = true
			continue
		}

		addr, data, ok := strings.Cut(strings.TrimSuffix(line, ";"), ":")
		if !ok || !strings.HasSuffix(line, ";") {
			err = &ErrLine{LineNo: lineno, Err: ErrMifSyntax}
			return
		}

		var entry Entry
		entry.Address, err = parseMifValue(addr, addressRadix)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Err: err}
			return
		}
		var word uint32
		word, err = parseMifValue(data, dataRadix)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Err: err}
			return
		}
		entry.Word = isa.Word(word)

		entries = append(entries, entry)
	}

	err = errf()
	if err != nil {
		return
	}

	if !ended {
		err = ErrMifEnd
		return
	}

	return
}
