// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package disasm

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/mipsasm/isa"
)

// Disassembler writes one line of assembly per instruction word.
type Disassembler struct {
	Verbose   bool       // If set, logs each decoded word.
	Addresses bool       // If set, prefixes each line with `address:`.
	Table     *isa.Table // Opcode table used for dispatch.
}

// Write decodes the (address, word) pairs in order. The first undecodable
// word aborts the run.
func (dis *Disassembler) Write(output io.Writer, words iter.Seq2[uint32, isa.Word]) (err error) {
	dec := &Decoder{Table: dis.Table}

	for address, word := range words {
		var text string
		text, err = dec.Text(word)
		if err != nil {
			var ew *ErrWord
			if errors.As(err, &ew) {
				ew.Address = address
			}
			return
		}

		if dis.Verbose {
			logrus.WithFields(logrus.Fields{
				"address": fmt.Sprintf("0x%04x", address),
				"word":    fmt.Sprintf("%08x", uint32(word)),
			}).Info(text)
		}

		if dis.Addresses {
			_, err = fmt.Fprintf(output, "%04x: %v\n", address, text)
		} else {
			_, err = fmt.Fprintln(output, text)
		}
		if err != nil {
			return
		}
	}

	return
}
