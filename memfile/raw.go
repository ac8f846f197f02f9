// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memfile

import (
	"encoding/binary"
	"io"

	"github.com/ezrec/mipsasm/isa"
)

// RAW_DEPTH_MAX is the largest binary image, in words, WriteRaw produces.
const RAW_DEPTH_MAX = 1 << 20

// WriteRaw writes entries as big-endian words at offset address*4. Gaps
// between addresses are zero filled.
func WriteRaw(output io.Writer, entries []Entry) (err error) {
	var size uint32
	for _, entry := range entries {
		if entry.Address >= RAW_DEPTH_MAX {
			err = ErrRawAddress
			return
		}
		size = max(size, entry.Address+1)
	}

	image := make([]byte, 4*int(size))
	for _, entry := range entries {
		binary.BigEndian.PutUint32(image[4*int(entry.Address):], uint32(entry.Word))
	}

	_, err = output.Write(image)
	return
}

// ReadRaw reads a big-endian binary image. Each word's address is its index.
func ReadRaw(input io.Reader) (entries []Entry, err error) {
	image, err := io.ReadAll(input)
	if err != nil {
		return
	}

	if len(image)%4 != 0 {
		err = ErrRawLength
		return
	}

	for n := 0; n < len(image); n += 4 {
		entries = append(entries, Entry{
			Address: uint32(n / 4),
			Word:    isa.Word(binary.BigEndian.Uint32(image[n:])),
		})
	}

	return
}
