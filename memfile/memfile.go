// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memfile reads and writes assembled instruction words.
//
// Two containers are supported: memory initialization files (MIF), a text
// header followed by `address:word;` lines and an `END;` marker, and raw
// big-endian binary images where the address is the word index.
package memfile

import (
	"errors"
	"iter"
	"strconv"

	"github.com/ezrec/mipsasm/isa"
	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

var (
	ErrMifSyntax  = errors.New(f("mif syntax"))
	ErrMifRadix   = errors.New(f("mif radix unsupported"))
	ErrMifEnd     = errors.New(f("mif missing END"))
	ErrRawLength  = errors.New(f("binary length not a multiple of 4"))
	ErrRawAddress = errors.New(f("binary address beyond image limit"))
)

// ErrLine attaches an input line number to an error.
type ErrLine struct {
	LineNo int
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %v %v", strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// Entry is a single addressed word.
type Entry struct {
	Address uint32
	Word    isa.Word
}

// Collect gathers (address, word) pairs into entries.
func Collect(words iter.Seq2[uint32, isa.Word]) (entries []Entry) {
	for address, word := range words {
		entries = append(entries, Entry{Address: address, Word: word})
	}

	return
}

// All iterates over entries as (address, word) pairs.
func All(entries []Entry) iter.Seq2[uint32, isa.Word] {
	return func(yield func(uint32, isa.Word) bool) {
		for _, entry := range entries {
			if !yield(entry.Address, entry.Word) {
				return
			}
		}
	}
}
