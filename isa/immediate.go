// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a signed decimal or hexadecimal literal. Hexadecimal is
// marked by a `0x` prefix, or recognized when decimal parsing fails.
// `0b` and `0o` prefixed tokens are rejected.
func ParseInt(token string) (value int64, err error) {
	text := token
	negative := false
	switch {
	case strings.HasPrefix(text, "-"):
		negative = true
		text = text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	base := 10
	prefix := ""
	if len(text) > 2 && text[0] == '0' {
		prefix = strings.ToLower(text[:2])
	}

	switch prefix {
	case "0x":
		base = 16
		text = text[2:]
	case "0b", "0o":
		// Binary and octal literals are not hexadecimal digits.
		err = &ErrToken{Token: token, Err: ErrInvalidImmediate}
		return
	}

	magnitude, perr := strconv.ParseUint(text, base, 64)
	if base == 10 && errors.Is(perr, strconv.ErrSyntax) {
		magnitude, perr = strconv.ParseUint(text, 16, 64)
	}

	switch {
	case errors.Is(perr, strconv.ErrRange):
		err = &ErrToken{Token: token, Err: ErrOutOfRange}
		return
	case perr != nil:
		err = &ErrToken{Token: token, Err: ErrInvalidImmediate}
		return
	case magnitude > math.MaxInt64:
		err = &ErrToken{Token: token, Err: ErrOutOfRange}
		return
	}

	value = int64(magnitude)
	if negative {
		value = -value
	}

	return
}

// MaskImmediate truncates value to its low bits, two's complement for
// negative values. The magnitude of value must fit in bits.
func MaskImmediate(value int64, bits uint) (field uint32, err error) {
	mask := uint64(1)<<bits - 1

	magnitude := uint64(value)
	if value < 0 {
		magnitude = uint64(-value)
	}

	if magnitude > mask {
		err = ErrOutOfRange
		return
	}

	field = uint32(uint64(value) & mask)
	return
}

// ParseImmediate parses token into an unsigned field of the given width.
func ParseImmediate(token string, bits uint) (field uint32, err error) {
	value, err := ParseInt(token)
	if err != nil {
		return
	}

	field, err = MaskImmediate(value, bits)
	if err != nil {
		err = &ErrToken{Token: token, Err: err}
		return
	}

	return
}
