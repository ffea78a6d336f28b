// Copyright (C) 2024 The jlite authors. All Rights Reserved.

// Package escape handles decoding of JSON-lite string literals.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Unescape decodes a byte sequence containing the body of a JSON-lite
// string. The input must have the enclosing double quotation marks already
// removed.
//
// The recognized escape sequences are \" \\ \t and \n, which are replaced
// with their decoded equivalents. Unescape reports an error for any other
// escape, and for an escape left incomplete by the end of the input. All
// other bytes are copied verbatim.
func Unescape(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		// Decode the rune after the escape to figure out what to
		// substitute.
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\':
			dec = append(dec, byte(r))
		case 't':
			dec = append(dec, '\t')
		case 'n':
			dec = append(dec, '\n')
		default:
			return nil, fmt.Errorf("invalid escape %q", r)
		}

		// Look for the next escape sequence, and if one is not found we
		// can blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
	}
	return dec, nil
}
