// Copyright (C) 2024 The jlite authors. All Rights Reserved.

package jlite

import (
	"errors"
	"strings"

	"go4.org/mem"

	"github.com/parsekit/jlite/internal/escape"
)

// Unquote decodes a JSON-lite string literal. The enclosing double
// quotation marks are removed, and escape sequences are replaced with
// their decoded equivalents. An unrecognized or incomplete escape sequence
// is an error.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unescape(mem.S(src[1 : len(src)-1]))
}
