// Copyright (C) 2024 The jlite authors. All Rights Reserved.

// Package jlite implements a scanner and parser for JSON-lite, a
// restricted dialect of JSON comprising objects whose values are strings
// or nested objects. Arrays, numbers, Boolean constants, null, and Unicode
// escape sequences are not part of the dialect.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON-lite. Construct a
// scanner from an io.Reader and call its Next method to iterate over the
// stream. Next advances to the next terminal and reports whether one is
// available:
//
//	s := jlite.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next terminal: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// To tokenize a complete input in one call, use Tokenize. It returns the
// full sequence of decoded terminals, or an error of concrete type
// *SyntaxError describing the first lexical fault:
//
//	ts, err := jlite.Tokenize(`{"a":"b"}`)
//
// # Parsing
//
// The ast subpackage consumes terminal sequences and builds trees of
// key/value mappings:
//
//	obj, err := ast.Parse(`{"name":{"first":"Ada"}}`)
//
// See the documentation of the ast package for the grammar and the error
// taxonomy.
package jlite
