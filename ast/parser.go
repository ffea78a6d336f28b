// Copyright (C) 2024 The jlite authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"github.com/parsekit/jlite"
)

// Sentinel errors distinguishing the ways a parse can fail. An error
// returned by Parse wraps exactly one of these, or a *jlite.SyntaxError
// for a lexical failure.
var (
	// ErrObjectSyntax means the terminal sequence does not match the
	// object grammar. An empty input falls into this category, since a
	// valid document requires at least "{" "}".
	ErrObjectSyntax = errors.New("could not parse input as an object")

	// ErrTrailingInput means a valid object was parsed but terminals
	// remain after it.
	ErrTrailingInput = errors.New("unconsumed terminals after object")
)

// Parse parses a complete JSON-lite document and returns its root object.
//
// The grammar is:
//
//	object := '{' '}' | '{' pairs '}'
//	pairs  := pair | pair ',' pairs
//	pair   := STRING ':' value
//	value  := STRING | object
//
// Errors fall into three categories: lexical failures, which wrap a
// *jlite.SyntaxError; grammar mismatches, which wrap ErrObjectSyntax; and
// otherwise-valid documents followed by extra terminals, which wrap
// ErrTrailingInput.
//
// Parse is a pure function of its input. Concurrent calls share no state,
// and reparsing an unchanged input yields a structurally equal result.
func Parse(input string) (*Object, error) {
	ts, err := jlite.Tokenize(input)
	if err != nil {
		return nil, fmt.Errorf("could not tokenize input: %w", err)
	}
	return ParseTerminals(ts)
}

// ParseTerminals parses a terminal sequence as a complete JSON-lite
// document. Most callers should use Parse, which tokenizes as well.
func ParseTerminals(ts []jlite.Terminal) (*Object, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrObjectSyntax)
	}
	rest, obj, ok := parseObject(cursor{ts: ts})
	if !ok {
		return nil, ErrObjectSyntax
	}
	if !rest.atEnd() {
		return nil, fmt.Errorf("%w (%d of %d consumed)", ErrTrailingInput, rest.pos, len(ts))
	}
	return obj, nil
}

// MustParse is Parse, but panics on error. It is intended for static
// initializers and tests with known-valid input.
func MustParse(input string) *Object {
	obj, err := Parse(input)
	if err != nil {
		panic("ast.MustParse: " + err.Error())
	}
	return obj
}

// A cursor is the parser's position within a terminal sequence. Cursors
// are passed by value: a grammar rule receives the cursor at its start and
// returns an advanced cursor only on success, so a failed alternative is
// backtracked simply by discarding its result. No restore call can be
// forgotten along a failure path.
//
// The position ranges from 0 to len(ts) inclusive, where len(ts) means
// every terminal has been consumed. Rules check bounds before reading.
type cursor struct {
	ts  []jlite.Terminal
	pos int
}

func (c cursor) atEnd() bool { return c.pos == len(c.ts) }

// cur returns the terminal under the cursor.
// Precondition: !c.atEnd().
func (c cursor) cur() jlite.Terminal { return c.ts[c.pos] }

// accept consumes the given terminal if it is next under the cursor.
func (c cursor) accept(t jlite.Terminal) (cursor, bool) {
	if c.atEnd() || c.cur() != t {
		return c, false
	}
	c.pos++
	return c, true
}

// parseObject parses: object := '{' '}' | '{' pairs '}'.
//
// A fresh Object is built per attempt, so a failure discards any pairs
// already written and the caller never observes a partial result.
func parseObject(c cursor) (cursor, *Object, bool) {
	start := c
	c, ok := c.accept(jlite.OpenBrace)
	if !ok {
		return start, nil, false
	}
	obj := NewObject()
	if next, ok := c.accept(jlite.CloseBrace); ok {
		return next, obj, true
	}
	c, ok = parsePairs(c, obj)
	if !ok {
		return start, nil, false
	}
	c, ok = c.accept(jlite.CloseBrace)
	if !ok {
		return start, nil, false
	}
	return c, obj, true
}

// parsePairs parses: pairs := pair | pair ',' pairs. Pairs are written
// into obj as they succeed; obj is discarded by the enclosing object rule
// if that rule fails.
//
// The rule is right-recursive: after a pair, a comma requires another
// pairs to follow, so a trailing comma fails rather than closing the list.
func parsePairs(c cursor, obj *Object) (cursor, bool) {
	start := c
	c, ok := parsePair(c, obj)
	if !ok {
		return start, false
	}
	next, ok := c.accept(jlite.PairComma)
	if !ok {
		return c, true // a single pair with no comma after it
	}
	c, ok = parsePairs(next, obj)
	if !ok {
		return start, false
	}
	return c, true
}

// parsePair parses: pair := STRING ':' value. On success the binding is
// written into obj, a repeated key replacing its previous value.
func parsePair(c cursor, obj *Object) (cursor, bool) {
	start := c
	c, key, ok := parseString(c)
	if !ok {
		return start, false
	}
	c, ok = c.accept(jlite.PairColon)
	if !ok {
		return start, false
	}
	c, val, ok := parseValue(c)
	if !ok {
		return start, false
	}
	switch v := val.(type) {
	case String:
		obj.SetString(key, string(v))
	case *Object:
		obj.SetObject(key, v)
	}
	return c, true
}

// parseValue parses: value := STRING | object. The string alternative is
// tried first; on its failure the object alternative restarts from the
// same position.
func parseValue(c cursor) (cursor, Value, bool) {
	if next, text, ok := parseString(c); ok {
		return next, String(text), true
	}
	if next, obj, ok := parseObject(c); ok {
		return next, obj, true
	}
	return c, nil, false
}

// parseString consumes a single string terminal and returns its decoded
// text.
func parseString(c cursor) (cursor, string, bool) {
	if c.atEnd() || c.cur().Kind != jlite.String {
		return c, "", false
	}
	t := c.cur()
	c.pos++
	return c, t.Text, true
}
