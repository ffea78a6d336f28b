// Copyright (C) 2024 The jlite authors. All Rights Reserved.

// Package cursor implements traversal over a parsed JSON-lite tree.
package cursor

import (
	"fmt"

	"github.com/parsekit/jlite/ast"
)

// Path traverses a sequential path of object keys into the structure of v
// and returns the value reached, which must have type T. This is a
// convenience wrapper for creating a cursor, applying the path, and
// retrieving its value.
func Path[T ast.Value](v ast.Value, keys ...string) (T, error) {
	c := New(v).Down(keys...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the
// current location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequence of object keys into the structure of c
// starting from the current value. Each key must resolve to a member of an
// object under the cursor. If the path cannot be completely consumed,
// traversal stops and an error is recorded. Use Err to recover the error.
func (c *Cursor) Down(keys ...string) *Cursor {
	c.err = nil // reset error
	cur := c.Value()
	for _, key := range keys {
		obj, ok := cur.(*ast.Object)
		if !ok {
			return c.setErrorf("cannot traverse %T with %q", cur, key)
		}
		v := obj.Find(key)
		if v == nil {
			return c.setErrorf("key %q not found", key)
		}
		cur = c.push(v)
	}
	return c
}

func (c *Cursor) push(v ast.Value) ast.Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}
