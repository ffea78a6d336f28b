// Copyright (C) 2024 The jlite authors. All Rights Reserved.

// Package ast defines the tree representation of a JSON-lite document, and
// a parser that constructs trees from source text.
package ast

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors reported by the typed accessors of an Object.
var (
	ErrKeyNotFound = errors.New("key not found")
	ErrWrongKind   = errors.New("value has the wrong kind")
)

// A Value is a single value in a JSON-lite tree, either a String or an
// *Object. No other type satisfies the interface.
type Value interface {
	isValue()
}

// A String is a string value.
type String string

func (String) isValue() {}

// An Object is a mapping from string keys to values. Keys are unique
// within an Object; setting a key that is already present replaces its
// previous value, whatever its kind. The zero Object is not ready for use;
// construct with NewObject.
//
// An Object returned by Parse is exclusively owned by its caller and must
// be treated as read-only thereafter; nested objects are owned by their
// parent and never shared.
type Object struct {
	members map[string]Value
}

func (*Object) isValue() {}

// NewObject constructs a new empty Object.
func NewObject() *Object { return &Object{members: make(map[string]Value)} }

// Len reports the number of keys in o.
func (o *Object) Len() int { return len(o.members) }

// Keys returns the keys of o in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.members))
	for key := range o.members {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// SetString binds key to the string value val.
func (o *Object) SetString(key, val string) { o.members[key] = String(val) }

// SetObject binds key to the child object obj.
func (o *Object) SetObject(key string, obj *Object) { o.members[key] = obj }

// Find returns the value bound to key, or nil if key is not present.
func (o *Object) Find(key string) Value { return o.members[key] }

// StringValue returns the string bound to key. It reports ErrKeyNotFound
// if key is not present, and ErrWrongKind if the value under key is an
// object.
func (o *Object) StringValue(key string) (string, error) {
	v, ok := o.members[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	s, ok := v.(String)
	if !ok {
		return "", fmt.Errorf("%w: %q holds an object", ErrWrongKind, key)
	}
	return string(s), nil
}

// ObjectValue returns the object bound to key. It reports ErrKeyNotFound
// if key is not present, and ErrWrongKind if the value under key is a
// string.
func (o *Object) ObjectValue(key string) (*Object, error) {
	v, ok := o.members[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds a string", ErrWrongKind, key)
	}
	return obj, nil
}

// Equal reports whether o and p contain the same keys bound to
// structurally equal values.
func (o *Object) Equal(p *Object) bool {
	if o == nil || p == nil {
		return o == p
	}
	if len(o.members) != len(p.members) {
		return false
	}
	for key, v := range o.members {
		w, ok := p.members[key]
		if !ok || !equalValue(v, w) {
			return false
		}
	}
	return true
}

func equalValue(v, w Value) bool {
	switch v := v.(type) {
	case String:
		w, ok := w.(String)
		return ok && v == w
	case *Object:
		w, ok := w.(*Object)
		return ok && v.Equal(w)
	}
	return false
}
