// Copyright (C) 2024 The jlite authors. All Rights Reserved.

package jlite

import (
	"strconv"
	"strings"
)

// Kind is the type of a lexical terminal in the JSON-lite grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid terminal
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string
)

var kindStr = [...]string{
	Invalid: "invalid terminal",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Terminal is a single lexical unit of JSON-lite input: either a decoded
// string literal or one of the four structural symbols. Terminals are plain
// values and compare with ==. For String terminals, Text holds the fully
// decoded content with all escape sequences resolved.
type Terminal struct {
	Kind Kind
	Text string
}

func (t Terminal) String() string {
	if t.Kind == String {
		return "string " + strconv.Quote(t.Text)
	}
	return t.Kind.String()
}

// The four fixed symbol terminals.
var (
	OpenBrace  = Terminal{Kind: LBrace, Text: "{"}
	CloseBrace = Terminal{Kind: RBrace, Text: "}"}
	PairComma  = Terminal{Kind: Comma, Text: ","}
	PairColon  = Terminal{Kind: Colon, Text: ":"}
)

var symbols = [...]Terminal{OpenBrace, CloseBrace, PairComma, PairColon}

// symbolFor maps a structural character to its fixed symbol terminal.
func symbolFor(ch rune) (Terminal, bool) {
	i := strings.IndexRune("{},:", ch)
	if i >= 0 {
		return symbols[i], true
	}
	return Terminal{}, false
}
