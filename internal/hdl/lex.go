// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl implements the lexer and parser for I/O specifications and part
// connection strings.
//
package hdl

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is the type of a lexical item.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	BracketOpen
	BracketClose
	Comma
	Int
	Range
	Equal
)

var typeNames = [...]string{
	EOF:          "end of input",
	Raw:          "character",
	Ident:        "identifier",
	BracketOpen:  "'['",
	BracketClose: "']'",
	Comma:        "','",
	Int:          "integer",
	Range:        "'..'",
	Equal:        "'='",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Item is a lexical item. Pos is the byte offset of the item in the input.
//
type Item struct {
	Type  Type
	Pos   int
	Text  string
	Value int // value of Int items
}

func (i Item) String() string {
	switch i.Type {
	case EOF:
		return i.Type.String()
	case Raw:
		return strconv.Quote(i.Text)
	}
	return i.Type.String() + " " + strconv.Quote(i.Text)
}

// Lexer splits an input string into Items.
//
type Lexer struct {
	in  string
	pos int
}

// NewLexer returns a new lexer for i/o specs and connection descriptions.
//
func NewLexer(input string) *Lexer {
	return &Lexer{in: input}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.in) {
		return -1
	}
	r, sz := utf8.DecodeRuneInString(l.in[l.pos:])
	l.pos += sz
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.in) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.in[l.pos:])
	return r
}

// Lex returns the next item in the input. Once the end of input or an invalid
// character has been reached, Lex only returns EOF items. Integers that do not
// fit in an int are returned as Raw items.
//
func (l *Lexer) Lex() Item {
	for unicode.IsSpace(l.peek()) {
		l.next()
	}
	start := l.pos
	r := l.next()
	switch {
	case r < 0:
		return Item{Type: EOF, Pos: start}
	case unicode.IsLetter(r) || r == '_':
		for r = l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'; r = l.peek() {
			l.next()
		}
		return Item{Type: Ident, Pos: start, Text: l.in[start:l.pos]}
	case '0' <= r && r <= '9':
		for r = l.peek(); '0' <= r && r <= '9'; r = l.peek() {
			l.next()
		}
		text := l.in[start:l.pos]
		v, err := strconv.Atoi(text)
		if err != nil {
			// out of range
			l.pos = len(l.in)
			return Item{Type: Raw, Pos: start, Text: text}
		}
		return Item{Type: Int, Pos: start, Text: text, Value: v}
	case r == '[':
		return Item{Type: BracketOpen, Pos: start, Text: "["}
	case r == ']':
		return Item{Type: BracketClose, Pos: start, Text: "]"}
	case r == ',':
		return Item{Type: Comma, Pos: start, Text: ","}
	case r == '=':
		return Item{Type: Equal, Pos: start, Text: "="}
	case r == '.' && l.peek() == '.':
		l.next()
		return Item{Type: Range, Pos: start, Text: ".."}
	}
	// stop on invalid input
	text := l.in[start:l.pos]
	l.pos = len(l.in)
	return Item{Type: Raw, Pos: start, Text: text}
}
