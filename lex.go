package main

import (
	"io"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Identifiers are runs of letters and digits, so numbers come out of the
// scanner as idents too and are told apart in Lex.
const scannerMode = scanner.ScanIdents | scanner.ScanStrings

type tokenKind int

const (
	tEOF tokenKind = iota
	tIdent
	tNumber
	tString
	tPunct
	kLet
	kIf
	kThen
	kElse
)

type token struct {
	kind tokenKind
	text string
	col  int
	// spaced is set when whitespace separates this token from the previous one
	spaced bool
}

type lexer struct {
	scanner scanner.Scanner
	err     error
	end     int // offset just past the previous token
}

// scanner.Init resets Error and Mode, so they are set after it.
func (l *lexer) Init(r io.Reader) {
	l.scanner.Init(r)
	l.scanner.Error = func(s *scanner.Scanner, msg string) {
		l.Error(msg)
	}
	l.scanner.Mode = scannerMode
	l.scanner.IsIdentRune = func(ch rune, i int) bool {
		return unicode.IsLetter(ch) || unicode.IsDigit(ch)
	}
	l.err = nil
	l.end = 0
}

// Error records the first scanner error; later ones are usually fallout.
func (l *lexer) Error(e string) {
	if l.err == nil {
		l.err = errors.New(e)
	}
}

func (l *lexer) Lex() token {
	r := l.scanner.Scan()
	text := l.scanner.TokenText()
	tok := token{
		text:   text,
		col:    l.scanner.Position.Column,
		spaced: l.scanner.Position.Offset > l.end,
	}
	l.end = l.scanner.Position.Offset + len(text)
	switch r {
	case scanner.EOF:
		tok.kind = tEOF
		tok.col = l.scanner.Pos().Column
	case scanner.Ident:
		switch text {
		case "let":
			tok.kind = kLet
		case "if":
			tok.kind = kIf
		case "then":
			tok.kind = kThen
		case "else":
			tok.kind = kElse
		default:
			if first, _ := utf8.DecodeRuneInString(text); unicode.IsDigit(first) {
				tok.kind = tNumber
			} else {
				tok.kind = tIdent
			}
		}
	case scanner.String:
		tok.kind = tString
	default:
		tok.kind = tPunct
	}
	return tok
}

// isIdent reports whether s would lex as a single identifier.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	switch s {
	case "let", "if", "then", "else":
		return false
	}
	for i, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if i == 0 && unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
