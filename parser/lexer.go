/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/krotik/camc/camconfig"
	"github.com/krotik/camc/pos"
)

/*
TokenKind identifies the kind of a lexed token. The vocabulary is exactly
the closed set this language's grammar names: LBRACK, RBRACK, LAMBDA, PLUS, VAR, NUM, plus an
end-of-stream sentinel and a distinguished error kind used to surface a
lexical failure through the same channel as every other token instead of
a side channel.
*/
type TokenKind int

/*
The token kinds the parser consumes.
*/
const (
	TokenEOF TokenKind = iota
	TokenError
	TokenLBRACK
	TokenRBRACK
	TokenLAMBDA
	TokenPLUS
	TokenVAR
	TokenNUM
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenLBRACK:
		return "("
	case TokenRBRACK:
		return ")"
	case TokenLAMBDA:
		return "lambda"
	case TokenPLUS:
		return "+"
	case TokenVAR:
		return "VAR"
	case TokenNUM:
		return "NUM"
	}
	return "?"
}

/*
Token is a single lexed token: its kind, the literal text (identifier name
or digit string; unused for fixed-spelling tokens), and the position it
started at.
*/
type Token struct {
	Kind TokenKind
	Val  string
	Pos  pos.Pos
}

func (t Token) String() string {
	if t.Val != "" {
		return fmt.Sprintf("%v(%v)", t.Kind, t.Val)
	}
	return t.Kind.String()
}

const eof = -1

/*
lexer scans a source string into a channel of tokens. Like a conventional hand-written scanner,
own lexer, scanning runs in its own goroutine so that the parser can pull
tokens lazily without the lexer needing to know anything about grammar;
this vocabulary is the tiny closed set the grammar
describes instead of a general-purpose language's full token set.
*/
type lexer struct {
	name   string
	input  string
	pos    int // byte offset of the next rune to read
	start  int // byte offset of the start of the current token
	line   int
	lastnl int // byte offset of the last newline, for column calculation
	tokens chan Token
}

/*
Lex starts scanning input and returns a channel of tokens terminated by a
TokenEOF (or a TokenError, if scanning failed). name is used only to
qualify diagnostics when multiple sources are in play.
*/
func Lex(name, input string) <-chan Token {
	l := &lexer{
		name:   name,
		input:  input,
		line:   1,
		lastnl: -1,
		tokens: make(chan Token),
	}
	go l.run()
	return l.tokens
}

func (l *lexer) run() {
	defer close(l.tokens)

	for {
		l.skipWhitespaceAndComments()
		l.start = l.pos

		r := l.next()
		if r == eof {
			l.emit(TokenEOF, "")
			return
		}

		switch {
		case r == '(':
			l.emit(TokenLBRACK, "")
		case r == ')':
			l.emit(TokenRBRACK, "")
		case r == '+':
			l.emit(TokenPLUS, "")
		case r >= '0' && r <= '9':
			l.lexNumber()
		case isNameStart(r):
			l.lexName()
		default:
			l.emitError(fmt.Sprintf("Unexpected character %q", r))
			return
		}
	}
}

func (l *lexer) lexNumber() {
	for isDigit(l.peek()) {
		l.next()
	}
	if maxLen := camconfig.Int(camconfig.MaxTokenLen); l.pos-l.start > maxLen {
		l.emitError(fmt.Sprintf("token exceeds maximum length of %d", maxLen))
		return
	}
	l.emit(TokenNUM, l.input[l.start:l.pos])
}

func (l *lexer) lexName() {
	for isNameRune(l.peek()) {
		l.next()
	}
	if maxLen := camconfig.Int(camconfig.MaxTokenLen); l.pos-l.start > maxLen {
		l.emitError(fmt.Sprintf("token exceeds maximum length of %d", maxLen))
		return
	}

	text := l.input[l.start:l.pos]
	if text == "lambda" {
		l.emit(TokenLAMBDA, "")
		return
	}
	l.emit(TokenVAR, text)
}

func (l *lexer) skipWhitespaceAndComments() {
	for {
		switch r := l.peek(); {
		case r == ';':
			for l.peek() != '\n' && l.peek() != eof {
				l.next()
			}
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.next()
		default:
			return
		}
	}
}

/*
next consumes and returns the next rune, or eof at the end of input.
*/
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if r == '\n' {
		l.line++
		l.lastnl = l.pos
	}
	l.pos += size
	return r
}

/*
peek returns the next rune without consuming it.
*/
func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *lexer) position() pos.Pos {
	return pos.Pos{Line: l.line, Col: l.start - l.lastnl}
}

func (l *lexer) emit(kind TokenKind, val string) {
	l.tokens <- Token{kind, val, l.position()}
}

func (l *lexer) emitError(msg string) {
	l.tokens <- Token{TokenError, msg, l.position()}
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameRune(r rune) bool {
	return isNameStart(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
