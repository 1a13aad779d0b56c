/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package parser implements the recursive-descent parser: it
turns a token stream into a point-free categorical AST, resolving every
variable reference to a De Bruijn-derived Fst/Snd composition as it goes.

Grammar (informal EBNF):

	expr  ::= VAR | NUM | '(' app-or-sum ')'
	app-or-sum
	      ::= '+' expr expr {expr}         -- sum, >= 2 operands
	        | abs expr {expr}              -- application of an abstraction
	abs   ::= '(' 'lambda' '(' VAR {VAR} ')' expr ')'

An application's operator must be syntactically an abstraction; a sum
needs at least two operands; parentheses are mandatory around every
compound form.
*/
package parser

import (
	"math"
	"strconv"

	"github.com/krotik/camc/ast"
	"github.com/krotik/camc/camerr"
	"github.com/krotik/camc/scope"
)

/*
parser holds the mutable state of a single parse: the look-ahead token
buffer and the De Bruijn scope, both stack-scoped to this call.
*/
type parser struct {
	source string
	buf    *laBuffer
	scope  *scope.Scope
}

/*
Parse consumes the entire token stream produced from input and returns the
categorical AST it denotes, or a *camerr.ParseError describing the first
malformed construct, unexpected end of input, or unbound variable
encountered. source names the input for diagnostics only.
*/
func Parse(source, input string) (ast.Node, error) {
	p := &parser{
		source: source,
		buf:    newLABuffer(Lex(source, input), 4),
		scope:  scope.New(),
	}

	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	tok := p.buf.peek(0)
	if tok.Kind != TokenEOF {
		return nil, p.errorAt(camerr.ErrUnexpectedToken, tok)
	}

	return node, nil
}

func (p *parser) errorAt(cause error, tok Token) error {
	detail := tok.Val
	if detail == "" && tok.Kind != TokenEOF {
		detail = tok.Kind.String()
	}
	if cause == camerr.ErrUnexpectedEnd {
		detail = ""
	}
	return camerr.NewParseError(p.source, cause, detail, tok.Pos)
}

/*
expect consumes the next token and checks its kind, producing an
"Unexpected end of input."/"Unexpected token: X." diagnostic on mismatch.
*/
func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.buf.peek(0)
	if tok.Kind == TokenEOF && kind != TokenEOF {
		return tok, p.errorAt(camerr.ErrUnexpectedEnd, tok)
	}
	if tok.Kind == TokenError {
		return tok, p.errorAt(camerr.ErrLexical, tok)
	}
	if tok.Kind != kind {
		return tok, p.errorAt(camerr.ErrUnexpectedToken, tok)
	}
	return p.buf.next(), nil
}

// parseExpr implements the `expr` production.
func (p *parser) parseExpr() (ast.Node, error) {
	tok := p.buf.peek(0)

	switch tok.Kind {
	case TokenVAR:
		p.buf.next()
		return p.resolveVar(tok)

	case TokenNUM:
		p.buf.next()
		return parseNum(tok), nil

	case TokenLBRACK:
		p.buf.next()
		node, err := p.parseAppOrSum()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRBRACK); err != nil {
			return nil, err
		}
		return node, nil

	case TokenError:
		return nil, p.errorAt(camerr.ErrLexical, tok)

	case TokenEOF:
		return nil, p.errorAt(camerr.ErrUnexpectedEnd, tok)

	default:
		return nil, p.errorAt(camerr.ErrUnexpectedToken, tok)
	}
}

/*
resolveVar turns a bound variable reference into Comp(Fst, ..., Fst, Snd)
with exactly k copies of Fst run first (each peels one level of nesting
off the environment) followed by a single trailing Snd that extracts the
value, where k is the De Bruijn index of the innermost binding of the
name.
*/
func (p *parser) resolveVar(tok Token) (ast.Node, error) {
	k, ok := p.scope.Resolve(tok.Val)
	if !ok {
		return nil, p.errorAt(camerr.ErrUnboundVariable, tok)
	}

	children := make([]ast.Node, 0, k+1)
	for i := 0; i < k; i++ {
		children = append(children, ast.NewFst(tok.Pos))
	}
	children = append(children, ast.NewSnd(tok.Pos))
	return ast.NewComp(children, tok.Pos), nil
}

/*
parseNum parses a NUM token's digit string into a Quote node, saturating
at math.MaxInt64 on overflow (the documented overflow rule) rather than
wrapping or failing the parse.
*/
func parseNum(tok Token) ast.Node {
	n, err := strconv.ParseInt(tok.Val, 10, 64)
	if err != nil {
		n = math.MaxInt64
	}
	return ast.NewQuote(n, tok.Pos)
}

// parseAppOrSum implements the `app-or-sum` production.
func (p *parser) parseAppOrSum() (ast.Node, error) {
	tok := p.buf.peek(0)

	if tok.Kind == TokenPLUS {
		p.buf.next()
		return p.parseSum()
	}

	if tok.Kind != TokenLBRACK {
		return nil, p.errorAt(camerr.ErrUnexpectedToken, tok)
	}

	abs, arity, err := p.parseAbs()
	if err != nil {
		return nil, err
	}
	return p.parseApp(abs, arity)
}

/*
parseAbs implements the `abs` production: '(' 'lambda' '(' VAR {VAR} ')'
expr ')'. It pushes the parameter names onto the scope in order (so the
last parameter is topmost/innermost), parses the body under that extended
scope, and returns Cur^n(body) together with n, the abstraction's arity.
*/
func (p *parser) parseAbs() (ast.Node, int, error) {
	open, err := p.expect(TokenLBRACK)
	if err != nil {
		return nil, 0, err
	}
	if _, err := p.expect(TokenLAMBDA); err != nil {
		return nil, 0, err
	}
	if _, err := p.expect(TokenLBRACK); err != nil {
		return nil, 0, err
	}

	var names []string
	for p.buf.peek(0).Kind == TokenVAR {
		tok, _ := p.expect(TokenVAR)
		names = append(names, tok.Val)
	}
	if len(names) == 0 {
		return nil, 0, p.errorAt(camerr.ErrUnexpectedToken, p.buf.peek(0))
	}

	if _, err := p.expect(TokenRBRACK); err != nil {
		return nil, 0, err
	}

	mark := p.scope.Depth()
	for _, name := range names {
		p.scope.Push(name)
	}

	body, err := p.parseExpr()

	p.scope.PopTo(mark)

	if err != nil {
		return nil, 0, err
	}

	if _, err := p.expect(TokenRBRACK); err != nil {
		return nil, 0, err
	}

	node := body
	for range names {
		node = ast.NewCur(node, open.Pos)
	}

	return node, len(names), nil
}

/*
parseApp folds exactly arity further expressions onto abs, building
  a <- Comp(Pair(a_prev, M_i'), App)
for each operand in order: Pair runs first, building the (closure, value)
environment App needs, with App running second to actually apply it. A
token other than the closing ')' after exactly arity operands is a syntax
error, enforced naturally by the caller's subsequent expect(TokenRBRACK).
*/
func (p *parser) parseApp(abs ast.Node, arity int) (ast.Node, error) {
	a := abs
	for i := 0; i < arity; i++ {
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		at := operand.Position()
		a = ast.NewComp([]ast.Node{ast.NewPair(a, operand, at), ast.NewApp(at)}, at)
	}
	return a, nil
}

/*
parseSum implements the `+` alternative of app-or-sum: at least two
operands, folded left to right via
  r <- Comp(Pair(Cur(Comp(Snd, Plus)), Pair(r, M_i')), App)
where the Pair runs first, then App. The PLUS token has already been
consumed by the caller.
*/
func (p *parser) parseSum() (ast.Node, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	operands := []ast.Node{first}
	for p.buf.peek(0).Kind != TokenRBRACK {
		if p.buf.peek(0).Kind == TokenEOF {
			return nil, p.errorAt(camerr.ErrUnexpectedEnd, p.buf.peek(0))
		}
		next, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}

	if len(operands) < 2 {
		return nil, p.errorAt(camerr.ErrUnexpectedToken, p.buf.peek(0))
	}

	r := operands[0]
	for _, mi := range operands[1:] {
		p0 := r.Position()
		adder := ast.NewCur(ast.NewComp([]ast.Node{ast.NewSnd(p0), ast.NewPlus(p0)}, p0), p0)
		r = ast.NewComp([]ast.Node{
			ast.NewPair(adder, ast.NewPair(r, mi, p0), p0),
			ast.NewApp(p0),
		}, p0)
	}

	return r, nil
}
