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
	"errors"
	"testing"

	"github.com/krotik/camc/ast"
	"github.com/krotik/camc/camerr"
	"github.com/krotik/camc/pos"
)

func mustParse(t *testing.T, input string) ast.Node {
	t.Helper()
	n, err := Parse("test", input)
	if err != nil {
		t.Fatalf("Parse(%q) returned unexpected error: %v", input, err)
	}
	return n
}

func TestParseVariableResolvesToIdentity(t *testing.T) {
	// ((lambda (x) x) 5) parses to Comp(Pair(Cur(Comp(Snd)), Quote(5)), App).
	got := mustParse(t, "((lambda (x) x) 5)")
	identity := ast.NewCur(ast.NewComp([]ast.Node{ast.NewSnd(pos.None)}, pos.None), pos.None)
	want := ast.NewComp([]ast.Node{
		ast.NewPair(identity, ast.NewQuote(5, pos.None), pos.None),
		ast.NewApp(pos.None),
	}, pos.None)

	if !ast.Equal(got, want) {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestParseOuterVariableGetsOneFst(t *testing.T) {
	// ((lambda (x) ((lambda (y) x) 2)) 1) - x is bound one level out, so one Fst.
	got := mustParse(t, "((lambda (x) ((lambda (y) x) 2)) 1)")
	inner := ast.NewComp([]ast.Node{ast.NewFst(pos.None), ast.NewSnd(pos.None)}, pos.None)
	innerApp := ast.NewComp([]ast.Node{
		ast.NewPair(ast.NewCur(inner, pos.None), ast.NewQuote(2, pos.None), pos.None),
		ast.NewApp(pos.None),
	}, pos.None)
	want := ast.NewComp([]ast.Node{
		ast.NewPair(ast.NewCur(innerApp, pos.None), ast.NewQuote(1, pos.None), pos.None),
		ast.NewApp(pos.None),
	}, pos.None)

	if !ast.Equal(got, want) {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestParseShadowing(t *testing.T) {
	// ((lambda (x) ((lambda (x) x) 2)) 1) - innermost x shadows, resolves with zero Fst.
	got := mustParse(t, "((lambda (x) ((lambda (x) x) 2)) 1)")
	inner := ast.NewComp([]ast.Node{ast.NewSnd(pos.None)}, pos.None)
	innerApp := ast.NewComp([]ast.Node{
		ast.NewPair(ast.NewCur(inner, pos.None), ast.NewQuote(2, pos.None), pos.None),
		ast.NewApp(pos.None),
	}, pos.None)
	want := ast.NewComp([]ast.Node{
		ast.NewPair(ast.NewCur(innerApp, pos.None), ast.NewQuote(1, pos.None), pos.None),
		ast.NewApp(pos.None),
	}, pos.None)

	if !ast.Equal(got, want) {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestParseNumberLiteral(t *testing.T) {
	got := mustParse(t, "42")
	want := ast.NewQuote(42, pos.None)

	if !ast.Equal(got, want) {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestParseSumRequiresTwoOperands(t *testing.T) {
	_, err := Parse("test", "(+ 1)")
	assertCause(t, err, camerr.ErrUnexpectedToken)
}

func TestParseSumFoldsThreeOperands(t *testing.T) {
	// (+ 1 2 3) should parse without error and use two nested applications.
	got := mustParse(t, "(+ 1 2 3)")
	if _, ok := got.(*ast.Comp); !ok {
		t.Fatalf("expected a Comp at the root, got %T", got)
	}
}

func TestParseApplication(t *testing.T) {
	got := mustParse(t, "((lambda (x) x) 5)")
	if _, ok := got.(*ast.Comp); !ok {
		t.Fatalf("expected a Comp at the root, got %T", got)
	}
}

func TestParseUnboundVariable(t *testing.T) {
	_, err := Parse("test", "((lambda (x) y) 1)")
	assertCause(t, err, camerr.ErrUnboundVariable)

	var pe *camerr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *camerr.ParseError, got %T", err)
	}
	if pe.Error() != "Unbound variable: y." {
		t.Errorf("got %q", pe.Error())
	}
}

func TestParseUnexpectedEndOfInput(t *testing.T) {
	_, err := Parse("test", "((lambda (x)")
	assertCause(t, err, camerr.ErrUnexpectedEnd)

	var pe *camerr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *camerr.ParseError, got %T", err)
	}
	if pe.Error() != "Unexpected end of input." {
		t.Errorf("got %q", pe.Error())
	}
}

// Scenario 6 of the end-to-end examples: the operator of an application is
// an abstraction whose body, rather than the outer form, is malformed - "f"
// appears where a fresh abstraction is required.
func TestParseMisappliedBodyReportsOffendingToken(t *testing.T) {
	_, err := Parse("test", "((lambda (f) (f 5)) (lambda (y) (+ y 1)))")

	var pe *camerr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *camerr.ParseError, got %T", err)
	}
	if pe.Error() != "Unexpected token: f." {
		t.Errorf("got %q", pe.Error())
	}
}

func TestParseTrailingTokensRejected(t *testing.T) {
	_, err := Parse("test", "5 5")
	assertCause(t, err, camerr.ErrUnexpectedToken)
}

func TestParseMultiArgApplication(t *testing.T) {
	got := mustParse(t, "((lambda (x y) (+ x y)) 2 3)")
	if _, ok := got.(*ast.Comp); !ok {
		t.Fatalf("expected a Comp at the root, got %T", got)
	}
}

func TestParseCurriedApplication(t *testing.T) {
	got := mustParse(t, "((lambda (x) ((lambda (y) (+ x y)) 3)) 2)")
	if _, ok := got.(*ast.Comp); !ok {
		t.Fatalf("expected a Comp at the root, got %T", got)
	}
}

func assertCause(t *testing.T, err error, cause error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with cause %v, got nil", cause)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause %v, got %v", cause, err)
	}
}
