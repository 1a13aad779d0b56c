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
Package cam runs a categorical AST against the environment/stack machine
it was built to target: the evaluator walks the tree once, threading a
single current-environment register through every node and using a plain
slice as the stack Pair needs to hold one side of a computation while the
other runs.

The instruction semantics are exactly those the AST's own doc comments
describe: Id is a no-op, Fst/Snd project an environment built by Pair,
Quote/Plus compute an integer, Cur captures a closure over the current
environment without walking its body, and App unpacks a closure and
re-enters the walk on the closure's captured code.
*/
package cam

import (
	"fmt"

	"devt.de/krotik/common/errorutil"

	"github.com/krotik/camc/ast"
	"github.com/krotik/camc/traverse"
	"github.com/krotik/camc/value"
)

/*
Stats reports how much work an evaluation did, independent of its result -
used to compare a program's optimized and unoptimized forms: an
optimized program should never take more steps than the one it came from.
*/
type Stats struct {
	Steps         int
	MaxStackDepth int
}

/*
Evaluate runs code against the empty environment and returns the resulting
value. A malformed tree - one the optimizer or a hand-built AST got wrong,
such as Fst applied to a non-Pair - is a programmer error and panics via
errorutil.AssertTrue rather than returning an error; it is never something
a well-typed program produces at runtime.
*/
func Evaluate(code ast.Node) (value.Value, Stats) {
	return EvaluateIn(code, value.Nil)
}

/*
EvaluateIn runs code against env rather than the empty environment.
Evaluate calls it with value.Nil; App re-enters the walk directly on the
same evaluator instead. Exposed for callers that want to resume
evaluation under a specific environment (tests, mostly).
*/
func EvaluateIn(code ast.Node, env value.Value) (value.Value, Stats) {
	e := &evaluator{env: env}
	traverse.Walk(code, e)
	return e.env, Stats{Steps: e.steps, MaxStackDepth: e.maxStack}
}

/*
evaluator is a traverse.Visitor whose env register holds the environment
the walk has computed so far, and whose stack holds the left side of a
Pair while the right side is computed.
*/
type evaluator struct {
	traverse.BaseVisitor

	env   value.Value
	stack []value.Value

	steps    int
	maxStack int
}

func (e *evaluator) push(v value.Value) {
	e.stack = append(e.stack, v)
	if len(e.stack) > e.maxStack {
		e.maxStack = len(e.stack)
	}
}

func (e *evaluator) pop() value.Value {
	v := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return v
}

func (e *evaluator) step() {
	e.steps++
}

func (e *evaluator) VisitId(*ast.Id) traverse.Result {
	e.step()
	return traverse.Continue
}

func (e *evaluator) VisitFst(*ast.Fst) traverse.Result {
	e.step()
	p, ok := e.env.(value.Pair)
	errorutil.AssertTrue(ok, fmt.Sprintf("Fst applied to non-Pair environment %v", e.env))
	e.env = p.Left
	return traverse.Continue
}

func (e *evaluator) VisitSnd(*ast.Snd) traverse.Result {
	e.step()
	p, ok := e.env.(value.Pair)
	errorutil.AssertTrue(ok, fmt.Sprintf("Snd applied to non-Pair environment %v", e.env))
	e.env = p.Right
	return traverse.Continue
}

func (e *evaluator) VisitQuote(n *ast.Quote) traverse.Result {
	e.step()
	e.env = value.Int{N: n.N}
	return traverse.Continue
}

func (e *evaluator) VisitPlus(*ast.Plus) traverse.Result {
	e.step()
	p, ok := e.env.(value.Pair)
	errorutil.AssertTrue(ok, fmt.Sprintf("Plus applied to non-Pair environment %v", e.env))

	l, ok := p.Left.(value.Int)
	errorutil.AssertTrue(ok, fmt.Sprintf("Plus applied to non-Int left operand %v", p.Left))
	r, ok := p.Right.(value.Int)
	errorutil.AssertTrue(ok, fmt.Sprintf("Plus applied to non-Int right operand %v", p.Right))

	e.env = value.Int{N: saturatingAdd(l.N, r.N)}
	return traverse.Continue
}

/*
PreCur captures a closure over the current environment and Skips the
body: Cur's content is code to run later, under App, not now.
*/
func (e *evaluator) PreCur(n *ast.Cur) traverse.Result {
	e.step()
	e.env = value.Closure{Ctx: e.env, Code: n.Body}
	return traverse.Skip
}

/*
PrePair saves the environment Left and Right will both run against, by
pushing it so it survives Left's own mutation of e.env.
*/
func (e *evaluator) PrePair(*ast.Pair) traverse.Result {
	e.push(e.env)
	return traverse.Continue
}

/*
InPair fires between Left and Right: Left has just computed its result
into e.env, which must be saved so Right can run against the original
environment instead of Left's result.
*/
func (e *evaluator) InPair(*ast.Pair) traverse.Result {
	left := e.env
	e.env = e.pop()
	e.push(left)
	return traverse.Continue
}

/*
PostPair combines the saved Left result with the just-computed Right
result into the Pair value.
*/
func (e *evaluator) PostPair(*ast.Pair) traverse.Result {
	e.step()
	right := e.env
	left := e.pop()
	e.env = value.Pair{Left: left, Right: right}
	return traverse.Continue
}

/*
VisitApp unpacks a (Closure, value) pair out of the environment and
re-enters the walk on the closure's captured code, against an environment
built from the closure's own captured context and the argument.
*/
func (e *evaluator) VisitApp(*ast.App) traverse.Result {
	e.step()
	p, ok := e.env.(value.Pair)
	errorutil.AssertTrue(ok, fmt.Sprintf("App applied to non-Pair environment %v", e.env))

	clos, ok := p.Left.(value.Closure)
	errorutil.AssertTrue(ok, fmt.Sprintf("App applied to non-Closure left operand %v", p.Left))

	e.env = value.Pair{Left: clos.Ctx, Right: p.Right}
	return firstNonContinue(traverse.Walk(clos.Code, e))
}

func firstNonContinue(r traverse.Result) traverse.Result {
	if r == traverse.Abort {
		return traverse.Abort
	}
	return traverse.Continue
}

const maxInt64 = 1<<63 - 1

/*
saturatingAdd clamps to maxInt64 on overflow rather than wrapping into
negative territory - the same rule the parser applies to an over-long
numeral.
*/
func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if sum < a || sum < b {
		return maxInt64
	}
	return sum
}
