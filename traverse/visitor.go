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
Package traverse implements the generic pre/in/post walker shared by the
optimizer and the CAM evaluator. Both components are tree walks over the
same closed AST node set; this package is the one place that knows how to
visit each shape, so neither component has to repeat the other's walking
logic.

Rather than emulate "is-a" subtyping by placing a base struct first in a
derived struct and casting (the source's approach), a visitor here is any
type implementing the Visitor capability interface. Embed BaseVisitor to
get a no-op default for every hook and only override the ones that matter.
*/
package traverse

import "github.com/krotik/camc/ast"

/*
Result is returned by every visitor hook to tell the walker what to do
next.
*/
type Result int

const (

	/*
		Continue proceeds to the next scheduled step.
	*/
	Continue Result = iota

	/*
		Skip, returned from a pre-visit hook, skips the subtree: neither its
		children nor its post-visit hook run. Used by the CAM evaluator on
		Cur, whose body must not be walked eagerly. Returned from the Pair
		in-visit hook it skips only the right child (the post-visit hook
		still runs).
	*/
	Skip

	/*
		Abort terminates the traversal immediately. The caller is
		responsible for releasing any partially-built output.
	*/
	Abort
)

/*
Visitor is the capability a tree walk dispatches to. There are thirteen
hooks: one per leaf kind (Id, Fst, Snd, Quote, Plus, App), pre/post for
Comp and Cur, and pre/in/post for Pair.
*/
type Visitor interface {
	VisitId(*ast.Id) Result
	VisitFst(*ast.Fst) Result
	VisitSnd(*ast.Snd) Result
	VisitQuote(*ast.Quote) Result
	VisitPlus(*ast.Plus) Result
	VisitApp(*ast.App) Result

	PreComp(*ast.Comp) Result
	PostComp(*ast.Comp) Result

	PrePair(*ast.Pair) Result
	InPair(*ast.Pair) Result
	PostPair(*ast.Pair) Result

	PreCur(*ast.Cur) Result
	PostCur(*ast.Cur) Result
}

/*
BaseVisitor implements Visitor with a no-op Continue for every hook. Embed
it anonymously and override only the hooks a particular walk cares about.
*/
type BaseVisitor struct{}

func (BaseVisitor) VisitId(*ast.Id) Result       { return Continue }
func (BaseVisitor) VisitFst(*ast.Fst) Result     { return Continue }
func (BaseVisitor) VisitSnd(*ast.Snd) Result     { return Continue }
func (BaseVisitor) VisitQuote(*ast.Quote) Result { return Continue }
func (BaseVisitor) VisitPlus(*ast.Plus) Result   { return Continue }
func (BaseVisitor) VisitApp(*ast.App) Result     { return Continue }

func (BaseVisitor) PreComp(*ast.Comp) Result  { return Continue }
func (BaseVisitor) PostComp(*ast.Comp) Result { return Continue }

func (BaseVisitor) PrePair(*ast.Pair) Result  { return Continue }
func (BaseVisitor) InPair(*ast.Pair) Result   { return Continue }
func (BaseVisitor) PostPair(*ast.Pair) Result { return Continue }

func (BaseVisitor) PreCur(*ast.Cur) Result  { return Continue }
func (BaseVisitor) PostCur(*ast.Cur) Result { return Continue }

/*
Walk dispatches n and, unless a hook returns Skip or Abort, its children to
v. It returns Abort if any hook aborted the traversal, Continue otherwise.
*/
func Walk(n ast.Node, v Visitor) Result {
	switch t := n.(type) {

	case *ast.Id:
		return firstNonContinue(v.VisitId(t))
	case *ast.Fst:
		return firstNonContinue(v.VisitFst(t))
	case *ast.Snd:
		return firstNonContinue(v.VisitSnd(t))
	case *ast.Quote:
		return firstNonContinue(v.VisitQuote(t))
	case *ast.Plus:
		return firstNonContinue(v.VisitPlus(t))
	case *ast.App:
		return firstNonContinue(v.VisitApp(t))

	case *ast.Cur:
		switch v.PreCur(t) {
		case Abort:
			return Abort
		case Skip:
			return Continue
		}
		if Walk(t.Body, v) == Abort {
			return Abort
		}
		return firstNonContinue(v.PostCur(t))

	case *ast.Pair:
		switch v.PrePair(t) {
		case Abort:
			return Abort
		case Skip:
			return Continue
		}
		if Walk(t.Left, v) == Abort {
			return Abort
		}
		switch v.InPair(t) {
		case Abort:
			return Abort
		case Skip:
			return firstNonContinue(v.PostPair(t))
		}
		if Walk(t.Right, v) == Abort {
			return Abort
		}
		return firstNonContinue(v.PostPair(t))

	case *ast.Comp:
		switch v.PreComp(t) {
		case Abort:
			return Abort
		case Skip:
			return Continue
		}
		for _, c := range t.Children {
			if Walk(c, v) == Abort {
				return Abort
			}
		}
		return firstNonContinue(v.PostComp(t))
	}

	return Continue
}

/*
firstNonContinue normalizes a leaf/post-visit hook result: Skip has no
further meaning once there is nothing left to skip, so it collapses to
Continue; Abort propagates.
*/
func firstNonContinue(r Result) Result {
	if r == Abort {
		return Abort
	}
	return Continue
}
