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
Package ast models the categorical abstract syntax tree produced by the
parser, rewritten by the optimizer and executed by the CAM evaluator.

The node set is closed: Id, Fst, Snd, Quote, Plus, App, Cur, Pair and Comp
are the only categorical combinators this compiler knows about. Every tree
is uniquely owned by its parent - there is no node sharing and no cycles -
so a tree can simply be dropped once its replacement exists.
*/
package ast

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"

	"github.com/krotik/camc/pos"
)

/*
Node is implemented by every categorical combinator. It carries no
behaviour of its own - the traversal protocol in the traverse package is
what gives nodes meaning for the optimizer and the CAM evaluator.
*/
type Node interface {

	/*
		Position returns the source position this node was parsed from.
		Nodes the optimizer builds carry the position of the node they
		replace; pos.None marks a node built without a position.
	*/
	Position() pos.Pos

	/*
		String returns an indented, multi-line representation of this node
		and its children. Used for debugging and for the CLI's -ast flag.
	*/
	String() string

	node()
}

/*
base is embedded by every concrete node to provide the Position() method
and to seal the Node interface to this package.
*/
type base struct {
	Pos pos.Pos
}

func (b base) Position() pos.Pos { return b.Pos }
func (base) node()               {}

/*
Id is the identity combinator: Id(env) = env.
*/
type Id struct{ base }

/*
Fst projects the left component of a pair: Fst((x, y)) = x.
*/
type Fst struct{ base }

/*
Snd projects the right component of a pair: Snd((x, y)) = y.
*/
type Snd struct{ base }

/*
Quote carries a literal non-negative integer: Quote(n)(env) = n.
*/
type Quote struct {
	base
	N int64
}

/*
Plus adds the two integer components of a pair: Plus((m, n)) = m+n.
*/
type Plus struct{ base }

/*
App applies a closure to a value: App((clos(f, ctx), v)) = f(ctx, v).
*/
type App struct{ base }

/*
Cur curries its single child into an abstraction: Cur(f)(env) = v -> f((env, v)).
*/
type Cur struct {
	base
	Body Node
}

/*
Pair evaluates both children against the same environment and pairs the
results: Pair(f, g)(env) = (f(env), g(env)). Order is significant.
*/
type Pair struct {
	base
	Left  Node
	Right Node
}

/*
Comp is a sequential pipeline of zero or more children, executed left to
right: Comp(f1, ..., fk)(env) = fk(...(f2(f1(env)))...). f1 runs first,
against the Comp's own input; each subsequent fi runs against the result
of the one before it. This is the CAM instruction-sequence reading
(PUSH; QUOTE n; SWAP; CONS executes in the order written), not
mathematical function-composition order. After optimization no child of a
Comp is itself a Comp or Id, and an empty Comp is canonicalized to Id.
*/
type Comp struct {
	base
	Children []Node
}

/*
NewId creates an Id node at the given position.
*/
func NewId(p pos.Pos) *Id { return &Id{base{p}} }

/*
NewFst creates a Fst node at the given position.
*/
func NewFst(p pos.Pos) *Fst { return &Fst{base{p}} }

/*
NewSnd creates a Snd node at the given position.
*/
func NewSnd(p pos.Pos) *Snd { return &Snd{base{p}} }

/*
NewQuote creates a Quote node carrying n at the given position.
*/
func NewQuote(n int64, p pos.Pos) *Quote { return &Quote{base{p}, n} }

/*
NewPlus creates a Plus node at the given position.
*/
func NewPlus(p pos.Pos) *Plus { return &Plus{base{p}} }

/*
NewApp creates an App node at the given position.
*/
func NewApp(p pos.Pos) *App { return &App{base{p}} }

/*
NewCur creates a Cur node wrapping body at the given position.
*/
func NewCur(body Node, p pos.Pos) *Cur { return &Cur{base{p}, body} }

/*
NewPair creates a Pair node from left and right at the given position.
*/
func NewPair(left, right Node, p pos.Pos) *Pair { return &Pair{base{p}, left, right} }

/*
NewComp creates a Comp node from the given ordered children.
*/
func NewComp(children []Node, p pos.Pos) *Comp { return &Comp{base{p}, children} }

// String representations
// =======================

func (n *Id) String() string    { return n.level(0) }
func (n *Fst) String() string   { return n.level(0) }
func (n *Snd) String() string   { return n.level(0) }
func (n *Quote) String() string { return n.level(0) }
func (n *Plus) String() string  { return n.level(0) }
func (n *App) String() string   { return n.level(0) }
func (n *Cur) String() string   { return n.level(0) }
func (n *Pair) String() string  { return n.level(0) }
func (n *Comp) String() string  { return n.level(0) }

func indent(buf *bytes.Buffer, depth int) {
	buf.WriteString(stringutil.GenerateRollingString(" ", depth*2))
}

func (n *Id) level(depth int) string  { return indentOf(depth) + "Id" }
func (n *Fst) level(depth int) string { return indentOf(depth) + "Fst" }
func (n *Snd) level(depth int) string { return indentOf(depth) + "Snd" }
func (n *Quote) level(depth int) string {
	return fmt.Sprintf("%sQuote(%d)", indentOf(depth), n.N)
}
func (n *Plus) level(depth int) string { return indentOf(depth) + "Plus" }
func (n *App) level(depth int) string  { return indentOf(depth) + "App" }

func (n *Cur) level(depth int) string {
	var buf bytes.Buffer
	buf.WriteString(indentOf(depth))
	buf.WriteString("Cur\n")
	buf.WriteString(levelOf(n.Body, depth+1))
	return buf.String()
}

func (n *Pair) level(depth int) string {
	var buf bytes.Buffer
	buf.WriteString(indentOf(depth))
	buf.WriteString("Pair\n")
	buf.WriteString(levelOf(n.Left, depth+1))
	buf.WriteString("\n")
	buf.WriteString(levelOf(n.Right, depth+1))
	return buf.String()
}

func (n *Comp) level(depth int) string {
	var buf bytes.Buffer
	buf.WriteString(indentOf(depth))
	buf.WriteString("Comp")
	for _, c := range n.Children {
		buf.WriteString("\n")
		buf.WriteString(levelOf(c, depth+1))
	}
	return buf.String()
}

func indentOf(depth int) string {
	var buf bytes.Buffer
	indent(&buf, depth)
	return buf.String()
}

/*
levelOf renders any Node at the given indentation depth. It exists because
Go has no virtual-dispatch-with-argument for unexported methods across
concrete types without a type switch.
*/
func levelOf(n Node, depth int) string {
	switch t := n.(type) {
	case *Id:
		return t.level(depth)
	case *Fst:
		return t.level(depth)
	case *Snd:
		return t.level(depth)
	case *Quote:
		return t.level(depth)
	case *Plus:
		return t.level(depth)
	case *App:
		return t.level(depth)
	case *Cur:
		return t.level(depth)
	case *Pair:
		return t.level(depth)
	case *Comp:
		return t.level(depth)
	}
	return indentOf(depth) + "?"
}
