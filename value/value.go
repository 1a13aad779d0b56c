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
Package value models the runtime values the CAM evaluator produces: the
second, overlapping algebra that sits alongside the ast
package's compile-time node set.
*/
package value

import (
	"fmt"

	"github.com/krotik/camc/ast"
)

/*
Value is implemented by every runtime value: Int, Pair, Closure and the
Nil singleton.
*/
type Value interface {
	String() string
	value()
}

/*
Int is a non-negative (after saturation, possibly clamped) integer value.
*/
type Int struct {
	N int64
}

/*
Pair is an ordered pair of owned values.
*/
type Pair struct {
	Left  Value
	Right Value
}

/*
Closure pairs a captured environment with a borrowed reference to the body
of the Cur node that produced it. code aliases a subtree of the program
AST: the AST that was passed to cam.Evaluate must outlive every Closure
derived from that evaluation, since nothing in this package keeps the
program AST alive on the closure's behalf.
*/
type Closure struct {
	Ctx  Value
	Code ast.Node
}

/*
nilValue is the empty environment, the 0-tuple every evaluation starts
from.
*/
type nilValue struct{}

/*
Nil is the singleton empty environment value.
*/
var Nil Value = nilValue{}

func (Int) value()      {}
func (Pair) value()     {}
func (Closure) value()  {}
func (nilValue) value() {}

func (v Int) String() string { return fmt.Sprintf("%d", v.N) }

func (v Pair) String() string { return fmt.Sprintf("(%s, %s)", v.Left.String(), v.Right.String()) }

func (v Closure) String() string { return "<closure>" }

func (nilValue) String() string { return "()" }
