/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

/*
Equal reports whether a and b have the same shape and the same literal
payloads. Positions are ignored - two nodes parsed from different source
spans can still be the same tree as far as a rewrite pass is concerned.
*/
func Equal(a, b Node) bool {
	switch ta := a.(type) {
	case *Id:
		_, ok := b.(*Id)
		return ok
	case *Fst:
		_, ok := b.(*Fst)
		return ok
	case *Snd:
		_, ok := b.(*Snd)
		return ok
	case *Plus:
		_, ok := b.(*Plus)
		return ok
	case *App:
		_, ok := b.(*App)
		return ok
	case *Quote:
		tb, ok := b.(*Quote)
		return ok && ta.N == tb.N
	case *Cur:
		tb, ok := b.(*Cur)
		return ok && Equal(ta.Body, tb.Body)
	case *Pair:
		tb, ok := b.(*Pair)
		return ok && Equal(ta.Left, tb.Left) && Equal(ta.Right, tb.Right)
	case *Comp:
		tb, ok := b.(*Comp)
		if !ok || len(ta.Children) != len(tb.Children) {
			return false
		}
		for i, c := range ta.Children {
			if !Equal(c, tb.Children[i]) {
				return false
			}
		}
		return true
	}
	return false
}

/*
Count returns the number of nodes in the tree rooted at n, including n
itself. Used to size the optimizer's defensive pass bound.
*/
func Count(n Node) int {
	switch t := n.(type) {
	case *Cur:
		return 1 + Count(t.Body)
	case *Pair:
		return 1 + Count(t.Left) + Count(t.Right)
	case *Comp:
		total := 1
		for _, c := range t.Children {
			total += Count(c)
		}
		return total
	default:
		return 1
	}
}
