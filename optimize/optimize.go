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
Package optimize rewrites a categorical AST into an equivalent but smaller
one by repeatedly applying six local identities until none of them fire
any more:

  1. Fst following Pair(f, g) collapses to f.
  2. Snd following Pair(f, g) collapses to g.
  3. App following Pair(Cur(f), g) inlines to Pair(Id, g) then f (beta).
  4. A Comp nested directly inside another Comp splices into its parent.
  5. Id is elided wherever it appears inside a Comp.
  6. A Comp left with no children canonicalizes to Id.

The rewrite never changes what a tree computes, only how many
instructions it takes to compute it; ast.Equal(before, after) never holds
on a tree the rewrite actually changed, but running both through the cam
package on the same input always agrees.
*/
package optimize

import (
	"bytes"
	"fmt"

	"devt.de/krotik/common/sortutil"

	"github.com/krotik/camc/ast"
	"github.com/krotik/camc/camconfig"
	"github.com/krotik/camc/camerr"
	"github.com/krotik/camc/traverse"
)

/*
Names of the six rewrite identities, used as Stats.Rewrites keys.
*/
const (
	RuleFstOfPair  = "fst-of-pair"
	RuleSndOfPair  = "snd-of-pair"
	RuleBeta       = "beta"
	RuleCompSplice = "comp-splice"
	RuleIDElision  = "id-elision"
	RuleEmptyComp  = "empty-comp"
)

/*
Stats summarizes one call to Optimize: how many whole-tree passes it took
to reach a fixpoint, the size of the resulting tree, and how many times
each rewrite identity fired across every pass.
*/
type Stats struct {
	Passes    int
	NodeCount int
	Rewrites  map[string]int
}

/*
String renders Stats for the CLI's -stats output. Rewrite names are sorted
with sortutil.InterfaceStrings so the line is reproducible across runs
instead of depending on Go's randomized map iteration order.
*/
func (s Stats) String() string {
	if len(s.Rewrites) == 0 {
		return fmt.Sprintf("%d pass(es), %d node(s), no rewrites fired", s.Passes, s.NodeCount)
	}

	names := make([]interface{}, 0, len(s.Rewrites))
	for name := range s.Rewrites {
		names = append(names, name)
	}
	sortutil.InterfaceStrings(names)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d pass(es), %d node(s), rewrites:", s.Passes, s.NodeCount)
	for _, name := range names {
		fmt.Fprintf(&buf, " %s=%d", name, s.Rewrites[name.(string)])
	}
	return buf.String()
}

/*
Optimize rewrites n to a fixpoint - a tree no further pass changes - and
returns it along with Stats. If the tree has not stabilized after the
configured pass bound (camconfig.OptimizerPassBound, scaled to n's size),
Optimize gives up and returns camerr.ErrOptimizerDivergence; this should
only happen if a bug lets a pass grow the tree without end, never on a
well-formed input.
*/
func Optimize(n ast.Node) (ast.Node, Stats, error) {
	bound := camconfig.OptimizerPassBound(ast.Count(n))
	totals := make(map[string]int)

	cur := n
	for pass := 1; pass <= bound; pass++ {
		next, counts := optimizeOnce(cur)
		for name, c := range counts {
			totals[name] += c
		}
		if ast.Equal(cur, next) {
			return next, Stats{Passes: pass, NodeCount: ast.Count(next), Rewrites: totals}, nil
		}
		cur = next
	}

	return nil, Stats{Passes: bound, NodeCount: ast.Count(cur), Rewrites: totals}, camerr.ErrOptimizerDivergence
}

/*
OptimizeOnce makes one bottom-up pass over n. Each Comp's child list is
flattened, stripped of Id and reduced with the Fst/Snd-of-Pair and beta
identities until that list stops changing; Pair and Cur nodes are rebuilt
around their rewritten children. Calling it repeatedly until the tree stops
changing is what Optimize does; most callers want Optimize instead.
*/
func OptimizeOnce(n ast.Node) ast.Node {
	node, _ := optimizeOnce(n)
	return node
}

func optimizeOnce(n ast.Node) (ast.Node, map[string]int) {
	o := &optimizer{counts: make(map[string]int)}
	traverse.Walk(n, o)
	return o.pop(), o.counts
}

/*
optimizer rebuilds a tree bottom-up on an explicit stack: each hook pops
the already-rewritten children it expects and pushes the rewritten parent,
so by the time Walk returns the stack holds exactly the new root. counts
tallies how many times each rewrite identity fired during this one pass.
*/
type optimizer struct {
	traverse.BaseVisitor
	stack  []ast.Node
	counts map[string]int
}

func (o *optimizer) push(n ast.Node) { o.stack = append(o.stack, n) }

func (o *optimizer) pop() ast.Node {
	n := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	return n
}

func (o *optimizer) VisitId(n *ast.Id) traverse.Result {
	o.push(ast.NewId(n.Position()))
	return traverse.Continue
}

func (o *optimizer) VisitFst(n *ast.Fst) traverse.Result {
	o.push(ast.NewFst(n.Position()))
	return traverse.Continue
}

func (o *optimizer) VisitSnd(n *ast.Snd) traverse.Result {
	o.push(ast.NewSnd(n.Position()))
	return traverse.Continue
}

func (o *optimizer) VisitQuote(n *ast.Quote) traverse.Result {
	o.push(ast.NewQuote(n.N, n.Position()))
	return traverse.Continue
}

func (o *optimizer) VisitPlus(n *ast.Plus) traverse.Result {
	o.push(ast.NewPlus(n.Position()))
	return traverse.Continue
}

func (o *optimizer) VisitApp(n *ast.App) traverse.Result {
	o.push(ast.NewApp(n.Position()))
	return traverse.Continue
}

func (o *optimizer) PostPair(n *ast.Pair) traverse.Result {
	right := o.pop()
	left := o.pop()
	o.push(ast.NewPair(left, right, n.Position()))
	return traverse.Continue
}

func (o *optimizer) PostCur(n *ast.Cur) traverse.Result {
	body := o.pop()
	o.push(ast.NewCur(body, n.Position()))
	return traverse.Continue
}

func (o *optimizer) PostComp(n *ast.Comp) traverse.Result {
	children := make([]ast.Node, len(n.Children))
	for i := len(children) - 1; i >= 0; i-- {
		children[i] = o.pop()
	}

	canon := o.canonicalizeChildren(children)
	if len(canon) == 0 {
		o.counts[RuleEmptyComp]++
		o.push(ast.NewId(n.Position()))
		return traverse.Continue
	}
	o.push(ast.NewComp(canon, n.Position()))
	return traverse.Continue
}

/*
canonicalizeChildren flattens nested Comp children and elides Id, then
applies the Fst/Snd-of-Pair and beta identities left to right until no
pass changes the list. The iteration count is bounded defensively in
proportion to the list's own size - a bug that kept the list growing
forever would otherwise hang the optimizer on a single Comp node.
*/
func (o *optimizer) canonicalizeChildren(children []ast.Node) []ast.Node {
	list := o.flatten(children)

	maxIter := len(list)*4 + 16
	for iter := 0; iter < maxIter; iter++ {
		next, changed := o.reducePass(list)
		if !changed {
			return next
		}
		list = next
	}
	return list
}

/*
flatten splices any *ast.Comp child into its parent's child list and
drops any *ast.Id child, recursively - a Comp produced by beta-inlining a
function body can itself contain Comp or Id children that need the same
treatment.
*/
func (o *optimizer) flatten(children []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(children))
	for _, n := range children {
		switch t := n.(type) {
		case *ast.Comp:
			o.counts[RuleCompSplice]++
			out = append(out, o.flatten(t.Children)...)
		case *ast.Id:
			o.counts[RuleIDElision]++
		default:
			out = append(out, n)
		}
	}
	return out
}

/*
reducePass scans list once, left to right, applying whichever of the
Fst/Snd-of-Pair or beta identities matches at the current position, and
reports whether anything changed.
*/
func (o *optimizer) reducePass(list []ast.Node) ([]ast.Node, bool) {
	out := make([]ast.Node, 0, len(list))
	changed := false

	i := 0
	for i < len(list) {
		if i+1 < len(list) {
			if pair, ok := list[i].(*ast.Pair); ok {
				switch list[i+1].(type) {
				case *ast.Fst:
					out = append(out, pair.Left)
					o.counts[RuleFstOfPair]++
					i += 2
					changed = true
					continue
				case *ast.Snd:
					out = append(out, pair.Right)
					o.counts[RuleSndOfPair]++
					i += 2
					changed = true
					continue
				case *ast.App:
					if cur, ok := pair.Left.(*ast.Cur); ok {
						out = append(out,
							ast.NewPair(ast.NewId(pair.Position()), pair.Right, pair.Position()),
							cur.Body)
						o.counts[RuleBeta]++
						i += 2
						changed = true
						continue
					}
				}
			}
		}
		out = append(out, list[i])
		i++
	}

	return o.flatten(out), changed
}
