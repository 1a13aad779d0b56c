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
Package scope implements the parser's De Bruijn resolution scope: a stack
of bound names, innermost binding on top, searched from the top down to
turn a variable reference into a binding distance.

This stands in for the ECAL runtime's map-based variable scope that this
package started life as - the CAM has no named variables at runtime, only
positional Fst/Snd projections, so there is nothing left to store per name
beyond the name itself and its position in the stack.
*/
package scope

import (
	"fmt"
	"strings"
)

/*
Scope is a stack of bound names used to resolve a variable reference to a
De Bruijn index during parsing. It is not safe for concurrent use; the
parser that owns one is single-threaded.
*/
type Scope struct {
	names []string
}

/*
New creates an empty scope.
*/
func New() *Scope {
	return &Scope{}
}

/*
Push binds name, making it the new innermost (topmost) binding. Returns
the new depth, which the caller should remember in order to Pop back to
this point on return from the enclosing abstraction's parse frame.
*/
func (s *Scope) Push(name string) int {
	s.names = append(s.names, name)
	return len(s.names)
}

/*
PopTo truncates the scope back to depth, discarding every binding pushed
after it. depth must be a value previously returned by Push (or 0 for the
empty scope); this is how the scope's stack-local lifetime is
restored when a parse function returns.
*/
func (s *Scope) PopTo(depth int) {
	s.names = s.names[:depth]
}

/*
Resolve searches the scope from the top (innermost) binding downward for
the first occurrence of name and returns its zero-based De Bruijn index -
the number of more-recently-bound names, including shadowed occurrences of
name itself, that sit above the match. The second return value is false
if no binding of name exists.
*/
func (s *Scope) Resolve(name string) (int, bool) {
	for i := len(s.names) - 1; i >= 0; i-- {
		if s.names[i] == name {
			return len(s.names) - 1 - i, true
		}
	}
	return 0, false
}

/*
Depth returns the number of names currently bound.
*/
func (s *Scope) Depth() int {
	return len(s.names)
}

/*
String renders the scope from outermost to innermost binding, for
debugging.
*/
func (s *Scope) String() string {
	return fmt.Sprintf("[%s]", strings.Join(s.names, " "))
}
