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
Package pos holds the small source-position value shared by the lexer,
parser and AST packages so that none of them has to import the others just
to talk about where a token came from.
*/
package pos

import "fmt"

/*
Pos is a 1-based line/column location in a source string.
*/
type Pos struct {
	Line int
	Col  int
}

/*
None is the zero position, used for nodes that were not read directly
off a token (e.g. trees built by hand in tests).
*/
var None = Pos{}

/*
String returns a human-readable representation of this position.
*/
func (p Pos) String() string {
	if p == None {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
