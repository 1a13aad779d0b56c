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
Package camerr collects the error sentinels and the single ParseError type
used across the parser, optimizer and CAM evaluator.

There are three disjoint categories: user errors at parse
time (reported through ParseError and the sentinels below), programmer
errors (violated CAM instruction preconditions, which panic via
errorutil.AssertTrue rather than returning an error - a bug in
this compiler, not a user mistake), and resource exhaustion (folded into
the first category: ErrOptimizerDivergence is reported exactly like a
parse error). There is no exported taxonomy type beyond these sentinels -
callers discriminate with errors.Is.
*/
package camerr

import (
	"errors"
	"fmt"

	"github.com/krotik/camc/pos"
)

/*
Parse-time error sentinels.
*/
var (
	ErrUnexpectedToken = errors.New("Unexpected token")
	ErrUnexpectedEnd   = errors.New("Unexpected end of input")
	ErrUnboundVariable = errors.New("Unbound variable")
	ErrLexical         = errors.New("Lexical error")
)

/*
ErrOptimizerDivergence is raised by the optimizer driver when the fixpoint
loop exceeds its defensive pass bound.
Treated like a parse-time error: one line to stderr, non-zero exit.
*/
var ErrOptimizerDivergence = errors.New("Optimizer did not reach a fixpoint within the configured pass bound")

/*
ParseError is a user-facing, single-line diagnostic. Its Error() method
produces exactly the wording prescribed for the three named causes;
other sentinels get a generic rendering in the same style.
*/
type ParseError struct {
	Source string   // name given to the parser, for multi-source drivers
	Cause  error    // one of the sentinels above
	Detail string   // the offending token text, where applicable
	Pos    pos.Pos  // where in the source the error occurred
}

/*
NewParseError creates a ParseError for the given cause and offending
token text.
*/
func NewParseError(source string, cause error, detail string, p pos.Pos) *ParseError {
	return &ParseError{source, cause, detail, p}
}

/*
Error renders the one-line diagnostic:
"Unexpected token: X.", "Unexpected end of input.", "Unbound variable: X."
Any other cause falls back to "<cause>: X." in the same shape.
*/
func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.Cause, ErrUnexpectedEnd):
		return "Unexpected end of input."
	case e.Detail == "":
		return fmt.Sprintf("%s.", e.Cause)
	default:
		return fmt.Sprintf("%s: %s.", e.Cause, e.Detail)
	}
}

/*
Unwrap lets errors.Is/errors.As see through to the sentinel cause.
*/
func (e *ParseError) Unwrap() error { return e.Cause }
