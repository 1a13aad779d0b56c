/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package camerr

import (
	"errors"
	"testing"

	"github.com/krotik/camc/pos"
)

func TestParseErrorWording(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{NewParseError("t", ErrUnexpectedToken, "f", pos.None), "Unexpected token: f."},
		{NewParseError("t", ErrUnexpectedEnd, "", pos.None), "Unexpected end of input."},
		{NewParseError("t", ErrUnboundVariable, "y", pos.None), "Unbound variable: y."},
	}

	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := NewParseError("t", ErrUnboundVariable, "y", pos.None)
	if !errors.Is(err, ErrUnboundVariable) {
		t.Error("expected errors.Is to see through to the sentinel cause")
	}
}
