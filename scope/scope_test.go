/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import "testing"

func TestResolveInnermostWins(t *testing.T) {
	s := New()
	s.Push("x")
	s.Push("y")
	s.Push("x") // shadows the first x

	k, ok := s.Resolve("x")
	if !ok || k != 0 {
		t.Fatalf("expected innermost x at index 0, got (%d, %v)", k, ok)
	}

	k, ok = s.Resolve("y")
	if !ok || k != 1 {
		t.Fatalf("expected y at index 1, got (%d, %v)", k, ok)
	}
}

func TestResolveUnbound(t *testing.T) {
	s := New()
	s.Push("x")

	if _, ok := s.Resolve("z"); ok {
		t.Error("expected z to be unbound")
	}
}

func TestPopToRestoresScope(t *testing.T) {
	s := New()
	s.Push("x")
	mark := s.Push("y")

	s.Push("z")
	s.PopTo(mark)

	if _, ok := s.Resolve("z"); ok {
		t.Error("expected z to be popped")
	}
	if k, ok := s.Resolve("y"); !ok || k != 0 {
		t.Errorf("expected y to remain at index 0, got (%d, %v)", k, ok)
	}
	if s.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", s.Depth())
	}
}
