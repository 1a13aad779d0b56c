/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package camconfig

import "testing"

func TestOptimizerPassBoundFloor(t *testing.T) {
	if got := OptimizerPassBound(1); got != Int(OptimizerPassFloor) {
		t.Errorf("expected the floor to apply for a tiny tree, got %d", got)
	}
}

func TestOptimizerPassBoundScalesWithSize(t *testing.T) {
	got := OptimizerPassBound(1000)
	want := 1000 * Int(OptimizerPassFactor)
	if got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
}
