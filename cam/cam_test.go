/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package cam

import (
	"testing"

	"github.com/krotik/camc/parser"
	"github.com/krotik/camc/value"
)

func TestEvaluateIdentityApplication(t *testing.T) {
	n, err := parser.Parse("test", "((lambda (x) x) 7)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	got, _ := Evaluate(n)
	want := value.Int{N: 7}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateSum(t *testing.T) {
	n, err := parser.Parse("test", "(+ 1 2 3)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	got, _ := Evaluate(n)
	want := value.Int{N: 6}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateMultiArgApplication(t *testing.T) {
	n, err := parser.Parse("test", "((lambda (x y) (+ x y)) 2 3)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	got, _ := Evaluate(n)
	want := value.Int{N: 5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateCurriedApplication(t *testing.T) {
	n, err := parser.Parse("test", "((lambda (x) ((lambda (y) (+ x y)) 3)) 2)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	got, _ := Evaluate(n)
	want := value.Int{N: 5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateLiteral(t *testing.T) {
	n, err := parser.Parse("test", "42")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	got, _ := Evaluate(n)
	want := value.Int{N: 42}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateClosureOverOuterVariable(t *testing.T) {
	// The inner abstraction's body references a, bound by the outer one -
	// its closure must carry a along when it is applied to 3.
	n, err := parser.Parse("test", "((lambda (a) ((lambda (b) (+ a b)) 3)) 4)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	got, _ := Evaluate(n)
	want := value.Int{N: 7}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEvaluateStepsArePositive(t *testing.T) {
	n, err := parser.Parse("test", "(+ 1 2)")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	_, stats := Evaluate(n)
	if stats.Steps <= 0 {
		t.Errorf("expected positive step count, got %d", stats.Steps)
	}
	if stats.MaxStackDepth <= 0 {
		t.Errorf("expected positive max stack depth, got %d", stats.MaxStackDepth)
	}
}
