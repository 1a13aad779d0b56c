/*
 * CAMC
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package camlog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLeveledLoggerFiltersDebug(t *testing.T) {
	mem := NewMemoryLogger(10)
	ll, err := NewLeveledLogger(mem, "info")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ll.LogDebug("should not appear")
	ll.LogInfo("should appear")

	lines := mem.Slice()
	if len(lines) != 1 {
		t.Fatalf("expected exactly one logged line, got %v", lines)
	}
	if lines[0] != "should appear" {
		t.Errorf("unexpected log content: %v", lines)
	}
}

func TestNewLeveledLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := NewLeveledLogger(NewNullLogger(), "verbose"); err == nil {
		t.Error("expected an error for an unrecognized level")
	}
}

func TestWriterLoggerWritesThroughToWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterLogger(&buf)

	w.LogInfo("hello")
	w.LogDebug("world")

	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "debug: world") {
		t.Errorf("unexpected writer contents: %q", out)
	}
}
