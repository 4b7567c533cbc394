/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scan

import "testing"

func TestCursorNextAdvancesAndReportsEnd(t *testing.T) {
	c := NewCursor("ab")
	r, ok := c.Next()
	if !ok || r != 'a' {
		t.Fatalf("Next() = %q, %v, want 'a', true", r, ok)
	}
	r, ok = c.Next()
	if !ok || r != 'b' {
		t.Fatalf("Next() = %q, %v, want 'b', true", r, ok)
	}
	if _, ok := c.Next(); ok {
		t.Fatal("Next() at end of input reported ok, want false")
	}
}

func TestCursorPeekDoesNotAdvance(t *testing.T) {
	c := NewCursor("xy")
	first, ok := c.Peek()
	if !ok || first != 'x' {
		t.Fatalf("Peek() = %q, %v, want 'x', true", first, ok)
	}
	second, ok := c.Peek()
	if !ok || second != 'x' {
		t.Fatalf("second Peek() = %q, %v, want 'x', true (Peek must not advance)", second, ok)
	}
	r, ok := c.Next()
	if !ok || r != 'x' {
		t.Fatalf("Next() after Peek = %q, %v, want 'x', true", r, ok)
	}
}

func TestCursorPeekAtEndOfInput(t *testing.T) {
	c := NewCursor("")
	if _, ok := c.Peek(); ok {
		t.Fatal("Peek() on empty input reported ok, want false")
	}
}

func TestCursorPosTracksByteOffsetAcrossMultibyteRunes(t *testing.T) {
	c := NewCursor("aéb") // 'a', 'é' (2 bytes in UTF-8), 'b'
	if got := c.Pos(); got != 0 {
		t.Fatalf("Pos() before reading = %d, want 0", got)
	}
	if _, ok := c.Next(); !ok {
		t.Fatal("Next() failed reading 'a'")
	}
	if got := c.Pos(); got != 1 {
		t.Fatalf("Pos() after 'a' = %d, want 1", got)
	}
	if _, ok := c.Next(); !ok {
		t.Fatal("Next() failed reading 'é'")
	}
	if got := c.Pos(); got != 3 {
		t.Fatalf("Pos() after 'é' = %d, want 3 (1 + 2 UTF-8 bytes)", got)
	}
	if _, ok := c.Next(); !ok {
		t.Fatal("Next() failed reading 'b'")
	}
	if got := c.Pos(); got != 4 {
		t.Fatalf("Pos() after 'b' = %d, want 4", got)
	}
}
