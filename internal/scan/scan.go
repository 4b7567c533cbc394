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

// Package scan provides the low-level rune cursor shared by parsers that
// scan a string one rune at a time with one-rune lookahead. It was
// distilled out of what used to be the input-scanning half of the former
// IRI parser's machinery, kept separate from percent-decoding/validation
// concerns so uritemplate's expression scanner could reuse it without
// pulling in anything URI-specific.
package scan

import "strings"

// Cursor reads runes from a string one at a time, with one-rune lookahead
// and byte-position tracking.
type Cursor struct {
	original string
	reader   *strings.Reader
}

// NewCursor creates a Cursor over s.
func NewCursor(s string) *Cursor {
	return &Cursor{original: s, reader: strings.NewReader(s)}
}

// Next reads and returns the next rune, advancing the cursor.
func (c *Cursor) Next() (rune, bool) {
	r, _, err := c.reader.ReadRune()
	return r, err == nil
}

// Peek returns the next rune without advancing the cursor.
func (c *Cursor) Peek() (rune, bool) {
	r, _, err := c.reader.ReadRune()
	if err != nil {
		return 0, false
	}
	_ = c.reader.UnreadRune()
	return r, true
}

// Pos returns the current byte offset from the start of the original string.
func (c *Cursor) Pos() int {
	return len(c.original) - c.reader.Len()
}
