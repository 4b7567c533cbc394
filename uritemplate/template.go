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

// Package uritemplate implements an RFC 6570 Level-4 URI Template parser
// and expander: every operator ('' + # . / ; ? &), the explode (*) and
// prefix (:N) varspec modifiers, and a normalized VariableBag to expand
// against. There is no existing template implementation to adapt code
// from, so the parser scans in a single pass with the shared rune cursor
// in internal/scan, and expansion reuses the uri package's percent-encoding
// byte classes (uri.AllowedBytes) rather than redefining them.
package uritemplate

import (
	"strconv"
	"strings"

	"github.com/jplu/uri/internal/scan"
)

// varspec is one variable reference within an expression: a name plus at
// most one of an explode flag or a prefix length.
type varspec struct {
	name      string
	explode   bool
	hasPrefix bool
	prefixLen int
}

// expression is a single "{...}" template expression: an operator and its
// ordered varspecs.
type expression struct {
	op       operator
	varspecs []varspec
}

// element is one piece of a parsed template, in source order: either a
// literal run of text or an expression to expand.
type element struct {
	isLiteral  bool
	literal    string
	expression expression
}

// Template is a parsed RFC 6570 template: the original string plus the
// ordered elements Expand walks and the de-duplicated variable names
// Parse collected while scanning.
type Template struct {
	raw   string
	elems []element
	names []string
}

// String returns the original template string.
func (t Template) String() string { return t.raw }

// VariableNames returns the template's variable names, in first-seen
// order, with duplicates removed.
func (t Template) VariableNames() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Parse parses s as an RFC 6570 Level-4 template.
func Parse(s string) (Template, error) {
	t := Template{raw: s}
	seen := make(map[string]bool)

	c := scan.NewCursor(s)
	var lit strings.Builder
	flushLiteral := func() {
		if lit.Len() > 0 {
			t.elems = append(t.elems, element{isLiteral: true, literal: lit.String()})
			lit.Reset()
		}
	}

	for {
		r, ok := c.Next()
		if !ok {
			break
		}
		if r == '}' {
			return Template{}, &SyntaxError{Message: "unmatched '}'", Pos: c.Pos()}
		}
		if r != '{' {
			lit.WriteRune(r)
			continue
		}

		flushLiteral()
		expr, err := parseExpression(c)
		if err != nil {
			return Template{}, err
		}
		for _, vs := range expr.varspecs {
			if !seen[vs.name] {
				seen[vs.name] = true
				t.names = append(t.names, vs.name)
			}
		}
		t.elems = append(t.elems, element{expression: expr})
	}
	flushLiteral()

	return t, nil
}

// parseExpression parses the inside of a "{...}" construct, whose opening
// brace c has already consumed.
func parseExpression(c *scan.Cursor) (expression, error) {
	var expr expression

	if r, ok := c.Peek(); ok && isOperatorChar(r) {
		expr.op = operator(r)
		c.Next()
	} else {
		expr.op = opSimple
	}

	for {
		vs, terminator, err := parseVarspec(c)
		if err != nil {
			return expression{}, err
		}
		expr.varspecs = append(expr.varspecs, vs)
		if terminator == '}' {
			break
		}
	}

	if len(expr.varspecs) == 0 {
		return expression{}, &SyntaxError{Message: "expression has no variables", Pos: c.Pos()}
	}

	return expr, nil
}

// parseVarspec parses one varname[*|:N] entry and the ',' or '}' that
// terminates it.
func parseVarspec(c *scan.Cursor) (varspec, rune, error) {
	var name strings.Builder

loop:
	for {
		r, ok := c.Peek()
		if !ok {
			return varspec{}, 0, &SyntaxError{Message: "unterminated expression", Pos: c.Pos()}
		}
		switch {
		case isVarNameChar(r):
			c.Next()
			name.WriteRune(r)
		case r == '%':
			c.Next()
			h1, ok1 := c.Next()
			h2, ok2 := c.Next()
			if !ok1 || !ok2 || !isHexRune(h1) || !isHexRune(h2) {
				return varspec{}, 0, &SyntaxError{Message: "malformed pct-encoded triplet in variable name", Pos: c.Pos()}
			}
			name.WriteByte('%')
			name.WriteRune(h1)
			name.WriteRune(h2)
		default:
			break loop
		}
	}

	if name.Len() == 0 {
		return varspec{}, 0, &SyntaxError{Message: "empty variable name", Pos: c.Pos()}
	}
	vs := varspec{name: name.String()}

	if r, ok := c.Peek(); ok && r == '*' {
		c.Next()
		vs.explode = true
	} else if ok && r == ':' {
		c.Next()
		n, err := parsePrefixLength(c)
		if err != nil {
			return varspec{}, 0, err
		}
		vs.hasPrefix = true
		vs.prefixLen = n
	}

	r, ok := c.Next()
	if !ok || (r != ',' && r != '}') {
		return varspec{}, 0, &SyntaxError{Message: "expected ',' or '}' after variable", Pos: c.Pos()}
	}
	return vs, r, nil
}

func parsePrefixLength(c *scan.Cursor) (int, error) {
	var digits strings.Builder
	for {
		r, ok := c.Peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		c.Next()
		digits.WriteRune(r)
	}
	if digits.Len() == 0 || digits.Len() > 4 {
		return 0, &SyntaxError{Message: "malformed ':' prefix modifier", Pos: c.Pos()}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil || n < 1 || n > 9999 {
		return 0, &SyntaxError{Message: "prefix length out of range 1..9999", Pos: c.Pos()}
	}
	return n, nil
}

func isVarNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '.'
}

func isHexRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
