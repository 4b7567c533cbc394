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

package uritemplate

import (
	"strings"

	"github.com/jplu/uri"
)

// Expand renders t against bag: literal runs are copied (percent-encoding
// bytes outside RFC 6570's literal set, passing pre-existing %XX triplets
// through with uppercased hex), and each expression is replaced by its operator-driven
// expansion. A variable absent from bag, or bound to an empty list or
// empty associative value, contributes nothing; every other varspec
// contributes at least one part.
func Expand(t Template, bag VariableBag) (string, error) {
	var b strings.Builder
	for _, el := range t.elems {
		if el.isLiteral {
			b.WriteString(encodeLiteral(el.literal))
			continue
		}
		s, err := expandExpression(el.expression, bag)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// expandExpression renders one "{...}" expression's flattened parts
// joined by its operator's separator, prefixed by the operator's "first"
// marker only if at least one part was produced.
func expandExpression(e expression, bag VariableBag) (string, error) {
	info := operatorTable[e.op]
	var parts []string

	for _, vs := range e.varspecs {
		v, ok := bag.Fetch(vs.name)
		if !ok {
			continue
		}

		switch {
		case v.isScalar():
			parts = append(parts, expandScalar(vs, v.scalar, info))
		case v.isList():
			if len(v.list) == 0 {
				continue
			}
			parts = append(parts, expandList(vs, v.list, info)...)
		case v.isAssoc():
			if len(v.assoc) == 0 {
				continue
			}
			parts = append(parts, expandAssoc(vs, v.assoc, info)...)
		}
	}

	if len(parts) == 0 {
		return "", nil
	}
	return info.first + strings.Join(parts, info.sep), nil
}

func expandScalar(vs varspec, raw string, info operatorInfo) string {
	truncated := raw
	if vs.hasPrefix && len(truncated) > vs.prefixLen {
		truncated = truncated[:vs.prefixLen]
	}
	encoded := encode(truncated, info.allowReserved)

	if !info.named {
		return encoded
	}
	if raw == "" {
		return vs.name + info.ifEmpty
	}
	return vs.name + "=" + encoded
}

func expandList(vs varspec, list []string, info operatorInfo) []string {
	if vs.explode {
		parts := make([]string, len(list))
		for i, item := range list {
			encoded := encode(item, info.allowReserved)
			if info.named {
				parts[i] = vs.name + "=" + encoded
			} else {
				parts[i] = encoded
			}
		}
		return parts
	}

	encoded := make([]string, len(list))
	for i, item := range list {
		encoded[i] = encode(item, info.allowReserved)
	}
	joined := strings.Join(encoded, ",")
	if info.named {
		joined = vs.name + "=" + joined
	}
	return []string{joined}
}

func expandAssoc(vs varspec, assoc []KeyValue, info operatorInfo) []string {
	if vs.explode {
		parts := make([]string, len(assoc))
		for i, p := range assoc {
			parts[i] = encode(p.Key, info.allowReserved) + "=" + encode(p.Value, info.allowReserved)
		}
		return parts
	}

	flat := make([]string, 0, len(assoc)*2)
	for _, p := range assoc {
		flat = append(flat, encode(p.Key, info.allowReserved), encode(p.Value, info.allowReserved))
	}
	joined := strings.Join(flat, ",")
	if info.named {
		joined = vs.name + "=" + joined
	}
	return []string{joined}
}

const upperhex = "0123456789ABCDEF"

// encode percent-encodes s for output: a byte already introducing a valid
// %XX triplet passes through untouched (uppercased), anything
// uri.AllowedBytes accepts for allowReserved is kept literal, and
// everything else becomes %XX.
func encode(s string, allowReserved bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			b.WriteByte('%')
			b.WriteByte(upperHexDigit(s[i+1]))
			b.WriteByte(upperHexDigit(s[i+2]))
			i += 2
			continue
		}
		if uri.AllowedBytes(c, allowReserved) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// isLiteralByte reports whether c is one of the ASCII bytes RFC 6570's
// "literals" production allows through an expression's surrounding text
// unencoded: effectively every printable ASCII byte except the ones used
// by the template grammar itself ('{', '}') or excluded outright (space,
// '"', the bare '%' already handled via the pct-encoded-triplet passthrough
// above, '\'', '<', '>', '\\', '^', '`', '|', DEL). A byte of a multi-byte
// UTF-8 sequence (>= 0x80) is also literal, covering the grammar's
// ucschar/iprivate allowance for non-ASCII template text.
func isLiteralByte(c byte) bool {
	switch {
	case c == '!' || c == '#' || c == '$' || c == '&' || c == '=' || c == '_' || c == '~':
		return true
	case c >= '(' && c <= ';': // ( ) * + , - . / 0-9 : ;
		return true
	case c >= '?' && c <= '[': // ? @ A-Z [
		return true
	case c == ']':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 0x80:
		return true
	default:
		return false
	}
}

// encodeLiteral renders a literal run of template text: a '%' already
// introducing a valid pct-encoded triplet passes through (hex uppercased),
// an RFC 6570 literal byte passes through unencoded, and anything else
// (a bare '%', whitespace, quote marks, and the handful of ASCII
// punctuation bytes the grammar excludes) is percent-encoded.
func encodeLiteral(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			b.WriteByte('%')
			b.WriteByte(upperHexDigit(s[i+1]))
			b.WriteByte(upperHexDigit(s[i+2]))
			i += 2
			continue
		}
		if isLiteralByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func upperHexDigit(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - ('a' - 'A')
	}
	return c
}
