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

// parser.go splits a URI reference string into raw (not yet validated)
// components: strip fragment, then query, then recognize a leading
// "scheme:" and an optional "//authority" prefix. It is the ASCII-only,
// field-returning generalization of the byte-position scanning in
// iri_parser.go and the deconstructRef helper in resolve.go, collapsed
// into a single splitReference pass since Uri here stores fields rather
// than (string, Positions) pairs.
package uri

import "strings"

// rawReference holds the unvalidated substrings extracted from a
// reference string's surface grammar.
type rawReference struct {
	hasScheme    bool
	scheme       string
	hasAuthority bool
	authority    string
	path         string
	hasQuery     bool
	query        string
	hasFragment  bool
	fragment     string
}

// splitReference performs the purely lexical decomposition of s. It does
// not validate component contents; validators.go does that next.
func splitReference(s string) rawReference {
	var r rawReference

	if h := strings.IndexByte(s, '#'); h != -1 {
		r.hasFragment = true
		r.fragment = s[h+1:]
		s = s[:h]
	}
	if q := strings.IndexByte(s, '?'); q != -1 {
		r.hasQuery = true
		r.query = s[q+1:]
		s = s[:q]
	}

	if scheme, rest, ok := splitScheme(s); ok {
		r.hasScheme = true
		r.scheme = scheme
		s = rest
	}

	if strings.HasPrefix(s, "//") {
		r.hasAuthority = true
		s = s[2:]
		end := strings.IndexAny(s, "/")
		if end == -1 {
			r.authority = s
			r.path = ""
		} else {
			r.authority = s[:end]
			r.path = s[end:]
		}
	} else {
		r.path = s
	}

	return r
}

// splitScheme recognizes a leading "scheme:" prefix per the ABNF
// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ). It does not lossen
// the grammar: any candidate that fails it is left for the caller to
// treat as schemeless.
func splitScheme(s string) (scheme, rest string, ok bool) {
	if s == "" || !isASCIILetter(s[0]) {
		return "", s, false
	}
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return "", s, false
	}
	return s[:i], s[i+1:], true
}
