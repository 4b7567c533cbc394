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

//nolint:testpackage // white-box test file for an internal package; needs the same package to reach unexported fields via accessors.
package uri

import "testing"

func TestOriginSpecialSchemes(t *testing.T) {
	tests := map[string]string{
		"http://example.com/path?q=1":       "http://example.com",
		"https://example.com:443/":          "https://example.com",
		"https://example.com:8443/":         "https://example.com:8443",
		"ws://example.com/socket":           "ws://example.com",
		"ftp://ftp.example.com:21/file.txt": "ftp://ftp.example.com",
	}
	for in, want := range tests {
		u := mustParse(t, in)
		o, ok := Origin(u)
		if !ok {
			t.Errorf("Origin(%q) reported no origin", in)
			continue
		}
		if got := originString(o); got != want {
			t.Errorf("Origin(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOriginOpaqueForOtherSchemes(t *testing.T) {
	u := mustParse(t, "mailto:user@example.com")
	if _, ok := Origin(u); ok {
		t.Error("Origin(mailto:...) reported a tuple origin, want none")
	}
}

func TestOriginBlobUnwrapsEmbeddedURI(t *testing.T) {
	u := mustParse(t, "blob:https://example.com:8080/uuid-goes-here")
	o, ok := Origin(u)
	if !ok {
		t.Fatal("Origin(blob:...) reported no origin")
	}
	if got, want := originString(o), "https://example.com:8080"; got != want {
		t.Errorf("Origin(blob:...) = %q, want %q", got, want)
	}
}

func TestIsCrossOrigin(t *testing.T) {
	a := mustParse(t, "https://example.com/a")
	b := mustParse(t, "https://example.com/b")
	if IsCrossOrigin(a, b) {
		t.Error("IsCrossOrigin = true for same origin, want false")
	}

	c := mustParse(t, "https://other.example.com/a")
	if !IsCrossOrigin(a, c) {
		t.Error("IsCrossOrigin = false for different hosts, want true")
	}

	d := mustParse(t, "mailto:user@example.com")
	if !IsCrossOrigin(a, d) {
		t.Error("IsCrossOrigin = false when one side has no origin, want true")
	}
}

// TestIsSameDocumentReflexiveSymmetricTransitive checks the three
// equivalence-relation properties IsSameDocument is expected to have over
// a small fixture set of documents that are, and are not, the same.
func TestIsSameDocumentReflexiveSymmetricTransitive(t *testing.T) {
	fixtures := []string{
		"http://example.com/path?x=1&y=2",
		"http://example.com/path?y=2&x=1#frag",
		"HTTP://EXAMPLE.com/./path?x=1&y=2",
		"http://example.com/other",
		"mailto:user@example.com",
	}
	uris := make([]Uri, len(fixtures))
	for i, f := range fixtures {
		uris[i] = mustParse(t, f)
	}

	// Reflexive: every document is the same document as itself.
	for i, u := range uris {
		if !IsSameDocument(u, u) {
			t.Errorf("IsSameDocument(%q, %q) = false, want true (reflexive)", fixtures[i], fixtures[i])
		}
	}

	// Symmetric: order must not matter.
	for i := range uris {
		for j := range uris {
			if IsSameDocument(uris[i], uris[j]) != IsSameDocument(uris[j], uris[i]) {
				t.Errorf("IsSameDocument(%q, %q) != IsSameDocument(%q, %q), want symmetric",
					fixtures[i], fixtures[j], fixtures[j], fixtures[i])
			}
		}
	}

	// Transitive: the first three fixtures are mutually equivalent
	// (same path and query, differing only in casing/dot-segments/query
	// order/fragment); the result must chain through all three pairs.
	if !IsSameDocument(uris[0], uris[1]) || !IsSameDocument(uris[1], uris[2]) {
		t.Fatal("fixture set is not set up as expected: fixtures 0, 1, 2 must be pairwise equivalent")
	}
	if !IsSameDocument(uris[0], uris[2]) {
		t.Error("IsSameDocument(fixture0, fixture1) && IsSameDocument(fixture1, fixture2) but not IsSameDocument(fixture0, fixture2), want transitive")
	}
}

// TestIsCrossOriginSymmetric checks that swapping operands never changes
// the result.
func TestIsCrossOriginSymmetric(t *testing.T) {
	fixtures := []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://other.example.com/a",
		"http://example.com/a",
		"mailto:user@example.com",
		"blob:https://example.com:8080/uuid-goes-here",
	}
	uris := make([]Uri, len(fixtures))
	for i, f := range fixtures {
		uris[i] = mustParse(t, f)
	}
	for i := range uris {
		for j := range uris {
			if IsCrossOrigin(uris[i], uris[j]) != IsCrossOrigin(uris[j], uris[i]) {
				t.Errorf("IsCrossOrigin(%q, %q) != IsCrossOrigin(%q, %q), want symmetric",
					fixtures[i], fixtures[j], fixtures[j], fixtures[i])
			}
		}
	}
}
