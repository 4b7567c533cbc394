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

func mustParse(t *testing.T, s string) Uri {
	t.Helper()
	u, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return u
}

func TestRelativizeRoundTripsThroughResolve(t *testing.T) {
	tests := []struct {
		base, target string
	}{
		{"http://a/b/c/d;p?q", "http://a/b/c/g"},
		{"http://a/b/c/d;p?q", "http://a/b/c/"},
		{"http://a/b/c/d;p?q", "http://a/b/g"},
		{"http://a/b/c/d;p?q", "http://a/g"},
		{"http://a/b/c/d;p?q", "http://a/b/c/d;p?y"},
		{"http://a/b/c/d;p?q", "http://a/b/c/d;p?q#s"},
		{"http://a/b/c/d;p?q", "http://a/b/c/d;p"},
		{"http://a/b/c/", "http://a/b/c/d"},
		{"http://a/b/c/", "http://a/b/x"},
		{"http://a/b/c", "http://a/b/c"},
	}
	for _, tc := range tests {
		base := mustParse(t, tc.base)
		target := mustParse(t, tc.target)
		rel := Relativize(base, target)
		got := Resolve(base, rel).String()
		if got != tc.target {
			t.Errorf("Relativize(%q, %q) = %q; Resolve(base, that) = %q, want %q",
				tc.base, tc.target, rel.String(), got, tc.target)
		}
	}
}

func TestRelativizeFallsBackOnSchemeMismatch(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d")
	target := mustParse(t, "https://a/b/c/d")
	rel := Relativize(base, target)
	if rel.String() != target.String() {
		t.Errorf("Relativize across schemes = %q, want target unchanged %q", rel.String(), target.String())
	}
}

func TestRelativizeFallsBackOnAuthorityMismatch(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d")
	target := mustParse(t, "http://other/b/c/d")
	rel := Relativize(base, target)
	if rel.String() != target.String() {
		t.Errorf("Relativize across authorities = %q, want target unchanged %q", rel.String(), target.String())
	}
}

func TestRelativizeNeverErrorsOnDotSegments(t *testing.T) {
	base := mustParse(t, "http://a/b/c/")
	// Parse and Assemble both leave "." and ".." segments in place, so a
	// target carrying dot segments is built here with Assemble.
	target, err := Assemble(Components{
		HasScheme:    true,
		Scheme:       "http",
		HasAuthority: true,
		Host:         "a",
		Path:         "/b/./c",
	})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	rel := Relativize(base, target)
	if rel.String() != target.String() {
		t.Errorf("Relativize with dot segments in target = %q, want target unchanged %q", rel.String(), target.String())
	}
}

func TestRelativizeSamePathDifferentFragment(t *testing.T) {
	base := mustParse(t, "http://a/b/c")
	target := mustParse(t, "http://a/b/c#frag")
	rel := Relativize(base, target)
	if rel.String() != "#frag" {
		t.Errorf("Relativize same path/query, new fragment = %q, want %q", rel.String(), "#frag")
	}
}

func TestRelativizeSeedScenarioBareAuthorityBase(t *testing.T) {
	base := mustParse(t, "http://www.example.com")
	target := mustParse(t, "http://www.example.com/?foo=toto#~typo")
	rel := Relativize(base, target)
	if want := "/?foo=toto#~typo"; rel.String() != want {
		t.Errorf("Relativize = %q, want %q", rel.String(), want)
	}
	if got := Resolve(base, rel).String(); got != target.String() {
		t.Errorf("Resolve(base, rel) = %q, want original target %q", got, target.String())
	}
}

func TestRelativizeClimbsToCommonAncestor(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d/e")
	target := mustParse(t, "http://a/b/x")
	rel := Relativize(base, target)
	if rel.String() != "../../x" {
		t.Errorf("Relativize = %q, want %q", rel.String(), "../../x")
	}
}
