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

package uri

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// schemeCacheSize bounds the scheme-validation memoization cache at 100
// entries: at-most-bounded memory with LRU eviction, safe under
// concurrent access.
const schemeCacheSize = 100

// schemeCache memoizes the lowercased, validated form of scheme strings.
// golang-lru/v2 is already internally synchronized, so no mutex of our own
// is needed to satisfy the "safe against concurrent access" requirement.
var schemeCache = mustNewSchemeCache()

func mustNewSchemeCache() *lru.Cache[string, string] {
	c, err := lru.New[string, string](schemeCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// schemeCacheSize never is.
		panic(err)
	}
	return c
}

// validateScheme validates s against the scheme grammar
// (ALPHA (ALPHA|DIGIT|"+"|"-"|".")*) and returns its lowercased form. The
// result is memoized so repeated parses of references sharing a scheme
// (e.g. "https") skip re-validation.
func validateScheme(s string) (string, error) {
	if cached, ok := schemeCache.Get(s); ok {
		return cached, nil
	}
	if len(s) == 0 || !isASCIILetter(s[0]) {
		return "", &InvalidComponent{Component: "scheme", Value: s}
	}
	for i := 1; i < len(s); i++ {
		if !isSchemeChar(s[i]) {
			return "", &InvalidComponent{Component: "scheme", Value: s}
		}
	}
	lowered := toLowerASCII(s)
	schemeCache.Add(s, lowered)
	return lowered, nil
}

func toLowerASCII(s string) string {
	needsCopy := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			needsCopy = true
			break
		}
	}
	if !needsCopy {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
