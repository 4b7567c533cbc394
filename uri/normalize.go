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
	"sort"
	"strings"
)

// Normalize produces the canonical string form of u used to test
// document-level equivalence: §5.2 merge/dot-segment resolution against
// itself, a lexicographic sort of query pairs, unreserved-triplet
// percent-decoding in the path only (the query's pct-triplets are left
// untouched; see sortQueryPairs), host canonicalization (already applied
// at parse time, so a no-op here), fragment removal, and an
// empty-path-with-authority rewrite to "/". It generalizes an IRI
// normalizer's resolve-against-self shape to this package's ASCII-only,
// field-based Uri, extended with a query-pair sort.
func Normalize(u Uri) string {
	r := u
	if u.hasScheme || u.hasAuthority || hasLeadingSlash(u.path) {
		r = Resolve(u, u)
	} else {
		r.path = removeDotSegments(u.path)
	}

	r.path = normalizePercentDecode(r.path)
	if r.hasAuthority && r.path == "" {
		r.path = "/"
	}

	if r.hasQuery {
		// Unlike the path, the query's pct-triplets are left exactly as
		// given: only pair order is normalized. Decoding query values
		// would break round-tripping of opaque query payloads, and
		// query equality is intentionally case-sensitive on pct-triplets.
		sorted, nonEmpty := sortQueryPairs(r.query)
		r.hasQuery = nonEmpty
		r.query = sorted
	}

	r.hasFragment = false
	r.fragment = ""

	return r.String()
}

// sortQueryPairs splits q on '&', sorts the resulting pairs
// lexicographically (as raw strings, without decoding their values), and
// rejoins them. An entirely empty query normalizes to absent.
func sortQueryPairs(q string) (sorted string, nonEmpty bool) {
	if q == "" {
		return "", false
	}
	pairs := strings.Split(q, "&")
	sort.Strings(pairs)
	return strings.Join(pairs, "&"), true
}
