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

import "strings"

// defaultPorts holds the WHATWG "special scheme" canonical default ports;
// a port equal to its scheme's entry is elided from Origin's wire form.
var defaultPorts = map[string]uint16{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

func isSpecialScheme(scheme string) bool {
	_, ok := defaultPorts[scheme]
	return ok
}

// Origin computes u's origin tuple (scheme, host, port), stripped of
// userinfo, path, query and fragment, for the schemes the WHATWG URL
// Standard calls "special" (ftp/http/https/ws/wss). For a "blob:" URI the
// origin is that of the URI embedded in its path. Any other scheme has no
// origin.
func Origin(u Uri) (Uri, bool) {
	if !u.hasScheme {
		return Uri{}, false
	}

	if u.scheme == "blob" {
		inner, err := Parse(u.path)
		if err != nil {
			return Uri{}, false
		}
		return Origin(inner)
	}

	if !isSpecialScheme(u.scheme) {
		return Uri{}, false
	}

	var o Uri
	o.hasScheme, o.scheme = true, u.scheme
	o.hasAuthority = u.hasAuthority
	o.host = u.host
	o.hostBracketed = u.hostBracketed
	o.hasPort, o.port = u.hasPort, u.port
	return o, true
}

// originString renders origin o in Origin's canonical wire form,
// "scheme://host(:port)?", eliding a port equal to the scheme's default.
func originString(o Uri) string {
	var b strings.Builder
	b.WriteString(o.scheme)
	b.WriteString("://")
	writeHost(&b, o)
	if o.hasPort && o.port != defaultPorts[o.scheme] {
		b.WriteByte(':')
		b.WriteString(uitoa(o.port))
	}
	return b.String()
}

// IsSameDocument reports whether a and b denote the same document under
// normalization-based equivalence.
func IsSameDocument(a, b Uri) bool {
	return Normalize(a) == Normalize(b)
}

// IsCrossOrigin reports whether a and b have different origins, including
// the case where either lacks one.
func IsCrossOrigin(a, b Uri) bool {
	oa, okA := Origin(a)
	ob, okB := Origin(b)
	if !okA || !okB {
		return true
	}
	return originString(oa) != originString(ob)
}
