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

// buildFromRaw validates every component extracted by splitReference and
// assembles the canonical Uri value. It enforces the structural
// invariants: authority-and-path-slash compatibility, the
// schemeless-first-segment colon ambiguity, and the scheme-specific
// "data:"/"file:" shapes.
func buildFromRaw(r rawReference) (Uri, error) {
	var u Uri

	if r.hasScheme {
		scheme, err := validateScheme(r.scheme)
		if err != nil {
			return Uri{}, newSyntaxError(err)
		}
		u.hasScheme = true
		u.scheme = scheme
	}

	if r.hasAuthority {
		rawUserinfo, rawHost, rawPort := splitAuthority(r.authority)
		if rawUserinfo != "" {
			decoded, err := validateRegion("userinfo", rawUserinfo, regionUserinfo, true)
			if err != nil {
				return Uri{}, newSyntaxError(err)
			}
			u.hasUserinfo = true
			u.user, u.password, u.hasPassword = splitUserinfo(decoded)
		}

		host, err := validateHost(rawHost)
		if err != nil {
			return Uri{}, newSyntaxError(err)
		}
		u.hasAuthority = true
		u.host = host.value
		u.hostBracketed = host.kind == hostIPLiteral

		if rawPort != "" {
			port, err := validatePort(rawPort)
			if err != nil {
				return Uri{}, newSyntaxError(err)
			}
			u.hasPort = true
			u.port = port
		}

		if r.path != "" && !strings.HasPrefix(r.path, "/") {
			return Uri{}, newSyntaxError(&causeError{message: "a path following an authority must be empty or start with '/'"})
		}
	}

	if !r.hasAuthority && strings.HasPrefix(r.path, "//") {
		return Uri{}, newSyntaxError(errPathStartingWithSlashes)
	}

	if !r.hasScheme && !r.hasAuthority {
		if err := checkFirstSegmentColon(r.path); err != nil {
			return Uri{}, newSyntaxError(err)
		}
	}

	path, err := validatePathString(r.path)
	if err != nil {
		return Uri{}, newSyntaxError(err)
	}
	u.path = path

	if r.hasQuery {
		q, err := validateRegion("query", r.query, regionQuery, true)
		if err != nil {
			return Uri{}, newSyntaxError(err)
		}
		u.hasQuery = true
		u.query = q
	}

	if r.hasFragment {
		f, err := validateRegion("fragment", r.fragment, regionFragment, true)
		if err != nil {
			return Uri{}, newSyntaxError(err)
		}
		u.hasFragment = true
		u.fragment = f
	}

	if err := checkSchemeSpecific(&u); err != nil {
		return Uri{}, newSyntaxError(err)
	}

	return u, nil
}

// checkFirstSegmentColon enforces the "scheme absent ⇒ first path
// segment must not contain ':' in its prefix before any '/'" invariant.
func checkFirstSegmentColon(path string) error {
	segment := path
	if slash := strings.IndexByte(path, '/'); slash != -1 {
		segment = path[:slash]
	}
	if strings.IndexByte(segment, ':') != -1 {
		return &causeError{message: "a relative-path reference's first segment must not contain ':'; prepend './'"}
	}
	return nil
}

// validatePathString validates every segment of a path against the path
// region's permitted set. Percent-triplets are uppercased in place.
func validatePathString(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return validateRegion("path", path, regionPathSegment, true)
}

// checkSchemeSpecific implements scheme-specific grammar refinements for
// "data:" and "file:"/authority-based schemes.
func checkSchemeSpecific(u *Uri) error {
	if !u.hasScheme {
		return nil
	}
	switch u.scheme {
	case "data":
		return checkDataURI(u.path)
	case "file":
		if u.hasAuthority && u.host == "" {
			return errEmptyHostWithAuthority
		}
	case "http", "https", "ftp", "ws", "wss":
		if u.hasAuthority && u.host == "" {
			return errEmptyHostWithAuthority
		}
	}
	return nil
}

// checkDataURI validates the "mediatype ( "," data )?" shape required of
// a data: URI's path.
func checkDataURI(path string) error {
	mediatype := path
	if comma := strings.IndexByte(path, ','); comma != -1 {
		mediatype = path[:comma]
	}
	if mediatype == "" {
		return nil
	}
	mt := mediatype
	if semi := strings.IndexByte(mt, ';'); semi != -1 {
		mt = mt[:semi]
	}
	if mt == "" {
		return nil
	}
	slash := strings.IndexByte(mt, '/')
	if slash <= 0 || slash == len(mt)-1 {
		return &causeError{message: "data: URI has a malformed mediatype", details: mediatype}
	}
	top, sub := mt[:slash], mt[slash+1:]
	if !isRestrictedName(top) || !isRestrictedName(sub) {
		return &causeError{message: "data: URI has a malformed mediatype", details: mediatype}
	}
	return nil
}

// isRestrictedName is a permissive check for an RFC 2045-style media type
// token: letters, digits, and a handful of punctuation marks, non-empty.
func isRestrictedName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIILetter(c) || isASCIIDigit(c) {
			continue
		}
		if strings.IndexByte("!#$&-^_.+", c) >= 0 {
			continue
		}
		return false
	}
	return true
}
