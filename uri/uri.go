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

// Package uri implements a value-type URI model with a syntactically
// strict parser/assembler, a reference-resolution and relativization
// engine (RFC 3986), a document-equivalence normalizer, and a WHATWG
// origin computation: an ASCII-only URI core, as opposed to a full
// RFC 3987 IRI implementation with Unicode and bidi handling.
package uri

import "strings"

// Uri is an immutable URI (reference) value. The zero value is the empty
// reference (an empty path, nothing else present).
type Uri struct {
	hasScheme bool
	scheme    string

	hasAuthority  bool
	hasUserinfo   bool
	user          string
	hasPassword   bool
	password      string
	host          string
	hostBracketed bool
	hasPort       bool
	port          uint16

	path string

	hasQuery bool
	query    string

	hasFragment bool
	fragment    string
}

// Components is the raw, unvalidated bag of values Assemble builds a Uri
// from. Unlike the wire-format substrings Parse works with, these are
// ordinary (possibly unescaped) values: Assemble percent-encodes each one
// for its region rather than merely validating pre-existing encoding.
type Components struct {
	HasScheme bool
	Scheme    string

	HasAuthority bool
	HasUserinfo  bool
	User         string
	HasPassword  bool
	Password     string
	Host         string
	HasPort      bool
	Port         uint16

	Path string

	HasQuery bool
	Query    string

	HasFragment bool
	Fragment    string
}

// Parse parses and validates s as a URI reference per RFC 3986, returning
// a canonical Uri. Percent-encoding that is already present in s is
// preserved (with hex digits uppercased); s is not re-encoded.
func Parse(s string) (Uri, error) {
	return buildFromRaw(splitReference(s))
}

// Assemble validates and percent-encodes c's fields into a canonical Uri.
// Unlike Parse, the component values are treated as raw (not pre-escaped)
// content: any byte outside a region's permitted set is percent-encoded.
func Assemble(c Components) (Uri, error) {
	var u Uri

	if c.HasScheme {
		scheme, err := validateScheme(c.Scheme)
		if err != nil {
			return Uri{}, err
		}
		u.hasScheme = true
		u.scheme = scheme
	}

	if c.HasAuthority {
		u.hasAuthority = true
		if c.HasUserinfo {
			u.hasUserinfo = true
			u.user = encodeRegion(c.User, regionUserinfo)
			if c.HasPassword {
				u.hasPassword = true
				u.password = encodeRegion(c.Password, regionUserinfo)
			}
		}
		host, err := validateHostForAssemble(c.Host)
		if err != nil {
			return Uri{}, err
		}
		u.host = host.value
		u.hostBracketed = host.kind == hostIPLiteral
		if c.HasPort {
			u.hasPort = true
			u.port = c.Port
		}
	}

	path := encodeRegion(c.Path, regionPathSegment)
	if !c.HasAuthority && strings.HasPrefix(path, "//") {
		return Uri{}, newSyntaxError(errPathStartingWithSlashes)
	}
	if c.HasAuthority && path != "" && !strings.HasPrefix(path, "/") {
		return Uri{}, newSyntaxError(&causeError{message: "a path following an authority must be empty or start with '/'"})
	}
	if !c.HasScheme && !c.HasAuthority {
		if err := checkFirstSegmentColon(path); err != nil {
			return Uri{}, newSyntaxError(err)
		}
	}
	u.path = path

	if c.HasQuery {
		u.hasQuery = true
		u.query = encodeRegion(c.Query, regionQuery)
	}
	if c.HasFragment {
		u.hasFragment = true
		u.fragment = encodeRegion(c.Fragment, regionFragment)
	}

	if err := checkSchemeSpecific(&u); err != nil {
		return Uri{}, newSyntaxError(err)
	}

	return u, nil
}

// IsAbsolute reports whether the Uri has a scheme.
func (u Uri) IsAbsolute() bool { return u.hasScheme }

// Scheme returns the lowercased scheme and whether it is present.
func (u Uri) Scheme() (string, bool) { return u.scheme, u.hasScheme }

// HasAuthority reports whether an authority component is present.
func (u Uri) HasAuthority() bool { return u.hasAuthority }

// Userinfo returns the user, password, and whether each is present.
func (u Uri) Userinfo() (user string, password string, hasUser bool, hasPassword bool) {
	return u.user, u.password, u.hasUserinfo, u.hasPassword
}

// Host returns the host component (without IP-literal brackets).
func (u Uri) Host() string { return u.host }

// Port returns the port and whether it was present.
func (u Uri) Port() (uint16, bool) { return u.port, u.hasPort }

// Path always returns the path, which may be empty.
func (u Uri) Path() string { return u.path }

// Query returns the query and whether it was present.
func (u Uri) Query() (string, bool) { return u.query, u.hasQuery }

// Fragment returns the fragment and whether it was present.
func (u Uri) Fragment() (string, bool) { return u.fragment, u.hasFragment }

// Authority reassembles and returns the authority component (without its
// leading "//"), and whether it is present.
func (u Uri) Authority() (string, bool) {
	if !u.hasAuthority {
		return "", false
	}
	var b strings.Builder
	writeAuthority(&b, u)
	return b.String(), true
}

func writeAuthority(b *strings.Builder, u Uri) {
	if u.hasUserinfo {
		b.WriteString(u.user)
		if u.hasPassword {
			b.WriteByte(':')
			b.WriteString(u.password)
		}
		b.WriteByte('@')
	}
	writeHost(b, u)
	if u.hasPort {
		b.WriteByte(':')
		b.WriteString(uitoa(u.port))
	}
}

func writeHost(b *strings.Builder, u Uri) {
	if u.hostBracketed {
		b.WriteByte('[')
		b.WriteString(u.host)
		b.WriteByte(']')
		return
	}
	b.WriteString(u.host)
}

// String recomposes the canonical wire form of the Uri:
// scheme ":" ("//" authority)? path ("?" query)? ("#" fragment)?.
func (u Uri) String() string {
	var b strings.Builder
	if u.hasScheme {
		b.WriteString(u.scheme)
		b.WriteByte(':')
	}
	if u.hasAuthority {
		b.WriteString("//")
		writeAuthority(&b, u)
	}
	b.WriteString(u.path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

func uitoa(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// toComponents extracts a Uri's fields into a Components value, e.g. for
// With* methods that rebuild the Uri after changing one field. The
// returned Path/Query/Fragment/Userinfo are already percent-encoded wire
// forms; the With* methods pass them back through Assemble, whose encoder
// leaves valid triplets and permitted bytes unchanged, so they come out
// as they went in.
func (u Uri) toComponents() Components {
	return Components{
		HasScheme:    u.hasScheme,
		Scheme:       u.scheme,
		HasAuthority: u.hasAuthority,
		HasUserinfo:  u.hasUserinfo,
		User:         u.user,
		HasPassword:  u.hasPassword,
		Password:     u.password,
		Host:         hostForRebuild(u),
		HasPort:      u.hasPort,
		Port:         u.port,
		Path:         u.path,
		HasQuery:     u.hasQuery,
		Query:        u.query,
		HasFragment:  u.hasFragment,
		Fragment:     u.fragment,
	}
}

func hostForRebuild(u Uri) string {
	if u.hostBracketed {
		return "[" + u.host + "]"
	}
	return u.host
}

// WithScheme returns a copy of u with its scheme replaced (or removed, if
// s is empty and hasScheme is false).
func (u Uri) WithScheme(s string, hasScheme bool) (Uri, error) {
	c := u.toComponents()
	c.HasScheme, c.Scheme = hasScheme, s
	return Assemble(c)
}

// WithUserinfo returns a copy of u with its userinfo replaced.
func (u Uri) WithUserinfo(user, password string, hasUser, hasPassword bool) (Uri, error) {
	c := u.toComponents()
	c.HasUserinfo, c.User, c.HasPassword, c.Password = hasUser, user, hasPassword, password
	return Assemble(c)
}

// WithHost returns a copy of u with its host replaced. Setting a host
// implies an authority.
func (u Uri) WithHost(host string) (Uri, error) {
	c := u.toComponents()
	c.HasAuthority = true
	c.Host = host
	return Assemble(c)
}

// WithPort returns a copy of u with its port replaced or removed.
func (u Uri) WithPort(port uint16, hasPort bool) (Uri, error) {
	c := u.toComponents()
	c.HasPort, c.Port = hasPort, port
	return Assemble(c)
}

// WithPath returns a copy of u with its path replaced.
func (u Uri) WithPath(path string) (Uri, error) {
	c := u.toComponents()
	c.Path = path
	return Assemble(c)
}

// WithQuery returns a copy of u with its query replaced or removed.
func (u Uri) WithQuery(query string, hasQuery bool) (Uri, error) {
	c := u.toComponents()
	c.HasQuery, c.Query = hasQuery, query
	return Assemble(c)
}

// WithFragment returns a copy of u with its fragment replaced or removed.
func (u Uri) WithFragment(fragment string, hasFragment bool) (Uri, error) {
	c := u.toComponents()
	c.HasFragment, c.Fragment = hasFragment, fragment
	return Assemble(c)
}
