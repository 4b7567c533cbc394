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
	"net"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"github.com/jplu/uri/ipv4"
)

// ipv4Normalizer is shared across all host validations; it is stateless
// beyond its arithmetic backend choice, so a single package-level instance
// is safe under concurrent use.
var ipv4Normalizer = mustIPv4Normalizer()

func mustIPv4Normalizer() *ipv4.Normalizer {
	n, err := ipv4.NewNormalizer()
	if err != nil {
		panic(err)
	}
	return n
}

// hostKind records which of the host forms validateHost dispatches on.
type hostKind int

const (
	hostRegName hostKind = iota
	hostIPv4
	hostIPLiteral
)

// validatedHost is the canonical form of a host component plus enough
// information for the assembler to know whether to wrap it in brackets.
type validatedHost struct {
	kind  hostKind
	value string // without brackets, even for an IP-literal
}

// validateHostForAssemble validates a raw, not-yet-escaped host value, the
// form Assemble receives via Components.Host. Unlike validateHost, which
// expects a wire-form string where any non-ASCII content is already
// percent-encoded, this accepts a host containing literal Unicode
// characters (e.g. "café.example") and IDNA-converts it to its ASCII
// A-label form before the usual IP-literal/IPv4/reg-name dispatch; ASCII
// bytes outside the reg-name's permitted set (e.g. a literal space) are
// percent-encoded rather than rejected.
func validateHostForAssemble(raw string) (validatedHost, error) {
	lowered := strings.ToLower(raw)
	if strings.HasPrefix(lowered, "[") {
		return validateHost(lowered)
	}
	if !isAllASCII(lowered) {
		ascii, err := regNameToASCII(lowered)
		if err != nil {
			return validatedHost{}, &InvalidComponent{Component: "host", Value: raw, Err: err}
		}
		lowered = ascii
	}
	return validateHost(encodeRegion(lowered, regionRegName))
}

// validateHost dispatches on the host's first character: "[" begins an
// IP-literal; otherwise try the WHATWG IPv4 parser (ipv4.Normalizer, which
// also accepts octal/hex and fewer-than-four-part forms), then fall back to
// reg-name (already-escaped wire form; see validateHostForAssemble for raw
// Unicode input).
func validateHost(raw string) (validatedHost, error) {
	if raw == "" {
		return validatedHost{kind: hostRegName, value: ""}, nil
	}
	if strings.HasPrefix(raw, "[") {
		if !strings.HasSuffix(raw, "]") {
			return validatedHost{}, &InvalidComponent{Component: "host", Value: raw, Err: errUnterminatedIPLiteral}
		}
		interior := raw[1 : len(raw)-1]
		if err := validateIPLiteral(interior); err != nil {
			return validatedHost{}, err
		}
		return validatedHost{kind: hostIPLiteral, value: strings.ToLower(interior)}, nil
	}

	decoded, err := validateRegion("host", raw, regionRegName, true)
	if err != nil {
		return validatedHost{}, err
	}
	lowered := toLowerASCII(decoded)

	if normalized, matched, ipErr := ipv4Normalizer.Normalize(lowered); matched {
		if ipErr != nil {
			return validatedHost{}, &InvalidComponent{Component: "host", Value: raw, Err: ipErr}
		}
		return validatedHost{kind: hostIPv4, value: normalized}, nil
	}

	regName, err := regNameToASCII(lowered)
	if err != nil {
		return validatedHost{}, &InvalidComponent{Component: "host", Value: raw, Err: err}
	}
	return validatedHost{kind: hostRegName, value: regName}, nil
}

var errUnterminatedIPLiteral = &causeError{message: "IP-literal is missing its closing ']'"}

// validateIPLiteral validates the interior of a "[...]" host, which is
// either an IPv6 address or an IPvFuture literal ("vHEX.address").
func validateIPLiteral(interior string) error {
	if len(interior) > 0 && (interior[0] == 'v' || interior[0] == 'V') {
		return validateIPvFuture(interior)
	}
	if net.ParseIP(interior) == nil {
		return &InvalidComponent{Component: "host", Value: "[" + interior + "]", Err: errNotAnIPLiteral}
	}
	return nil
}

var errNotAnIPLiteral = &causeError{message: "not a valid IPv6 address"}

func validateIPvFuture(lit string) error {
	rest := lit[1:]
	dot := strings.IndexByte(rest, '.')
	if dot <= 0 || dot == len(rest)-1 {
		return &InvalidComponent{Component: "host", Value: "[" + lit + "]", Err: errMalformedIPvFuture}
	}
	version, address := rest[:dot], rest[dot+1:]
	for i := 0; i < len(version); i++ {
		if !isASCIIHexDigit(version[i]) {
			return &InvalidComponent{Component: "host", Value: "[" + lit + "]", Err: errMalformedIPvFuture}
		}
	}
	for i := 0; i < len(address); i++ {
		c := address[i]
		if !isUnreserved(c) && !isSubDelim(c) && c != ':' {
			return &InvalidComponent{Component: "host", Value: "[" + lit + "]", Err: errMalformedIPvFuture}
		}
	}
	return nil
}

var errMalformedIPvFuture = &causeError{message: "malformed IPvFuture literal"}

// regNameToASCII applies NFC and IDNA ToASCII so an IDN reg-name
// normalizes to its A-label form; an all-ASCII host is returned as is. It
// does not check percent-triplets: the reg-name region validator has
// already done so for wire-form input.
func regNameToASCII(host string) (string, error) {
	if isAllASCII(host) {
		return host, nil
	}
	nfc := norm.NFC.String(host)
	ascii, err := idna.ToASCII(nfc)
	if err != nil {
		return "", err
	}
	return ascii, nil
}

func isAllASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
