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

// Package ipv4 implements the WHATWG URL Standard's IPv4 parser, used to
// recognize and canonicalize the dotted-decimal, dotted-octal and
// dotted-hex spellings of an IPv4 address that a URI host component may
// carry (e.g. "0300.0250.0.01" -> "192.168.0.1"). A host that does not
// match the IPv4 part-grammar is reported as such, not as an error: it is
// simply some other kind of reg-name.
package ipv4

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ErrIPv4CalculatorMissing is returned by NewNormalizer when constructed
// with an explicit nil Backend. It is a startup-time error, never
// returned by Normalize itself.
var ErrIPv4CalculatorMissing = errors.New("ipv4: no arithmetic backend available")

// maxParts is the most parts a dotted IPv4 address literal may have.
const maxParts = 4

// Backend performs the base-N parsing and combination arithmetic behind
// the IPv4 parser. It is pluggable so that hosts which should not assume
// a native 64-bit accumulator can use the arbitrary-precision path.
type Backend interface {
	// ParsePart parses s (already stripped of its "0x"/"0" base prefix)
	// in the given base, reporting overflow if the value does not fit
	// the backend's working width.
	ParsePart(s string, base int) (value uint64, overflow bool)
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithBackend selects a custom arithmetic Backend.
func WithBackend(b Backend) Option {
	return func(n *Normalizer) { n.backend = b }
}

// WithBigInt selects the arbitrary-precision backend, for platforms where
// the native 64-bit accumulator is not trusted to be available.
func WithBigInt() Option {
	return WithBackend(bigBackend{})
}

// Normalizer recognizes and rewrites IPv4 host literals. The arithmetic
// backend is selected once, at construction, and reused for every call to
// Normalize.
type Normalizer struct {
	backend Backend
}

// NewNormalizer builds a Normalizer. By default it uses a native 64-bit
// backend, which is always available; NewNormalizer only fails if the
// caller passes an explicit nil Backend via WithBackend.
func NewNormalizer(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{backend: nativeBackend{}}
	for _, opt := range opts {
		opt(n)
	}
	if n.backend == nil {
		return nil, ErrIPv4CalculatorMissing
	}
	return n, nil
}

// Normalize accepts a reg-name host and reports whether it matches the
// IPv4 part-grammar. If it does, the returned string is the canonical
// dot-decimal form and matched is true. If it does not match, host is
// returned unchanged, matched is false, and err is nil: that is not an
// error condition, it simply means the caller should try other host
// forms (reg-name, IDN, ...). err is non-nil (with matched true) when the
// host matches the grammar but a value is out of range: a part overflows
// the chosen arithmetic backend, a non-final part exceeds 255, or the
// final part is too large for the bytes left to it.
func (n *Normalizer) Normalize(host string) (normalized string, matched bool, err error) {
	trimmed := strings.TrimSuffix(host, ".")
	if trimmed == "" {
		return host, false, nil
	}
	rawParts := strings.Split(trimmed, ".")
	if len(rawParts) == 0 || len(rawParts) > maxParts {
		return host, false, nil
	}

	numbers := make([]uint64, 0, len(rawParts))
	for _, part := range rawParts {
		value, base, ok := stripBaseAndValidate(part)
		if !ok {
			return host, false, nil
		}
		if value == "" {
			// WHATWG treats a part consisting only of a base prefix
			// (e.g. "0x") as numeric value zero.
			numbers = append(numbers, 0)
			continue
		}
		v, overflow := n.backend.ParsePart(value, base)
		if overflow {
			return host, true, errOverflow(part)
		}
		numbers = append(numbers, v)
	}

	total, ok := combine(numbers)
	if !ok {
		return host, true, errOverflow(trimmed)
	}
	return dotDecimal(total), true, nil
}

func errOverflow(part string) error {
	return &strconv.NumError{Func: "ipv4.Normalize", Num: part, Err: strconv.ErrRange}
}

// stripBaseAndValidate splits off a leading "0x"/"0X" (hex) or "0" (octal)
// prefix and reports the base plus whether the remaining digits are valid
// for that base. A bare decimal part has base 10 and no prefix to strip.
func stripBaseAndValidate(part string) (digits string, base int, ok bool) {
	if part == "" {
		return "", 0, false
	}
	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'):
		digits = part[2:]
		base = 16
	case len(part) >= 1 && part[0] == '0' && len(part) > 1:
		digits = part[1:]
		base = 8
	default:
		digits = part
		base = 10
	}
	if digits == "" {
		return "", base, true
	}
	for i := 0; i < len(digits); i++ {
		if !isDigitForBase(digits[i], base) {
			return "", 0, false
		}
	}
	return digits, base, true
}

func isDigitForBase(c byte, base int) bool {
	switch base {
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	case 8:
		return c >= '0' && c <= '7'
	default:
		return c >= '0' && c <= '9'
	}
}

// combine folds the parsed parts into a single 32-bit value per the
// WHATWG rule: the last part absorbs 256^(5-N) of the address space, and
// every earlier part must be at most 255.
func combine(numbers []uint64) (uint32, bool) {
	n := len(numbers)
	for i := 0; i < n-1; i++ {
		if numbers[i] > 255 {
			return 0, false
		}
	}
	last := numbers[n-1]
	maxLast := pow256(5 - n)
	if last >= maxLast {
		return 0, false
	}

	var total uint64
	for i := 0; i < n-1; i++ {
		total += numbers[i] * pow256(3-i)
	}
	total += last
	if total > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(total), true
}

func pow256(exp int) uint64 {
	v := uint64(1)
	for i := 0; i < exp; i++ {
		v *= 256
	}
	return v
}

func dotDecimal(v uint32) string {
	return strconv.Itoa(int(v>>24&0xFF)) + "." +
		strconv.Itoa(int(v>>16&0xFF)) + "." +
		strconv.Itoa(int(v>>8&0xFF)) + "." +
		strconv.Itoa(int(v&0xFF))
}

// nativeBackend parses parts using the platform's native uint64, which is
// plenty wide for any single IPv4 part (the largest valid part value,
// 2^32-1 for a single-part address, fits in 32 bits, let alone 64).
type nativeBackend struct{}

func (nativeBackend) ParsePart(s string, base int) (uint64, bool) {
	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, true
	}
	return v, false
}

// bigBackend parses parts with math/big, for hosts where a native 64-bit
// accumulator is not assumed to be available.
type bigBackend struct{}

func (bigBackend) ParsePart(s string, base int) (uint64, bool) {
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return 0, true
	}
	if !v.IsUint64() {
		return 0, true
	}
	return v.Uint64(), false
}
