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

//nolint:testpackage // white-box test file for an internal package; needs the same package to reach unexported helpers.
package ipv4

import "testing"

func TestNormalizeDottedDecimal(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	tests := map[string]string{
		"192.168.0.1":    "192.168.0.1",
		"0300.0250.0.01": "192.168.0.1",
		"0xC0.0xA8.0.1":  "192.168.0.1",
		"0xC0A80001":     "192.168.0.1",
		"3232235521":     "192.168.0.1",
		"192.168.1":      "192.168.0.1",
	}

	for in, want := range tests {
		got, matched, err := n.Normalize(in)
		if err != nil {
			t.Errorf("Normalize(%q) error: %v", in, err)
			continue
		}
		if !matched {
			t.Errorf("Normalize(%q) matched = false, want true", in)
			continue
		}
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTrailingDot(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	got, matched, err := n.Normalize("192.168.0.1.")
	if err != nil || !matched {
		t.Fatalf("Normalize(trailing dot) = (%q, %v, %v)", got, matched, err)
	}
	if got != "192.168.0.1" {
		t.Errorf("Normalize(trailing dot) = %q, want %q", got, "192.168.0.1")
	}
}

func TestNormalizeNonMatchingHostIsNotAnError(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	for _, host := range []string{"example.com", "localhost", "1.2.3.4.5", "1.2.3.256.5"} {
		got, matched, err := n.Normalize(host)
		if err != nil {
			t.Errorf("Normalize(%q) returned error for a non-IPv4 reg-name: %v", host, err)
		}
		if matched {
			t.Errorf("Normalize(%q) matched = true, want false", host)
		}
		if got != host {
			t.Errorf("Normalize(%q) = %q, want unchanged input", host, got)
		}
	}
}

func TestNormalizeOverflow(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	tests := []string{
		"256.1.1.1",
		"1.1.1.256",
		"4294967296",
		"1.16777216",
	}
	for _, host := range tests {
		_, matched, err := n.Normalize(host)
		if !matched {
			t.Errorf("Normalize(%q) matched = false, want true (grammar matches, value overflows)", host)
			continue
		}
		if err == nil {
			t.Errorf("Normalize(%q) returned no error, want an overflow error", host)
		}
	}
}

func TestWithBigIntBackendAgreesWithNative(t *testing.T) {
	native, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	big, err := NewNormalizer(WithBigInt())
	if err != nil {
		t.Fatalf("NewNormalizer(WithBigInt()): %v", err)
	}

	for _, host := range []string{"192.168.0.1", "0300.0250.0.01", "3232235521"} {
		wantGot, wantMatched, wantErr := native.Normalize(host)
		gotGot, gotMatched, gotErr := big.Normalize(host)
		if gotGot != wantGot || gotMatched != wantMatched || (gotErr == nil) != (wantErr == nil) {
			t.Errorf("native/bigint disagree for %q: native=(%q,%v,%v) big=(%q,%v,%v)",
				host, wantGot, wantMatched, wantErr, gotGot, gotMatched, gotErr)
		}
	}
}

func TestNewNormalizerRejectsNilBackend(t *testing.T) {
	_, err := NewNormalizer(WithBackend(nil))
	if err != ErrIPv4CalculatorMissing {
		t.Errorf("NewNormalizer(WithBackend(nil)) error = %v, want %v", err, ErrIPv4CalculatorMissing)
	}
}
