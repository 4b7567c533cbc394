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

// isASCIILetter reports whether r is an ASCII letter.
func isASCIILetter(r byte) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// isASCIIDigit reports whether r is an ASCII digit.
func isASCIIDigit(r byte) bool {
	return '0' <= r && r <= '9'
}

// isASCIIHexDigit reports whether r is an ASCII hex digit.
func isASCIIHexDigit(r byte) bool {
	return isASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// isControl reports whether b is a control byte forbidden unescaped under
// strict percent-encoding validation: 0x00-0x1F, 0x7F.
func isControl(b byte) bool {
	return b <= 0x1F || b == 0x7F
}

// isUnreserved reports whether b is in the RFC 3986 "unreserved" set:
// ALPHA / DIGIT / "-" / "." / "_" / "~".
func isUnreserved(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '-' || b == '.' || b == '_' || b == '~'
}

// isSubDelim reports whether b is in the RFC 3986 "sub-delims" set.
func isSubDelim(b byte) bool {
	return strings.IndexByte("!$&'()*+,;=", b) >= 0
}

// isSchemeChar reports whether b may appear in a scheme after the first
// character: ALPHA / DIGIT / "+" / "-" / ".".
func isSchemeChar(b byte) bool {
	return isASCIILetter(b) || isASCIIDigit(b) || b == '+' || b == '-' || b == '.'
}
