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

// splitAuthority parses an authority string (without its leading "//")
// into raw userinfo, host and port substrings, none of which have been
// validated or decoded yet.
func splitAuthority(authority string) (userinfo, host, port string) {
	hostport := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		userinfo = authority[:at]
		hostport = authority[at+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		closeBracket := strings.Index(hostport, "]")
		if closeBracket == -1 {
			return userinfo, hostport, ""
		}
		host = hostport[:closeBracket+1]
		if len(hostport) > closeBracket+1 && hostport[closeBracket+1] == ':' {
			port = hostport[closeBracket+2:]
		}
		return userinfo, host, port
	}

	if colon := strings.LastIndex(hostport, ":"); colon != -1 {
		return userinfo, hostport[:colon], hostport[colon+1:]
	}
	return userinfo, hostport, ""
}

// splitUserinfo splits an authority's userinfo substring on the first ':'
// into user and (optional) password.
func splitUserinfo(userinfo string) (user string, password string, hasPassword bool) {
	if colon := strings.IndexByte(userinfo, ':'); colon != -1 {
		return userinfo[:colon], userinfo[colon+1:], true
	}
	return userinfo, "", false
}

// validatePort validates a raw decimal port string: decimal 0..65535, a
// leading "0" permitted only for the literal "0".
func validatePort(raw string) (uint16, error) {
	if raw == "" {
		return 0, &InvalidComponent{Component: "port", Value: raw}
	}
	if len(raw) > 1 && raw[0] == '0' {
		return 0, &InvalidComponent{Component: "port", Value: raw}
	}
	var v int
	for i := 0; i < len(raw); i++ {
		if !isASCIIDigit(raw[i]) {
			return 0, &InvalidComponent{Component: "port", Value: raw}
		}
		v = v*10 + int(raw[i]-'0')
		if v > 65535 {
			return 0, &InvalidComponent{Component: "port", Value: raw}
		}
	}
	return uint16(v), nil
}
