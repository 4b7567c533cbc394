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

import "fmt"

// SyntaxError is returned when a URI reference, or one of its components,
// does not conform to the RFC 3986 grammar.
type SyntaxError struct {
	Message string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uri: syntax error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("uri: syntax error: %s", e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// InvalidComponent is returned by a component validator when a value is
// structurally incompatible with the syntactic region it was given for
// (e.g. a port that isn't decimal, a host that isn't a valid reg-name,
// IPv4 literal or IP-literal).
type InvalidComponent struct {
	Component string
	Value     string
	Err       error
}

func (e *InvalidComponent) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("uri: invalid %s %q: %v", e.Component, e.Value, e.Err)
	}
	return fmt.Sprintf("uri: invalid %s %q", e.Component, e.Value)
}

func (e *InvalidComponent) Unwrap() error { return e.Err }

// InvalidEncoding is returned when strict percent-encoding validation
// rejects a component: a '%' not followed by two hex digits, or an
// unescaped control byte (0x00-0x1F, 0x7F).
type InvalidEncoding struct {
	Component string
	Value     string
}

func (e *InvalidEncoding) Error() string {
	return fmt.Sprintf("uri: invalid percent-encoding in %s: %q", e.Component, e.Value)
}

// causeError is the internal, unexported error kind used while scanning a
// reference string. Parser-facing functions wrap it into a *SyntaxError
// before it crosses the package boundary.
type causeError struct {
	message string
	char    rune
	details string
}

func (e *causeError) Error() string {
	msg := e.message
	switch {
	case e.char != 0:
		msg = fmt.Sprintf("%s %q", msg, e.char)
	case e.details != "":
		msg = fmt.Sprintf("%s %q", msg, e.details)
	}
	return msg
}

func newSyntaxError(err error) error {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SyntaxError); ok {
		return se
	}
	return &SyntaxError{Message: err.Error(), Err: err}
}

var (
	errPathStartingWithSlashes = &causeError{
		message: "a path is not allowed to start with // when no authority is present",
	}
	errEmptyHostWithAuthority = &causeError{
		message: "an authority was present but its host is empty",
	}
)
