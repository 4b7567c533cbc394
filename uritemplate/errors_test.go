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
package uritemplate

import (
	"errors"
	"testing"
)

func TestSyntaxErrorMessage(t *testing.T) {
	err := &SyntaxError{Message: "unmatched '}'", Pos: 7}
	want := `uritemplate: syntax error at byte 7: unmatched '}'`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTemplateExpansionErrorUnwrapsNestedSequenceCause(t *testing.T) {
	var bag VariableBag
	err := bag.Assign("list", []any{[]string{"nested"}})
	var expErr *TemplateExpansionError
	if !errors.As(err, &expErr) {
		t.Fatalf("Assign error = %v (%T), want *TemplateExpansionError", err, err)
	}
	if expErr.VarName != "list" {
		t.Errorf("VarName = %q, want %q", expErr.VarName, "list")
	}
	if expErr.Unwrap() == nil {
		t.Error("Unwrap() = nil, want the underlying scalarString error")
	}
}

func TestTemplateExpansionErrorUnsupportedTypeHasNoCause(t *testing.T) {
	var bag VariableBag
	err := bag.Assign("v", struct{}{})
	var expErr *TemplateExpansionError
	if !errors.As(err, &expErr) {
		t.Fatalf("Assign error = %v (%T), want *TemplateExpansionError", err, err)
	}
	if expErr.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil (no underlying cause for an unsupported value type)", expErr.Unwrap())
	}
}
