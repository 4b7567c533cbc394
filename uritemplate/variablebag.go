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

package uritemplate

import (
	"fmt"
	"sort"
	"strconv"
)

// KeyValue is one entry of an ordered associative value, e.g. for
// VariableBag.Assign. Order is preserved through Assign and expansion,
// unlike the unordered map[string]string form Assign also accepts.
type KeyValue struct {
	Key   string
	Value string
}

type valueKind int

const (
	kindScalar valueKind = iota
	kindList
	kindAssoc
)

// Value is a variable's normalized form after VariableBag.Assign: a
// scalar string, an ordered list of strings, or an ordered list of
// key/value pairs.
type Value struct {
	kind   valueKind
	scalar string
	list   []string
	assoc  []KeyValue
}

func (v Value) isScalar() bool { return v.kind == kindScalar }
func (v Value) isList() bool   { return v.kind == kindList }
func (v Value) isAssoc() bool  { return v.kind == kindAssoc }

// VariableBag is a value-semantic, normalized container of template
// variables. The zero value is an empty bag ready to Assign into.
type VariableBag struct {
	values map[string]Value
}

// NewVariableBag returns an empty VariableBag.
func NewVariableBag() VariableBag {
	return VariableBag{values: make(map[string]Value)}
}

// Assign normalizes v and stores it under name, per the bag's insert-time
// normalization: bool -> "1"/"0", int/int64/float64 -> decimal string
// (other numeric types are rejected as unsupported), []string or
// []any -> an ordered list ([]any rejects nested sequences),
// []KeyValue -> an ordered associative value, map[string]string or
// map[string]any -> an associative value ordered by sorted key (Go maps
// carry no order of their own; use []KeyValue when output order matters).
// Assigning nil removes name from the bag.
func (b *VariableBag) Assign(name string, v any) error {
	// Copy before writing so that other copies of this bag, which share
	// the old map, are left unchanged.
	values := make(map[string]Value, len(b.values)+1)
	for k, val := range b.values {
		values[k] = val
	}
	b.values = values
	if v == nil {
		delete(b.values, name)
		return nil
	}

	switch x := v.(type) {
	case string:
		b.values[name] = Value{kind: kindScalar, scalar: x}
	case bool:
		b.values[name] = Value{kind: kindScalar, scalar: boolString(x)}
	case int:
		b.values[name] = Value{kind: kindScalar, scalar: strconv.Itoa(x)}
	case int64:
		b.values[name] = Value{kind: kindScalar, scalar: strconv.FormatInt(x, 10)}
	case float64:
		b.values[name] = Value{kind: kindScalar, scalar: strconv.FormatFloat(x, 'f', -1, 64)}
	case []string:
		b.values[name] = Value{kind: kindList, list: append([]string(nil), x...)}
	case []any:
		list := make([]string, 0, len(x))
		for _, item := range x {
			s, err := scalarString(item)
			if err != nil {
				return &TemplateExpansionError{VarName: name, Message: err.Error(), Err: err}
			}
			list = append(list, s)
		}
		b.values[name] = Value{kind: kindList, list: list}
	case []KeyValue:
		b.values[name] = Value{kind: kindAssoc, assoc: append([]KeyValue(nil), x...)}
	case map[string]string:
		b.values[name] = Value{kind: kindAssoc, assoc: sortedPairs(x)}
	case map[string]any:
		pairs := make([]KeyValue, 0, len(x))
		for k, item := range x {
			s, err := scalarString(item)
			if err != nil {
				return &TemplateExpansionError{VarName: name, Message: err.Error(), Err: err}
			}
			pairs = append(pairs, KeyValue{Key: k, Value: s})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
		b.values[name] = Value{kind: kindAssoc, assoc: pairs}
	default:
		return &TemplateExpansionError{VarName: name, Message: fmt.Sprintf("unsupported value type %T", v)}
	}
	return nil
}

func sortedPairs(m map[string]string) []KeyValue {
	pairs := make([]KeyValue, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, KeyValue{Key: k, Value: v})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key })
	return pairs
}

func boolString(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return boolString(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case []any, []string, map[string]string, map[string]any, []KeyValue:
		return "", fmt.Errorf("nested sequence is not a scalar")
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// Fetch returns the normalized value assigned to name, if any.
func (b VariableBag) Fetch(name string) (Value, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Replace returns the left-biased merge of b with other: b's own values
// win on a name collision, and other's values fill in any name b lacks.
func (b VariableBag) Replace(other VariableBag) VariableBag {
	merged := make(map[string]Value, len(b.values)+len(other.values))
	for k, v := range other.values {
		merged[k] = v
	}
	for k, v := range b.values {
		merged[k] = v
	}
	return VariableBag{values: merged}
}

// Range iterates the bag's entries in unspecified order, stopping early
// if fn returns false.
func (b VariableBag) Range(fn func(name string, v Value) bool) {
	for k, v := range b.values {
		if !fn(k, v) {
			return
		}
	}
}

// Len reports the number of variables held in the bag.
func (b VariableBag) Len() int { return len(b.values) }
