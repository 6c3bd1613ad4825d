// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package stackline

import (
	"encoding/json"
	"fmt"
)

// ValueKind distinguishes the two variants a Value may hold.
type ValueKind uint8

const (
	// KindNumber marks a Value holding a float64.
	KindNumber ValueKind = iota
	// KindString marks a Value holding a string.
	KindString
)

// Value is the payload element of a Signal's stack: a small closed sum of
// a double-precision number or a string. Extending the value language is
// an intentional growth point (spec.md §9) handled by widening this type,
// not by introducing dynamic typing.
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

// Number creates a Value holding a float64.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// String creates a Value holding a string.
func String(v string) Value {
	return Value{kind: KindString, str: v}
}

// Kind reports which variant the value holds.
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsNumber returns the numeric value and true iff v holds a number.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsInt truncates a numeric value to an int64, returning ok=false if v does
// not hold a number.
func (v Value) AsInt() (int64, bool) {
	n, ok := v.AsNumber()
	if !ok {
		return 0, false
	}
	return int64(n), true
}

// AsString returns the string value and true iff v holds a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Equal reports whether two values hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	default:
		return v.str == other.str
	}
}

// String implements fmt.Stringer for debugging.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("%v", v.num)
	default:
		return v.str
	}
}

// valueJSON is the single-key-object wire shape shared by every tagged
// union in the engine: {"Number": 1.5} or {"String": "hi"}.
type valueJSON struct {
	Number *float64 `json:"Number,omitempty"`
	String *string  `json:"String,omitempty"`
}

// MarshalJSON encodes the value as a single-key object naming its variant.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(valueJSON{Number: &v.num})
	default:
		return json.Marshal(valueJSON{String: &v.str})
	}
}

// UnmarshalJSON decodes a value from its single-key object form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw valueJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Number != nil:
		*v = Number(*raw.Number)
	case raw.String != nil:
		*v = String(*raw.String)
	default:
		return fmt.Errorf("stackline: malformed Value, no recognised variant key")
	}
	return nil
}
