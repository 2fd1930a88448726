// Copyright (c) 2025 ToeiRei
// Tablekit - table filter components for terminal UIs
// This source code is licensed under the MIT license found in the LICENSE file.

package optionset

import (
	"fmt"
	"strconv"
)

// Kind identifies the dynamic type of a raw filter value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
)

// Value is a raw scalar extracted from a data row or supplied by an external
// option list. It is a small sum type over the kinds that show up in tabular
// data: null, bool, number, string. Value is comparable, so two Values are
// equal exactly when their kind and payload are equal; deduplication relies
// on this rather than on the rendered string form.
type Value struct {
	kind Kind
	num  float64
	str  string
	flag bool
}

// Null returns the null Value. The zero Value is also null.
func Null() Value { return Value{} }

// Bool wraps a boolean raw value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Number wraps a numeric raw value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a textual raw value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// From converts a dynamically typed scalar, as produced by YAML decoding or
// database scans, into a Value. Unknown types fall back to their fmt string
// form.
func From(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float64:
		return Number(t)
	case string:
		return String(t)
	default:
		return String(fmt.Sprint(t))
	}
}

// Kind returns the dynamic kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Num returns the numeric payload. Only meaningful for KindNumber.
func (v Value) Num() float64 { return v.num }

// Truthy reports whether the value survives the option filter step.
// Null, false, zero and the empty string are all falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindNumber:
		return v.num != 0
	case KindString:
		return v.str != ""
	default:
		return false
	}
}

// String renders the display form of the value. Numbers use the shortest
// decimal representation without a trailing ".0".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	default:
		return ""
	}
}
