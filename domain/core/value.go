package core

import (
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	KindNumber Kind = iota
	KindText
	KindBool
)

// Value is an immutable scalar cell: a number, a text label, or a boolean.
// The zero value is the number 0.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

// Number creates a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text creates a text value
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool creates a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the scalar kind
func (v Value) Kind() Kind { return v.kind }

// Float64 returns the numeric content and whether the value is a number
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Label renders the canonical label used for group keys and table levels.
// Numbers use the shortest round-trip representation so 1 and 1.0 agree.
func (v Value) Label() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.text
	}
}

// Equal reports whether two values have the same kind and content
func (v Value) Equal(o Value) bool {
	return v.Compare(o) == 0
}

// Compare defines the stable total order used for deterministic grouping:
// numbers compare numerically, text lexically, bools false < true.
// Mixed kinds rank number < text < bool.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		if v.kind < o.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case KindNumber:
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
		return 0
	case KindBool:
		switch {
		case !v.b && o.b:
			return -1
		case v.b && !o.b:
			return 1
		}
		return 0
	default:
		return strings.Compare(v.text, o.text)
	}
}

// MarshalJSON emits the underlying scalar, keeping result records plain.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return []byte(strconv.FormatFloat(v.num, 'g', -1, 64)), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	default:
		return []byte(strconv.Quote(v.text)), nil
	}
}

func (v Value) String() string {
	return v.Label()
}
