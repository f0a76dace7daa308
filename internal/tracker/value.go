package tracker

import (
	"strconv"
	"strings"
)

// Value is a typed tracker measurement. It is constructed through
// ParseValue so the contained representation always matches the
// tracker's type.
type Value struct {
	typ Type
	num float64
	b   bool
	s   string
}

// ParseValue parses a raw string into a Value of the given type. A raw
// value that does not parse returns a *TypeMismatchError.
func ParseValue(typ Type, raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	switch typ {
	case TypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &TypeMismatchError{Type: typ, Raw: raw}
		}
		return Value{typ: typ, num: float64(n)}, nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, &TypeMismatchError{Type: typ, Raw: raw}
		}
		return Value{typ: typ, num: f}, nil
	case TypeBool:
		b, err := parseBool(raw)
		if err != nil {
			return Value{}, &TypeMismatchError{Type: typ, Raw: raw}
		}
		return Value{typ: typ, b: b}, nil
	case TypeString:
		return Value{typ: typ, s: raw}, nil
	}
	return Value{}, &TypeMismatchError{Type: typ, Raw: raw}
}

// parseBool accepts the spellings users actually type for check-offs,
// beyond what strconv.ParseBool allows.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "t", "yes", "y", "1", "done":
		return true, nil
	case "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// IntValue builds an int-typed value.
func IntValue(n int64) Value { return Value{typ: TypeInt, num: float64(n)} }

// FloatValue builds a float-typed value.
func FloatValue(f float64) Value { return Value{typ: TypeFloat, num: f} }

// BoolValue builds a bool-typed value.
func BoolValue(b bool) Value { return Value{typ: TypeBool, b: b} }

// StringValue builds a str-typed value.
func StringValue(s string) Value { return Value{typ: TypeString, s: s} }

// Type returns the value's tracker type.
func (v Value) Type() Type { return v.typ }

// Float returns the numeric content. Zero for bool and str values.
func (v Value) Float() float64 { return v.num }

// Truthy reports whether the value counts as a completion: true for
// bools, non-zero for numerics, non-empty for strings.
func (v Value) Truthy() bool {
	switch v.typ {
	case TypeBool:
		return v.b
	case TypeInt, TypeFloat:
		return v.num != 0
	case TypeString:
		return v.s != ""
	}
	return false
}

// String returns the canonical text form, which round-trips through
// ParseValue for the same type.
func (v Value) String() string {
	switch v.typ {
	case TypeInt:
		return strconv.FormatInt(int64(v.num), 10)
	case TypeFloat:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeString:
		return v.s
	}
	return ""
}
