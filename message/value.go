package message

import (
	"fmt"
	"time"
)

// ValueKind identifies which variant of Value is populated.
type ValueKind int

const (
	// KindString holds the field content unchanged.
	KindString ValueKind = iota
	// KindInt holds a parsed integer.
	KindInt
	// KindReal holds a parsed floating-point number.
	KindReal
	// KindTimestamp holds a parsed date/time value.
	KindTimestamp
)

// Value is a tagged union over the four typed field representations
// produced by casting (spec §4.5): string, integer, real, or timestamp.
// Dispatch on Kind() rather than attempting a runtime type assertion.
type Value struct {
	kind ValueKind
	str  string
	i    int64
	f    float64
	t    time.Time
}

// Kind reports which variant is populated.
func (v Value) Kind() ValueKind {
	return v.kind
}

// StringValue builds a Value holding raw string content.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue builds a Value holding an integer.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// RealValue builds a Value holding a floating-point number.
func RealValue(f float64) Value { return Value{kind: KindReal, f: f} }

// TimestampValue builds a Value holding a timestamp.
func TimestampValue(t time.Time) Value { return Value{kind: KindTimestamp, t: t} }

// AsString returns the string content. Valid for any Kind: non-string kinds
// are rendered via their natural textual form.
func (v Value) AsString() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindReal:
		return fmt.Sprintf("%g", v.f)
	case KindTimestamp:
		return v.t.Format(time.RFC3339)
	default:
		return ""
	}
}

// Int returns the integer value and whether Kind() == KindInt.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Real returns the float value and whether Kind() == KindReal.
func (v Value) Real() (float64, bool) {
	return v.f, v.kind == KindReal
}

// Timestamp returns the time value and whether Kind() == KindTimestamp.
func (v Value) Timestamp() (time.Time, bool) {
	return v.t, v.kind == KindTimestamp
}
