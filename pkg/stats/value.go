package stats

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Value is an immutable field value of exactly one ValueKind.
// The zero Value holds no kind and is only returned alongside ok == false.
type Value struct {
	kind  ValueKind
	valid bool
	bits  uint64 // bool, integer and float64 payloads
	str   string
	seq   any // private copy of a []bool, []int32, ... []string
}

// BoolValue returns a KindBool value.
func BoolValue(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}
	return Value{kind: KindBool, valid: true, bits: bits}
}

// Int32Value returns a KindInt32 value.
func Int32Value(v int32) Value {
	return Value{kind: KindInt32, valid: true, bits: uint64(int64(v))}
}

// Uint32Value returns a KindUint32 value.
func Uint32Value(v uint32) Value {
	return Value{kind: KindUint32, valid: true, bits: uint64(v)}
}

// Int64Value returns a KindInt64 value.
func Int64Value(v int64) Value {
	return Value{kind: KindInt64, valid: true, bits: uint64(v)}
}

// Uint64Value returns a KindUint64 value.
func Uint64Value(v uint64) Value {
	return Value{kind: KindUint64, valid: true, bits: v}
}

// DoubleValue returns a KindDouble value. NaN and infinities are kept.
func DoubleValue(v float64) Value {
	return Value{kind: KindDouble, valid: true, bits: math.Float64bits(v)}
}

// StringValue returns a KindString value.
func StringValue(v string) Value {
	return Value{kind: KindString, valid: true, str: v}
}

// The array constructors copy their argument.

// BoolArrayValue returns a KindBoolArray value.
func BoolArrayValue(v []bool) Value {
	return Value{kind: KindBoolArray, valid: true, seq: cloneNonNil(v)}
}

// Int32ArrayValue returns a KindInt32Array value.
func Int32ArrayValue(v []int32) Value {
	return Value{kind: KindInt32Array, valid: true, seq: cloneNonNil(v)}
}

// Uint32ArrayValue returns a KindUint32Array value.
func Uint32ArrayValue(v []uint32) Value {
	return Value{kind: KindUint32Array, valid: true, seq: cloneNonNil(v)}
}

// Int64ArrayValue returns a KindInt64Array value.
func Int64ArrayValue(v []int64) Value {
	return Value{kind: KindInt64Array, valid: true, seq: cloneNonNil(v)}
}

// Uint64ArrayValue returns a KindUint64Array value.
func Uint64ArrayValue(v []uint64) Value {
	return Value{kind: KindUint64Array, valid: true, seq: cloneNonNil(v)}
}

// DoubleArrayValue returns a KindDoubleArray value.
func DoubleArrayValue(v []float64) Value {
	return Value{kind: KindDoubleArray, valid: true, seq: cloneNonNil(v)}
}

// StringArrayValue returns a KindStringArray value. A nil slice
// becomes an empty array.
func StringArrayValue(v []string) Value {
	return Value{kind: KindStringArray, valid: true, seq: cloneNonNil(v)}
}

// cloneNonNil copies s, turning nil into an empty slice so that an array
// field read back is never nil.
func cloneNonNil[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}

// Kind returns the value kind. Calling Kind on the zero Value panics.
func (v Value) Kind() ValueKind {
	v.mustBeValid()
	return v.kind
}

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool {
	return v.valid
}

func (v Value) mustBeValid() {
	if !v.valid {
		panic("stats: use of zero Value")
	}
}

func (v Value) mustBe(k ValueKind) {
	v.mustBeValid()
	if v.kind != k {
		panic(&KindError{Want: k, Got: v.kind})
	}
}

// Bool returns the payload of a KindBool value. Like every typed
// accessor it panics with a *KindError for any other kind.
func (v Value) Bool() bool {
	v.mustBe(KindBool)
	return v.bits != 0
}

// Int32 returns the payload of a KindInt32 value.
func (v Value) Int32() int32 {
	v.mustBe(KindInt32)
	return int32(int64(v.bits))
}

// Uint32 returns the payload of a KindUint32 value.
func (v Value) Uint32() uint32 {
	v.mustBe(KindUint32)
	return uint32(v.bits)
}

// Int64 returns the payload of a KindInt64 value.
func (v Value) Int64() int64 {
	v.mustBe(KindInt64)
	return int64(v.bits)
}

// Uint64 returns the payload of a KindUint64 value.
func (v Value) Uint64() uint64 {
	v.mustBe(KindUint64)
	return v.bits
}

// Double returns the payload of a KindDouble value.
func (v Value) Double() float64 {
	v.mustBe(KindDouble)
	return math.Float64frombits(v.bits)
}

// Str returns the string payload. It is not named String so that Value
// can implement fmt.Stringer.
func (v Value) Str() string {
	v.mustBe(KindString)
	return v.str
}

// Array accessors return a fresh slice on every call.

// BoolArray returns a copy of a KindBoolArray payload.
func (v Value) BoolArray() []bool {
	v.mustBe(KindBoolArray)
	return slices.Clone(v.seq.([]bool))
}

// Int32Array returns a copy of a KindInt32Array payload.
func (v Value) Int32Array() []int32 {
	v.mustBe(KindInt32Array)
	return slices.Clone(v.seq.([]int32))
}

// Uint32Array returns a copy of a KindUint32Array payload.
func (v Value) Uint32Array() []uint32 {
	v.mustBe(KindUint32Array)
	return slices.Clone(v.seq.([]uint32))
}

// Int64Array returns a copy of a KindInt64Array payload.
func (v Value) Int64Array() []int64 {
	v.mustBe(KindInt64Array)
	return slices.Clone(v.seq.([]int64))
}

// Uint64Array returns a copy of a KindUint64Array payload.
func (v Value) Uint64Array() []uint64 {
	v.mustBe(KindUint64Array)
	return slices.Clone(v.seq.([]uint64))
}

// DoubleArray returns a copy of a KindDoubleArray payload.
func (v Value) DoubleArray() []float64 {
	v.mustBe(KindDoubleArray)
	return slices.Clone(v.seq.([]float64))
}

// StringArray returns a copy of a KindStringArray payload.
func (v Value) StringArray() []string {
	v.mustBe(KindStringArray)
	return slices.Clone(v.seq.([]string))
}

// Interface returns the value as bool, int32, uint32, int64, uint64,
// float64, string, or a freshly allocated slice of one of those.
func (v Value) Interface() any {
	v.mustBeValid()
	switch v.kind {
	case KindBool:
		return v.Bool()
	case KindInt32:
		return v.Int32()
	case KindUint32:
		return v.Uint32()
	case KindInt64:
		return v.Int64()
	case KindUint64:
		return v.Uint64()
	case KindDouble:
		return v.Double()
	case KindString:
		return v.str
	case KindBoolArray:
		return v.BoolArray()
	case KindInt32Array:
		return v.Int32Array()
	case KindUint32Array:
		return v.Uint32Array()
	case KindInt64Array:
		return v.Int64Array()
	case KindUint64Array:
		return v.Uint64Array()
	case KindDoubleArray:
		return v.DoubleArray()
	case KindStringArray:
		return v.StringArray()
	}
	panic(fmt.Sprintf("stats: %v: value kind tag %d", ErrSchemaMismatch, uint8(v.kind)))
}

// Float64 converts any numeric scalar (and bool, as 0 or 1) to float64.
// ok is false for strings and arrays.
func (v Value) Float64() (f float64, ok bool) {
	if !v.valid {
		return 0, false
	}
	switch v.kind {
	case KindBool:
		if v.bits != 0 {
			return 1, true
		}
		return 0, true
	case KindInt32, KindInt64:
		return float64(int64(v.bits)), true
	case KindUint32, KindUint64:
		return float64(v.bits), true
	case KindDouble:
		return math.Float64frombits(v.bits), true
	}
	return 0, false
}

// Equal reports whether both values have the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.valid != o.valid {
		return false
	}
	if !v.valid {
		return true
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBoolArray:
		return slices.Equal(v.seq.([]bool), o.seq.([]bool))
	case KindInt32Array:
		return slices.Equal(v.seq.([]int32), o.seq.([]int32))
	case KindUint32Array:
		return slices.Equal(v.seq.([]uint32), o.seq.([]uint32))
	case KindInt64Array:
		return slices.Equal(v.seq.([]int64), o.seq.([]int64))
	case KindUint64Array:
		return slices.Equal(v.seq.([]uint64), o.seq.([]uint64))
	case KindDoubleArray:
		return slices.Equal(v.seq.([]float64), o.seq.([]float64))
	case KindStringArray:
		return slices.Equal(v.seq.([]string), o.seq.([]string))
	case KindString:
		return v.str == o.str
	}
	return v.bits == o.bits
}

// String formats any kind for display. Arrays print as [a b c].
func (v Value) String() string {
	if !v.valid {
		return "<invalid>"
	}
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.bits != 0)
	case KindInt32, KindInt64:
		return strconv.FormatInt(int64(v.bits), 10)
	case KindUint32, KindUint64:
		return strconv.FormatUint(v.bits, 10)
	case KindDouble:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case KindString:
		return v.str
	case KindStringArray:
		return "[" + strings.Join(v.seq.([]string), " ") + "]"
	}
	return fmt.Sprint(v.seq)
}
