package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueScalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
		want any
		str  string
	}{
		{"bool", BoolValue(true), KindBool, true, "true"},
		{"int32", Int32Value(math.MinInt32), KindInt32, int32(math.MinInt32), "-2147483648"},
		{"uint32", Uint32Value(math.MaxUint32), KindUint32, uint32(math.MaxUint32), "4294967295"},
		{"int64", Int64Value(math.MinInt64), KindInt64, int64(math.MinInt64), "-9223372036854775808"},
		{"uint64", Uint64Value(math.MaxUint64), KindUint64, uint64(math.MaxUint64), "18446744073709551615"},
		{"double", DoubleValue(0.125), KindDouble, 0.125, "0.125"},
		{"string", StringValue("relay"), KindString, "relay", "relay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.v.IsValid())
			assert.Equal(t, tt.kind, tt.v.Kind())
			assert.Equal(t, tt.want, tt.v.Interface())
			assert.Equal(t, tt.str, tt.v.String())
		})
	}
}

func TestValueArraysCopyInput(t *testing.T) {
	in := []float64{1, 2, 3}
	v := DoubleArrayValue(in)
	in[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, v.DoubleArray())

	out := v.DoubleArray()
	out[1] = 99
	assert.Equal(t, []float64{1, 2, 3}, v.DoubleArray())
}

func TestValueKindMismatchPanics(t *testing.T) {
	v := Int32Value(3)
	assert.PanicsWithError(t, (&KindError{Want: KindUint32, Got: KindInt32}).Error(), func() {
		v.Uint32()
	})
	assert.Panics(t, func() { v.StringArray() })
	assert.Panics(t, func() { Value{}.Kind() })
}

func TestValueFloat64(t *testing.T) {
	tests := []struct {
		v    Value
		want float64
		ok   bool
	}{
		{BoolValue(true), 1, true},
		{BoolValue(false), 0, true},
		{Int32Value(-4), -4, true},
		{Uint32Value(4), 4, true},
		{Int64Value(-1 << 40), -(1 << 40), true},
		{Uint64Value(1 << 40), 1 << 40, true},
		{DoubleValue(2.5), 2.5, true},
		{StringValue("x"), 0, false},
		{Uint32ArrayValue([]uint32{1}), 0, false},
		{Value{}, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.v.Float64()
		assert.Equal(t, tt.ok, ok, "%v", tt.v)
		assert.Equal(t, tt.want, got, "%v", tt.v)
	}
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Uint32Value(5).Equal(Uint32Value(5)))
	assert.False(t, Uint32Value(5).Equal(Uint64Value(5)))
	assert.False(t, Uint32Value(5).Equal(Uint32Value(6)))
	assert.True(t, StringArrayValue([]string{"a"}).Equal(StringArrayValue([]string{"a"})))
	assert.False(t, StringArrayValue([]string{"a"}).Equal(StringArrayValue([]string{"b"})))
	assert.True(t, Value{}.Equal(Value{}))
	assert.False(t, Value{}.Equal(BoolValue(false)))
}

func TestValueArrayString(t *testing.T) {
	assert.Equal(t, "[a b]", StringArrayValue([]string{"a", "b"}).String())
	assert.Equal(t, "[1 2]", Int32ArrayValue([]int32{1, 2}).String())
	assert.Equal(t, "<invalid>", Value{}.String())
}
