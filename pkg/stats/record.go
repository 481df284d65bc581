package stats

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
)

// Field is one named value of a record.
type Field struct {
	Name  string
	Value Value
}

// Kind returns the field's value kind.
func (f Field) Kind() ValueKind {
	return f.Value.Kind()
}

// Record is one immutable statistics object from a snapshot.
// A Record is safe for concurrent reads.
type Record struct {
	typ       RecordType
	id        string
	timestamp int64
	fields    *orderedmap.OrderedMap[string, Value]
}

// Type returns the record type.
func (r *Record) Type() RecordType { return r.typ }

// ID returns the engine-assigned record identifier.
func (r *Record) ID() string { return r.id }

// Timestamp returns the capture time in microseconds since the Unix epoch.
func (r *Record) Timestamp() int64 { return r.timestamp }

// Time returns Timestamp as a time.Time.
func (r *Record) Time() time.Time { return time.UnixMicro(r.timestamp) }

// Len returns the number of fields.
func (r *Record) Len() int { return r.fields.Len() }

// Names returns field names in insertion order.
func (r *Record) Names() []string {
	names := make([]string, 0, r.fields.Len())
	for el := r.fields.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// Has reports whether the field is present. Names are case-sensitive.
func (r *Record) Has(name string) bool {
	_, ok := r.fields.Get(name)
	return ok
}

// Get returns the named field value.
func (r *Record) Get(name string) (Value, bool) {
	return r.fields.Get(name)
}

// Lookup is Get with an ErrMissingField error for absent fields.
func (r *Record) Lookup(name string) (Value, error) {
	v, ok := r.fields.Get(name)
	if !ok {
		return Value{}, errors.Wrapf(ErrMissingField, "%s %q: %s", r.typ, r.id, name)
	}
	return v, nil
}

// Fields returns all fields in insertion order.
func (r *Record) Fields() []Field {
	out := make([]Field, 0, r.fields.Len())
	for el := r.fields.Front(); el != nil; el = el.Next() {
		out = append(out, Field{Name: el.Key, Value: el.Value})
	}
	return out
}

// Range calls fn for each field in insertion order until fn returns false.
func (r *Record) Range(fn func(name string, v Value) bool) {
	for el := r.fields.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// typed looks up name and panics with a KindError if the field exists
// with a different kind.
func (r *Record) typed(name string, k ValueKind) (Value, bool) {
	v, ok := r.fields.Get(name)
	if !ok {
		return Value{}, false
	}
	if v.kind != k {
		panic(&KindError{Field: name, Want: k, Got: v.kind})
	}
	return v, true
}

// The typed getters report absence with ok == false and panic when the
// field holds a different kind.

// Bool returns a KindBool field.
func (r *Record) Bool(name string) (bool, bool) {
	v, ok := r.typed(name, KindBool)
	if !ok {
		return false, false
	}
	return v.Bool(), true
}

// Int32 returns a KindInt32 field.
func (r *Record) Int32(name string) (int32, bool) {
	v, ok := r.typed(name, KindInt32)
	if !ok {
		return 0, false
	}
	return v.Int32(), true
}

// Uint32 returns a KindUint32 field.
func (r *Record) Uint32(name string) (uint32, bool) {
	v, ok := r.typed(name, KindUint32)
	if !ok {
		return 0, false
	}
	return v.Uint32(), true
}

// Int64 returns a KindInt64 field.
func (r *Record) Int64(name string) (int64, bool) {
	v, ok := r.typed(name, KindInt64)
	if !ok {
		return 0, false
	}
	return v.Int64(), true
}

// Uint64 returns a KindUint64 field.
func (r *Record) Uint64(name string) (uint64, bool) {
	v, ok := r.typed(name, KindUint64)
	if !ok {
		return 0, false
	}
	return v.Uint64(), true
}

// Double returns a KindDouble field.
func (r *Record) Double(name string) (float64, bool) {
	v, ok := r.typed(name, KindDouble)
	if !ok {
		return 0, false
	}
	return v.Double(), true
}

// String returns a KindString field.
func (r *Record) String(name string) (string, bool) {
	v, ok := r.typed(name, KindString)
	if !ok {
		return "", false
	}
	return v.Str(), true
}

// BoolArray returns a copy of a KindBoolArray field.
func (r *Record) BoolArray(name string) ([]bool, bool) {
	v, ok := r.typed(name, KindBoolArray)
	if !ok {
		return nil, false
	}
	return v.BoolArray(), true
}

// Int32Array returns a copy of a KindInt32Array field.
func (r *Record) Int32Array(name string) ([]int32, bool) {
	v, ok := r.typed(name, KindInt32Array)
	if !ok {
		return nil, false
	}
	return v.Int32Array(), true
}

// Uint32Array returns a copy of a KindUint32Array field.
func (r *Record) Uint32Array(name string) ([]uint32, bool) {
	v, ok := r.typed(name, KindUint32Array)
	if !ok {
		return nil, false
	}
	return v.Uint32Array(), true
}

// Int64Array returns a copy of a KindInt64Array field.
func (r *Record) Int64Array(name string) ([]int64, bool) {
	v, ok := r.typed(name, KindInt64Array)
	if !ok {
		return nil, false
	}
	return v.Int64Array(), true
}

// Uint64Array returns a copy of a KindUint64Array field.
func (r *Record) Uint64Array(name string) ([]uint64, bool) {
	v, ok := r.typed(name, KindUint64Array)
	if !ok {
		return nil, false
	}
	return v.Uint64Array(), true
}

// DoubleArray returns a copy of a KindDoubleArray field.
func (r *Record) DoubleArray(name string) ([]float64, bool) {
	v, ok := r.typed(name, KindDoubleArray)
	if !ok {
		return nil, false
	}
	return v.DoubleArray(), true
}

// StringArray returns a copy of a KindStringArray field.
func (r *Record) StringArray(name string) ([]string, bool) {
	v, ok := r.typed(name, KindStringArray)
	if !ok {
		return nil, false
	}
	return v.StringArray(), true
}
