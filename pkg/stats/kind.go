package stats

import (
	"github.com/pkg/errors"
)

// ValueKind is the shape of a field value. Numeric values match the
// native StatsMemberType tags.
type ValueKind uint8

// Value kinds. The values are the native tags and must not change.
const (
	KindBool ValueKind = iota
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindDouble
	KindString

	KindBoolArray
	KindInt32Array
	KindUint32Array
	KindInt64Array
	KindUint64Array
	KindDoubleArray
	KindStringArray

	numValueKinds
)

var kindNames = [numValueKinds]string{
	KindBool:        "bool",
	KindInt32:       "int32",
	KindUint32:      "uint32",
	KindInt64:       "int64",
	KindUint64:      "uint64",
	KindDouble:      "double",
	KindString:      "string",
	KindBoolArray:   "bool[]",
	KindInt32Array:  "int32[]",
	KindUint32Array: "uint32[]",
	KindInt64Array:  "int64[]",
	KindUint64Array: "uint64[]",
	KindDoubleArray: "double[]",
	KindStringArray: "string[]",
}

// String returns the kind name used in fixtures, such as "uint32" or
// "string[]".
func (k ValueKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the fourteen declared kinds.
func (k ValueKind) Valid() bool {
	return k < numValueKinds
}

// IsSequence reports whether k is an array kind.
func (k ValueKind) IsSequence() bool {
	return k >= KindBoolArray && k < numValueKinds
}

// Elem returns the scalar kind of an array kind, or k itself for scalars.
func (k ValueKind) Elem() ValueKind {
	if k.IsSequence() {
		return k - KindBoolArray
	}
	return k
}

// ParseValueKind resolves names such as "uint32" or "string[]".
func ParseValueKind(name string) (ValueKind, error) {
	for k := ValueKind(0); k < numValueKinds; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrSchemaMismatch, "unknown value kind %q", name)
}

// ValueKindFromTag converts a raw tag from an external snapshot.
func ValueKindFromTag(tag uint32) (ValueKind, error) {
	if tag >= uint32(numValueKinds) {
		return 0, errors.Wrapf(ErrSchemaMismatch, "value kind tag %d", tag)
	}
	return ValueKind(tag), nil
}
