package stats

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SnapshotHandle is an external statistics snapshot.
//
// List returns the records together with an index-aligned list of raw
// record type tags.
type SnapshotHandle interface {
	List() (tags []uint32, records []RecordHandle, err error)
}

// RecordHandle is one record of an external snapshot. Getters that cannot
// return an error panic with an error wrapping ErrReleased when read after
// their snapshot is released.
type RecordHandle interface {
	TypeTag() uint32
	ID() string
	Timestamp() int64
	Fields() ([]FieldHandle, error)
}

// FieldHandle is one field of an external record. Only the getter
// matching KindTag may be called.
type FieldHandle interface {
	Name() string
	KindTag() uint32

	Bool() bool
	Int32() int32
	Uint32() uint32
	Int64() int64
	Uint64() uint64
	Double() float64
	String() string

	BoolArray() []bool
	Int32Array() []int32
	Uint32Array() []uint32
	Int64Array() []int64
	Uint64Array() []uint64
	DoubleArray() []float64
	StringArray() []string
}

// Construct copies every record and field of h into a new Report. The
// handle is neither modified nor retained, so it may be released as soon
// as Construct returns.
//
// An undeclared record type tag fails the whole snapshot with
// ErrSchemaMismatch unless WithSkipUnknownTypes is given. An undeclared
// value kind always fails. A handle released while Construct runs yields
// ErrReleased.
func Construct(h SnapshotHandle, opts ...Option) (report *Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			released, ok := r.(error)
			if !ok || !errors.Is(released, ErrReleased) {
				panic(r)
			}
			report, err = nil, released
		}
	}()

	b := NewBuilder(opts...)
	log := b.opts.logger

	tags, records, err := h.List()
	if err != nil {
		return nil, err
	}
	if len(tags) != len(records) {
		return nil, errors.Wrapf(ErrSchemaMismatch, "%d type tags for %d records", len(tags), len(records))
	}

	for i, rh := range records {
		typ, err := RecordTypeFromTag(tags[i])
		if err != nil {
			if !b.opts.skipUnknown {
				return nil, errors.Wrapf(err, "record %d (%q)", i, rh.ID())
			}
			log.Warn("skipping record with unknown type",
				zap.Uint32("tag", tags[i]),
				zap.String("id", rh.ID()),
				zap.Int("index", i))
			continue
		}
		if own := rh.TypeTag(); own != tags[i] {
			return nil, errors.Wrapf(ErrSchemaMismatch, "record %d (%q): listed as tag %d, reports tag %d",
				i, rh.ID(), tags[i], own)
		}

		rec, err := copyRecord(typ, rh)
		if err != nil {
			return nil, err
		}
		b.Add(rec)
	}

	return b.Build(), nil
}

func copyRecord(typ RecordType, rh RecordHandle) (*Record, error) {
	id := rh.ID()
	rb := NewRecordBuilder(typ, id, rh.Timestamp())

	fields, err := rh.Fields()
	if err != nil {
		return nil, errors.Wrapf(err, "%s %q", typ, id)
	}
	for _, fh := range fields {
		v, err := readValue(fh)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %q", typ, id)
		}
		rb.Set(fh.Name(), v)
	}
	return rb.Build()
}

// readValue is the single conversion point from an external field to a
// Value. Every declared kind has a case; anything else is a schema error.
func readValue(fh FieldHandle) (Value, error) {
	kind, err := ValueKindFromTag(fh.KindTag())
	if err != nil {
		return Value{}, errors.Wrapf(err, "field %q", fh.Name())
	}
	switch kind {
	case KindBool:
		return BoolValue(fh.Bool()), nil
	case KindInt32:
		return Int32Value(fh.Int32()), nil
	case KindUint32:
		return Uint32Value(fh.Uint32()), nil
	case KindInt64:
		return Int64Value(fh.Int64()), nil
	case KindUint64:
		return Uint64Value(fh.Uint64()), nil
	case KindDouble:
		return DoubleValue(fh.Double()), nil
	case KindString:
		return StringValue(fh.String()), nil
	case KindBoolArray:
		return BoolArrayValue(fh.BoolArray()), nil
	case KindInt32Array:
		return Int32ArrayValue(fh.Int32Array()), nil
	case KindUint32Array:
		return Uint32ArrayValue(fh.Uint32Array()), nil
	case KindInt64Array:
		return Int64ArrayValue(fh.Int64Array()), nil
	case KindUint64Array:
		return Uint64ArrayValue(fh.Uint64Array()), nil
	case KindDoubleArray:
		return DoubleArrayValue(fh.DoubleArray()), nil
	case KindStringArray:
		return StringArrayValue(fh.StringArray()), nil
	}
	return Value{}, errors.Wrapf(ErrSchemaMismatch, "field %q: value kind %d", fh.Name(), uint8(kind))
}
