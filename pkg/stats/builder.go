package stats

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RecordBuilder assembles a single Record. The first error encountered is
// kept and returned by Build; later calls are no-ops.
type RecordBuilder struct {
	rec *Record
	err error
}

// NewRecordBuilder starts a record. timestamp is in microseconds since the
// Unix epoch.
func NewRecordBuilder(typ RecordType, id string, timestamp int64) *RecordBuilder {
	b := &RecordBuilder{
		rec: &Record{
			typ:       typ,
			id:        id,
			timestamp: timestamp,
			fields:    orderedmap.NewOrderedMap[string, Value](),
		},
	}
	if !typ.Valid() {
		b.err = errors.Wrapf(ErrSchemaMismatch, "record type tag %d", uint8(typ))
	}
	return b
}

// Set adds a field. Duplicate names and invalid values are schema errors.
func (b *RecordBuilder) Set(name string, v Value) *RecordBuilder {
	if b.err != nil {
		return b
	}
	if !v.valid {
		b.err = errors.Wrapf(ErrSchemaMismatch, "%s %q: field %q has no value", b.rec.typ, b.rec.id, name)
		return b
	}
	if _, dup := b.rec.fields.Get(name); dup {
		b.err = errors.Wrapf(ErrSchemaMismatch, "%s %q: duplicate field %q", b.rec.typ, b.rec.id, name)
		return b
	}
	b.rec.fields.Set(name, v)
	return b
}

// SetBool is Set with a BoolValue.
func (b *RecordBuilder) SetBool(name string, v bool) *RecordBuilder {
	return b.Set(name, BoolValue(v))
}

// SetInt32 is Set with an Int32Value.
func (b *RecordBuilder) SetInt32(name string, v int32) *RecordBuilder {
	return b.Set(name, Int32Value(v))
}

// SetUint32 is Set with a Uint32Value.
func (b *RecordBuilder) SetUint32(name string, v uint32) *RecordBuilder {
	return b.Set(name, Uint32Value(v))
}

// SetInt64 is Set with an Int64Value.
func (b *RecordBuilder) SetInt64(name string, v int64) *RecordBuilder {
	return b.Set(name, Int64Value(v))
}

// SetUint64 is Set with a Uint64Value.
func (b *RecordBuilder) SetUint64(name string, v uint64) *RecordBuilder {
	return b.Set(name, Uint64Value(v))
}

// SetDouble is Set with a DoubleValue.
func (b *RecordBuilder) SetDouble(name string, v float64) *RecordBuilder {
	return b.Set(name, DoubleValue(v))
}

// SetString is Set with a StringValue.
func (b *RecordBuilder) SetString(name string, v string) *RecordBuilder {
	return b.Set(name, StringValue(v))
}

// SetStringArray is Set with a StringArrayValue. v is copied.
func (b *RecordBuilder) SetStringArray(name string, v []string) *RecordBuilder {
	return b.Set(name, StringArrayValue(v))
}

// Build returns the finished record. The builder must not be reused.
func (b *RecordBuilder) Build() (*Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	rec := b.rec
	b.rec = nil
	if rec == nil {
		return nil, errors.New("stats: RecordBuilder reused after Build")
	}
	return rec, nil
}

// Builder collects records into a Report.
type Builder struct {
	opts    options
	records []*Record
	byType  *orderedmap.OrderedMap[RecordType, *Record]
	byID    map[string]*Record
}

// NewBuilder returns an empty report builder.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{
		opts:   applyOptions(opts),
		byType: orderedmap.NewOrderedMap[RecordType, *Record](),
		byID:   make(map[string]*Record),
	}
}

// Add appends a record. When several records share a type the last one
// becomes the type's entry; all of them stay reachable by ID and through
// Records.
func (b *Builder) Add(rec *Record) {
	if prev, ok := b.byType.Get(rec.typ); ok {
		b.opts.logger.Debug("replacing record for type",
			zap.Stringer("type", rec.typ),
			zap.String("previous", prev.id),
			zap.String("id", rec.id))
	}
	b.records = append(b.records, rec)
	b.byType.Set(rec.typ, rec)
	if _, dup := b.byID[rec.id]; dup {
		b.opts.logger.Warn("duplicate record id in snapshot",
			zap.String("id", rec.id),
			zap.Stringer("type", rec.typ))
		return
	}
	b.byID[rec.id] = rec
}

// Build freezes the collected records. The builder must not be used
// afterwards.
func (b *Builder) Build() *Report {
	r := &Report{
		records: b.records,
		byType:  b.byType,
		byID:    b.byID,
	}
	b.records, b.byType, b.byID = nil, nil, nil
	return r
}
