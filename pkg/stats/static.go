package stats

// StaticSnapshot is an in-memory SnapshotHandle for producers that already
// hold decoded values but still want Construct's handling of unknown type
// tags.
type StaticSnapshot struct {
	tags    []uint32
	records []RecordHandle
}

// Add appends a record with a raw type tag.
func (s *StaticSnapshot) Add(tag uint32, id string, timestamp int64, fields ...Field) {
	s.tags = append(s.tags, tag)
	s.records = append(s.records, &staticRecord{tag: tag, id: id, ts: timestamp, fields: fields})
}

// Len returns the number of records added.
func (s *StaticSnapshot) Len() int {
	return len(s.records)
}

// List implements SnapshotHandle.
func (s *StaticSnapshot) List() ([]uint32, []RecordHandle, error) {
	return s.tags, s.records, nil
}

type staticRecord struct {
	tag    uint32
	id     string
	ts     int64
	fields []Field
}

func (r *staticRecord) TypeTag() uint32  { return r.tag }
func (r *staticRecord) ID() string       { return r.id }
func (r *staticRecord) Timestamp() int64 { return r.ts }

func (r *staticRecord) Fields() ([]FieldHandle, error) {
	out := make([]FieldHandle, len(r.fields))
	for i, f := range r.fields {
		out[i] = staticField{f}
	}
	return out, nil
}

type staticField struct{ f Field }

func (h staticField) Name() string    { return h.f.Name }
func (h staticField) KindTag() uint32 { return uint32(h.f.Value.Kind()) }

func (h staticField) Bool() bool             { return h.f.Value.Bool() }
func (h staticField) Int32() int32           { return h.f.Value.Int32() }
func (h staticField) Uint32() uint32         { return h.f.Value.Uint32() }
func (h staticField) Int64() int64           { return h.f.Value.Int64() }
func (h staticField) Uint64() uint64         { return h.f.Value.Uint64() }
func (h staticField) Double() float64        { return h.f.Value.Double() }
func (h staticField) String() string         { return h.f.Value.Str() }
func (h staticField) BoolArray() []bool      { return h.f.Value.BoolArray() }
func (h staticField) Int32Array() []int32    { return h.f.Value.Int32Array() }
func (h staticField) Uint32Array() []uint32  { return h.f.Value.Uint32Array() }
func (h staticField) Int64Array() []int64    { return h.f.Value.Int64Array() }
func (h staticField) Uint64Array() []uint64  { return h.f.Value.Uint64Array() }
func (h staticField) DoubleArray() []float64 { return h.f.Value.DoubleArray() }
func (h staticField) StringArray() []string  { return h.f.Value.StringArray() }
