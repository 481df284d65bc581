package stats

// In-memory SnapshotHandle used by the tests in this package.

type fakeSnapshot struct {
	tags    []uint32
	records []RecordHandle
	err     error
}

func (s *fakeSnapshot) List() ([]uint32, []RecordHandle, error) {
	return s.tags, s.records, s.err
}

func (s *fakeSnapshot) add(tag uint32, rec *fakeRecord) *fakeSnapshot {
	if rec.tag == nil {
		t := tag
		rec.tag = &t
	}
	s.tags = append(s.tags, tag)
	s.records = append(s.records, rec)
	return s
}

type fakeRecord struct {
	tag    *uint32
	id     string
	ts     int64
	fields []FieldHandle
}

func (r *fakeRecord) TypeTag() uint32                { return *r.tag }
func (r *fakeRecord) ID() string                     { return r.id }
func (r *fakeRecord) Timestamp() int64               { return r.ts }
func (r *fakeRecord) Fields() ([]FieldHandle, error) { return r.fields, nil }

func (r *fakeRecord) with(name string, kind ValueKind, v any) *fakeRecord {
	r.fields = append(r.fields, &fakeField{name: name, tag: uint32(kind), v: v})
	return r
}

type fakeField struct {
	name string
	tag  uint32
	v    any
}

func (f *fakeField) Name() string           { return f.name }
func (f *fakeField) KindTag() uint32        { return f.tag }
func (f *fakeField) Bool() bool             { return f.v.(bool) }
func (f *fakeField) Int32() int32           { return f.v.(int32) }
func (f *fakeField) Uint32() uint32         { return f.v.(uint32) }
func (f *fakeField) Int64() int64           { return f.v.(int64) }
func (f *fakeField) Uint64() uint64         { return f.v.(uint64) }
func (f *fakeField) Double() float64        { return f.v.(float64) }
func (f *fakeField) String() string         { return f.v.(string) }
func (f *fakeField) BoolArray() []bool      { return f.v.([]bool) }
func (f *fakeField) Int32Array() []int32    { return f.v.([]int32) }
func (f *fakeField) Uint32Array() []uint32  { return f.v.([]uint32) }
func (f *fakeField) Int64Array() []int64    { return f.v.([]int64) }
func (f *fakeField) Uint64Array() []uint64  { return f.v.([]uint64) }
func (f *fakeField) DoubleArray() []float64 { return f.v.([]float64) }
func (f *fakeField) StringArray() []string  { return f.v.([]string) }

// twoRecordSnapshot is a connected candidate pair plus an Opus codec.
func twoRecordSnapshot() *fakeSnapshot {
	s := &fakeSnapshot{}
	s.add(uint32(TypeCandidatePair), (&fakeRecord{id: "CP1", ts: 1_700_000_000_000_000}).
		with("state", KindString, "succeeded").
		with("nominated", KindBool, true).
		with("priority", KindUint64, uint64(1234)))
	s.add(uint32(TypeCodec), (&fakeRecord{id: "CO111", ts: 1_700_000_000_000_000}).
		with("payloadType", KindUint32, uint32(111)).
		with("mimeType", KindString, "audio/opus"))
	return s
}
