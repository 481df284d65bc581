package fixture

import (
	"github.com/thesyncim/rtcstats/pkg/stats"
)

// Snapshot is a decoded fixture. It implements stats.SnapshotHandle and
// may be constructed any number of times.
type Snapshot struct {
	tags    []uint32
	records []*record
}

// Len returns the number of records in the fixture, including any with
// unknown types.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// List implements stats.SnapshotHandle.
func (s *Snapshot) List() ([]uint32, []stats.RecordHandle, error) {
	handles := make([]stats.RecordHandle, len(s.records))
	for i, r := range s.records {
		handles[i] = r
	}
	return s.tags, handles, nil
}

type record struct {
	tag    uint32
	id     string
	ts     int64
	fields []*field
}

func (r *record) TypeTag() uint32  { return r.tag }
func (r *record) ID() string       { return r.id }
func (r *record) Timestamp() int64 { return r.ts }

func (r *record) Fields() ([]stats.FieldHandle, error) {
	out := make([]stats.FieldHandle, len(r.fields))
	for i, f := range r.fields {
		out[i] = f
	}
	return out, nil
}

// field holds a value already checked against kind, so the getter that
// matches KindTag never fails.
type field struct {
	name string
	kind uint32
	v    any
}

func (f *field) Name() string    { return f.name }
func (f *field) KindTag() uint32 { return f.kind }

func (f *field) Bool() bool             { return f.v.(bool) }
func (f *field) Int32() int32           { return f.v.(int32) }
func (f *field) Uint32() uint32         { return f.v.(uint32) }
func (f *field) Int64() int64           { return f.v.(int64) }
func (f *field) Uint64() uint64         { return f.v.(uint64) }
func (f *field) Double() float64        { return f.v.(float64) }
func (f *field) String() string         { return f.v.(string) }
func (f *field) BoolArray() []bool      { return f.v.([]bool) }
func (f *field) Int32Array() []int32    { return f.v.([]int32) }
func (f *field) Uint32Array() []uint32  { return f.v.([]uint32) }
func (f *field) Int64Array() []int64    { return f.v.([]int64) }
func (f *field) Uint64Array() []uint64  { return f.v.([]uint64) }
func (f *field) DoubleArray() []float64 { return f.v.([]float64) }
func (f *field) StringArray() []string  { return f.v.([]string) }
