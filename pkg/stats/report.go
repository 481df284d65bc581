package stats

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Report is an immutable snapshot of statistics records keyed by type.
// A Report is safe for concurrent reads and holds no reference to the
// engine that produced it.
type Report struct {
	records []*Record
	byType  *orderedmap.OrderedMap[RecordType, *Record]
	byID    map[string]*Record
}

// Get returns the record for t. Snapshots routinely omit types the engine
// has not produced yet, e.g. certificate before the DTLS handshake.
func (r *Report) Get(t RecordType) (*Record, bool) {
	return r.byType.Get(t)
}

// Has reports whether the snapshot contains a record of type t.
func (r *Report) Has(t RecordType) bool {
	_, ok := r.byType.Get(t)
	return ok
}

// Len returns the number of distinct record types present.
func (r *Report) Len() int {
	return r.byType.Len()
}

// Types returns the present record types in first-seen order.
func (r *Report) Types() []RecordType {
	out := make([]RecordType, 0, r.byType.Len())
	for el := r.byType.Front(); el != nil; el = el.Next() {
		out = append(out, el.Key)
	}
	return out
}

// Range calls fn for every type entry in first-seen order until fn
// returns false.
func (r *Report) Range(fn func(t RecordType, rec *Record) bool) {
	for el := r.byType.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Records returns every record of the snapshot in snapshot order,
// including records shadowed in the type index by a later record of the
// same type.
func (r *Report) Records() []*Record {
	out := make([]*Record, len(r.records))
	copy(out, r.records)
	return out
}

// RecordsOf returns all records of type t in snapshot order.
func (r *Report) RecordsOf(t RecordType) []*Record {
	var out []*Record
	for _, rec := range r.records {
		if rec.typ == t {
			out = append(out, rec)
		}
	}
	return out
}

// ByID returns the record with the given identifier.
func (r *Report) ByID(id string) (*Record, bool) {
	rec, ok := r.byID[id]
	return rec, ok
}
