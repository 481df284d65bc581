// Package stats models a point-in-time WebRTC statistics snapshot.
//
// A Report maps each RecordType present in the snapshot to a Record. A
// Record is an immutable, insertion-ordered set of named fields whose
// values carry one of fourteen ValueKinds. Typed views such as
// InboundRTPStreamStats add named accessors over the same fields.
//
// Reports are built either from an external SnapshotHandle with Construct,
// which copies every value out of the handle, or directly with Builder.
// Once built, a Report never changes and may be shared between goroutines.
package stats
