// Package native collects statistics from a libwebrtc peer connection
// created through the shim library.
package native

import (
	"context"

	"github.com/pkg/errors"

	"github.com/thesyncim/rtcstats/internal/ffi"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

// snapshot is the part of ffi.Snapshot used here.
type snapshot interface {
	stats.SnapshotHandle
	Release()
	DebugJSON() (map[string]string, error)
}

// getStats is replaced in tests.
var getStats = func(ctx context.Context, pc uintptr) (snapshot, error) {
	return ffi.PeerConnectionGetStats(ctx, pc)
}

// Collect fetches a stats report for pc and copies it into a Report. The
// native report is released before Collect returns, on every path.
func Collect(ctx context.Context, pc uintptr, opts ...stats.Option) (*stats.Report, error) {
	snap, err := getStats(ctx, pc)
	if err != nil {
		return nil, errors.Wrap(err, "get native stats")
	}
	defer snap.Release()

	report, err := stats.Construct(snap, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "construct native stats")
	}
	return report, nil
}

// RecordJSON returns the engine's own JSON rendering of every record in a
// fresh report for pc, keyed by record id. The output is diagnostic only.
func RecordJSON(ctx context.Context, pc uintptr) (map[string]string, error) {
	snap, err := getStats(ctx, pc)
	if err != nil {
		return nil, errors.Wrap(err, "get native stats")
	}
	defer snap.Release()

	return snap.DebugJSON()
}
