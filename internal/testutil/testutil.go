// Package testutil provides shared test helpers.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thesyncim/rtcstats/internal/ffi"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

// RequireShim skips the test when the shim library cannot be loaded.
func RequireShim(tb testing.TB) {
	tb.Helper()
	if err := ffi.LoadLibrary(); err != nil {
		tb.Skipf("shim library not available: %v", err)
	}
}

// MustRecord builds b, failing the test on error.
func MustRecord(tb testing.TB, b *stats.RecordBuilder) *stats.Record {
	tb.Helper()
	rec, err := b.Build()
	require.NoError(tb, err)
	return rec
}

// Report builds a report from records built by the given builders, in
// order.
func Report(tb testing.TB, builders ...*stats.RecordBuilder) *stats.Report {
	tb.Helper()
	b := stats.NewBuilder()
	for _, rb := range builders {
		b.Add(MustRecord(tb, rb))
	}
	return b.Build()
}
