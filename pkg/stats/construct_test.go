package stats

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConstructCandidatePairAndCodec(t *testing.T) {
	report, err := Construct(twoRecordSnapshot())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Len())
	assert.Equal(t, []RecordType{TypeCandidatePair, TypeCodec}, report.Types())
	assert.False(t, report.Has(TypeCertificate))

	pair, ok := report.Get(TypeCandidatePair)
	require.True(t, ok)
	state, ok := pair.String("state")
	require.True(t, ok)
	assert.Equal(t, "succeeded", state)
	nominated, ok := pair.Bool("nominated")
	require.True(t, ok)
	assert.True(t, nominated)

	codec, ok := report.Get(TypeCodec)
	require.True(t, ok)
	pt, ok := codec.Uint32("payloadType")
	require.True(t, ok)
	assert.Equal(t, uint32(111), pt)

	view, ok := report.CandidatePair()
	require.True(t, ok)
	prio, ok := view.Priority()
	require.True(t, ok)
	assert.Equal(t, uint64(1234), prio)
}

func TestConstructRecordTypesMatchKeys(t *testing.T) {
	report, err := Construct(twoRecordSnapshot())
	require.NoError(t, err)

	report.Range(func(typ RecordType, rec *Record) bool {
		assert.Equal(t, typ, rec.Type())
		return true
	})
	for _, typ := range report.Types() {
		rec, ok := report.Get(typ)
		require.True(t, ok)
		assert.Equal(t, typ, rec.Type())
	}
}

func TestConstructUnknownRecordType(t *testing.T) {
	snap := twoRecordSnapshot()
	snap.add(42, &fakeRecord{id: "X1"})

	report, err := Construct(snap)
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.Contains(t, err.Error(), "X1")
}

func TestConstructSkipUnknownRecordTypeLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	snap := twoRecordSnapshot()
	snap.add(42, &fakeRecord{id: "X1"})

	report, err := Construct(snap, WithSkipUnknownTypes(), WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Len())
	assert.Len(t, report.Records(), 2)

	entries := logs.FilterMessage("skipping record with unknown type").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "X1", entries[0].ContextMap()["id"])
	assert.EqualValues(t, 42, entries[0].ContextMap()["tag"])
}

func TestConstructSchemaErrors(t *testing.T) {
	mismatchedTag := uint32(TypeCodec)

	tests := []struct {
		name string
		snap *fakeSnapshot
	}{
		{
			name: "misaligned lists",
			snap: &fakeSnapshot{
				tags:    []uint32{uint32(TypeCodec), uint32(TypeTrack)},
				records: []RecordHandle{&fakeRecord{tag: &mismatchedTag, id: "C"}},
			},
		},
		{
			name: "unknown value kind",
			snap: (&fakeSnapshot{}).add(uint32(TypeCodec),
				(&fakeRecord{id: "C"}).with("clockRate", ValueKind(99), uint32(48000))),
		},
		{
			name: "duplicate field",
			snap: (&fakeSnapshot{}).add(uint32(TypeCodec),
				(&fakeRecord{id: "C"}).
					with("clockRate", KindUint32, uint32(48000)).
					with("clockRate", KindUint32, uint32(90000))),
		},
		{
			name: "record disagrees with list",
			snap: (&fakeSnapshot{}).add(uint32(TypeTrack),
				&fakeRecord{tag: &mismatchedTag, id: "T"}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Construct(tt.snap)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchemaMismatch), "%v", err)
		})
	}

	t.Run("unknown kind is fatal even when skipping types", func(t *testing.T) {
		snap := (&fakeSnapshot{}).add(uint32(TypeCodec),
			(&fakeRecord{id: "C"}).with("clockRate", ValueKind(14), uint32(1)))
		_, err := Construct(snap, WithSkipUnknownTypes())
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
}

func TestConstructListError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Construct(&fakeSnapshot{err: boom})
	assert.True(t, errors.Is(err, boom))
}

func TestConstructAllKinds(t *testing.T) {
	snap := (&fakeSnapshot{}).add(uint32(TypeTrack), (&fakeRecord{id: "T1", ts: 5}).
		with("b", KindBool, true).
		with("i32", KindInt32, int32(-7)).
		with("u32", KindUint32, uint32(7)).
		with("i64", KindInt64, int64(-1<<40)).
		with("u64", KindUint64, uint64(1<<40)).
		with("d", KindDouble, 0.25).
		with("s", KindString, "x").
		with("ab", KindBoolArray, []bool{true, false}).
		with("ai32", KindInt32Array, []int32{-1, 2}).
		with("au32", KindUint32Array, []uint32{1, 2}).
		with("ai64", KindInt64Array, []int64{-3}).
		with("au64", KindUint64Array, []uint64{3}).
		with("ad", KindDoubleArray, []float64{0.5, 1.5}).
		with("as", KindStringArray, []string{"a", "b"}))

	report, err := Construct(snap)
	require.NoError(t, err)
	rec, ok := report.Get(TypeTrack)
	require.True(t, ok)

	want := map[string]any{
		"b":    true,
		"i32":  int32(-7),
		"u32":  uint32(7),
		"i64":  int64(-1 << 40),
		"u64":  uint64(1 << 40),
		"d":    0.25,
		"s":    "x",
		"ab":   []bool{true, false},
		"ai32": []int32{-1, 2},
		"au32": []uint32{1, 2},
		"ai64": []int64{-3},
		"au64": []uint64{3},
		"ad":   []float64{0.5, 1.5},
		"as":   []string{"a", "b"},
	}
	require.Equal(t, len(want), rec.Len())
	for name, w := range want {
		v, ok := rec.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, w, v.Interface(), name)
	}
	assert.Equal(t, []string{"b", "i32", "u32", "i64", "u64", "d", "s",
		"ab", "ai32", "au32", "ai64", "au64", "ad", "as"}, rec.Names())
}

func TestConstructCopiesArrays(t *testing.T) {
	ids := []string{"track-a", "track-b"}
	snap := (&fakeSnapshot{}).add(uint32(TypeStream),
		(&fakeRecord{id: "S1"}).with("trackIds", KindStringArray, ids))

	report, err := Construct(snap)
	require.NoError(t, err)

	ids[0] = "mutated"

	view, ok := report.Stream()
	require.True(t, ok)
	got, ok := view.TrackIDs()
	require.True(t, ok)
	assert.Equal(t, []string{"track-a", "track-b"}, got)
}

func TestConstructDuplicateTypesKeepAllRecords(t *testing.T) {
	snap := &fakeSnapshot{}
	snap.add(uint32(TypeCodec), (&fakeRecord{id: "CO96"}).with("payloadType", KindUint32, uint32(96)))
	snap.add(uint32(TypeTrack), &fakeRecord{id: "T1"})
	snap.add(uint32(TypeCodec), (&fakeRecord{id: "CO111"}).with("payloadType", KindUint32, uint32(111)))

	report, err := Construct(snap)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Len())
	assert.Equal(t, []RecordType{TypeCodec, TypeTrack}, report.Types())

	codec, ok := report.Get(TypeCodec)
	require.True(t, ok)
	assert.Equal(t, "CO111", codec.ID())

	codecs := report.RecordsOf(TypeCodec)
	require.Len(t, codecs, 2)
	assert.Equal(t, "CO96", codecs[0].ID())

	first, ok := report.ByID("CO96")
	require.True(t, ok)
	assert.Equal(t, TypeCodec, first.Type())
	assert.Len(t, report.Records(), 3)
}

// releasedField behaves like a native field whose snapshot was freed while
// it was being copied.
type releasedField struct{ fakeField }

func (f *releasedField) Uint32() uint32 { panic(errors.Wrap(ErrReleased, "read field")) }

func TestConstructReleasedDuringCopy(t *testing.T) {
	rec := &fakeRecord{id: "C"}
	rec.fields = append(rec.fields, &releasedField{fakeField{name: "clockRate", tag: uint32(KindUint32)}})

	report, err := Construct((&fakeSnapshot{}).add(uint32(TypeCodec), rec))
	assert.Nil(t, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReleased), "%v", err)

	// Other panics are not swallowed.
	wrongType := (&fakeSnapshot{}).add(uint32(TypeCodec),
		(&fakeRecord{id: "C"}).with("clockRate", KindUint32, "48000"))
	assert.Panics(t, func() { _, _ = Construct(wrongType) })
}
