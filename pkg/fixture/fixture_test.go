package fixture

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

func TestLoadReport(t *testing.T) {
	report, err := LoadReport("testdata/connected.yaml")
	require.NoError(t, err)

	assert.Equal(t, 8, report.Len())
	assert.False(t, report.Has(stats.TypeCertificate))

	pair, ok := report.CandidatePair()
	require.True(t, ok)
	state, _ := pair.State()
	assert.Equal(t, "succeeded", state)
	prio, _ := pair.Priority()
	assert.Equal(t, uint64(9115005270282354943), prio)
	rate, _ := pair.AvailableOutgoingBitrate()
	assert.Equal(t, 2.5e6, rate)

	remote, ok := report.RemoteCandidate()
	require.True(t, ok)
	addr, _ := remote.Address()
	assert.Equal(t, "198.51.100.7", addr)

	codec, ok := report.Codec()
	require.True(t, ok)
	fmtp, _ := codec.SDPFmtpLine()
	assert.Equal(t, "minptime=10;useinbandfec=1", fmtp)

	stream, ok := report.Stream()
	require.True(t, ok)
	ids, _ := stream.TrackIDs()
	assert.Equal(t, []string{"TR1"}, ids)
}

func TestParseTwoRecordScenario(t *testing.T) {
	snap, err := Parse([]byte(`
records:
  - type: candidate-pair
    id: CP1
    timestamp: 1
    fields:
      - {name: state, kind: string, value: succeeded}
      - {name: nominated, kind: bool, value: true}
  - tag: 0
    id: CO111
    timestamp: 1
    fields:
      - {name: payloadType, kindTag: 2, value: 111}
`))
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Len())

	report, err := stats.Construct(snap)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Len())

	codec, ok := report.Get(stats.TypeCodec)
	require.True(t, ok)
	pt, ok := codec.Uint32("payloadType")
	require.True(t, ok)
	assert.Equal(t, uint32(111), pt)

	// Snapshots can be constructed repeatedly.
	again, err := stats.Construct(snap)
	require.NoError(t, err)
	assert.Equal(t, report.Types(), again.Types())
}

func TestUnknownNamesSurfaceAsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "record type",
			doc: `
records:
  - {type: media-playout, id: X}
`,
		},
		{
			name: "record tag",
			doc: `
records:
  - {tag: 21, id: X}
`,
		},
		{
			name: "value kind",
			doc: `
records:
  - type: codec
    id: C
    fields:
      - {name: clockRate, kind: float, value: 1}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			_, err = stats.Construct(snap)
			assert.True(t, errors.Is(err, stats.ErrSchemaMismatch), "%v", err)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "records: [\n"},
		{"unknown key", "records:\n  - {type: codec, id: C, colour: red}\n"},
		{"missing type", "records:\n  - {id: C}\n"},
		{"type and tag", "records:\n  - {type: codec, tag: 0, id: C}\n"},
		{"missing kind", "records:\n  - {type: codec, id: C, fields: [{name: a, value: 1}]}\n"},
		{"missing value", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: uint32}]}\n"},
		{"unnamed field", "records:\n  - {type: codec, id: C, fields: [{kind: uint32, value: 1}]}\n"},
		{"negative uint", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: uint32, value: -1}]}\n"},
		{"int32 overflow", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: int32, value: 4294967296}]}\n"},
		{"bool from string", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: bool, value: maybe}]}\n"},
		{"string from list", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: string, value: [x]}]}\n"},
		{"array from scalar", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: \"uint32[]\", value: 3}]}\n"},
		{"null uint", "records:\n  - {type: codec, id: C, fields: [{name: payloadType, kind: uint32, value: null}]}\n"},
		{"tilde uint", "records:\n  - {type: codec, id: C, fields: [{name: payloadType, kind: uint32, value: ~}]}\n"},
		{"empty uint", "records:\n  - {type: codec, id: C, fields: [{name: payloadType, kind: uint32, value: }]}\n"},
		{"tilde string", "records:\n  - {type: codec, id: C, fields: [{name: mimeType, kind: string, value: ~}]}\n"},
		{"null string", "records:\n  - {type: codec, id: C, fields: [{name: mimeType, kind: string, value: null}]}\n"},
		{"null array element", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: \"uint32[]\", value: [1, null]}]}\n"},
		{"null string element", "records:\n  - {type: codec, id: C, fields: [{name: a, kind: \"string[]\", value: [x, ~]}]}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "%v", err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	b := stats.NewBuilder()
	rec, err := stats.NewRecordBuilder(stats.TypeTrack, "TR1", 1_700_000_000_000_000).
		SetString("kind", "video").
		SetString("trackIdentifier", "123").
		SetBool("ended", false).
		SetInt32("i32", -5).
		SetUint32("frameWidth", 1280).
		SetInt64("i64", -1<<40).
		SetUint64("jitterBufferEmittedCount", 1<<63).
		SetDouble("framesPerSecond", 29.97).
		Set("flags", stats.BoolArrayValue([]bool{true, false})).
		Set("deltas", stats.DoubleArrayValue([]float64{0.5, 1})).
		SetStringArray("empty", nil).
		SetString("label", "~").
		SetString("blank", "").
		SetStringArray("rids", []string{"null", "~", ""}).
		Build()
	require.NoError(t, err)
	b.Add(rec)
	original := b.Build()

	data, err := Encode(original)
	require.NoError(t, err)

	snap, err := Parse(data)
	require.NoError(t, err, string(data))
	decoded, err := stats.Construct(snap)
	require.NoError(t, err)

	got, ok := decoded.Get(stats.TypeTrack)
	require.True(t, ok)
	assert.Equal(t, rec.ID(), got.ID())
	assert.Equal(t, rec.Timestamp(), got.Timestamp())
	assert.Equal(t, rec.Names(), got.Names())
	for _, f := range rec.Fields() {
		v, ok := got.Get(f.Name)
		require.True(t, ok, f.Name)
		assert.True(t, f.Value.Equal(v), "%s: %v != %v", f.Name, f.Value, v)
	}
}
