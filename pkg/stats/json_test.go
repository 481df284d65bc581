package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToJSON(t *testing.T) {
	rec := mustRecord(t, NewRecordBuilder(TypeCodec, "CO111", 1_500_000).
		SetUint32("payloadType", 111).
		SetString("mimeType", "audio/opus").
		SetStringArray("tags", []string{"x"}))

	got, err := rec.ToJSON()
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":"CO111","type":"codec","timestamp":1500,"payloadType":111,"mimeType":"audio/opus","tags":["x"]}`,
		got)
}

func TestRecordJSONNonFinite(t *testing.T) {
	rec := mustRecord(t, NewRecordBuilder(TypeTrack, "T", 0).
		SetDouble("audioLevel", math.NaN()).
		Set("samples", DoubleArrayValue([]float64{1, math.Inf(1)})))

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "NaN", out["audioLevel"])
	assert.Equal(t, []any{1.0, "+Inf"}, out["samples"])
}

func TestReportJSONKeyedByID(t *testing.T) {
	report, err := Construct(twoRecordSnapshot())
	require.NoError(t, err)

	b, err := json.Marshal(report)
	require.NoError(t, err)

	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "candidate-pair", out["CP1"]["type"])
	assert.Equal(t, "succeeded", out["CP1"]["state"])
	assert.Equal(t, 111.0, out["CO111"]["payloadType"])
}

func TestRecordJSONHeaderNamesWin(t *testing.T) {
	rec := mustRecord(t, NewRecordBuilder(TypeDataChannel, "D1", 2_000).
		SetString("id", "shadow").
		SetString("type", "shadow").
		SetDouble("timestamp", 7).
		SetString("label", "chat"))

	got, err := rec.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"id":"D1","type":"data-channel","timestamp":2,"label":"chat"}`, got)

	// the fields themselves are untouched
	v, ok := rec.String("id")
	require.True(t, ok)
	assert.Equal(t, "shadow", v)
}

func TestReportJSONRepeatedIDKeepsFirst(t *testing.T) {
	b := NewBuilder()
	b.Add(mustRecord(t, NewRecordBuilder(TypeCodec, "C", 0).SetUint32("clockRate", 48000)))
	b.Add(mustRecord(t, NewRecordBuilder(TypeTrack, "T", 0).SetBool("ended", false)))
	b.Add(mustRecord(t, NewRecordBuilder(TypeCodec, "C", 0).SetUint32("clockRate", 8000)))

	got, err := json.Marshal(b.Build())
	require.NoError(t, err)
	assert.Equal(t,
		`{"C":{"id":"C","type":"codec","timestamp":0,"clockRate":48000},"T":{"id":"T","type":"track","timestamp":0,"ended":false}}`,
		string(got))
}
