package rtpstats

import (
	"testing"
	"time"

	"github.com/pion/rtcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

func vp8Params() StreamParams {
	return StreamParams{
		SSRC:        5678,
		Kind:        "video",
		PayloadType: 96,
		MimeType:    "video/VP8",
		ClockRate:   90000,
		TransportID: "T01",
	}
}

func newOutbound(t *testing.T) *OutboundRecorder {
	t.Helper()
	r, err := NewOutboundRecorder(vp8Params())
	require.NoError(t, err)
	return r
}

func TestOutboundCounts(t *testing.T) {
	r := newOutbound(t)
	r.SendRTP(packet(5678, 1, 1000, 1200), t0)
	r.SendRTP(packet(5678, 2, 1000, 800), t0)

	recs, err := r.Records(t0)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	out, ok := stats.OutboundRTPStreamStatsOf(recs[0])
	require.True(t, ok)
	assert.Equal(t, "RTCOutboundRTPVideoStream_5678", out.ID())
	sent, _ := out.PacketsSent()
	assert.Equal(t, uint32(2), sent)
	bytes, _ := out.BytesSent()
	assert.Equal(t, uint64(2000), bytes)
	header, _ := out.HeaderBytesSent()
	assert.Equal(t, uint64(24), header)
	kind, _ := out.Kind()
	assert.Equal(t, "video", kind)

	codec, ok := stats.CodecStatsOf(recs[1])
	require.True(t, ok)
	assert.Equal(t, "RTCCodec_T01_Outbound_96", codec.ID())
	assert.False(t, codec.Has("channels"))
}

func TestOutboundSenderReport(t *testing.T) {
	r := newOutbound(t)
	r.SendRTP(packet(5678, 1, 1000, 100), t0)

	sr := r.SenderReport(t0.Add(500 * time.Millisecond))
	assert.Equal(t, uint32(5678), sr.SSRC)
	assert.Equal(t, toNTP(t0.Add(500*time.Millisecond)), sr.NTPTime)
	assert.Equal(t, uint32(1000+45000), sr.RTPTime)
	assert.Equal(t, uint32(1), sr.PacketCount)
	assert.Equal(t, uint32(100), sr.OctetCount)
}

func TestOutboundRoundTripTime(t *testing.T) {
	r := newOutbound(t)
	sr := r.SenderReport(t0)

	_, ok := r.RoundTripTime()
	assert.False(t, ok)

	// The remote held the report for 50ms and its reply arrived 80ms after
	// the report was sent.
	r.ReceiveRTCP([]rtcp.Packet{&rtcp.ReceiverReport{
		SSRC: 1,
		Reports: []rtcp.ReceptionReport{
			{SSRC: 9999, LastSenderReport: 1},
			{
				SSRC:             5678,
				FractionLost:     64,
				TotalLost:        3,
				Jitter:           900,
				LastSenderReport: compactNTP(sr.NTPTime),
				Delay:            compactDuration(50 * time.Millisecond),
			},
		},
	}}, t0.Add(80*time.Millisecond))

	rtt, ok := r.RoundTripTime()
	require.True(t, ok)
	assert.InDelta(t, 0.030, rtt.Seconds(), 1e-4)

	recs, err := r.Records(t0.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	ri, ok := stats.RemoteInboundRTPStreamStatsOf(recs[2])
	require.True(t, ok)
	assert.Equal(t, "RTCRemoteInboundRTPVideoStream_5678", ri.ID())
	assert.Equal(t, t0.Add(80*time.Millisecond).UnixMicro(), ri.Timestamp())
	local, _ := ri.LocalID()
	assert.Equal(t, r.ID(), local)
	lost, _ := ri.PacketsLost()
	assert.Equal(t, int32(3), lost)
	fraction, _ := ri.FractionLost()
	assert.Equal(t, 0.25, fraction)
	jitter, _ := ri.Jitter()
	assert.InDelta(t, 0.01, jitter, 1e-9)
	got, ok := ri.RoundTripTime()
	require.True(t, ok)
	assert.InDelta(t, 0.030, got, 1e-4)
	total, _ := ri.TotalRoundTripTime()
	assert.InDelta(t, 0.030, total, 1e-4)
	n, _ := ri.RoundTripTimeMeasurements()
	assert.Equal(t, int32(1), n)
	reports, ok := ri.Uint64("reportsReceived")
	require.True(t, ok)
	assert.Equal(t, uint64(1), reports)
}

func TestOutboundReportWithoutLastSenderReport(t *testing.T) {
	r := newOutbound(t)
	r.ReceiveRTCP([]rtcp.Packet{&rtcp.SenderReport{
		SSRC:    1,
		Reports: []rtcp.ReceptionReport{{SSRC: 5678, TotalLost: 0xFFFFFF}},
	}}, t0)

	_, ok := r.RoundTripTime()
	assert.False(t, ok)

	recs, err := r.Records(t0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	ri, _ := stats.RemoteInboundRTPStreamStatsOf(recs[2])
	assert.False(t, ri.Has("roundTripTime"))
	n, _ := ri.RoundTripTimeMeasurements()
	assert.Zero(t, n)
	lost, _ := ri.PacketsLost()
	assert.Equal(t, int32(-1), lost)
}

func TestTotalLost(t *testing.T) {
	assert.Equal(t, int32(0), totalLost(0))
	assert.Equal(t, int32(5), totalLost(5))
	assert.Equal(t, int32(0x7FFFFF), totalLost(0x7FFFFF))
	assert.Equal(t, int32(-1), totalLost(0xFFFFFF))
	assert.Equal(t, int32(-0x800000), totalLost(0x800000))
}
