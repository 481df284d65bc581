package promstats

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/thesyncim/rtcstats/internal/testutil"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

func testReport(t *testing.T) *stats.Report {
	t.Helper()
	return testutil.Report(t,
		stats.NewRecordBuilder(stats.TypeCodec, "CO111", 1).
			SetUint32("payloadType", 111).
			SetUint32("clockRate", 48000).
			SetString("mimeType", "audio/opus"),
		stats.NewRecordBuilder(stats.TypeCandidatePair, "CP1", 1).
			SetBool("nominated", true).
			SetDouble("currentRoundTripTime", 0.012).
			SetUint64("bytesSent", 1024).
			SetString("state", "succeeded"),
		stats.NewRecordBuilder(stats.TypeInboundRTP, "IT1", 1).
			SetInt32("packetsLost", -2).
			SetDouble("jitter", 0.004).
			SetStringArray("rids", []string{"h", "l"}),
		// repeated id, ignored
		stats.NewRecordBuilder(stats.TypeCodec, "CO111", 2).
			SetUint32("clockRate", 8000),
	)
}

func TestCollector(t *testing.T) {
	c := New(Static(testReport(t)))

	expected := `
# HELP rtcstats_candidate_pair_current_round_trip_time candidate-pair.currentRoundTripTime
# TYPE rtcstats_candidate_pair_current_round_trip_time gauge
rtcstats_candidate_pair_current_round_trip_time{id="CP1"} 0.012
# HELP rtcstats_candidate_pair_nominated candidate-pair.nominated
# TYPE rtcstats_candidate_pair_nominated gauge
rtcstats_candidate_pair_nominated{id="CP1"} 1
# HELP rtcstats_codec_clock_rate codec.clockRate
# TYPE rtcstats_codec_clock_rate gauge
rtcstats_codec_clock_rate{id="CO111"} 48000
# HELP rtcstats_inbound_rtp_packets_lost inbound-rtp.packetsLost
# TYPE rtcstats_inbound_rtp_packets_lost gauge
rtcstats_inbound_rtp_packets_lost{id="IT1"} -2
# HELP rtcstats_records Number of records in the snapshot by type.
# TYPE rtcstats_records gauge
rtcstats_records{type="candidate-pair"} 1
rtcstats_records{type="codec"} 2
rtcstats_records{type="inbound-rtp"} 1
`
	err := promtest.CollectAndCompare(c, strings.NewReader(expected),
		"rtcstats_candidate_pair_current_round_trip_time",
		"rtcstats_candidate_pair_nominated",
		"rtcstats_codec_clock_rate",
		"rtcstats_inbound_rtp_packets_lost",
		"rtcstats_records",
	)
	assert.NoError(t, err)

	// 3 record counts + 2 codec + 3 pair + 2 inbound; strings and arrays skipped
	assert.Equal(t, 10, promtest.CollectAndCount(c))
	assert.Zero(t, promtest.CollectAndCount(c, "rtcstats_codec_mime_type"))
	assert.Zero(t, promtest.CollectAndCount(c, "rtcstats_inbound_rtp_rids"))
}

func TestCollectorOptions(t *testing.T) {
	c := New(Static(testReport(t)),
		WithNamespace("webrtc"),
		WithConstLabels(prometheus.Labels{"peer": "a"}))

	expected := `
# HELP webrtc_codec_payload_type codec.payloadType
# TYPE webrtc_codec_payload_type gauge
webrtc_codec_payload_type{id="CO111",peer="a"} 111
`
	assert.NoError(t, promtest.CollectAndCompare(c, strings.NewReader(expected), "webrtc_codec_payload_type"))
}

func TestCollectorSnapshotError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := New(func(context.Context) (*stats.Report, error) {
		return nil, errors.New("peer connection closed")
	}, WithLogger(zap.New(core)))

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(c))
	_, err := reg.Gather()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "peer connection closed")

	require.Equal(t, 1, logs.FilterMessage("stats snapshot failed").Len())
}

func TestCollectorTimeout(t *testing.T) {
	var deadline bool
	r := testReport(t)
	c := New(func(ctx context.Context) (*stats.Report, error) {
		_, deadline = ctx.Deadline()
		return r, nil
	})
	promtest.CollectAndCount(c)
	assert.True(t, deadline)

	var expired error
	c = New(func(ctx context.Context) (*stats.Report, error) {
		expired = ctx.Err()
		return r, nil
	}, WithTimeout(0))
	assert.Equal(t, defaultTimeout, c.timeout)
	assert.Equal(t, 10, promtest.CollectAndCount(c))
	assert.NoError(t, expired)
}

func TestMetricName(t *testing.T) {
	tests := []struct {
		typ   stats.RecordType
		field string
		want  string
	}{
		{stats.TypeInboundRTP, "packetsLost", "rtcstats_inbound_rtp_packets_lost"},
		{stats.TypeRemoteInboundRTP, "roundTripTimeMeasurements", "rtcstats_remote_inbound_rtp_round_trip_time_measurements"},
		{stats.TypeCSRC, "contributorSsrc", "rtcstats_csrc_contributor_ssrc"},
		{stats.TypeTransport, "dtlsState", "rtcstats_transport_dtls_state"},
		{stats.TypeOutboundRTP, "qpSum", "rtcstats_outbound_rtp_qp_sum"},
		{stats.TypePeerConnection, "dataChannelsOpened", "rtcstats_peer_connection_data_channels_opened"},
		{stats.TypeSender, "ID", "rtcstats_sender_id"},
		{stats.TypeCodec, "HTTPPort", "rtcstats_codec_http_port"},
		{stats.TypeCodec, "frames2Decode", "rtcstats_codec_frames2_decode"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, MetricName("rtcstats", tt.typ, tt.field))
		})
	}
}
