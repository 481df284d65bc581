package rtpstats

import (
	"sync"
	"time"

	"github.com/pion/rtcp"
	"github.com/pion/rtp"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

// OutboundRecorder tracks one sent RTP stream and the reception reports
// the remote side returns for it. It is safe for concurrent use.
type OutboundRecorder struct {
	params StreamParams

	mu sync.Mutex

	packetsSent     uint64
	bytesSent       uint64
	headerBytesSent uint64
	lastRTPTime     uint32
	lastSendAt      time.Time

	// remote-inbound state
	lastRR                    *rtcp.ReceptionReport
	lastRRAt                  time.Time
	reportsReceived           uint64
	roundTripTime             time.Duration
	totalRoundTripTime        time.Duration
	roundTripTimeMeasurements uint64
}

// NewOutboundRecorder returns a recorder for the stream p describes.
func NewOutboundRecorder(p StreamParams) (*OutboundRecorder, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &OutboundRecorder{params: p}, nil
}

// SSRC returns the stream's synchronization source.
func (r *OutboundRecorder) SSRC() uint32 { return r.params.SSRC }

// ID returns the id of the stream's outbound-rtp record.
func (r *OutboundRecorder) ID() string { return r.params.streamID("Outbound") }

// SendRTP records a packet sent at at.
func (r *OutboundRecorder) SendRTP(pkt *rtp.Packet, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.packetsSent++
	r.bytesSent += uint64(len(pkt.Payload))
	r.headerBytesSent += uint64(pkt.Header.MarshalSize() + int(pkt.Header.PaddingSize))
	r.lastRTPTime = pkt.Timestamp
	r.lastSendAt = at
}

// SenderReport builds a sender report for time at. The RTP time is
// extrapolated from the last packet sent.
func (r *OutboundRecorder) SenderReport(at time.Time) *rtcp.SenderReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	rtpTime := r.lastRTPTime
	if !r.lastSendAt.IsZero() {
		rtpTime += uint32(at.Sub(r.lastSendAt).Seconds() * float64(r.params.ClockRate))
	}
	return &rtcp.SenderReport{
		SSRC:        r.params.SSRC,
		NTPTime:     toNTP(at),
		RTPTime:     rtpTime,
		PacketCount: uint32(r.packetsSent),
		OctetCount:  uint32(r.bytesSent),
	}
}

// ReceiveRTCP records report blocks about this stream carried by receiver
// or sender reports.
func (r *OutboundRecorder) ReceiveRTCP(pkts []rtcp.Packet, at time.Time) {
	for _, p := range pkts {
		var reports []rtcp.ReceptionReport
		switch p := p.(type) {
		case *rtcp.ReceiverReport:
			reports = p.Reports
		case *rtcp.SenderReport:
			reports = p.Reports
		}
		for _, rr := range reports {
			if rr.SSRC == r.params.SSRC {
				r.receptionReport(rr, at)
			}
		}
	}
}

func (r *OutboundRecorder) receptionReport(rr rtcp.ReceptionReport, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastRR = &rr
	r.lastRRAt = at
	r.reportsReceived++
	if rtt, ok := roundTripTime(rr, at); ok {
		r.roundTripTime = rtt
		r.totalRoundTripTime += rtt
		r.roundTripTimeMeasurements++
	}
}

// RoundTripTime returns the latest measurement, if any.
func (r *OutboundRecorder) RoundTripTime() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.roundTripTime, r.roundTripTimeMeasurements > 0
}

// Records copies the recorder state into outbound-rtp, codec and, once a
// reception report has arrived, remote-inbound-rtp records.
func (r *OutboundRecorder) Records(now time.Time) ([]*stats.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := now.UnixMicro()
	id := r.ID()
	codecID := r.params.codecID("Outbound")

	out := make([]*stats.Record, 0, 3)
	rec, err := stats.NewRecordBuilder(stats.TypeOutboundRTP, id, ts).
		SetUint32("ssrc", r.params.SSRC).
		SetString("kind", r.params.Kind).
		SetString("transportId", r.params.TransportID).
		SetString("codecId", codecID).
		SetUint32("packetsSent", uint32(r.packetsSent)).
		SetUint64("bytesSent", r.bytesSent).
		SetUint64("headerBytesSent", r.headerBytesSent).
		Build()
	if err != nil {
		return nil, err
	}
	out = append(out, rec)

	if rec, err = codecRecord(r.params, codecID, ts); err != nil {
		return nil, err
	}
	out = append(out, rec)

	if r.lastRR != nil {
		b := stats.NewRecordBuilder(stats.TypeRemoteInboundRTP, r.params.streamID("RemoteInbound"), r.lastRRAt.UnixMicro()).
			SetUint32("ssrc", r.params.SSRC).
			SetString("kind", r.params.Kind).
			SetString("transportId", r.params.TransportID).
			SetString("codecId", codecID).
			SetString("localId", id).
			SetInt32("packetsLost", totalLost(r.lastRR.TotalLost)).
			SetDouble("fractionLost", float64(r.lastRR.FractionLost)/256).
			SetDouble("jitter", float64(r.lastRR.Jitter)/float64(r.params.ClockRate)).
			SetUint64("reportsReceived", r.reportsReceived).
			SetInt32("roundTripTimeMeasurements", int32(min(r.roundTripTimeMeasurements, 1<<31-1)))
		if r.roundTripTimeMeasurements > 0 {
			b.SetDouble("roundTripTime", r.roundTripTime.Seconds()).
				SetDouble("totalRoundTripTime", r.totalRoundTripTime.Seconds())
		}
		if rec, err = b.Build(); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// totalLost sign-extends the 24-bit cumulative loss of a report block.
func totalLost(v uint32) int32 {
	return int32(v<<8) >> 8
}
