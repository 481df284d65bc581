package rtpstats

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pion/rtcp"
	"github.com/pion/rtp"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

// InboundRecorder tracks one received RTP stream. It is safe for
// concurrent use.
type InboundRecorder struct {
	params StreamParams

	mu sync.Mutex

	seq                 sequence
	packetsReceived     uint64
	bytesReceived       uint64
	headerBytesReceived uint64
	lastPacketAt        time.Time

	// interarrival jitter, in timestamp units
	lastArrival time.Time
	lastRTPTime uint32
	jitter      float64

	csrcs *orderedmap.OrderedMap[uint32, uint64]

	// interval state for reception reports
	expectedPrior uint64
	receivedPrior uint64

	lastSR      *rtcp.SenderReport
	lastSRAt    time.Time
	reportsSent uint64
}

// NewInboundRecorder returns a recorder for the stream p describes.
func NewInboundRecorder(p StreamParams) (*InboundRecorder, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &InboundRecorder{
		params: p,
		csrcs:  orderedmap.NewOrderedMap[uint32, uint64](),
	}, nil
}

// SSRC returns the stream's synchronization source.
func (r *InboundRecorder) SSRC() uint32 { return r.params.SSRC }

// ID returns the id of the stream's inbound-rtp record.
func (r *InboundRecorder) ID() string { return r.params.streamID("Inbound") }

// ReceiveRTP records a packet that arrived at at.
func (r *InboundRecorder) ReceiveRTP(pkt *rtp.Packet, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq.update(pkt.SequenceNumber)
	r.packetsReceived++
	r.bytesReceived += uint64(len(pkt.Payload))
	r.headerBytesReceived += uint64(pkt.Header.MarshalSize() + int(pkt.Header.PaddingSize))
	r.lastPacketAt = at

	for _, csrc := range pkt.CSRC {
		n, _ := r.csrcs.Get(csrc)
		r.csrcs.Set(csrc, n+1)
	}

	r.updateJitter(pkt.Timestamp, at)
}

// updateJitter applies the RFC 3550 estimator. Packets of one frame share
// a timestamp and only the first of them is used.
func (r *InboundRecorder) updateJitter(ts uint32, at time.Time) {
	if r.lastArrival.IsZero() {
		r.lastArrival, r.lastRTPTime = at, ts
		return
	}
	if ts == r.lastRTPTime {
		return
	}

	// Timestamp differences wrap like the timestamps themselves.
	d := at.Sub(r.lastArrival).Seconds()*float64(r.params.ClockRate) - float64(int32(ts-r.lastRTPTime))
	r.jitter += (math.Abs(d) - r.jitter) / 16
	r.lastArrival, r.lastRTPTime = at, ts
}

// ReceiveRTCP records the sender reports of this stream.
func (r *InboundRecorder) ReceiveRTCP(pkts []rtcp.Packet, at time.Time) {
	for _, p := range pkts {
		sr, ok := p.(*rtcp.SenderReport)
		if !ok || sr.SSRC != r.params.SSRC {
			continue
		}
		r.mu.Lock()
		srCopy := *sr
		r.lastSR = &srCopy
		r.lastSRAt = at
		r.reportsSent++
		r.mu.Unlock()
	}
}

// Jitter returns the current interarrival jitter.
func (r *InboundRecorder) Jitter() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return time.Duration(r.jitter / float64(r.params.ClockRate) * float64(time.Second))
}

// PacketsLost returns the cumulative number of packets lost, which is
// negative when duplicates outnumber losses.
func (r *InboundRecorder) PacketsLost() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.packetsLost()
}

func (r *InboundRecorder) packetsLost() int64 {
	return int64(r.seq.expected()) - int64(r.packetsReceived)
}

// ReceptionReport builds the report block for the interval since the
// previous call.
func (r *InboundRecorder) ReceptionReport(at time.Time) rtcp.ReceptionReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	expected := r.seq.expected()
	expectedInterval := expected - r.expectedPrior
	receivedInterval := r.packetsReceived - r.receivedPrior
	r.expectedPrior, r.receivedPrior = expected, r.packetsReceived

	var fraction uint8
	if expectedInterval > 0 && expectedInterval > receivedInterval {
		fraction = uint8(min((expectedInterval-receivedInterval)<<8/expectedInterval, 255))
	}

	rr := rtcp.ReceptionReport{
		SSRC:               r.params.SSRC,
		FractionLost:       fraction,
		TotalLost:          uint32(min(max(r.packetsLost(), 0), 0x7FFFFF)),
		LastSequenceNumber: r.seq.reportedHighest(),
		Jitter:             uint32(r.jitter),
	}
	if r.lastSR != nil {
		rr.LastSenderReport = compactNTP(r.lastSR.NTPTime)
		rr.Delay = compactDuration(at.Sub(r.lastSRAt))
	}
	return rr
}

// Records copies the recorder state into inbound-rtp, codec, csrc and, once
// a sender report has arrived, remote-outbound-rtp records.
func (r *InboundRecorder) Records(now time.Time) ([]*stats.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := now.UnixMicro()
	id := r.ID()
	codecID := r.params.codecID("Inbound")

	b := stats.NewRecordBuilder(stats.TypeInboundRTP, id, ts).
		SetUint32("ssrc", r.params.SSRC).
		SetString("kind", r.params.Kind).
		SetString("transportId", r.params.TransportID).
		SetString("codecId", codecID).
		SetUint32("packetsReceived", uint32(r.packetsReceived)).
		SetUint64("bytesReceived", r.bytesReceived).
		SetUint64("headerBytesReceived", r.headerBytesReceived).
		SetInt32("packetsLost", int32(max(min(r.packetsLost(), math.MaxInt32), math.MinInt32))).
		SetDouble("jitter", r.jitter/float64(r.params.ClockRate))
	if !r.lastPacketAt.IsZero() {
		b.SetDouble("lastPacketReceivedTimestamp", float64(r.lastPacketAt.UnixMicro())/1e3)
	}

	out := make([]*stats.Record, 0, 3+r.csrcs.Len())
	rec, err := b.Build()
	if err != nil {
		return nil, err
	}
	out = append(out, rec)

	if rec, err = codecRecord(r.params, codecID, ts); err != nil {
		return nil, err
	}
	out = append(out, rec)

	for el := r.csrcs.Front(); el != nil; el = el.Next() {
		rec, err := stats.NewRecordBuilder(stats.TypeCSRC, fmt.Sprintf("RTCContributingSource_%d_%d", r.params.SSRC, el.Key), ts).
			SetUint32("contributorSsrc", el.Key).
			SetString("inboundRtpStreamId", id).
			SetUint32("packetsContributedTo", uint32(el.Value)).
			Build()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if r.lastSR != nil {
		rec, err := stats.NewRecordBuilder(stats.TypeRemoteOutboundRTP, r.params.streamID("RemoteOutbound"), r.lastSRAt.UnixMicro()).
			SetUint32("ssrc", r.params.SSRC).
			SetString("kind", r.params.Kind).
			SetString("transportId", r.params.TransportID).
			SetString("codecId", codecID).
			SetString("localId", id).
			SetDouble("remoteTimestamp", float64(fromNTP(r.lastSR.NTPTime).UnixMicro())/1e3).
			SetUint64("reportsSent", r.reportsSent).
			SetUint32("packetsSent", r.lastSR.PacketCount).
			SetUint64("bytesSent", uint64(r.lastSR.OctetCount)).
			Build()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func codecRecord(p StreamParams, id string, ts int64) (*stats.Record, error) {
	b := stats.NewRecordBuilder(stats.TypeCodec, id, ts).
		SetUint32("payloadType", uint32(p.PayloadType)).
		SetString("transportId", p.TransportID).
		SetUint32("clockRate", p.ClockRate)
	if p.MimeType != "" {
		b.SetString("mimeType", p.MimeType)
	}
	if p.Channels != 0 {
		b.SetUint32("channels", p.Channels)
	}
	if p.SDPFmtpLine != "" {
		b.SetString("sdpFmtpLine", p.SDPFmtpLine)
	}
	return b.Build()
}
