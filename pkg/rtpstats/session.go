package rtpstats

import (
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pion/rtcp"
	"github.com/pion/rtp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

const defaultTransportID = "RTCTransport_0_1"

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source for packet arrival and record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTransportID sets the id of the session's transport record.
func WithTransportID(id string) Option {
	return func(s *Session) {
		s.transportID = id
	}
}

// Session groups the recorders of one transport and builds reports from
// them. It is safe for concurrent use.
type Session struct {
	transportID string
	logger      *zap.Logger
	now         func() time.Time

	mu              sync.Mutex
	inbound         *orderedmap.OrderedMap[uint32, *InboundRecorder]
	outbound        *orderedmap.OrderedMap[uint32, *OutboundRecorder]
	packetsSent     uint64
	packetsReceived uint64
	bytesSent       uint64
	bytesReceived   uint64
}

// NewSession returns a session without streams.
func NewSession(opts ...Option) *Session {
	s := &Session{
		transportID: defaultTransportID,
		logger:      zap.NewNop(),
		now:         time.Now,
		inbound:     orderedmap.NewOrderedMap[uint32, *InboundRecorder](),
		outbound:    orderedmap.NewOrderedMap[uint32, *OutboundRecorder](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TransportID returns the id of the session's transport record.
func (s *Session) TransportID() string { return s.transportID }

// AddInbound registers a received stream. An empty TransportID in p is
// set to the session's.
func (s *Session) AddInbound(p StreamParams) (*InboundRecorder, error) {
	if p.TransportID == "" {
		p.TransportID = s.transportID
	}
	r, err := NewInboundRecorder(p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.inbound.Get(p.SSRC); dup {
		return nil, errors.Wrapf(ErrDuplicateSSRC, "inbound %d", p.SSRC)
	}
	s.inbound.Set(p.SSRC, r)
	s.logger.Debug("added inbound stream", zap.Uint32("ssrc", p.SSRC), zap.String("kind", p.Kind))
	return r, nil
}

// AddOutbound registers a sent stream. An empty TransportID in p is set to
// the session's.
func (s *Session) AddOutbound(p StreamParams) (*OutboundRecorder, error) {
	if p.TransportID == "" {
		p.TransportID = s.transportID
	}
	r, err := NewOutboundRecorder(p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.outbound.Get(p.SSRC); dup {
		return nil, errors.Wrapf(ErrDuplicateSSRC, "outbound %d", p.SSRC)
	}
	s.outbound.Set(p.SSRC, r)
	s.logger.Debug("added outbound stream", zap.Uint32("ssrc", p.SSRC), zap.String("kind", p.Kind))
	return r, nil
}

// Inbound returns the recorder for a received SSRC.
func (s *Session) Inbound(ssrc uint32) (*InboundRecorder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inbound.Get(ssrc)
}

// Outbound returns the recorder for a sent SSRC.
func (s *Session) Outbound(ssrc uint32) (*OutboundRecorder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outbound.Get(ssrc)
}

// ReadRTP records a received RTP packet.
func (s *Session) ReadRTP(buf []byte) error {
	pkt := &rtp.Packet{}
	if err := pkt.Unmarshal(buf); err != nil {
		return errors.Wrap(err, "unmarshal rtp")
	}

	s.mu.Lock()
	s.packetsReceived++
	s.bytesReceived += uint64(len(buf))
	r, ok := s.inbound.Get(pkt.SSRC)
	s.mu.Unlock()

	if !ok {
		s.logger.Debug("rtp packet for unknown stream", zap.Uint32("ssrc", pkt.SSRC))
		return errors.Wrapf(ErrUnknownSSRC, "%d", pkt.SSRC)
	}
	r.ReceiveRTP(pkt, s.now())
	return nil
}

// WriteRTP records an RTP packet about to be sent and returns its wire
// form.
func (s *Session) WriteRTP(pkt *rtp.Packet) ([]byte, error) {
	s.mu.Lock()
	r, ok := s.outbound.Get(pkt.SSRC)
	s.mu.Unlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownSSRC, "%d", pkt.SSRC)
	}

	buf, err := pkt.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "marshal rtp")
	}
	r.SendRTP(pkt, s.now())

	s.mu.Lock()
	s.packetsSent++
	s.bytesSent += uint64(len(buf))
	s.mu.Unlock()
	return buf, nil
}

// ReadRTCP records a received compound RTCP packet.
func (s *Session) ReadRTCP(buf []byte) error {
	pkts, err := rtcp.Unmarshal(buf)
	if err != nil {
		return errors.Wrap(err, "unmarshal rtcp")
	}
	at := s.now()

	s.mu.Lock()
	s.bytesReceived += uint64(len(buf))
	inbound := values(s.inbound)
	outbound := values(s.outbound)
	s.mu.Unlock()

	for _, r := range inbound {
		r.ReceiveRTCP(pkts, at)
	}
	for _, r := range outbound {
		r.ReceiveRTCP(pkts, at)
	}
	return nil
}

// SenderReports builds a sender report for every outbound stream.
func (s *Session) SenderReports() []rtcp.Packet {
	at := s.now()

	s.mu.Lock()
	outbound := values(s.outbound)
	s.mu.Unlock()

	pkts := make([]rtcp.Packet, 0, len(outbound))
	for _, r := range outbound {
		pkts = append(pkts, r.SenderReport(at))
	}
	return pkts
}

// ReceiverReport builds a receiver report covering every inbound stream.
func (s *Session) ReceiverReport(ssrc uint32) *rtcp.ReceiverReport {
	at := s.now()

	s.mu.Lock()
	inbound := values(s.inbound)
	s.mu.Unlock()

	rr := &rtcp.ReceiverReport{SSRC: ssrc}
	for _, r := range inbound {
		rr.Reports = append(rr.Reports, r.ReceptionReport(at))
	}
	return rr
}

// Report copies the state of every recorder into a new report: the
// transport record first, then each inbound and outbound stream in the
// order they were added. Codec records shared by several streams appear
// once.
func (s *Session) Report() (*stats.Report, error) {
	now := s.now()

	s.mu.Lock()
	transport, err := stats.NewRecordBuilder(stats.TypeTransport, s.transportID, now.UnixMicro()).
		SetUint64("packetsSent", s.packetsSent).
		SetUint64("packetsReceived", s.packetsReceived).
		SetUint64("bytesSent", s.bytesSent).
		SetUint64("bytesReceived", s.bytesReceived).
		Build()
	inbound := values(s.inbound)
	outbound := values(s.outbound)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	b := stats.NewBuilder(stats.WithLogger(s.logger))
	b.Add(transport)
	seen := map[string]bool{transport.ID(): true}
	add := func(recs []*stats.Record) {
		for _, rec := range recs {
			if seen[rec.ID()] {
				continue
			}
			seen[rec.ID()] = true
			b.Add(rec)
		}
	}

	for _, r := range inbound {
		recs, err := r.Records(now)
		if err != nil {
			return nil, errors.Wrapf(err, "inbound %d", r.SSRC())
		}
		add(recs)
	}
	for _, r := range outbound {
		recs, err := r.Records(now)
		if err != nil {
			return nil, errors.Wrapf(err, "outbound %d", r.SSRC())
		}
		add(recs)
	}
	return b.Build(), nil
}

func values[K comparable, V any](m *orderedmap.OrderedMap[K, V]) []V {
	out := make([]V, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}
