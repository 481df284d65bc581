package loopback

import (
	"context"
	"sync"

	"github.com/pion/rtcp"
	"github.com/pion/rtp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/pkg/rtpstats"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

const (
	loopSSRC        = 0x52544353
	loopPayloadSize = 160
	opusFrame       = 960
)

// RTPLoop sends a synthetic opus stream from one rtpstats session to
// another, dropping every dropEvery-th packet on the way.
type RTPLoop struct {
	Sender   *rtpstats.Session
	Receiver *rtpstats.Session

	mu        sync.Mutex
	seq       uint16
	ts        uint32
	sent      int
	dropEvery int
}

// NewRTP sets up both sessions. A dropEvery of zero loses nothing.
func NewRTP(logger *zap.Logger, dropEvery int, opts ...rtpstats.Option) (*RTPLoop, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	params := rtpstats.StreamParams{
		SSRC:        loopSSRC,
		Kind:        "audio",
		PayloadType: 111,
		MimeType:    "audio/opus",
		ClockRate:   48000,
		Channels:    2,
		SDPFmtpLine: "minptime=10;useinbandfec=1",
	}

	l := &RTPLoop{
		Sender: rtpstats.NewSession(append([]rtpstats.Option{
			rtpstats.WithLogger(logger.Named("send")),
			rtpstats.WithTransportID("RTCTransport_send"),
		}, opts...)...),
		Receiver: rtpstats.NewSession(append([]rtpstats.Option{
			rtpstats.WithLogger(logger.Named("recv")),
			rtpstats.WithTransportID("RTCTransport_recv"),
		}, opts...)...),
		dropEvery: dropEvery,
	}

	if _, err := l.Sender.AddOutbound(params); err != nil {
		return nil, err
	}
	if _, err := l.Receiver.AddInbound(params); err != nil {
		return nil, err
	}
	return l, nil
}

// Run sends n packets and then exchanges one sender report and one
// receiver report.
func (l *RTPLoop) Run(n int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for range n {
		pkt := &rtp.Packet{
			Header: rtp.Header{
				Version:        2,
				PayloadType:    111,
				SequenceNumber: l.seq,
				Timestamp:      l.ts,
				SSRC:           loopSSRC,
			},
			Payload: make([]byte, loopPayloadSize),
		}
		l.seq++
		l.ts += opusFrame
		l.sent++

		buf, err := l.Sender.WriteRTP(pkt)
		if err != nil {
			return err
		}
		if l.dropEvery > 0 && l.sent%l.dropEvery == 0 {
			continue
		}
		if err := l.Receiver.ReadRTP(buf); err != nil {
			return err
		}
	}

	sr, err := rtcp.Marshal(l.Sender.SenderReports())
	if err != nil {
		return errors.Wrap(err, "marshal sender report")
	}
	if err := l.Receiver.ReadRTCP(sr); err != nil {
		return err
	}

	rr, err := rtcp.Marshal([]rtcp.Packet{l.Receiver.ReceiverReport(loopSSRC + 1)})
	if err != nil {
		return errors.Wrap(err, "marshal receiver report")
	}
	return l.Sender.ReadRTCP(rr)
}

// Report merges the reports of both sessions, sender first.
func (l *RTPLoop) Report(ctx context.Context, opts ...stats.Option) (*stats.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := stats.NewBuilder(opts...)
	for _, s := range []*rtpstats.Session{l.Sender, l.Receiver} {
		r, err := s.Report()
		if err != nil {
			return nil, err
		}
		for _, rec := range r.Records() {
			b.Add(rec)
		}
	}
	return b.Build(), nil
}
