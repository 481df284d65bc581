// Package rtpstats derives webrtc-stats records from observed RTP and RTCP
// traffic.
//
// An InboundRecorder watches one received stream and an OutboundRecorder
// one sent stream. Their state is copied into immutable stats records on
// demand, so a Session can hand out a *stats.Report while packets keep
// flowing:
//
//	sess := rtpstats.NewSession(rtpstats.WithLogger(logger))
//	in, _ := sess.AddInbound(rtpstats.StreamParams{SSRC: 1234, Kind: "audio", ClockRate: 48000, PayloadType: 111, MimeType: "audio/opus"})
//	...
//	_ = sess.ReadRTP(buf)
//	report, _ := sess.Report()
package rtpstats

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidParams = errors.New("invalid stream params")
	ErrDuplicateSSRC = errors.New("duplicate ssrc")
	ErrUnknownSSRC   = errors.New("unknown ssrc")
)

// StreamParams describes one RTP stream.
type StreamParams struct {
	SSRC        uint32
	Kind        string // "audio" or "video"
	PayloadType uint8
	MimeType    string
	ClockRate   uint32
	Channels    uint32
	SDPFmtpLine string
	TransportID string
}

func (p StreamParams) validate() error {
	switch {
	case p.Kind != "audio" && p.Kind != "video":
		return errors.Wrapf(ErrInvalidParams, "kind %q", p.Kind)
	case p.ClockRate == 0:
		return errors.Wrap(ErrInvalidParams, "zero clock rate")
	}
	return nil
}

func (p StreamParams) kindTitle() string {
	if p.Kind == "video" {
		return "Video"
	}
	return "Audio"
}

func (p StreamParams) streamID(prefix string) string {
	return fmt.Sprintf("RTC%sRTP%sStream_%d", prefix, p.kindTitle(), p.SSRC)
}

func (p StreamParams) codecID(direction string) string {
	return fmt.Sprintf("RTCCodec_%s_%s_%d", p.TransportID, direction, p.PayloadType)
}
