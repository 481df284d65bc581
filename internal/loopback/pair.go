// Package loopback produces live statistics without any network peer:
// Pair joins two in-process pion peer connections with a data channel and
// RTPLoop feeds a synthetic audio stream through two rtpstats sessions.
package loopback

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pion/webrtc/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/pkg/pionstats"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

const channelLabel = "rtcstats"

// Pair holds two connected peer connections. Statistics are taken from the
// offering side, which owns the data channel.
type Pair struct {
	Offerer  *webrtc.PeerConnection
	Answerer *webrtc.PeerConnection
	Channel  *webrtc.DataChannel

	logger   *zap.Logger
	opened   chan struct{}
	openOnce sync.Once
	received atomic.Uint64
}

// NewPair creates both peer connections and the data channel. Only host
// candidates are gathered, loopback included, so no STUN server is used.
func NewPair(logger *zap.Logger) (*Pair, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var se webrtc.SettingEngine
	se.SetIncludeLoopbackCandidate(true)
	se.SetNetworkTypes([]webrtc.NetworkType{webrtc.NetworkTypeUDP4})
	api := webrtc.NewAPI(webrtc.WithSettingEngine(se))

	offerer, err := api.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return nil, errors.Wrap(err, "create offerer")
	}
	answerer, err := api.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		offerer.Close()
		return nil, errors.Wrap(err, "create answerer")
	}

	p := &Pair{
		Offerer:  offerer,
		Answerer: answerer,
		logger:   logger,
		opened:   make(chan struct{}),
	}

	ordered := true
	dc, err := offerer.CreateDataChannel(channelLabel, &webrtc.DataChannelInit{Ordered: &ordered})
	if err != nil {
		p.Close()
		return nil, errors.Wrap(err, "create data channel")
	}
	p.Channel = dc
	dc.OnOpen(func() {
		p.openOnce.Do(func() { close(p.opened) })
	})

	answerer.OnDataChannel(func(dc *webrtc.DataChannel) {
		logger.Debug("data channel received", zap.String("label", dc.Label()))
		dc.OnMessage(func(msg webrtc.DataChannelMessage) {
			p.received.Add(1)
			if err := dc.Send(msg.Data); err != nil {
				logger.Debug("echo failed", zap.Error(err))
			}
		})
	})

	offerer.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		logger.Debug("offerer connection state", zap.Stringer("state", state))
	})
	answerer.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		logger.Debug("answerer connection state", zap.Stringer("state", state))
	})
	return p, nil
}

// Negotiate runs a non-trickle offer/answer exchange: each description is
// handed over only after its side has finished gathering.
func (p *Pair) Negotiate(ctx context.Context) error {
	offer, err := p.Offerer.CreateOffer(nil)
	if err != nil {
		return errors.Wrap(err, "create offer")
	}
	gathered := webrtc.GatheringCompletePromise(p.Offerer)
	if err := p.Offerer.SetLocalDescription(offer); err != nil {
		return errors.Wrap(err, "set local offer")
	}
	if err := wait(ctx, gathered); err != nil {
		return errors.Wrap(err, "offerer gathering")
	}

	if err := p.Answerer.SetRemoteDescription(*p.Offerer.LocalDescription()); err != nil {
		return errors.Wrap(err, "set remote offer")
	}
	answer, err := p.Answerer.CreateAnswer(nil)
	if err != nil {
		return errors.Wrap(err, "create answer")
	}
	gathered = webrtc.GatheringCompletePromise(p.Answerer)
	if err := p.Answerer.SetLocalDescription(answer); err != nil {
		return errors.Wrap(err, "set local answer")
	}
	if err := wait(ctx, gathered); err != nil {
		return errors.Wrap(err, "answerer gathering")
	}

	if err := p.Offerer.SetRemoteDescription(*p.Answerer.LocalDescription()); err != nil {
		return errors.Wrap(err, "set remote answer")
	}
	return nil
}

// WaitOpen blocks until the data channel is open.
func (p *Pair) WaitOpen(ctx context.Context) error {
	return errors.Wrap(wait(ctx, p.opened), "data channel open")
}

// Send writes n messages of size bytes each. The answering side echoes
// every message back.
func (p *Pair) Send(n, size int) error {
	msg := make([]byte, size)
	for i := range n {
		if err := p.Channel.Send(msg); err != nil {
			return errors.Wrapf(err, "send message %d", i)
		}
	}
	return nil
}

// Received returns the number of messages the answering side has seen.
func (p *Pair) Received() uint64 {
	return p.received.Load()
}

// Report collects the statistics of the offering peer connection.
func (p *Pair) Report(ctx context.Context, opts ...stats.Option) (*stats.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pionstats.Collect(p.Offerer, opts...)
}

// Close closes both peer connections and returns the first error.
func (p *Pair) Close() error {
	var first error
	for _, pc := range []*webrtc.PeerConnection{p.Offerer, p.Answerer} {
		if pc == nil {
			continue
		}
		if err := pc.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Start creates a pair, connects it and exchanges a few messages so the
// transport counters are non-zero.
func Start(ctx context.Context, logger *zap.Logger) (*Pair, error) {
	p, err := NewPair(logger)
	if err != nil {
		return nil, err
	}
	if err := p.Negotiate(ctx); err != nil {
		p.Close()
		return nil, err
	}
	if err := p.WaitOpen(ctx); err != nil {
		p.Close()
		return nil, err
	}
	if err := p.Send(8, 1200); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
