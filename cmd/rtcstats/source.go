package main

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/thesyncim/rtcstats/internal/conf"
	"github.com/thesyncim/rtcstats/internal/loopback"
	"github.com/thesyncim/rtcstats/pkg/fixture"
	"github.com/thesyncim/rtcstats/pkg/native"
	"github.com/thesyncim/rtcstats/pkg/promstats"
	"github.com/thesyncim/rtcstats/pkg/stats"
)

// Packets the rtp source sends per snapshot, and how often it drops one.
const (
	rtpBurst     = 50
	rtpDropEvery = 25
)

// source produces reports until closed.
type source struct {
	snapshot promstats.SnapshotFunc
	close    func()

	// native is set for the native source.
	native *native.Peer
}

func openSource(ctx context.Context, c *conf.Config, logger *zap.Logger) (*source, error) {
	opts := c.StatsOptions(logger)
	logger.Debug("opening source", zap.String("source", c.Source))

	switch c.Source {
	case conf.SourceFixture:
		snap, err := fixture.Load(c.Fixture)
		if err != nil {
			return nil, err
		}
		return &source{
			snapshot: func(context.Context) (*stats.Report, error) {
				return stats.Construct(snap, opts...)
			},
			close: func() {},
		}, nil

	case conf.SourceLoopback:
		p, err := loopback.Start(ctx, logger)
		if err != nil {
			return nil, errors.Wrap(err, "loopback")
		}
		return &source{
			snapshot: func(ctx context.Context) (*stats.Report, error) {
				return p.Report(ctx, opts...)
			},
			close: func() {
				if err := p.Close(); err != nil {
					logger.Warn("closing loopback pair", zap.Error(err))
				}
			},
		}, nil

	case conf.SourceNative:
		peer, err := native.NewPeer()
		if err != nil {
			return nil, errors.Wrap(err, "native peer")
		}
		return &source{
			snapshot: func(ctx context.Context) (*stats.Report, error) {
				return native.Collect(ctx, peer.Handle(), opts...)
			},
			close:  peer.Close,
			native: peer,
		}, nil

	case conf.SourceRTP:
		l, err := loopback.NewRTP(logger, rtpDropEvery)
		if err != nil {
			return nil, err
		}
		return &source{
			snapshot: func(ctx context.Context) (*stats.Report, error) {
				if err := l.Run(rtpBurst); err != nil {
					return nil, err
				}
				return l.Report(ctx, opts...)
			},
			close: func() {},
		}, nil
	}
	return nil, errors.Wrapf(conf.ErrInvalid, "unknown source %q", c.Source)
}
