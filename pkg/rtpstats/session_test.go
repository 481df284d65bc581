package rtpstats

import (
	"sync"
	"testing"
	"time"

	"github.com/pion/rtcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/thesyncim/rtcstats/pkg/stats"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestSessionLoop(t *testing.T) {
	clock := &fakeClock{t: t0}
	logger := zaptest.NewLogger(t)
	sender := NewSession(WithClock(clock.now), WithLogger(logger), WithTransportID("T-send"))
	receiver := NewSession(WithClock(clock.now), WithLogger(logger))

	params := vp8Params()
	params.TransportID = ""
	out, err := sender.AddOutbound(params)
	require.NoError(t, err)
	_, err = receiver.AddInbound(params)
	require.NoError(t, err)

	for i := range 10 {
		if i == 4 {
			continue // lost
		}
		buf, err := sender.WriteRTP(packet(params.SSRC, uint16(i), uint32(i)*3000, 1000))
		require.NoError(t, err)
		require.NoError(t, receiver.ReadRTP(buf))
		clock.advance(33 * time.Millisecond)
	}

	sr, err := rtcp.Marshal([]rtcp.Packet{out.SenderReport(clock.now())})
	require.NoError(t, err)
	clock.advance(10 * time.Millisecond)
	require.NoError(t, receiver.ReadRTCP(sr))

	clock.advance(50 * time.Millisecond)
	rr, err := rtcp.Marshal([]rtcp.Packet{receiver.ReceiverReport(1)})
	require.NoError(t, err)
	clock.advance(20 * time.Millisecond)
	require.NoError(t, sender.ReadRTCP(rr))

	rtt, ok := out.RoundTripTime()
	require.True(t, ok)
	assert.InDelta(t, 0.030, rtt.Seconds(), 1e-3)

	sent, err := sender.Report()
	require.NoError(t, err)
	assert.Equal(t, []stats.RecordType{stats.TypeTransport, stats.TypeOutboundRTP, stats.TypeCodec, stats.TypeRemoteInboundRTP}, sent.Types())

	transport, ok := sent.Transport()
	require.True(t, ok)
	assert.Equal(t, "T-send", transport.ID())
	packets, _ := transport.PacketsSent()
	assert.Equal(t, uint64(9), packets)
	bytes, _ := transport.BytesSent()
	assert.Equal(t, uint64(9*(12+1000)), bytes)

	remote, ok := sent.RemoteInboundRTP()
	require.True(t, ok)
	lost, _ := remote.PacketsLost()
	assert.Equal(t, int32(1), lost)
	transportID, _ := remote.TransportID()
	assert.Equal(t, "T-send", transportID)

	received, err := receiver.Report()
	require.NoError(t, err)
	assert.Equal(t, []stats.RecordType{stats.TypeTransport, stats.TypeInboundRTP, stats.TypeCodec, stats.TypeRemoteOutboundRTP}, received.Types())

	in, ok := received.InboundRTP()
	require.True(t, ok)
	n, _ := in.PacketsReceived()
	assert.Equal(t, uint32(9), n)
	lost, _ = in.PacketsLost()
	assert.Equal(t, int32(1), lost)
	transportID, _ = in.TransportID()
	assert.Equal(t, defaultTransportID, transportID)

	ro, ok := received.RemoteOutboundRTP()
	require.True(t, ok)
	packetsSent, _ := ro.PacketsSent()
	assert.Equal(t, uint32(9), packetsSent)

	rt, ok := received.Transport()
	require.True(t, ok)
	bytesReceived, _ := rt.BytesReceived()
	assert.Equal(t, uint64(9*(12+1000)+len(sr)), bytesReceived)
}

func TestSessionSharedCodecOnce(t *testing.T) {
	s := NewSession(WithClock(func() time.Time { return t0 }))
	a := opusParams()
	b := opusParams()
	b.SSRC = 4321
	_, err := s.AddInbound(a)
	require.NoError(t, err)
	_, err = s.AddInbound(b)
	require.NoError(t, err)

	report, err := s.Report()
	require.NoError(t, err)
	assert.Len(t, report.RecordsOf(stats.TypeInboundRTP), 2)
	assert.Len(t, report.RecordsOf(stats.TypeCodec), 1)
	for _, rec := range report.Records() {
		assert.Equal(t, t0.UnixMicro(), rec.Timestamp())
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession()

	_, err := s.AddInbound(opusParams())
	require.NoError(t, err)
	_, err = s.AddInbound(opusParams())
	assert.ErrorIs(t, err, ErrDuplicateSSRC)

	_, err = s.AddOutbound(vp8Params())
	require.NoError(t, err)
	_, err = s.AddOutbound(vp8Params())
	assert.ErrorIs(t, err, ErrDuplicateSSRC)

	bad := opusParams()
	bad.ClockRate = 0
	_, err = s.AddOutbound(bad)
	assert.ErrorIs(t, err, ErrInvalidParams)

	buf, err := packet(42, 1, 0, 10).Marshal()
	require.NoError(t, err)
	assert.ErrorIs(t, s.ReadRTP(buf), ErrUnknownSSRC)

	_, err = s.WriteRTP(packet(42, 1, 0, 10))
	assert.ErrorIs(t, err, ErrUnknownSSRC)

	assert.Error(t, s.ReadRTP([]byte{0x80}))
	assert.Error(t, s.ReadRTCP([]byte{0x80}))

	assert.Empty(t, NewSession().SenderReports())
	require.Len(t, s.SenderReports(), 1)

	in, ok := s.Inbound(1234)
	require.True(t, ok)
	assert.Equal(t, uint32(1234), in.SSRC())
	_, ok = s.Outbound(1234)
	assert.False(t, ok)
}

func TestSessionConcurrentUse(t *testing.T) {
	s := NewSession()
	out, err := s.AddOutbound(vp8Params())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				_, err := s.WriteRTP(packet(out.SSRC(), uint16(w*100+i), 0, 10))
				assert.NoError(t, err)
				_, err = s.Report()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	report, err := s.Report()
	require.NoError(t, err)
	o, _ := report.OutboundRTP()
	sent, _ := o.PacketsSent()
	assert.Equal(t, uint32(400), sent)
}
