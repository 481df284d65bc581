package native

import (
	"github.com/pkg/errors"

	"github.com/thesyncim/rtcstats/internal/ffi"
)

// Peer is a native peer connection with a single data channel. It exists
// so that a process without its own libwebrtc session can still obtain a
// populated report.
type Peer struct {
	pc uintptr
	dc uintptr
}

// NewPeer loads the shim library and creates a peer connection.
func NewPeer() (*Peer, error) {
	if err := ffi.LoadLibrary(); err != nil {
		return nil, err
	}
	if err := ffi.CheckVersion(); err != nil {
		return nil, err
	}

	cfg := &ffi.PeerConnectionConfig{
		BundlePolicy:  ffi.CStringPtr("max-bundle"),
		RTCPMuxPolicy: ffi.CStringPtr("require"),
		SDPSemantics:  ffi.CStringPtr("unified-plan"),
	}
	pc := ffi.CreatePeerConnection(cfg)
	if pc == 0 {
		return nil, errors.Wrap(ffi.ErrInitFailed, "create peer connection")
	}

	dc := ffi.PeerConnectionCreateDataChannel(pc, "rtcstats", true, -1, "")
	if dc == 0 {
		ffi.PeerConnectionDestroy(pc)
		return nil, errors.Wrap(ffi.ErrInitFailed, "create data channel")
	}
	return &Peer{pc: pc, dc: dc}, nil
}

// Handle returns the native peer connection handle for Collect.
func (p *Peer) Handle() uintptr {
	return p.pc
}

// Close closes and destroys the peer connection.
func (p *Peer) Close() {
	if p.pc == 0 {
		return
	}
	ffi.PeerConnectionClose(p.pc)
	ffi.PeerConnectionDestroy(p.pc)
	p.pc, p.dc = 0, 0
}
