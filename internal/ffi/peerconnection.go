package ffi

import (
	"runtime"
)

// CreatePeerConnection creates a new native PeerConnection.
// Returns 0 if the library is not loaded or creation failed.
func CreatePeerConnection(config *PeerConnectionConfig) uintptr {
	if !libLoaded.Load() || shimPeerConnectionCreate == nil {
		return 0
	}

	if config == nil {
		return 0
	}

	// The shim reads the config and its strings through raw addresses.
	var pin runtime.Pinner
	defer pin.Unpin()
	pin.Pin(config)
	for _, str := range []*byte{config.BundlePolicy, config.RTCPMuxPolicy, config.SDPSemantics} {
		if str != nil {
			pin.Pin(str)
		}
	}
	return shimPeerConnectionCreate(config.Ptr())
}

// PeerConnectionCreateDataChannel creates a data channel so that the
// connection reports data-channel and transport stats.
func PeerConnectionCreateDataChannel(pc uintptr, label string, ordered bool, maxRetransmits int, protocol string) uintptr {
	if !libLoaded.Load() || shimPeerConnectionCreateDataChannel == nil {
		return 0
	}

	labelCStr := CString(label)
	protocolCStr := CString(protocol)

	var pin runtime.Pinner
	defer pin.Unpin()
	pin.Pin(&labelCStr[0])
	pin.Pin(&protocolCStr[0])

	var orderedInt int32
	if ordered {
		orderedInt = 1
	}

	return shimPeerConnectionCreateDataChannel(
		pc,
		ByteSlicePtr(labelCStr),
		orderedInt,
		int32(maxRetransmits),
		ByteSlicePtr(protocolCStr),
	)
}

// PeerConnectionClose closes the peer connection.
func PeerConnectionClose(pc uintptr) {
	if !libLoaded.Load() || shimPeerConnectionClose == nil {
		return
	}
	shimPeerConnectionClose(pc)
}

// PeerConnectionDestroy destroys a PeerConnection.
func PeerConnectionDestroy(pc uintptr) {
	if !libLoaded.Load() || shimPeerConnectionDestroy == nil {
		return
	}
	shimPeerConnectionDestroy(pc)
}
