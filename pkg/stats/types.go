package stats

import (
	"github.com/pkg/errors"
)

// RecordType identifies the category of a statistics record.
// Numeric values match the tags emitted by the native shim.
type RecordType uint8

// Record types. The values are the native tags and must not change.
const (
	TypeCodec RecordType = iota
	TypeInboundRTP
	TypeOutboundRTP
	TypeRemoteInboundRTP
	TypeRemoteOutboundRTP
	TypeMediaSource
	TypeCSRC
	TypePeerConnection
	TypeDataChannel
	TypeStream
	TypeTrack
	TypeTransceiver
	TypeSender
	TypeReceiver
	TypeTransport
	TypeSCTPTransport
	TypeCandidatePair
	TypeLocalCandidate
	TypeRemoteCandidate
	TypeCertificate
	TypeICEServer

	numRecordTypes
)

// wireNames is indexed by RecordType. The strings come from the W3C
// webrtc-stats RTCStatsType enumeration and must not change.
var wireNames = [numRecordTypes]string{
	TypeCodec:             "codec",
	TypeInboundRTP:        "inbound-rtp",
	TypeOutboundRTP:       "outbound-rtp",
	TypeRemoteInboundRTP:  "remote-inbound-rtp",
	TypeRemoteOutboundRTP: "remote-outbound-rtp",
	TypeMediaSource:       "media-source",
	TypeCSRC:              "csrc",
	TypePeerConnection:    "peer-connection",
	TypeDataChannel:       "data-channel",
	TypeStream:            "stream",
	TypeTrack:             "track",
	TypeTransceiver:       "transceiver",
	TypeSender:            "sender",
	TypeReceiver:          "receiver",
	TypeTransport:         "transport",
	TypeSCTPTransport:     "sctp-transport",
	TypeCandidatePair:     "candidate-pair",
	TypeLocalCandidate:    "local-candidate",
	TypeRemoteCandidate:   "remote-candidate",
	TypeCertificate:       "certificate",
	TypeICEServer:         "ice-server",
}

var typesByWireName = func() map[string]RecordType {
	m := make(map[string]RecordType, numRecordTypes)
	for t := RecordType(0); t < numRecordTypes; t++ {
		m[wireNames[t]] = t
	}
	return m
}()

// String returns the wire name of the record type.
func (t RecordType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return wireNames[t]
}

// Valid reports whether t is one of the declared record types.
func (t RecordType) Valid() bool {
	return t < numRecordTypes
}

// MarshalText implements encoding.TextMarshaler.
func (t RecordType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, errors.Wrapf(ErrSchemaMismatch, "record type tag %d", uint8(t))
	}
	return []byte(wireNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RecordType) UnmarshalText(b []byte) error {
	v, err := ParseRecordType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseRecordType resolves a wire name such as "inbound-rtp".
func ParseRecordType(name string) (RecordType, error) {
	t, ok := typesByWireName[name]
	if !ok {
		return 0, errors.Wrapf(ErrSchemaMismatch, "unknown record type %q", name)
	}
	return t, nil
}

// RecordTypeFromTag converts a raw tag from an external snapshot.
func RecordTypeFromTag(tag uint32) (RecordType, error) {
	if tag >= uint32(numRecordTypes) {
		return 0, errors.Wrapf(ErrSchemaMismatch, "record type tag %d", tag)
	}
	return RecordType(tag), nil
}

// AllRecordTypes returns every declared record type in tag order.
func AllRecordTypes() []RecordType {
	out := make([]RecordType, numRecordTypes)
	for i := range out {
		out[i] = RecordType(i)
	}
	return out
}
