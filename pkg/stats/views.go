package stats

// Typed views wrap a *Record and add named accessors for the W3C
// webrtc-stats members of one record type. They never add or hide fields:
// the embedded Record still exposes everything the engine reported, and
// every accessor returns ok == false when the engine omitted the member.

func viewOf(r *Record, types ...RecordType) bool {
	if r == nil {
		return false
	}
	for _, t := range types {
		if r.typ == t {
			return true
		}
	}
	return false
}

// Report shortcuts: each returns the view of the type's entry, if any.

// Codec returns the view of the codec entry.
func (r *Report) Codec() (CodecStats, bool) {
	rec, _ := r.Get(TypeCodec)
	return CodecStatsOf(rec)
}

// InboundRTP returns the view of the inbound-rtp entry.
func (r *Report) InboundRTP() (InboundRTPStreamStats, bool) {
	rec, _ := r.Get(TypeInboundRTP)
	return InboundRTPStreamStatsOf(rec)
}

// OutboundRTP returns the view of the outbound-rtp entry.
func (r *Report) OutboundRTP() (OutboundRTPStreamStats, bool) {
	rec, _ := r.Get(TypeOutboundRTP)
	return OutboundRTPStreamStatsOf(rec)
}

// RemoteInboundRTP returns the view of the remote-inbound-rtp entry.
func (r *Report) RemoteInboundRTP() (RemoteInboundRTPStreamStats, bool) {
	rec, _ := r.Get(TypeRemoteInboundRTP)
	return RemoteInboundRTPStreamStatsOf(rec)
}

// RemoteOutboundRTP returns the view of the remote-outbound-rtp entry.
func (r *Report) RemoteOutboundRTP() (RemoteOutboundRTPStreamStats, bool) {
	rec, _ := r.Get(TypeRemoteOutboundRTP)
	return RemoteOutboundRTPStreamStatsOf(rec)
}

// MediaSource returns the view of the media-source entry.
func (r *Report) MediaSource() (MediaSourceStats, bool) {
	rec, _ := r.Get(TypeMediaSource)
	return MediaSourceStatsOf(rec)
}

// CSRC returns the view of the csrc entry.
func (r *Report) CSRC() (CSRCStats, bool) {
	rec, _ := r.Get(TypeCSRC)
	return CSRCStatsOf(rec)
}

// PeerConnection returns the view of the peer-connection entry.
func (r *Report) PeerConnection() (PeerConnectionStats, bool) {
	rec, _ := r.Get(TypePeerConnection)
	return PeerConnectionStatsOf(rec)
}

// DataChannel returns the view of the data-channel entry.
func (r *Report) DataChannel() (DataChannelStats, bool) {
	rec, _ := r.Get(TypeDataChannel)
	return DataChannelStatsOf(rec)
}

// Stream returns the view of the stream entry.
func (r *Report) Stream() (MediaStreamStats, bool) {
	rec, _ := r.Get(TypeStream)
	return MediaStreamStatsOf(rec)
}

// Track returns the view of the track entry.
func (r *Report) Track() (MediaStreamTrackStats, bool) {
	rec, _ := r.Get(TypeTrack)
	return MediaStreamTrackStatsOf(rec)
}

// Transceiver returns the view of the transceiver entry.
func (r *Report) Transceiver() (TransceiverStats, bool) {
	rec, _ := r.Get(TypeTransceiver)
	return TransceiverStatsOf(rec)
}

// Sender returns the view of the sender entry.
func (r *Report) Sender() (SenderStats, bool) {
	rec, _ := r.Get(TypeSender)
	return SenderStatsOf(rec)
}

// Receiver returns the view of the receiver entry.
func (r *Report) Receiver() (ReceiverStats, bool) {
	rec, _ := r.Get(TypeReceiver)
	return ReceiverStatsOf(rec)
}

// Transport returns the view of the transport entry.
func (r *Report) Transport() (TransportStats, bool) {
	rec, _ := r.Get(TypeTransport)
	return TransportStatsOf(rec)
}

// SCTPTransport returns the view of the sctp-transport entry.
func (r *Report) SCTPTransport() (SCTPTransportStats, bool) {
	rec, _ := r.Get(TypeSCTPTransport)
	return SCTPTransportStatsOf(rec)
}

// CandidatePair returns the view of the candidate-pair entry.
func (r *Report) CandidatePair() (ICECandidatePairStats, bool) {
	rec, _ := r.Get(TypeCandidatePair)
	return ICECandidatePairStatsOf(rec)
}

// LocalCandidate returns the view of the local-candidate entry.
func (r *Report) LocalCandidate() (ICECandidateStats, bool) {
	rec, _ := r.Get(TypeLocalCandidate)
	return ICECandidateStatsOf(rec)
}

// RemoteCandidate returns the view of the remote-candidate entry.
func (r *Report) RemoteCandidate() (ICECandidateStats, bool) {
	rec, _ := r.Get(TypeRemoteCandidate)
	return ICECandidateStatsOf(rec)
}

// Certificate returns the view of the certificate entry.
func (r *Report) Certificate() (CertificateStats, bool) {
	rec, _ := r.Get(TypeCertificate)
	return CertificateStatsOf(rec)
}

// ICEServer returns the view of the ice-server entry.
func (r *Report) ICEServer() (ICEServerStats, bool) {
	rec, _ := r.Get(TypeICEServer)
	return ICEServerStatsOf(rec)
}
