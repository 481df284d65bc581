package stats

// TransportStats is the view of a "transport" record.
type TransportStats struct{ *Record }

// TransportStatsOf returns r as a TransportStats, or false unless r is a transport record.
func TransportStatsOf(r *Record) (TransportStats, bool) {
	if !viewOf(r, TypeTransport) {
		return TransportStats{}, false
	}
	return TransportStats{r}, true
}

// PacketsSent returns the packetsSent member.
func (s TransportStats) PacketsSent() (uint64, bool) { return s.Uint64("packetsSent") }

// PacketsReceived returns the packetsReceived member.
func (s TransportStats) PacketsReceived() (uint64, bool) { return s.Uint64("packetsReceived") }

// BytesSent returns the bytesSent member.
func (s TransportStats) BytesSent() (uint64, bool) { return s.Uint64("bytesSent") }

// BytesReceived returns the bytesReceived member.
func (s TransportStats) BytesReceived() (uint64, bool) { return s.Uint64("bytesReceived") }

// RTCPTransportStatsID returns the rtcpTransportStatsId member.
func (s TransportStats) RTCPTransportStatsID() (string, bool) { return s.String("rtcpTransportStatsId") }

// ICERole returns the iceRole member.
func (s TransportStats) ICERole() (string, bool) { return s.String("iceRole") }

// ICEState returns the iceState member.
func (s TransportStats) ICEState() (string, bool) { return s.String("iceState") }

// DTLSState returns the dtlsState member.
func (s TransportStats) DTLSState() (string, bool) { return s.String("dtlsState") }

// SelectedCandidatePairID returns the selectedCandidatePairId member.
func (s TransportStats) SelectedCandidatePairID() (string, bool) { return s.String("selectedCandidatePairId") }

// LocalCertificateID returns the localCertificateId member.
func (s TransportStats) LocalCertificateID() (string, bool) { return s.String("localCertificateId") }

// RemoteCertificateID returns the remoteCertificateId member.
func (s TransportStats) RemoteCertificateID() (string, bool) { return s.String("remoteCertificateId") }

// TLSVersion returns the tlsVersion member.
func (s TransportStats) TLSVersion() (string, bool) { return s.String("tlsVersion") }

// DTLSCipher returns the dtlsCipher member.
func (s TransportStats) DTLSCipher() (string, bool) { return s.String("dtlsCipher") }

// SRTPCipher returns the srtpCipher member.
func (s TransportStats) SRTPCipher() (string, bool) { return s.String("srtpCipher") }

// SelectedCandidatePairChanges returns the selectedCandidatePairChanges member.
func (s TransportStats) SelectedCandidatePairChanges() (uint32, bool) {
	return s.Uint32("selectedCandidatePairChanges")
}

// SCTPTransportStats is the view of an "sctp-transport" record.
type SCTPTransportStats struct{ *Record }

// SCTPTransportStatsOf returns r as a SCTPTransportStats, or false unless r is a sctp-transport record.
func SCTPTransportStatsOf(r *Record) (SCTPTransportStats, bool) {
	if !viewOf(r, TypeSCTPTransport) {
		return SCTPTransportStats{}, false
	}
	return SCTPTransportStats{r}, true
}

// TransportID returns the transportId member.
func (s SCTPTransportStats) TransportID() (string, bool) { return s.String("transportId") }

// SmoothedRoundTripTime returns the smoothedRoundTripTime member.
func (s SCTPTransportStats) SmoothedRoundTripTime() (float64, bool) { return s.Double("smoothedRoundTripTime") }

// CongestionWindow returns the congestionWindow member.
func (s SCTPTransportStats) CongestionWindow() (uint32, bool) { return s.Uint32("congestionWindow") }

// ReceiverWindow returns the receiverWindow member.
func (s SCTPTransportStats) ReceiverWindow() (uint32, bool) { return s.Uint32("receiverWindow") }

// MTU returns the mtu member.
func (s SCTPTransportStats) MTU() (uint32, bool) { return s.Uint32("mtu") }

// UnackData returns the unackData member.
func (s SCTPTransportStats) UnackData() (uint32, bool) { return s.Uint32("unackData") }

// ICECandidatePairStats is the view of a "candidate-pair" record.
type ICECandidatePairStats struct{ *Record }

// ICECandidatePairStatsOf returns r as a ICECandidatePairStats, or false unless r is a candidate-pair record.
func ICECandidatePairStatsOf(r *Record) (ICECandidatePairStats, bool) {
	if !viewOf(r, TypeCandidatePair) {
		return ICECandidatePairStats{}, false
	}
	return ICECandidatePairStats{r}, true
}

// TransportID returns the transportId member.
func (s ICECandidatePairStats) TransportID() (string, bool) { return s.String("transportId") }

// LocalCandidateID returns the localCandidateId member.
func (s ICECandidatePairStats) LocalCandidateID() (string, bool) { return s.String("localCandidateId") }

// RemoteCandidateID returns the remoteCandidateId member.
func (s ICECandidatePairStats) RemoteCandidateID() (string, bool) { return s.String("remoteCandidateId") }

// State returns the state member.
func (s ICECandidatePairStats) State() (string, bool) { return s.String("state") }

// Priority returns the priority member.
func (s ICECandidatePairStats) Priority() (uint64, bool) { return s.Uint64("priority") }

// Nominated returns the nominated member.
func (s ICECandidatePairStats) Nominated() (bool, bool) { return s.Bool("nominated") }

// Writable returns the writable member.
func (s ICECandidatePairStats) Writable() (bool, bool) { return s.Bool("writable") }

// Readable returns the readable member.
func (s ICECandidatePairStats) Readable() (bool, bool) { return s.Bool("readable") }

// BytesSent returns the bytesSent member.
func (s ICECandidatePairStats) BytesSent() (uint64, bool) { return s.Uint64("bytesSent") }

// BytesReceived returns the bytesReceived member.
func (s ICECandidatePairStats) BytesReceived() (uint64, bool) { return s.Uint64("bytesReceived") }

// TotalRoundTripTime returns the totalRoundTripTime member.
func (s ICECandidatePairStats) TotalRoundTripTime() (float64, bool) {
	return s.Double("totalRoundTripTime")
}

// CurrentRoundTripTime returns the currentRoundTripTime member.
func (s ICECandidatePairStats) CurrentRoundTripTime() (float64, bool) {
	return s.Double("currentRoundTripTime")
}

// AvailableOutgoingBitrate returns the availableOutgoingBitrate member.
func (s ICECandidatePairStats) AvailableOutgoingBitrate() (float64, bool) {
	return s.Double("availableOutgoingBitrate")
}

// AvailableIncomingBitrate returns the availableIncomingBitrate member.
func (s ICECandidatePairStats) AvailableIncomingBitrate() (float64, bool) {
	return s.Double("availableIncomingBitrate")
}

// RequestsReceived returns the requestsReceived member.
func (s ICECandidatePairStats) RequestsReceived() (uint64, bool) {
	return s.Uint64("requestsReceived")
}

// RequestsSent returns the requestsSent member.
func (s ICECandidatePairStats) RequestsSent() (uint64, bool) {
	return s.Uint64("requestsSent")
}

// ResponsesReceived returns the responsesReceived member.
func (s ICECandidatePairStats) ResponsesReceived() (uint64, bool) {
	return s.Uint64("responsesReceived")
}

// ResponsesSent returns the responsesSent member.
func (s ICECandidatePairStats) ResponsesSent() (uint64, bool) {
	return s.Uint64("responsesSent")
}

// RetransmissionsReceived returns the retransmissionsReceived member.
func (s ICECandidatePairStats) RetransmissionsReceived() (uint64, bool) {
	return s.Uint64("retransmissionsReceived")
}

// RetransmissionsSent returns the retransmissionsSent member.
func (s ICECandidatePairStats) RetransmissionsSent() (uint64, bool) {
	return s.Uint64("retransmissionsSent")
}

// ConsentRequestsReceived returns the consentRequestsReceived member.
func (s ICECandidatePairStats) ConsentRequestsReceived() (uint64, bool) {
	return s.Uint64("consentRequestsReceived")
}

// ConsentRequestsSent returns the consentRequestsSent member.
func (s ICECandidatePairStats) ConsentRequestsSent() (uint64, bool) {
	return s.Uint64("consentRequestsSent")
}

// ConsentResponsesReceived returns the consentResponsesReceived member.
func (s ICECandidatePairStats) ConsentResponsesReceived() (uint64, bool) {
	return s.Uint64("consentResponsesReceived")
}

// ConsentResponsesSent returns the consentResponsesSent member.
func (s ICECandidatePairStats) ConsentResponsesSent() (uint64, bool) {
	return s.Uint64("consentResponsesSent")
}

// ICECandidateStats is the view of both "local-candidate" and
// "remote-candidate" records.
type ICECandidateStats struct{ *Record }

// ICECandidateStatsOf returns r as a ICECandidateStats, or false unless r is a local-candidate or remote-candidate record.
func ICECandidateStatsOf(r *Record) (ICECandidateStats, bool) {
	if !viewOf(r, TypeLocalCandidate, TypeRemoteCandidate) {
		return ICECandidateStats{}, false
	}
	return ICECandidateStats{r}, true
}

// TransportID returns the transportId member.
func (s ICECandidateStats) TransportID() (string, bool) { return s.String("transportId") }

// IsRemote returns the isRemote member.
func (s ICECandidateStats) IsRemote() (bool, bool) { return s.Bool("isRemote") }

// NetworkType returns the networkType member.
func (s ICECandidateStats) NetworkType() (string, bool) { return s.String("networkType") }

// IP returns the ip member.
func (s ICECandidateStats) IP() (string, bool) { return s.String("ip") }

// Address returns the address member.
func (s ICECandidateStats) Address() (string, bool) { return s.String("address") }

// Port returns the port member.
func (s ICECandidateStats) Port() (int32, bool) { return s.Int32("port") }

// Protocol returns the protocol member.
func (s ICECandidateStats) Protocol() (string, bool) { return s.String("protocol") }

// RelayProtocol returns the relayProtocol member.
func (s ICECandidateStats) RelayProtocol() (string, bool) { return s.String("relayProtocol") }

// CandidateType returns the candidateType member.
func (s ICECandidateStats) CandidateType() (string, bool) { return s.String("candidateType") }

// Priority returns the priority member.
func (s ICECandidateStats) Priority() (int32, bool) { return s.Int32("priority") }

// URL returns the url member.
func (s ICECandidateStats) URL() (string, bool) { return s.String("url") }

// Deleted returns the deleted member.
func (s ICECandidateStats) Deleted() (bool, bool) { return s.Bool("deleted") }

// CertificateStats is the view of a "certificate" record.
type CertificateStats struct{ *Record }

// CertificateStatsOf returns r as a CertificateStats, or false unless r is a certificate record.
func CertificateStatsOf(r *Record) (CertificateStats, bool) {
	if !viewOf(r, TypeCertificate) {
		return CertificateStats{}, false
	}
	return CertificateStats{r}, true
}

// Fingerprint returns the fingerprint member.
func (s CertificateStats) Fingerprint() (string, bool) { return s.String("fingerprint") }

// FingerprintAlgorithm returns the fingerprintAlgorithm member.
func (s CertificateStats) FingerprintAlgorithm() (string, bool) { return s.String("fingerprintAlgorithm") }

// Base64Certificate returns the base64Certificate member.
func (s CertificateStats) Base64Certificate() (string, bool) { return s.String("base64Certificate") }

// IssuerCertificateID returns the issuerCertificateId member.
func (s CertificateStats) IssuerCertificateID() (string, bool) { return s.String("issuerCertificateId") }

// ICEServerStats is the view of an "ice-server" record.
type ICEServerStats struct{ *Record }

// ICEServerStatsOf returns r as a ICEServerStats, or false unless r is a ice-server record.
func ICEServerStatsOf(r *Record) (ICEServerStats, bool) {
	if !viewOf(r, TypeICEServer) {
		return ICEServerStats{}, false
	}
	return ICEServerStats{r}, true
}

// URL returns the url member.
func (s ICEServerStats) URL() (string, bool) { return s.String("url") }

// Port returns the port member.
func (s ICEServerStats) Port() (int32, bool) { return s.Int32("port") }

// RelayProtocol returns the relayProtocol member.
func (s ICEServerStats) RelayProtocol() (string, bool) { return s.String("relayProtocol") }

// TotalRequestsSent returns the totalRequestsSent member.
func (s ICEServerStats) TotalRequestsSent() (uint32, bool) { return s.Uint32("totalRequestsSent") }

// TotalResponsesReceived returns the totalResponsesReceived member.
func (s ICEServerStats) TotalResponsesReceived() (uint32, bool) { return s.Uint32("totalResponsesReceived") }

// TotalRoundTripTime returns the totalRoundTripTime member.
func (s ICEServerStats) TotalRoundTripTime() (float64, bool) { return s.Double("totalRoundTripTime") }
