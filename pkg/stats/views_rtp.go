package stats

// CodecStats is the view of a "codec" record.
type CodecStats struct{ *Record }

// CodecStatsOf returns r as a CodecStats, or false unless r is a codec record.
func CodecStatsOf(r *Record) (CodecStats, bool) {
	if !viewOf(r, TypeCodec) {
		return CodecStats{}, false
	}
	return CodecStats{r}, true
}

// PayloadType returns the payloadType member.
func (s CodecStats) PayloadType() (uint32, bool) { return s.Uint32("payloadType") }

// MimeType returns the mimeType member.
func (s CodecStats) MimeType() (string, bool) { return s.String("mimeType") }

// ClockRate returns the clockRate member.
func (s CodecStats) ClockRate() (uint32, bool) { return s.Uint32("clockRate") }

// Channels returns the channels member.
func (s CodecStats) Channels() (uint32, bool) { return s.Uint32("channels") }

// SDPFmtpLine returns the sdpFmtpLine member.
func (s CodecStats) SDPFmtpLine() (string, bool) { return s.String("sdpFmtpLine") }

// TransportID returns the transportId member.
func (s CodecStats) TransportID() (string, bool) { return s.String("transportId") }

// RTPStreamStats holds the members shared by all four RTP stream record
// types.
type RTPStreamStats struct{ *Record }

// SSRC returns the ssrc member.
func (s RTPStreamStats) SSRC() (uint32, bool) { return s.Uint32("ssrc") }

// Kind returns the kind member.
func (s RTPStreamStats) Kind() (string, bool) { return s.String("kind") }

// MediaType returns the mediaType member.
func (s RTPStreamStats) MediaType() (string, bool) { return s.String("mediaType") }

// TransportID returns the transportId member.
func (s RTPStreamStats) TransportID() (string, bool) { return s.String("transportId") }

// CodecID returns the codecId member.
func (s RTPStreamStats) CodecID() (string, bool) { return s.String("codecId") }

// TrackID returns the trackId member.
func (s RTPStreamStats) TrackID() (string, bool) { return s.String("trackId") }

// AssociateStatsID returns the associateStatsId member.
func (s RTPStreamStats) AssociateStatsID() (string, bool) { return s.String("associateStatsId") }

// IsRemote returns the isRemote member.
func (s RTPStreamStats) IsRemote() (bool, bool) { return s.Bool("isRemote") }

// FIRCount returns the firCount member.
func (s RTPStreamStats) FIRCount() (uint32, bool) { return s.Uint32("firCount") }

// PLICount returns the pliCount member.
func (s RTPStreamStats) PLICount() (uint32, bool) { return s.Uint32("pliCount") }

// NACKCount returns the nackCount member.
func (s RTPStreamStats) NACKCount() (uint32, bool) { return s.Uint32("nackCount") }

// SLICount returns the sliCount member.
func (s RTPStreamStats) SLICount() (uint32, bool) { return s.Uint32("sliCount") }

// QPSum returns the qpSum member.
func (s RTPStreamStats) QPSum() (uint64, bool) { return s.Uint64("qpSum") }

// InboundRTPStreamStats is the view of an "inbound-rtp" record.
type InboundRTPStreamStats struct{ RTPStreamStats }

// InboundRTPStreamStatsOf returns r as a InboundRTPStreamStats, or false unless r is a inbound-rtp record.
func InboundRTPStreamStatsOf(r *Record) (InboundRTPStreamStats, bool) {
	if !viewOf(r, TypeInboundRTP) {
		return InboundRTPStreamStats{}, false
	}
	return InboundRTPStreamStats{RTPStreamStats{r}}, true
}

// PacketsReceived returns the packetsReceived member.
func (s InboundRTPStreamStats) PacketsReceived() (uint32, bool) {
	return s.Uint32("packetsReceived")
}

// BytesReceived returns the bytesReceived member.
func (s InboundRTPStreamStats) BytesReceived() (uint64, bool) {
	return s.Uint64("bytesReceived")
}

// HeaderBytesReceived returns the headerBytesReceived member.
func (s InboundRTPStreamStats) HeaderBytesReceived() (uint64, bool) {
	return s.Uint64("headerBytesReceived")
}

// PacketsLost returns the packetsLost member.
func (s InboundRTPStreamStats) PacketsLost() (int32, bool) {
	return s.Int32("packetsLost")
}

// LastPacketReceivedTimestamp returns the lastPacketReceivedTimestamp member.
func (s InboundRTPStreamStats) LastPacketReceivedTimestamp() (float64, bool) {
	return s.Double("lastPacketReceivedTimestamp")
}

// Jitter is the RFC 3550 interarrival jitter in seconds.
func (s InboundRTPStreamStats) Jitter() (float64, bool) {
	return s.Double("jitter")
}

// RoundTripTime returns the roundTripTime member.
func (s InboundRTPStreamStats) RoundTripTime() (float64, bool) {
	return s.Double("roundTripTime")
}

// PacketsDiscarded returns the packetsDiscarded member.
func (s InboundRTPStreamStats) PacketsDiscarded() (uint32, bool) {
	return s.Uint32("packetsDiscarded")
}

// PacketsRepaired returns the packetsRepaired member.
func (s InboundRTPStreamStats) PacketsRepaired() (uint32, bool) {
	return s.Uint32("packetsRepaired")
}

// BurstPacketsLost returns the burstPacketsLost member.
func (s InboundRTPStreamStats) BurstPacketsLost() (uint32, bool) {
	return s.Uint32("burstPacketsLost")
}

// BurstPacketsDiscarded returns the burstPacketsDiscarded member.
func (s InboundRTPStreamStats) BurstPacketsDiscarded() (uint32, bool) {
	return s.Uint32("burstPacketsDiscarded")
}

// BurstLossCount returns the burstLossCount member.
func (s InboundRTPStreamStats) BurstLossCount() (uint32, bool) {
	return s.Uint32("burstLossCount")
}

// BurstDiscardCount returns the burstDiscardCount member.
func (s InboundRTPStreamStats) BurstDiscardCount() (uint32, bool) {
	return s.Uint32("burstDiscardCount")
}

// BurstLossRate returns the burstLossRate member.
func (s InboundRTPStreamStats) BurstLossRate() (float64, bool) {
	return s.Double("burstLossRate")
}

// BurstDiscardRate returns the burstDiscardRate member.
func (s InboundRTPStreamStats) BurstDiscardRate() (float64, bool) {
	return s.Double("burstDiscardRate")
}

// GapLossRate returns the gapLossRate member.
func (s InboundRTPStreamStats) GapLossRate() (float64, bool) {
	return s.Double("gapLossRate")
}

// GapDiscardRate returns the gapDiscardRate member.
func (s InboundRTPStreamStats) GapDiscardRate() (float64, bool) {
	return s.Double("gapDiscardRate")
}

// FramesDecoded returns the framesDecoded member.
func (s InboundRTPStreamStats) FramesDecoded() (uint32, bool) {
	return s.Uint32("framesDecoded")
}

// KeyFramesDecoded returns the keyFramesDecoded member.
func (s InboundRTPStreamStats) KeyFramesDecoded() (uint32, bool) {
	return s.Uint32("keyFramesDecoded")
}

// TotalDecodeTime returns the totalDecodeTime member.
func (s InboundRTPStreamStats) TotalDecodeTime() (float64, bool) {
	return s.Double("totalDecodeTime")
}

// ContentType returns the contentType member.
func (s InboundRTPStreamStats) ContentType() (string, bool) {
	return s.String("contentType")
}

// DecoderImplementation returns the decoderImplementation member.
func (s InboundRTPStreamStats) DecoderImplementation() (string, bool) {
	return s.String("decoderImplementation")
}

// OutboundRTPStreamStats is the view of an "outbound-rtp" record.
type OutboundRTPStreamStats struct{ RTPStreamStats }

// OutboundRTPStreamStatsOf returns r as a OutboundRTPStreamStats, or false unless r is a outbound-rtp record.
func OutboundRTPStreamStatsOf(r *Record) (OutboundRTPStreamStats, bool) {
	if !viewOf(r, TypeOutboundRTP) {
		return OutboundRTPStreamStats{}, false
	}
	return OutboundRTPStreamStats{RTPStreamStats{r}}, true
}

// MediaSourceID returns the mediaSourceId member.
func (s OutboundRTPStreamStats) MediaSourceID() (string, bool) {
	return s.String("mediaSourceId")
}

// PacketsSent returns the packetsSent member.
func (s OutboundRTPStreamStats) PacketsSent() (uint32, bool) {
	return s.Uint32("packetsSent")
}

// RetransmittedPacketsSent returns the retransmittedPacketsSent member.
func (s OutboundRTPStreamStats) RetransmittedPacketsSent() (uint64, bool) {
	return s.Uint64("retransmittedPacketsSent")
}

// BytesSent returns the bytesSent member.
func (s OutboundRTPStreamStats) BytesSent() (uint64, bool) {
	return s.Uint64("bytesSent")
}

// HeaderBytesSent returns the headerBytesSent member.
func (s OutboundRTPStreamStats) HeaderBytesSent() (uint64, bool) {
	return s.Uint64("headerBytesSent")
}

// RetransmittedBytesSent returns the retransmittedBytesSent member.
func (s OutboundRTPStreamStats) RetransmittedBytesSent() (uint64, bool) {
	return s.Uint64("retransmittedBytesSent")
}

// TargetBitrate returns the targetBitrate member.
func (s OutboundRTPStreamStats) TargetBitrate() (float64, bool) {
	return s.Double("targetBitrate")
}

// FramesEncoded returns the framesEncoded member.
func (s OutboundRTPStreamStats) FramesEncoded() (uint32, bool) {
	return s.Uint32("framesEncoded")
}

// KeyFramesEncoded returns the keyFramesEncoded member.
func (s OutboundRTPStreamStats) KeyFramesEncoded() (uint32, bool) {
	return s.Uint32("keyFramesEncoded")
}

// TotalEncodeTime returns the totalEncodeTime member.
func (s OutboundRTPStreamStats) TotalEncodeTime() (float64, bool) {
	return s.Double("totalEncodeTime")
}

// TotalEncodedBytesTarget returns the totalEncodedBytesTarget member.
func (s OutboundRTPStreamStats) TotalEncodedBytesTarget() (uint64, bool) {
	return s.Uint64("totalEncodedBytesTarget")
}

// TotalPacketSendDelay returns the totalPacketSendDelay member.
func (s OutboundRTPStreamStats) TotalPacketSendDelay() (float64, bool) {
	return s.Double("totalPacketSendDelay")
}

// QualityLimitationReason returns the qualityLimitationReason member.
func (s OutboundRTPStreamStats) QualityLimitationReason() (string, bool) {
	return s.String("qualityLimitationReason")
}

// QualityLimitationResolutionChanges returns the qualityLimitationResolutionChanges member.
func (s OutboundRTPStreamStats) QualityLimitationResolutionChanges() (uint32, bool) {
	return s.Uint32("qualityLimitationResolutionChanges")
}

// ContentType returns the contentType member.
func (s OutboundRTPStreamStats) ContentType() (string, bool) {
	return s.String("contentType")
}

// EncoderImplementation returns the encoderImplementation member.
func (s OutboundRTPStreamStats) EncoderImplementation() (string, bool) {
	return s.String("encoderImplementation")
}

// RemoteInboundRTPStreamStats is the view of a "remote-inbound-rtp"
// record, built from RTCP receiver reports about a local sender.
type RemoteInboundRTPStreamStats struct{ RTPStreamStats }

// RemoteInboundRTPStreamStatsOf returns r as a RemoteInboundRTPStreamStats, or false unless r is a remote-inbound-rtp record.
func RemoteInboundRTPStreamStatsOf(r *Record) (RemoteInboundRTPStreamStats, bool) {
	if !viewOf(r, TypeRemoteInboundRTP) {
		return RemoteInboundRTPStreamStats{}, false
	}
	return RemoteInboundRTPStreamStats{RTPStreamStats{r}}, true
}

// LocalID returns the localId member.
func (s RemoteInboundRTPStreamStats) LocalID() (string, bool) {
	return s.String("localId")
}

// PacketsLost returns the packetsLost member.
func (s RemoteInboundRTPStreamStats) PacketsLost() (int32, bool) {
	return s.Int32("packetsLost")
}

// Jitter returns the jitter member.
func (s RemoteInboundRTPStreamStats) Jitter() (float64, bool) {
	return s.Double("jitter")
}

// FractionLost returns the fractionLost member.
func (s RemoteInboundRTPStreamStats) FractionLost() (float64, bool) {
	return s.Double("fractionLost")
}

// RoundTripTime returns the roundTripTime member.
func (s RemoteInboundRTPStreamStats) RoundTripTime() (float64, bool) {
	return s.Double("roundTripTime")
}

// TotalRoundTripTime returns the totalRoundTripTime member.
func (s RemoteInboundRTPStreamStats) TotalRoundTripTime() (float64, bool) {
	return s.Double("totalRoundTripTime")
}

// RoundTripTimeMeasurements returns the roundTripTimeMeasurements member.
func (s RemoteInboundRTPStreamStats) RoundTripTimeMeasurements() (int32, bool) {
	return s.Int32("roundTripTimeMeasurements")
}

// RemoteOutboundRTPStreamStats is the view of a "remote-outbound-rtp"
// record, built from RTCP sender reports about a remote sender.
type RemoteOutboundRTPStreamStats struct{ RTPStreamStats }

// RemoteOutboundRTPStreamStatsOf returns r as a RemoteOutboundRTPStreamStats, or false unless r is a remote-outbound-rtp record.
func RemoteOutboundRTPStreamStatsOf(r *Record) (RemoteOutboundRTPStreamStats, bool) {
	if !viewOf(r, TypeRemoteOutboundRTP) {
		return RemoteOutboundRTPStreamStats{}, false
	}
	return RemoteOutboundRTPStreamStats{RTPStreamStats{r}}, true
}

// LocalID returns the localId member.
func (s RemoteOutboundRTPStreamStats) LocalID() (string, bool) {
	return s.String("localId")
}

// RemoteTimestamp is the sender's NTP clock at report time, in
// milliseconds since the Unix epoch.
func (s RemoteOutboundRTPStreamStats) RemoteTimestamp() (float64, bool) {
	return s.Double("remoteTimestamp")
}

// ReportsSent returns the reportsSent member.
func (s RemoteOutboundRTPStreamStats) ReportsSent() (uint64, bool) {
	return s.Uint64("reportsSent")
}

// PacketsSent returns the packetsSent member.
func (s RemoteOutboundRTPStreamStats) PacketsSent() (uint32, bool) {
	return s.Uint32("packetsSent")
}

// BytesSent returns the bytesSent member.
func (s RemoteOutboundRTPStreamStats) BytesSent() (uint64, bool) {
	return s.Uint64("bytesSent")
}

// CSRCStats is the view of a "csrc" (contributing source) record.
type CSRCStats struct{ *Record }

// CSRCStatsOf returns r as a CSRCStats, or false unless r is a csrc record.
func CSRCStatsOf(r *Record) (CSRCStats, bool) {
	if !viewOf(r, TypeCSRC) {
		return CSRCStats{}, false
	}
	return CSRCStats{r}, true
}

// ContributorSSRC returns the contributorSsrc member.
func (s CSRCStats) ContributorSSRC() (uint32, bool) { return s.Uint32("contributorSsrc") }

// InboundRTPStreamID returns the inboundRtpStreamId member.
func (s CSRCStats) InboundRTPStreamID() (string, bool) { return s.String("inboundRtpStreamId") }

// PacketsContributedTo returns the packetsContributedTo member.
func (s CSRCStats) PacketsContributedTo() (uint32, bool) { return s.Uint32("packetsContributedTo") }

// AudioLevel returns the audioLevel member.
func (s CSRCStats) AudioLevel() (float64, bool) { return s.Double("audioLevel") }
