package stats

// MediaSourceStats is the view of a "media-source" record.
type MediaSourceStats struct{ *Record }

// MediaSourceStatsOf returns r as a MediaSourceStats, or false unless r is a media-source record.
func MediaSourceStatsOf(r *Record) (MediaSourceStats, bool) {
	if !viewOf(r, TypeMediaSource) {
		return MediaSourceStats{}, false
	}
	return MediaSourceStats{r}, true
}

// TrackIdentifier returns the trackIdentifier member.
func (s MediaSourceStats) TrackIdentifier() (string, bool) { return s.String("trackIdentifier") }

// Kind returns the kind member.
func (s MediaSourceStats) Kind() (string, bool) { return s.String("kind") }

// AudioLevel returns the audioLevel member.
func (s MediaSourceStats) AudioLevel() (float64, bool) { return s.Double("audioLevel") }

// TotalAudioEnergy returns the totalAudioEnergy member.
func (s MediaSourceStats) TotalAudioEnergy() (float64, bool) { return s.Double("totalAudioEnergy") }

// TotalSamplesDuration returns the totalSamplesDuration member.
func (s MediaSourceStats) TotalSamplesDuration() (float64, bool) { return s.Double("totalSamplesDuration") }

// Width returns the width member.
func (s MediaSourceStats) Width() (uint32, bool) { return s.Uint32("width") }

// Height returns the height member.
func (s MediaSourceStats) Height() (uint32, bool) { return s.Uint32("height") }

// Frames returns the frames member.
func (s MediaSourceStats) Frames() (uint32, bool) { return s.Uint32("frames") }

// FramesPerSecond returns the framesPerSecond member.
func (s MediaSourceStats) FramesPerSecond() (float64, bool) { return s.Double("framesPerSecond") }

// PeerConnectionStats is the view of the "peer-connection" record.
type PeerConnectionStats struct{ *Record }

// PeerConnectionStatsOf returns r as a PeerConnectionStats, or false unless r is a peer-connection record.
func PeerConnectionStatsOf(r *Record) (PeerConnectionStats, bool) {
	if !viewOf(r, TypePeerConnection) {
		return PeerConnectionStats{}, false
	}
	return PeerConnectionStats{r}, true
}

// DataChannelsOpened returns the dataChannelsOpened member.
func (s PeerConnectionStats) DataChannelsOpened() (uint32, bool) {
	return s.Uint32("dataChannelsOpened")
}

// DataChannelsClosed returns the dataChannelsClosed member.
func (s PeerConnectionStats) DataChannelsClosed() (uint32, bool) {
	return s.Uint32("dataChannelsClosed")
}

// DataChannelsRequested returns the dataChannelsRequested member.
func (s PeerConnectionStats) DataChannelsRequested() (uint32, bool) {
	return s.Uint32("dataChannelsRequested")
}

// DataChannelsAccepted returns the dataChannelsAccepted member.
func (s PeerConnectionStats) DataChannelsAccepted() (uint32, bool) {
	return s.Uint32("dataChannelsAccepted")
}

// DataChannelStats is the view of a "data-channel" record.
type DataChannelStats struct{ *Record }

// DataChannelStatsOf returns r as a DataChannelStats, or false unless r is a data-channel record.
func DataChannelStatsOf(r *Record) (DataChannelStats, bool) {
	if !viewOf(r, TypeDataChannel) {
		return DataChannelStats{}, false
	}
	return DataChannelStats{r}, true
}

// Label returns the label member.
func (s DataChannelStats) Label() (string, bool) { return s.String("label") }

// Protocol returns the protocol member.
func (s DataChannelStats) Protocol() (string, bool) { return s.String("protocol") }

// DataChannelIdentifier returns the dataChannelIdentifier member.
func (s DataChannelStats) DataChannelIdentifier() (int32, bool) { return s.Int32("dataChannelIdentifier") }

// State returns the state member.
func (s DataChannelStats) State() (string, bool) { return s.String("state") }

// MessagesSent returns the messagesSent member.
func (s DataChannelStats) MessagesSent() (uint32, bool) { return s.Uint32("messagesSent") }

// BytesSent returns the bytesSent member.
func (s DataChannelStats) BytesSent() (uint64, bool) { return s.Uint64("bytesSent") }

// MessagesReceived returns the messagesReceived member.
func (s DataChannelStats) MessagesReceived() (uint32, bool) { return s.Uint32("messagesReceived") }

// BytesReceived returns the bytesReceived member.
func (s DataChannelStats) BytesReceived() (uint64, bool) { return s.Uint64("bytesReceived") }

// MediaStreamStats is the view of a "stream" record.
type MediaStreamStats struct{ *Record }

// MediaStreamStatsOf returns r as a MediaStreamStats, or false unless r is a stream record.
func MediaStreamStatsOf(r *Record) (MediaStreamStats, bool) {
	if !viewOf(r, TypeStream) {
		return MediaStreamStats{}, false
	}
	return MediaStreamStats{r}, true
}

// StreamIdentifier returns the streamIdentifier member.
func (s MediaStreamStats) StreamIdentifier() (string, bool) { return s.String("streamIdentifier") }

// TrackIDs returns the trackIds member.
func (s MediaStreamStats) TrackIDs() ([]string, bool) { return s.StringArray("trackIds") }

// MediaStreamTrackStats is the view of a "track" record.
type MediaStreamTrackStats struct{ *Record }

// MediaStreamTrackStatsOf returns r as a MediaStreamTrackStats, or false unless r is a track record.
func MediaStreamTrackStatsOf(r *Record) (MediaStreamTrackStats, bool) {
	if !viewOf(r, TypeTrack) {
		return MediaStreamTrackStats{}, false
	}
	return MediaStreamTrackStats{r}, true
}

// TrackIdentifier returns the trackIdentifier member.
func (s MediaStreamTrackStats) TrackIdentifier() (string, bool) { return s.String("trackIdentifier") }

// MediaSourceID returns the mediaSourceId member.
func (s MediaStreamTrackStats) MediaSourceID() (string, bool) { return s.String("mediaSourceId") }

// RemoteSource returns the remoteSource member.
func (s MediaStreamTrackStats) RemoteSource() (bool, bool) { return s.Bool("remoteSource") }

// Ended returns the ended member.
func (s MediaStreamTrackStats) Ended() (bool, bool) { return s.Bool("ended") }

// Detached returns the detached member.
func (s MediaStreamTrackStats) Detached() (bool, bool) { return s.Bool("detached") }

// Kind returns the kind member.
func (s MediaStreamTrackStats) Kind() (string, bool) { return s.String("kind") }

// FrameWidth returns the frameWidth member.
func (s MediaStreamTrackStats) FrameWidth() (uint32, bool) { return s.Uint32("frameWidth") }

// FrameHeight returns the frameHeight member.
func (s MediaStreamTrackStats) FrameHeight() (uint32, bool) { return s.Uint32("frameHeight") }

// FramesPerSecond returns the framesPerSecond member.
func (s MediaStreamTrackStats) FramesPerSecond() (float64, bool) {
	return s.Double("framesPerSecond")
}

// FramesSent returns the framesSent member.
func (s MediaStreamTrackStats) FramesSent() (uint32, bool) { return s.Uint32("framesSent") }

// HugeFramesSent returns the hugeFramesSent member.
func (s MediaStreamTrackStats) HugeFramesSent() (uint32, bool) { return s.Uint32("hugeFramesSent") }

// FramesReceived returns the framesReceived member.
func (s MediaStreamTrackStats) FramesReceived() (uint32, bool) { return s.Uint32("framesReceived") }

// FramesDecoded returns the framesDecoded member.
func (s MediaStreamTrackStats) FramesDecoded() (uint32, bool) { return s.Uint32("framesDecoded") }

// FramesDropped returns the framesDropped member.
func (s MediaStreamTrackStats) FramesDropped() (uint32, bool) { return s.Uint32("framesDropped") }

// FramesCorrupted returns the framesCorrupted member.
func (s MediaStreamTrackStats) FramesCorrupted() (uint32, bool) { return s.Uint32("framesCorrupted") }

// PartialFramesLost returns the partialFramesLost member.
func (s MediaStreamTrackStats) PartialFramesLost() (uint32, bool) {
	return s.Uint32("partialFramesLost")
}

// FullFramesLost returns the fullFramesLost member.
func (s MediaStreamTrackStats) FullFramesLost() (uint32, bool) {
	return s.Uint32("fullFramesLost")
}

// JitterBufferDelay returns the jitterBufferDelay member.
func (s MediaStreamTrackStats) JitterBufferDelay() (float64, bool) {
	return s.Double("jitterBufferDelay")
}

// JitterBufferEmittedCount returns the jitterBufferEmittedCount member.
func (s MediaStreamTrackStats) JitterBufferEmittedCount() (uint64, bool) {
	return s.Uint64("jitterBufferEmittedCount")
}

// AudioLevel returns the audioLevel member.
func (s MediaStreamTrackStats) AudioLevel() (float64, bool) {
	return s.Double("audioLevel")
}

// TotalAudioEnergy returns the totalAudioEnergy member.
func (s MediaStreamTrackStats) TotalAudioEnergy() (float64, bool) {
	return s.Double("totalAudioEnergy")
}

// EchoReturnLoss returns the echoReturnLoss member.
func (s MediaStreamTrackStats) EchoReturnLoss() (float64, bool) {
	return s.Double("echoReturnLoss")
}

// EchoReturnLossEnhancement returns the echoReturnLossEnhancement member.
func (s MediaStreamTrackStats) EchoReturnLossEnhancement() (float64, bool) {
	return s.Double("echoReturnLossEnhancement")
}

// TotalSamplesReceived returns the totalSamplesReceived member.
func (s MediaStreamTrackStats) TotalSamplesReceived() (uint64, bool) {
	return s.Uint64("totalSamplesReceived")
}

// TotalSamplesDuration returns the totalSamplesDuration member.
func (s MediaStreamTrackStats) TotalSamplesDuration() (float64, bool) {
	return s.Double("totalSamplesDuration")
}

// ConcealedSamples returns the concealedSamples member.
func (s MediaStreamTrackStats) ConcealedSamples() (uint64, bool) {
	return s.Uint64("concealedSamples")
}

// SilentConcealedSamples returns the silentConcealedSamples member.
func (s MediaStreamTrackStats) SilentConcealedSamples() (uint64, bool) {
	return s.Uint64("silentConcealedSamples")
}

// ConcealmentEvents returns the concealmentEvents member.
func (s MediaStreamTrackStats) ConcealmentEvents() (uint64, bool) {
	return s.Uint64("concealmentEvents")
}

// InsertedSamplesForDeceleration returns the insertedSamplesForDeceleration member.
func (s MediaStreamTrackStats) InsertedSamplesForDeceleration() (uint64, bool) {
	return s.Uint64("insertedSamplesForDeceleration")
}

// RemovedSamplesForAcceleration returns the removedSamplesForAcceleration member.
func (s MediaStreamTrackStats) RemovedSamplesForAcceleration() (uint64, bool) {
	return s.Uint64("removedSamplesForAcceleration")
}

// JitterBufferFlushes returns the jitterBufferFlushes member.
func (s MediaStreamTrackStats) JitterBufferFlushes() (uint64, bool) {
	return s.Uint64("jitterBufferFlushes")
}

// DelayedPacketOutageSamples returns the delayedPacketOutageSamples member.
func (s MediaStreamTrackStats) DelayedPacketOutageSamples() (uint64, bool) {
	return s.Uint64("delayedPacketOutageSamples")
}

// RelativePacketArrivalDelay returns the relativePacketArrivalDelay member.
func (s MediaStreamTrackStats) RelativePacketArrivalDelay() (float64, bool) {
	return s.Double("relativePacketArrivalDelay")
}

// InterruptionCount returns the interruptionCount member.
func (s MediaStreamTrackStats) InterruptionCount() (uint32, bool) {
	return s.Uint32("interruptionCount")
}

// TotalInterruptionDuration returns the totalInterruptionDuration member.
func (s MediaStreamTrackStats) TotalInterruptionDuration() (float64, bool) {
	return s.Double("totalInterruptionDuration")
}

// FreezeCount returns the freezeCount member.
func (s MediaStreamTrackStats) FreezeCount() (uint32, bool) {
	return s.Uint32("freezeCount")
}

// PauseCount returns the pauseCount member.
func (s MediaStreamTrackStats) PauseCount() (uint32, bool) {
	return s.Uint32("pauseCount")
}

// TotalFreezesDuration returns the totalFreezesDuration member.
func (s MediaStreamTrackStats) TotalFreezesDuration() (float64, bool) {
	return s.Double("totalFreezesDuration")
}

// TotalPausesDuration returns the totalPausesDuration member.
func (s MediaStreamTrackStats) TotalPausesDuration() (float64, bool) {
	return s.Double("totalPausesDuration")
}

// TotalFramesDuration returns the totalFramesDuration member.
func (s MediaStreamTrackStats) TotalFramesDuration() (float64, bool) {
	return s.Double("totalFramesDuration")
}

// SumOfSquaredFramesDuration returns the sumOfSquaredFramesDuration member.
func (s MediaStreamTrackStats) SumOfSquaredFramesDuration() (float64, bool) {
	return s.Double("sumOfSquaredFramesDuration")
}

// TransceiverStats is the view of a "transceiver" record.
type TransceiverStats struct{ *Record }

// TransceiverStatsOf returns r as a TransceiverStats, or false unless r is a transceiver record.
func TransceiverStatsOf(r *Record) (TransceiverStats, bool) {
	if !viewOf(r, TypeTransceiver) {
		return TransceiverStats{}, false
	}
	return TransceiverStats{r}, true
}

// SenderID returns the senderId member.
func (s TransceiverStats) SenderID() (string, bool) { return s.String("senderId") }

// ReceiverID returns the receiverId member.
func (s TransceiverStats) ReceiverID() (string, bool) { return s.String("receiverId") }

// Mid returns the mid member.
func (s TransceiverStats) Mid() (string, bool) { return s.String("mid") }

// SenderStats is the view of a "sender" record.
type SenderStats struct{ *Record }

// SenderStatsOf returns r as a SenderStats, or false unless r is a sender record.
func SenderStatsOf(r *Record) (SenderStats, bool) {
	if !viewOf(r, TypeSender) {
		return SenderStats{}, false
	}
	return SenderStats{r}, true
}

// MediaSourceID returns the mediaSourceId member.
func (s SenderStats) MediaSourceID() (string, bool) { return s.String("mediaSourceId") }

// TrackIdentifier returns the trackIdentifier member.
func (s SenderStats) TrackIdentifier() (string, bool) { return s.String("trackIdentifier") }

// Kind returns the kind member.
func (s SenderStats) Kind() (string, bool) { return s.String("kind") }

// Ended returns the ended member.
func (s SenderStats) Ended() (bool, bool) { return s.Bool("ended") }

// ReceiverStats is the view of a "receiver" record.
type ReceiverStats struct{ *Record }

// ReceiverStatsOf returns r as a ReceiverStats, or false unless r is a receiver record.
func ReceiverStatsOf(r *Record) (ReceiverStats, bool) {
	if !viewOf(r, TypeReceiver) {
		return ReceiverStats{}, false
	}
	return ReceiverStats{r}, true
}

// TrackIdentifier returns the trackIdentifier member.
func (s ReceiverStats) TrackIdentifier() (string, bool) { return s.String("trackIdentifier") }

// Kind returns the kind member.
func (s ReceiverStats) Kind() (string, bool) { return s.String("kind") }

// Ended returns the ended member.
func (s ReceiverStats) Ended() (bool, bool) { return s.Bool("ended") }
