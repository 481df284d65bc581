package rtpstats

import (
	"time"

	"github.com/pion/rtcp"
)

// ntpEpochOffset is the number of seconds from 1900 to 1970.
const ntpEpochOffset = 2208988800

func toNTP(t time.Time) uint64 {
	secs := uint64(t.Unix()) + ntpEpochOffset
	frac := uint64(t.Nanosecond()) << 32 / uint64(time.Second)
	return secs<<32 | frac
}

func fromNTP(ntp uint64) time.Time {
	secs := int64(ntp>>32) - ntpEpochOffset
	nanos := (ntp & 0xFFFFFFFF) * uint64(time.Second) >> 32
	return time.Unix(secs, int64(nanos))
}

// compactNTP keeps the middle 32 bits, as carried in LSR.
func compactNTP(ntp uint64) uint32 {
	return uint32(ntp >> 16)
}

// compactDuration converts d to units of 1/65536 seconds, as carried in
// DLSR.
func compactDuration(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	return uint32(uint64(d) << 16 / uint64(time.Second))
}

// roundTripTime computes A - LSR - DLSR for a report block received at at.
func roundTripTime(rr rtcp.ReceptionReport, at time.Time) (time.Duration, bool) {
	if rr.LastSenderReport == 0 {
		return 0, false
	}
	rtt := compactNTP(toNTP(at)) - rr.LastSenderReport - rr.Delay
	if int32(rtt) < 0 {
		return 0, false
	}
	return time.Duration(uint64(rtt) * uint64(time.Second) >> 16), true
}
