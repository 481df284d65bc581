package rtpstats

// sequence extends 16-bit RTP sequence numbers across wrap-around. The
// cycle count starts at one so that packets reordered before the first
// sequence number stay representable.
type sequence struct {
	initialized bool
	cycles      uint64
	highest     uint16
	start       uint64
}

// update records sn and returns its extended value.
func (s *sequence) update(sn uint16) uint64 {
	if !s.initialized {
		s.initialized = true
		s.cycles = 1
		s.highest = sn
		s.start = s.extend(sn)
		return s.start
	}

	gap := sn - s.highest
	if gap == 0 || gap > 1<<15 {
		// duplicate or out of order
		ext := s.extend(sn)
		if sn > s.highest {
			ext -= 1 << 16
		}
		if ext < s.start {
			s.start = ext
		}
		return ext
	}

	if sn < s.highest {
		s.cycles++
	}
	s.highest = sn
	return s.extend(sn)
}

func (s *sequence) extend(sn uint16) uint64 {
	return s.cycles<<16 | uint64(sn)
}

func (s *sequence) extendedHighest() uint64 {
	return s.extend(s.highest)
}

// expected is the number of packets between the lowest and highest
// sequence numbers seen.
func (s *sequence) expected() uint64 {
	if !s.initialized {
		return 0
	}
	return s.extendedHighest() - s.start + 1
}

// reportedHighest is the extended highest sequence number as carried in a
// reception report, whose cycle count starts at zero.
func (s *sequence) reportedHighest() uint32 {
	if !s.initialized {
		return 0
	}
	return uint32(s.extendedHighest() - 1<<16)
}
