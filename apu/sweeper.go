package apu

// Sweeper periodically adjusts the period of a pulse channel. The two pulse
// channels differ only in how a negative change is applied: pulse 1 uses
// one's complement (an extra -1), pulse 2 uses two's complement.
type Sweeper struct {
	Enabled bool
	Negate  bool
	Period  uint8
	Shift   uint8

	onesComplement bool
	reload         bool
	divider        uint8
	channelPeriod  uint16
	target         uint16
	muted          bool
}

func NewSweeper(onesComplement bool) Sweeper {
	return Sweeper{onesComplement: onesComplement}
}

// Write loads the sweep register ($4001/$4005) and sets the reload flag.
func (s *Sweeper) Write(data uint8) {
	s.Enabled = data&0x80 != 0
	s.Period = (data >> 4) & 0x07
	s.Negate = data&0x08 != 0
	s.Shift = data & 0x07
	s.reload = true
	s.update()
}

// UpdateChannelPeriod feeds the sweeper the channel's current timer period
// and recomputes the target period and mute flag.
func (s *Sweeper) UpdateChannelPeriod(period uint16) {
	s.channelPeriod = period
	s.update()
}

func (s *Sweeper) update() {
	change := int(s.channelPeriod >> s.Shift)
	target := int(s.channelPeriod)
	if s.Negate {
		target -= change
		if s.onesComplement {
			target--
		}
		if target < 0 {
			target = 0
		}
	} else {
		target += change
	}
	s.target = uint16(target)
	s.muted = s.channelPeriod < 8 || (!s.Negate && target > 0x7FF)
}

// Clock is called on every half frame and returns the period the channel
// should use from now on.
func (s *Sweeper) Clock(period uint16) uint16 {
	s.UpdateChannelPeriod(period)

	if s.divider == 0 && s.Enabled && !s.muted && s.Shift > 0 {
		period = s.target
	}

	if s.reload || s.divider == 0 {
		s.divider = s.Period
		s.reload = false
	} else {
		s.divider--
	}

	return period
}

func (s *Sweeper) TargetPeriod() uint16 {
	return s.target
}

func (s *Sweeper) Muted() bool {
	return s.muted
}
