package apu

var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6,
	160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22,
	192, 24, 72, 26, 16, 28, 32, 30,
}

// LengthCounter silences a channel once the duration loaded from
// lengthTable has elapsed. It is clocked on every half frame.
type LengthCounter struct {
	Halt bool

	enabled bool
	counter uint8
}

// Load is ignored while the channel is disabled through $4015.
func (l *LengthCounter) Load(index uint8) {
	if !l.enabled {
		return
	}
	l.counter = lengthTable[index&0x1F]
}

func (l *LengthCounter) Clock() {
	if l.counter > 0 && !l.Halt {
		l.counter--
	}
}

// SetEnabled false clears the counter immediately and keeps it at zero until
// the channel is enabled again.
func (l *LengthCounter) SetEnabled(enabled bool) {
	l.enabled = enabled
	if !enabled {
		l.counter = 0
	}
}

func (l *LengthCounter) Enabled() bool {
	return l.enabled
}

func (l *LengthCounter) Active() bool {
	return l.counter > 0
}

func (l *LengthCounter) Value() uint8 {
	return l.counter
}
