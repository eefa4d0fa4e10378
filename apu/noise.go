package apu

var noiseTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// Noise produces pseudo-random output from a 15 bit linear feedback shift
// register. Mode 1 taps bit 6 instead of bit 1, giving a short, metallic
// sequence.
type Noise struct {
	Envelope Envelope
	Length   LengthCounter

	mode   bool
	shift  uint16
	period uint16
	timer  uint16
}

func NewNoise() *Noise {
	return &Noise{
		shift:  1,
		period: noiseTable[0] - 1,
	}
}

func (n *Noise) Write(reg uint16, data uint8) {
	switch reg & 0x03 {
	case 0:
		n.Length.Halt = data&0x20 != 0
		n.Envelope.Write(data)
	case 2:
		n.mode = data&0x80 != 0
		n.period = noiseTable[data&0x0F] - 1
		if n.timer > n.period {
			n.timer = n.period
		}
	case 3:
		n.Length.Load(data >> 3)
		n.Envelope.Start = true
	}
}

func (n *Noise) Clock() {
	if n.timer > 0 {
		n.timer--
		return
	}
	n.timer = n.period

	tap := uint16(1)
	if n.mode {
		tap = 6
	}
	feedback := (n.shift & 0x01) ^ ((n.shift >> tap) & 0x01)
	n.shift = (n.shift >> 1) | (feedback << 14)
}

func (n *Noise) Output() uint8 {
	if !n.Length.Active() || n.shift&0x01 == 1 {
		return 0
	}
	return n.Envelope.Output()
}
