package apu

var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// Triangle steps through a fixed 32 step ramp. The sequencer only advances
// while both the linear counter and the length counter are non-zero.
type Triangle struct {
	Length LengthCounter

	control       bool
	linearPeriod  uint8
	linearCounter uint8
	linearReload  bool

	step   uint8
	period uint16
	timer  uint16
}

func (t *Triangle) Write(reg uint16, data uint8) {
	switch reg & 0x03 {
	case 0:
		t.control = data&0x80 != 0
		t.Length.Halt = t.control
		t.linearPeriod = data & 0x7F
	case 2:
		t.setPeriod((t.period & 0x0700) | uint16(data))
	case 3:
		t.setPeriod((uint16(data&0x07) << 8) | (t.period & 0x00FF))
		t.Length.Load(data >> 3)
		t.linearReload = true
	}
}

func (t *Triangle) setPeriod(period uint16) {
	t.period = period & 0x07FF
	if t.timer > t.period {
		t.timer = t.period
	}
}

func (t *Triangle) Clock() {
	if t.timer == 0 {
		t.timer = t.period
		if t.linearCounter > 0 && t.Length.Active() {
			t.step = (t.step + 1) & 0x1F
		}
		return
	}
	t.timer--
}

// ClockLinearCounter is called on every quarter frame.
func (t *Triangle) ClockLinearCounter() {
	if t.linearReload {
		t.linearCounter = t.linearPeriod
	} else if t.linearCounter > 0 {
		t.linearCounter--
	}
	if !t.control {
		t.linearReload = false
	}
}

func (t *Triangle) LinearCounter() uint8 {
	return t.linearCounter
}

func (t *Triangle) Output() uint8 {
	if !t.Length.Active() {
		return 0
	}
	return triangleTable[t.step]
}
