package apu

var dutyTable = [4]uint8{
	0b01000000,
	0b01100000,
	0b01111000,
	0b10011111,
}

// Pulse is one of the two square wave channels. Its timer is clocked every
// other CPU cycle by the APU.
type Pulse struct {
	Envelope Envelope
	Length   LengthCounter
	Sweep    Sweeper

	duty      uint8
	dutyIndex uint8
	period    uint16
	timer     uint16
}

// NewPulse returns pulse channel 1 or 2. Channel 1 negates its sweep with
// one's complement.
func NewPulse(channel int) *Pulse {
	return &Pulse{
		Sweep: NewSweeper(channel == 1),
	}
}

// Write handles the four channel registers, reg being the offset from the
// channel's base address.
func (p *Pulse) Write(reg uint16, data uint8) {
	switch reg & 0x03 {
	case 0:
		p.duty = data >> 6
		p.Length.Halt = data&0x20 != 0
		p.Envelope.Write(data)
	case 1:
		p.Sweep.Write(data)
	case 2:
		p.setPeriod((p.period & 0x0700) | uint16(data))
	case 3:
		p.setPeriod((uint16(data&0x07) << 8) | (p.period & 0x00FF))
		p.Length.Load(data >> 3)
		p.Envelope.Start = true
		p.dutyIndex = 0
	}
}

func (p *Pulse) setPeriod(period uint16) {
	p.period = period & 0x07FF
	if p.timer > p.period {
		p.timer = p.period
	}
	p.Sweep.UpdateChannelPeriod(p.period)
}

func (p *Pulse) Clock() {
	if p.timer == 0 {
		p.timer = p.period
		p.dutyIndex = (p.dutyIndex + 1) & 0x07
		return
	}
	p.timer--
}

func (p *Pulse) clockSweep() {
	p.setPeriod(p.Sweep.Clock(p.period))
}

func (p *Pulse) Period() uint16 {
	return p.period
}

func (p *Pulse) Output() uint8 {
	if !p.Length.Active() || p.period < 8 || p.Sweep.Muted() {
		return 0
	}
	if dutyTable[p.duty]&(0x80>>p.dutyIndex) == 0 {
		return 0
	}
	return p.Envelope.Output()
}
