// Package apu emulates the NES audio processing unit: two pulse channels, a
// triangle, a noise channel and the delta modulation channel, the frame
// sequencer that drives their envelopes, sweeps and counters, and the
// non-linear mixer.
package apu

// number of CPU cycles between frame sequencer steps
const frameStepCycles = 7457

type APU struct {
	Pulse1   *Pulse
	Pulse2   *Pulse
	Triangle *Triangle
	Noise    *Noise
	DMC      *DMC

	clockCounter uint64
	frameCounter uint32
	step         uint8
	fiveStep     bool
	irqInhibit   bool
	frameIRQ     bool

	quarterFrames uint64
	halfFrames    uint64

	accum      float64
	accumCount int
	filter     HighPass
}

// Stats is a snapshot of the APU used for display.
type Stats struct {
	Cycles        uint64
	QuarterFrames uint64
	HalfFrames    uint64
	FiveStep      bool
	Outputs       [5]uint8
}

// New creates an APU. read is used by the DMC to fetch sample bytes.
func New(read ReadFunc) *APU {
	a := &APU{
		Pulse1:   NewPulse(1),
		Pulse2:   NewPulse(2),
		Triangle: &Triangle{},
		Noise:    NewNoise(),
		DMC:      NewDMC(read),
		filter:   NewHighPass(),
	}
	return a
}

func (a *APU) Reset() {
	a.Pulse1 = NewPulse(1)
	a.Pulse2 = NewPulse(2)
	a.Triangle = &Triangle{}
	a.Noise = NewNoise()
	a.DMC.Reset()

	a.clockCounter = 0
	a.frameCounter = 0
	a.step = 0
	a.fiveStep = false
	a.irqInhibit = false
	a.frameIRQ = false
	a.quarterFrames = 0
	a.halfFrames = 0
	a.accum = 0
	a.accumCount = 0
	a.filter.Reset()
}

// Clock advances the APU by one CPU cycle.
func (a *APU) Clock() {
	a.frameCounter++
	if a.frameCounter == frameStepCycles {
		a.frameCounter = 0
		a.sequence()
	}

	if a.clockCounter%2 == 0 {
		a.Pulse1.Clock()
		a.Pulse2.Clock()
	}
	a.Triangle.Clock()
	a.Noise.Clock()
	a.DMC.Clock()

	a.accum += a.GetSample()
	a.accumCount++

	a.clockCounter++
}

func (a *APU) sequence() {
	quarter := false
	half := false

	if a.fiveStep {
		switch a.step {
		case 0, 2:
			quarter = true
		case 1, 4:
			quarter = true
			half = true
		}
		a.step = (a.step + 1) % 5
	} else {
		switch a.step {
		case 0, 2:
			quarter = true
		case 1:
			quarter = true
			half = true
		case 3:
			quarter = true
			half = true
			if !a.irqInhibit {
				a.frameIRQ = true
			}
		}
		a.step = (a.step + 1) % 4
	}

	if quarter {
		a.quarterFrame()
	}
	if half {
		a.halfFrame()
	}
}

func (a *APU) quarterFrame() {
	a.quarterFrames++
	a.Pulse1.Envelope.Clock()
	a.Pulse2.Envelope.Clock()
	a.Noise.Envelope.Clock()
	a.Triangle.ClockLinearCounter()
}

func (a *APU) halfFrame() {
	a.halfFrames++
	a.Pulse1.Length.Clock()
	a.Pulse2.Length.Clock()
	a.Triangle.Length.Clock()
	a.Noise.Length.Clock()
	a.Pulse1.clockSweep()
	a.Pulse2.clockSweep()
}

// CpuWrite handles a write to one of the APU registers. Writes to addresses
// the APU does not own are ignored.
func (a *APU) CpuWrite(addr uint16, data uint8) {
	switch {
	case addr >= 0x4000 && addr <= 0x4003:
		a.Pulse1.Write(addr-0x4000, data)
	case addr >= 0x4004 && addr <= 0x4007:
		a.Pulse2.Write(addr-0x4004, data)
	case addr >= 0x4008 && addr <= 0x400B:
		a.Triangle.Write(addr-0x4008, data)
	case addr >= 0x400C && addr <= 0x400F:
		a.Noise.Write(addr-0x400C, data)
	case addr >= 0x4010 && addr <= 0x4013:
		a.DMC.Write(addr-0x4010, data)
	case addr == 0x4015:
		a.Pulse1.Length.SetEnabled(data&0x01 != 0)
		a.Pulse2.Length.SetEnabled(data&0x02 != 0)
		a.Triangle.Length.SetEnabled(data&0x04 != 0)
		a.Noise.Length.SetEnabled(data&0x08 != 0)
		a.DMC.SetEnabled(data&0x10 != 0)
		a.DMC.ClearIRQ()
	case addr == 0x4017:
		a.fiveStep = data&0x80 != 0
		a.irqInhibit = data&0x40 != 0
		if a.irqInhibit {
			a.frameIRQ = false
		}
		a.frameCounter = 0
		a.step = 0
		if a.fiveStep {
			a.quarterFrame()
			a.halfFrame()
		}
	}
}

// CpuRead returns the status register for $4015 and clears the frame
// interrupt. Every other address reads as zero.
func (a *APU) CpuRead(addr uint16) uint8 {
	if addr != 0x4015 {
		return 0x00
	}

	status := uint8(0)
	if a.Pulse1.Length.Active() {
		status |= 0x01
	}
	if a.Pulse2.Length.Active() {
		status |= 0x02
	}
	if a.Triangle.Length.Active() {
		status |= 0x04
	}
	if a.Noise.Length.Active() {
		status |= 0x08
	}
	if a.DMC.Active() {
		status |= 0x10
	}
	if a.frameIRQ {
		status |= 0x40
	}
	if a.DMC.IRQ() {
		status |= 0x80
	}

	a.frameIRQ = false
	return status
}

// IRQ reports whether the frame sequencer or the DMC is asserting the
// interrupt line.
func (a *APU) IRQ() bool {
	return a.frameIRQ || a.DMC.IRQ()
}

// GetSample returns the instantaneous mixer output.
func (a *APU) GetSample() float64 {
	return Mix(a.Pulse1.Output(), a.Pulse2.Output(), a.Triangle.Output(), a.Noise.Output(), a.DMC.Output())
}

// Sample returns the average of the mixer output over the cycles clocked
// since the previous call, passed through the high-pass filter.
func (a *APU) Sample() float32 {
	x := a.GetSample()
	if a.accumCount > 0 {
		x = a.accum / float64(a.accumCount)
	}
	a.accum = 0
	a.accumCount = 0
	return float32(a.filter.Filter(x))
}

func (a *APU) Stats() Stats {
	return Stats{
		Cycles:        a.clockCounter,
		QuarterFrames: a.quarterFrames,
		HalfFrames:    a.halfFrames,
		FiveStep:      a.fiveStep,
		Outputs: [5]uint8{
			a.Pulse1.Output(),
			a.Pulse2.Output(),
			a.Triangle.Output(),
			a.Noise.Output(),
			a.DMC.Output(),
		},
	}
}
