package apu

// Envelope generates the volume for the pulse and noise channels. It either
// outputs a constant volume or a sawtooth decaying from 15 to 0, optionally
// looping.
type Envelope struct {
	Start          bool
	Loop           bool
	ConstantVolume bool
	VolumePeriod   uint8

	decay   uint8
	divider uint8
}

// Write loads the envelope fields of the channel's first register.
func (e *Envelope) Write(data uint8) {
	e.Loop = data&0x20 != 0
	e.ConstantVolume = data&0x10 != 0
	e.VolumePeriod = data & 0x0F
}

// Clock is called on every quarter frame.
func (e *Envelope) Clock() {
	if e.Start {
		e.Start = false
		e.decay = 15
		e.divider = e.VolumePeriod
		return
	}

	if e.divider > 0 {
		e.divider--
		return
	}

	e.divider = e.VolumePeriod
	if e.decay > 0 {
		e.decay--
	} else if e.Loop {
		e.decay = 15
	}
}

func (e *Envelope) Output() uint8 {
	if e.ConstantVolume {
		return e.VolumePeriod
	}
	return e.decay
}

func (e *Envelope) Decay() uint8 {
	return e.decay
}
