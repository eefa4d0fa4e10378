package apu

var dmcRateTable = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}

// ReadFunc reads a byte from the CPU address space. The DMC uses it to fetch
// sample bytes from the cartridge.
type ReadFunc func(addr uint16) uint8

// DMC plays 1-bit delta encoded samples fetched from CPU memory.
type DMC struct {
	IRQEnabled bool
	Loop       bool

	read ReadFunc

	rate  uint16
	timer uint16

	sampleAddress  uint16
	sampleLength   uint16
	currentAddress uint16
	bytesRemaining uint16

	buffer      uint8
	bufferEmpty bool

	shifter       uint8
	bitsRemaining uint8
	silence       bool

	output uint8
	irq    bool
}

func NewDMC(read ReadFunc) *DMC {
	d := &DMC{read: read}
	d.Reset()
	return d
}

func (d *DMC) Reset() {
	*d = DMC{
		read:          d.read,
		rate:          dmcRateTable[0] - 1,
		sampleAddress: 0xC000,
		sampleLength:  1,
		bufferEmpty:   true,
		bitsRemaining: 8,
		silence:       true,
	}
}

func (d *DMC) Write(reg uint16, data uint8) {
	switch reg & 0x03 {
	case 0:
		d.IRQEnabled = data&0x80 != 0
		if !d.IRQEnabled {
			d.irq = false
		}
		d.Loop = data&0x40 != 0
		d.rate = dmcRateTable[data&0x0F] - 1
		if d.timer > d.rate {
			d.timer = d.rate
		}
	case 1:
		d.output = data & 0x7F
	case 2:
		d.sampleAddress = 0xC000 | (uint16(data) << 6)
	case 3:
		d.sampleLength = (uint16(data) << 4) | 0x0001
	}
}

// SetEnabled handles bit 4 of $4015. Enabling restarts the sample only when
// the previous one has finished.
func (d *DMC) SetEnabled(enabled bool) {
	if !enabled {
		d.bytesRemaining = 0
		return
	}
	if d.bytesRemaining == 0 {
		d.restart()
	}
}

func (d *DMC) restart() {
	d.currentAddress = d.sampleAddress
	d.bytesRemaining = d.sampleLength
}

func (d *DMC) Clock() {
	if d.bufferEmpty && d.bytesRemaining > 0 {
		d.fetch()
	}

	if d.timer > 0 {
		d.timer--
		return
	}
	d.timer = d.rate
	d.clockOutput()
}

func (d *DMC) fetch() {
	if d.read != nil {
		d.buffer = d.read(d.currentAddress)
	}
	d.bufferEmpty = false

	if d.currentAddress == 0xFFFF {
		d.currentAddress = 0x8000
	} else {
		d.currentAddress++
	}

	d.bytesRemaining--
	if d.bytesRemaining == 0 {
		if d.Loop {
			d.restart()
		} else if d.IRQEnabled {
			d.irq = true
		}
	}
}

func (d *DMC) clockOutput() {
	if !d.silence {
		if d.shifter&0x01 != 0 {
			if d.output <= 125 {
				d.output += 2
			}
		} else if d.output >= 2 {
			d.output -= 2
		}
	}
	d.shifter >>= 1

	d.bitsRemaining--
	if d.bitsRemaining > 0 {
		return
	}
	d.bitsRemaining = 8
	if d.bufferEmpty {
		d.silence = true
		return
	}
	d.silence = false
	d.shifter = d.buffer
	d.bufferEmpty = true
}

func (d *DMC) Output() uint8 {
	return d.output
}

// Active reports whether sample bytes remain to be fetched.
func (d *DMC) Active() bool {
	return d.bytesRemaining > 0
}

func (d *DMC) BytesRemaining() uint16 {
	return d.bytesRemaining
}

func (d *DMC) Address() uint16 {
	return d.currentAddress
}

func (d *DMC) IRQ() bool {
	return d.irq
}

func (d *DMC) ClearIRQ() {
	d.irq = false
}
