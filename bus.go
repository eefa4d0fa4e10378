package main

import (
	"nes-core/apu"
	"nes-core/audio"
	"nes-core/logger"
	"nes-core/register"
)

// NTSC CPU clock
const cpuClockRate = 1789773.0

const (
	dotsPerScanline   = 341
	scanlinesPerFrame = 262
	visibleScanlines  = 240
)

type Bus struct {
	systemClockCounter uint64
	cpuRam             []uint8
	apu                *apu.APU
	cartridge          *Cartridge

	sink               audio.Sink
	audioTime          float64
	audioTimePerCycle  float64
	audioTimePerSample float64

	// the picture unit is not emulated. the bus counts dots itself so that
	// the mapper sees one tick per visible scanline
	ppuDot       int
	scanline     int
	renderingIRQ bool

	irqLine  bool
	irqCount uint64

	traceWrites bool
}

func NewBus(sink audio.Sink, sampleRate int) *Bus {
	bus := &Bus{
		cpuRam:             make([]uint8, 2048),
		sink:               sink,
		audioTimePerCycle:  1.0 / cpuClockRate,
		audioTimePerSample: 1.0 / float64(sampleRate),
	}
	bus.apu = apu.New(bus.dmcRead)
	return bus
}

func (b *Bus) dmcRead(addr uint16) uint8 {
	return b.cpuRead(addr)
}

func (b *Bus) cpuWrite(addr uint16, data uint8) {
	if b.cartridge != nil && b.cartridge.cpuWrite(addr, data) {

	} else if addr <= 0x1FFF {
		b.cpuRam[addr&0x07FF] = data
	} else if (addr >= 0x4000 && addr <= 0x4013) || addr == 0x4015 || addr == 0x4017 {
		if b.traceWrites {
			logger.Logf("apu", "%d: %s", b.systemClockCounter, register.Describe(addr, data))
		}
		b.apu.CpuWrite(addr, data)
	}
}

func (b *Bus) cpuRead(addr uint16) uint8 {
	data := uint8(0)
	if b.cartridge != nil && b.cartridge.cpuRead(addr, &data) {

	} else if addr <= 0x1FFF {
		data = b.cpuRam[addr&0x07FF]
	} else if addr == 0x4015 {
		data = b.apu.CpuRead(addr)
	}
	return data
}

func (b *Bus) insertCartridge(cartridge *Cartridge) {
	b.cartridge = cartridge
}

func (b *Bus) reset() {
	if b.cartridge != nil {
		b.cartridge.reset()
	}
	b.apu.Reset()
	b.systemClockCounter = 0
	b.audioTime = 0
	b.ppuDot = 0
	b.scanline = 0
	b.irqLine = false
	logger.Log("bus", "reset")
}

// clock advances the system by one CPU cycle.
func (b *Bus) clock() {
	b.apu.Clock()

	b.audioTime += b.audioTimePerCycle
	if b.audioTime >= b.audioTimePerSample {
		b.audioTime -= b.audioTimePerSample
		if b.sink != nil {
			b.sink.PushSample(b.apu.Sample())
		}
	}

	b.ppuDot += 3
	if b.ppuDot >= dotsPerScanline {
		b.ppuDot -= dotsPerScanline
		if b.renderingIRQ && b.cartridge != nil && b.scanline < visibleScanlines {
			b.cartridge.scanline()
		}
		b.scanline = (b.scanline + 1) % scanlinesPerFrame
	}

	irq := b.irq()
	if irq && !b.irqLine {
		b.irqCount++
	}
	b.irqLine = irq

	b.systemClockCounter++
}

// irq is the state of the CPU's interrupt line.
func (b *Bus) irq() bool {
	if b.apu.IRQ() {
		return true
	}
	return b.cartridge != nil && b.cartridge.irqState()
}
