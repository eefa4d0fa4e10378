package mapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cpuRead(t *testing.T, m Mapper, addr uint16) uint32 {
	t.Helper()
	var mapped uint32
	var data uint8
	require.True(t, m.CpuMapRead(addr, &mapped, &data), "read $%04x not handled", addr)
	return mapped
}

func cpuWrite(t *testing.T, m Mapper, addr uint16, data uint8) uint32 {
	t.Helper()
	var mapped uint32
	require.True(t, m.CpuMapWrite(addr, &mapped, data), "write $%04x not handled", addr)
	return mapped
}

func ppuRead(t *testing.T, m Mapper, addr uint16) uint32 {
	t.Helper()
	var mapped uint32
	require.True(t, m.PpuMapRead(addr, &mapped), "ppu read $%04x not handled", addr)
	return mapped
}

func TestNew(t *testing.T) {
	for _, id := range []uint8{0, 2, 3, 4} {
		m, err := New(id, 2, 1)
		require.NoError(t, err)
		require.NotNil(t, m)
	}

	_, err := New(1, 2, 1)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestMapper0000Mirroring(t *testing.T) {
	m, _ := New(0, 1, 1)

	assert.Equal(t, cpuRead(t, m, 0x8000), cpuRead(t, m, 0xC000))
	assert.Equal(t, cpuRead(t, m, 0x8000), cpuWrite(t, m, 0xC000, 0))
	assert.Equal(t, uint32(0x3FFF), cpuRead(t, m, 0xFFFF))

	var mapped uint32
	var data uint8
	assert.False(t, m.CpuMapRead(0x6000, &mapped, &data))
	assert.False(t, m.CpuMapWrite(0x4015, &mapped, 0))
	assert.Equal(t, HARDWARE, m.MirrorType())
}

func TestMapper0000ThirtyTwoKilobytes(t *testing.T) {
	m, _ := New(0, 2, 1)
	assert.Equal(t, uint32(0x0000), cpuRead(t, m, 0x8000))
	assert.Equal(t, uint32(0x4000), cpuRead(t, m, 0xC000))
	assert.Equal(t, cpuRead(t, m, 0xC123), cpuWrite(t, m, 0xC123, 0))
}

func TestMapper0000CHR(t *testing.T) {
	var mapped uint32

	rom, _ := New(0, 1, 1)
	assert.Equal(t, uint32(0x1234), ppuRead(t, rom, 0x1234))
	assert.False(t, rom.PpuMapWrite(0x1234, &mapped))
	assert.False(t, rom.PpuMapRead(0x2000, &mapped))

	ram, _ := New(0, 1, 0)
	assert.True(t, ram.PpuMapWrite(0x1234, &mapped))
	assert.Equal(t, uint32(0x1234), mapped)
}

func TestMapper0002(t *testing.T) {
	m, _ := New(2, 8, 0)

	assert.Equal(t, uint32(0x0010), cpuRead(t, m, 0x8010))
	assert.Equal(t, uint32(7*0x4000+0x0010), cpuRead(t, m, 0xC010))

	assert.Equal(t, Internal, cpuWrite(t, m, 0x8000, 0x03))
	assert.Equal(t, uint32(3*0x4000+0x0010), cpuRead(t, m, 0x8010))
	assert.Equal(t, uint32(7*0x4000+0x0010), cpuRead(t, m, 0xC010))

	// only the low four bits select the bank
	cpuWrite(t, m, 0xFFFF, 0xF5)
	assert.Equal(t, uint32(5*0x4000), cpuRead(t, m, 0x8000))

	m.Reset()
	assert.Equal(t, uint32(0), cpuRead(t, m, 0x8000))

	var mapped uint32
	assert.True(t, m.PpuMapWrite(0x0100, &mapped))
	assert.False(t, m.IrqPending())
}

func TestMapper0003(t *testing.T) {
	m, _ := New(3, 1, 4)

	assert.Equal(t, cpuRead(t, m, 0x8000), cpuRead(t, m, 0xC000))
	assert.Equal(t, uint32(0x0100), ppuRead(t, m, 0x0100))

	assert.Equal(t, Internal, cpuWrite(t, m, 0x8000, 0x02))
	assert.Equal(t, uint32(2*0x2000+0x0100), ppuRead(t, m, 0x0100))

	cpuWrite(t, m, 0xFFFF, 0xFF)
	assert.Equal(t, uint32(3*0x2000), ppuRead(t, m, 0x0000))

	var mapped uint32
	assert.False(t, m.PpuMapWrite(0x0000, &mapped))

	m.Reset()
	assert.Equal(t, uint32(0), ppuRead(t, m, 0x0000))
}

func TestMapper0004PowerOn(t *testing.T) {
	m, _ := New(4, 8, 8)

	// 16 8KB banks, the last two are fixed at $C000 and $E000
	assert.Equal(t, uint32(0x0000), cpuRead(t, m, 0x8000))
	assert.Equal(t, uint32(0x2000), cpuRead(t, m, 0xA000))
	assert.Equal(t, uint32(14*0x2000), cpuRead(t, m, 0xC000))
	assert.Equal(t, uint32(15*0x2000+0x1FFF), cpuRead(t, m, 0xFFFF))
	assert.Equal(t, HORIZONTAL, m.MirrorType())
}

func TestMapper0004PRGBanking(t *testing.T) {
	m, _ := New(4, 8, 8)

	cpuWrite(t, m, 0x8000, 0x06)
	cpuWrite(t, m, 0x8001, 0x05)
	cpuWrite(t, m, 0x8000, 0x07)
	cpuWrite(t, m, 0x8001, 0x09)

	assert.Equal(t, uint32(5*0x2000), cpuRead(t, m, 0x8000))
	assert.Equal(t, uint32(9*0x2000), cpuRead(t, m, 0xA000))
	assert.Equal(t, uint32(14*0x2000), cpuRead(t, m, 0xC000))
	assert.Equal(t, uint32(15*0x2000), cpuRead(t, m, 0xE000))

	// PRG mode swaps the switchable and fixed windows
	cpuWrite(t, m, 0x8000, 0x46)
	assert.Equal(t, uint32(14*0x2000), cpuRead(t, m, 0x8000))
	assert.Equal(t, uint32(9*0x2000), cpuRead(t, m, 0xA000))
	assert.Equal(t, uint32(5*0x2000), cpuRead(t, m, 0xC000))
	assert.Equal(t, uint32(15*0x2000), cpuRead(t, m, 0xE000))
}

func TestMapper0004CHRBanking(t *testing.T) {
	m, _ := New(4, 2, 8)

	for reg, bank := range []uint8{0x02, 0x04, 0x10, 0x11, 0x12, 0x13} {
		cpuWrite(t, m, 0x8000, uint8(reg))
		cpuWrite(t, m, 0x8001, bank)
	}

	expected := []uint32{0x02, 0x03, 0x04, 0x05, 0x10, 0x11, 0x12, 0x13}
	for i, bank := range expected {
		addr := uint16(i) * 0x0400
		assert.Equal(t, bank*0x0400+0x0010, ppuRead(t, m, addr+0x0010), "window %d", i)
	}

	// inversion swaps the 2KB and 1KB halves
	cpuWrite(t, m, 0x8000, 0x80)
	inverted := []uint32{0x10, 0x11, 0x12, 0x13, 0x02, 0x03, 0x04, 0x05}
	for i, bank := range inverted {
		addr := uint16(i) * 0x0400
		assert.Equal(t, bank*0x0400, ppuRead(t, m, addr), "window %d", i)
	}
}

func TestMapper0004Mirroring(t *testing.T) {
	m, _ := New(4, 2, 1)
	cpuWrite(t, m, 0xA000, 0x00)
	assert.Equal(t, VERTICAL, m.MirrorType())
	cpuWrite(t, m, 0xA000, 0x01)
	assert.Equal(t, HORIZONTAL, m.MirrorType())

	// odd writes are RAM protect and leave mirroring alone
	cpuWrite(t, m, 0xA001, 0x00)
	assert.Equal(t, HORIZONTAL, m.MirrorType())
}

func TestMapper0004RAM(t *testing.T) {
	m, _ := New(4, 2, 1)

	assert.Equal(t, Internal, cpuWrite(t, m, 0x6123, 0xAB))

	var mapped uint32
	var data uint8
	require.True(t, m.CpuMapRead(0x6123, &mapped, &data))
	assert.Equal(t, Internal, mapped)
	assert.Equal(t, uint8(0xAB), data)

	// RAM survives bank mode changes
	cpuWrite(t, m, 0x8000, 0xC0)
	require.True(t, m.CpuMapRead(0x6123, &mapped, &data))
	assert.Equal(t, uint8(0xAB), data)
}

func TestMapper0004ScanlineIRQ(t *testing.T) {
	m, _ := New(4, 2, 1)

	cpuWrite(t, m, 0xC000, 10)
	cpuWrite(t, m, 0xC001, 0)
	cpuWrite(t, m, 0xE001, 0)

	for i := 1; i <= 10; i++ {
		m.OnScanline()
		assert.False(t, m.IrqPending(), "scanline %d", i)
	}
	m.OnScanline()
	assert.True(t, m.IrqPending())

	m.IrqClear()
	assert.False(t, m.IrqPending())

	// counter reloads and counts down again
	for i := 1; i <= 10; i++ {
		m.OnScanline()
	}
	assert.False(t, m.IrqPending())
	m.OnScanline()
	assert.True(t, m.IrqPending())
}

func TestMapper0004IRQDisable(t *testing.T) {
	m, _ := New(4, 2, 1)

	cpuWrite(t, m, 0xC000, 1)
	cpuWrite(t, m, 0xC001, 0)
	m.OnScanline()
	m.OnScanline()
	assert.False(t, m.IrqPending())

	cpuWrite(t, m, 0xE001, 0)
	m.OnScanline()
	m.OnScanline()
	assert.True(t, m.IrqPending())

	cpuWrite(t, m, 0xE000, 0)
	assert.False(t, m.IrqPending())
	m.OnScanline()
	m.OnScanline()
	assert.False(t, m.IrqPending())
}

func TestMirrorString(t *testing.T) {
	assert.Equal(t, "vertical", VERTICAL.String())
	assert.Equal(t, "mirror(9)", MIRROR(9).String())
}
