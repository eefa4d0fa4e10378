// Package mapper translates CPU and PPU addresses into offsets within the
// cartridge's PRG and CHR memory, one implementation per cartridge board.
package mapper

import (
	"errors"
	"fmt"
)

type MIRROR uint8

const (
	HARDWARE     = MIRROR(0)
	HORIZONTAL   = MIRROR(1)
	VERTICAL     = MIRROR(2)
	ONESCREEN_LO = MIRROR(3)
	ONESCREEN_HI = MIRROR(4)
)

func (m MIRROR) String() string {
	switch m {
	case HARDWARE:
		return "hardware"
	case HORIZONTAL:
		return "horizontal"
	case VERTICAL:
		return "vertical"
	case ONESCREEN_LO:
		return "onescreen-lo"
	case ONESCREEN_HI:
		return "onescreen-hi"
	}
	return fmt.Sprintf("mirror(%d)", uint8(m))
}

// Internal is stored in mappedAddr when the mapper handled the access itself,
// either because the write was a register poke or because the byte lives in
// RAM owned by the mapper. The cartridge must not touch its own memory.
const Internal = uint32(0xFFFFFFFF)

var ErrUnsupported = errors.New("unsupported mapper")

// Mapper is implemented by every supported cartridge board. The Map methods
// return false when the address is not handled by the cartridge.
type Mapper interface {
	Init(prgBanks uint8, chrBanks uint8)
	Reset()
	MirrorType() MIRROR
	CpuMapRead(addr uint16, mappedAddr *uint32, data *uint8) bool
	CpuMapWrite(addr uint16, mappedAddr *uint32, data uint8) bool
	PpuMapRead(addr uint16, mappedAddr *uint32) bool
	PpuMapWrite(addr uint16, mappedAddr *uint32) bool
	IrqPending() bool
	IrqClear()
	OnScanline()
}

// New returns the mapper for the iNES mapper id, initialised with the
// cartridge's bank counts. PRG banks are 16KB, CHR banks 8KB.
func New(id uint8, prgBanks uint8, chrBanks uint8) (Mapper, error) {
	var m Mapper
	switch id {
	case 0:
		m = &Mapper0000{}
	case 2:
		m = &Mapper0002{}
	case 3:
		m = &Mapper0003{}
	case 4:
		m = &Mapper0004{}
	default:
		return nil, fmt.Errorf("mapper %d: %w", id, ErrUnsupported)
	}
	m.Init(prgBanks, chrBanks)
	return m, nil
}

// noIRQ is embedded by boards without an interrupt generator
type noIRQ struct{}

func (noIRQ) IrqPending() bool {
	return false
}

func (noIRQ) IrqClear() {
}

func (noIRQ) OnScanline() {
}

// prgMask returns the mask for the fixed 16KB or 32KB PRG image
func prgMask(prgBanks uint8) uint16 {
	if prgBanks > 1 {
		return 0x7FFF
	}
	return 0x3FFF
}
