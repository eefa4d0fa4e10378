package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"nes-core/logger"
	"nes-core/mapper"
	"os"
)

var ErrBadHeader = errors.New("not an iNES file")

type Cartridge struct {
	mapperId  uint8
	prgBanks  uint8
	chrBanks  uint8
	prgMemory []uint8
	chrMemory []uint8
	mapper    mapper.Mapper
	mirror    mapper.MIRROR
}

type Header struct {
	Name         [4]byte
	PrgRomChunks uint8
	ChrRomChunks uint8
	Mapper1      uint8
	Mapper2      uint8
	PrgRamSize   uint8
	TvSystem1    uint8
	TvSystem2    uint8
	Unused       [5]byte
}

func (c *Cartridge) cpuRead(addr uint16, data *uint8) bool {
	mappedAddr := uint32(0)
	if c.mapper.CpuMapRead(addr, &mappedAddr, data) {
		if mappedAddr != mapper.Internal {
			*data = c.prgMemory[mappedAddr%uint32(len(c.prgMemory))]
		}
		return true
	}
	return false
}

// cpuWrite never modifies PRG ROM; the mapper consumes register writes and
// RAM writes itself.
func (c *Cartridge) cpuWrite(addr uint16, data uint8) bool {
	mappedAddr := uint32(0)
	return c.mapper.CpuMapWrite(addr, &mappedAddr, data)
}

func (c *Cartridge) ppuRead(addr uint16, data *uint8) bool {
	mappedAddr := uint32(0)
	if c.mapper.PpuMapRead(addr, &mappedAddr) {
		*data = c.chrMemory[mappedAddr%uint32(len(c.chrMemory))]
		return true
	}
	return false
}

func (c *Cartridge) ppuWrite(addr uint16, data uint8) bool {
	mappedAddr := uint32(0)
	if c.mapper.PpuMapWrite(addr, &mappedAddr) {
		c.chrMemory[mappedAddr%uint32(len(c.chrMemory))] = data
		return true
	}
	return false
}

// Mirror returns the nametable arrangement, taken from the mapper when it
// controls mirroring and from the header otherwise.
func (c *Cartridge) Mirror() mapper.MIRROR {
	if m := c.mapper.MirrorType(); m != mapper.HARDWARE {
		return m
	}
	return c.mirror
}

func (c *Cartridge) irqState() bool {
	return c.mapper.IrqPending()
}

func (c *Cartridge) scanline() {
	c.mapper.OnScanline()
}

func (c *Cartridge) reset() {
	if c.mapper != nil {
		c.mapper.Reset()
	}
}

func LoadCartridge(filename string) (*Cartridge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}
	defer file.Close()

	cart, err := NewCartridge(file)
	if err != nil {
		return nil, err
	}
	logger.Logf("cartridge", "%s: mapper %d, %d PRG banks, %d CHR banks, %s mirroring",
		filename, cart.mapperId, cart.prgBanks, cart.chrBanks, cart.Mirror())
	return cart, nil
}

func NewCartridge(r io.Reader) (*Cartridge, error) {
	header := Header{}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}
	if string(header.Name[:]) != "NES\x1A" {
		return nil, fmt.Errorf("cartridge: %w", ErrBadHeader)
	}
	if header.PrgRomChunks == 0 {
		return nil, fmt.Errorf("cartridge: %w: no PRG banks", ErrBadHeader)
	}

	if header.Mapper1&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, r, 512); err != nil {
			return nil, fmt.Errorf("cartridge: trainer: %w", err)
		}
	}

	cart := &Cartridge{
		mapperId: (header.Mapper2 & 0xF0) | (header.Mapper1 >> 4),
		prgBanks: header.PrgRomChunks,
		chrBanks: header.ChrRomChunks,
	}

	cart.mirror = mapper.HORIZONTAL
	if header.Mapper1&0x01 != 0 {
		cart.mirror = mapper.VERTICAL
	}

	cart.prgMemory = make([]uint8, uint32(cart.prgBanks)*16384)
	if _, err := io.ReadFull(r, cart.prgMemory); err != nil {
		return nil, fmt.Errorf("cartridge: PRG: %w", err)
	}

	if cart.chrBanks == 0 {
		cart.chrMemory = make([]uint8, 8192)
	} else {
		cart.chrMemory = make([]uint8, uint32(cart.chrBanks)*8192)
		if _, err := io.ReadFull(r, cart.chrMemory); err != nil {
			return nil, fmt.Errorf("cartridge: CHR: %w", err)
		}
	}

	m, err := mapper.New(cart.mapperId, cart.prgBanks, cart.chrBanks)
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}
	cart.mapper = m

	return cart, nil
}
