package mapper

// Mapper0000 is NROM, with no bank switching. A 16KB PRG image is mirrored
// into both halves of $8000-$FFFF.
type Mapper0000 struct {
	noIRQ
	PrgBanks uint8
	ChrBanks uint8
}

func (m *Mapper0000) Init(prgBanks uint8, chrBanks uint8) {
	m.PrgBanks = prgBanks
	m.ChrBanks = chrBanks
	m.Reset()
}

func (m *Mapper0000) Reset() {
}

func (m *Mapper0000) MirrorType() MIRROR {
	return HARDWARE
}

func (m *Mapper0000) CpuMapRead(addr uint16, mappedAddr *uint32, data *uint8) bool {
	if addr >= 0x8000 {
		*mappedAddr = uint32(addr & prgMask(m.PrgBanks))
		return true
	}
	return false
}

func (m *Mapper0000) CpuMapWrite(addr uint16, mappedAddr *uint32, data uint8) bool {
	if addr >= 0x8000 {
		*mappedAddr = uint32(addr & prgMask(m.PrgBanks))
		return true
	}
	return false
}

func (m *Mapper0000) PpuMapRead(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 {
		*mappedAddr = uint32(addr)
		return true
	}
	return false
}

// PpuMapWrite only succeeds for cartridges with CHR RAM.
func (m *Mapper0000) PpuMapWrite(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 && m.ChrBanks == 0 {
		*mappedAddr = uint32(addr)
		return true
	}
	return false
}
