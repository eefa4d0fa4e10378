package mapper

// Mapper0003 is CNROM. PRG is fixed as in NROM and any write to
// $8000-$FFFF selects the 8KB CHR bank.
type Mapper0003 struct {
	noIRQ
	PrgBanks       uint8
	ChrBanks       uint8
	chrBanksSelect uint8
}

func (m *Mapper0003) Init(prgBanks uint8, chrBanks uint8) {
	m.PrgBanks = prgBanks
	m.ChrBanks = chrBanks
	m.Reset()
}

func (m *Mapper0003) Reset() {
	m.chrBanksSelect = 0
}

func (m *Mapper0003) MirrorType() MIRROR {
	return HARDWARE
}

func (m *Mapper0003) CpuMapRead(addr uint16, mappedAddr *uint32, data *uint8) bool {
	if addr >= 0x8000 {
		*mappedAddr = uint32(addr & prgMask(m.PrgBanks))
		return true
	}
	return false
}

func (m *Mapper0003) CpuMapWrite(addr uint16, mappedAddr *uint32, data uint8) bool {
	if addr >= 0x8000 {
		m.chrBanksSelect = data & 0x03
		if m.ChrBanks > 0 {
			m.chrBanksSelect %= m.ChrBanks
		}
		*mappedAddr = Internal
		return true
	}
	return false
}

func (m *Mapper0003) PpuMapRead(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 {
		*mappedAddr = uint32(m.chrBanksSelect)*0x2000 + uint32(addr)
		return true
	}
	return false
}

func (m *Mapper0003) PpuMapWrite(addr uint16, mappedAddr *uint32) bool {
	return false
}
