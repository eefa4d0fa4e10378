package mapper

// Mapper0002 is UxROM. $8000-$BFFF is switchable, $C000-$FFFF is fixed to
// the last bank.
type Mapper0002 struct {
	noIRQ
	PrgBankSelectLo uint8
	PrgBankSelectHi uint8
	PrgBanks        uint8
	ChrBanks        uint8
}

func (m *Mapper0002) Init(prgBanks uint8, chrBanks uint8) {
	m.PrgBanks = prgBanks
	m.ChrBanks = chrBanks
	m.Reset()
}

func (m *Mapper0002) Reset() {
	m.PrgBankSelectLo = 0
	m.PrgBankSelectHi = 0
	if m.PrgBanks > 0 {
		m.PrgBankSelectHi = m.PrgBanks - 1
	}
}

func (m *Mapper0002) MirrorType() MIRROR {
	return HARDWARE
}

func (m *Mapper0002) CpuMapRead(addr uint16, mappedAddr *uint32, data *uint8) bool {
	if addr >= 0x8000 && addr <= 0xBFFF {
		*mappedAddr = uint32(m.PrgBankSelectLo)*0x4000 + uint32(addr&0x3FFF)
		return true
	}

	if addr >= 0xC000 {
		*mappedAddr = uint32(m.PrgBankSelectHi)*0x4000 + uint32(addr&0x3FFF)
		return true
	}

	return false
}

func (m *Mapper0002) CpuMapWrite(addr uint16, mappedAddr *uint32, data uint8) bool {
	if addr >= 0x8000 {
		m.PrgBankSelectLo = data & 0x0F
		if m.PrgBanks > 0 {
			m.PrgBankSelectLo %= m.PrgBanks
		}
		*mappedAddr = Internal
		return true
	}
	return false
}

func (m *Mapper0002) PpuMapRead(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 {
		*mappedAddr = uint32(addr)
		return true
	}
	return false
}

func (m *Mapper0002) PpuMapWrite(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 && m.ChrBanks == 0 {
		*mappedAddr = uint32(addr)
		return true
	}
	return false
}
