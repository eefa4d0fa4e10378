package mapper

// Mapper0004 is MMC3. It splits PRG into four 8KB windows and CHR into
// eight 1KB windows, and counts scanlines to raise an interrupt.
type Mapper0004 struct {
	targetRegister uint8
	prgBankMode    bool
	chrInversion   bool
	mirrorMode     MIRROR

	register [8]uint32
	chrBank  [8]uint32
	prgBank  [4]uint32

	IRQActive  bool
	IRQEnable  bool
	IRQCounter uint16
	IRQReload  uint16

	ramStatic []uint8
	prgBanks  uint8
	chrBanks  uint8
}

func (m *Mapper0004) Init(prgBanks uint8, chrBanks uint8) {
	m.prgBanks = prgBanks
	m.chrBanks = chrBanks
	m.ramStatic = make([]uint8, 0x2000)
	m.Reset()
}

func (m *Mapper0004) Reset() {
	m.targetRegister = 0
	m.prgBankMode = false
	m.chrInversion = false
	m.mirrorMode = HORIZONTAL

	m.IRQActive = false
	m.IRQEnable = false
	m.IRQCounter = 0
	m.IRQReload = 0

	for i := range m.register {
		m.register[i] = 0
	}
	for i := range m.chrBank {
		m.chrBank[i] = 0
	}

	m.prgBank[0] = 0 * 0x2000
	m.prgBank[1] = 1 * 0x2000
	m.prgBank[2] = m.lastPrgBank(1) * 0x2000
	m.prgBank[3] = m.lastPrgBank(0) * 0x2000
}

func (m *Mapper0004) MirrorType() MIRROR {
	return m.mirrorMode
}

// lastPrgBank returns the 8KB bank n banks from the end of PRG
func (m *Mapper0004) lastPrgBank(n uint32) uint32 {
	count := uint32(m.prgBanks) * 2
	if count <= n {
		return 0
	}
	return count - 1 - n
}

func (m *Mapper0004) prg(bank uint32) uint32 {
	if count := uint32(m.prgBanks) * 2; count > 0 {
		bank %= count
	}
	return bank * 0x2000
}

func (m *Mapper0004) chr(bank uint32) uint32 {
	count := uint32(m.chrBanks) * 8
	if m.chrBanks == 0 {
		count = 8
	}
	return (bank % count) * 0x0400
}

func (m *Mapper0004) CpuMapRead(addr uint16, mappedAddr *uint32, data *uint8) bool {
	switch {
	case addr >= 0x6000 && addr <= 0x7FFF:
		*mappedAddr = Internal
		*data = m.ramStatic[addr&0x1FFF]
		return true
	case addr >= 0x8000:
		*mappedAddr = m.prgBank[(addr-0x8000)/0x2000] + uint32(addr&0x1FFF)
		return true
	}
	return false
}

func (m *Mapper0004) CpuMapWrite(addr uint16, mappedAddr *uint32, data uint8) bool {
	if addr >= 0x6000 && addr <= 0x7FFF {
		*mappedAddr = Internal
		m.ramStatic[addr&0x1FFF] = data
		return true
	}

	if addr < 0x8000 {
		return false
	}

	even := addr&0x0001 == 0

	switch {
	case addr <= 0x9FFF:
		if even {
			m.targetRegister = data & 0x07
			m.prgBankMode = data&0x40 != 0
			m.chrInversion = data&0x80 != 0
		} else {
			m.register[m.targetRegister] = uint32(data)
		}
		m.updateBanks()

	case addr <= 0xBFFF:
		if even {
			if data&0x01 != 0 {
				m.mirrorMode = HORIZONTAL
			} else {
				m.mirrorMode = VERTICAL
			}
		}
		// odd writes are PRG RAM protect, the RAM is always enabled here

	case addr <= 0xDFFF:
		if even {
			m.IRQReload = uint16(data)
		} else {
			m.IRQCounter = 0
		}

	default:
		if even {
			m.IRQEnable = false
			m.IRQActive = false
		} else {
			m.IRQEnable = true
		}
	}

	*mappedAddr = Internal
	return true
}

func (m *Mapper0004) updateBanks() {
	r := m.register

	if m.chrInversion {
		m.chrBank[0] = m.chr(r[2])
		m.chrBank[1] = m.chr(r[3])
		m.chrBank[2] = m.chr(r[4])
		m.chrBank[3] = m.chr(r[5])
		m.chrBank[4] = m.chr(r[0] & 0xFE)
		m.chrBank[5] = m.chr(r[0] | 0x01)
		m.chrBank[6] = m.chr(r[1] & 0xFE)
		m.chrBank[7] = m.chr(r[1] | 0x01)
	} else {
		m.chrBank[0] = m.chr(r[0] & 0xFE)
		m.chrBank[1] = m.chr(r[0] | 0x01)
		m.chrBank[2] = m.chr(r[1] & 0xFE)
		m.chrBank[3] = m.chr(r[1] | 0x01)
		m.chrBank[4] = m.chr(r[2])
		m.chrBank[5] = m.chr(r[3])
		m.chrBank[6] = m.chr(r[4])
		m.chrBank[7] = m.chr(r[5])
	}

	if m.prgBankMode {
		m.prgBank[2] = m.prg(r[6] & 0x3F)
		m.prgBank[0] = m.lastPrgBank(1) * 0x2000
	} else {
		m.prgBank[0] = m.prg(r[6] & 0x3F)
		m.prgBank[2] = m.lastPrgBank(1) * 0x2000
	}
	m.prgBank[1] = m.prg(r[7] & 0x3F)
	m.prgBank[3] = m.lastPrgBank(0) * 0x2000
}

func (m *Mapper0004) PpuMapRead(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 {
		*mappedAddr = m.chrBank[addr/0x0400] + uint32(addr&0x03FF)
		return true
	}
	return false
}

func (m *Mapper0004) PpuMapWrite(addr uint16, mappedAddr *uint32) bool {
	if addr < 0x2000 && m.chrBanks == 0 {
		*mappedAddr = m.chrBank[addr/0x0400] + uint32(addr&0x03FF)
		return true
	}
	return false
}

func (m *Mapper0004) IrqPending() bool {
	return m.IRQActive
}

func (m *Mapper0004) IrqClear() {
	m.IRQActive = false
}

func (m *Mapper0004) OnScanline() {
	if m.IRQCounter == 0 {
		m.IRQCounter = m.IRQReload
	} else {
		m.IRQCounter--
	}

	if m.IRQCounter == 0 && m.IRQEnable {
		m.IRQActive = true
	}
}
