package register

import "fmt"

var (
	pulseControl = map[string]Field{
		"duty":     {6, 2},
		"halt":     {5, 1},
		"constant": {4, 1},
		"volume":   {0, 4},
	}
	pulseSweep = map[string]Field{
		"enable": {7, 1},
		"period": {4, 3},
		"negate": {3, 1},
		"shift":  {0, 3},
	}
	timerLow = map[string]Field{
		"timer_lo": {0, 8},
	}
	timerHigh = map[string]Field{
		"length":   {3, 5},
		"timer_hi": {0, 3},
	}
)

// apuLayouts describes the writable APU registers
var apuLayouts = map[uint16]struct {
	name   string
	fields map[string]Field
}{
	0x4000: {"pulse1.control", pulseControl},
	0x4001: {"pulse1.sweep", pulseSweep},
	0x4002: {"pulse1.timer_lo", timerLow},
	0x4003: {"pulse1.timer_hi", timerHigh},
	0x4004: {"pulse2.control", pulseControl},
	0x4005: {"pulse2.sweep", pulseSweep},
	0x4006: {"pulse2.timer_lo", timerLow},
	0x4007: {"pulse2.timer_hi", timerHigh},
	0x4008: {"triangle.linear", map[string]Field{
		"control": {7, 1},
		"reload":  {0, 7},
	}},
	0x400A: {"triangle.timer_lo", timerLow},
	0x400B: {"triangle.timer_hi", timerHigh},
	0x400C: {"noise.control", map[string]Field{
		"halt":     {5, 1},
		"constant": {4, 1},
		"volume":   {0, 4},
	}},
	0x400E: {"noise.period", map[string]Field{
		"mode":   {7, 1},
		"period": {0, 4},
	}},
	0x400F: {"noise.length", map[string]Field{
		"length": {3, 5},
	}},
	0x4010: {"dmc.control", map[string]Field{
		"irq":  {7, 1},
		"loop": {6, 1},
		"rate": {0, 4},
	}},
	0x4011: {"dmc.load", map[string]Field{
		"level": {0, 7},
	}},
	0x4012: {"dmc.address", map[string]Field{
		"address": {0, 8},
	}},
	0x4013: {"dmc.length", map[string]Field{
		"length": {0, 8},
	}},
	0x4015: {"status", map[string]Field{
		"dmc":      {4, 1},
		"noise":    {3, 1},
		"triangle": {2, 1},
		"pulse2":   {1, 1},
		"pulse1":   {0, 1},
	}},
	0x4017: {"frame_counter", map[string]Field{
		"mode":    {7, 1},
		"inhibit": {6, 1},
	}},
}

// APU returns the named register for a write to an APU address, with its
// fields set from data. The second return value is false for addresses that
// are not APU registers.
func APU(addr uint16, data uint8) (Register, bool) {
	layout, ok := apuLayouts[addr]
	if !ok {
		return Register{}, false
	}
	r := CreateRegister(layout.name, layout.fields)
	r.SetReg(uint16(data))
	return r, true
}

// Describe formats a register write for the trace log.
func Describe(addr uint16, data uint8) string {
	r, ok := APU(addr, data)
	if !ok {
		return fmt.Sprintf("$%04x <- $%02x", addr, data)
	}
	return fmt.Sprintf("$%04x <- $%02x %s", addr, data, r)
}
