package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweeperNegation(t *testing.T) {
	// shift 4, negate
	const reg = 0x80 | 0x08 | 0x04

	s1 := NewSweeper(true)
	s1.Write(reg)
	s1.UpdateChannelPeriod(100)
	assert.Equal(t, uint16(100-(100>>4)-1), s1.TargetPeriod())

	s2 := NewSweeper(false)
	s2.Write(reg)
	s2.UpdateChannelPeriod(100)
	assert.Equal(t, uint16(100-(100>>4)), s2.TargetPeriod())
}

func TestSweeperMute(t *testing.T) {
	s := NewSweeper(false)
	s.Write(0x01)

	s.UpdateChannelPeriod(7)
	assert.True(t, s.Muted())

	s.UpdateChannelPeriod(8)
	assert.False(t, s.Muted())

	// 0x7F0 + 0x3F8 overflows 11 bits
	s.UpdateChannelPeriod(0x7F0)
	assert.True(t, s.Muted())

	// negating never overflows
	s.Write(0x09)
	s.UpdateChannelPeriod(0x7F0)
	assert.False(t, s.Muted())

	s.UpdateChannelPeriod(4)
	assert.True(t, s.Muted())
}

func TestSweeperClock(t *testing.T) {
	// enabled, divider period 1, add, shift 1
	s := NewSweeper(false)
	s.Write(0x80 | 0x10 | 0x01)

	// divider starts at zero so the first clock applies the sweep
	p := s.Clock(0x100)
	assert.Equal(t, uint16(0x180), p)

	// reload set the divider to 1, so this clock only decrements
	p = s.Clock(p)
	assert.Equal(t, uint16(0x180), p)

	p = s.Clock(p)
	assert.Equal(t, uint16(0x240), p)
}

func TestSweeperDisabled(t *testing.T) {
	s := NewSweeper(true)
	s.Write(0x01)
	assert.Equal(t, uint16(0x100), s.Clock(0x100))

	// shift of zero never changes the period
	s.Write(0x80)
	assert.Equal(t, uint16(0x100), s.Clock(0x100))
}

func TestSweeperMutedDoesNotSweep(t *testing.T) {
	s := NewSweeper(false)
	s.Write(0x81)
	assert.Equal(t, uint16(0x700), s.Clock(0x700))
	assert.True(t, s.Muted())
}
