package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthCounterLoad(t *testing.T) {
	expected := []uint8{
		10, 254, 20, 2, 40, 4, 80, 6,
		160, 8, 60, 10, 14, 12, 26, 14,
		12, 16, 24, 18, 48, 20, 96, 22,
		192, 24, 72, 26, 16, 28, 32, 30,
	}

	for i, v := range expected {
		l := LengthCounter{}
		l.SetEnabled(true)
		l.Load(uint8(i))
		assert.Equal(t, v, l.Value(), "index %d", i)
		assert.True(t, l.Active())
	}
}

func TestLengthCounterDisabled(t *testing.T) {
	l := LengthCounter{}
	l.Load(1)
	assert.Equal(t, uint8(0), l.Value())
	assert.False(t, l.Active())

	l.SetEnabled(true)
	l.Load(1)
	assert.Equal(t, uint8(254), l.Value())

	l.SetEnabled(false)
	assert.Equal(t, uint8(0), l.Value())
	assert.False(t, l.Enabled())

	l.Load(1)
	assert.Equal(t, uint8(0), l.Value())
}

func TestLengthCounterClock(t *testing.T) {
	l := LengthCounter{}
	l.SetEnabled(true)
	l.Load(3)
	assert.Equal(t, uint8(2), l.Value())

	l.Halt = true
	l.Clock()
	assert.Equal(t, uint8(2), l.Value())

	l.Halt = false
	l.Clock()
	l.Clock()
	l.Clock()
	assert.Equal(t, uint8(0), l.Value())
	assert.False(t, l.Active())
}
