package apu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeStart(t *testing.T) {
	e := Envelope{VolumePeriod: 7}
	e.Start = true
	e.Clock()
	assert.False(t, e.Start)
	assert.Equal(t, uint8(15), e.Decay())
	assert.Equal(t, uint8(15), e.Output())

	e = Envelope{VolumePeriod: 7, ConstantVolume: true}
	e.Start = true
	e.Clock()
	assert.Equal(t, uint8(15), e.Decay())
	assert.Equal(t, uint8(7), e.Output())
}

func TestEnvelopeDecay(t *testing.T) {
	e := Envelope{VolumePeriod: 2}
	e.Start = true
	e.Clock()

	// each decay step takes VolumePeriod+1 clocks
	for level := 14; level >= 0; level-- {
		for i := 0; i < 3; i++ {
			e.Clock()
		}
		assert.Equal(t, uint8(level), e.Decay())
	}

	for i := 0; i < 3; i++ {
		e.Clock()
	}
	assert.Equal(t, uint8(0), e.Decay())
}

func TestEnvelopeLoop(t *testing.T) {
	e := Envelope{}
	e.Write(0x20)
	assert.True(t, e.Loop)
	assert.False(t, e.ConstantVolume)
	assert.Equal(t, uint8(0), e.VolumePeriod)

	e.Start = true
	e.Clock()
	for i := 0; i < 15; i++ {
		e.Clock()
	}
	assert.Equal(t, uint8(0), e.Decay())

	e.Clock()
	assert.Equal(t, uint8(15), e.Decay())
}

func TestEnvelopeWrite(t *testing.T) {
	e := Envelope{}
	e.Write(0x3A)
	assert.True(t, e.Loop)
	assert.True(t, e.ConstantVolume)
	assert.Equal(t, uint8(0x0A), e.VolumePeriod)
	assert.Equal(t, uint8(0x0A), e.Output())
}
