package audio

import (
	"encoding/binary"
	"sync/atomic"
)

// bytes per frame: two channels of 16 bit samples
const frameSize = 4

// Stream adapts a Ring to the io.Reader expected by ebiten's audio player,
// producing signed 16 bit little endian stereo. When the ring runs dry the
// rest of the buffer is filled with silence so the device never stalls.
type Stream struct {
	ring    *Ring
	scratch []float32

	// read by the GUI goroutine
	underruns atomic.Uint64
}

func NewStream(ring *Ring) *Stream {
	return &Stream{ring: ring}
}

func (s *Stream) Read(buf []byte) (int, error) {
	frames := len(buf) / frameSize
	if frames == 0 {
		return 0, nil
	}

	if cap(s.scratch) < frames {
		s.scratch = make([]float32, frames)
	}
	samples := s.scratch[:frames]

	n := s.ring.Read(samples)
	if n < frames {
		s.underruns.Add(1)
		for i := n; i < frames; i++ {
			samples[i] = 0
		}
	}

	for i, v := range samples {
		o := i * frameSize
		b := uint16(toInt16(v))
		binary.LittleEndian.PutUint16(buf[o:], b)
		binary.LittleEndian.PutUint16(buf[o+2:], b)
	}

	return frames * frameSize, nil
}

// Underruns returns how many reads found fewer samples than requested.
func (s *Stream) Underruns() uint64 {
	return s.underruns.Load()
}
