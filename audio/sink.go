// Package audio hands mixed samples from the emulation to the host: a
// bounded ring buffer drained by ebiten's audio player for live playback, and
// a WAV file writer for offline rendering.
package audio

// Sink receives one mixed and filtered sample at a time. Samples are nominally
// in the range -1 to 1.
type Sink interface {
	PushSample(sample float32)
}

// Clamp limits a sample to -1 to 1.
func Clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// toInt16 converts a sample to a signed 16 bit value
func toInt16(v float32) int16 {
	return int16(Clamp(v) * 32767)
}
