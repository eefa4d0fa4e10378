package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavChunk = 4096

// WavSink writes samples to a 16 bit mono WAV file.
type WavSink struct {
	enc *wav.Encoder
	buf *goaudio.IntBuffer
	err error

	samples int
}

func NewWavSink(w io.WriteSeeker, sampleRate int) *WavSink {
	return &WavSink{
		enc: wav.NewEncoder(w, sampleRate, 16, 1, 1),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			Data:           make([]int, 0, wavChunk),
			SourceBitDepth: 16,
		},
	}
}

// PushSample implements the Sink interface. Encoding errors are held and
// returned by Close.
func (w *WavSink) PushSample(sample float32) {
	w.buf.Data = append(w.buf.Data, int(toInt16(sample)))
	w.samples++
	if len(w.buf.Data) >= wavChunk {
		w.flush()
	}
}

func (w *WavSink) flush() {
	if len(w.buf.Data) == 0 {
		return
	}
	if w.err == nil {
		if err := w.enc.Write(w.buf); err != nil {
			w.err = fmt.Errorf("wav: %w", err)
		}
	}
	w.buf.Data = w.buf.Data[:0]
}

// Samples returns the number of samples pushed so far.
func (w *WavSink) Samples() int {
	return w.samples
}

// Close flushes buffered samples and finalises the WAV header. It does not
// close the underlying writer.
func (w *WavSink) Close() error {
	w.flush()
	if w.err != nil {
		return w.err
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
