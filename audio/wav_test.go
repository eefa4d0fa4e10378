package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	w := NewWavSink(f, 44100)
	total := wavChunk + 100
	for i := 0; i < total; i++ {
		if i%2 == 0 {
			w.PushSample(0.5)
		} else {
			w.PushSample(-0.5)
		}
	}
	assert.Equal(t, total, w.Samples())
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(44100), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	require.Len(t, buf.Data, total)
	assert.Equal(t, int(toInt16(0.5)), buf.Data[0])
	assert.Equal(t, int(toInt16(-0.5)), buf.Data[1])
}
