package audio

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays a Stream through ebiten's audio context.
type Player struct {
	player *audio.Player
	stream *Stream
}

// NewPlayer starts playback of the ring. The ebiten audio context is created
// on first use; only one sample rate can be used per process.
func NewPlayer(sampleRate int, ring *Ring, latency time.Duration) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	} else if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("audio: context already running at %dHz", ctx.SampleRate())
	}

	stream := NewStream(ring)
	p, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	if latency > 0 {
		p.SetBufferSize(latency)
	}
	p.Play()

	return &Player{
		player: p,
		stream: stream,
	}, nil
}

func (p *Player) SetVolume(volume float64) {
	p.player.SetVolume(volume)
}

func (p *Player) Pause() {
	p.player.Pause()
}

func (p *Player) Play() {
	p.player.Play()
}

func (p *Player) IsPlaying() bool {
	return p.player.IsPlaying()
}

func (p *Player) Underruns() uint64 {
	return p.stream.Underruns()
}

func (p *Player) Close() error {
	return p.player.Close()
}
