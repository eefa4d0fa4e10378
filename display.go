package main

import (
	"fmt"
	"image/color"
	"log"

	"nes-core/audio"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

const (
	screenWidth  = 640
	screenHeight = 360
)

var (
	WHITE = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	GREEN = color.RGBA{G: 0xFF, A: 0xFF}
	RED   = color.RGBA{R: 0xFF, A: 0xFF}
	GREY  = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}
)

var channelNames = [5]string{"PULSE1", "PULSE2", "TRIANGLE", "NOISE", "DMC"}

// Game shows the state of the sound core while the register log plays.
type Game struct {
	nes         *Bus
	player      *LogPlayer
	ring        *audio.Ring
	audioPlayer *audio.Player
	defaultFont font.Face

	// keep this many samples queued for the audio device
	target  int
	discard []float32

	paused bool
	muted  bool
	volume float64
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if g.audioPlayer != nil {
			if g.paused {
				g.audioPlayer.Pause()
			} else {
				g.audioPlayer.Play()
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.player.Rewind()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = !g.muted
		if g.audioPlayer != nil {
			if g.muted {
				g.audioPlayer.SetVolume(0)
			} else {
				g.audioPlayer.SetVolume(g.volume)
			}
		}
	}

	if g.paused {
		return nil
	}

	// without a device nothing drains the ring, throw away a frame of samples
	if g.audioPlayer == nil {
		if g.discard == nil {
			g.discard = make([]float32, g.ring.Cap())
		}
		g.ring.Read(g.discard)
	}

	// never run more than two frames worth of cycles per update
	budget := uint64(cpuClockRate) / 30
	for i := uint64(0); i < budget && g.ring.Len() < g.target; i++ {
		g.player.Step()
	}

	return nil
}

func (g *Game) getDefaultFont() font.Face {
	if g.defaultFont != nil {
		return g.defaultFont
	}
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72 * 2
	mplusNormalFont, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    8,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		log.Fatal(err)
	}
	g.defaultFont = mplusNormalFont
	return g.defaultFont
}

func (g *Game) DrawString(screen *ebiten.Image, x int, y int, str string, clr color.Color) {
	text.Draw(screen, str, g.getDefaultFont(), x, y, clr)
}

func (g *Game) DrawChannels(screen *ebiten.Image, x int, y int) {
	const barWidth = 80
	const barHeight = 160

	stats := g.nes.apu.Stats()
	for i, out := range stats.Outputs {
		full := float32(15)
		if i == 4 {
			full = 127
		}
		bx := float32(x + i*(barWidth+20))
		level := float32(out) / full * barHeight

		vector.DrawFilledRect(screen, bx, float32(y), barWidth, barHeight, GREY, false)
		vector.DrawFilledRect(screen, bx, float32(y)+barHeight-level, barWidth, level, GREEN, false)
		g.DrawString(screen, int(bx), y+barHeight+24, channelNames[i], WHITE)
	}
}

func (g *Game) DrawStatus(screen *ebiten.Image, x int, y int) {
	stats := g.nes.apu.Stats()
	lineSize := 24

	mode := "4-STEP"
	if stats.FiveStep {
		mode = "5-STEP"
	}
	g.DrawString(screen, x, y, fmt.Sprintf("Cycles: %d  Frame: %s  Q: %d  H: %d",
		stats.Cycles, mode, stats.QuarterFrames, stats.HalfFrames), WHITE)

	irqColor := RED
	if g.nes.irqLine {
		irqColor = GREEN
	}
	g.DrawString(screen, x, y+lineSize, fmt.Sprintf("IRQ: %d", g.nes.irqCount), irqColor)

	if g.audioPlayer != nil {
		g.DrawString(screen, x, y+lineSize*2, fmt.Sprintf("Buffer: %d/%d  Dropped: %d  Underruns: %d",
			g.ring.Len(), g.ring.Cap(), g.ring.Dropped(), g.audioPlayer.Underruns()), WHITE)
	} else {
		g.DrawString(screen, x, y+lineSize*2, "Audio disabled", RED)
	}

	if g.nes.cartridge != nil {
		g.DrawString(screen, x, y+lineSize*3, fmt.Sprintf("Mapper: %d  Mirror: %s",
			g.nes.cartridge.mapperId, g.nes.cartridge.Mirror()), WHITE)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.DrawStatus(screen, 20, 30)
	g.DrawChannels(screen, 20, 130)

	help := "SPACE pause  R restart  M mute"
	if g.player.Done() {
		help += "  (log finished)"
	}
	ebitenutil.DebugPrintAt(screen, help, 20, screenHeight-20)
}

func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
