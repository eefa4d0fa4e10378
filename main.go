package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"nes-core/audio"
	"nes-core/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	romFile := flag.String("rom", "", "iNES cartridge mapped into the CPU address space")
	logFile := flag.String("log", "", "APU register log to play (default: built-in demo)")
	wavFile := flag.String("wav", "", "render to a WAV file instead of playing")
	seconds := flag.Float64("seconds", 0, "length of WAV output (default: length of the log plus one second)")
	configFile := flag.String("config", "", "JSON configuration file")
	sampleRate := flag.Int("rate", 0, "output sample rate (overrides configuration)")
	trace := flag.Bool("trace", false, "log every APU register write")
	flag.Parse()

	config, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *sampleRate != 0 {
		config.Audio.SampleRate = *sampleRate
	}
	if *trace {
		config.Debug.TraceWrites = true
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}
	if config.Debug.EchoLog {
		logger.SetEcho(os.Stdout)
	}

	accesses, err := readLog(*logFile)
	if err != nil {
		log.Fatal(err)
	}

	var cart *Cartridge
	if *romFile != "" {
		cart, err = LoadCartridge(*romFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *wavFile != "" {
		if err := renderWav(config, cart, accesses, *wavFile, *seconds); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := play(config, cart, accesses); err != nil {
		log.Fatal(err)
	}
}

func readLog(filename string) ([]Access, error) {
	var r io.Reader = strings.NewReader(demoLog)
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	accesses, err := ParseLog(r)
	if err != nil {
		return nil, err
	}
	logger.Logf("log", "%d accesses", len(accesses))
	return accesses, nil
}

func newSystem(config *Config, cart *Cartridge, sink audio.Sink, accesses []Access) (*Bus, *LogPlayer) {
	bus := NewBus(sink, config.Audio.SampleRate)
	bus.renderingIRQ = config.Emulation.RenderingIRQ
	bus.traceWrites = config.Debug.TraceWrites
	if cart != nil {
		bus.insertCartridge(cart)
	}
	bus.reset()
	return bus, NewLogPlayer(bus, accesses)
}

func renderWav(config *Config, cart *Cartridge, accesses []Access, filename string, seconds float64) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	wav := audio.NewWavSink(f, config.Audio.SampleRate)
	bus, player := newSystem(config, cart, wav, accesses)

	cycles := player.Length() + uint64(cpuClockRate)
	if seconds > 0 {
		cycles = uint64(seconds * cpuClockRate)
	}

	start := time.Now()
	player.Run(cycles)
	if err := wav.Close(); err != nil {
		return err
	}

	logger.Logf("wav", "%s: %d samples in %s (%d irqs)", filename, wav.Samples(), time.Since(start).Round(time.Millisecond), bus.irqCount)
	return nil
}

func play(config *Config, cart *Cartridge, accesses []Access) error {
	policy, err := config.overflow()
	if err != nil {
		return err
	}

	ring := audio.NewRing(config.Audio.BufferSize, policy)
	bus, player := newSystem(config, cart, ring, accesses)

	latency := time.Duration(config.Audio.Latency) * time.Millisecond
	audioPlayer, err := audio.NewPlayer(config.Audio.SampleRate, ring, latency)
	if err != nil {
		// carry on without sound, the display still works
		logger.Logf("audio", "%v: audio disabled", err)
		audioPlayer = nil
	} else {
		defer audioPlayer.Close()
		audioPlayer.SetVolume(config.Audio.Volume)
	}

	// a few frames ahead of the device
	target := config.Audio.SampleRate / 15
	if target > ring.Cap() {
		target = ring.Cap()
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("nes-core")
	err = ebiten.RunGame(&Game{
		nes:         bus,
		player:      player,
		ring:        ring,
		audioPlayer: audioPlayer,
		target:      target,
		volume:      config.Audio.Volume,
	})
	ring.Close()

	if audioPlayer != nil {
		logger.Logf("audio", "dropped %d samples, %d underruns", ring.Dropped(), audioPlayer.Underruns())
	}
	return err
}
