package main

import (
	"encoding/json"
	"fmt"
	"nes-core/audio"
	"os"
	"strings"
)

type Config struct {
	Audio     AudioConfig     `json:"audio"`
	Emulation EmulationConfig `json:"emulation"`
	Debug     DebugConfig     `json:"debug"`
}

type AudioConfig struct {
	SampleRate int     `json:"sample_rate"`
	BufferSize int     `json:"buffer_size"` // ring capacity in samples
	Latency    int     `json:"latency"`     // device buffer in milliseconds
	Volume     float64 `json:"volume"`
	Overflow   string  `json:"overflow"` // "drop" or "block"
}

type EmulationConfig struct {
	// tick the mapper's scanline counter as if rendering were enabled
	RenderingIRQ bool `json:"rendering_irq"`
}

type DebugConfig struct {
	TraceWrites bool `json:"trace_writes"`
	EchoLog     bool `json:"echo_log"`
}

func NewConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: 44100,
			BufferSize: 8192,
			Latency:    50,
			Volume:     0.8,
			Overflow:   "drop",
		},
		Emulation: EmulationConfig{
			RenderingIRQ: true,
		},
		Debug: DebugConfig{
			EchoLog: true,
		},
	}
}

// LoadConfig reads a JSON configuration. Missing fields keep their defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := NewConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return fmt.Errorf("config: sample rate %d out of range", c.Audio.SampleRate)
	}
	if c.Audio.BufferSize < 256 {
		return fmt.Errorf("config: buffer size %d too small", c.Audio.BufferSize)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: volume %.2f out of range", c.Audio.Volume)
	}
	if _, err := c.overflow(); err != nil {
		return err
	}
	return nil
}

func (c *Config) overflow() (audio.Overflow, error) {
	switch strings.ToLower(c.Audio.Overflow) {
	case "", "drop":
		return audio.Drop, nil
	case "block":
		return audio.Block, nil
	}
	return audio.Drop, fmt.Errorf("config: unknown overflow policy %q", c.Audio.Overflow)
}
