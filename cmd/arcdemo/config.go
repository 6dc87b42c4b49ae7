package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/roundui/arcscroll"
)

// Config is the demo configuration, loaded from a TOML file next to the
// binary. Every field has a working default so the demo runs without any
// config file at all.
type Config struct {
	// Size is the simulated display diameter in pixels.
	Size int `toml:"size"`

	// Pages is the page count of the simulated pager.
	Pages int `toml:"pages"`

	Padding     float64 `toml:"padding"`
	StrokeWidth float64 `toml:"stroke_width"`

	// TrackColor and ThumbColor are hex colors like "#AEB2B8". Empty
	// keeps the built-in theme color.
	TrackColor string `toml:"track_color"`
	ThumbColor string `toml:"thumb_color"`

	HideDelayMS int `toml:"hide_delay_ms"`
	FadeMS      int `toml:"fade_ms"`

	// Audio enables the speaker click standing in for haptic pulses.
	Audio bool `toml:"audio"`

	// ExportPath is where the "s" key writes the current frame.
	ExportPath string `toml:"export_path"`
}

// DefaultConfig returns the configuration the demo runs with when no file
// is present.
func DefaultConfig() Config {
	return Config{
		Size:        450,
		Pages:       5,
		Padding:     arcscroll.DefaultPadding,
		StrokeWidth: arcscroll.DefaultStrokeWidth,
		HideDelayMS: int(arcscroll.DefaultHideDelay / time.Millisecond),
		FadeMS:      int(arcscroll.DefaultFadeDuration / time.Millisecond),
		Audio:       true,
		ExportPath:  "arcdemo.png",
	}
}

// LoadConfig reads the TOML file at path. A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects configurations the scrollbar would refuse anyway, with
// friendlier messages.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Pages < 1 {
		return fmt.Errorf("pages must be at least 1, got %d", c.Pages)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width must be positive, got %v", c.StrokeWidth)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", c.Padding)
	}
	if c.HideDelayMS <= 0 {
		return fmt.Errorf("hide_delay_ms must be positive, got %d", c.HideDelayMS)
	}
	if c.FadeMS < 0 {
		return fmt.Errorf("fade_ms must not be negative, got %d", c.FadeMS)
	}
	return nil
}

// Options translates the configuration into scrollbar options.
func (c Config) Options() []arcscroll.Option {
	opts := []arcscroll.Option{
		arcscroll.WithPadding(c.Padding),
		arcscroll.WithStrokeWidth(c.StrokeWidth),
		arcscroll.WithHideDelay(time.Duration(c.HideDelayMS) * time.Millisecond),
		arcscroll.WithFade(time.Duration(c.FadeMS)*time.Millisecond, nil),
	}
	if c.TrackColor != "" {
		opts = append(opts, arcscroll.WithTrackColor(arcscroll.Hex(c.TrackColor)))
	}
	if c.ThumbColor != "" {
		opts = append(opts, arcscroll.WithThumbColor(arcscroll.Hex(c.ThumbColor)))
	}
	return opts
}
