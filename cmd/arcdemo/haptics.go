package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Clicker stands in for a vibration motor: each pulse plays a short click
// through the speaker, with the pulse amplitude mapped to volume. It
// implements arcscroll.Haptics.
type Clicker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewClicker creates an uninitialized clicker. Call Init before use; an
// uninitialized clicker silently drops pulses.
func NewClicker() *Clicker {
	return &Clicker{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer.
func (c *Clicker) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Vibrate plays one click of the given duration and amplitude.
func (c *Clicker) Vibrate(d time.Duration, amplitude float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(d), newClickGenerator(sampleRate, amplitude))
	speaker.Lock()
	c.mixer.Add(streamer)
	speaker.Unlock()
}

// clickGenerator synthesizes a short damped sine burst.
type clickGenerator struct {
	sr        beep.SampleRate
	amplitude float64
	pos       int
}

func newClickGenerator(sr beep.SampleRate, amplitude float64) *clickGenerator {
	return &clickGenerator{sr: sr, amplitude: amplitude}
}

func (g *clickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2 * math.Pi * 1200 * t)
		// Sharp attack, exponential decay.
		envelope := math.Exp(-t * 120)
		sample *= envelope * g.amplitude * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *clickGenerator) Err() error {
	return nil
}
