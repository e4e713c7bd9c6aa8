package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ShatterGenerator generates a crackling glass break
type ShatterGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
	prev float64
}

// NewShatterGenerator creates a shatter sound generator; seed varies the crackle
func NewShatterGenerator(sr beep.SampleRate, seed int64) *ShatterGenerator {
	return &ShatterGenerator{sr: sr, seed: seed}
}

func (g *ShatterGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sharp attack, fast decay
		envelope := math.Exp(-t * 22)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		// High-pass: difference against previous sample brightens the noise
		bright := noise - 0.6*g.prev
		g.prev = noise

		ring := 0.2 * math.Sin(2*math.Pi*3100*t)
		sample := envelope * (0.3*bright + ring)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ShatterGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a rising three-partial chime for a successful cast
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

// Root, fifth, octave
var chimePartials = [3]float64{523.25, 783.99, 1046.5}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		for k, f := range chimePartials {
			// Each partial enters 60ms after the previous
			start := float64(k) * 0.06
			if t < start {
				continue
			}
			lt := t - start
			env := math.Min(lt/0.005, 1.0) * math.Exp(-lt*4)
			sample += 0.12 * env * math.Sin(2*math.Pi*f*lt)
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Pitch sags as the spell fizzles
		freq := g.freq * (1 - 0.4*math.Min(t/0.35, 1))

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*freq*3*t)

		envelope := math.Min(t/0.02, 1.0) * math.Exp(-t*5)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// PingGenerator generates a short bright ping for perfect samples
type PingGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewPingGenerator creates a ping generator
func NewPingGenerator(sr beep.SampleRate, freq float64) *PingGenerator {
	return &PingGenerator{sr: sr, freq: freq}
}

func (g *PingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := 0.18 * math.Exp(-t*40) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PingGenerator) Err() error {
	return nil
}
