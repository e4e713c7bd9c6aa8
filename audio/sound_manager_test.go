package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/engine"
)

var _ engine.SoundPlayer = (*SoundManager)(nil)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		sm.Play(st)
	}
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("manager reports initialized without device")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Play(core.SoundCast)
	sm.Cleanup()
}

func TestToggleMute(t *testing.T) {
	sm := NewSoundManager()
	if sm.Muted() {
		t.Fatal("new manager muted")
	}
	if !sm.ToggleMute() || !sm.Muted() {
		t.Error("ToggleMute should mute")
	}
	if sm.ToggleMute() {
		t.Error("second ToggleMute should unmute")
	}
}

// TestStreamerDurations checks every sound type is bounded by its configured length
func TestStreamerDurations(t *testing.T) {
	sm := NewSoundManager()

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := sm.streamer(st)
			if s == nil {
				t.Fatal("no streamer")
			}
			total, peak := drain(s)
			if total == 0 {
				t.Fatal("streamer produced no samples")
			}
			if total > sampleRate.N(2*time.Second) {
				t.Errorf("streamer too long: %d samples", total)
			}
			if peak == 0 {
				t.Error("streamer is silent")
			}
			if peak > 1 {
				t.Errorf("peak %.3f clips", peak)
			}
		})
	}

	if sm.streamer(core.SoundTypeCount) != nil {
		t.Error("out-of-range sound type should have no streamer")
	}
}

func TestGeneratorsDecay(t *testing.T) {
	gens := map[string]beep.Streamer{
		"shatter": NewShatterGenerator(sampleRate, 7),
		"chime":   NewChimeGenerator(sampleRate),
		"buzz":    NewBuzzGenerator(sampleRate, 110),
		"ping":    NewPingGenerator(sampleRate, 1760),
	}

	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			head := make([][2]float64, sampleRate.N(50*time.Millisecond))
			g.Stream(head)

			// Skip ahead two seconds
			skip := make([][2]float64, 4096)
			for n := 0; n < sampleRate.N(2*time.Second); n += len(skip) {
				g.Stream(skip)
			}
			tail := make([][2]float64, 1024)
			g.Stream(tail)

			if peakOf(tail) >= peakOf(head) {
				t.Errorf("tail peak %.4f not below head peak %.4f", peakOf(tail), peakOf(head))
			}
		})
	}
}

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		total += n
		peak = math.Max(peak, peakOf(buf[:n]))
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func peakOf(buf [][2]float64) float64 {
	p := 0.0
	for _, s := range buf {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}
