package engine

import (
	"errors"
	"time"

	"github.com/lixenwraith/runecast/core"
	"github.com/lixenwraith/runecast/spell"
)

// CastResult is emitted once per resolved gesture
type CastResult struct {
	SpellID        string
	SpellName      string
	Rarity         spell.RarityTier
	Success        bool
	Damage         int // computed on failure too
	Accuracy       float64
	Score          int
	Samples        int
	SegmentsBroken int
	Elapsed        time.Duration
	TimedOut       bool
	Essence        []spell.EssenceCost
	ResolvedAt     time.Time
}

// Economy validates and applies essence costs of successful casts
type Economy interface {
	Deduct(spellID string, cost []spell.EssenceCost) error
}

// ResultSink receives every cast result for display or analytics
type ResultSink interface {
	CastResolved(result CastResult) error
}

// SoundPlayer plays one-shot effects; implementations must not block
type SoundPlayer interface {
	Play(sound core.SoundType)
}

// ResultSinkFunc adapts a function to ResultSink
type ResultSinkFunc func(CastResult) error

func (f ResultSinkFunc) CastResolved(result CastResult) error { return f(result) }

// MultiSink fans a result out to every sink, joining their errors
func MultiSink(sinks ...ResultSink) ResultSink {
	return ResultSinkFunc(func(result CastResult) error {
		var errs []error
		for _, s := range sinks {
			if s == nil {
				continue
			}
			if err := s.CastResolved(result); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}

type noopEconomy struct{}

func (noopEconomy) Deduct(string, []spell.EssenceCost) error { return nil }

type noopSink struct{}

func (noopSink) CastResolved(CastResult) error { return nil }

type noopSound struct{}

func (noopSound) Play(core.SoundType) {}
