package systems

import (
	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/vmath"
)

// GuideSegment is one breakable piece of the reference path in pixel space
type GuideSegment struct {
	vmath.Line
	Broken bool

	// arc-length fraction of the midpoint along the whole path, used to carry state across resizes
	arc float64
}

// SegmentTracker splits a path into short guide segments and tracks which have shattered
type SegmentTracker struct {
	segments []GuideSegment
	segLen   float64
}

// NewSegmentTracker creates a tracker targeting segLen pixels per segment
func NewSegmentTracker(segLen float64) *SegmentTracker {
	if segLen <= 0 {
		segLen = constants.GuideSegmentLength
	}
	return &SegmentTracker{segLen: segLen}
}

// Build replaces all segments with fresh intact ones derived from a pixel-space path
func (t *SegmentTracker) Build(path []vmath.Point) {
	lines := vmath.SplitPath(path, t.segLen)
	t.segments = t.segments[:0]

	total := 0.0
	for _, l := range lines {
		total += l.Length()
	}

	walked := 0.0
	for _, l := range lines {
		length := l.Length()
		arc := 0.0
		if total > 0 {
			arc = (walked + length/2) / total
		}
		walked += length
		t.segments = append(t.segments, GuideSegment{Line: l, arc: arc})
	}
}

// Rebuild re-derives segments for a new pixel path, keeping segments broken whose
// arc position falls within a previously broken segment
func (t *SegmentTracker) Rebuild(path []vmath.Point) {
	old := make([]GuideSegment, len(t.segments))
	copy(old, t.segments)

	t.Build(path)
	if len(old) == 0 {
		return
	}

	for i := range t.segments {
		t.segments[i].Broken = old[nearestArc(old, t.segments[i].arc)].Broken
	}
}

// Evaluate breaks every intact segment whose midpoint lies within break distance of p,
// provided the sample is accurate enough. Returns the indices broken by this call
func (t *SegmentTracker) Evaluate(p vmath.Point, accuracy float64) []int {
	if accuracy < constants.SegmentBreakAccuracy {
		return nil
	}

	var broken []int
	for i := range t.segments {
		s := &t.segments[i]
		if s.Broken {
			continue
		}
		if vmath.Dist(p, s.Midpoint()) < constants.SegmentBreakDistance {
			s.Broken = true
			broken = append(broken, i)
		}
	}
	return broken
}

// Segment returns the segment at index i
func (t *SegmentTracker) Segment(i int) GuideSegment {
	return t.segments[i]
}

// Segments returns the segment list; callers must not modify it
func (t *SegmentTracker) Segments() []GuideSegment {
	return t.segments
}

// BrokenCount returns how many segments have shattered
func (t *SegmentTracker) BrokenCount() int {
	n := 0
	for i := range t.segments {
		if t.segments[i].Broken {
			n++
		}
	}
	return n
}

// Reset drops all segments
func (t *SegmentTracker) Reset() {
	t.segments = t.segments[:0]
}

func nearestArc(segments []GuideSegment, arc float64) int {
	best, bestDiff := 0, 2.0
	for i := range segments {
		d := segments[i].arc - arc
		if d < 0 {
			d = -d
		}
		if d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
