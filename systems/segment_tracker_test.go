package systems

import (
	"testing"

	"github.com/lixenwraith/runecast/vmath"
)

func straightPath(length float64) []vmath.Point {
	return []vmath.Point{{X: 0, Y: 100}, {X: length, Y: 100}}
}

func TestSegmentTrackerBuild(t *testing.T) {
	tr := NewSegmentTracker(15)
	tr.Build(straightPath(150))

	if got := len(tr.Segments()); got != 10 {
		t.Fatalf("len(Segments()) = %d, want 10", got)
	}
	for i, s := range tr.Segments() {
		if s.Broken {
			t.Errorf("segment %d built broken", i)
		}
	}
}

func TestEvaluateBreaksNearbySegmentOnce(t *testing.T) {
	tr := NewSegmentTracker(15)
	tr.Build(straightPath(150))

	mid := tr.Segment(3).Midpoint()
	broken := tr.Evaluate(mid, 0.95)
	if len(broken) != 1 || broken[0] != 3 {
		t.Fatalf("Evaluate() = %v, want [3]", broken)
	}

	if again := tr.Evaluate(mid, 0.99); len(again) != 0 {
		t.Errorf("second Evaluate() = %v, want no new breaks", again)
	}
	if tr.BrokenCount() != 1 {
		t.Errorf("BrokenCount() = %d, want 1", tr.BrokenCount())
	}
}

func TestEvaluateRequiresCriticalAccuracy(t *testing.T) {
	tr := NewSegmentTracker(15)
	tr.Build(straightPath(150))

	if broken := tr.Evaluate(tr.Segment(0).Midpoint(), 0.85); broken != nil {
		t.Errorf("Evaluate() below critical = %v, want nil", broken)
	}
}

func TestEvaluateRespectsBreakDistance(t *testing.T) {
	tr := NewSegmentTracker(15)
	tr.Build(straightPath(150))

	mid := tr.Segment(5).Midpoint()
	far := vmath.Point{X: mid.X, Y: mid.Y + 12}
	if broken := tr.Evaluate(far, 1); len(broken) != 0 {
		t.Errorf("Evaluate() at break distance = %v, want none", broken)
	}

	// Between two midpoints 15 px apart, 7.5 px from each: both break
	between := vmath.Point{X: mid.X + 7.5, Y: mid.Y}
	if broken := tr.Evaluate(between, 1); len(broken) != 2 {
		t.Errorf("Evaluate() between midpoints broke %v, want 2 segments", broken)
	}
}

func TestRebuildCarriesBrokenState(t *testing.T) {
	tr := NewSegmentTracker(15)
	tr.Build(straightPath(150))
	tr.Evaluate(tr.Segment(0).Midpoint(), 1)

	tr.Rebuild(straightPath(300))

	if got := len(tr.Segments()); got != 20 {
		t.Fatalf("len(Segments()) = %d after rebuild, want 20", got)
	}
	if tr.BrokenCount() != 2 {
		t.Errorf("BrokenCount() = %d, want 2", tr.BrokenCount())
	}
	if !tr.Segment(0).Broken || !tr.Segment(1).Broken || tr.Segment(2).Broken {
		t.Error("broken state not carried to the leading arc of the path")
	}
}

func TestSegmentTrackerReset(t *testing.T) {
	tr := NewSegmentTracker(15)
	tr.Build(straightPath(60))
	tr.Reset()
	if len(tr.Segments()) != 0 {
		t.Errorf("Segments() after Reset = %d", len(tr.Segments()))
	}
}
