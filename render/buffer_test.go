package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetModes(t *testing.T) {
	buf := NewRenderBuffer(4, 2)
	red := RGB{R: 200}
	blue := RGB{B: 100}

	buf.Set(0, 0, 'a', red, red, BlendReplace, 1, AttrNone)
	if c := buf.Get(0, 0); c.Rune != 'a' || c.Fg != red || c.Bg != red {
		t.Errorf("replace: got %+v", c)
	}

	buf.Set(0, 0, 0, blue, blue, BlendAdd, 1, AttrNone)
	if c := buf.Get(0, 0); c.Rune != 'a' || c.Bg != (RGB{R: 200, B: 100}) {
		t.Errorf("add keeps rune and sums bg: got %+v", c)
	}

	buf.Set(1, 0, 'b', RGBWhite, RGBWhite, BlendFgOnly, 1, AttrNone)
	if c := buf.Get(1, 0); c.Fg != RGBWhite || c.Bg == RGBWhite {
		t.Errorf("fg-only must leave bg: got %+v", c)
	}

	buf.Set(2, 0, 0, RGBBlack, RGBWhite, BlendMaxBg, 1, AttrNone)
	if c := buf.Get(2, 0); c.Bg != RGBWhite {
		t.Errorf("max bg: got %+v", c)
	}
}

func TestBufferOutOfBoundsIgnored(t *testing.T) {
	buf := NewRenderBuffer(2, 2)
	buf.SetWithBg(-1, 0, 'x', RGBWhite, RGBWhite)
	buf.SetFgOnly(2, 0, 'x', RGBWhite, AttrNone)
	buf.SetBgOnly(0, 5, RGBWhite)
	if (buf.Get(-1, 0) != Cell{}) {
		t.Error("Get out of bounds should return zero cell")
	}
}

func TestBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(3, 3)
	buf.SetWithBg(1, 1, 'x', RGBWhite, RGBWhite)
	buf.Resize(5, 2)

	if w, h := buf.Size(); w != 5 || h != 2 {
		t.Fatalf("Size() = %dx%d", w, h)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			if buf.Get(x, y).Rune != 0 {
				t.Fatalf("cell (%d,%d) not cleared", x, y)
			}
		}
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 1)

	buf := NewRenderBuffer(4, 1)
	buf.SetWithBg(1, 0, 'Z', RGBWhite, RgbBanner)
	buf.FlushToScreen(screen)

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != 'Z' {
		t.Errorf("screen rune = %q, want Z", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != RGBToTcell(RGBWhite) || bg != RGBToTcell(RgbBanner) {
		t.Errorf("style fg=%v bg=%v", fg, bg)
	}

	_, _, style, _ = screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); bg != RGBToTcell(RgbBackground) {
		t.Errorf("untouched cell bg = %v, want default background", bg)
	}
}

type recordingRenderer struct {
	name  string
	calls *[]string
	shown bool
}

func (r *recordingRenderer) Render(RenderContext, *RenderBuffer) { *r.calls = append(*r.calls, r.name) }
func (r *recordingRenderer) IsVisible() bool                     { return r.shown }

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	var calls []string
	o := NewRenderOrchestrator(screen, 4, 4)
	o.Register(&recordingRenderer{name: "ui", calls: &calls, shown: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "guide", calls: &calls, shown: true}, PriorityGuide)
	o.Register(&recordingRenderer{name: "hidden", calls: &calls, shown: false}, PriorityDebris)
	o.Register(&recordingRenderer{name: "guide2", calls: &calls, shown: true}, PriorityGuide)

	o.RenderFrame(RenderContext{})

	want := []string{"guide", "guide2", "ui"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestDrawTextWideRunes(t *testing.T) {
	buf := NewRenderBuffer(10, 1)
	end := DrawText(buf, 0, 0, "a界b", RGBWhite, RGBBlack)
	if end != 4 {
		t.Errorf("DrawText end = %d, want 4", end)
	}
	if buf.Get(3, 0).Rune != 'b' {
		t.Errorf("rune after wide char = %q, want b", buf.Get(3, 0).Rune)
	}
	if TextWidth("a界b") != 4 {
		t.Errorf("TextWidth = %d, want 4", TextWidth("a界b"))
	}
	if CenterX("ab", 10) != 4 {
		t.Errorf("CenterX = %d, want 4", CenterX("ab", 10))
	}
}
