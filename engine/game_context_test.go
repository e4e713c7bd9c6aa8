package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/runecast/constants"
	"github.com/lixenwraith/runecast/spell"
)

func newTestGameContext(t *testing.T) (*GameContext, *MockTimeProvider) {
	t.Helper()
	catalog, err := spell.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	clock := NewMockTimeProvider(testEpoch)
	ctx := NewGameContext(GameConfig{
		Settings: DefaultSettings(),
		Catalog:  catalog,
		Clock:    clock,
		Width:    100,
		Height:   40,
	})
	t.Cleanup(ctx.Shutdown)
	return ctx, clock
}

// pathStartCell returns the terminal cell under the first point of the selected spell
func pathStartCell(ctx *GameContext) (int, int) {
	p := ctx.Session.PixelPath()[0]
	return ctx.Surface.PixelToCell(p.X, p.Y)
}

func TestSurfaceMapping(t *testing.T) {
	s := NewSurface(100, 40)
	if s.Rows != 40-constants.HUDRows {
		t.Errorf("Rows = %d, want %d", s.Rows, 40-constants.HUDRows)
	}

	w, h := s.PixelSize()
	if w != 800 || h != float64(s.Rows)*constants.CellHeightPx {
		t.Errorf("PixelSize() = %v x %v", w, h)
	}

	px, py := s.CellToPixel(3, constants.HUDRows)
	if px != 28 || py != 8 {
		t.Errorf("CellToPixel(3, HUDRows) = (%v, %v), want (28, 8)", px, py)
	}
	if x, y := s.PixelToCell(px, py); x != 3 || y != constants.HUDRows {
		t.Errorf("PixelToCell round trip = (%d, %d)", x, y)
	}

	if s.Contains(0, 0) {
		t.Error("HUD rows must be outside the play area")
	}
	if !s.Contains(99, 39) || s.Contains(100, 39) {
		t.Error("Contains() bounds wrong at the right edge")
	}
}

func TestGameContextCastFlow(t *testing.T) {
	ctx, clock := newTestGameContext(t)

	if err := ctx.SelectSlot(1); err != nil {
		t.Fatalf("SelectSlot(1): %v", err)
	}
	x, y := pathStartCell(ctx)
	if !ctx.PointerDown(x, y) {
		t.Fatal("PointerDown on the guide did not start a gesture")
	}
	if !ctx.Countdown.Running() {
		t.Error("countdown should run while casting")
	}

	clock.Advance(300 * time.Millisecond)
	ctx.PointerMove(x+1, y)
	result, ok := ctx.PointerUp()
	if !ok {
		t.Fatal("PointerUp did not resolve the cast")
	}
	if ctx.Countdown.Running() {
		t.Error("countdown should stop after resolve")
	}

	stats := ctx.Stats()
	if stats.Casts != 1 {
		t.Errorf("Stats().Casts = %d, want 1", stats.Casts)
	}
	if result.Success && stats.TotalDamage != result.Damage {
		t.Errorf("Stats().TotalDamage = %d, want %d", stats.TotalDamage, result.Damage)
	}
}

func TestGameContextPauseFreezesCountdown(t *testing.T) {
	ctx, clock := newTestGameContext(t)
	if err := ctx.SelectSlot(2); err != nil {
		t.Fatalf("SelectSlot(2): %v", err)
	}
	x, y := pathStartCell(ctx)
	ctx.PointerDown(x, y)

	clock.Advance(time.Second)
	if !ctx.TogglePause() {
		t.Fatal("TogglePause() should report paused")
	}
	if ctx.Countdown.Running() {
		t.Error("countdown should stop while paused")
	}

	clock.Advance(10 * time.Second)
	ctx.Update(constants.SimulationFrame)
	if ctx.Session.Phase() != PhaseCasting {
		t.Fatalf("Phase() = %s while paused, want casting", ctx.Session.Phase())
	}
	if got := ctx.Session.Remaining(); got != 4*time.Second {
		t.Errorf("Remaining() = %v while paused, want 4s", got)
	}
	if ctx.PointerDown(x, y) {
		t.Error("input should be ignored while paused")
	}

	ctx.TogglePause()
	clock.Advance(4 * time.Second)
	ctx.TickCountdown()
	if ctx.Session.Phase() != PhaseCooldown {
		t.Errorf("Phase() = %s after budget, want cooldown", ctx.Session.Phase())
	}
	if ctx.Stats().Timeouts != 1 {
		t.Errorf("Stats().Timeouts = %d, want 1", ctx.Stats().Timeouts)
	}
}

func TestGameContextSelectBadSlot(t *testing.T) {
	ctx, _ := newTestGameContext(t)
	if err := ctx.SelectSlot(99); err == nil {
		t.Error("SelectSlot(99) should fail")
	}
}

func TestGameContextResize(t *testing.T) {
	ctx, _ := newTestGameContext(t)
	if err := ctx.SelectSlot(1); err != nil {
		t.Fatalf("SelectSlot(1): %v", err)
	}
	before := len(ctx.Session.Segments())

	ctx.Resize(200, 80)

	w, h := ctx.Surface.PixelSize()
	if w != 1600 || h != float64(80-constants.HUDRows)*constants.CellHeightPx {
		t.Errorf("PixelSize() = %v x %v after resize", w, h)
	}
	if after := len(ctx.Session.Segments()); after <= before {
		t.Errorf("segment count %d -> %d, want more segments on a larger surface", before, after)
	}
}

func TestGameContextUpdateAdvancesFrame(t *testing.T) {
	ctx, _ := newTestGameContext(t)
	ctx.Update(constants.SimulationFrame)
	ctx.Update(constants.SimulationFrame)
	if got := ctx.FrameNumber.Load(); got != 2 {
		t.Errorf("FrameNumber = %d, want 2", got)
	}
}
