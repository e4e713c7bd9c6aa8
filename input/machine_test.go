package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func inBox(x, y int) bool {
	return x >= 0 && x < 10 && y >= 2 && y < 10
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestGestureLifecycle(t *testing.T) {
	m := NewMachine(inBox)

	steps := []struct {
		ev   tcell.Event
		want IntentType
	}{
		{mouse(3, 4, tcell.ButtonNone), IntentNone},
		{mouse(3, 4, tcell.Button1), IntentGestureStart},
		{mouse(3, 4, tcell.Button1), IntentNone}, // same cell
		{mouse(4, 4, tcell.Button1), IntentGestureMove},
		{mouse(5, 5, tcell.Button1), IntentGestureMove},
		{mouse(5, 5, tcell.ButtonNone), IntentGestureEnd},
		{mouse(6, 6, tcell.ButtonNone), IntentNone},
	}

	for i, s := range steps {
		got := IntentNone
		if in := m.Process(s.ev); in != nil {
			got = in.Type
		}
		if got != s.want {
			t.Errorf("step %d: intent %d, want %d", i, got, s.want)
		}
	}
	if m.Pressed() {
		t.Error("machine still pressed after release")
	}
}

func TestGestureEndsWhenLeavingSurface(t *testing.T) {
	m := NewMachine(inBox)
	m.Process(mouse(3, 4, tcell.Button1))

	in := m.Process(mouse(3, 0, tcell.Button1))
	if in == nil || in.Type != IntentGestureEnd {
		t.Fatalf("leaving surface = %+v, want gesture end", in)
	}
	if in.X != 3 || in.Y != 4 {
		t.Errorf("end position = (%d,%d), want last inside cell (3,4)", in.X, in.Y)
	}

	if in := m.Process(mouse(3, 5, tcell.Button1)); in == nil || in.Type != IntentGestureStart {
		t.Errorf("re-entering with button held = %+v, want new gesture start", in)
	}
}

func TestPressOutsideSurfaceIgnored(t *testing.T) {
	m := NewMachine(inBox)
	if in := m.Process(mouse(3, 0, tcell.Button1)); in != nil {
		t.Errorf("press in HUD = %+v, want nil", in)
	}
	if m.Pressed() {
		t.Error("press outside surface should not start a gesture")
	}
}

func TestKeyIntents(t *testing.T) {
	m := NewMachine(nil)

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"slot 3", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), Intent{Type: IntentSelectSpell, Slot: 3}},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), Intent{Type: IntentPause}},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), Intent{Type: IntentToggleMute}},
		{"quit q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Type: IntentQuit}},
		{"quit esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Intent{Type: IntentQuit}},
		{"quit ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Type: IntentQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			if in == nil || *in != tt.want {
				t.Errorf("Process() = %+v, want %+v", in, tt.want)
			}
		})
	}

	if in := m.Process(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); in != nil {
		t.Errorf("unbound key = %+v, want nil", in)
	}
}

func TestResizeIntent(t *testing.T) {
	m := NewMachine(nil)
	if in := m.Process(tcell.NewEventResize(80, 24)); in == nil || in.Type != IntentResize {
		t.Errorf("resize = %+v", in)
	}
}
