package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeys(t *testing.T) {
	tr := NewTranslator(0, 0)
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Press(KeyLeft), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Press(KeyEnter), true},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '4', tcell.ModNone), RuneDown('4'), true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), RuneDown(' '), true},
		{"unmapped", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), Event{}, false},
	}

	for _, tt := range tests {
		got, ok := tr.Translate(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: got %+v,%v want %+v,%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTranslateClickOnPressOnly(t *testing.T) {
	tr := NewTranslator(2, 1)

	ev, ok := tr.Translate(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if !ok || ev != Click(8, 4) {
		t.Fatalf("Press: got %+v,%v", ev, ok)
	}
	if _, ok := tr.Translate(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone)); ok {
		t.Error("Drag with button held should not click again")
	}
	if _, ok := tr.Translate(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Error("Release should not click")
	}
	if _, ok := tr.Translate(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone)); !ok {
		t.Error("Second press should click")
	}
}
