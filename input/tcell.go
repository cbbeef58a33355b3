package input

import "github.com/gdamore/tcell/v2"

// Translator converts tcell events into logical input events
// Click coordinates are made relative to the surface origin
type Translator struct {
	OriginX, OriginY int
	prevButtons      tcell.ButtonMask
}

// NewTranslator creates a translator for a surface at (originX, originY)
func NewTranslator(originX, originY int) *Translator {
	return &Translator{OriginX: originX, OriginY: originY}
}

var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyTab:        KeyTab,
}

// Translate returns the logical event for ev, or false if ev carries no game input
// Terminals report no key releases, so only key-down and click events are produced
func (t *Translator) Translate(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return RuneDown(e.Rune()), true
		}
		if k, ok := specialKeys[e.Key()]; ok {
			return Press(k), true
		}
		return Event{}, false

	case *tcell.EventMouse:
		buttons := e.Buttons()
		pressed := buttons&tcell.Button1 != 0 && t.prevButtons&tcell.Button1 == 0
		t.prevButtons = buttons
		if !pressed {
			return Event{}, false
		}
		x, y := e.Position()
		return Click(x-t.OriginX, y-t.OriginY), true
	}
	return Event{}, false
}
