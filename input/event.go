package input

// Kind classifies an input event
type Kind uint8

const (
	KindKeyDown Kind = iota
	KindKeyUp
	KindClick
)

func (k Kind) String() string {
	switch k {
	case KindKeyDown:
		return "keydown"
	case KindKeyUp:
		return "keyup"
	case KindClick:
		return "click"
	default:
		return "unknown"
	}
}

// Key is a logical key identifier, independent of the terminal backend
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyRune // printable character in Event.Rune
)

// Event is one input occurrence
// X, Y are surface cell coordinates for clicks
type Event struct {
	Kind Kind
	Key  Key
	Rune rune
	X, Y int
}

// Press builds a key-down event for a logical key
func Press(k Key) Event {
	return Event{Kind: KindKeyDown, Key: k}
}

// RuneDown builds a key-down event for a printable character
func RuneDown(r rune) Event {
	if r == ' ' {
		return Event{Kind: KindKeyDown, Key: KeySpace, Rune: r}
	}
	return Event{Kind: KindKeyDown, Key: KeyRune, Rune: r}
}

// Click builds a pointer click at surface cell (x, y)
func Click(x, y int) Event {
	return Event{Kind: KindClick, X: x, Y: y}
}

// Digit returns the decimal digit carried by a rune key
func (e Event) Digit() (int, bool) {
	if e.Key != KeyRune || e.Rune < '0' || e.Rune > '9' {
		return 0, false
	}
	return int(e.Rune - '0'), true
}

// Direction returns the unit vector of an arrow key, y growing downward
func (e Event) Direction() (dx, dy int, ok bool) {
	switch e.Key {
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}
