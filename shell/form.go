package shell

import (
	"unicode"

	"github.com/lixenwraith/party-arcade/config"
	"github.com/lixenwraith/party-arcade/input"
)

// Field is one focusable row of the start form
type Field int

const (
	FieldName Field = iota
	FieldInverted
	FieldOneLife
	FieldGlitch
	FieldTheme
	FieldStart
	fieldCount
)

// nameFieldLimit caps typing; names longer than the rule still reach validation
const nameFieldLimit = 12

// Form is the start-screen state: name, modifiers, theme and focus
type Form struct {
	Name   []rune
	Config config.RunConfig
	Focus  Field
	Err    string
}

// NewForm creates a form prefilled with name and the default modifiers
func NewForm(name string, cfg config.RunConfig) *Form {
	f := &Form{Config: cfg}
	for _, r := range name {
		f.insert(r)
	}
	return f
}

// Value returns the typed name as entered
func (f *Form) Value() string {
	return string(f.Name)
}

// Next moves focus down, wrapping
func (f *Form) Next() {
	f.Focus = (f.Focus + 1) % fieldCount
}

// Prev moves focus up, wrapping
func (f *Form) Prev() {
	f.Focus = (f.Focus + fieldCount - 1) % fieldCount
}

// Handle applies a key-down event and reports whether the player asked to start
func (f *Form) Handle(ev input.Event) bool {
	if ev.Kind != input.KindKeyDown {
		return false
	}
	switch ev.Key {
	case input.KeyEnter:
		return true
	case input.KeyTab, input.KeyDown:
		f.Next()
	case input.KeyUp:
		f.Prev()
	case input.KeySpace:
		if f.Focus == FieldStart {
			return true
		}
		f.toggle()
	case input.KeyLeft, input.KeyRight:
		if f.Focus == FieldTheme {
			f.cycleTheme(ev.Key == input.KeyRight)
		}
	case input.KeyBackspace:
		if f.Focus == FieldName && len(f.Name) > 0 {
			f.Name = f.Name[:len(f.Name)-1]
			f.Err = ""
		}
	case input.KeyRune:
		if f.Focus == FieldName {
			f.insert(ev.Rune)
			f.Err = ""
		}
	}
	return false
}

func (f *Form) insert(r rune) {
	if len(f.Name) >= nameFieldLimit || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return
	}
	f.Name = append(f.Name, r)
}

func (f *Form) toggle() {
	switch f.Focus {
	case FieldInverted:
		f.Config.Inverted = !f.Config.Inverted
	case FieldOneLife:
		f.Config.OneLife = !f.Config.OneLife
	case FieldGlitch:
		f.Config.Glitch = !f.Config.Glitch
	case FieldTheme:
		f.cycleTheme(true)
	}
}

func (f *Form) cycleTheme(forward bool) {
	if forward {
		f.Config.Theme = f.Config.Theme.Next()
		return
	}
	themes := config.Themes()
	f.Config.Theme = themes[(int(f.Config.Theme)+len(themes)-1)%len(themes)]
}
