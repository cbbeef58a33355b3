package shell

import "github.com/gdamore/tcell/v2"

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
)

var boxChars = [...][6]rune{
	LineSingle:  {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble:  {'╔', '═', '╗', '║', '╚', '╝'},
	LineRounded: {'╭', '─', '╮', '│', '╰', '╯'},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

// Region is a clipped rectangle of a tcell screen
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	X, Y   int
	W, H   int
}

// Full returns the region covering the whole screen
func Full(screen tcell.Screen) Region {
	w, h := screen.Size()
	return Region{Screen: screen, W: w, H: h}
}

// Sub returns a nested region clipped to the parent
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	w = max(min(w, r.W-x), 0)
	h = max(min(h, r.H-y), 0)
	return Region{Screen: r.Screen, X: r.X + x, Y: r.Y + y, W: w, H: h}
}

// Center returns a w×h region centered in r
func (r Region) Center(w, h int) Region {
	return r.Sub((r.W-w)/2, (r.H-h)/2, w, h)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill paints every cell of the region with spaces
func (r Region) Fill(style tcell.Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', style)
		}
	}
}

// Box draws a border around the region edge
func (r Region) Box(line LineType, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if int(line) >= len(boxChars) {
		line = LineSingle
	}
	chars := boxChars[line]

	r.Cell(0, 0, chars[boxTL], style)
	r.Cell(r.W-1, 0, chars[boxTR], style)
	r.Cell(0, r.H-1, chars[boxBL], style)
	r.Cell(r.W-1, r.H-1, chars[boxBR], style)
	for x := 1; x < r.W-1; x++ {
		r.Cell(x, 0, chars[boxH], style)
		r.Cell(x, r.H-1, chars[boxH], style)
	}
	for y := 1; y < r.H-1; y++ {
		r.Cell(0, y, chars[boxV], style)
		r.Cell(r.W-1, y, chars[boxV], style)
	}
}

// ModalOpts configures modal overlay rendering
type ModalOpts struct {
	Title  string
	Hint   string // bottom edge, centered
	Border LineType
	Frame  tcell.Style
	Fill   tcell.Style
}

// Modal fills the region, draws a border with title and hint, returns the content region
func (r Region) Modal(opts ModalOpts) Region {
	if r.W < 5 || r.H < 3 {
		return r.Sub(1, 1, 0, 0)
	}
	r.Fill(opts.Fill)
	r.Box(opts.Border, opts.Frame)

	if opts.Title != "" {
		title := Truncate(" "+opts.Title+" ", r.W-4)
		r.Text((r.W-RuneLen(title))/2, 0, title, opts.Frame.Bold(true))
	}
	if opts.Hint != "" {
		hint := Truncate(" "+opts.Hint+" ", r.W-4)
		r.Text((r.W-RuneLen(hint))/2, r.H-1, hint, opts.Frame)
	}
	return r.Sub(1, 1, r.W-2, r.H-2)
}

// Text paints s at (x, y), clipped to the region; returns the runes written
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, ch := range s {
		if x+n >= r.W {
			break
		}
		r.Cell(x+n, y, ch, style)
		n++
	}
	return n
}

// TextCenter paints s horizontally centered on row y
func (r Region) TextCenter(y int, s string, style tcell.Style) {
	s = Truncate(s, r.W)
	r.Text((r.W-RuneLen(s))/2, y, s, style)
}

// Checkbox draws [x] or [ ] at (x, y)
func (r Region) Checkbox(x, y int, on bool, style tcell.Style) {
	ch := ' '
	if on {
		ch = 'x'
	}
	r.Cell(x, y, '[', style)
	r.Cell(x+1, y, ch, style)
	r.Cell(x+2, y, ']', style)
}

// RuneLen returns the rune count of s
func RuneLen(s string) int {
	return len([]rune(s))
}

// Truncate shortens s with a … suffix when it exceeds maxLen runes
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen == 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
