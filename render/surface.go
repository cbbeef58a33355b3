package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawing target a minigame paints each frame
// Coordinates are cells; x grows right, y grows down
// Text is painted with the fill color
type Surface interface {
	Size() (w, h int)
	Clear()
	SetFill(c tcell.Color)
	SetStroke(c tcell.Color)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	StrokeCircle(cx, cy, r float64)
	Text(x, y int, s string)
	// SetMirror applies or resets a horizontal mirroring transform to subsequent draws
	SetMirror(on bool)
	Mirrored() bool
}
