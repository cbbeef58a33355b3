package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used when rasterizing shapes onto terminal cells
const (
	GlyphFill   = '█'
	GlyphStroke = '▒'
	GlyphRing   = '•'
)

// Canvas is a Surface over a rectangular region of a tcell screen
// It only writes cells; the main loop calls Show once per frame
type Canvas struct {
	screen       tcell.Screen
	x0, y0, w, h int
	bg           tcell.Color
	fill, stroke tcell.Color
	mirror       bool
}

// NewCanvas creates a canvas over the w×h region at (x0, y0)
func NewCanvas(screen tcell.Screen, x0, y0, w, h int) *Canvas {
	return &Canvas{
		screen: screen,
		x0:     x0,
		y0:     y0,
		w:      w,
		h:      h,
		bg:     tcell.ColorBlack,
		fill:   tcell.ColorWhite,
		stroke: tcell.ColorWhite,
	}
}

// Resize moves and resizes the region, used on terminal resize
func (c *Canvas) Resize(x0, y0, w, h int) {
	c.x0, c.y0, c.w, c.h = x0, y0, w, h
}

// SetBackground sets the color Clear paints and shapes sit on
func (c *Canvas) SetBackground(col tcell.Color) {
	c.bg = col
}

// Origin returns the screen position of the region's top-left cell
func (c *Canvas) Origin() (x, y int) {
	return c.x0, c.y0
}

func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Clear resets every cell of the region to the background
func (c *Canvas) Clear() {
	style := tcell.StyleDefault.Background(c.bg)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			c.screen.SetContent(c.x0+x, c.y0+y, ' ', nil, style)
		}
	}
}

func (c *Canvas) SetFill(col tcell.Color)   { c.fill = col }
func (c *Canvas) SetStroke(col tcell.Color) { c.stroke = col }
func (c *Canvas) SetMirror(on bool)         { c.mirror = on }
func (c *Canvas) Mirrored() bool            { return c.mirror }

// FillRect paints every cell overlapped by the rectangle
func (c *Canvas) FillRect(x, y, w, h float64) {
	ix0, iy0, ix1, iy1 := cellSpan(x, y, w, h)
	style := c.style(c.fill)
	for cy := iy0; cy < iy1; cy++ {
		for cx := ix0; cx < ix1; cx++ {
			c.put(cx, cy, GlyphFill, style)
		}
	}
}

// StrokeRect paints the border cells of the rectangle
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	ix0, iy0, ix1, iy1 := cellSpan(x, y, w, h)
	style := c.style(c.stroke)
	for cx := ix0; cx < ix1; cx++ {
		c.put(cx, iy0, GlyphStroke, style)
		c.put(cx, iy1-1, GlyphStroke, style)
	}
	for cy := iy0; cy < iy1; cy++ {
		c.put(ix0, cy, GlyphStroke, style)
		c.put(ix1-1, cy, GlyphStroke, style)
	}
}

// FillCircle paints cells whose centers lie within r of (cx, cy); the center cell is always painted
func (c *Canvas) FillCircle(cx, cy, r float64) {
	style := c.style(c.fill)
	c.put(int(math.Floor(cx)), int(math.Floor(cy)), GlyphFill, style)
	c.circleCells(cx, cy, r+0.5, func(x, y int, d float64) {
		if d <= r {
			c.put(x, y, GlyphFill, style)
		}
	})
}

// StrokeCircle paints cells whose centers lie within half a cell of the circumference
func (c *Canvas) StrokeCircle(cx, cy, r float64) {
	style := c.style(c.stroke)
	c.circleCells(cx, cy, r+0.5, func(x, y int, d float64) {
		if math.Abs(d-r) <= 0.5 {
			c.put(x, y, GlyphRing, style)
		}
	})
}

// Text paints s starting at cell (x, y) in the fill color
func (c *Canvas) Text(x, y int, s string) {
	style := c.style(c.fill)
	for i, r := range []rune(s) {
		c.put(x+i, y, r, style)
	}
}

func (c *Canvas) circleCells(cx, cy, reach float64, fn func(x, y int, d float64)) {
	ix0, iy0 := int(math.Floor(cx-reach)), int(math.Floor(cy-reach))
	ix1, iy1 := int(math.Ceil(cx+reach)), int(math.Ceil(cy+reach))
	for y := iy0; y <= iy1; y++ {
		for x := ix0; x <= ix1; x++ {
			fn(x, y, math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy))
		}
	}
}

func (c *Canvas) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(fg).Background(c.bg)
}

// put writes one cell, applying the mirror transform and clipping to the region
func (c *Canvas) put(x, y int, r rune, style tcell.Style) {
	if c.mirror {
		x = c.w - 1 - x
	}
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.screen.SetContent(c.x0+x, c.y0+y, r, nil, style)
}

// cellSpan returns the half-open cell range overlapped by a rectangle
func cellSpan(x, y, w, h float64) (ix0, iy0, ix1, iy1 int) {
	ix0 = int(math.Floor(x))
	iy0 = int(math.Floor(y))
	ix1 = int(math.Ceil(x + w))
	iy1 = int(math.Ceil(y + h))
	if ix1 <= ix0 {
		ix1 = ix0 + 1
	}
	if iy1 <= iy0 {
		iy1 = iy0 + 1
	}
	return
}
