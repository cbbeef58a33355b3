package render

import "github.com/gdamore/tcell/v2"

// OpKind names a recorded drawing operation
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
	OpFillRect
	OpStrokeRect
	OpFillCircle
	OpStrokeCircle
	OpText
	OpMirror
)

// Op is one recorded drawing call
type Op struct {
	Kind  OpKind
	Color tcell.Color
	Args  [4]float64
	Text  string
}

// Recorder is a Surface that logs calls instead of drawing
// Used to assert drawing discipline without a terminal
type Recorder struct {
	W, H   int
	ops    []Op
	mirror bool
}

// NewRecorder creates a recorder reporting size w×h
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h}
}

// Ops returns the calls recorded since the last Reset
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset discards recorded calls
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Count returns how many recorded calls are of kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings painted since the last Reset
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }
func (r *Recorder) Clear()            { r.ops = append(r.ops, Op{Kind: OpClear}) }
func (r *Recorder) Mirrored() bool    { return r.mirror }

func (r *Recorder) SetFill(c tcell.Color) {
	r.ops = append(r.ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) SetStroke(c tcell.Color) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Args: [4]float64{x, y, w, h}})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, Args: [4]float64{x, y, w, h}})
}

func (r *Recorder) FillCircle(cx, cy, rad float64) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, Args: [4]float64{cx, cy, rad}})
}

func (r *Recorder) StrokeCircle(cx, cy, rad float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeCircle, Args: [4]float64{cx, cy, rad}})
}

func (r *Recorder) Text(x, y int, s string) {
	r.ops = append(r.ops, Op{Kind: OpText, Args: [4]float64{float64(x), float64(y)}, Text: s})
}

func (r *Recorder) SetMirror(on bool) {
	r.mirror = on
	v := 0.0
	if on {
		v = 1
	}
	r.ops = append(r.ops, Op{Kind: OpMirror, Args: [4]float64{v}})
}
