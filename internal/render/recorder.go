package render

import "image/color"

// Op is one recorded surface call.
type Op struct {
	Kind  string
	Color color.Color
	Cap   LineCap
	Width float64
	Line  [4]float64
}

// Recorder is a Surface that records every call. It backs dry runs and tests.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(c color.Color)      { r.Ops = append(r.Ops, Op{Kind: "clear", Color: c}) }
func (r *Recorder) SetLineCap(c LineCap)     { r.Ops = append(r.Ops, Op{Kind: "cap", Cap: c}) }
func (r *Recorder) SetStroke(c color.Color)  { r.Ops = append(r.Ops, Op{Kind: "stroke", Color: c}) }
func (r *Recorder) SetStrokeWidth(w float64) { r.Ops = append(r.Ops, Op{Kind: "width", Width: w}) }

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: "line", Line: [4]float64{x1, y1, x2, y2}})
}

// Count returns the number of recorded ops of the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
