package render

import "math"

// ExtendSquare lengthens a line by half its width at both ends, turning a
// butt-ended stroke into a square-capped one. Degenerate lines are returned
// unchanged.
func ExtendSquare(x1, y1, x2, y2, width float64) (float64, float64, float64, float64) {
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return x1, y1, x2, y2
	}
	ex, ey := dx/l*width/2, dy/l*width/2
	return x1 - ex, y1 - ey, x2 + ex, y2 + ey
}

// Fit maps a world of size ww x wh into a target of size tw x th, keeping the
// aspect ratio and centring the result.
type Fit struct {
	Scale      float64
	OffX, OffY float64
}

// NewFit computes the transform. Non-positive world sizes yield identity.
func NewFit(ww, wh, tw, th float64) Fit {
	if ww <= 0 || wh <= 0 {
		return Fit{Scale: 1}
	}
	s := math.Min(tw/ww, th/wh)
	return Fit{
		Scale: s,
		OffX:  (tw - ww*s) / 2,
		OffY:  (th - wh*s) / 2,
	}
}

// Apply transforms a world point.
func (f Fit) Apply(x, y float64) (float64, float64) {
	return x*f.Scale + f.OffX, y*f.Scale + f.OffY
}
