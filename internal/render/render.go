// Package render draws branch sequences onto a drawing surface.
//
// The renderer is stateless: every call clears the surface and redraws the
// whole sequence in order, so later segments overlay earlier ones.
package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/fractree/internal/tree"
)

// LineCap selects how stroke ends are drawn.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Surface is the drawing capability set a backend must provide.
type Surface interface {
	Clear(c color.Color)
	SetLineCap(c LineCap)
	SetStroke(c color.Color)
	SetStrokeWidth(w float64)
	Line(x1, y1, x2, y2 float64)
}

// Style holds the per-frame defaults.
type Style struct {
	Background color.Color
	Hue        float64 // degrees
	Saturation float64 // percent
	Lightness  float64 // percent, used when a segment has no colour
	Width      float64 // used when a segment has no width
	Cap        LineCap
}

// DefaultStyle returns a dark green stroke on white with square caps.
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		Hue:        100,
		Saturation: 100,
		Lightness:  5,
		Width:      1,
		Cap:        CapSquare,
	}
}

// HSL converts hue in degrees and saturation/lightness in percent to a colour.
func HSL(h, s, l float64) color.Color {
	c := colorful.Hsl(h, clampPercent(s)/100, clampPercent(l)/100).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Render clears s and draws every segment of seq with st.
func Render(s Surface, seq tree.Sequence, st Style) {
	s.Clear(st.Background)
	s.SetLineCap(st.Cap)

	for _, seg := range seq {
		s.SetStroke(HSL(st.Hue, st.Saturation, seg.Lightness(st.Lightness)))
		s.SetStrokeWidth(seg.StrokeWidth(st.Width))
		s.Line(seg.X1, seg.Y1, seg.X2, seg.Y2)
	}
}

// ParseHex parses "#rrggbb" into a colour.
func ParseHex(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
