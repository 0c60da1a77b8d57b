package viz

import (
	"image/color"
	"math"

	"github.com/san-kum/fractree/internal/render"
)

// CanvasSurface adapts a Canvas to render.Surface. World coordinates are
// fitted into the canvas with the aspect ratio preserved.
type CanvasSurface struct {
	canvas     *Canvas
	fit        render.Fit
	background color.Color
	stroke     color.Color
	width      float64
	cap        render.LineCap
}

// NewCanvasSurface maps a worldW x worldH drawing area onto c.
func NewCanvasSurface(c *Canvas, worldW, worldH float64) *CanvasSurface {
	return &CanvasSurface{
		canvas: c,
		fit:    render.NewFit(worldW, worldH, float64(c.SubWidth()), float64(c.SubHeight())),
		width:  1,
	}
}

func (s *CanvasSurface) Clear(c color.Color) {
	s.canvas.Clear()
	s.background = c
}

func (s *CanvasSurface) SetLineCap(c render.LineCap) { s.cap = c }
func (s *CanvasSurface) SetStroke(c color.Color)     { s.stroke = c }
func (s *CanvasSurface) SetStrokeWidth(w float64)    { s.width = w }
func (s *CanvasSurface) Background() color.Color     { return s.background }
func (s *CanvasSurface) Canvas() *Canvas             { return s.canvas }

func (s *CanvasSurface) Line(x1, y1, x2, y2 float64) {
	if s.cap == render.CapSquare {
		x1, y1, x2, y2 = render.ExtendSquare(x1, y1, x2, y2, s.width)
	}
	ax, ay := s.fit.Apply(x1, y1)
	bx, by := s.fit.Apply(x2, y2)
	radius := int(s.width * s.fit.Scale / 2)
	s.canvas.DrawLine(round(ax), round(ay), round(bx), round(by), radius, s.stroke)
}

func round(v float64) int { return int(math.Round(v)) }
