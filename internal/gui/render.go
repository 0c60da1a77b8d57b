package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/fractree/internal/render"
)

// surface draws onto the current raylib frame. It must only be used between
// BeginDrawing and EndDrawing.
type surface struct {
	stroke rl.Color
	width  float32
	cap    render.LineCap
}

func toRL(c color.Color) rl.Color {
	if c == nil {
		return rl.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (s *surface) Clear(c color.Color)         { rl.ClearBackground(toRL(c)) }
func (s *surface) SetLineCap(c render.LineCap) { s.cap = c }
func (s *surface) SetStroke(c color.Color)     { s.stroke = toRL(c) }
func (s *surface) SetStrokeWidth(w float64)    { s.width = float32(w) }

// Line emulates square caps by extending the segment, raylib only draws
// butt ends.
func (s *surface) Line(x1, y1, x2, y2 float64) {
	if s.cap == render.CapSquare {
		x1, y1, x2, y2 = render.ExtendSquare(x1, y1, x2, y2, float64(s.width))
	}
	rl.DrawLineEx(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		s.width,
		s.stroke,
	)
}
