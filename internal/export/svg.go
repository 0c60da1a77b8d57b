package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/tree"
)

// SVGSurface accumulates an SVG document. It implements render.Surface.
type SVGSurface struct {
	width, height int
	sb            strings.Builder
	background    string
	stroke        string
	strokeWidth   float64
	cap           string
}

// NewSVGSurface returns an empty width x height document.
func NewSVGSurface(width, height int) *SVGSurface {
	return &SVGSurface{width: width, height: height, background: "#ffffff", stroke: "#000000", strokeWidth: 1, cap: "butt"}
}

// Clear discards everything drawn so far and sets the background.
func (s *SVGSurface) Clear(c color.Color) {
	s.sb.Reset()
	s.background = render.Hex(c)
}

func (s *SVGSurface) SetLineCap(c render.LineCap) {
	switch c {
	case render.CapRound:
		s.cap = "round"
	case render.CapSquare:
		s.cap = "square"
	default:
		s.cap = "butt"
	}
}

func (s *SVGSurface) SetStroke(c color.Color)  { s.stroke = render.Hex(c) }
func (s *SVGSurface) SetStrokeWidth(w float64) { s.strokeWidth = w }

func (s *SVGSurface) Line(x1, y1, x2, y2 float64) {
	s.sb.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g"/>
`, x1, y1, x2, y2, s.stroke, s.strokeWidth))
}

// String returns the complete document.
func (s *SVGSurface) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="none" stroke-linecap="%s">
`, s.width, s.height, s.width, s.height, s.background, s.cap))

	sb.WriteString(s.sb.String())
	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// SVG renders seq as a width x height SVG document to w.
func SVG(w io.Writer, seq tree.Sequence, st render.Style, width, height int) error {
	s := NewSVGSurface(width, height)
	render.Render(s, seq, st)
	_, err := io.WriteString(w, s.String())
	return err
}
