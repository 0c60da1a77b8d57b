package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/san-kum/fractree/internal/render"
	"github.com/san-kum/fractree/internal/tree"
)

// PNGSurface rasterises onto a gg context. It implements render.Surface.
type PNGSurface struct {
	dc    *gg.Context
	scale float64
}

// NewPNGSurface returns a width x height raster. Drawing coordinates are
// multiplied by scale.
func NewPNGSurface(width, height int, scale float64) *PNGSurface {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(int(float64(width)*scale), int(float64(height)*scale))
	dc.Scale(scale, scale)
	return &PNGSurface{dc: dc, scale: scale}
}

func (p *PNGSurface) Clear(c color.Color) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

func (p *PNGSurface) SetLineCap(c render.LineCap) {
	switch c {
	case render.CapRound:
		p.dc.SetLineCapRound()
	case render.CapSquare:
		p.dc.SetLineCapSquare()
	default:
		p.dc.SetLineCapButt()
	}
}

func (p *PNGSurface) SetStroke(c color.Color) { p.dc.SetColor(c) }

// SetStrokeWidth scales w itself: gg transforms path points but not the
// stroke width.
func (p *PNGSurface) SetStrokeWidth(w float64) { p.dc.SetLineWidth(w * p.scale) }

// Line strokes immediately so later colour and width changes do not apply
// retroactively.
func (p *PNGSurface) Line(x1, y1, x2, y2 float64) {
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

// Context exposes the underlying gg context.
func (p *PNGSurface) Context() *gg.Context { return p.dc }

// Encode writes the raster as PNG.
func (p *PNGSurface) Encode(w io.Writer) error {
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNG renders seq onto a width x height canvas, scaled by scale, and writes
// it to w.
func PNG(w io.Writer, seq tree.Sequence, st render.Style, width, height int, scale float64) error {
	p := NewPNGSurface(width, height, scale)
	render.Render(p, seq, st)
	return p.Encode(w)
}
