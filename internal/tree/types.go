package tree

import (
	"fmt"
	"math"
	"strings"
)

// Variant selects one of the generation rule sets.
type Variant int

const (
	Basic Variant = iota
	Random
	Colored
)

// Variants lists every variant in selection order.
var Variants = []Variant{Basic, Random, Colored}

func (v Variant) String() string {
	switch v {
	case Basic:
		return "basic"
	case Random:
		return "random"
	case Colored:
		return "colored"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant maps a case-insensitive name to its Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return Basic, nil
	case "random":
		return Random, nil
	case "colored", "coloured":
		return Colored, nil
	}
	return Basic, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Segment is a single drawable branch.
//
// Color is an HSL lightness and Width a stroke width. Zero means the
// renderer default applies.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Color          float64
	Width          float64

	// Depth, Angle (degrees) and Length describe the call that emitted the
	// segment. Length is signed: jitter may push it below zero.
	Depth  int
	Angle  float64
	Length float64
}

// Lightness returns the segment's lightness, or def when unset.
func (s Segment) Lightness(def float64) float64 {
	if s.Color == 0 {
		return def
	}
	return s.Color
}

// StrokeWidth returns the segment's stroke width, or def when unset.
func (s Segment) StrokeWidth(def float64) float64 {
	if s.Width == 0 {
		return def
	}
	return s.Width
}

// IsValid reports whether all coordinates are finite.
func (s Segment) IsValid() bool {
	for _, v := range [...]float64{s.X1, s.Y1, s.X2, s.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sequence is an ordered list of segments in generation (pre-order) order.
type Sequence []Segment

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the box enclosing every endpoint. An empty sequence yields
// the zero Rect.
func (s Sequence) Bounds() Rect {
	if len(s) == 0 {
		return Rect{}
	}
	r := Rect{MinX: s[0].X1, MinY: s[0].Y1, MaxX: s[0].X1, MaxY: s[0].Y1}
	for _, seg := range s {
		r.MinX = math.Min(r.MinX, math.Min(seg.X1, seg.X2))
		r.MinY = math.Min(r.MinY, math.Min(seg.Y1, seg.Y2))
		r.MaxX = math.Max(r.MaxX, math.Max(seg.X1, seg.X2))
		r.MaxY = math.Max(r.MaxY, math.Max(seg.Y1, seg.Y2))
	}
	return r
}

// MaxDepth returns the deepest level present, or -1 for an empty sequence.
func (s Sequence) MaxDepth() int {
	d := -1
	for _, seg := range s {
		if seg.Depth > d {
			d = seg.Depth
		}
	}
	return d
}

// MeanLengthByDepth returns the mean absolute branch length at each depth.
func (s Sequence) MeanLengthByDepth() []float64 {
	n := s.MaxDepth() + 1
	if n == 0 {
		return nil
	}
	sums := make([]float64, n)
	counts := make([]int, n)
	for _, seg := range s {
		sums[seg.Depth] += math.Abs(seg.Length)
		counts[seg.Depth]++
	}
	for i := range sums {
		if counts[i] > 0 {
			sums[i] /= float64(counts[i])
		}
	}
	return sums
}

// IsValid reports whether every segment has finite coordinates.
func (s Sequence) IsValid() bool {
	for _, seg := range s {
		if !seg.IsValid() {
			return false
		}
	}
	return true
}
