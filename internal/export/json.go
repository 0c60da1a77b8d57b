package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/fractree/internal/tree"
)

// Document is the JSON form of a generated tree.
type Document struct {
	Variant  string    `json:"variant"`
	Seed     int64     `json:"seed"`
	OriginX  float64   `json:"origin_x"`
	OriginY  float64   `json:"origin_y"`
	Count    int       `json:"count"`
	Bounds   tree.Rect `json:"bounds"`
	Means    []float64 `json:"mean_length_by_depth"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Color  float64 `json:"color,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Depth  int     `json:"depth"`
	Angle  float64 `json:"angle"`
	Length float64 `json:"length"`
}

// NewDocument describes seq, generated for v from (originX, originY).
func NewDocument(v tree.Variant, seed int64, originX, originY float64, seq tree.Sequence) Document {
	doc := Document{
		Variant:  v.String(),
		Seed:     seed,
		OriginX:  originX,
		OriginY:  originY,
		Count:    len(seq),
		Bounds:   seq.Bounds(),
		Means:    seq.MeanLengthByDepth(),
		Segments: make([]Segment, len(seq)),
	}
	for i, s := range seq {
		doc.Segments[i] = Segment{
			X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2,
			Color: s.Color, Width: s.Width,
			Depth: s.Depth, Angle: s.Angle, Length: s.Length,
		}
	}
	return doc
}

// JSON writes an indented Document to w.
func JSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
