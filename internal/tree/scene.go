package tree

// Scene holds one precomputed sequence per variant and the active selection.
// It is created at startup, mutated only by Select and read every frame.
type Scene struct {
	gen       *Generator
	originX   float64
	originY   float64
	active    Variant
	sequences map[Variant]Sequence
}

// NewScene generates all variants from the origin and activates Basic.
func NewScene(gen *Generator, originX, originY float64) *Scene {
	s := &Scene{
		gen:       gen,
		originX:   originX,
		originY:   originY,
		active:    Basic,
		sequences: make(map[Variant]Sequence, len(Variants)),
	}
	for _, v := range Variants {
		s.sequences[v] = gen.Generate(v, originX, originY)
	}
	return s
}

// Select activates v and regenerates its sequence. Other variants keep their
// current sequences.
func (s *Scene) Select(v Variant) {
	s.active = v
	s.sequences[v] = s.gen.Generate(v, s.originX, s.originY)
}

// Active returns the selected variant.
func (s *Scene) Active() Variant { return s.active }

// Current returns the sequence of the selected variant.
func (s *Scene) Current() Sequence { return s.sequences[s.active] }

// Sequence returns the sequence of v.
func (s *Scene) Sequence(v Variant) Sequence { return s.sequences[v] }

// Origin returns the root position shared by every variant.
func (s *Scene) Origin() (float64, float64) { return s.originX, s.originY }
