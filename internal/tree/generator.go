package tree

import (
	"math"
	"math/rand"
	"time"
)

// Rand is the random source consumed by jittered rules.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Generator builds branch sequences.
type Generator struct {
	rng Rand
}

// NewGenerator returns a generator drawing from rng. A nil rng is replaced by
// a source seeded from the clock.
func NewGenerator(rng Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// NewSeededGenerator returns a generator whose output is reproducible for a
// given seed.
func NewSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// Generate builds a fresh tree for v rooted at (originX, originY).
func (g *Generator) Generate(v Variant, originX, originY float64) Sequence {
	rule := RuleFor(v)
	b := builder{
		rule: rule,
		rng:  g.rng,
		out:  make(Sequence, 0, rule.Size()),
	}
	b.branch(originX, originY, RootAngle, RootLength, 0)
	return b.out
}

type builder struct {
	rule Rule
	rng  Rand
	out  Sequence
}

func (b *builder) branch(x1, y1, angle, length float64, level int) {
	if level >= b.rule.MaxLevel {
		return
	}

	rad := angle * math.Pi / 180
	x2 := x1 + math.Cos(rad)*length
	y2 := y1 + math.Sin(rad)*length

	seg := Segment{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Depth:  level,
		Angle:  angle,
		Length: length,
	}
	if b.rule.Tagged {
		seg.Color = BaseLightness + float64(level)*LightnessStep
		seg.Width = float64(b.rule.MaxLevel - level)
	}
	b.out = append(b.out, seg)

	// Jitter for the right child is drawn after the whole left subtree.
	a, l := b.child(angle, length, -1)
	b.branch(x2, y2, a, l, level+1)
	a, l = b.child(angle, length, +1)
	b.branch(x2, y2, a, l, level+1)
}

func (b *builder) child(angle, length, dir float64) (float64, float64) {
	a := angle + dir*b.rule.AngleChange
	l := length * b.rule.LengthFactor
	if b.rule.Random() {
		a += (b.rng.Float64() - 0.5) * b.rule.AngleJitter
		l += (b.rng.Float64() - 0.5) * b.rule.LengthJitter
	}
	return a, l
}
