package tree

const (
	// RootAngle points the trunk straight up on a y-down canvas.
	RootAngle = -90.0
	// RootLength is the trunk length in canvas units.
	RootLength = 100.0
	// BaseLightness is the lightness of a Colored trunk.
	BaseLightness = 5.0
	// LightnessStep is added to the lightness per level in Colored trees.
	LightnessStep = 3.0
)

// Rule holds the branching parameters of a variant.
//
// Each child turns by AngleChange plus (rand-0.5)*AngleJitter and gets the
// parent length times LengthFactor plus (rand-0.5)*LengthJitter.
type Rule struct {
	MaxLevel     int
	AngleChange  float64
	LengthFactor float64
	AngleJitter  float64
	LengthJitter float64
	// Tagged rules stamp lightness and stroke width on every segment.
	Tagged bool
}

// Size returns the number of segments a tree built with r contains.
func (r Rule) Size() int {
	return 1<<r.MaxLevel - 1
}

// Random reports whether the rule draws from the random source.
func (r Rule) Random() bool {
	return r.AngleJitter != 0 || r.LengthJitter != 0
}

// Rules is the fixed rule table, indexed by Variant.
var Rules = map[Variant]Rule{
	Basic: {
		MaxLevel:     11,
		AngleChange:  20,
		LengthFactor: 0.8,
	},
	Random: {
		MaxLevel:     13,
		AngleChange:  20,
		LengthFactor: 0.77,
		AngleJitter:  15,
		LengthJitter: 10,
	},
	Colored: {
		MaxLevel:     11,
		AngleChange:  20,
		LengthFactor: 0.77,
		AngleJitter:  15,
		LengthJitter: 10,
		Tagged:       true,
	},
}

// RuleFor returns the rule of v, falling back to Basic.
func RuleFor(v Variant) Rule {
	if r, ok := Rules[v]; ok {
		return r
	}
	return Rules[Basic]
}
