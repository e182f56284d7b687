package tree

import (
	"image/color"
	"math"
)

// Colors for trunk, branches and leaves.
var (
	LightBrown = color.RGBA{R: 105, G: 72, B: 33, A: 255}
	Green      = color.RGBA{R: 28, G: 127, B: 25, A: 255}
	Orange     = color.RGBA{R: 169, G: 79, B: 13, A: 255}
	Red        = color.RGBA{R: 124, G: 26, B: 12, A: 255}
	Yellow     = color.RGBA{R: 158, G: 162, B: 19, A: 255}
)

// goldenRatio shrinks child branches relative to their parent.
const goldenRatio = 1.618

// Config holds the tunables of a tree painting.
type Config struct {
	// Generations is the recursion depth: coarser or finer detail.
	Generations int

	// ChildrenPerBranch is the fan-out of every non-trunk branch:
	// sparser or fluffier trees.
	ChildrenPerBranch int

	// TrunkTwins multiplies the fan-out of the trunk itself, modeling
	// several co-located first branches for a denser crown.
	TrunkTwins int

	// ShrinkFactor scales each child's length relative to its parent.
	ShrinkFactor float64

	// MaxBranchAngle is the widest unsigned angle, in radians, a child
	// may deviate from its parent.
	MaxBranchAngle float64

	// LeafDiameter is the diameter of the terminal leaf markers.
	LeafDiameter int

	// BranchColor strokes the trunk and every branch.
	BranchColor color.Color

	// LeafPalette is sampled uniformly, once per leaf.
	LeafPalette []color.Color
}

// Default returns the classic tree-painting configuration.
func Default() Config {
	return Config{
		Generations:       6,
		ChildrenPerBranch: 3,
		TrunkTwins:        5,
		ShrinkFactor:      1 / goldenRatio,
		MaxBranchAngle:    0.5 * math.Pi,
		LeafDiameter:      5,
		BranchColor:       LightBrown,
		LeafPalette:       []color.Color{Green, Orange, Red, Yellow},
	}
}
