// Package tree generates branching tree structures from a single trunk
// segment. The generator never retains what it produces: a tree exists
// only as the sequence of draw calls it makes against a Canvas.
package tree

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	"treepaint/internal/geometry"
)

// Canvas is the drawing surface the generator paints onto.
type Canvas interface {
	// DrawLine strokes one branch segment at the given width.
	DrawLine(start, end geometry.Point, width int, col color.Color)

	// DrawLeaf draws a filled circle of the given diameter centered on a
	// terminal branch's end point.
	DrawLeaf(center geometry.Point, diameter int, col color.Color)
}

// maxAngleAttempts bounds the rejection-sampling loop. At the default
// half-pi cone half of all draws are accepted, so the cap is unreachable
// in practice; it exists so generation terminates for any configuration.
const maxAngleAttempts = 1000

// Generator paints recursive trees onto a Canvas. One Generator owns one
// random source, so a painting is reproducible from its seed. It is not
// safe for concurrent use; give each concurrent painting its own Generator.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New returns a Generator with the given configuration. A nil rng gets a
// time-seeded source.
func New(cfg Config, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{cfg: cfg, rng: rng}
}

// Paint generates one tree rooted at the trunk segment, emitting every
// branch and leaf as draw calls on c. A degenerate trunk (start and end
// equal) paints nothing: the branching angle is undefined for it.
func (g *Generator) Paint(c Canvas, trunkStart, trunkEnd geometry.Point) {
	if trunkStart == trunkEnd {
		return
	}
	g.drawBranch(c, trunkStart, trunkEnd, g.cfg.Generations)
}

// drawBranch draws the segment, then recurses from its end point with a
// decremented generation until generation zero terminates the path with
// a leaf. Generation doubles as stroke width, so later generations render
// thinner.
func (g *Generator) drawBranch(c Canvas, start, end geometry.Point, generation int) {
	c.DrawLine(start, end, generation, g.cfg.BranchColor)

	if generation == 0 {
		c.DrawLeaf(end, g.cfg.LeafDiameter, g.leafColor())
		return
	}

	n := g.childCount(generation)
	for i := 0; i < n; i++ {
		g.drawBranch(c, end, g.newEndPoint(start, end), generation-1)
	}
}

// childCount returns the fan-out for a branch of the given generation.
// The trunk gets TrunkTwins copies of its children.
func (g *Generator) childCount(generation int) int {
	if generation == g.cfg.Generations {
		return g.cfg.ChildrenPerBranch * g.cfg.TrunkTwins
	}
	return g.cfg.ChildrenPerBranch
}

// newEndPoint samples an end point for a child of the given parent segment.
// Candidates are drawn at a uniformly random angle and golden-ratio length
// from the parent's end, and rejected until one lies within MaxBranchAngle
// of the parent's direction. Each child samples independently; siblings are
// not spread apart by construction.
func (g *Generator) newEndPoint(parentStart, parentEnd geometry.Point) geometry.Point {
	parent := geometry.Seg(parentStart, parentEnd)
	length := parent.Length() * g.cfg.ShrinkFactor

	for i := 0; i < maxAngleAttempts; i++ {
		end := geometry.PointAtAngle(parentEnd, length, g.rng.Float64()*2*math.Pi)
		if geometry.AngleBetween(parent, geometry.Seg(parentEnd, end)) <= g.cfg.MaxBranchAngle {
			return end
		}
	}

	// Cap exhausted: continue straight along the parent's direction.
	v := parent.Vector()
	return geometry.PointAtAngle(parentEnd, length, math.Atan2(v.Y, v.X))
}

// leafColor samples the palette uniformly. Every leaf draws its own sample.
func (g *Generator) leafColor() color.Color {
	return g.cfg.LeafPalette[g.rng.Intn(len(g.cfg.LeafPalette))]
}
