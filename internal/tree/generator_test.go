package tree

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"treepaint/internal/geometry"
)

type lineDraw struct {
	start, end geometry.Point
	width      int
	col        color.Color
}

type leafDraw struct {
	center   geometry.Point
	diameter int
	col      color.Color
}

// recordCanvas captures the generator's draw calls in order.
type recordCanvas struct {
	lines  []lineDraw
	leaves []leafDraw
}

func (c *recordCanvas) DrawLine(start, end geometry.Point, width int, col color.Color) {
	c.lines = append(c.lines, lineDraw{start, end, width, col})
}

func (c *recordCanvas) DrawLeaf(center geometry.Point, diameter int, col color.Color) {
	c.leaves = append(c.leaves, leafDraw{center, diameter, col})
}

func paint(cfg Config, seed int64, start, end geometry.Point) *recordCanvas {
	rc := &recordCanvas{}
	New(cfg, rand.New(rand.NewSource(seed))).Paint(rc, start, end)
	return rc
}

// expectedCounts sums the geometric series of branches per level.
func expectedCounts(cfg Config) (lines, leaves int) {
	lines = 1
	level := 1
	for g := cfg.Generations; g > 0; g-- {
		n := cfg.ChildrenPerBranch
		if g == cfg.Generations {
			n *= cfg.TrunkTwins
		}
		level *= n
		lines += level
	}
	return lines, level
}

func TestPaintDrawCallCounts(t *testing.T) {
	tests := []struct {
		name                  string
		gens, children, twins int
		wantLines, wantLeaves int
	}{
		{"defaults", 6, 3, 5, 5461, 3645},
		{"single path", 1, 1, 1, 2, 1},
		{"no twins", 2, 2, 1, 7, 4},
		{"trunk only", 0, 3, 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Generations = tt.gens
			cfg.ChildrenPerBranch = tt.children
			cfg.TrunkTwins = tt.twins

			if gotL, gotF := expectedCounts(cfg); gotL != tt.wantLines || gotF != tt.wantLeaves {
				t.Fatalf("expectedCounts = (%d, %d), want (%d, %d)", gotL, gotF, tt.wantLines, tt.wantLeaves)
			}

			rc := paint(cfg, 1, geometry.Pt(100, 200), geometry.Pt(100, 100))
			if len(rc.lines) != tt.wantLines {
				t.Errorf("got %d line draws, want %d", len(rc.lines), tt.wantLines)
			}
			if len(rc.leaves) != tt.wantLeaves {
				t.Errorf("got %d leaf draws, want %d", len(rc.leaves), tt.wantLeaves)
			}
		})
	}
}

func TestPaintDegenerateTrunkIsNoop(t *testing.T) {
	for _, p := range []geometry.Point{geometry.Pt(0, 0), geometry.Pt(-3.5, 12)} {
		rc := paint(Default(), 1, p, p)
		if len(rc.lines) != 0 || len(rc.leaves) != 0 {
			t.Errorf("degenerate trunk at %v drew %d lines, %d leaves; want none",
				p, len(rc.lines), len(rc.leaves))
		}
	}
}

type parentKey struct {
	width int
	end   geometry.Point
}

func TestBranchInvariants(t *testing.T) {
	cfg := Default()
	rc := paint(cfg, 7, geometry.Pt(350, 850), geometry.Pt(350, 600))

	byEnd := make(map[parentKey]lineDraw, len(rc.lines))
	for _, ln := range rc.lines {
		k := parentKey{ln.width, ln.end}
		if _, dup := byEnd[k]; dup {
			t.Fatalf("two branches share width %d and end %v", ln.width, ln.end)
		}
		byEnd[k] = ln
	}

	children := make(map[parentKey]int)
	for _, ln := range rc.lines {
		if ln.width < 0 || ln.width > cfg.Generations {
			t.Fatalf("branch width %d outside [0, %d]", ln.width, cfg.Generations)
		}
		if ln.col != cfg.BranchColor {
			t.Fatalf("branch color %v, want %v", ln.col, cfg.BranchColor)
		}
		if ln.width == cfg.Generations {
			continue // the trunk has no parent
		}

		pk := parentKey{ln.width + 1, ln.start}
		parent, ok := byEnd[pk]
		if !ok {
			t.Fatalf("branch %v..%v (width %d) has no parent ending at its start", ln.start, ln.end, ln.width)
		}
		children[pk]++

		ps := geometry.Seg(parent.start, parent.end)
		cs := geometry.Seg(ln.start, ln.end)
		if angle := geometry.AngleBetween(ps, cs); angle > cfg.MaxBranchAngle+1e-9 {
			t.Errorf("branching angle %v exceeds %v", angle, cfg.MaxBranchAngle)
		}
		if ratio := cs.Length() / ps.Length(); math.Abs(ratio-cfg.ShrinkFactor) > 1e-9 {
			t.Errorf("shrink ratio %v, want %v", ratio, cfg.ShrinkFactor)
		}
	}

	for pk, got := range children {
		want := cfg.ChildrenPerBranch
		if pk.width == cfg.Generations {
			want *= cfg.TrunkTwins
		}
		if got != want {
			t.Errorf("branch of generation %d has %d children, want %d", pk.width, got, want)
		}
	}
}

func TestLeafInvariants(t *testing.T) {
	cfg := Default()
	cfg.Generations = 4 // plenty of leaves, quicker run
	rc := paint(cfg, 3, geometry.Pt(0, 0), geometry.Pt(40, -90))

	terminalEnds := make(map[geometry.Point]bool)
	for _, ln := range rc.lines {
		if ln.width == 0 {
			terminalEnds[ln.end] = true
		}
	}
	if len(rc.leaves) != len(terminalEnds) {
		t.Fatalf("got %d leaves for %d terminal branches", len(rc.leaves), len(terminalEnds))
	}

	palette := make(map[color.Color]bool, len(cfg.LeafPalette))
	for _, col := range cfg.LeafPalette {
		palette[col] = true
	}
	for _, lf := range rc.leaves {
		if !terminalEnds[lf.center] {
			t.Errorf("leaf at %v is not centered on a terminal branch end", lf.center)
		}
		if lf.diameter != cfg.LeafDiameter {
			t.Errorf("leaf diameter %d, want %d", lf.diameter, cfg.LeafDiameter)
		}
		if !palette[lf.col] {
			t.Errorf("leaf color %v is not in the palette", lf.col)
		}
	}
}

func TestLeafColorDistribution(t *testing.T) {
	cfg := Default()
	rc := paint(cfg, 42, geometry.Pt(350, 850), geometry.Pt(350, 600))

	counts := make(map[color.Color]int)
	for _, lf := range rc.leaves {
		counts[lf.col]++
	}
	total := float64(len(rc.leaves))
	for _, col := range cfg.LeafPalette {
		freq := float64(counts[col]) / total
		if freq < 0.20 || freq > 0.30 {
			t.Errorf("leaf color %v frequency %.3f, want ~0.25", col, freq)
		}
	}
}

func TestSinglePathScenario(t *testing.T) {
	cfg := Default()
	cfg.Generations = 1
	cfg.ChildrenPerBranch = 1
	cfg.TrunkTwins = 1

	start, end := geometry.Pt(0, 0), geometry.Pt(0, -100)
	rc := paint(cfg, 5, start, end)

	if len(rc.lines) != 2 || len(rc.leaves) != 1 {
		t.Fatalf("got %d lines, %d leaves; want 2 and 1", len(rc.lines), len(rc.leaves))
	}

	trunk, child := rc.lines[0], rc.lines[1]
	if trunk.start != start || trunk.end != end || trunk.width != 1 {
		t.Errorf("trunk = %+v", trunk)
	}
	if child.width != 0 || child.start != end {
		t.Errorf("child = %+v", child)
	}

	cs := geometry.Seg(child.start, child.end)
	if got := cs.Length(); math.Abs(got-100/goldenRatio) > 1e-9 {
		t.Errorf("child length %v, want %v", got, 100/goldenRatio)
	}
	if angle := geometry.AngleBetween(geometry.Seg(start, end), cs); angle > math.Pi/2+1e-9 {
		t.Errorf("child angle %v exceeds pi/2", angle)
	}
	if rc.leaves[0].center != child.end {
		t.Errorf("leaf at %v, want %v", rc.leaves[0].center, child.end)
	}
}

// A zero cone makes every candidate angle rejectable; the attempt cap must
// kick in and continue straight along the parent.
func TestRejectionCapFallsBackToParentDirection(t *testing.T) {
	cfg := Default()
	cfg.Generations = 1
	cfg.ChildrenPerBranch = 1
	cfg.TrunkTwins = 1
	cfg.MaxBranchAngle = 0

	rc := paint(cfg, 9, geometry.Pt(0, 0), geometry.Pt(30, -40))
	if len(rc.lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(rc.lines))
	}
	trunk := geometry.Seg(rc.lines[0].start, rc.lines[0].end)
	child := geometry.Seg(rc.lines[1].start, rc.lines[1].end)
	if angle := geometry.AngleBetween(trunk, child); angle > 1e-6 {
		t.Errorf("fallback child angle %v, want ~0", angle)
	}
}

func TestPaintIsReproducibleBySeed(t *testing.T) {
	cfg := Default()
	cfg.Generations = 3
	start, end := geometry.Pt(10, 90), geometry.Pt(15, 30)

	a := paint(cfg, 11, start, end)
	b := paint(cfg, 11, start, end)
	if len(a.lines) != len(b.lines) {
		t.Fatalf("line counts differ: %d vs %d", len(a.lines), len(b.lines))
	}
	for i := range a.lines {
		if a.lines[i] != b.lines[i] {
			t.Fatalf("line %d differs: %+v vs %+v", i, a.lines[i], b.lines[i])
		}
	}
	for i := range a.leaves {
		if a.leaves[i] != b.leaves[i] {
			t.Fatalf("leaf %d differs: %+v vs %+v", i, a.leaves[i], b.leaves[i])
		}
	}

	c := paint(cfg, 12, start, end)
	if a.lines[1] == c.lines[1] {
		t.Error("different seeds produced the same first branch")
	}
}

func TestNewWithNilRandStillPaints(t *testing.T) {
	cfg := Default()
	cfg.Generations = 2
	rc := &recordCanvas{}
	New(cfg, nil).Paint(rc, geometry.Pt(0, 0), geometry.Pt(0, -50))

	wantLines, wantLeaves := expectedCounts(cfg)
	if len(rc.lines) != wantLines || len(rc.leaves) != wantLeaves {
		t.Errorf("got %d lines, %d leaves; want %d and %d",
			len(rc.lines), len(rc.leaves), wantLines, wantLeaves)
	}
}
