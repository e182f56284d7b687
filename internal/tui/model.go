// Package tui is the interactive shell around the tree generator: a
// bubbletea program where a mouse drag defines the trunk and release
// paints the tree onto a braille canvas.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"treepaint/internal/geometry"
	"treepaint/internal/render"
	"treepaint/internal/tree"
)

const instructionsText = "Click, drag, and release to paint a tree!"

// Rows reserved around the canvas.
const (
	headerHeight = 1
	footerHeight = 2
)

// Generations stay within a range the terminal can still resolve.
const (
	minGenerations = 1
	maxGenerations = 8
)

// snapshotScale upscales the canvas micro resolution for PNG snapshots.
const snapshotScale = 4

type Model struct {
	width  int
	height int

	status      string
	helpVisible bool

	generations int

	// drag in progress
	dragging  bool
	dragStart geometry.Point // micro coords
	dragPos   geometry.Point

	// last completed painting, regenerated from the seed on every render
	hasTree bool
	trunk   geometry.Segment // micro coords
	seed    int64

	keys keyMap
	help help.Model
}

func New() Model {
	return Model{
		status:      "treepaint ready",
		helpVisible: true,
		generations: tree.Default().Generations,
		keys:        newKeyMap(),
		help:        help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

// canvasSize returns the drawing area in cells for the current window.
func (m Model) canvasSize() (int, int) {
	w := max(10, m.width)
	h := m.height - headerHeight - footerHeight
	if h < 4 {
		h = 4
	}
	return w, h
}

// canvasPoint converts a terminal mouse cell to micro coordinates within
// the canvas, reporting whether the cell lies inside it.
func (m Model) canvasPoint(x, y int) (geometry.Point, bool) {
	w, h := m.canvasSize()
	cx, cy := x, y-headerHeight
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return geometry.Point{}, false
	}
	return geometry.Pt(float64(cx*2), float64(cy*4)), true
}

// snapshot renders the current painting to a timestamped PNG in the
// working directory, at snapshotScale times the canvas micro resolution.
func (m Model) snapshot() (string, error) {
	if !m.hasTree {
		return "", errors.New("no tree on the canvas")
	}
	w, h := m.canvasSize()
	c := render.NewCanvas(w*2*snapshotScale, h*4*snapshotScale)

	cfg := tree.Default()
	cfg.Generations = m.generations
	cfg.LeafDiameter *= snapshotScale
	gen := tree.New(cfg, rand.New(rand.NewSource(m.seed)))
	gen.Paint(c, m.trunk.Start.Mul(snapshotScale), m.trunk.End.Mul(snapshotScale))

	path := fmt.Sprintf("treepaint-%s.png", time.Now().Format("20060102-150405"))
	if err := c.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
