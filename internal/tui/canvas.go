package tui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treepaint/internal/geometry"
)

// cellCanvas is a braille micro-pixel canvas: every terminal cell holds a
// 2x4 grid of micro-pixels addressed in micro coordinates. The generator
// draws into it directly; branch geometry lives in micro space. Each cell
// keeps one foreground color, last writer wins.
type cellCanvas struct {
	w, h int            // in cells
	mask [][]uint8      // per-cell braille bit mask
	col  [][]color.RGBA // per-cell foreground
}

func newCellCanvas(w, h int) *cellCanvas {
	mask := make([][]uint8, h)
	col := make([][]color.RGBA, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		col[i] = make([]color.RGBA, w)
	}
	return &cellCanvas{w: w, h: h, mask: mask, col: col}
}

// DrawLine strokes a branch segment in micro coordinates. Stroke width is
// rendered as parallel one-micro-pixel lines fanned out along the segment's
// perpendicular; width zero still draws a single hairline.
func (c *cellCanvas) DrawLine(start, end geometry.Point, width int, col color.Color) {
	rgba := toRGBA(col)
	v := end.Sub(start)
	length := v.Length()
	if length == 0 {
		c.setPixel(round(start.X), round(start.Y), rgba)
		return
	}
	perp := geometry.Pt(-v.Y/length, v.X/length)
	n := width
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		off := perp.Mul(float64(i) - float64(n-1)/2)
		s := start.Add(off)
		e := end.Add(off)
		c.line(round(s.X), round(s.Y), round(e.X), round(e.Y), rgba)
	}
}

// DrawLeaf fills a micro-pixel disc centered on a branch end point.
func (c *cellCanvas) DrawLeaf(center geometry.Point, diameter int, col color.Color) {
	rgba := toRGBA(col)
	r := float64(diameter) / 2
	for my := round(center.Y - r); my <= round(center.Y+r); my++ {
		for mx := round(center.X - r); mx <= round(center.X+r); mx++ {
			dx := float64(mx) - center.X
			dy := float64(my) - center.Y
			if dx*dx+dy*dy <= r*r {
				c.setPixel(mx, my, rgba)
			}
		}
	}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell).
func (c *cellCanvas) setPixel(mx, my int, col color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	c.col[cy][cx] = col
}

// line draws on the microgrid using Bresenham.
func (c *cellCanvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// render converts the buffer to styled terminal rows, grouping runs of
// same-colored cells to keep the escape-sequence overhead down.
func (c *cellCanvas) render() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var b strings.Builder
		var run []rune
		var runCol color.RGBA
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(styleFor(runCol).Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			mask := c.mask[y][x]
			if mask == 0 {
				flush()
				b.WriteRune(' ')
				continue
			}
			col := c.col[y][x]
			if len(run) > 0 && col != runCol {
				flush()
			}
			runCol = col
			run = append(run, rune(0x2800+int(mask)))
		}
		flush()
		out[y] = b.String()
	}
	return out
}

// cellStyles caches one lipgloss style per drawing color. The bubbletea
// event loop is single-threaded, so a plain map suffices.
var cellStyles = map[color.RGBA]lipgloss.Style{}

func styleFor(col color.RGBA) lipgloss.Style {
	if s, ok := cellStyles[col]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(
		fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)))
	cellStyles[col] = s
	return s
}

func toRGBA(col color.Color) color.RGBA {
	return color.RGBAModel.Convert(col).(color.RGBA)
}

func round(v float64) int {
	return int(math.Round(v))
}
