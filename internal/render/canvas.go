// Package render adapts a gg drawing context to the tree generator's
// canvas interface and handles PNG export.
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"treepaint/internal/geometry"
)

// Canvas draws branches and leaves into an in-memory image. The zero-width
// strokes the generator emits for terminal branches render as one-pixel
// hairlines.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas returns a width x height canvas with a black backdrop.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height)}
	c.dc.ClearWithColor(gg.Black)
	return c
}

// DrawLine strokes a branch segment.
func (c *Canvas) DrawLine(start, end geometry.Point, width int, col color.Color) {
	lw := float64(width)
	if lw < 1 {
		lw = 1
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(lw)
	c.dc.DrawLine(start.X, start.Y, end.X, end.Y)
	c.record(c.dc.Stroke())
}

// DrawLeaf draws a filled circle centered on a branch end point.
func (c *Canvas) DrawLeaf(center geometry.Point, diameter int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, float64(diameter)/2)
	c.record(c.dc.Fill())
}

// record keeps the first rasterization error; the generator's draw calls
// have no error channel of their own.
func (c *Canvas) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first error encountered while drawing, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the painting to path. A drawing error recorded earlier
// fails the save rather than producing a partial image silently.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return fmt.Errorf("draw: %w", c.err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}
