// treepaint is an interactive tree-painting program: drag the mouse across
// the canvas to plant a trunk and a procedurally generated tree grows from
// it. The render subcommand skips the UI and writes a tree straight to PNG.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"treepaint/internal/geometry"
	"treepaint/internal/render"
	"treepaint/internal/tree"
	"treepaint/internal/tui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		// The error has already been printed by cobra.
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treepaint",
		Short: "Paint procedurally generated trees in your terminal",
		Args:  cobra.ExactArgs(0),
		RunE:  runTUI,
	}
	cmd.AddCommand(renderCmd())
	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	p := tea.NewProgram(tui.New(), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Default PNG dimensions, sized like a portrait desktop window.
const (
	defaultWidth  = 700
	defaultHeight = 900
)

func renderCmd() *cobra.Command {
	var (
		out         string
		width       int
		height      int
		seed        int64
		generations int
		trunk       string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one tree to a PNG file without the UI",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			start, end, err := parseTrunk(trunk, width, height)
			if err != nil {
				return err
			}
			if start == end {
				return fmt.Errorf("degenerate trunk: start and end are both (%g, %g)", start.X, start.Y)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			cfg := tree.Default()
			cfg.Generations = generations

			c := render.NewCanvas(width, height)
			gen := tree.New(cfg, rand.New(rand.NewSource(seed)))
			gen.Paint(c, start, end)
			if err := c.Err(); err != nil {
				return fmt.Errorf("draw tree: %w", err)
			}
			if err := c.SavePNG(out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (seed %d)\n", out, seed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "tree.png", "output PNG path")
	cmd.Flags().IntVar(&width, "width", defaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", defaultHeight, "image height in pixels")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&generations, "generations", tree.Default().Generations, "recursion depth")
	cmd.Flags().StringVar(&trunk, "trunk", "", "trunk as x0,y0,x1,y1 (default: vertical from the bottom center)")

	return cmd
}

// parseTrunk interprets the --trunk flag, defaulting to a vertical trunk
// rising from the bottom center, one third of the image tall.
func parseTrunk(s string, width, height int) (geometry.Point, geometry.Point, error) {
	if s == "" {
		x := float64(width) / 2
		base := float64(height) * 0.95
		return geometry.Pt(x, base), geometry.Pt(x, base-float64(height)/3), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("trunk %q: want four comma-separated numbers", s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Point{}, geometry.Point{}, fmt.Errorf("trunk %q: %w", s, err)
		}
		vals[i] = v
	}
	return geometry.Pt(vals[0], vals[1]), geometry.Pt(vals[2], vals[3]), nil
}
