package tui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treepaint/internal/tree"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w, h := m.canvasSize()

	header := lipgloss.NewStyle().Width(w).Render(
		titleStyle.Render(" treepaint ─ terminal tree painting "))

	canvas := m.renderCanvas(w, h)

	status := dimStyle.Render(" " + m.status + " ")
	helpView := ""
	if m.helpVisible {
		helpView = m.help.View(m.keys)
	}
	footer := lipgloss.NewStyle().Width(w).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, helpView))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(w).Height(m.height).Render(ui)
}

// renderCanvas regenerates the painting from its stored trunk and seed.
// Regeneration is deterministic, so window resizes and detail changes
// redraw the tree the drag produced.
func (m Model) renderCanvas(w, h int) string {
	if !m.hasTree && !m.dragging {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			dimStyle.Render(instructionsText))
	}

	cc := newCellCanvas(w, h)
	if m.hasTree {
		cfg := tree.Default()
		cfg.Generations = m.generations
		gen := tree.New(cfg, rand.New(rand.NewSource(m.seed)))
		gen.Paint(cc, m.trunk.Start, m.trunk.End)
	}
	if m.dragging {
		// Rubber-band preview of the trunk being dragged out.
		cc.DrawLine(m.dragStart, m.dragPos, 1, tree.LightBrown)
	}
	return lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(cc.render(), "\n"))
}
