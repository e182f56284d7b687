package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treepaint/internal/geometry"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.hasTree = false
			m.dragging = false
			m.status = "canvas cleared"
		case key.Matches(msg, m.keys.Repaint):
			if m.hasTree {
				m.seed = time.Now().UnixNano()
				m.status = "repainted with a fresh seed"
			} else {
				m.status = "nothing to repaint"
			}
		case key.Matches(msg, m.keys.MoreDetail):
			if m.generations < maxGenerations {
				m.generations++
			}
			m.status = fmt.Sprintf("generations: %d", m.generations)
		case key.Matches(msg, m.keys.LessDetail):
			if m.generations > minGenerations {
				m.generations--
			}
			m.status = fmt.Sprintf("generations: %d", m.generations)
		case key.Matches(msg, m.keys.Snapshot):
			path, err := m.snapshot()
			if err != nil {
				m.status = "snapshot: " + err.Error()
			} else {
				m.status = "saved " + path
			}
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if p, ok := m.canvasPoint(msg.X, msg.Y); ok {
			m.dragging = true
			m.dragStart = p
			m.dragPos = p
			m.status = "drag to shape the trunk, release to grow"
		}

	case tea.MouseActionMotion:
		if m.dragging {
			if p, ok := m.canvasPoint(msg.X, msg.Y); ok {
				m.dragPos = p
			}
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if p, ok := m.canvasPoint(msg.X, msg.Y); ok {
			m.dragPos = p
		}
		if m.dragPos == m.dragStart {
			// No branching angle exists when press and release coincide.
			m.status = "trunk needs a drag, not a click"
			return m, nil
		}
		m.trunk = geometry.Seg(m.dragStart, m.dragPos)
		m.seed = time.Now().UnixNano()
		m.hasTree = true
		m.status = fmt.Sprintf("tree painted (%d generations)", m.generations)
	}
	return m, nil
}
