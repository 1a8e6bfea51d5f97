package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/musaaj/Simaditor/document"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.cfg.ScrollPolicy == ScrollAllowManual || !isManualScrollMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
	}

	if !m.focused || msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		p, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, cmd
		}
		if r, has := m.eng.Selection(); msg.Shift && has {
			m.eng.SetSelection(document.Range{Anchor: r.Anchor, Focus: p})
		} else {
			m.eng.SetSelection(document.Caret(p))
		}
	case tea.MouseActionMotion:
		// Dragging with the left button held extends the selection.
		p, ok := m.hitTest(msg.X, msg.Y)
		if r, has := m.eng.Selection(); ok && has {
			m.eng.SetSelection(document.Range{Anchor: r.Anchor, Focus: p})
		}
	}
	return m, cmd
}

func isManualScrollMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

// hitTest maps viewport-local cell coordinates to the nearest caret stop of
// the line rendered there.
func (m *Model) hitTest(x, y int) (document.Pos, bool) {
	row := y + m.viewport.YOffset
	if row < 0 || row >= len(m.hits) {
		return document.Pos{}, false
	}
	h := m.hits[row]
	p := m.projection()
	if !p.doc.Attached(h.line) {
		return document.Pos{}, false
	}
	ln := p.doc.Line(h.line)
	x -= h.indent

	sub, cells := 0, 0
	for i, unit := range ln.Units {
		if unit == "\n" {
			if sub == h.sub {
				return ln.Slots[i], true
			}
			sub++
			cells = 0
			continue
		}
		w := unitCells(unit, cells)
		if unit == document.ObjectUnit {
			w = lipgloss.Width(p.label(p.unitNode(ln, i)))
		}
		if sub == h.sub && x < cells+(w+1)/2 {
			return ln.Slots[i], true
		}
		cells += w
	}
	return ln.Slots[len(ln.Slots)-1], true
}
