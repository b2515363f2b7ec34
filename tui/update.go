package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// An open input owns the keyboard until it commits.
	if in := m.canvas.input; in != nil {
		if key.Matches(msg, m.cfg.KeyMap.Commit) {
			m.canvas.CommitInput()
			m.rebuildContent()
			return m, nil
		}
		var cmd tea.Cmd
		in.field, cmd = in.field.Update(msg)
		return m, cmd
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Delete):
		m.report(m.canvas.dispatch(func(h table.Handler) error { return h.OnDeleteKey() }))
	case key.Matches(msg, km.Edit):
		if at, ok := m.ctrl.Active(); ok {
			m.report(m.canvas.dispatch(func(h table.Handler) error { return h.OnCellActivate(at) }))
		}
	case key.Matches(msg, km.Clear):
		m.ctrl.ClearSelection()
		m.hasHead = false
	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Paste):
		m.report(m.paste())
	case key.Matches(msg, km.ShiftUp):
		m.report(m.extend(0, -1))
	case key.Matches(msg, km.ShiftDown):
		m.report(m.extend(0, 1))
	case key.Matches(msg, km.ShiftLeft):
		m.report(m.extend(-1, 0))
	case key.Matches(msg, km.ShiftRight):
		m.report(m.extend(1, 0))
	case key.Matches(msg, km.Up):
		m.report(m.move(0, -1))
	case key.Matches(msg, km.Down):
		m.report(m.move(0, 1))
	case key.Matches(msg, km.Left):
		m.report(m.move(-1, 0))
	case key.Matches(msg, km.Right):
		m.report(m.move(1, 0))
	default:
		return m, nil
	}

	m.rebuildContent()
	m.followHead()
	return m, nil
}

// move selects the neighbor of the moving end as a fresh single cell, as a
// click followed by release would.
func (m *Model) move(dc, dr int) error {
	target, ok := m.step(dc, dr)
	if !ok {
		return nil
	}
	err := m.canvas.dispatch(func(h table.Handler) error {
		if err := h.OnCellPrimaryDown(target); err != nil {
			return err
		}
		h.OnDragEnd()
		return nil
	})
	m.head, m.hasHead = target, true
	return err
}

// extend grows the rectangle from the active cell to the moved end.
func (m *Model) extend(dc, dr int) error {
	anchor, ok := m.ctrl.Active()
	if !ok {
		return m.move(dc, dr)
	}
	target, ok := m.step(dc, dr)
	if !ok {
		return nil
	}
	m.head, m.hasHead = target, true
	return m.ctrl.SelectRange(anchor, target)
}

func (m *Model) step(dc, dr int) (grid.Coord, bool) {
	cols, rows := len(m.ctrl.Columns()), m.ctrl.RowCount()
	if cols == 0 || rows == 0 {
		return grid.Coord{}, false
	}
	from, ok := m.head, m.hasHead
	if !ok {
		from, ok = m.ctrl.Active()
	}
	if !ok {
		return grid.At(0, 0), true
	}
	return grid.At(clampInt(from.Col+dc, 0, cols-1), clampInt(from.Row+dr, 0, rows-1)), true
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.ctrl.CopySelection()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

// paste writes tab-separated rows from the clipboard starting at the active
// cell, parsed by each column's editor. Values falling outside the grid are
// dropped.
func (m *Model) paste() error {
	if m.cfg.Clipboard == nil {
		return nil
	}
	at, ok := m.ctrl.Active()
	if !ok {
		return nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return nil
	}

	cols, rows := len(m.ctrl.Columns()), m.ctrl.RowCount()
	s = strings.TrimSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for dr, line := range strings.Split(s, "\n") {
		row := at.Row + dr
		if row >= rows {
			break
		}
		for dc, field := range strings.Split(line, "\t") {
			col := at.Col + dc
			if col >= cols {
				break
			}
			if err := m.ctrl.SetCellText(grid.At(col, row), field); err != nil {
				return err
			}
		}
	}
	return nil
}
