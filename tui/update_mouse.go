package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.press(msg.X, msg.Y, msg.Shift)

	case tea.MouseActionMotion:
		at, ok := m.clampedScreenToCell(msg.X, msg.Y)
		if !ok || (m.hasHover && grid.SamePos(at, m.hover)) {
			return m, nil
		}
		m.hover, m.hasHover = at, true
		if m.ctrl.Dragging() {
			m.head, m.hasHead = at, true
		}
		m.report(m.canvas.dispatch(func(h table.Handler) error { return h.OnCellHoverDuringDrag(at) }))

	case tea.MouseActionRelease:
		m.hasHover = false
		_ = m.canvas.dispatch(func(h table.Handler) error {
			h.OnDragEnd()
			return nil
		})

	default:
		return m, nil
	}

	m.rebuildContent()
	return m, nil
}

// press handles a left button press. Pressing anywhere but the open input
// blurs and commits it. A second press on the same cell within the
// double-click interval activates the cell. Shift extends the selection
// from the active cell instead.
func (m *Model) press(x, y int, shift bool) {
	at, ok := m.screenToCell(x, y)
	if open, has := m.canvas.InputAt(); has {
		if ok && grid.SamePos(at, open) {
			return
		}
		m.canvas.CommitInput()
	}
	if !ok {
		m.hasLastPress = false
		return
	}

	if anchor, has := m.ctrl.Active(); shift && has {
		m.head, m.hasHead = at, true
		m.hasLastPress = false
		m.report(m.ctrl.SelectRange(anchor, at))
		return
	}

	now := m.now()
	double := m.hasLastPress && grid.SamePos(at, m.lastPress) &&
		now.Sub(m.lastPressAt) <= m.cfg.DoubleClickInterval

	m.hover, m.hasHover = at, true
	m.head, m.hasHead = at, true
	err := m.canvas.dispatch(func(h table.Handler) error { return h.OnCellPrimaryDown(at) })
	if err == nil && double {
		err = m.canvas.dispatch(func(h table.Handler) error { return h.OnCellActivate(at) })
	}
	m.report(err)

	if double {
		m.hasLastPress = false
		return
	}
	m.lastPress, m.lastPressAt, m.hasLastPress = at, now, true
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
