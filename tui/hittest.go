package tui

import (
	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/internal/grapheme"
)

// columnWidths returns content widths per column, padding excluded.
func (m *Model) columnWidths() []int {
	head := m.canvas.headerCells()
	widths := make([]int, len(head))
	for i, cell := range head {
		widths[i] = grapheme.Width(cell.plain())
	}
	for _, r := range m.canvas.bodyRows() {
		for i, cell := range r.cells {
			if i >= len(widths) {
				break
			}
			if w := grapheme.Width(cell.plain()); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, w := range widths {
		widths[i] = clampInt(w, m.cfg.MinColumnWidth, m.cfg.MaxColumnWidth)
	}
	return widths
}

// columnStarts returns the x of each column's left padding cell.
func columnStarts(widths []int) []int {
	starts := make([]int, len(widths))
	x := 0
	for i, w := range widths {
		starts[i] = x
		x += w + 3 // " text " plus separator
	}
	return starts
}

func tableWidth(widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := 0
	for _, w := range widths {
		total += w + 3
	}
	return total - 1
}

func columnAtX(widths []int, x int) (int, bool) {
	if x < 0 {
		return 0, false
	}
	for i, start := range columnStarts(widths) {
		// A separator belongs to the column on its left.
		if x < start+widths[i]+3 {
			return i, true
		}
	}
	return 0, false
}

// screenToCell maps component-local coordinates to a body cell.
//
// (0,0) is the top-left of the header row. Header and rule rows map to no
// cell.
func (m *Model) screenToCell(x, y int) (grid.Coord, bool) {
	if y < headerLines || y >= headerLines+m.viewport.Height {
		return grid.Coord{}, false
	}
	widths := m.columnWidths()
	if x >= tableWidth(widths) {
		return grid.Coord{}, false
	}
	col, ok := columnAtX(widths, x)
	if !ok {
		return grid.Coord{}, false
	}
	return m.bodyCell(col, y-headerLines+m.viewport.YOffset)
}

// clampedScreenToCell maps like screenToCell after clamping x/y into the
// visible body. Drags that leave the grid keep extending to its edge.
func (m *Model) clampedScreenToCell(x, y int) (grid.Coord, bool) {
	rows := len(m.canvas.bodyRows())
	if rows == 0 || m.viewport.Height <= 0 {
		return grid.Coord{}, false
	}
	widths := m.columnWidths()
	if len(widths) == 0 {
		return grid.Coord{}, false
	}

	x = clampInt(x, 0, tableWidth(widths)-1)
	line := clampInt(y-headerLines, 0, m.viewport.Height-1) + m.viewport.YOffset
	line = clampInt(line, 0, rows-1)

	col, ok := columnAtX(widths, x)
	if !ok {
		return grid.Coord{}, false
	}
	return m.bodyCell(col, line)
}

func (m *Model) bodyCell(col, line int) (grid.Coord, bool) {
	rows := m.canvas.bodyRows()
	if line < 0 || line >= len(rows) {
		return grid.Coord{}, false
	}
	cells := rows[line].cells
	if col < 0 || col >= len(cells) {
		return grid.Coord{}, false
	}
	return cells[col].coord, true
}

// cellToScreen maps a body cell to the component-local position of its
// left padding cell. ok is false when the cell is scrolled out of view.
func (m *Model) cellToScreen(at grid.Coord) (x, y int, ok bool) {
	widths := m.columnWidths()
	if at.Col < 0 || at.Col >= len(widths) {
		return 0, 0, false
	}
	line := -1
	for i, r := range m.canvas.bodyRows() {
		if len(r.cells) > 0 && r.cells[0].coord.Row == at.Row {
			line = i
			break
		}
	}
	if line < 0 {
		return 0, 0, false
	}
	screenY := line - m.viewport.YOffset
	if screenY < 0 || screenY >= m.viewport.Height {
		return 0, 0, false
	}
	return columnStarts(widths)[at.Col], screenY + headerLines, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
