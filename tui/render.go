package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/fuzzytable/internal/grapheme"
)

const (
	columnSeparator = "│"
	ruleFill        = "─"
	ruleCross       = "┼"
)

func (m Model) View() string {
	widths := m.columnWidths()

	var sb strings.Builder
	sb.WriteString(m.clip(m.renderLine(m.canvas.headerCells(), widths)))
	sb.WriteByte('\n')
	sb.WriteString(m.clip(m.renderRule(widths)))
	sb.WriteByte('\n')

	// Hosts may mutate the controller between updates.
	vp := m.viewport
	vp.SetContent(m.renderBody(widths))
	sb.WriteString(vp.View())

	view := sb.String()
	if in := m.canvas.input; in != nil {
		if x, y, ok := m.cellToScreen(in.coord); ok {
			field := in.field
			field.Width = maxInt(widths[in.coord.Col]-1, 1)
			fg := m.cfg.Style.Input.Render(" " + field.View())
			view = overlay.Composite(fg, view, overlay.Left, overlay.Top, x, y)
		}
	}
	return view
}

func (m *Model) renderBody(widths []int) string {
	rows := m.canvas.bodyRows()
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, m.renderLine(r.cells, widths))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLine(cells []*canvasCell, widths []int) string {
	var sb strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			sb.WriteString(m.cfg.Style.Separator.Render(columnSeparator))
		}
		sb.WriteString(m.renderCell(cell, widths[i]))
	}
	return sb.String()
}

func (m *Model) renderRule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(ruleFill, w+2)
	}
	return m.cfg.Style.Separator.Render(strings.Join(parts, ruleCross))
}

// renderCell draws " content " padded to width. Content that does not fit
// is truncated and loses per-node styling.
func (m *Model) renderCell(cell *canvasCell, width int) string {
	base := m.cfg.Style.Cell
	switch {
	case cell.selected:
		base = m.cfg.Style.Selected
	case cell.header:
		base = m.cfg.Style.Header
	}

	plain := grapheme.Sanitize(cell.plain())
	w := grapheme.Width(plain)
	if w > width {
		return base.Render(" " + grapheme.Pad(grapheme.Truncate(plain, width), width) + " ")
	}

	var sb strings.Builder
	sb.WriteString(base.Render(" " + grapheme.Sanitize(cell.text)))
	for _, n := range cell.nodes {
		sb.WriteString(m.nodeStyle(n.StyleKey, base).Render(grapheme.Sanitize(n.Text)))
	}
	sb.WriteString(base.Render(strings.Repeat(" ", width-w+1)))
	return sb.String()
}

func (m *Model) nodeStyle(key string, base lipgloss.Style) lipgloss.Style {
	if key == "" || m.cfg.StyleForKey == nil {
		return base
	}
	st, ok := m.cfg.StyleForKey(key)
	if !ok {
		return base
	}
	return st.Inherit(base)
}

func (m Model) clip(line string) string {
	if m.viewport.Width <= 0 {
		return line
	}
	return ansi.Truncate(line, m.viewport.Width, "")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
