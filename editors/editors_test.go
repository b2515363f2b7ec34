package editors

import (
	"strings"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

type fakeCell struct {
	text     string
	nodes    []table.Node
	clears   int
	selected bool
}

func (c *fakeCell) Clear() {
	c.clears++
	c.text = ""
	c.nodes = nil
}

func (c *fakeCell) SetText(s string) {
	c.text = s
	c.nodes = nil
}

func (c *fakeCell) Append(n table.Node) { c.nodes = append(c.nodes, n) }

func (c *fakeCell) SetSelected(selected bool) { c.selected = selected }

func (c *fakeCell) content() string {
	var sb strings.Builder
	sb.WriteString(c.text)
	for _, n := range c.nodes {
		sb.WriteString(n.Text)
	}
	return sb.String()
}

// inputSurface records OpenInput calls; other Surface methods are inert.
type inputSurface struct {
	cell   *fakeCell
	at     grid.Coord
	value  string
	commit func(string)
}

func (s *inputSurface) Reset()                                {}
func (s *inputSurface) AppendRow() table.Row                  { return nil }
func (s *inputSurface) Cell(grid.Coord) (table.Cell, bool) {
	if s.cell == nil {
		return nil, false
	}
	return s.cell, true
}

func (s *inputSurface) InputFocused() bool                    { return s.commit != nil }
func (s *inputSurface) Subscribe(table.Handler) (release func()) { return func() {} }

func (s *inputSurface) OpenInput(at grid.Coord, value string, commit func(string)) {
	s.at, s.value, s.commit = at, value, commit
}
