package table

import (
	"strings"

	"github.com/iw2rmb/fuzzytable/grid"
)

type fakeCell struct {
	coord    grid.Coord
	header   bool
	text     string
	nodes    []Node
	selected bool
	clears   int
}

func (c *fakeCell) Clear() {
	c.text = ""
	c.nodes = nil
	c.clears++
}

func (c *fakeCell) SetText(s string)          { c.text = s }
func (c *fakeCell) Append(n Node)             { c.nodes = append(c.nodes, n) }
func (c *fakeCell) SetSelected(selected bool) { c.selected = selected }

// content is what a viewer would see in the cell.
func (c *fakeCell) content() string {
	var sb strings.Builder
	sb.WriteString(c.text)
	for _, n := range c.nodes {
		sb.WriteString(n.Text)
	}
	return sb.String()
}

type fakeRow struct {
	s     *fakeSurface
	cells []*fakeCell
}

func (r *fakeRow) AppendHeaderCell(col int, key string) Cell {
	c := &fakeCell{header: true, coord: grid.Coord{Col: col, Key: key}}
	r.cells = append(r.cells, c)
	r.s.order = append(r.s.order, "head:"+key)
	return c
}

func (r *fakeRow) AppendBodyCell(at grid.Coord) Cell {
	c := &fakeCell{coord: at}
	r.cells = append(r.cells, c)
	r.s.body[[2]int{at.Col, at.Row}] = c
	r.s.order = append(r.s.order, "body:"+at.Key)
	return c
}

type fakeInput struct {
	coord  grid.Coord
	value  string
	commit func(string)
}

type fakeSurface struct {
	rows   []*fakeRow
	body   map[[2]int]*fakeCell
	order  []string
	resets int

	input *fakeInput

	handlers map[int]Handler
	nextID   int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		body:     make(map[[2]int]*fakeCell),
		handlers: make(map[int]Handler),
	}
}

func (s *fakeSurface) Reset() {
	s.rows = nil
	s.body = make(map[[2]int]*fakeCell)
	s.order = nil
	s.resets++
}

func (s *fakeSurface) AppendRow() Row {
	r := &fakeRow{s: s}
	s.rows = append(s.rows, r)
	return r
}

func (s *fakeSurface) Cell(at grid.Coord) (Cell, bool) {
	c, ok := s.body[[2]int{at.Col, at.Row}]
	if !ok {
		return nil, false
	}
	return c, true
}

func (s *fakeSurface) cell(col, row int) *fakeCell {
	return s.body[[2]int{col, row}]
}

func (s *fakeSurface) OpenInput(at grid.Coord, value string, commit func(string)) {
	s.input = &fakeInput{coord: at, value: value, commit: commit}
}

func (s *fakeSurface) InputFocused() bool { return s.input != nil }

// blur commits the open input with text, like losing focus.
func (s *fakeSurface) blur(text string) {
	in := s.input
	s.input = nil
	if in != nil {
		in.commit(text)
	}
}

func (s *fakeSurface) Subscribe(h Handler) func() {
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	return func() { delete(s.handlers, id) }
}
