package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/iw2rmb/fuzzytable/grid"
	"github.com/iw2rmb/fuzzytable/table"
)

// Canvas is an in-memory table.Surface. Model renders it and feeds it input.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	rows  []*canvasRow
	body  map[[2]int]*canvasCell
	input *inputState

	subs    map[int]table.Handler
	subIDs  []int
	nextSub int
}

type canvasRow struct {
	c      *Canvas
	header bool
	cells  []*canvasCell
}

type canvasCell struct {
	coord    grid.Coord
	header   bool
	text     string
	nodes    []table.Node
	selected bool
}

type inputState struct {
	coord  grid.Coord
	field  textinput.Model
	commit func(string)
}

var _ table.Surface = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{
		body: make(map[[2]int]*canvasCell),
		subs: make(map[int]table.Handler),
	}
}

func (c *Canvas) Reset() {
	c.rows = nil
	c.body = make(map[[2]int]*canvasCell)
	c.input = nil
}

func (c *Canvas) AppendRow() table.Row {
	r := &canvasRow{c: c}
	c.rows = append(c.rows, r)
	return r
}

func (c *Canvas) Cell(at grid.Coord) (table.Cell, bool) {
	cell, ok := c.body[[2]int{at.Col, at.Row}]
	if !ok {
		return nil, false
	}
	return cell, true
}

// OpenInput replaces any open input. The replaced input is committed first.
func (c *Canvas) OpenInput(at grid.Coord, value string, commit func(string)) {
	c.CommitInput()

	field := textinput.New()
	field.Prompt = ""
	field.SetValue(value)
	field.CursorEnd()
	field.Focus()
	c.input = &inputState{coord: at, field: field, commit: commit}
}

func (c *Canvas) InputFocused() bool { return c.input != nil }

// CommitInput closes the open input and hands its text to the commit
// callback. It reports whether an input was open.
func (c *Canvas) CommitInput() bool {
	in := c.input
	if in == nil {
		return false
	}
	c.input = nil
	in.field.Blur()
	if in.commit != nil {
		in.commit(in.field.Value())
	}
	return true
}

// InputAt reports the coordinate of the open input.
func (c *Canvas) InputAt() (grid.Coord, bool) {
	if c.input == nil {
		return grid.Coord{}, false
	}
	return c.input.coord, true
}

func (c *Canvas) Subscribe(h table.Handler) func() {
	id := c.nextSub
	c.nextSub++
	c.subs[id] = h
	c.subIDs = append(c.subIDs, id)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(c.subs, id)
		for i, v := range c.subIDs {
			if v == id {
				c.subIDs = append(c.subIDs[:i], c.subIDs[i+1:]...)
				break
			}
		}
	}
}

// dispatch delivers an event to every handler in subscription order and
// returns the first error.
func (c *Canvas) dispatch(fn func(h table.Handler) error) error {
	var first error
	for _, id := range append([]int(nil), c.subIDs...) {
		h, ok := c.subs[id]
		if !ok {
			continue
		}
		if err := fn(h); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (c *Canvas) headerCells() []*canvasCell {
	for _, r := range c.rows {
		if r.header {
			return r.cells
		}
	}
	return nil
}

func (c *Canvas) bodyRows() []*canvasRow {
	out := make([]*canvasRow, 0, len(c.rows))
	for _, r := range c.rows {
		if !r.header && len(r.cells) > 0 {
			out = append(out, r)
		}
	}
	return out
}

func (r *canvasRow) AppendHeaderCell(col int, key string) table.Cell {
	r.header = true
	cell := &canvasCell{coord: grid.Coord{Col: col, Row: -1, Key: key}, header: true}
	r.cells = append(r.cells, cell)
	return cell
}

func (r *canvasRow) AppendBodyCell(at grid.Coord) table.Cell {
	cell := &canvasCell{coord: at}
	r.cells = append(r.cells, cell)
	r.c.body[[2]int{at.Col, at.Row}] = cell
	return cell
}

func (cell *canvasCell) Clear() {
	cell.text = ""
	cell.nodes = nil
}

func (cell *canvasCell) SetText(s string) {
	cell.text = s
	cell.nodes = nil
}

func (cell *canvasCell) Append(n table.Node) {
	cell.nodes = append(cell.nodes, n)
}

func (cell *canvasCell) SetSelected(selected bool) {
	cell.selected = selected
}

// plain is the cell content without styling.
func (cell *canvasCell) plain() string {
	if len(cell.nodes) == 0 {
		return cell.text
	}
	var sb strings.Builder
	sb.WriteString(cell.text)
	for _, n := range cell.nodes {
		sb.WriteString(n.Text)
	}
	return sb.String()
}
