package table

import "github.com/iw2rmb/fuzzytable/grid"

// Node is a visual fragment appended to a cell. StyleKey is resolved by the
// surface; an empty key uses the cell's base style.
type Node struct {
	Text     string
	StyleKey string
}

// Cell is the visual surface of one header or body cell. Clear drops content
// only; the selected marker survives it.
type Cell interface {
	Clear()
	SetText(s string)
	Append(n Node)
	SetSelected(selected bool)
}

// Row is a row container. Cells are laid out in append order.
type Row interface {
	AppendHeaderCell(col int, key string) Cell
	AppendBodyCell(c grid.Coord) Cell
}

// Surface is the rendering environment a Controller targets.
type Surface interface {
	// Reset drops every row so a fresh layout can be appended.
	Reset()
	AppendRow() Row
	// Cell looks up a body cell by coordinate.
	Cell(c grid.Coord) (Cell, bool)

	// OpenInput shows a focused input over cell c pre-populated with value.
	// commit is called once with the final text when the input loses focus.
	OpenInput(c grid.Coord, value string, commit func(string))
	InputFocused() bool

	// Subscribe registers h for cell and global events until release is called.
	Subscribe(h Handler) (release func())
}

// Handler receives input events delivered by a Surface.
type Handler interface {
	OnCellPrimaryDown(c grid.Coord) error
	OnCellHoverDuringDrag(c grid.Coord) error
	OnCellActivate(c grid.Coord) error
	OnDragEnd()
	// OnDeleteKey is delivered only while no input is focused.
	OnDeleteKey() error
}
