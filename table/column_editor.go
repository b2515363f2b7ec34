package table

import "github.com/iw2rmb/fuzzytable/grid"

// ColumnEditor renders a column's values into cell surfaces.
//
// Render must clear whatever the cell held before, must give the same output
// for the same value and internal state, and must succeed while any of the
// editor's own asynchronous state is still loading.
type ColumnEditor interface {
	Render(v grid.Value, cell Cell) error
}

// Editable is implemented by editors that supply their own editable surface.
// Editors without it are edited through a plain text input.
//
// The controller leaves the cell as rendered; an editor that covers the cell
// with an input clears it through EditRequest.ClearCell.
type Editable interface {
	Edit(req EditRequest)
}

// Parser is implemented by editors that turn typed text into a column value.
// Controller.SetCellText uses it; without it text is stored as a string.
type Parser interface {
	Parse(text string) grid.Value
}

// EditRequest is handed to Editable.Edit when a cell enters edit mode.
type EditRequest struct {
	Coord   grid.Coord
	Value   grid.Value
	Surface Surface
	// Commit writes the edited value back. Calls after the first are ignored.
	Commit func(grid.Value)
}

// ClearCell empties the edited cell's content.
func (req EditRequest) ClearCell() {
	if req.Surface == nil {
		return
	}
	if cell, ok := req.Surface.Cell(req.Coord); ok {
		cell.Clear()
	}
}

// RenderFunc adapts a function to ColumnEditor.
type RenderFunc func(v grid.Value, cell Cell) error

func (f RenderFunc) Render(v grid.Value, cell Cell) error { return f(v, cell) }

// TextEditor renders values as plain text and edits them as strings.
type TextEditor struct{}

func (TextEditor) Render(v grid.Value, cell Cell) error {
	cell.Clear()
	cell.SetText(grid.Text(v))
	return nil
}

func (TextEditor) Edit(req EditRequest) {
	req.ClearCell()
	req.Surface.OpenInput(req.Coord, grid.Text(req.Value), func(s string) {
		req.Commit(s)
	})
}

func resolveEditors(cols []string, byIndex map[int]ColumnEditor, byKey map[string]ColumnEditor) []ColumnEditor {
	out := make([]ColumnEditor, len(cols))
	for i, key := range cols {
		if ed := byIndex[i]; ed != nil {
			out[i] = ed
			continue
		}
		if ed := byKey[key]; ed != nil {
			out[i] = ed
			continue
		}
		out[i] = TextEditor{}
	}
	return out
}
