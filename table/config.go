package table

import "github.com/iw2rmb/fuzzytable/grid"

// Config configures a Controller.
type Config struct {
	// Columns is the ordered column key list. Nil means "derive from Rows".
	Columns []string
	Rows    []grid.Record

	// ColumnEditors maps column index to editor. ColumnEditorsByKey does the
	// same by key; index entries win. Missing columns use TextEditor.
	ColumnEditors      map[int]ColumnEditor
	ColumnEditorsByKey map[string]ColumnEditor

	Surface Surface

	// OnChange is called after effective value writes and selection changes.
	OnChange func(ChangeEvent)
	// OnRenderError is called when an editor fails to render a cell. The cell
	// falls back to plain text either way.
	OnRenderError func(c grid.Coord, err error)
}
