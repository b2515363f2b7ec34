package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iw2rmb/fuzzytable/grid"
)

// Controller drives a Surface from a grid.Model and a grid.Selection.
//
// A Controller is not safe for concurrent use. All calls, including Surface
// event delivery, must come from one goroutine.
type Controller struct {
	cfg     Config
	surface Surface
	model   *grid.Model
	sel     *grid.Selection
	drag    grid.Drag
	editors []ColumnEditor

	active    grid.Coord
	hasActive bool

	release func()
}

var errNilSurface = errors.New("table: nil surface")

// ErrEditorPanic wraps a panic recovered from ColumnEditor.Render.
var ErrEditorPanic = errors.New("table: column editor panicked")

// New normalizes cfg.Rows, lays the grid out on cfg.Surface, renders every
// cell and subscribes to the surface's events. A SchemaError aborts before
// anything is laid out.
func New(cfg Config) (*Controller, error) {
	if cfg.Surface == nil {
		return nil, errNilSurface
	}
	model, err := grid.Normalize(cfg.Columns, cfg.Rows)
	if err != nil {
		return nil, err
	}

	cols := model.Columns()
	c := &Controller{
		cfg:     cfg,
		surface: cfg.Surface,
		model:   model,
		sel:     grid.NewSelection(cols),
		editors: resolveEditors(cols, cfg.ColumnEditors, cfg.ColumnEditorsByKey),
	}
	c.layout()
	c.release = c.surface.Subscribe(c)
	return c, nil
}

// Close releases the surface subscription. It is safe to call more than once.
func (c *Controller) Close() {
	if c.release == nil {
		return
	}
	c.release()
	c.release = nil
}

func (c *Controller) layout() {
	c.surface.Reset()

	head := c.surface.AppendRow()
	for i, key := range c.model.Columns() {
		head.AppendHeaderCell(i, key).SetText(key)
	}

	for row := 0; row < c.model.RowCount(); row++ {
		r := c.surface.AppendRow()
		for col := 0; col < c.model.ColumnCount(); col++ {
			at, _ := c.model.Coord(col, row)
			v, _ := c.model.Read(row, col)
			c.renderInto(at, r.AppendBodyCell(at), v)
		}
	}
}

func (c *Controller) Columns() []string { return c.model.Columns() }

func (c *Controller) RowCount() int { return c.model.RowCount() }

func (c *Controller) ColumnByIndex(col int) (string, error) { return c.model.ColumnByIndex(col) }

func (c *Controller) ColumnByKey(key string) (int, error) { return c.model.ColumnByKey(key) }

// Editor returns the resolved editor for a column.
func (c *Controller) Editor(col int) (ColumnEditor, error) {
	if _, err := c.model.ColumnByIndex(col); err != nil {
		return nil, err
	}
	return c.editors[col], nil
}

// Selection returns the selected cells.
func (c *Controller) Selection() []grid.Coord { return c.sel.Members() }

// IsSelected reports whether at is in the selection. Key is ignored.
func (c *Controller) IsSelected(at grid.Coord) bool { return c.sel.Contains(at) }

func (c *Controller) Dragging() bool { return c.drag.Dragging() }

// Active returns the cell most recently pressed or activated.
func (c *Controller) Active() (grid.Coord, bool) { return c.active, c.hasActive }

func (c *Controller) OnCellPrimaryDown(in grid.Coord) error {
	at, err := c.coord(in)
	if err != nil {
		return err
	}
	c.updateSelection(func() { c.sel.Select(at, false) })
	c.drag.Begin(at)
	c.setActive(at)
	return nil
}

func (c *Controller) OnCellHoverDuringDrag(in grid.Coord) error {
	at, err := c.coord(in)
	if err != nil {
		return err
	}
	anchor, ok := c.drag.Anchor()
	if !ok {
		return nil
	}
	c.updateSelection(func() { c.sel.SelectRectangle(anchor, at) })
	return nil
}

func (c *Controller) OnDragEnd() {
	c.drag.End()
}

// SelectRange replaces the selection with the rectangle spanned by anchor and
// target without touching the drag state.
func (c *Controller) SelectRange(anchor, target grid.Coord) error {
	a, err := c.coord(anchor)
	if err != nil {
		return err
	}
	t, err := c.coord(target)
	if err != nil {
		return err
	}
	c.updateSelection(func() { c.sel.SelectRectangle(a, t) })
	return nil
}

// ClearSelection empties the selection.
func (c *Controller) ClearSelection() {
	c.updateSelection(c.sel.Clear)
}

// OnCellActivate opens an edit for one cell. The committed value is written
// back and the cell re-rendered.
func (c *Controller) OnCellActivate(in grid.Coord) error {
	at, err := c.coord(in)
	if err != nil {
		return err
	}
	v, err := c.model.Read(at.Row, at.Col)
	if err != nil {
		return err
	}
	c.setActive(at)

	editable, ok := c.editors[at.Col].(Editable)
	if !ok {
		editable = TextEditor{}
	}
	committed := false
	editable.Edit(EditRequest{
		Coord:   at,
		Value:   v,
		Surface: c.surface,
		Commit: func(next grid.Value) {
			if committed {
				return
			}
			committed = true
			_ = c.write(at, next)
		},
	})
	return nil
}

// OnDeleteKey writes grid.Empty into every selected cell. It does nothing
// while an input is focused.
func (c *Controller) OnDeleteKey() error {
	if c.surface.InputFocused() {
		return nil
	}
	for _, at := range c.sel.Members() {
		if err := c.write(at, grid.Empty); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) GetCellValue(in grid.Coord) (grid.Value, error) {
	return c.model.Read(in.Row, in.Col)
}

// SetCellValue writes v and re-renders the cell.
func (c *Controller) SetCellValue(in grid.Coord, v grid.Value) error {
	at, err := c.coord(in)
	if err != nil {
		return err
	}
	return c.write(at, v)
}

// Refresh re-renders every body cell. Hosts call it once an editor's own
// asynchronous state has changed.
func (c *Controller) Refresh() {
	for row := 0; row < c.model.RowCount(); row++ {
		for col := 0; col < c.model.ColumnCount(); col++ {
			at, _ := c.model.Coord(col, row)
			c.renderCell(at)
		}
	}
}

// CopySelection returns the selection as tab-separated rows covering its
// bounding rectangle. Unselected cells inside the bounds are blank.
func (c *Controller) CopySelection() string {
	r, ok := c.sel.Bounds()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for row := r.Min.Row; row <= r.Max.Row; row++ {
		if row > r.Min.Row {
			sb.WriteByte('\n')
		}
		for col := r.Min.Col; col <= r.Max.Col; col++ {
			if col > r.Min.Col {
				sb.WriteByte('\t')
			}
			if !c.sel.Contains(grid.At(col, row)) {
				continue
			}
			v, err := c.model.Read(row, col)
			if err != nil {
				continue
			}
			sb.WriteString(grid.Text(v))
		}
	}
	return sb.String()
}

// SetCellText writes typed text, parsed by the column editor when it
// implements Parser.
func (c *Controller) SetCellText(in grid.Coord, text string) error {
	at, err := c.coord(in)
	if err != nil {
		return err
	}
	var v grid.Value = text
	if p, ok := c.editors[at.Col].(Parser); ok {
		v = p.Parse(text)
	}
	return c.write(at, v)
}

func (c *Controller) write(at grid.Coord, v grid.Value) error {
	before := c.model.Version()
	if _, err := c.model.Write(at.Row, at.Col, v); err != nil {
		return err
	}
	c.renderCell(at)
	if c.model.Version() != before {
		if ch, ok := c.model.LastChange(); ok {
			c.emitValue(ch)
		}
	}
	return nil
}

func (c *Controller) renderCell(at grid.Coord) {
	cell, ok := c.surface.Cell(at)
	if !ok {
		return
	}
	v, err := c.model.Read(at.Row, at.Col)
	if err != nil {
		return
	}
	c.renderInto(at, cell, v)
}

// renderInto routes one cell through its column editor. A failing or
// panicking editor leaves the cell showing plain text.
func (c *Controller) renderInto(at grid.Coord, cell Cell, v grid.Value) {
	cell.Clear()
	err := safeRender(c.editors[at.Col], v, cell)
	if err == nil {
		return
	}
	_ = TextEditor{}.Render(v, cell)
	if c.cfg.OnRenderError != nil {
		c.cfg.OnRenderError(at, err)
	}
}

func safeRender(ed ColumnEditor, v grid.Value, cell Cell) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrEditorPanic, r)
		}
	}()
	return ed.Render(v, cell)
}

func (c *Controller) updateSelection(apply func()) {
	before := c.sel.Version()
	prev := c.sel.Members()
	apply()
	if c.sel.Version() == before {
		return
	}

	for _, at := range prev {
		if c.sel.Contains(at) {
			continue
		}
		if cell, ok := c.surface.Cell(at); ok {
			cell.SetSelected(false)
		}
	}
	was := make(map[[2]int]bool, len(prev))
	for _, at := range prev {
		was[[2]int{at.Col, at.Row}] = true
	}
	for _, at := range c.sel.Members() {
		if was[[2]int{at.Col, at.Row}] {
			continue
		}
		if cell, ok := c.surface.Cell(at); ok {
			cell.SetSelected(true)
		}
	}
	c.emitSelection()
}

func (c *Controller) setActive(at grid.Coord) {
	c.active = at
	c.hasActive = true
}

func (c *Controller) coord(in grid.Coord) (grid.Coord, error) {
	return c.model.Coord(in.Col, in.Row)
}
