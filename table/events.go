package table

import "github.com/iw2rmb/fuzzytable/grid"

// ChangeKind identifies what a ChangeEvent describes.
type ChangeKind uint8

const (
	ChangeValue ChangeKind = iota
	ChangeSelection
)

// ChangeEvent is delivered to Config.OnChange.
type ChangeEvent struct {
	Kind ChangeKind

	// Set for ChangeValue.
	Version uint64
	Coord   grid.Coord
	Before  grid.Value
	After   grid.Value

	// Selection is the selection after the change, for both kinds.
	Selection []grid.Coord
}

func (c *Controller) emitValue(ch grid.Change) {
	if c.cfg.OnChange == nil {
		return
	}
	c.cfg.OnChange(ChangeEvent{
		Kind:      ChangeValue,
		Version:   ch.VersionAfter,
		Coord:     ch.Coord,
		Before:    ch.Before,
		After:     ch.After,
		Selection: c.sel.Members(),
	})
}

func (c *Controller) emitSelection() {
	if c.cfg.OnChange == nil {
		return
	}
	c.cfg.OnChange(ChangeEvent{
		Kind:      ChangeSelection,
		Version:   c.model.Version(),
		Selection: c.sel.Members(),
	})
}
