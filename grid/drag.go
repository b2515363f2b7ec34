package grid

// DragState is the state of a rectangular drag-select.
type DragState uint8

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Drag tracks the anchor of an in-progress drag-select.
type Drag struct {
	state  DragState
	anchor Coord
}

// Begin records c as the anchor and enters DragDragging.
func (d *Drag) Begin(c Coord) {
	d.state = DragDragging
	d.anchor = c
}

// End returns to DragIdle and forgets the anchor.
func (d *Drag) End() {
	d.state = DragIdle
	d.anchor = Coord{}
}

func (d *Drag) State() DragState { return d.state }

func (d *Drag) Dragging() bool { return d.state == DragDragging }

func (d *Drag) Anchor() (Coord, bool) {
	if d.state != DragDragging {
		return Coord{}, false
	}
	return d.anchor, true
}
