package grid

import "sort"

// Selection is the set of currently selected cells.
type Selection struct {
	keys    []string
	cells   map[cellPos]Coord
	version uint64
}

// NewSelection returns an empty selection. columns is used to fill Coord.Key
// for cells selected through SelectRectangle.
func NewSelection(columns []string) *Selection {
	return &Selection{
		keys:  append([]string(nil), columns...),
		cells: make(map[cellPos]Coord),
	}
}

// Version changes only when membership changes.
func (s *Selection) Version() uint64 { return s.version }

func (s *Selection) Len() int { return len(s.cells) }

func (s *Selection) Contains(c Coord) bool {
	_, ok := s.cells[posOf(c)]
	return ok
}

// Select adds c. Unless additive, the selection is cleared first.
func (s *Selection) Select(c Coord, additive bool) {
	if !additive {
		if len(s.cells) == 1 && s.Contains(c) {
			return
		}
		s.Clear()
	}
	s.add(c)
}

// SelectRectangle replaces the selection with every cell of the inclusive
// rectangle spanned by anchor and target, in either order.
func (s *Selection) SelectRectangle(anchor, target Coord) {
	r := NormalizeRect(anchor, target)

	next := make(map[cellPos]Coord, r.Area())
	for col := r.Min.Col; col <= r.Max.Col; col++ {
		for row := r.Min.Row; row <= r.Max.Row; row++ {
			next[cellPos{col: col, row: row}] = Coord{Col: col, Row: row, Key: s.keyOf(col)}
		}
	}

	if sameMembers(s.cells, next) {
		s.cells = next
		return
	}
	s.cells = next
	s.version++
}

func (s *Selection) Clear() {
	if len(s.cells) == 0 {
		return
	}
	s.reset()
}

func (s *Selection) Deselect(c Coord) {
	p := posOf(c)
	if _, ok := s.cells[p]; !ok {
		return
	}
	delete(s.cells, p)
	s.version++
}

// Members returns the selected cells in row-major order. The order carries no
// meaning; it only keeps callers deterministic.
func (s *Selection) Members() []Coord {
	out := make([]Coord, 0, len(s.cells))
	for _, c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return ComparePos(out[i], out[j]) < 0
	})
	return out
}

// Bounds returns the smallest rectangle covering the selection.
func (s *Selection) Bounds() (Rect, bool) {
	if len(s.cells) == 0 {
		return Rect{}, false
	}
	first := true
	var r Rect
	for _, c := range s.cells {
		if first {
			r = Rect{Min: At(c.Col, c.Row), Max: At(c.Col, c.Row)}
			first = false
			continue
		}
		r.Min.Col = minInt(r.Min.Col, c.Col)
		r.Min.Row = minInt(r.Min.Row, c.Row)
		r.Max.Col = maxInt(r.Max.Col, c.Col)
		r.Max.Row = maxInt(r.Max.Row, c.Row)
	}
	return r, true
}

func (s *Selection) add(c Coord) {
	p := posOf(c)
	if _, ok := s.cells[p]; ok {
		return
	}
	if c.Key == "" {
		c.Key = s.keyOf(c.Col)
	}
	s.cells[p] = c
	s.version++
}

func (s *Selection) reset() {
	s.cells = make(map[cellPos]Coord)
	s.version++
}

func (s *Selection) keyOf(col int) string {
	if col < 0 || col >= len(s.keys) {
		return ""
	}
	return s.keys[col]
}

func sameMembers(a, b map[cellPos]Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if _, ok := b[p]; !ok {
			return false
		}
	}
	return true
}
