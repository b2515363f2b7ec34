package grid

import (
	"fmt"
	"reflect"
)

// Value is a cell value. Anything a column editor can render is allowed.
type Value = any

// Empty is the value written into missing and deleted cells.
const Empty = ""

// Record is one raw input row keyed by column.
type Record map[string]Value

// Coord points at one body cell. Key is the column key for Col.
type Coord struct {
	Col int
	Row int
	Key string
}

// At returns a coordinate without a column key.
func At(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// Rect is an inclusive cell rectangle: Min.Col <= Max.Col, Min.Row <= Max.Row.
type Rect struct {
	Min Coord
	Max Coord
}

type cellPos struct {
	col int
	row int
}

func posOf(c Coord) cellPos {
	return cellPos{col: c.Col, row: c.Row}
}

// SamePos reports whether a and b address the same cell, ignoring Key.
func SamePos(a, b Coord) bool {
	return a.Col == b.Col && a.Row == b.Row
}

// ComparePos orders a and b row-major: -1, 0 or 1.
func ComparePos(a, b Coord) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRect builds the rectangle spanned by a and b, taking the min and
// max of each axis independently.
func NormalizeRect(a, b Coord) Rect {
	return Rect{
		Min: Coord{Col: minInt(a.Col, b.Col), Row: minInt(a.Row, b.Row)},
		Max: Coord{Col: maxInt(a.Col, b.Col), Row: maxInt(a.Row, b.Row)},
	}
}

// Contains reports whether c lies inside r, bounds included.
func (r Rect) Contains(c Coord) bool {
	return c.Col >= r.Min.Col && c.Col <= r.Max.Col &&
		c.Row >= r.Min.Row && c.Row <= r.Max.Row
}

// Area is the number of cells in r.
func (r Rect) Area() int {
	return (r.Max.Col - r.Min.Col + 1) * (r.Max.Row - r.Min.Row + 1)
}

// Text returns the plain display form of v.
func Text(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsEmpty reports whether v renders as nothing.
func IsEmpty(v Value) bool {
	return Text(v) == ""
}

func equalValues(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
