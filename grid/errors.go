package grid

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) when a column key does not exist.
var ErrNotFound = errors.New("grid: not found")

// SchemaError reports a column list that cannot describe the given rows.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "grid: schema: " + e.Reason
}

// Axis names the coordinate an OutOfRangeError was checked on.
type Axis uint8

const (
	AxisCell Axis = iota // both Row and Col were given
	AxisRow
	AxisCol
)

// OutOfRangeError reports a coordinate outside the current grid bounds.
// For AxisRow only Row is meaningful, for AxisCol only Col.
type OutOfRangeError struct {
	Axis       Axis
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfRangeError) Error() string {
	switch e.Axis {
	case AxisRow:
		return fmt.Sprintf("grid: row %d out of range [0,%d)", e.Row, e.Rows)
	case AxisCol:
		return fmt.Sprintf("grid: column %d out of range [0,%d)", e.Col, e.Cols)
	default:
		return fmt.Sprintf("grid: cell (col=%d,row=%d) out of range %dx%d", e.Col, e.Row, e.Cols, e.Rows)
	}
}

func notFound(key string) error {
	return fmt.Errorf("column %q: %w", key, ErrNotFound)
}
