package grid

import "sort"

// Model is the pure grid state: column labels and rows aligned to them.
type Model struct {
	columns []string
	index   map[string]int
	rows    [][]Value
	version uint64

	lastChange    Change
	hasLastChange bool
}

// Normalize builds a Model from raw records.
//
// A nil columns slice means "not given": the column list becomes the union of
// record keys in first-seen record order (keys of one record in lexical order).
// An explicitly empty columns slice with records is a SchemaError.
func Normalize(columns []string, records []Record) (*Model, error) {
	if columns == nil {
		columns = unionKeys(records)
	} else if len(columns) == 0 && len(records) > 0 {
		return nil, &SchemaError{Reason: "empty column list for non-empty rows"}
	}

	index := make(map[string]int, len(columns))
	for i, key := range columns {
		if key == "" {
			return nil, &SchemaError{Reason: "empty column key"}
		}
		if _, dup := index[key]; dup {
			return nil, &SchemaError{Reason: "duplicate column key " + key}
		}
		index[key] = i
	}

	rows := make([][]Value, 0, len(records))
	for _, rec := range records {
		rows = append(rows, orderRecord(columns, rec))
	}

	return &Model{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    rows,
	}, nil
}

func unionKeys(records []Record) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, rec := range records {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func orderRecord(columns []string, rec Record) []Value {
	row := make([]Value, len(columns))
	for i, key := range columns {
		v, ok := rec[key]
		if !ok || v == nil {
			v = Empty
		}
		row[i] = v
	}
	return row
}

func (m *Model) Version() uint64 { return m.version }

func (m *Model) ColumnCount() int { return len(m.columns) }

func (m *Model) RowCount() int { return len(m.rows) }

// Columns returns a copy of the column labels.
func (m *Model) Columns() []string {
	return append([]string(nil), m.columns...)
}

func (m *Model) ColumnIndexOf(key string) (int, error) {
	i, ok := m.index[key]
	if !ok {
		return -1, notFound(key)
	}
	return i, nil
}

// ColumnByKey is ColumnIndexOf under the name paired with ColumnByIndex.
func (m *Model) ColumnByKey(key string) (int, error) {
	return m.ColumnIndexOf(key)
}

func (m *Model) ColumnByIndex(col int) (string, error) {
	if col < 0 || col >= len(m.columns) {
		return "", &OutOfRangeError{Axis: AxisCol, Col: col, Rows: len(m.rows), Cols: len(m.columns)}
	}
	return m.columns[col], nil
}

// Coord returns the range-checked coordinate for (col, row) with its key set.
func (m *Model) Coord(col, row int) (Coord, error) {
	if err := m.check(row, col); err != nil {
		return Coord{}, err
	}
	return Coord{Col: col, Row: row, Key: m.columns[col]}, nil
}

func (m *Model) Read(row, col int) (Value, error) {
	if err := m.check(row, col); err != nil {
		return nil, err
	}
	return m.rows[row][col], nil
}

// Write replaces the value at (row, col) and returns the new value.
//
// Writing a value equal to the current one leaves the version untouched.
func (m *Model) Write(row, col int, v Value) (Value, error) {
	if err := m.check(row, col); err != nil {
		return nil, err
	}
	if v == nil {
		v = Empty
	}
	before := m.rows[row][col]
	if equalValues(before, v) {
		return v, nil
	}

	m.rows[row][col] = v
	m.version++
	m.lastChange = Change{
		VersionBefore: m.version - 1,
		VersionAfter:  m.version,
		Coord:         Coord{Col: col, Row: row, Key: m.columns[col]},
		Before:        before,
		After:         v,
	}
	m.hasLastChange = true
	return v, nil
}

// Record returns a copy of one row keyed by column.
func (m *Model) Record(row int) (Record, error) {
	if row < 0 || row >= len(m.rows) {
		return nil, &OutOfRangeError{Axis: AxisRow, Row: row, Rows: len(m.rows), Cols: len(m.columns)}
	}
	rec := make(Record, len(m.columns))
	for i, key := range m.columns {
		rec[key] = m.rows[row][i]
	}
	return rec, nil
}

func (m *Model) check(row, col int) error {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.columns) {
		return m.outOfRange(row, col)
	}
	return nil
}

func (m *Model) outOfRange(row, col int) error {
	return &OutOfRangeError{Axis: AxisCell, Row: row, Col: col, Rows: len(m.rows), Cols: len(m.columns)}
}
