package grid

// Change describes the most recent effective cell write.
type Change struct {
	VersionBefore uint64
	VersionAfter  uint64
	Coord         Coord
	Before        Value
	After         Value
}

// LastChange returns the most recent effective write.
func (m *Model) LastChange() (Change, bool) {
	if !m.hasLastChange {
		return Change{}, false
	}
	return m.lastChange, true
}
