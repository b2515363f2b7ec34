// Package grid implements the pure, in-memory model behind a fuzzytable grid.
//
// Coordinates are 0-based (Col, Row) cell positions. Rectangles are inclusive
// on both axes: [Min, Max].
package grid
