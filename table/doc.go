// Package table provides the grid controller and the contracts it drives.
//
// The controller owns a grid.Model and a grid.Selection, lays cells out on a
// Surface, renders every body cell through that column's ColumnEditor, and
// turns Surface events into selection, edit and delete operations.
package table
