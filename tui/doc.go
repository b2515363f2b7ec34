// Package tui provides a Bubble Tea grid component backed by the table
// package.
//
// Canvas implements table.Surface in memory; Model lays the canvas out as a
// terminal table, maps mouse and key input onto the controller's event
// handlers, and overlays a text input for in-place edits.
package tui
