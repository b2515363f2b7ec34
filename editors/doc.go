// Package editors provides reusable table.ColumnEditor implementations.
//
// Format renders and parses typed values (currency, integers, numbers,
// booleans and percentages). Image describes data-URI images. Lookup maps
// values through a table loaded asynchronously.
package editors
