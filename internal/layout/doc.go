// Package layout implements a pure-Go grid layout engine.
//
// Cells are arranged in row-major order across a fixed number of columns,
// with rows derived from the cell count. Each cell declares a minimum,
// preferred, and flexible size per axis; the engine aggregates those into
// per-column and per-row metrics and distributes the available space in
// three passes: minimums first, then proportional growth toward preferred
// sizes, then proportional distribution of any leftover by flexible weight.
// Types are re-exported through the root grid package for public consumption.
//
// The main entry point is [Grid.Layout], which takes an ordered [Cell]
// sequence and the available extent and places every cell.
package layout
