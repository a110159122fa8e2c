// Package grid provides a column-based grid layout engine for Go.
//
// Users import this single package for the complete public API:
// grid configuration, size hints, per-line metrics, allocations, and
// the Cell interface for custom layout participants.
package grid
