// Package main provides the grid layout inspector CLI.
//
// Usage:
//
//	grid compute layout.yaml    Print line metrics and allocations
//	grid render layout.yaml     Draw the computed cells as colored blocks
//	grid version                Print version information
//
// Grid descriptions are YAML files listing the column count, gap,
// padding, and one (width, height) hint pair per cell.
package main

const version = "0.1.0"

func main() {
	Execute()
}
