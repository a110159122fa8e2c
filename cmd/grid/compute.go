package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	grid "github.com/grindlemire/go-grid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var computeCmd = &cobra.Command{
	Use:   "compute <grid.yaml>",
	Short: "Compute line metrics and allocations for a grid description",
	Long: `Reads a YAML grid description, sizes both axes, and prints the per-column
and per-row metrics, the axis totals, and the final cell geometry.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetFloat64("width")
		height, _ := cmd.Flags().GetFloat64("height")
		if err := runCompute(cmd.OutOrStdout(), args[0], width, height); err != nil {
			fmt.Printf("Compute failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	computeCmd.Flags().Float64("width", 0, "Available width (0 = terminal width)")
	computeCmd.Flags().Float64("height", 0, "Available height (0 = terminal height)")
	rootCmd.AddCommand(computeCmd)
}

// availableSize fills zero dimensions from the terminal size, falling
// back to 80x24 when stdout is not a terminal.
func availableSize(width, height float64) (float64, float64) {
	if width > 0 && height > 0 {
		return width, height
	}
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = 80, 24
	}
	if width <= 0 {
		width = float64(tw)
	}
	if height <= 0 {
		height = float64(th)
	}
	return width, height
}

func runCompute(out io.Writer, path string, width, height float64) error {
	desc, err := loadGridDesc(path)
	if err != nil {
		return err
	}
	width, height = availableSize(width, height)

	g := desc.grid()
	items := desc.items()
	cells := grid.Cells(items...)

	columns := g.Columns
	if columns < 1 {
		columns = 1
	}
	fmt.Fprintf(out, "grid: %d columns x %d rows, available %.1f x %.1f\n\n",
		columns, g.Rows(len(cells)), width, height)

	printAxis(out, g, cells, grid.Horizontal, width)
	printAxis(out, g, cells, grid.Vertical, height)

	g.Layout(cells, width, height)

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CELL\tCOL\tROW\tX\tY\tWIDTH\tHEIGHT")
	for i, it := range items {
		pos := g.PositionOf(i)
		b := it.Bounds
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%.1f\t%.1f\t%.1f\n",
			desc.label(i), pos.Col, pos.Row, b.X, b.Y, b.Width, b.Height)
	}
	return w.Flush()
}

// printAxis writes one axis's metrics and allocations.
func printAxis(out io.Writer, g grid.Grid, cells []grid.Cell, axis grid.Axis, available float64) {
	lines, totals := g.Measure(cells, axis)
	allocs := g.Allocate(cells, axis, available)

	name := "col"
	if axis == grid.Vertical {
		name = "row"
	}

	fmt.Fprintf(out, "%s axis: min=%.1f pref=%.1f flex=%.1f\n", axis, totals.Min, totals.Pref, totals.Flex)
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tMIN\tPREF\tFLEX\tOFFSET\tSIZE")
	for i, l := range lines {
		fmt.Fprintf(w, "%s %d\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			name, i, l.Min, l.Pref, l.Flex, allocs[i].Offset, allocs[i].Size)
	}
	w.Flush()
	fmt.Fprintln(out)
}
