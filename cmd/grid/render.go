package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	grid "github.com/grindlemire/go-grid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// palette cycles across cells in the rendered output.
var palette = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

var renderCmd = &cobra.Command{
	Use:   "render <grid.yaml>",
	Short: "Draw the computed cells as colored blocks",
	Long: `Reads a YAML grid description, computes the layout for the available
size, and draws each cell as a block of colored characters.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetFloat64("width")
		height, _ := cmd.Flags().GetFloat64("height")
		if err := runRender(cmd.OutOrStdout(), args[0], width, height); err != nil {
			fmt.Printf("Render failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	renderCmd.Flags().Float64("width", 0, "Available width (0 = terminal width)")
	renderCmd.Flags().Float64("height", 0, "Available height (0 = terminal height, capped at 40)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(out io.Writer, path string, width, height float64) error {
	desc, err := loadGridDesc(path)
	if err != nil {
		return err
	}
	width, height = availableSize(width, height)
	if height > 40 {
		height = 40
	}

	g := desc.grid()
	items := desc.items()
	g.Layout(grid.Cells(items...), width, height)

	// owner[y][x] is the index of the cell covering that character, or -1.
	cols, rows := int(math.Ceil(width)), int(math.Ceil(height))
	owner := make([][]int, rows)
	for y := range owner {
		owner[y] = make([]int, cols)
		for x := range owner[y] {
			owner[y][x] = -1
		}
	}
	for i, it := range items {
		b := it.Bounds
		for y := int(b.Y); y < int(b.Bottom()) && y < rows; y++ {
			for x := int(b.X); x < int(b.Right()) && x < cols; x++ {
				if y >= 0 && x >= 0 {
					owner[y][x] = i
				}
			}
		}
	}

	p := termenv.ColorProfile()
	for _, line := range owner {
		var sb strings.Builder
		for x := 0; x < len(line); {
			// Group runs of the same owner into one styled write.
			idx := line[x]
			run := 0
			for x+run < len(line) && line[x+run] == idx {
				run++
			}
			if idx < 0 {
				sb.WriteString(strings.Repeat(" ", run))
			} else {
				block := termenv.String(strings.Repeat("█", run)).
					Foreground(p.Color(palette[idx%len(palette)]))
				sb.WriteString(block.String())
			}
			x += run
		}
		fmt.Fprintln(out, sb.String())
	}

	fmt.Fprintln(out)
	for i := range items {
		swatch := termenv.String("██").Foreground(p.Color(palette[i%len(palette)]))
		fmt.Fprintf(out, "%s %s\n", swatch, desc.label(i))
	}
	return nil
}
