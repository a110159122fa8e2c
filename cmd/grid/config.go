package main

import (
	"fmt"
	"os"

	grid "github.com/grindlemire/go-grid"
	"gopkg.in/yaml.v3"
)

// hintDesc mirrors grid.SizeHint in the YAML description.
type hintDesc struct {
	Min  float64 `yaml:"min"`
	Pref float64 `yaml:"pref"`
	Flex float64 `yaml:"flex"`
}

func (h hintDesc) hint() grid.SizeHint {
	return grid.Hint(h.Min, h.Pref, h.Flex)
}

type gapDesc struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type paddingDesc struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type cellDesc struct {
	Label  string   `yaml:"label"`
	Width  hintDesc `yaml:"width"`
	Height hintDesc `yaml:"height"`
}

// gridDesc is the on-disk description of a grid and its cells.
type gridDesc struct {
	Columns int         `yaml:"columns"`
	Gap     gapDesc     `yaml:"gap"`
	Padding paddingDesc `yaml:"padding"`
	Cells   []cellDesc  `yaml:"cells"`
}

// loadGridDesc reads and decodes a YAML grid description.
func loadGridDesc(path string) (*gridDesc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid description: %w", err)
	}

	var d gridDesc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(d.Cells) == 0 {
		return nil, fmt.Errorf("%s describes no cells", path)
	}
	return &d, nil
}

// grid builds the engine configuration. Column counts below 1 are left
// as-is; the engine clamps them.
func (d *gridDesc) grid() grid.Grid {
	return grid.Grid{
		Columns: d.Columns,
		Gap:     grid.GapXY(d.Gap.X, d.Gap.Y),
		Padding: grid.EdgeTRBL(d.Padding.Top, d.Padding.Right, d.Padding.Bottom, d.Padding.Left),
	}
}

// items builds one Item per described cell, in row-major order.
func (d *gridDesc) items() []*grid.Item {
	items := make([]*grid.Item, len(d.Cells))
	for i, c := range d.Cells {
		items[i] = grid.NewItem(c.Width.hint(), c.Height.hint())
	}
	return items
}

// label returns the i-th cell's label, defaulting to its index.
func (d *gridDesc) label(i int) string {
	if l := d.Cells[i].Label; l != "" {
		return l
	}
	return fmt.Sprintf("cell %d", i)
}
