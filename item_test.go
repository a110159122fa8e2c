package grid

import "testing"

func TestItem_BoundsRoundTrip(t *testing.T) {
	sidebar := NewItem(Exact(20), Flexed(1))
	content := NewItem(Flexed(1), Flexed(1))

	g := Grid{Columns: 2}
	g.Layout(Cells(sidebar, content), 100, 50)

	if sidebar.Bounds != NewRect(0, 0, 20, 50) {
		t.Errorf("sidebar bounds = %+v, want {0 0 20 50}", sidebar.Bounds)
	}
	if content.Bounds != NewRect(20, 0, 80, 50) {
		t.Errorf("content bounds = %+v, want {20 0 80 50}", content.Bounds)
	}
}

func TestItem_PerAxisHints(t *testing.T) {
	it := NewItem(Hint(1, 2, 3), Hint(4, 5, 6))

	if got := it.SizeHint(Horizontal); got != Hint(1, 2, 3) {
		t.Errorf("horizontal hint = %+v, want {1 2 3}", got)
	}
	if got := it.SizeHint(Vertical); got != Hint(4, 5, 6) {
		t.Errorf("vertical hint = %+v, want {4 5 6}", got)
	}
}

func TestCells(t *testing.T) {
	items := []*Item{NewItem(Exact(1), Exact(1)), NewItem(Exact(2), Exact(2))}

	cells := Cells(items...)
	if len(cells) != 2 {
		t.Fatalf("got %d cells, want 2", len(cells))
	}
	for i, c := range cells {
		if c != Cell(items[i]) {
			t.Errorf("cell %d is not item %d", i, i)
		}
	}
}

func TestGrid_TotalsThroughFacade(t *testing.T) {
	g := Grid{Columns: 2, Gap: GapAll(1), Padding: EdgeAll(2)}
	cells := Cells(
		NewItem(Exact(10), Exact(3)),
		NewItem(Hint(5, 8, 1), Exact(3)),
	)

	got := g.Totals(cells, Horizontal)
	want := AxisTotals{Min: 20, Pref: 23, Flex: 1}
	if got != want {
		t.Errorf("Totals = %+v, want %+v", got, want)
	}
}
