package layout

import "testing"

func TestEdges_Constructors(t *testing.T) {
	type tc struct {
		edges Edges
		want  Edges
	}

	tests := map[string]tc{
		"EdgeAll": {
			edges: EdgeAll(2),
			want:  Edges{Top: 2, Right: 2, Bottom: 2, Left: 2},
		},
		"EdgeSymmetric": {
			edges: EdgeSymmetric(1, 3),
			want:  Edges{Top: 1, Right: 3, Bottom: 1, Left: 3},
		},
		"EdgeTRBL": {
			edges: EdgeTRBL(1, 2, 3, 4),
			want:  Edges{Top: 1, Right: 2, Bottom: 3, Left: 4},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.edges != tt.want {
				t.Errorf("edges = %+v, want %+v", tt.edges, tt.want)
			}
		})
	}
}

func TestEdges_Sums(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)

	if got := e.Horizontal(); got != 6 {
		t.Errorf("Horizontal() = %v, want 6", got)
	}
	if got := e.Vertical(); got != 4 {
		t.Errorf("Vertical() = %v, want 4", got)
	}
	if got := e.along(Horizontal); got != 6 {
		t.Errorf("along(Horizontal) = %v, want 6", got)
	}
	if got := e.along(Vertical); got != 4 {
		t.Errorf("along(Vertical) = %v, want 4", got)
	}
	if got := e.start(Horizontal); got != 4 {
		t.Errorf("start(Horizontal) = %v, want Left 4", got)
	}
	if got := e.start(Vertical); got != 1 {
		t.Errorf("start(Vertical) = %v, want Top 1", got)
	}
}

func TestEdges_IsZero(t *testing.T) {
	if !(Edges{}).IsZero() {
		t.Error("zero Edges should report IsZero")
	}
	if EdgeAll(1).IsZero() {
		t.Error("non-zero Edges should not report IsZero")
	}
}

func TestGap(t *testing.T) {
	if got := GapAll(3); got != (Gap{X: 3, Y: 3}) {
		t.Errorf("GapAll(3) = %+v, want {3 3}", got)
	}
	g := GapXY(2, 5)
	if got := g.along(Horizontal); got != 2 {
		t.Errorf("along(Horizontal) = %v, want 2", got)
	}
	if got := g.along(Vertical); got != 5 {
		t.Errorf("along(Vertical) = %v, want 5", got)
	}
}
