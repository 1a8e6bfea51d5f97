package editor

import (
	"testing"

	"github.com/musaaj/Simaditor/document"
)

func TestUnitCells_TabUsesTabStops(t *testing.T) {
	if got, want := unitCells("\t", 1), 3; got != want {
		t.Fatalf("tab after col 1: got %d, want %d", got, want)
	}
	if got, want := unitCells("\t", 4), 4; got != want {
		t.Fatalf("tab at stop: got %d, want %d", got, want)
	}
	if got, want := displayUnit("\t", 2), "  "; got != want {
		t.Fatalf("tab display: got %q, want %q", got, want)
	}
}

func TestUnitCells_Widths(t *testing.T) {
	cases := []struct {
		name string
		unit string
		want int
	}{
		{name: "ascii", unit: "a", want: 1},
		{name: "combining", unit: "e\u0301", want: 1},
		{name: "emoji", unit: "🙂", want: 2},
		{name: "cjk", unit: "界", want: 2},
		{name: "zero width space", unit: document.ZeroWidthSpace, want: 0},
		{name: "thin space", unit: document.ThinSpace, want: 0},
		{name: "object", unit: document.ObjectUnit, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := unitCells(tc.unit, 0); got != tc.want {
				t.Fatalf("width: got %d, want %d", got, tc.want)
			}
		})
	}
}
