package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/musaaj/Simaditor/document"
	graphemeutil "github.com/musaaj/Simaditor/internal/grapheme"
)

const tabWidth = 4

// unitCells returns the terminal width of one line unit drawn at visualCol.
// Placeholder characters take no room.
func unitCells(unit string, visualCol int) int {
	switch {
	case unit == "\t":
		return tabAdvance(visualCol)
	case unit == document.ObjectUnit, graphemeutil.IsInvisible(unit):
		return 0
	}
	w := runewidth.StringWidth(unit)
	if w == 0 {
		w = max(uniseg.StringWidth(unit), 0)
	}
	return w
}

func tabAdvance(visualCol int) int {
	return tabWidth - visualCol%tabWidth
}

// displayUnit returns what a text unit looks like on screen.
func displayUnit(unit string, visualCol int) string {
	switch {
	case unit == "\t":
		return strings.Repeat(" ", tabAdvance(visualCol))
	case graphemeutil.IsInvisible(unit):
		return ""
	}
	return unit
}
