package editor

// ScrollPolicy decides whether the viewport may scroll away from the caret.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll the document while the
	// caret stays put.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCursorOnly ignores the wheel; only caret movement scrolls.
	ScrollFollowCursorOnly
)

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the rendered row shown at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// CursorRow is the rendered row holding the caret.
	CursorRow int
	// TotalRows is the number of rendered rows.
	TotalRows int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
		CursorRow:   m.cursorRow,
		TotalRows:   len(m.hits),
	}
}

func (m Model) visibleRowCount() int {
	return max(m.viewport.Height-m.viewport.Style.GetVerticalFrameSize(), 0)
}
