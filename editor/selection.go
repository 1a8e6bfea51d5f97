package editor

import "github.com/musaaj/Simaditor/document"

// capture returns the current selection when both endpoints lie in the
// attached document outside any embed.
func (e *Engine) capture() (document.Range, bool) {
	if !e.hasSel || !e.doc.ValidRange(e.sel) {
		return document.Range{}, false
	}
	return e.sel, true
}

// SetSelection replaces the selection. An invalid range clears it and is
// reported as false.
func (e *Engine) SetSelection(r document.Range) bool {
	if !e.doc.ValidRange(r) {
		e.hasSel = false
		return false
	}
	e.sel, e.hasSel = r, true
	return true
}

// Selection returns the current selection, if any.
func (e *Engine) Selection() (document.Range, bool) { return e.capture() }

// ClearSelection drops the selection; operations become no-ops until a new
// one is set.
func (e *Engine) ClearSelection() { e.hasSel = false }

func (e *Engine) collapse(p document.Pos) {
	e.sel, e.hasSel = document.Caret(p), true
}

// setRangeInto collapses the selection at the first caret stop inside id.
func (e *Engine) setRangeInto(id document.NodeID) {
	e.collapse(e.doc.StartOf(id))
}

// Move moves the caret, or the selection focus when extend is set. Moving
// left or right without extend collapses a selection to its edge.
func (e *Engine) Move(m document.Move, extend bool) {
	r, ok := e.capture()
	if !ok {
		e.setRangeInto(e.doc.Root())
		return
	}
	if !extend && !e.doc.IsCollapsed(r) && m.Unit == document.MoveGrapheme {
		start, end := e.doc.Ordered(r)
		switch m.Dir {
		case document.DirLeft:
			e.collapse(start)
			return
		case document.DirRight:
			e.collapse(end)
			return
		}
	}
	focus := e.doc.MovePos(r.Focus, m)
	if extend {
		e.sel.Focus = focus
		return
	}
	e.collapse(focus)
}

// SelectAll selects from the first to the last caret stop.
func (e *Engine) SelectAll() {
	root := e.doc.Root()
	e.sel = document.Range{Anchor: e.doc.StartOf(root), Focus: e.doc.EndOf(root)}
	e.hasSel = true
}

// remap rewrites selection endpoints that point into old so they address the
// same boundary after old's children moved under parent starting at base.
func (e *Engine) remap(old, parent document.NodeID, base int) {
	fix := func(p *document.Pos) {
		if p.Node == old {
			*p = document.Pos{Node: parent, Offset: base + p.Offset}
		}
	}
	fix(&e.sel.Anchor)
	fix(&e.sel.Focus)
}
