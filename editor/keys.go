package editor

import "github.com/musaaj/Simaditor/document"

// Enter handles the Enter key. The engine always owns paragraph creation, so
// the host's default action is always prevented.
//
// A selection is deleted first. At the start of an empty first line the key
// is swallowed. Inside a block the block is split at the caret and the caret
// moves to the start of the new second half. Outside any block, or directly
// inside a table cell, a fresh empty block is inserted at the caret.
func (e *Engine) Enter() (prevented bool) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		p := r.Anchor
		if !e.doc.IsCollapsed(r) {
			if p, ok = e.deleteSelection(r); !ok {
				return
			}
		}
		if e.atEmptyStart(p) {
			e.collapse(p)
			return
		}
		at, err := e.breakLine(p)
		if err != nil {
			e.fail("enter", err)
			return
		}
		e.collapse(at)
		e.changed(ReasonEnter)
	})
	return true
}

// atEmptyStart reports whether p sits at the start of the document's first
// line and that line has no meaningful content.
func (e *Engine) atEmptyStart(p document.Pos) bool {
	lines := e.doc.Lines()
	if len(lines) == 0 {
		return false
	}
	line := e.doc.LineOf(e.doc.ContainerOf(p))
	return line == lines[0] && e.doc.AtLineStart(p) && !e.doc.HasMeaningfulContent(line)
}

// breakLine starts a new line at p and returns the caret position in it.
func (e *Engine) breakLine(p document.Pos) (document.Pos, error) {
	doc := e.doc
	container := doc.ContainerOf(p)
	block := doc.BlockOf(container)
	if block == document.NoNode || doc.LineOf(container) != block {
		nb := e.placeholderBlock()
		if _, err := doc.InsertAt(p, nb); err != nil {
			return p, err
		}
		return document.Pos{Node: nb}, nil
	}

	second, err := doc.SplitBlockAt(block, p)
	if err != nil {
		return p, err
	}
	e.tidy(block, document.NoNode)
	e.tidy(second, document.NoNode)
	e.relink(second)
	return doc.StartOf(second), nil
}

// Backspace handles the Backspace key for a collapsed caret at the start of
// a line. It reports whether the host's default action must be prevented.
//
// At the start of the first line the key is swallowed. At the start of a
// block that follows another block the two are merged and the caret lands
// at the old end of the previous block. Anything else is left to the native
// single-unit deletion (see DeleteBackward).
func (e *Engine) Backspace() (prevented bool) {
	e.do(func() {
		r, ok := e.capture()
		if !ok || !e.doc.IsCollapsed(r) {
			return
		}
		doc := e.doc
		p := r.Anchor
		line := doc.LineOf(doc.ContainerOf(p))
		if line == document.NoNode || !doc.AtLineStart(p) {
			return
		}
		if lines := doc.Lines(); line == lines[0] {
			prevented = true
			return
		}

		prev := doc.PrevSibling(line)
		if !doc.IsBlock(line) || !doc.IsBlock(prev) {
			return
		}
		target := doc.LineOf(doc.ContainerOf(doc.EndOf(prev)))
		if !doc.IsBlock(target) {
			return
		}
		prevented = true
		at, err := e.mergeInto(target, line)
		if err != nil {
			e.fail("backspace", err)
			return
		}
		e.collapse(at)
		e.changed(ReasonBackspace)
	})
	return prevented
}
