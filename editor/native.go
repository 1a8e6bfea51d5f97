package editor

import (
	"strings"

	"github.com/musaaj/Simaditor/document"
)

// InsertText types s at the caret, replacing any selection. Newlines break
// the line as Enter does.
func (e *Engine) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return
	}
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
		for i, part := range strings.Split(s, "\n") {
			if i > 0 {
				at, err := e.breakLine(p)
				if err != nil {
					e.fail("insert text", err)
					return
				}
				p = at
			}
			if part == "" {
				continue
			}
			at, err := e.typeAt(p, part)
			if err != nil {
				e.fail("insert text", err)
				return
			}
			p = at
		}
		e.collapse(p)
		e.changed(ReasonInput)
	})
}

// typeAt inserts text at p. A line held open only by a placeholder <br>
// loses it.
func (e *Engine) typeAt(p document.Pos, s string) (document.Pos, error) {
	doc := e.doc
	line := doc.LineOf(doc.ContainerOf(p))
	if line != document.NoNode && !doc.HasMeaningfulContent(line) {
		for _, br := range e.breaksIn(line) {
			if p.Node == doc.Parent(br) && p.Offset > doc.IndexOf(br) {
				p.Offset--
			}
			_ = doc.Remove(br)
		}
	}
	return doc.InsertTextAt(p, s)
}

func (e *Engine) breaksIn(id document.NodeID) []document.NodeID {
	var out []document.NodeID
	e.doc.Walk(id, func(n document.NodeID) bool {
		if e.doc.IsLineBreak(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// DeleteBackward deletes the selection, or the grapheme or embed before the
// caret. At the start of a line the line is merged into the previous one.
func (e *Engine) DeleteBackward() { e.deleteUnit(false) }

// DeleteForward deletes the selection, or the grapheme or embed after the
// caret. At the end of a line the next line is merged into it.
func (e *Engine) DeleteForward() { e.deleteUnit(true) }

func (e *Engine) deleteUnit(forward bool) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		if !e.doc.IsCollapsed(r) {
			if at, ok := e.deleteSelection(r); ok {
				e.collapse(at)
			}
			return
		}
		doc := e.doc
		ln, col, ok := doc.Locate(r.Anchor)
		if !ok {
			return
		}
		lo, hi := col-1, col
		if forward {
			lo, hi = col, col+1
		}
		if lo >= 0 && hi < len(ln.Slots) {
			at, err := doc.DeleteRange(document.Range{Anchor: ln.Slots[lo], Focus: ln.Slots[hi]})
			if err != nil {
				e.fail("delete", err)
				return
			}
			e.tidy(ln.Node, at.Node)
			e.collapse(e.clamp(at, ln.Node))
			e.changed(ReasonDelete)
			return
		}

		lines := doc.Lines()
		i := indexOfLine(lines, ln.Node)
		target, line := document.NoNode, document.NoNode
		switch {
		case !forward && i > 0:
			target, line = lines[i-1], ln.Node
		case forward && i >= 0 && i+1 < len(lines):
			target, line = ln.Node, lines[i+1]
		default:
			return
		}
		if !doc.IsBlock(target) || !doc.IsBlock(line) || doc.Contains(line, target) {
			if !forward {
				e.collapse(doc.EndOf(target))
			}
			return
		}
		at, err := e.mergeInto(target, line)
		if err != nil {
			e.fail("delete", err)
			return
		}
		e.collapse(at)
		e.changed(ReasonDelete)
	})
}

func indexOfLine(lines []document.NodeID, id document.NodeID) int {
	for i, l := range lines {
		if l == id {
			return i
		}
	}
	return -1
}

// Input restores the document invariant after the host changed the tree
// directly: inline content at the top level is wrapped into a block and an
// empty document gets a placeholder block. Calling it twice changes nothing
// the second time.
func (e *Engine) Input() {
	e.do(func() {
		if res := e.doc.Normalize(e.cfg.BlockTag); res.Changed {
			e.relink(e.doc.Root())
			e.changed(ReasonInput)
		}
	})
}

// Focus runs the same pass as Input. When leading inline content had to be
// wrapped, the caret moves just past the first character of the new block.
func (e *Engine) Focus() {
	e.do(func() {
		res := e.doc.Normalize(e.cfg.BlockTag)
		if !res.Changed {
			return
		}
		e.relink(e.doc.Root())
		if res.Wrapped != document.NoNode {
			slots := e.doc.Line(res.Wrapped).Slots
			e.collapse(slots[min(1, len(slots)-1)])
		} else if _, ok := e.capture(); !ok {
			e.setRangeInto(e.doc.Root())
		}
		e.changed(ReasonInput)
	})
}

// Paste grafts imported markup at the caret, replacing any selection.
// Inline-only markup joins the current line; markup holding blocks splits
// the current block and lands between its halves.
func (e *Engine) Paste(markup string) {
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
		frag := e.codec.Fragment(markup)
		if frag.ChildCount(frag.Root()) == 0 {
			e.collapse(p)
			return
		}
		hasBlocks := false
		for _, c := range frag.Children(frag.Root()) {
			hasBlocks = hasBlocks || frag.IsBlock(c)
		}

		var at document.Pos
		var err error
		if hasBlocks {
			at, err = e.pasteBlocks(frag, p)
		} else {
			at, err = e.pasteInline(frag, p)
		}
		if err != nil {
			e.fail("paste", err)
			return
		}
		e.collapse(at)
		e.changed(ReasonPaste)
	})
}

func (e *Engine) pasteInline(frag *document.Tree, p document.Pos) (document.Pos, error) {
	doc := e.doc
	holder := doc.NewElement("span")
	defer func() { _ = doc.Remove(holder) }()
	if err := doc.CopyChildren(frag, frag.Root(), holder); err != nil {
		return p, err
	}
	for _, c := range doc.Children(holder) {
		after, err := doc.InsertAt(p, c)
		if err != nil {
			return p, err
		}
		e.relink(c)
		p = after
	}
	return p, nil
}

func (e *Engine) pasteBlocks(frag *document.Tree, p document.Pos) (document.Pos, error) {
	doc := e.doc
	frag.Normalize(e.cfg.BlockTag)
	holder := doc.NewElement("div")
	defer func() { _ = doc.Remove(holder) }()
	if err := doc.CopyChildren(frag, frag.Root(), holder); err != nil {
		return p, err
	}
	blocks := doc.Children(holder)

	container := doc.ContainerOf(p)
	block := doc.BlockOf(container)
	if block == document.NoNode || doc.LineOf(container) != block {
		for _, b := range blocks {
			after, err := doc.InsertAt(p, b)
			if err != nil {
				return p, err
			}
			p = after
		}
	} else {
		second, err := doc.SplitBlockAt(block, p)
		if err != nil {
			return p, err
		}
		prev := block
		for _, b := range blocks {
			if err := doc.InsertAfter(prev, b); err != nil {
				return p, err
			}
			prev = b
		}
		for _, half := range []document.NodeID{block, second} {
			doc.PruneEmpty(half, document.NoNode)
			if !doc.HasMeaningfulContent(half) {
				_ = doc.Remove(half)
			}
		}
	}
	for _, b := range blocks {
		e.tidyBlock(b)
		e.relink(b)
	}
	return doc.EndOf(blocks[len(blocks)-1]), nil
}

// tidyBlock tidies every line inside the grafted block b.
func (e *Engine) tidyBlock(b document.NodeID) {
	found := false
	for _, l := range e.doc.Lines() {
		if e.doc.Contains(b, l) {
			e.tidy(l, document.NoNode)
			found = true
		}
	}
	if !found {
		e.tidy(b, document.NoNode)
	}
}

// Copy writes the plain text of the selection to the clipboard.
func (e *Engine) Copy() {
	r, ok := e.capture()
	if !ok || e.doc.IsCollapsed(r) || e.cfg.Clipboard == nil {
		return
	}
	if s := e.doc.TextIn(r); s != "" {
		if err := e.cfg.Clipboard.WriteText(s); err != nil {
			e.log.Warn("editor: clipboard write failed", "err", err)
		}
	}
}

// Cut copies the selection and deletes it.
func (e *Engine) Cut() {
	r, ok := e.capture()
	if !ok || e.doc.IsCollapsed(r) {
		return
	}
	e.Copy()
	e.do(func() {
		if at, ok := e.deleteSelection(r); ok {
			e.collapse(at)
		}
	})
}

// PasteClipboard types the clipboard's plain text at the caret.
func (e *Engine) PasteClipboard() {
	if e.cfg.Clipboard == nil {
		return
	}
	s, err := e.cfg.Clipboard.ReadText()
	if err != nil {
		e.log.Warn("editor: clipboard read failed", "err", err)
		return
	}
	e.InsertText(s)
}
