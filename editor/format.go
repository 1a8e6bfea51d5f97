package editor

import (
	"strings"

	"github.com/musaaj/Simaditor/document"
)

// maxFormatDepth bounds how far formatInline looks for an enclosing wrapper.
const maxFormatDepth = 3

func (e *Engine) Bold()      { e.formatInline(document.Bold) }
func (e *Engine) Italic()    { e.formatInline(document.Italic) }
func (e *Engine) Underline() { e.formatInline(document.Underline) }
func (e *Engine) Super()     { e.formatInline(document.Superscript) }
func (e *Engine) Sub()       { e.formatInline(document.Subscript) }

// formatLevel returns the depth (1 to maxFormatDepth) of the nearest wrapper
// of format f above the start container, or 0.
func (e *Engine) formatLevel(p document.Pos, f document.Format) (int, document.NodeID) {
	doc := e.doc
	n := p.Node
	if doc.IsText(n) {
		n = doc.Parent(n)
	}
	for level := 1; level <= maxFormatDepth && n != document.NoNode && n != doc.Root(); level++ {
		if got, ok := doc.FormatOfNode(n); ok && got == f {
			return level, n
		}
		n = doc.Parent(n)
	}
	return 0, document.NoNode
}

// formatInline toggles f. Without an enclosing wrapper of f the selection
// (or a zero-width placeholder) is wrapped; otherwise the wrapper is
// dissolved. Exactly one of the two happens per call.
func (e *Engine) formatInline(f document.Format) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		start, _ := e.doc.Ordered(r)
		level, w := e.formatLevel(start, f)
		if level == 0 {
			if err := e.wrap(r, f); err != nil {
				e.fail("format "+f.String(), err)
				return
			}
		} else if err := e.unwrap(w); err != nil {
			e.fail("format "+f.String(), err)
			return
		}
		e.changed(ReasonFormat)
	})
}

// wrap puts the selection into a new wrapper of format f and selects the
// wrapper's content.
func (e *Engine) wrap(r document.Range, f document.Format) error {
	doc := e.doc
	w := doc.NewWrapper(f)

	if e.doc.IsCollapsed(r) {
		z := doc.NewText(document.ZeroWidthSpace)
		_ = doc.AppendChild(w, z)
		if _, err := doc.InsertAt(r.Anchor, w); err != nil {
			return err
		}
		e.sel, e.hasSel = document.Range{Anchor: document.Pos{Node: z}, Focus: document.Pos{Node: z, Offset: 1}}, true
		return nil
	}

	start, end := doc.Ordered(r)
	endParent, endNext, err := e.boundary(end)
	if err != nil {
		return err
	}
	startParent, startNext, err := e.boundary(start)
	if err != nil {
		return err
	}

	if startParent == endParent {
		lo := e.indexOf(startParent, startNext)
		hi := e.indexOf(endParent, endNext)
		kids := doc.Children(startParent)[lo:hi]
		if err := doc.InsertChild(startParent, lo, w); err != nil {
			return err
		}
		for _, c := range kids {
			if err := doc.AppendChild(w, c); err != nil {
				return err
			}
		}
	} else {
		// The selection crosses element boundaries: wrap its text.
		text := doc.TextIn(document.Range{Anchor: document.Pos{Node: startParent, Offset: e.indexOf(startParent, startNext)},
			Focus: document.Pos{Node: endParent, Offset: e.indexOf(endParent, endNext)}})
		at, ok := e.deleteSelection(document.Range{
			Anchor: document.Pos{Node: startParent, Offset: e.indexOf(startParent, startNext)},
			Focus:  document.Pos{Node: endParent, Offset: e.indexOf(endParent, endNext)},
		})
		if !ok {
			return nil
		}
		if text == "" {
			text = document.ZeroWidthSpace
		}
		_ = doc.AppendChild(w, doc.NewText(strings.ReplaceAll(text, "\n", " ")))
		if _, err := doc.InsertAt(at, w); err != nil {
			return err
		}
	}
	e.sel = document.Range{Anchor: document.Pos{Node: w}, Focus: document.Pos{Node: w, Offset: doc.ChildCount(w)}}
	e.hasSel = true
	return nil
}

// unwrap dissolves wrapper w into its parent, keeping the selection on the
// same content and merging text runs that end up adjacent.
func (e *Engine) unwrap(w document.NodeID) error {
	doc := e.doc
	parent, base, n := doc.Parent(w), doc.IndexOf(w), doc.ChildCount(w)
	first, last := doc.FirstChild(w), doc.LastChild(w)

	shift := func(p *document.Pos) {
		if p.Node == parent && p.Offset > base {
			p.Offset += n - 1
		}
	}
	shift(&e.sel.Anchor)
	shift(&e.sel.Focus)
	e.remap(w, parent, base)
	if err := doc.Unwrap(w); err != nil {
		return err
	}
	if doc.IsText(last) {
		e.joinText(last)
	}
	if prev := doc.PrevSibling(first); doc.IsText(first) && doc.IsText(prev) {
		e.joinText(prev)
	}
	return nil
}

// joinText merges the text run after left into left, keeping selection
// endpoints on the same characters.
func (e *Engine) joinText(left document.NodeID) {
	doc := e.doc
	right := doc.NextSibling(left)
	if !doc.IsText(left) || !doc.IsText(right) {
		return
	}
	parent, idx, n := doc.Parent(left), doc.IndexOf(right), doc.Len(left)
	fix := func(p *document.Pos) {
		switch {
		case p.Node == right:
			*p = document.Pos{Node: left, Offset: n + p.Offset}
		case p.Node == parent && p.Offset == idx:
			*p = document.Pos{Node: left, Offset: n}
		case p.Node == parent && p.Offset > idx:
			p.Offset--
		}
	}
	fix(&e.sel.Anchor)
	fix(&e.sel.Focus)
	doc.JoinText(left)
}

// FormatBlock changes the tag of the block holding the selection start. tag
// must lay out as a plain block (p, div, h1-h6, blockquote, pre, ul, ol).
func (e *Engine) FormatBlock(tag string) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		defer e.changed(ReasonBlock)

		tag = strings.ToLower(strings.TrimSpace(tag))
		if !document.HasBlockLayout(tag) {
			e.skip("format block", document.ErrInvalidNodeKind.Error()+": "+tag)
			return
		}
		start, _ := e.doc.Ordered(r)
		block := e.layoutBlock(start)
		if block == document.NoNode {
			e.skip("format block", "selection is not inside a plain block")
			return
		}
		if e.doc.Tag(block) == tag {
			return
		}
		nb := e.doc.NewElement(tag)
		if err := e.doc.InsertBefore(block, nb); err != nil {
			e.fail("format block", err)
			return
		}
		if err := e.doc.MoveChildren(block, nb); err != nil {
			e.fail("format block", err)
			return
		}
		e.remap(block, nb, 0)
		if err := e.doc.Remove(block); err != nil {
			e.fail("format block", err)
		}
	})
}

var alignments = map[string]bool{
	"left": true, "right": true, "center": true, "justify": true,
	"start": true, "end": true,
}

// AlignText sets text-align on the blocks holding both selection ends.
func (e *Engine) AlignText(value string) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		defer e.changed(ReasonAlign)

		value = strings.ToLower(strings.TrimSpace(value))
		if !alignments[value] {
			e.skip("align text", "unknown alignment "+value)
			return
		}
		start, end := e.doc.Ordered(r)
		for _, p := range []document.Pos{start, end} {
			block := e.layoutBlock(p)
			if block == document.NoNode {
				e.skip("align text", "selection is not inside a plain block")
				continue
			}
			if err := e.doc.SetStyle(block, "text-align", value); err != nil {
				e.fail("align text", err)
			}
		}
	})
}

// layoutBlock returns the nearest block above p when it lays out as a plain
// block.
func (e *Engine) layoutBlock(p document.Pos) document.NodeID {
	block := e.doc.BlockOf(e.doc.ContainerOf(p))
	if block == document.NoNode || !document.HasBlockLayout(e.doc.Tag(block)) {
		return document.NoNode
	}
	return block
}
