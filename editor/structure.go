package editor

import "github.com/musaaj/Simaditor/document"

// placeholderBlock returns a detached empty block propped up by a <br>.
func (e *Engine) placeholderBlock() document.NodeID {
	b := e.doc.NewElement(e.cfg.BlockTag)
	_ = e.doc.AppendChild(b, e.doc.NewElement("br"))
	return b
}

// tidy drops empty runs and wrappers from a line (except keep) and gives it a
// placeholder when nothing is left.
func (e *Engine) tidy(line, keep document.NodeID) {
	if line == document.NoNode || !e.doc.Attached(line) {
		return
	}
	e.doc.PruneEmpty(line, keep)
	e.doc.EnsurePlaceholder(line)
}

// pruneUp removes id and its ancestors while they are empty blocks.
func (e *Engine) pruneUp(id document.NodeID) {
	root := e.doc.Root()
	for id != document.NoNode && id != root && e.doc.IsBlock(id) && e.doc.ChildCount(id) == 0 {
		parent := e.doc.Parent(id)
		if err := e.doc.Remove(id); err != nil {
			return
		}
		id = parent
	}
}

// clamp returns p when it is still valid, else the nearest stop in line.
func (e *Engine) clamp(p document.Pos, line document.NodeID) document.Pos {
	if e.doc.ValidPos(p) {
		return p
	}
	if e.doc.Attached(line) {
		return e.doc.EndOf(line)
	}
	return e.doc.StartOf(e.doc.Root())
}

// deleteSelection removes the selected content. When the selection spans two
// blocks the tail of the last one is merged into the first.
func (e *Engine) deleteSelection(r document.Range) (document.Pos, bool) {
	doc := e.doc
	start, end := doc.Ordered(r)
	first := doc.LineOf(doc.ContainerOf(start))
	last := doc.LineOf(doc.ContainerOf(end))

	at, err := doc.DeleteRange(r)
	if err != nil {
		e.fail("delete selection", err)
		return start, false
	}
	if first != last && doc.IsBlock(first) && doc.IsBlock(last) &&
		doc.Attached(first) && doc.Attached(last) &&
		!doc.Contains(first, last) && !doc.Contains(last, first) {
		merged, err := e.mergeInto(first, last)
		if err != nil {
			e.fail("delete selection", err)
		} else {
			at = merged
		}
	}
	line := doc.LineOf(doc.ContainerOf(at))
	e.tidy(line, at.Node)
	at = e.clamp(at, line)
	e.changed(ReasonDelete)
	return at, true
}

// mergeInto appends the content of line to target, removes line and returns
// the caret position at target's old end. Node identity is preserved, so
// embeds keep their listeners and fire no removed event.
func (e *Engine) mergeInto(target, line document.NodeID) (document.Pos, error) {
	doc := e.doc
	dropBreaks := func(id document.NodeID, all bool) {
		if all {
			for _, c := range doc.Children(id) {
				if doc.IsLineBreak(c) {
					_ = doc.Remove(c)
				}
			}
			return
		}
		if last := doc.LastChild(id); doc.IsLineBreak(last) {
			_ = doc.Remove(last)
		}
	}
	dropBreaks(target, !doc.HasMeaningfulContent(target))
	dropBreaks(line, !doc.HasMeaningfulContent(line))

	at := doc.EndOf(target)
	seam := doc.LastChild(target)
	parent := doc.Parent(line)
	if err := doc.MoveChildren(line, target); err != nil {
		return at, err
	}
	if err := doc.Remove(line); err != nil {
		return at, err
	}
	e.pruneUp(parent)
	if doc.IsText(seam) {
		doc.JoinText(seam)
	}
	e.tidy(target, at.Node)
	e.relink(target)
	return e.clamp(at, target), nil
}

// boundary turns p into a position between children, splitting a text run
// when p falls inside one. It returns the parent and the child that follows
// the boundary (NoNode at the end).
func (e *Engine) boundary(p document.Pos) (document.NodeID, document.NodeID, error) {
	doc := e.doc
	if !doc.IsText(p.Node) {
		return p.Node, doc.Child(p.Node, p.Offset), nil
	}
	parent := doc.Parent(p.Node)
	switch p.Offset {
	case 0:
		return parent, p.Node, nil
	case doc.Len(p.Node):
		return parent, doc.NextSibling(p.Node), nil
	}
	right, err := doc.SplitText(p.Node, p.Offset)
	return parent, right, err
}

// indexOf returns the child index a boundary's follower stands at.
func (e *Engine) indexOf(parent, next document.NodeID) int {
	if next == document.NoNode {
		return e.doc.ChildCount(parent)
	}
	return e.doc.IndexOf(next)
}
