package document

import (
	"strings"

	"github.com/musaaj/Simaditor/internal/grapheme"
)

// InsertAt inserts the detached node child at p, splitting a text run when p
// falls inside one. It returns the position right after child.
func (t *Tree) InsertAt(p Pos, child NodeID) (Pos, error) {
	const op = "insert at"
	if !t.ValidPos(p) {
		return p, wrap(op, p.Node, ErrOutOfRange)
	}
	parent, idx, err := t.elementPos(p)
	if err != nil {
		return p, wrap(op, p.Node, err)
	}
	if err := t.InsertChild(parent, idx, child); err != nil {
		return p, wrap(op, parent, err)
	}
	return t.After(child), nil
}

// InsertTextAt inserts s at p and returns the position after the inserted
// text. Text next to an existing run is merged into it.
func (t *Tree) InsertTextAt(p Pos, s string) (Pos, error) {
	const op = "insert text"
	if !t.ValidPos(p) {
		return p, wrap(op, p.Node, ErrOutOfRange)
	}
	if s == "" {
		return p, nil
	}
	if t.IsText(p.Node) {
		if err := t.ReplaceText(p.Node, p.Offset, p.Offset, s); err != nil {
			return p, err
		}
		return Pos{Node: p.Node, Offset: p.Offset + grapheme.Count(s)}, nil
	}
	if prev := t.Child(p.Node, p.Offset-1); t.IsText(prev) {
		at := t.Len(prev)
		_ = t.ReplaceText(prev, at, at, s)
		return Pos{Node: prev, Offset: at + grapheme.Count(s)}, nil
	}
	if next := t.Child(p.Node, p.Offset); t.IsText(next) {
		_ = t.ReplaceText(next, 0, 0, s)
		return Pos{Node: next, Offset: grapheme.Count(s)}, nil
	}
	run := t.NewText(s)
	if err := t.InsertChild(p.Node, p.Offset, run); err != nil {
		return p, wrap(op, p.Node, err)
	}
	return Pos{Node: run, Offset: grapheme.Count(s)}, nil
}

// CommonAncestor returns the deepest node containing both a and b.
func (t *Tree) CommonAncestor(a, b NodeID) NodeID {
	for n := a; n != NoNode; n = t.Parent(n) {
		if t.Contains(n, b) {
			return n
		}
	}
	return NoNode
}

// DeleteRange removes the content between r's endpoints. Fully contained
// nodes are removed (firing embed removed events); partially contained text
// runs are truncated and partially contained elements keep their remaining
// children. The start container is never removed, so the returned start
// position stays valid.
func (t *Tree) DeleteRange(r Range) (Pos, error) {
	const op = "delete range"
	if !t.ValidRange(r) {
		return r.Anchor, wrap(op, r.Anchor.Node, ErrOutOfRange)
	}
	start, end := t.Ordered(r)
	if start == end {
		return start, nil
	}
	sc, so, ec, eo := start.Node, start.Offset, end.Node, end.Offset

	if sc == ec {
		if t.IsText(sc) {
			return start, t.ReplaceText(sc, so, eo, "")
		}
		return start, t.removeChildren(sc, so, eo)
	}

	ca := t.CommonAncestor(sc, ec)
	startTop, endTop := NoNode, NoNode

	if sc != ca {
		if t.IsText(sc) {
			if err := t.ReplaceText(sc, so, t.Len(sc), ""); err != nil {
				return start, err
			}
		} else if err := t.removeChildren(sc, so, t.Len(sc)); err != nil {
			return start, err
		}
		n := sc
		for t.Parent(n) != ca {
			p := t.Parent(n)
			if err := t.removeChildren(p, t.IndexOf(n)+1, t.Len(p)); err != nil {
				return start, err
			}
			n = p
		}
		startTop = n
	}
	if ec != ca {
		if t.IsText(ec) {
			if err := t.ReplaceText(ec, 0, eo, ""); err != nil {
				return start, err
			}
		} else if err := t.removeChildren(ec, 0, eo); err != nil {
			return start, err
		}
		n := ec
		for t.Parent(n) != ca {
			p := t.Parent(n)
			if err := t.removeChildren(p, 0, t.IndexOf(n)); err != nil {
				return start, err
			}
			n = p
		}
		endTop = n
	}

	lo := so
	if startTop != NoNode {
		lo = t.IndexOf(startTop) + 1
	}
	hi := eo
	if endTop != NoNode {
		hi = t.IndexOf(endTop)
	}
	if err := t.removeChildren(ca, lo, hi); err != nil {
		return start, err
	}
	if sc == ca {
		return Pos{Node: sc, Offset: so}, nil
	}
	return start, nil
}

func (t *Tree) removeChildren(parent NodeID, lo, hi int) error {
	kids := t.Children(parent)
	lo = max(lo, 0)
	hi = min(hi, len(kids))
	for _, c := range kids[min(lo, hi):hi] {
		if err := t.Remove(c); err != nil {
			return err
		}
	}
	return nil
}

// TextIn returns the plain text covered by r. Block boundaries become
// newlines, line breaks become newlines, and math embeds contribute their
// expression.
func (t *Tree) TextIn(r Range) string {
	if !t.ValidRange(r) {
		return ""
	}
	start, end := t.Ordered(r)
	var sb strings.Builder
	lastBlock := NoNode
	t.Walk(t.root, func(id NodeID) bool {
		switch t.Kind(id) {
		case KindText:
			n := t.Len(id)
			lo, hi := 0, n
			if t.ComparePos(Pos{Node: id, Offset: n}, start) <= 0 && id != start.Node {
				return false
			}
			if t.ComparePos(Pos{Node: id, Offset: 0}, end) >= 0 && id != end.Node {
				return false
			}
			if id == start.Node {
				lo = start.Offset
			}
			if id == end.Node {
				hi = end.Offset
			}
			if lo >= hi {
				return false
			}
			t.noteBlock(&sb, id, &lastBlock)
			sb.WriteString(grapheme.Slice(t.Text(id), lo, hi))
		case KindEmbed, KindElement:
			if t.Kind(id) == KindElement && !t.IsLineBreak(id) {
				return true
			}
			if t.ComparePos(t.Before(id), start) < 0 || t.ComparePos(t.After(id), end) > 0 {
				return false
			}
			t.noteBlock(&sb, id, &lastBlock)
			if t.IsLineBreak(id) {
				if t.NextSibling(id) != NoNode {
					sb.WriteByte('\n')
				}
			} else if v, ok := t.Attr(id, "value"); ok {
				sb.WriteString(v)
			}
			return false
		}
		return true
	})
	return sb.String()
}

func (t *Tree) noteBlock(sb *strings.Builder, id NodeID, last *NodeID) {
	b := t.LineOf(id)
	if *last != NoNode && b != *last {
		sb.WriteByte('\n')
	}
	*last = b
}
