package document

// Pos is a boundary point: a grapheme offset inside a text run, or a child
// index inside an element.
type Pos struct {
	Node   NodeID
	Offset int
}

// Range is a directional selection from Anchor to Focus.
type Range struct {
	Anchor Pos
	Focus  Pos
}

// Caret returns the collapsed range at p.
func Caret(p Pos) Range { return Range{Anchor: p, Focus: p} }

// Collapsed reports whether both endpoints are spelled identically. Use
// Tree.IsCollapsed to also match different spellings of one caret stop.
func (r Range) Collapsed() bool { return r.Anchor == r.Focus }

// SamePlace reports whether a and b name the same caret stop, such as the
// end of a text run and the element boundary right after it.
func (t *Tree) SamePlace(a, b Pos) bool {
	if a == b || t.ComparePos(a, b) == 0 {
		return true
	}
	la, ca, ok := t.Locate(a)
	if !ok {
		return false
	}
	lb, cb, ok := t.Locate(b)
	return ok && la.Node == lb.Node && ca == cb
}

// IsCollapsed reports whether r selects nothing.
func (t *Tree) IsCollapsed(r Range) bool { return t.SamePlace(r.Anchor, r.Focus) }

// path returns the child indexes leading from the root to id.
func (t *Tree) path(id NodeID) []int {
	var rev []int
	for id != t.root {
		i := t.IndexOf(id)
		if i < 0 {
			return nil
		}
		rev = append(rev, i)
		id = t.Parent(id)
	}
	out := make([]int, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}
	return out
}

// ComparePos orders two attached positions in document order. A position in
// an element sorts before any position inside its child at that index.
func (t *Tree) ComparePos(a, b Pos) int {
	if a.Node == b.Node {
		return cmpInt(a.Offset, b.Offset)
	}
	ka := append(t.path(a.Node), a.Offset)
	kb := append(t.path(b.Node), b.Offset)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := cmpInt(ka[i], kb[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(ka), len(kb))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Ordered returns r's endpoints in document order.
func (t *Tree) Ordered(r Range) (start, end Pos) {
	if t.ComparePos(r.Anchor, r.Focus) <= 0 {
		return r.Anchor, r.Focus
	}
	return r.Focus, r.Anchor
}

// ValidPos reports whether p lies inside the attached document and outside
// any embed.
func (t *Tree) ValidPos(p Pos) bool {
	if !t.Attached(p.Node) {
		return false
	}
	for id := p.Node; id != NoNode; id = t.Parent(id) {
		if t.Kind(id) == KindEmbed {
			return false
		}
	}
	if p.Node != t.root && !t.isContainer(p.Node) && !t.IsText(p.Node) {
		return false
	}
	return p.Offset >= 0 && p.Offset <= t.Len(p.Node)
}

// ValidRange reports whether both endpoints of r are valid.
func (t *Tree) ValidRange(r Range) bool {
	return t.ValidPos(r.Anchor) && t.ValidPos(r.Focus)
}

// Before returns the position immediately before id in its parent.
func (t *Tree) Before(id NodeID) Pos {
	return Pos{Node: t.Parent(id), Offset: t.IndexOf(id)}
}

// After returns the position immediately after id in its parent.
func (t *Tree) After(id NodeID) Pos {
	return Pos{Node: t.Parent(id), Offset: t.IndexOf(id) + 1}
}

// ContainerOf returns the element holding p: the text run's parent for
// positions inside text, p.Node otherwise.
func (t *Tree) ContainerOf(p Pos) NodeID {
	if t.IsText(p.Node) {
		return t.Parent(p.Node)
	}
	return p.Node
}
