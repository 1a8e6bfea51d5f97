package document

import "github.com/google/uuid"

// SplitBlockAt splits block at p into two siblings and returns the new second
// block. Content after p moves into it; wrappers and elements that straddle p
// are cloned so each half keeps its formatting.
func (t *Tree) SplitBlockAt(block NodeID, p Pos) (NodeID, error) {
	const op = "split block"
	if t.get(block) == nil {
		return NoNode, wrap(op, block, ErrUnknownNode)
	}
	if !t.IsBlock(block) {
		return NoNode, wrap(op, block, ErrInvalidNodeKind)
	}
	if t.Parent(block) == NoNode {
		return NoNode, wrap(op, block, ErrInvalidNodeKind)
	}
	if !t.ValidPos(p) || !t.Contains(block, p.Node) {
		return NoNode, wrap(op, block, ErrOutOfRange)
	}

	cur, idx, err := t.elementPos(p)
	if err != nil {
		return NoNode, wrap(op, block, err)
	}
	for {
		right := t.shallowClone(cur)
		for _, c := range t.Children(cur)[idx:] {
			if err := t.AppendChild(right, c); err != nil {
				return NoNode, wrap(op, block, err)
			}
		}
		if err := t.InsertAfter(cur, right); err != nil {
			return NoNode, wrap(op, block, err)
		}
		if cur == block {
			return right, nil
		}
		idx = t.IndexOf(cur) + 1
		cur = t.Parent(cur)
	}
}

// elementPos converts p into an (element, child index) boundary, splitting a
// text run when p falls inside one.
func (t *Tree) elementPos(p Pos) (NodeID, int, error) {
	if !t.IsText(p.Node) {
		return p.Node, p.Offset, nil
	}
	parent, i := t.Parent(p.Node), t.IndexOf(p.Node)
	switch p.Offset {
	case 0:
		return parent, i, nil
	case t.Len(p.Node):
		return parent, i + 1, nil
	}
	if _, err := t.SplitText(p.Node, p.Offset); err != nil {
		return NoNode, 0, err
	}
	return parent, i + 1, nil
}

func (t *Tree) shallowClone(id NodeID) NodeID {
	n := t.get(id)
	return t.alloc(node{kind: n.kind, tag: n.tag, text: n.text, attrs: append([]Attr(nil), n.attrs...)})
}

// CopyChildren deep-clones every child of source (a node of from, which may
// be t itself) and appends the clones to dest in order. source is left
// untouched. Cloned embeds receive fresh identities and no listeners.
func (t *Tree) CopyChildren(from *Tree, source, dest NodeID) error {
	const op = "copy children"
	if from == nil {
		from = t
	}
	if from.get(source) == nil {
		return wrap(op, source, ErrUnknownNode)
	}
	if t.get(dest) == nil {
		return wrap(op, dest, ErrUnknownNode)
	}
	if !from.isContainer(source) || !t.isContainer(dest) {
		if !from.isContainer(source) {
			return wrap(op, source, ErrInvalidNodeKind)
		}
		return wrap(op, dest, ErrInvalidNodeKind)
	}
	kids := from.Children(source)
	clones := make([]NodeID, 0, len(kids))
	for _, c := range kids {
		clones = append(clones, t.cloneFrom(from, c))
	}
	for _, c := range clones {
		if err := t.AppendChild(dest, c); err != nil {
			return wrap(op, dest, err)
		}
	}
	return nil
}

// Clone deep-copies id into a detached subtree of t.
func (t *Tree) Clone(id NodeID) (NodeID, error) {
	if t.get(id) == nil {
		return NoNode, wrap("clone", id, ErrUnknownNode)
	}
	return t.cloneFrom(t, id), nil
}

func (t *Tree) cloneFrom(from *Tree, id NodeID) NodeID {
	src := from.get(id)
	n := node{kind: src.kind, tag: src.tag, text: src.text, attrs: append([]Attr(nil), src.attrs...)}
	if src.embed != nil {
		n.embed = &embedState{kind: src.embed.kind, id: uuid.NewString()}
	}
	if n.kind == KindDocument {
		n.kind, n.tag = KindElement, "div"
	}
	out := t.alloc(n)
	for _, c := range from.Children(id) {
		cc := t.cloneFrom(from, c)
		t.nodes[cc].parent = out
		t.nodes[out].children = append(t.nodes[out].children, cc)
	}
	return out
}
