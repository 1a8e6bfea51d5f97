package document

import (
	"strings"

	"github.com/musaaj/Simaditor/internal/grapheme"
)

func graphemeCount(s string) int { return grapheme.Count(s) }

// InsertChild inserts child into parent at index. A child that already has a
// parent is moved.
func (t *Tree) InsertChild(parent NodeID, index int, child NodeID) error {
	const op = "insert"
	p, c := t.get(parent), t.get(child)
	if p == nil {
		return wrap(op, parent, ErrUnknownNode)
	}
	if c == nil {
		return wrap(op, child, ErrUnknownNode)
	}
	if !t.isContainer(parent) || c.kind == KindDocument {
		return wrap(op, parent, ErrInvalidNodeKind)
	}
	if t.Contains(child, parent) {
		return wrap(op, child, ErrCycle)
	}
	if index < 0 || index > len(p.children) {
		return wrap(op, parent, ErrOutOfRange)
	}
	if c.parent != NoNode {
		old := t.IndexOf(child)
		if c.parent == parent && old < index {
			index--
		}
		t.detach(child)
	}
	p = t.get(parent)
	p.children = append(p.children, NoNode)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = child
	t.nodes[child].parent = parent
	return nil
}

// AppendChild moves child to the end of parent's children.
func (t *Tree) AppendChild(parent, child NodeID) error {
	return t.InsertChild(parent, t.ChildCount(parent), child)
}

// InsertBefore places child immediately before ref.
func (t *Tree) InsertBefore(ref, child NodeID) error {
	i := t.IndexOf(ref)
	if i < 0 {
		return wrap("insert before", ref, ErrUnknownNode)
	}
	return t.InsertChild(t.Parent(ref), i, child)
}

// InsertAfter places child immediately after ref.
func (t *Tree) InsertAfter(ref, child NodeID) error {
	i := t.IndexOf(ref)
	if i < 0 {
		return wrap("insert after", ref, ErrUnknownNode)
	}
	return t.InsertChild(t.Parent(ref), i+1, child)
}

func (t *Tree) detach(id NodeID) {
	n := t.get(id)
	if n == nil || n.parent == NoNode {
		return
	}
	p := t.get(n.parent)
	if p != nil {
		for i, c := range p.children {
			if c == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	n.parent = NoNode
}

// Detach unlinks id from its parent without destroying it. Embeds inside a
// detached subtree stay alive and fire no events.
func (t *Tree) Detach(id NodeID) error {
	if t.get(id) == nil {
		return wrap("detach", id, ErrUnknownNode)
	}
	if id == t.root {
		return wrap("detach", id, ErrInvalidNodeKind)
	}
	t.detach(id)
	return nil
}

// Remove deletes id and its subtree. Every embed in the subtree fires its
// removed event once the nodes are gone from the tree.
func (t *Tree) Remove(id NodeID) error {
	if t.get(id) == nil {
		return wrap("remove", id, ErrUnknownNode)
	}
	if id == t.root {
		return wrap("remove", id, ErrInvalidNodeKind)
	}
	var doomed []NodeID
	t.Walk(id, func(n NodeID) bool {
		doomed = append(doomed, n)
		return true
	})
	t.detach(id)

	var removed []EmbedEvent
	for _, n := range doomed {
		nd := &t.nodes[n]
		if nd.kind == KindEmbed && nd.embed != nil && !nd.embed.removed {
			nd.embed.removed = true
			removed = append(removed, t.embedEvent(n, EmbedRemoved))
		}
		nd.live = false
	}
	for i := range removed {
		t.dispatch(removed[i])
	}
	return nil
}

// Replace puts repl where old is and removes old.
func (t *Tree) Replace(old, repl NodeID) error {
	if err := t.InsertBefore(old, repl); err != nil {
		return wrap("replace", old, err)
	}
	return t.Remove(old)
}

// MoveChildren appends all children of src to dst, preserving order and node
// identity.
func (t *Tree) MoveChildren(src, dst NodeID) error {
	const op = "move children"
	if t.get(src) == nil {
		return wrap(op, src, ErrUnknownNode)
	}
	if !t.isContainer(dst) {
		return wrap(op, dst, ErrInvalidNodeKind)
	}
	if t.Contains(src, dst) {
		return wrap(op, dst, ErrCycle)
	}
	for _, c := range t.Children(src) {
		if err := t.AppendChild(dst, c); err != nil {
			return wrap(op, src, err)
		}
	}
	return nil
}

// Unwrap replaces id by its children.
func (t *Tree) Unwrap(id NodeID) error {
	const op = "unwrap"
	if t.get(id) == nil {
		return wrap(op, id, ErrUnknownNode)
	}
	parent := t.Parent(id)
	if parent == NoNode {
		return wrap(op, id, ErrInvalidNodeKind)
	}
	at := t.IndexOf(id)
	for i, c := range t.Children(id) {
		if err := t.InsertChild(parent, at+i, c); err != nil {
			return wrap(op, id, err)
		}
	}
	return t.Remove(id)
}

// Attr returns the value of attribute key on id.
func (t *Tree) Attr(id NodeID, key string) (string, bool) {
	n := t.get(id)
	if n == nil {
		return "", false
	}
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Attrs returns a copy of id's attributes in insertion order.
func (t *Tree) Attrs(id NodeID) []Attr {
	n := t.get(id)
	if n == nil || len(n.attrs) == 0 {
		return nil
	}
	return append([]Attr(nil), n.attrs...)
}

// SetAttr sets attribute key on an element, embed or block.
func (t *Tree) SetAttr(id NodeID, key, val string) error {
	n := t.get(id)
	if n == nil {
		return wrap("set attr", id, ErrUnknownNode)
	}
	if n.kind == KindText || n.kind == KindDocument {
		return wrap("set attr", id, ErrInvalidNodeKind)
	}
	key = strings.ToLower(key)
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Val = val
			return nil
		}
	}
	n.attrs = append(n.attrs, Attr{Key: key, Val: val})
	return nil
}

func (t *Tree) RemoveAttr(id NodeID, key string) {
	n := t.get(id)
	if n == nil {
		return
	}
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// Style returns one declaration from id's inline style attribute.
func (t *Tree) Style(id NodeID, prop string) (string, bool) {
	s, ok := t.Attr(id, "style")
	if !ok {
		return "", false
	}
	for _, d := range ParseStyle(s) {
		if d.Key == prop {
			return d.Val, true
		}
	}
	return "", false
}

// SetStyle sets one declaration in id's inline style attribute, keeping the
// others in place.
func (t *Tree) SetStyle(id NodeID, prop, val string) error {
	s, _ := t.Attr(id, "style")
	decls := ParseStyle(s)
	found := false
	for i := range decls {
		if decls[i].Key == prop {
			decls[i].Val = val
			found = true
		}
	}
	if !found {
		decls = append(decls, Attr{Key: prop, Val: val})
	}
	return t.SetAttr(id, "style", FormatStyle(decls))
}

// ParseStyle splits an inline style attribute into declarations.
func ParseStyle(s string) []Attr {
	var out []Attr
	for _, decl := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(v)
		if k == "" {
			continue
		}
		out = append(out, Attr{Key: k, Val: v})
	}
	return out
}

// FormatStyle joins declarations into an inline style attribute.
func FormatStyle(decls []Attr) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Key+": "+d.Val+";")
	}
	return strings.Join(parts, " ")
}

// SetText replaces the whole content of a text run.
func (t *Tree) SetText(id NodeID, s string) error {
	n := t.get(id)
	if n == nil {
		return wrap("set text", id, ErrUnknownNode)
	}
	if n.kind != KindText {
		return wrap("set text", id, ErrInvalidNodeKind)
	}
	n.text = s
	return nil
}

// ReplaceText replaces graphemes [start, end) of a text run with s.
func (t *Tree) ReplaceText(id NodeID, start, end int, s string) error {
	const op = "replace text"
	n := t.get(id)
	if n == nil {
		return wrap(op, id, ErrUnknownNode)
	}
	if n.kind != KindText {
		return wrap(op, id, ErrInvalidNodeKind)
	}
	if start < 0 || end < start || end > grapheme.Count(n.text) {
		return wrap(op, id, ErrOutOfRange)
	}
	n.text = grapheme.Splice(n.text, start, end, s)
	return nil
}

// SplitText cuts a text run at offset and returns the new run holding the
// tail, inserted right after id.
func (t *Tree) SplitText(id NodeID, offset int) (NodeID, error) {
	const op = "split text"
	n := t.get(id)
	if n == nil {
		return NoNode, wrap(op, id, ErrUnknownNode)
	}
	if n.kind != KindText {
		return NoNode, wrap(op, id, ErrInvalidNodeKind)
	}
	total := grapheme.Count(n.text)
	if offset < 0 || offset > total {
		return NoNode, wrap(op, id, ErrOutOfRange)
	}
	tail := grapheme.Slice(n.text, offset, total)
	head := grapheme.Slice(n.text, 0, offset)
	right := t.NewText(tail)
	if t.Parent(id) != NoNode {
		if err := t.InsertAfter(id, right); err != nil {
			return NoNode, wrap(op, id, err)
		}
	}
	t.nodes[id].text = head
	return right, nil
}
