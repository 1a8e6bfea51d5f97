package document

import "strings"

// NodeID identifies a node within one Tree. IDs are never reused.
type NodeID int

// NoNode is the zero NodeID; it never names a node.
const NoNode NodeID = 0

// Kind is the structural category of a node.
type Kind uint8

const (
	KindDocument Kind = iota + 1
	KindBlock
	KindText
	KindWrapper
	KindEmbed
	KindElement
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindBlock:
		return "block"
	case KindText:
		return "text"
	case KindWrapper:
		return "wrapper"
	case KindEmbed:
		return "embed"
	case KindElement:
		return "element"
	default:
		return "invalid"
	}
}

// Attr is one element attribute.
type Attr struct {
	Key string
	Val string
}

type node struct {
	kind     Kind
	tag      string
	text     string
	attrs    []Attr
	embed    *embedState
	parent   NodeID
	children []NodeID
	live     bool
}

// Tree is an arena-allocated document.
type Tree struct {
	nodes []node
	root  NodeID
}

// New returns a tree holding an empty Document root.
func New() *Tree {
	t := &Tree{nodes: make([]node, 1, 64)}
	t.root = t.alloc(node{kind: KindDocument, tag: "#document"})
	return t
}

func (t *Tree) alloc(n node) NodeID {
	n.live = true
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) get(id NodeID) *node {
	if id <= NoNode || int(id) >= len(t.nodes) {
		return nil
	}
	n := &t.nodes[id]
	if !n.live {
		return nil
	}
	return n
}

// Root returns the Document node.
func (t *Tree) Root() NodeID { return t.root }

// NewElement allocates a detached element. The kind follows from the tag:
// block tags give a Block, formatting tags a Wrapper, anything else an
// Element.
func (t *Tree) NewElement(tag string) NodeID {
	tag = strings.ToLower(tag)
	if f, ok := FormatOf(tag); ok {
		return t.NewWrapper(f)
	}
	kind := KindElement
	if IsBlockTag(tag) {
		kind = KindBlock
	}
	return t.alloc(node{kind: kind, tag: tag})
}

// NewText allocates a detached text run.
func (t *Tree) NewText(s string) NodeID {
	return t.alloc(node{kind: KindText, tag: "#text", text: s})
}

// NewWrapper allocates a detached formatting wrapper.
func (t *Tree) NewWrapper(f Format) NodeID {
	return t.alloc(node{kind: KindWrapper, tag: f.Tag()})
}

// Valid reports whether id names a live node of t.
func (t *Tree) Valid(id NodeID) bool { return t.get(id) != nil }

// Attached reports whether id is live and reachable from the root.
func (t *Tree) Attached(id NodeID) bool {
	for n := t.get(id); n != nil; n = t.get(n.parent) {
		if id == t.root {
			return true
		}
		id = n.parent
	}
	return false
}

func (t *Tree) Kind(id NodeID) Kind {
	if n := t.get(id); n != nil {
		return n.kind
	}
	return 0
}

// Tag returns the lower-case tag name of an element, "#text" for text runs.
func (t *Tree) Tag(id NodeID) string {
	if n := t.get(id); n != nil {
		return n.tag
	}
	return ""
}

// Text returns the character data of a text run.
func (t *Tree) Text(id NodeID) string {
	if n := t.get(id); n != nil {
		return n.text
	}
	return ""
}

func (t *Tree) Parent(id NodeID) NodeID {
	if n := t.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

// Children returns a copy of id's child list.
func (t *Tree) Children(id NodeID) []NodeID {
	n := t.get(id)
	if n == nil || len(n.children) == 0 {
		return nil
	}
	return append([]NodeID(nil), n.children...)
}

func (t *Tree) ChildCount(id NodeID) int {
	if n := t.get(id); n != nil {
		return len(n.children)
	}
	return 0
}

// Child returns the i-th child of id or NoNode.
func (t *Tree) Child(id NodeID, i int) NodeID {
	n := t.get(id)
	if n == nil || i < 0 || i >= len(n.children) {
		return NoNode
	}
	return n.children[i]
}

func (t *Tree) FirstChild(id NodeID) NodeID { return t.Child(id, 0) }

func (t *Tree) LastChild(id NodeID) NodeID { return t.Child(id, t.ChildCount(id)-1) }

// IndexOf returns id's position among its siblings, or -1 when detached.
func (t *Tree) IndexOf(id NodeID) int {
	n := t.get(id)
	if n == nil {
		return -1
	}
	p := t.get(n.parent)
	if p == nil {
		return -1
	}
	for i, c := range p.children {
		if c == id {
			return i
		}
	}
	return -1
}

func (t *Tree) PrevSibling(id NodeID) NodeID {
	i := t.IndexOf(id)
	if i <= 0 {
		return NoNode
	}
	return t.Child(t.Parent(id), i-1)
}

func (t *Tree) NextSibling(id NodeID) NodeID {
	i := t.IndexOf(id)
	if i < 0 {
		return NoNode
	}
	return t.Child(t.Parent(id), i+1)
}

// Contains reports whether anc is id or one of its ancestors.
func (t *Tree) Contains(anc, id NodeID) bool {
	for id != NoNode {
		if id == anc {
			return true
		}
		id = t.Parent(id)
	}
	return false
}

// Walk visits id and its descendants in document order. Returning false from
// fn skips the node's children.
func (t *Tree) Walk(id NodeID, fn func(NodeID) bool) {
	n := t.get(id)
	if n == nil {
		return
	}
	if !fn(id) {
		return
	}
	for _, c := range t.Children(id) {
		t.Walk(c, fn)
	}
}

// TextContent concatenates the text runs under id.
func (t *Tree) TextContent(id NodeID) string {
	var sb strings.Builder
	t.Walk(id, func(n NodeID) bool {
		if t.Kind(n) == KindText {
			sb.WriteString(t.Text(n))
		}
		return true
	})
	return sb.String()
}

// Len is the maximum offset of a position inside id.
func (t *Tree) Len(id NodeID) int {
	n := t.get(id)
	if n == nil {
		return 0
	}
	if n.kind == KindText {
		return graphemeCount(n.text)
	}
	return len(n.children)
}

func (t *Tree) isContainer(id NodeID) bool {
	switch t.Kind(id) {
	case KindDocument, KindBlock, KindWrapper, KindElement:
		return !isVoidTag(t.Tag(id))
	default:
		return false
	}
}
