package document

import "github.com/musaaj/Simaditor/internal/grapheme"

// ObjectUnit stands in for an embed in Line.Units.
const ObjectUnit = "\ufffc"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Line is the caret geometry of a leaf block or table cell. Slots holds one
// position per caret stop; Units[i] is the grapheme, embed or break between
// Slots[i] and Slots[i+1].
type Line struct {
	Node  NodeID
	Slots []Pos
	Units []string

	// element-boundary spelling of a slot that was moved into a text run
	alias map[int]Pos
}

func (t *Tree) isLineNode(id NodeID) bool {
	return t.IsBlock(id) || (t.Kind(id) == KindElement && IsCellTag(t.Tag(id)))
}

func (t *Tree) hasLineDescendant(id NodeID) bool {
	found := false
	for _, c := range t.Children(id) {
		t.Walk(c, func(n NodeID) bool {
			if found {
				return false
			}
			if t.isLineNode(n) {
				found = true
				return false
			}
			return true
		})
	}
	return found
}

// Lines returns the line nodes under the root in document order.
func (t *Tree) Lines() []NodeID {
	var out []NodeID
	t.Walk(t.root, func(id NodeID) bool {
		if !t.isLineNode(id) {
			return true
		}
		if t.hasLineDescendant(id) {
			return true
		}
		out = append(out, id)
		return false
	})
	return out
}

// LineOf returns the nearest block or table cell containing id.
func (t *Tree) LineOf(id NodeID) NodeID {
	for ; id != NoNode; id = t.Parent(id) {
		if t.isLineNode(id) {
			return id
		}
	}
	return NoNode
}

// BlockOf returns the nearest Block containing id, or NoNode.
func (t *Tree) BlockOf(id NodeID) NodeID {
	for ; id != NoNode; id = t.Parent(id) {
		if t.IsBlock(id) {
			return id
		}
	}
	return NoNode
}

// Line computes the caret stops of line node id.
func (t *Tree) Line(id NodeID) Line {
	ln := Line{Node: id}
	inText := false
	var walk func(NodeID)
	walk = func(n NodeID) {
		for _, c := range t.Children(n) {
			switch {
			case t.IsText(c):
				start := Pos{Node: c}
				if len(ln.Slots) == 0 {
					ln.Slots = append(ln.Slots, start)
				} else if !inText {
					i := len(ln.Slots) - 1
					if ln.alias == nil {
						ln.alias = make(map[int]Pos)
					}
					ln.alias[i] = ln.Slots[i]
					ln.Slots[i] = start
				}
				for i, g := range grapheme.Split(t.Text(c)) {
					ln.Units = append(ln.Units, g)
					ln.Slots = append(ln.Slots, Pos{Node: c, Offset: i + 1})
				}
				inText = true
			case t.IsAtomicEmbed(c) || isVoidTag(t.Tag(c)):
				if len(ln.Slots) == 0 {
					ln.Slots = append(ln.Slots, t.Before(c))
				}
				unit := ObjectUnit
				if t.IsLineBreak(c) {
					unit = "\n"
				}
				ln.Units = append(ln.Units, unit)
				ln.Slots = append(ln.Slots, t.After(c))
				inText = false
			case t.isContainer(c) && !t.isLineNode(c):
				walk(c)
			}
		}
	}
	walk(id)
	// a trailing break only props up the line box
	if n := len(ln.Units); n > 0 && ln.Units[n-1] == "\n" {
		ln.Units = ln.Units[:n-1]
		ln.Slots = ln.Slots[:n]
	}
	if len(ln.Slots) == 0 {
		ln.Slots = []Pos{{Node: id}}
	}
	return ln
}

// Col returns the index of the caret stop matching p.
func (ln Line) Col(t *Tree, p Pos) int {
	col := 0
	for i, s := range ln.Slots {
		a, ok := ln.alias[i]
		switch {
		case t.ComparePos(s, p) <= 0:
			col = i
		case ok && t.ComparePos(a, p) <= 0:
			col = i
		default:
			return col
		}
	}
	return col
}

// Locate returns the line holding p and p's caret stop in it.
func (t *Tree) Locate(p Pos) (Line, int, bool) {
	id := t.LineOf(t.ContainerOf(p))
	if id == NoNode {
		return Line{}, 0, false
	}
	ln := t.Line(id)
	return ln, ln.Col(t, p), true
}

// StartOf returns the first caret stop inside id.
func (t *Tree) StartOf(id NodeID) Pos {
	if t.isLineNode(id) && !t.hasLineDescendant(id) {
		return t.Line(id).Slots[0]
	}
	for _, l := range t.Lines() {
		if t.Contains(id, l) {
			return t.Line(l).Slots[0]
		}
	}
	return Pos{Node: id}
}

// EndOf returns the last caret stop inside id.
func (t *Tree) EndOf(id NodeID) Pos {
	if t.isLineNode(id) && !t.hasLineDescendant(id) {
		s := t.Line(id).Slots
		return s[len(s)-1]
	}
	lines := t.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		if t.Contains(id, lines[i]) {
			s := t.Line(lines[i]).Slots
			return s[len(s)-1]
		}
	}
	return Pos{Node: id, Offset: t.Len(id)}
}

// AtLineStart reports whether nothing but empty content precedes p in its
// line.
func (t *Tree) AtLineStart(p Pos) bool {
	_, col, ok := t.Locate(p)
	return ok && col == 0
}

// MovePos computes the caret position after applying m to p.
func (t *Tree) MovePos(p Pos, m Move) Pos {
	lines := t.Lines()
	if len(lines) == 0 {
		return p
	}
	li := -1
	if id := t.LineOf(t.ContainerOf(p)); id != NoNode {
		for i, l := range lines {
			if l == id {
				li = i
				break
			}
		}
	}
	if li < 0 {
		return t.Line(lines[0]).Slots[0]
	}
	ln := t.Line(lines[li])
	col := ln.Col(t, p)
	last := len(ln.Slots) - 1

	switch m.Unit {
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return t.Line(lines[0]).Slots[0]
		default:
			s := t.Line(lines[len(lines)-1]).Slots
			return s[len(s)-1]
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			if col == 0 {
				return t.MovePos(p, Move{Unit: MoveGrapheme, Dir: DirLeft})
			}
			return ln.Slots[prevWordBoundary(ln.Units, col)]
		case DirRight:
			if col == last {
				return t.MovePos(p, Move{Unit: MoveGrapheme, Dir: DirRight})
			}
			return ln.Slots[nextWordBoundary(ln.Units, col)]
		}
	}

	switch m.Dir {
	case DirLeft:
		if col > 0 {
			return ln.Slots[col-1]
		}
		if li > 0 {
			s := t.Line(lines[li-1]).Slots
			return s[len(s)-1]
		}
	case DirRight:
		if col < last {
			return ln.Slots[col+1]
		}
		if li+1 < len(lines) {
			return t.Line(lines[li+1]).Slots[0]
		}
	case DirUp:
		if li > 0 {
			s := t.Line(lines[li-1]).Slots
			return s[min(col, len(s)-1)]
		}
		return ln.Slots[0]
	case DirDown:
		if li+1 < len(lines) {
			s := t.Line(lines[li+1]).Slots
			return s[min(col, len(s)-1)]
		}
		return ln.Slots[last]
	case DirHome:
		return ln.Slots[0]
	case DirEnd:
		return ln.Slots[last]
	}
	return ln.Slots[col]
}

// Word boundary rules (v0):
// - skip whitespace, then skip non-whitespace
// - an embed or break counts as a word of its own
func prevWordBoundary(units []string, col int) int {
	i := min(max(col, 0), len(units))
	for i > 0 && grapheme.IsSpace(units[i-1]) && units[i-1] != "\n" {
		i--
	}
	if i > 0 && isObject(units[i-1]) {
		return i - 1
	}
	for i > 0 && !grapheme.IsSpace(units[i-1]) && !isObject(units[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(units []string, col int) int {
	i := min(max(col, 0), len(units))
	for i < len(units) && grapheme.IsSpace(units[i]) && units[i] != "\n" {
		i++
	}
	if i < len(units) && isObject(units[i]) {
		return i + 1
	}
	for i < len(units) && !grapheme.IsSpace(units[i]) && !isObject(units[i]) {
		i++
	}
	return i
}

func isObject(u string) bool { return u == ObjectUnit || u == "\n" }
