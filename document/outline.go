package document

import (
	"fmt"
	"sort"
	"strings"
)

// Outline renders the subtree at id as a compact one-line description, e.g.
//
//	p("ab" b("c") img[a.png 300x300]) p(br)
//
// The root renders as its children separated by spaces and adjacent text
// runs are joined with '+'.
func (t *Tree) Outline(id NodeID) string {
	var sb strings.Builder
	t.outline(&sb, id)
	return sb.String()
}

func (t *Tree) outline(sb *strings.Builder, id NodeID) {
	switch t.Kind(id) {
	case KindDocument:
		for i, c := range t.Children(id) {
			if i > 0 {
				sb.WriteByte(' ')
			}
			t.outline(sb, c)
		}
	case KindText:
		fmt.Fprintf(sb, "%q", t.Text(id))
	case KindEmbed:
		kind, _ := t.EmbedKindOf(id)
		switch kind {
		case EmbedImage:
			src, _ := t.Attr(id, "src")
			w, h := t.Size(id)
			fmt.Fprintf(sb, "img[%s %dx%d]", src, w, h)
		case EmbedMath:
			v, _ := t.Attr(id, "value")
			fmt.Fprintf(sb, "math[%s]", v)
		}
	default:
		sb.WriteString(t.Tag(id))
		if t.IsLineBreak(id) {
			return
		}
		sb.WriteByte('(')
		prevText := false
		for i, c := range t.Children(id) {
			if t.IsText(c) && prevText {
				sb.WriteString("+")
			} else if i > 0 {
				sb.WriteByte(' ')
			}
			t.outline(sb, c)
			prevText = t.IsText(c)
		}
		sb.WriteByte(')')
	}
}

// Equal reports whether the subtree a in ta and b in tb are structurally
// equal: same kinds, tags, attributes, text and embed attributes. Adjacent
// text runs compare by their concatenation and embed identities are ignored.
func Equal(ta *Tree, a NodeID, tb *Tree, b NodeID) bool {
	return ta.canonical(a) == tb.canonical(b)
}

func (t *Tree) canonical(id NodeID) string {
	var sb strings.Builder
	t.canon(&sb, id)
	return sb.String()
}

func (t *Tree) canon(sb *strings.Builder, id NodeID) {
	sb.WriteString(t.Kind(id).String())
	sb.WriteByte(':')
	sb.WriteString(t.Tag(id))
	attrs := t.Attrs(id)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
	for _, a := range attrs {
		fmt.Fprintf(sb, "[%s=%q]", a.Key, a.Val)
	}
	sb.WriteByte('{')
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			fmt.Fprintf(sb, "%q;", run.String())
			run.Reset()
		}
	}
	for _, c := range t.Children(id) {
		if t.IsText(c) {
			run.WriteString(t.Text(c))
			continue
		}
		flush()
		t.canon(sb, c)
		sb.WriteByte(';')
	}
	flush()
	sb.WriteByte('}')
}
