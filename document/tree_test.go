package document

import (
	"errors"
	"testing"
)

// paragraph appends a p holding parts to the root.
func paragraph(t *Tree, parts ...NodeID) NodeID {
	p := t.NewElement("p")
	for _, c := range parts {
		if err := t.AppendChild(p, c); err != nil {
			panic(err)
		}
	}
	if err := t.AppendChild(t.Root(), p); err != nil {
		panic(err)
	}
	return p
}

func wrapped(t *Tree, f Format, parts ...NodeID) NodeID {
	w := t.NewWrapper(f)
	for _, c := range parts {
		if err := t.AppendChild(w, c); err != nil {
			panic(err)
		}
	}
	return w
}

func TestTree_NewElement_ClassifiesByTag(t *testing.T) {
	tr := New()
	cases := []struct {
		tag  string
		want Kind
	}{
		{tag: "p", want: KindBlock},
		{tag: "H2", want: KindBlock},
		{tag: "ul", want: KindBlock},
		{tag: "strong", want: KindWrapper},
		{tag: "sup", want: KindWrapper},
		{tag: "br", want: KindElement},
		{tag: "td", want: KindElement},
	}
	for _, tc := range cases {
		id := tr.NewElement(tc.tag)
		if got := tr.Kind(id); got != tc.want {
			t.Fatalf("kind(%q): got %v, want %v", tc.tag, got, tc.want)
		}
	}
	if got := tr.Tag(tr.NewElement("strong")); got != "b" {
		t.Fatalf("strong tag: got %q, want %q", got, "b")
	}
}

func TestTree_InsertChild_MovesAndRejectsCycles(t *testing.T) {
	tr := New()
	a := tr.NewText("a")
	b := tr.NewText("b")
	p := paragraph(tr, a, b)

	if err := tr.AppendChild(p, a); err != nil {
		t.Fatalf("append existing child: %v", err)
	}
	if got, want := tr.Outline(tr.Root()), `p("b"+"a")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}

	inner := tr.NewWrapper(Bold)
	_ = tr.AppendChild(p, inner)
	err := tr.AppendChild(inner, p)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("cycle: got %v, want ErrCycle", err)
	}
	var de *Error
	if !errors.As(err, &de) || de.Op != "insert" {
		t.Fatalf("error type: got %#v", err)
	}

	if err := tr.AppendChild(a, b); !errors.Is(err, ErrInvalidNodeKind) {
		t.Fatalf("append into text: got %v, want ErrInvalidNodeKind", err)
	}
	if err := tr.InsertChild(p, 9, tr.NewText("x")); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("index past end: got %v, want ErrOutOfRange", err)
	}
}

func TestTree_Remove_FreesSubtree(t *testing.T) {
	tr := New()
	txt := tr.NewText("x")
	w := wrapped(tr, Italic, txt)
	p := paragraph(tr, w)

	if err := tr.Remove(w); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if tr.Valid(w) || tr.Valid(txt) {
		t.Fatalf("removed nodes must be invalid")
	}
	if tr.ChildCount(p) != 0 {
		t.Fatalf("parent children: got %d, want 0", tr.ChildCount(p))
	}
	if err := tr.Remove(tr.Root()); !errors.Is(err, ErrInvalidNodeKind) {
		t.Fatalf("remove root: got %v", err)
	}
	if err := tr.Remove(w); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("remove twice: got %v", err)
	}
}

func TestTree_Unwrap_HoistsAllChildren(t *testing.T) {
	tr := New()
	w := wrapped(tr, Bold, tr.NewText("a"), tr.NewMath("x"), tr.NewText("b"))
	paragraph(tr, tr.NewText("<"), w, tr.NewText(">"))

	if err := tr.Unwrap(w); err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if got, want := tr.Outline(tr.Root()), `p("<"+"a" math[x] "b"+">")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
}

func TestTree_Style_RoundTrip(t *testing.T) {
	tr := New()
	p := paragraph(tr)
	_ = tr.SetAttr(p, "style", "color: red;TEXT-ALIGN : left")
	if err := tr.SetStyle(p, "text-align", "center"); err != nil {
		t.Fatalf("set style: %v", err)
	}
	if got, want := tr.attrOrEmpty(p, "style"), "color: red; text-align: center;"; got != want {
		t.Fatalf("style: got %q, want %q", got, want)
	}
	if v, ok := tr.Style(p, "text-align"); !ok || v != "center" {
		t.Fatalf("text-align: got %q %v", v, ok)
	}
	if err := tr.SetStyle(tr.NewText("x"), "a", "b"); !errors.Is(err, ErrInvalidNodeKind) {
		t.Fatalf("style on text: got %v", err)
	}
}

func TestTree_ReplaceAndSplitText(t *testing.T) {
	tr := New()
	txt := tr.NewText("héllo")
	paragraph(tr, txt)

	if err := tr.ReplaceText(txt, 1, 2, "e"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got := tr.Text(txt); got != "hello" {
		t.Fatalf("text: got %q", got)
	}
	right, err := tr.SplitText(txt, 2)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if tr.Text(txt) != "he" || tr.Text(right) != "llo" {
		t.Fatalf("split halves: got %q | %q", tr.Text(txt), tr.Text(right))
	}
	if tr.NextSibling(txt) != right {
		t.Fatalf("tail must follow head")
	}
	if err := tr.ReplaceText(txt, 0, 9, ""); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("replace past end: got %v", err)
	}
}

func TestComparePos_DocumentOrder(t *testing.T) {
	tr := New()
	a := tr.NewText("ab")
	b := tr.NewText("cd")
	p1 := paragraph(tr, a)
	p2 := paragraph(tr, wrapped(tr, Bold, b))

	cases := []struct {
		x, y Pos
		want int
	}{
		{x: Pos{a, 0}, y: Pos{a, 2}, want: -1},
		{x: Pos{a, 2}, y: Pos{b, 0}, want: -1},
		{x: Pos{p1, 0}, y: Pos{a, 0}, want: -1},
		{x: Pos{p1, 1}, y: Pos{a, 2}, want: 1},
		{x: Pos{tr.Root(), 1}, y: Pos{b, 1}, want: -1},
		{x: Pos{p2, 1}, y: Pos{b, 2}, want: 1},
		{x: Pos{b, 1}, y: Pos{b, 1}, want: 0},
	}
	for _, tc := range cases {
		if got := tr.ComparePos(tc.x, tc.y); got != tc.want {
			t.Fatalf("ComparePos(%v, %v): got %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestValidPos(t *testing.T) {
	tr := New()
	a := tr.NewText("ab")
	img := tr.NewImage("x.png", 10, 10)
	p := paragraph(tr, a, img)
	loose := tr.NewText("detached")

	if !tr.ValidPos(Pos{a, 2}) || !tr.ValidPos(Pos{p, 2}) {
		t.Fatalf("in-bounds positions must be valid")
	}
	if tr.ValidPos(Pos{a, 3}) {
		t.Fatalf("offset past text end must be invalid")
	}
	if tr.ValidPos(Pos{img, 0}) {
		t.Fatalf("position inside an embed must be invalid")
	}
	if tr.ValidPos(Pos{loose, 0}) {
		t.Fatalf("detached position must be invalid")
	}
}
