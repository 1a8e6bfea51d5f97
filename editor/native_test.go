package editor

import (
	"errors"
	"testing"

	"github.com/musaaj/Simaditor/document"
)

type memClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func (c *memClipboard) ReadText() (string, error) { return c.text, c.readErr }

func (c *memClipboard) WriteText(s string) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.text = s
	return nil
}

func TestInsertText_NewlinesBreakLines(t *testing.T) {
	e, rec := newTestEngine(t, "<p>ab</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 1})

	e.InsertText("x\r\ny")
	if got, want := outline(e), `p("ax") p("yb")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	if got, want := caret(t, e), (document.Pos{Node: textOf(t, e, 1), Offset: 1}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
	if got := rec.reasons(); len(got) != 1 || len(got[0]) != 1 || got[0][0] != ReasonInput {
		t.Fatalf("events: got %v, want [[input]]", got)
	}
}

func TestInsertText_ReplacesPlaceholderBreak(t *testing.T) {
	e, _ := newTestEngine(t, "<p>a</p><p><br></p>")
	d := e.Document()
	caretAt(t, e, document.Pos{Node: d.Lines()[1]})

	e.InsertText("z")
	if got, want := outline(e), `p("a") p("z")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
}

func TestDeleteForward_MergesNextLine(t *testing.T) {
	e, _ := newTestEngine(t, "<p>ab</p><p>cd</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 2})

	e.DeleteForward()
	if got, want := outline(e), `p("abcd")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
}

func TestInput_WrapsLooseInlineContent(t *testing.T) {
	e, rec := newTestEngine(t, "<p>ab</p>")
	d := e.Document()
	if err := d.AppendChild(d.Root(), d.NewText("loose")); err != nil {
		t.Fatalf("append: %v", err)
	}

	e.Input()
	if got, want := outline(e), `p("ab") p("loose")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	e.Input()
	if got := rec.reasons(); len(got) != 1 || got[0][0] != ReasonInput {
		t.Fatalf("events: got %v, want one input event", got)
	}
}

func TestInput_LinksEmbedsAddedDirectly(t *testing.T) {
	e, rec := newTestEngine(t, "<p>ab</p>")
	d := e.Document()
	img := d.NewImage("x.png", 40, 40)
	_ = d.AppendChild(d.Root(), img)

	e.Input()
	if d.ListenerCount(img) != 1 {
		t.Fatalf("listeners: got %d, want 1", d.ListenerCount(img))
	}
	rec.events = nil
	e.ResizeEmbed(d.EmbedID(img), 50, 50)
	if got := rec.reasons(); len(got) != 1 || got[0][0] != ReasonEmbedResized {
		t.Fatalf("events: got %v", got)
	}
}

func TestFocus_MovesCaretIntoWrappedBlock(t *testing.T) {
	e, _ := newTestEngine(t, "<p>z</p>")
	d := e.Document()
	xy := d.NewText("xy")
	if err := d.InsertChild(d.Root(), 0, xy); err != nil {
		t.Fatalf("insert: %v", err)
	}

	e.Focus()
	if got, want := outline(e), `p("xy") p("z")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	if got, want := caret(t, e), (document.Pos{Node: xy, Offset: 1}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestPaste_InlineJoinsLine(t *testing.T) {
	e, rec := newTestEngine(t, "<p>ab</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 1})

	e.Paste("<b>x</b>y")
	if got, want := outline(e), `p("a" b("x") "y"+"b")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	if got := rec.reasons(); len(got) != 1 || got[0][0] != ReasonPaste {
		t.Fatalf("events: got %v, want [[paste]]", got)
	}
}

func TestPaste_BlocksSplitCurrentBlock(t *testing.T) {
	e, _ := newTestEngine(t, "<p>ab</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 1})

	e.Paste("<p>x</p><h2>y</h2>")
	if got, want := outline(e), `p("a") p("x") h2("y") p("b")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	if got, want := caret(t, e), (document.Pos{Node: textOf(t, e, 2), Offset: 1}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestPaste_SanitizesMarkup(t *testing.T) {
	e, _ := newTestEngine(t, "<p>ab</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 2})

	e.Paste(`<script>alert(1)</script><i onclick="x()">c</i>`)
	if got, want := e.GetText(), "<p>ab<i>c</i></p>"; got != want {
		t.Fatalf("export: got %q, want %q", got, want)
	}
}

func TestPaste_EmptyBlockGetsPlaceholder(t *testing.T) {
	e, _ := newTestEngine(t, "<p>ab</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 1})

	e.Paste("<p></p>")
	if got, want := outline(e), `p("a") p(br) p("b")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	block := e.Document().Lines()[1]
	if got, want := caret(t, e), (document.Pos{Node: block}); got != want {
		t.Fatalf("caret: got %v, want %v", got, want)
	}
}

func TestPaste_EmptyMarkupDoesNothing(t *testing.T) {
	e, rec := newTestEngine(t, "<p>ab</p>")
	caretAt(t, e, document.Pos{Node: textOf(t, e, 0), Offset: 1})
	before := e.Version()

	e.Paste("")
	if got, want := outline(e), `p("ab")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	if e.Version() != before || len(rec.events) != 0 {
		t.Fatalf("empty paste must not notify: version %d->%d, events %v", before, e.Version(), rec.reasons())
	}
}

func TestClipboard_CopyCutPaste(t *testing.T) {
	e, rec := newTestEngine(t, "<p>abc</p>")
	clip := &memClipboard{}
	e.cfg.Clipboard = clip
	txt := textOf(t, e, 0)
	selectRange(t, e, document.Pos{Node: txt, Offset: 1}, document.Pos{Node: txt, Offset: 2})

	e.Copy()
	if clip.text != "b" || len(rec.events) != 0 {
		t.Fatalf("copy: clipboard %q, events %d", clip.text, len(rec.events))
	}

	e.Cut()
	if got, want := outline(e), `p("ac")`; got != want {
		t.Fatalf("cut: got %s, want %s", got, want)
	}
	if clip.text != "b" {
		t.Fatalf("cut clipboard: got %q", clip.text)
	}

	e.PasteClipboard()
	if got, want := outline(e), `p("abc")`; got != want {
		t.Fatalf("paste: got %s, want %s", got, want)
	}
	if got := rec.reasons(); len(got) != 2 || got[0][0] != ReasonDelete || got[1][0] != ReasonInput {
		t.Fatalf("events: got %v, want [[delete] [input]]", got)
	}
}

func TestClipboard_ErrorsAreIgnored(t *testing.T) {
	e, rec := newTestEngine(t, "<p>abc</p>")
	e.cfg.Clipboard = &memClipboard{text: "zz", readErr: errors.New("denied"), writeErr: errors.New("denied")}
	txt := textOf(t, e, 0)
	selectRange(t, e, document.Pos{Node: txt}, document.Pos{Node: txt, Offset: 3})

	e.Copy()
	e.PasteClipboard()
	if got, want := outline(e), `p("abc")`; got != want {
		t.Fatalf("outline: got %s, want %s", got, want)
	}
	if len(rec.events) != 0 {
		t.Fatalf("events: got %v", rec.reasons())
	}
}
