package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/musaaj/Simaditor/document"
)

// plainStyle renders every part without escape sequences.
func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Text:      r.NewStyle(),
		Heading:   r.NewStyle().Bold(true),
		Marker:    r.NewStyle(),
		Embed:     r.NewStyle(),
		Border:    r.NewStyle(),
		Selection: r.NewStyle().Reverse(true),
		Cursor:    r.NewStyle().Reverse(true),
	}
}

func TestRender_CursorPadding(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	got := m.renderContent()
	want := " a b"
	if got != want {
		t.Fatalf("unexpected cursor rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_CursorAtLineEndAddsCell(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1)},
	})
	m.Engine().Move(document.Move{Unit: document.MoveDoc, Dir: document.DirEnd}, false)

	if got, want := m.renderContent(), "ab  "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_Projection(t *testing.T) {
	m := New(Config{
		Text: `<h1>T</h1><ul><li>one</li></ul><ol><li>x</li><li>y</li></ol>` +
			`<blockquote>q</blockquote><p>ab<img src="i.png"><span latex="x^2"></span></p>` +
			`<table><tbody><tr><td>a</td><td>bbb</td></tr><tr><td>cc</td><td></td></tr></tbody></table>`,
		Style: plainStyle(),
	})
	m = m.Blur()

	got := strings.Split(m.renderContent(), "\n")
	want := []string{
		"# T",
		"• one",
		"1. x",
		"2. y",
		"│ q",
		"ab[img 200x200]x²",
		"│a │bbb│",
		"│cc│   │",
	}
	if len(got) != len(want) {
		t.Fatalf("rows: got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRender_LineBreaksStartRows(t *testing.T) {
	m := New(Config{Text: "<p>a<br>b</p><p>c</p>", Style: plainStyle()})
	m = m.Blur()

	if got, want := m.renderContent(), "a\nb\nc"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if len(m.hits) != 3 || m.hits[1].sub != 1 || m.hits[2].sub != 0 {
		t.Fatalf("hits: got %+v", m.hits)
	}
}

func TestRender_AlignmentNeedsWidth(t *testing.T) {
	m := New(Config{Text: `<p style="text-align: right">ab</p>`, Style: plainStyle()})
	m = m.Blur()
	if got := m.renderContent(); got != "ab" {
		t.Fatalf("without width: got %q", got)
	}

	m = m.SetSize(6, 2)
	if got, want := m.renderContent(), "    ab"; got != want {
		t.Fatalf("right aligned: got %q, want %q", got, want)
	}
}

func TestRender_FormatsUseTerminalAttributes(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	m := New(Config{
		Text:  "<p><b>x</b>y</p>",
		Style: Style{Text: r.NewStyle()},
	})
	m = m.Blur()

	got := m.renderContent()
	if !strings.Contains(got, "\x1b[1m") {
		t.Fatalf("bold run must render bold, got %q", got)
	}
	if !strings.HasSuffix(got, "y") {
		t.Fatalf("plain run must render plain, got %q", got)
	}
}

func TestRender_LabelsAreTruncated(t *testing.T) {
	m := New(Config{
		Text:  `<p><img src="a.png" alt="a very long description of the picture"></p>`,
		Style: plainStyle(),
	})
	m = m.Blur()

	got := m.renderContent()
	if lipgloss.Width(got) != maxLabelCells || !strings.HasSuffix(got, "…") {
		t.Fatalf("label: got %q (%d cells)", got, lipgloss.Width(got))
	}
}
