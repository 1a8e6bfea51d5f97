package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func alt(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{}, // keep styles minimal for this test
	})

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("X")})
	if got := m.Engine().GetText(); got != "<p>aXb</p>" {
		t.Fatalf("text after insert: got %q, want %q", got, "<p>aXb</p>")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Engine().GetText(); got != "<p>ab</p>" {
		t.Fatalf("text after backspace: got %q, want %q", got, "<p>ab</p>")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.Engine().GetText(); got != "<p>a</p>" {
		t.Fatalf("text after delete: got %q, want %q", got, "<p>a</p>")
	}
}

func TestUpdate_EnterThenBackspaceMerges(t *testing.T) {
	m := New(Config{Text: "ab"})

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if got, want := m.Engine().GetText(), "<p>a</p><p>b</p>"; got != want {
		t.Fatalf("after enter: got %q, want %q", got, want)
	}
	if vs := m.ViewportState(); vs.CursorRow != 1 {
		t.Fatalf("cursor row after enter: got %d, want 1", vs.CursorRow)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Engine().GetText(), "<p>ab</p>"; got != want {
		t.Fatalf("after backspace: got %q, want %q", got, want)
	}
}

func TestUpdate_FormattingShortcuts(t *testing.T) {
	m := New(Config{Text: "ab"})

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftRight}, alt('b'))
	if got, want := m.Engine().GetText(), "<p><b>a</b>b</p>"; got != want {
		t.Fatalf("after alt+b: got %q, want %q", got, want)
	}

	m = press(m, alt('2'))
	if got, want := m.Engine().GetText(), "<h2><b>a</b>b</h2>"; got != want {
		t.Fatalf("after alt+2: got %q, want %q", got, want)
	}

	m = press(m, alt('0'))
	if got, want := m.Engine().GetText(), "<p><b>a</b>b</p>"; got != want {
		t.Fatalf("after alt+0: got %q, want %q", got, want)
	}

	m = press(m, alt('\\'))
	if got, want := m.Engine().GetText(), `<p style="text-align: center;"><b>a</b>b</p>`; got != want {
		t.Fatalf("after alt+\\: got %q, want %q", got, want)
	}
}

func TestUpdate_AltRunesAreNotTyped(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = press(m, alt('z'))
	if got := m.Engine().GetText(); got != "<p>ab</p>" {
		t.Fatalf("unbound alt key must not type: got %q", got)
	}
}

func TestUpdate_PasteEventInsertsLiteralText(t *testing.T) {
	m := New(Config{Text: "ab"})

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("<b>"), Paste: true})
	if got, want := m.Engine().GetText(), "<p>&lt;b&gt;ab</p>"; got != want {
		t.Fatalf("after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_TabInsertsTab(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if got, want := m.Engine().GetText(), "<p>\tab</p>"; got != want {
		t.Fatalf("after tab: got %q, want %q", got, want)
	}
}

func TestUpdate_ClipboardKeys(t *testing.T) {
	clip := &memClipboard{}
	m := New(Config{Text: "ab", Clipboard: clip})

	m = press(m, tea.KeyMsg{Type: tea.KeyShiftRight}, tea.KeyMsg{Type: tea.KeyCtrlC})
	if clip.text != "a" {
		t.Fatalf("clipboard after copy: got %q, want %q", clip.text, "a")
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if got, want := m.Engine().GetText(), "<p>b</p>"; got != want {
		t.Fatalf("after cut: got %q, want %q", got, want)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Engine().GetText(), "<p>ab</p>"; got != want {
		t.Fatalf("after paste: got %q, want %q", got, want)
	}
}

func TestUpdate_InsertShortcuts(t *testing.T) {
	m := New(Config{
		Text:         "ab",
		SymbolPicker: SymbolPickerFunc(func(done func(string, bool)) { done("π", true) }),
	})

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd}, alt('s'))
	if got, want := m.Engine().GetText(), "<p>abπ</p>"; got != want {
		t.Fatalf("after alt+s: got %q, want %q", got, want)
	}

	m = press(m, alt('-'))
	if got, want := m.Engine().GetText(), "<p>abπ</p><ul><li><br/></li></ul>"; got != want {
		t.Fatalf("after alt+-: got %q, want %q", got, want)
	}
}
