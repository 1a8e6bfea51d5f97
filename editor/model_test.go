package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/musaaj/Simaditor/document"
)

func numbered(n int) string {
	var sb strings.Builder
	for i := range n {
		fmt.Fprintf(&sb, "<p>%d</p>", i)
	}
	return sb.String()
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "<p>a</p><p>b</p><p>c</p>"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestModel_FollowsCursor(t *testing.T) {
	m := New(Config{Text: numbered(10), Style: plainStyle()})
	m = m.SetSize(20, 3)

	vs := m.ViewportState()
	if vs != (ViewportState{TopRow: 0, VisibleRows: 3, CursorRow: 0, TotalRows: 10}) {
		t.Fatalf("initial state: got %+v", vs)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	vs = m.ViewportState()
	if vs.CursorRow != 9 || vs.TopRow != 7 {
		t.Fatalf("after doc end: got %+v, want cursor 9 top 7", vs)
	}
	if !strings.Contains(m.View(), "9") {
		t.Fatalf("last row must be visible:\n%s", m.View())
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	if vs = m.ViewportState(); vs.CursorRow != 0 || vs.TopRow != 0 {
		t.Fatalf("after doc start: got %+v", vs)
	}
}

func TestModel_WindowSizeMsg(t *testing.T) {
	m := New(Config{Text: numbered(3)})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 2})
	if vs := m.ViewportState(); vs.VisibleRows != 2 || vs.TotalRows != 3 {
		t.Fatalf("state: got %+v", vs)
	}
}

func TestModel_MouseClickPlacesCaret(t *testing.T) {
	m := New(Config{Text: "<p>abc</p><p>def</p>", Style: plainStyle()})
	m = m.SetSize(20, 5)

	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	r, ok := m.Engine().Selection()
	if !ok {
		t.Fatalf("no selection after click")
	}
	d := m.Engine().Document()
	def := d.FirstChild(d.Lines()[1])
	if r != document.Caret(document.Pos{Node: def, Offset: 1}) {
		t.Fatalf("caret: got %v, want %v", r, document.Pos{Node: def, Offset: 1})
	}
	if vs := m.ViewportState(); vs.CursorRow != 1 {
		t.Fatalf("cursor row: got %d, want 1", vs.CursorRow)
	}

	m, _ = m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true})
	r, _ = m.Engine().Selection()
	if r.Anchor != (document.Pos{Node: def, Offset: 1}) || r.Focus != (document.Pos{Node: def, Offset: 3}) {
		t.Fatalf("shift-click selection: got %v", r)
	}

	m, _ = m.Update(tea.MouseMsg{X: 50, Y: 50, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if got, _ := m.Engine().Selection(); got != r {
		t.Fatalf("click outside must be ignored, got %v", got)
	}
}

func TestModel_BlurIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"})
	m = m.Blur()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if got := m.Engine().GetText(); got != "<p>ab</p>" {
		t.Fatalf("blurred model must not edit: got %q", got)
	}
	if m.Focused() {
		t.Fatalf("model must report blurred")
	}
}

func TestModel_PicksUpHostChanges(t *testing.T) {
	m := New(Config{Text: "ab", Style: plainStyle()})
	m = m.Blur()
	m = m.SetSize(10, 1)

	m.Engine().SelectAll()
	m.Engine().InsertText("zz")
	m, _ = m.Update(struct{}{})
	if got := m.View(); !strings.Contains(got, "zz") {
		t.Fatalf("view must reflect host edits, got %q", got)
	}
}

func TestModel_ScrollPolicy(t *testing.T) {
	wheel := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}

	m := New(Config{Text: numbered(10)})
	m = m.SetSize(20, 3)
	m, _ = m.Update(wheel)
	if vs := m.ViewportState(); vs.TopRow == 0 || vs.CursorRow != 0 {
		t.Fatalf("manual scroll: got %+v, want the view to move without the caret", vs)
	}

	m = New(Config{Text: numbered(10), ScrollPolicy: ScrollFollowCursorOnly})
	m = m.SetSize(20, 3)
	m, _ = m.Update(wheel)
	if vs := m.ViewportState(); vs.TopRow != 0 {
		t.Fatalf("follow-cursor-only: got top row %d, want 0", vs.TopRow)
	}
}
