package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/musaaj/Simaditor/document"
)

// TableSize is the grid inserted by the Table binding.
const TableSize = 2

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	e := m.eng

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		e.InsertText(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	move := func(unit document.MoveUnit, dir document.MoveDir, extend bool) {
		e.Move(document.Move{Unit: unit, Dir: dir}, extend)
	}

	switch {
	case key.Matches(msg, km.Left):
		move(document.MoveGrapheme, document.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(document.MoveGrapheme, document.DirRight, false)
	case key.Matches(msg, km.Up):
		move(document.MoveLine, document.DirUp, false)
	case key.Matches(msg, km.Down):
		move(document.MoveLine, document.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(document.MoveGrapheme, document.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(document.MoveGrapheme, document.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(document.MoveLine, document.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(document.MoveLine, document.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(document.MoveWord, document.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(document.MoveWord, document.DirRight, false)

	case key.Matches(msg, km.Home):
		move(document.MoveLine, document.DirHome, false)
	case key.Matches(msg, km.End):
		move(document.MoveLine, document.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(document.MoveDoc, document.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(document.MoveDoc, document.DirEnd, false)
	case key.Matches(msg, km.SelectAll):
		e.SelectAll()

	case key.Matches(msg, km.Backspace):
		if !e.Backspace() {
			e.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		e.DeleteForward()
	case key.Matches(msg, km.Enter):
		e.Enter()

	case key.Matches(msg, km.Bold):
		e.Bold()
	case key.Matches(msg, km.Italic):
		e.Italic()
	case key.Matches(msg, km.Underline):
		e.Underline()
	case key.Matches(msg, km.Super):
		e.Super()
	case key.Matches(msg, km.Sub):
		e.Sub()

	case key.Matches(msg, km.Paragraph):
		e.FormatBlock(m.cfg.BlockTag)
	case key.Matches(msg, km.Heading1):
		e.FormatBlock("h1")
	case key.Matches(msg, km.Heading2):
		e.FormatBlock("h2")
	case key.Matches(msg, km.Heading3):
		e.FormatBlock("h3")

	case key.Matches(msg, km.AlignLeft):
		e.AlignText("left")
	case key.Matches(msg, km.AlignCenter):
		e.AlignText("center")
	case key.Matches(msg, km.AlignRight):
		e.AlignText("right")
	case key.Matches(msg, km.Justify):
		e.AlignText("justify")

	case key.Matches(msg, km.BulletList):
		e.InsertList("ul")
	case key.Matches(msg, km.NumberedList):
		e.InsertList("ol")
	case key.Matches(msg, km.Table):
		e.InsertTable(TableSize, TableSize)
	case key.Matches(msg, km.Math):
		e.InsertMathExpression()
	case key.Matches(msg, km.Symbol):
		e.InsertSymbol()
	case key.Matches(msg, km.Image):
		e.InsertBase64Image()

	case key.Matches(msg, km.Copy):
		e.Copy()
	case key.Matches(msg, km.Cut):
		e.Cut()
	case key.Matches(msg, km.Paste):
		e.PasteClipboard()

	default:
		if msg.Type == tea.KeyTab {
			e.InsertText("\t")
			return m, nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			e.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}
