package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding
	SelectAll                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Bold, Italic, Underline, Super, Sub key.Binding

	Paragraph, Heading1, Heading2, Heading3 key.Binding

	AlignLeft, AlignCenter, AlignRight, Justify key.Binding

	BulletList, NumberedList, Table key.Binding
	Math, Symbol, Image             key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new paragraph")),

		Bold:      key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Italic:    key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Underline: key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "underline")),
		Super:     key.NewBinding(key.WithKeys("alt+."), key.WithHelp("alt+.", "superscript")),
		Sub:       key.NewBinding(key.WithKeys("alt+,"), key.WithHelp("alt+,", "subscript")),

		Paragraph: key.NewBinding(key.WithKeys("alt+0"), key.WithHelp("alt+0", "paragraph")),
		Heading1:  key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "heading 1")),
		Heading2:  key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "heading 2")),
		Heading3:  key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "heading 3")),

		AlignLeft:   key.NewBinding(key.WithKeys("alt+["), key.WithHelp("alt+[", "align left")),
		AlignCenter: key.NewBinding(key.WithKeys("alt+\\"), key.WithHelp("alt+\\", "center")),
		AlignRight:  key.NewBinding(key.WithKeys("alt+]"), key.WithHelp("alt+]", "align right")),
		Justify:     key.NewBinding(key.WithKeys("alt+j"), key.WithHelp("alt+j", "justify")),

		BulletList:   key.NewBinding(key.WithKeys("alt+-"), key.WithHelp("alt+-", "bullet list")),
		NumberedList: key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "numbered list")),
		Table:        key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "table")),
		Math:         key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "math")),
		Symbol:       key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "symbol")),
		Image:        key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "image")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}
