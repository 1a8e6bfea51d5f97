package editor

// The collaborators below stand in for host services the engine does not
// own. Pickers are asked once per request and report back through done,
// possibly later; the engine inserts at the caret captured when the request
// was made.

// Clipboard carries plain text for Copy, Cut and PasteClipboard. Failures
// are logged and otherwise ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SymbolPicker lets the user choose a symbol. ok is false when dismissed.
type SymbolPicker interface {
	PickSymbol(done func(symbol string, ok bool))
}

// MathInput edits a TeX expression starting from initial.
type MathInput interface {
	EditMath(initial string, done func(latex string, ok bool))
}

// FilePicker lets the user choose an image file.
type FilePicker interface {
	PickFile(done func(data []byte, name string, err error))
}

type SymbolPickerFunc func(done func(symbol string, ok bool))

func (f SymbolPickerFunc) PickSymbol(done func(string, bool)) { f(done) }

type MathInputFunc func(initial string, done func(latex string, ok bool))

func (f MathInputFunc) EditMath(initial string, done func(string, bool)) { f(initial, done) }

type FilePickerFunc func(done func(data []byte, name string, err error))

func (f FilePickerFunc) PickFile(done func([]byte, string, error)) { f(done) }
