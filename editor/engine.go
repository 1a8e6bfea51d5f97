package editor

import (
	"log/slog"

	"github.com/musaaj/Simaditor/document"
	"github.com/musaaj/Simaditor/markup"
)

// Engine owns one document and applies editing operations to it.
//
// Every operation captures the current selection first and silently does
// nothing when it is missing or invalid. Tree errors are logged and abort the
// operation; none reach the caller. Engine is not safe for concurrent use.
type Engine struct {
	cfg   Config
	log   *slog.Logger
	codec *markup.Codec

	doc    *document.Tree
	sel    document.Range
	hasSel bool

	version uint64
	notes   notifier
}

// NewEngine imports cfg.Text and places the caret at the start of the
// document.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	e := &Engine{
		cfg: cfg,
		log: cfg.Logger,
		codec: markup.New(markup.Options{
			BlockTag: cfg.BlockTag,
			Minify:   cfg.Minify,
			Renderer: cfg.MathRenderer,
			Logger:   cfg.Logger,
		}),
	}
	if cfg.OnChange != nil {
		e.notes.add(cfg.OnChange)
	}
	e.load(cfg.Text)
	return e
}

func (e *Engine) load(text string) {
	e.doc = e.codec.Import(text)
	e.relink(e.doc.Root())
	e.collapse(e.doc.StartOf(e.doc.Root()))
}

// Document returns the live tree. Callers that mutate it directly should
// call Input afterwards.
func (e *Engine) Document() *document.Tree { return e.doc }

// Version increments on every recorded change.
func (e *Engine) Version() uint64 { return e.version }

// OnChange registers fn and returns a function that removes it.
func (e *Engine) OnChange(fn func(ChangeEvent)) (cancel func()) {
	return e.notes.add(fn)
}

// GetText exports the document.
func (e *Engine) GetText() string { return e.codec.Export(e.doc) }

// SetText replaces the document with imported markup and resets the caret to
// its start. It does not notify: the host already knows the new value.
func (e *Engine) SetText(markup string) {
	e.load(markup)
}

// do runs fn as one operation: change notifications are held until the
// outermost operation returns and the document invariant is restored
// whenever fn changed something.
func (e *Engine) do(fn func()) {
	e.notes.begin()
	defer e.notes.end(e.changeEvent)

	before := e.version
	fn()
	if e.version != before {
		e.restore()
	}
}

func (e *Engine) changed(r Reason) {
	e.version++
	e.notes.record(r)
}

func (e *Engine) changeEvent(reasons []Reason) ChangeEvent {
	ev := ChangeEvent{Version: e.version, Reasons: reasons, Value: e.GetText()}
	if r, ok := e.capture(); ok {
		ev.Selection, ev.HasSelection = r, true
	}
	return ev
}

// restore re-establishes the document invariant and keeps the selection
// pointing into the document.
func (e *Engine) restore() {
	e.doc.Normalize(e.cfg.BlockTag)
	if e.hasSel && !e.doc.ValidRange(e.sel) {
		e.collapse(e.doc.StartOf(e.doc.Root()))
	}
}

func (e *Engine) fail(op string, err error) {
	e.log.Error("editor: operation failed", "op", op, "err", err)
}

func (e *Engine) skip(op, why string) {
	e.log.Debug("editor: operation skipped", "op", op, "reason", why)
}
