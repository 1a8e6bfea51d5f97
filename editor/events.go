package editor

import "github.com/musaaj/Simaditor/document"

// Reason names the kind of mutation behind a change notification.
type Reason string

const (
	ReasonEnter        Reason = "enter"
	ReasonBackspace    Reason = "backspace"
	ReasonInput        Reason = "input"
	ReasonDelete       Reason = "delete"
	ReasonPaste        Reason = "paste"
	ReasonFormat       Reason = "format"
	ReasonBlock        Reason = "block"
	ReasonAlign        Reason = "align"
	ReasonInsertEmbed  Reason = "insert-embed"
	ReasonInsertSymbol Reason = "insert-symbol"
	ReasonInsertList   Reason = "insert-list"
	ReasonInsertTable  Reason = "insert-table"
	ReasonEmbedRemoved Reason = "embed-removed"
	ReasonEmbedResized Reason = "embed-resized"
	ReasonEmbedValue   Reason = "embed-value"
)

// ChangeEvent is delivered to change listeners once the operation that
// caused it has returned.
type ChangeEvent struct {
	Version uint64
	// Reasons lists every mutation recorded since the previous event, in
	// order.
	Reasons []Reason

	Selection    document.Range
	HasSelection bool

	// Value is the exported markup of the whole document.
	Value string
}

type changeListener struct {
	id int
	fn func(ChangeEvent)
}

// notifier queues change reasons while operations run and delivers them when
// the outermost operation unwinds. Reasons recorded by listeners are
// delivered in a following round of the same flush.
type notifier struct {
	listeners []changeListener
	nextID    int

	depth    int
	pending  []Reason
	flushing bool
}

func (n *notifier) add(fn func(ChangeEvent)) (cancel func()) {
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, changeListener{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) begin() { n.depth++ }

func (n *notifier) end(build func([]Reason) ChangeEvent) {
	n.depth--
	if n.depth == 0 {
		n.flush(build)
	}
}

func (n *notifier) record(r Reason) { n.pending = append(n.pending, r) }

func (n *notifier) flush(build func([]Reason) ChangeEvent) {
	if n.flushing {
		return
	}
	n.flushing = true
	defer func() { n.flushing = false }()

	for len(n.pending) > 0 {
		reasons := n.pending
		n.pending = nil
		if len(n.listeners) == 0 {
			continue
		}
		ev := build(reasons)
		for _, l := range append([]changeListener(nil), n.listeners...) {
			l.fn(ev)
		}
	}
}
