package editor

import "github.com/musaaj/Simaditor/document"

// listenKey identifies the engine's listener on each embed. Listen replaces
// by key, so relinking an embed never stacks a second forwarder.
const listenKey = "editor"

// link makes em report removal and resize as content changes.
func (e *Engine) link(em document.NodeID) {
	if err := e.doc.Listen(em, listenKey, e.forwardEmbed); err != nil {
		e.fail("link embed", err)
	}
}

// relink links every embed under id.
func (e *Engine) relink(id document.NodeID) {
	if !e.doc.Valid(id) {
		return
	}
	for _, em := range e.doc.Embeds(id) {
		e.link(em)
	}
}

func (e *Engine) forwardEmbed(ev document.EmbedEvent) {
	e.notes.begin()
	defer e.notes.end(e.changeEvent)
	switch ev.Type {
	case document.EmbedRemoved:
		e.changed(ReasonEmbedRemoved)
	case document.EmbedResized:
		e.changed(ReasonEmbedResized)
	}
}
