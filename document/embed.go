package document

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// EmbedKind distinguishes atomic embeds.
type EmbedKind uint8

const (
	EmbedImage EmbedKind = iota + 1
	EmbedMath
)

func (k EmbedKind) String() string {
	switch k {
	case EmbedImage:
		return "image"
	case EmbedMath:
		return "math"
	default:
		return "embed(?)"
	}
}

// MinEmbedSize is the smallest width or height an image may be resized to.
const MinEmbedSize = 20

// EmbedEventType names an embed lifecycle event.
type EmbedEventType uint8

const (
	EmbedRemoved EmbedEventType = iota + 1
	EmbedResized
)

func (e EmbedEventType) String() string {
	switch e {
	case EmbedRemoved:
		return "removed"
	case EmbedResized:
		return "resize"
	default:
		return "event(?)"
	}
}

// EmbedEvent is delivered to embed listeners.
type EmbedEvent struct {
	Type   EmbedEventType
	Node   NodeID
	Kind   EmbedKind
	ID     string
	Width  int
	Height int
}

// EmbedListener observes one embed.
type EmbedListener func(EmbedEvent)

type keyedListener struct {
	key string
	fn  EmbedListener
}

type embedState struct {
	kind      EmbedKind
	id        string
	removed   bool
	listeners []keyedListener
}

func (t *Tree) newEmbed(kind EmbedKind, attrs []Attr) NodeID {
	tag := "img"
	if kind == EmbedMath {
		tag = "math"
	}
	return t.alloc(node{
		kind:  KindEmbed,
		tag:   tag,
		attrs: attrs,
		embed: &embedState{kind: kind, id: uuid.NewString()},
	})
}

// NewImage allocates a detached image embed.
func (t *Tree) NewImage(src string, width, height int) NodeID {
	return t.newEmbed(EmbedImage, []Attr{
		{Key: "src", Val: src},
		{Key: "width", Val: strconv.Itoa(width)},
		{Key: "height", Val: strconv.Itoa(height)},
	})
}

// NewMath allocates a detached math embed holding a TeX expression.
func (t *Tree) NewMath(value string) NodeID {
	return t.newEmbed(EmbedMath, []Attr{{Key: "value", Val: value}})
}

// EmbedKindOf returns the kind of an embed node.
func (t *Tree) EmbedKindOf(id NodeID) (EmbedKind, bool) {
	n := t.get(id)
	if n == nil || n.kind != KindEmbed {
		return 0, false
	}
	return n.embed.kind, true
}

// EmbedID returns the identity string of an embed. Clones get new ids.
func (t *Tree) EmbedID(id NodeID) string {
	n := t.get(id)
	if n == nil || n.kind != KindEmbed {
		return ""
	}
	return n.embed.id
}

// FindEmbed returns the live embed with the given identity.
func (t *Tree) FindEmbed(embedID string) (NodeID, bool) {
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.live && n.kind == KindEmbed && n.embed.id == embedID {
			return NodeID(i), true
		}
	}
	return NoNode, false
}

// Embeds lists the embeds under id in document order.
func (t *Tree) Embeds(id NodeID) []NodeID {
	var out []NodeID
	t.Walk(id, func(n NodeID) bool {
		if t.Kind(n) == KindEmbed {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Listen registers fn on an embed under key, replacing any listener already
// registered under the same key.
func (t *Tree) Listen(id NodeID, key string, fn EmbedListener) error {
	n := t.get(id)
	if n == nil {
		return wrap("listen", id, ErrUnknownNode)
	}
	if n.kind != KindEmbed {
		return wrap("listen", id, ErrInvalidNodeKind)
	}
	for i := range n.embed.listeners {
		if n.embed.listeners[i].key == key {
			n.embed.listeners[i].fn = fn
			return nil
		}
	}
	n.embed.listeners = append(n.embed.listeners, keyedListener{key: key, fn: fn})
	return nil
}

// ListenerCount returns how many listeners an embed has.
func (t *Tree) ListenerCount(id NodeID) int {
	n := t.get(id)
	if n == nil || n.kind != KindEmbed {
		return 0
	}
	return len(n.embed.listeners)
}

// Size returns an image's width and height attributes.
func (t *Tree) Size(id NodeID) (w, h int) {
	w = PxValue(t.attrOrEmpty(id, "width"))
	h = PxValue(t.attrOrEmpty(id, "height"))
	return w, h
}

func (t *Tree) attrOrEmpty(id NodeID, key string) string {
	v, _ := t.Attr(id, key)
	return v
}

// ResizeEmbed applies one resize step to an image. Dimensions below
// MinEmbedSize are clamped. Listeners receive a resize event.
func (t *Tree) ResizeEmbed(id NodeID, width, height int) error {
	kind, ok := t.EmbedKindOf(id)
	if !ok || kind != EmbedImage {
		if t.get(id) == nil {
			return wrap("resize", id, ErrUnknownNode)
		}
		return wrap("resize", id, ErrInvalidNodeKind)
	}
	width = max(width, MinEmbedSize)
	height = max(height, MinEmbedSize)
	_ = t.SetAttr(id, "width", strconv.Itoa(width))
	_ = t.SetAttr(id, "height", strconv.Itoa(height))
	t.dispatch(t.embedEvent(id, EmbedResized))
	return nil
}

// SetEmbedValue replaces a math embed's expression.
func (t *Tree) SetEmbedValue(id NodeID, value string) error {
	kind, ok := t.EmbedKindOf(id)
	if !ok || kind != EmbedMath {
		return wrap("set value", id, ErrInvalidNodeKind)
	}
	return t.SetAttr(id, "value", value)
}

func (t *Tree) embedEvent(id NodeID, typ EmbedEventType) EmbedEvent {
	n := &t.nodes[id]
	ev := EmbedEvent{Type: typ, Node: id, Kind: n.embed.kind, ID: n.embed.id}
	for _, a := range n.attrs {
		switch a.Key {
		case "width":
			ev.Width = PxValue(a.Val)
		case "height":
			ev.Height = PxValue(a.Val)
		}
	}
	return ev
}

func (t *Tree) dispatch(ev EmbedEvent) {
	st := t.nodes[ev.Node].embed
	if st == nil {
		return
	}
	for _, l := range append([]keyedListener(nil), st.listeners...) {
		l.fn(ev)
	}
}

// PxValue parses "120", "120px" or "120.5px" into whole pixels.
func PxValue(s string) int {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return 0
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
