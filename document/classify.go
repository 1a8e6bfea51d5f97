package document

// Format is a character-formatting wrapper type.
type Format uint8

const (
	Bold Format = iota + 1
	Italic
	Underline
	Superscript
	Subscript
)

// Tag returns the canonical markup tag for f.
func (f Format) Tag() string {
	switch f {
	case Bold:
		return "b"
	case Italic:
		return "i"
	case Underline:
		return "u"
	case Superscript:
		return "sup"
	case Subscript:
		return "sub"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Superscript:
		return "superscript"
	case Subscript:
		return "subscript"
	default:
		return "format(?)"
	}
}

// FormatOf maps a markup tag to its Format. strong and em are accepted as
// aliases of b and i.
func FormatOf(tag string) (Format, bool) {
	switch tag {
	case "b", "strong":
		return Bold, true
	case "i", "em":
		return Italic, true
	case "u":
		return Underline, true
	case "sup":
		return Superscript, true
	case "sub":
		return Subscript, true
	default:
		return 0, false
	}
}

var blockTags = map[string]bool{
	"p": true, "div": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
	"ul": true, "ol": true, "li": true,
	"table": true,
}

// Tags rendered with display:block; li and table lay out as list-item and
// table.
var blockLayoutTags = map[string]bool{
	"p": true, "div": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
	"ul": true, "ol": true,
}

// IsBlockTag reports whether tag denotes a Block.
func IsBlockTag(tag string) bool { return blockTags[tag] }

// HasBlockLayout reports whether tag lays out as a plain block box, the
// precondition for changing a block's tag or alignment.
func HasBlockLayout(tag string) bool { return blockLayoutTags[tag] }

// IsParagraphTag reports whether a block with this tag holds inline content
// directly.
func IsParagraphTag(tag string) bool {
	return blockLayoutTags[tag] && tag != "ul" && tag != "ol"
}

// IsCellTag reports whether tag is a table cell.
func IsCellTag(tag string) bool { return tag == "td" || tag == "th" }

func isVoidTag(tag string) bool {
	switch tag {
	case "br", "hr", "img", "wbr":
		return true
	}
	return false
}

// IsBlock reports whether id is a Block.
func (t *Tree) IsBlock(id NodeID) bool { return t.Kind(id) == KindBlock }

// IsAtomicEmbed reports whether id is an image or math embed.
func (t *Tree) IsAtomicEmbed(id NodeID) bool { return t.Kind(id) == KindEmbed }

func (t *Tree) IsText(id NodeID) bool { return t.Kind(id) == KindText }

func (t *Tree) IsWrapper(id NodeID) bool { return t.Kind(id) == KindWrapper }

// IsLineBreak reports whether id is a <br> element.
func (t *Tree) IsLineBreak(id NodeID) bool {
	return t.Kind(id) == KindElement && t.Tag(id) == "br"
}

// FormatOfNode returns the Format of a wrapper node.
func (t *Tree) FormatOfNode(id NodeID) (Format, bool) {
	if t.Kind(id) != KindWrapper {
		return 0, false
	}
	return FormatOf(t.Tag(id))
}
