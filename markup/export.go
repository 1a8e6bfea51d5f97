package markup

import (
	"fmt"
	"strings"

	"github.com/musaaj/Simaditor/document"
)

// escaper covers the five reserved characters with the entity spellings
// hosts expect.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape returns s with the reserved markup characters replaced.
func Escape(s string) string { return escaper.Replace(s) }

// Export serializes the children of t's root.
func (c *Codec) Export(t *document.Tree) string {
	return c.ExportNode(t, t.Root())
}

// ExportNode serializes id and its subtree. For the root only the children
// are written.
func (c *Codec) ExportNode(t *document.Tree, id document.NodeID) string {
	var sb strings.Builder
	c.write(&sb, t, id)
	out := sb.String()
	if c.minifier == nil {
		return out
	}
	small, err := c.minifier.String("text/html", out)
	if err != nil {
		c.opts.Logger.Warn("markup: minify failed, keeping raw output", "err", err)
		return out
	}
	return small
}

func (c *Codec) write(sb *strings.Builder, t *document.Tree, id document.NodeID) {
	switch t.Kind(id) {
	case document.KindDocument:
		for _, ch := range t.Children(id) {
			c.write(sb, t, ch)
		}
	case document.KindText:
		sb.WriteString(escaper.Replace(t.Text(id)))
	case document.KindEmbed:
		c.writeEmbed(sb, t, id)
	default:
		tag := t.Tag(id)
		sb.WriteByte('<')
		sb.WriteString(tag)
		for _, a := range t.Attrs(id) {
			fmt.Fprintf(sb, ` %s="%s"`, a.Key, escaper.Replace(a.Val))
		}
		if voidTags[tag] {
			sb.WriteString("/>")
			return
		}
		sb.WriteByte('>')
		for _, ch := range t.Children(id) {
			c.write(sb, t, ch)
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
	}
}

func (c *Codec) writeEmbed(sb *strings.Builder, t *document.Tree, id document.NodeID) {
	kind, _ := t.EmbedKindOf(id)
	switch kind {
	case document.EmbedImage:
		w, h := t.Size(id)
		src, _ := t.Attr(id, "src")
		fmt.Fprintf(sb, `<img width="%d" height="%d" style="width: %dpx; height: %dpx;" src="%s"`,
			w, h, w, h, escaper.Replace(src))
		if alt, ok := t.Attr(id, "alt"); ok && alt != "" {
			fmt.Fprintf(sb, ` alt="%s"`, escaper.Replace(alt))
		}
		sb.WriteString("/>")
	case document.EmbedMath:
		v, _ := t.Attr(id, "value")
		fmt.Fprintf(sb, `<span latex="%s">%s</span>`,
			escaper.Replace(v), escaper.Replace(c.opts.Renderer.RenderMath(v)))
	}
}

var voidTags = map[string]bool{"br": true, "hr": true, "wbr": true, "img": true}
