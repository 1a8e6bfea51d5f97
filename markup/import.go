package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/musaaj/Simaditor/document"
)

// Import sanitises and parses markup into a normalized tree. It never fails:
// markup the parser cannot make sense of is imported best effort, and an
// empty result still holds one placeholder block.
func (c *Codec) Import(markup string) *document.Tree {
	t := c.Fragment(markup)
	if res := t.Normalize(c.opts.BlockTag); res.Wrapped != document.NoNode {
		c.opts.Logger.Debug("markup: wrapped leading inline content", "block", c.opts.BlockTag)
	}
	return t
}

// Fragment parses markup like Import but leaves the top level as parsed, so
// inline-only markup stays inline. Hosts use it to graft pasted content.
func (c *Codec) Fragment(markup string) *document.Tree {
	t := document.New()
	if !c.opts.Trusted {
		markup = c.policy.Sanitize(markup)
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		c.opts.Logger.Warn("markup: parse failed, importing as text", "err", err)
		_ = t.AppendChild(t.Root(), t.NewText(markup))
		return t
	}
	for _, n := range nodes {
		c.convert(t, t.Root(), n)
	}
	return t
}

// convert appends the tree rendition of n to parent.
func (c *Codec) convert(t *document.Tree, parent document.NodeID, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" || (skipsWhitespace(t.Tag(parent)) && strings.TrimSpace(n.Data) == "") {
			return
		}
		c.appendChild(t, parent, t.NewText(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	tag := strings.ToLower(n.Data)
	var id document.NodeID
	switch tag {
	case "script", "style", "template", "noscript", "head", "title", "meta", "link":
		c.opts.Logger.Debug("markup: dropped element", "tag", tag)
		return
	case "img":
		c.appendChild(t, parent, c.image(t, n))
		return
	case "span":
		if v, ok := attr(n, "latex"); ok {
			c.appendChild(t, parent, t.NewMath(v))
			return
		}
		id = t.NewElement(tag)
	case "div":
		id = t.NewElement(c.opts.BlockTag)
	default:
		id = t.NewElement(tag)
	}

	for _, a := range n.Attr {
		if a.Namespace != "" {
			continue
		}
		val := a.Val
		if a.Key == "style" {
			val = document.FormatStyle(document.ParseStyle(val))
			if val == "" {
				continue
			}
		}
		_ = t.SetAttr(id, a.Key, val)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.convert(t, id, ch)
	}
	c.appendChild(t, parent, id)
}

func (c *Codec) appendChild(t *document.Tree, parent, child document.NodeID) {
	if err := t.AppendChild(parent, child); err != nil {
		c.opts.Logger.Debug("markup: dropped node", "parent", t.Tag(parent), "child", t.Tag(child), "err", err)
	}
}

// image builds an image embed. Size comes from the width and height
// attributes, then from inline style, then from the default.
func (c *Codec) image(t *document.Tree, n *html.Node) document.NodeID {
	src, _ := attr(n, "src")
	style, _ := attr(n, "style")
	decls := document.ParseStyle(style)
	size := func(key string) int {
		if v, ok := attr(n, key); ok {
			if px := document.PxValue(v); px > 0 {
				return px
			}
		}
		for _, d := range decls {
			if d.Key == key {
				if px := document.PxValue(d.Val); px > 0 {
					return px
				}
			}
		}
		return c.opts.ImageSize
	}
	id := t.NewImage(src, size("width"), size("height"))
	if alt, ok := attr(n, "alt"); ok && alt != "" {
		_ = t.SetAttr(id, "alt", alt)
	}
	return id
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// skipsWhitespace reports whether whitespace text directly under tag is
// indentation rather than content.
func skipsWhitespace(tag string) bool {
	switch tag {
	case "table", "thead", "tbody", "tfoot", "tr", "ul", "ol":
		return true
	}
	return false
}
