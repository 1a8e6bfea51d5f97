package editor

import (
	"encoding/base64"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/musaaj/Simaditor/document"
)

// InsertImage inserts an image embed referencing src at the caret.
func (e *Engine) InsertImage(src string) {
	size := e.cfg.ImageSize
	e.insertEmbed("insert image", func() document.NodeID {
		return e.doc.NewImage(src, size, size)
	})
}

// InsertMath inserts a math embed holding the TeX expression latex.
func (e *Engine) InsertMath(latex string) {
	e.insertEmbed("insert math", func() document.NodeID {
		return e.doc.NewMath(latex)
	})
}

// insertEmbed places the embed built by build at a collapsed caret and
// follows it with a zero-width run that takes the caret.
func (e *Engine) insertEmbed(op string, build func() document.NodeID) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		if !e.doc.IsCollapsed(r) {
			e.skip(op, "selection is not collapsed")
			return
		}
		doc := e.doc
		em := build()
		after, err := doc.InsertAt(r.Anchor, em)
		if err != nil {
			_ = doc.Remove(em)
			e.fail(op, err)
			return
		}
		z := doc.NewText(document.ZeroWidthSpace)
		if _, err := doc.InsertAt(after, z); err != nil {
			e.fail(op, err)
			return
		}
		e.link(em)
		e.collapse(document.Pos{Node: z, Offset: 1})
		e.changed(ReasonInsertEmbed)
	})
}

// InsertMathExpression asks the MathInput for an expression and inserts it
// where the caret was when asked.
func (e *Engine) InsertMathExpression() {
	if e.cfg.MathInput == nil {
		e.skip("insert math expression", "no math input configured")
		return
	}
	restore := e.bookmark()
	e.cfg.MathInput.EditMath("", func(latex string, ok bool) {
		if !ok || strings.TrimSpace(latex) == "" {
			return
		}
		restore()
		e.InsertMath(latex)
	})
}

// InsertBase64Image asks the FilePicker for an image and inserts it inline
// as a data URL.
func (e *Engine) InsertBase64Image() {
	if e.cfg.FilePicker == nil {
		e.skip("insert base64 image", "no file picker configured")
		return
	}
	restore := e.bookmark()
	e.cfg.FilePicker.PickFile(func(data []byte, name string, err error) {
		if err != nil {
			e.log.Warn("editor: file picker failed", "err", err)
			return
		}
		src, ok := dataURL(data, name)
		if !ok {
			e.skip("insert base64 image", "not an image: "+name)
			return
		}
		restore()
		e.InsertImage(src)
	})
}

// dataURL encodes data as a data: URL when it sniffs (or is named) as an
// image.
func dataURL(data []byte, name string) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	typ := http.DetectContentType(data)
	if !strings.HasPrefix(typ, "image/") {
		typ = mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	}
	if i := strings.IndexByte(typ, ';'); i >= 0 {
		typ = typ[:i]
	}
	if !strings.HasPrefix(typ, "image/") {
		return "", false
	}
	return "data:" + typ + ";base64," + base64.StdEncoding.EncodeToString(data), true
}

// InsertSymbol asks the SymbolPicker for a symbol and types it where the
// caret was when asked.
func (e *Engine) InsertSymbol() {
	if e.cfg.SymbolPicker == nil {
		e.skip("insert symbol", "no symbol picker configured")
		return
	}
	if r, ok := e.capture(); ok && !e.doc.IsCollapsed(r) {
		e.skip("insert symbol", "selection is not collapsed")
		return
	}
	restore := e.bookmark()
	e.cfg.SymbolPicker.PickSymbol(func(symbol string, ok bool) {
		if !ok || symbol == "" {
			return
		}
		restore()
		e.do(func() {
			r, ok := e.capture()
			if !ok {
				return
			}
			if !e.doc.IsCollapsed(r) {
				e.skip("insert symbol", "selection is not collapsed")
				return
			}
			sym := e.doc.NewText(symbol)
			if _, err := e.doc.InsertAt(r.Anchor, sym); err != nil {
				e.fail("insert symbol", err)
				return
			}
			e.collapse(document.Pos{Node: sym, Offset: e.doc.Len(sym)})
			e.changed(ReasonInsertSymbol)
		})
	})
}

// bookmark returns a function that puts back the current selection if it is
// still valid.
func (e *Engine) bookmark() func() {
	r, ok := e.capture()
	return func() {
		if ok && e.doc.ValidRange(r) {
			e.sel, e.hasSel = r, true
		}
	}
}

// InsertList inserts an empty ul or ol list at the caret and moves into its
// item.
func (e *Engine) InsertList(kind string) {
	kind = strings.ToLower(kind)
	if kind != "ul" && kind != "ol" {
		e.skip("insert list", "unknown list kind "+kind)
		return
	}
	e.insertContainer("insert list", ReasonInsertList, func() document.NodeID {
		list := e.doc.NewElement(kind)
		li := e.doc.NewElement("li")
		_ = e.doc.AppendChild(li, e.doc.NewElement("br"))
		_ = e.doc.AppendChild(list, li)
		return list
	})
}

// TableCellWidth and TableCellHeight size the cells of inserted tables.
const (
	TableCellWidth  = 70
	TableCellHeight = 30
)

// InsertTable inserts a rows x cols table at the caret and moves into its
// first cell.
func (e *Engine) InsertTable(rows, cols int) {
	if rows < 1 || cols < 1 {
		e.skip("insert table", "empty grid")
		return
	}
	e.insertContainer("insert table", ReasonInsertTable, func() document.NodeID {
		doc := e.doc
		table := doc.NewElement("table")
		_ = doc.SetAttr(table, "border", "1")
		_ = doc.SetStyle(table, "float", "left")
		tbody := doc.NewElement("tbody")
		_ = doc.AppendChild(table, tbody)
		for range rows {
			tr := doc.NewElement("tr")
			for range cols {
				td := doc.NewElement("td")
				_ = doc.SetAttr(td, "width", strconv.Itoa(TableCellWidth))
				_ = doc.SetAttr(td, "height", strconv.Itoa(TableCellHeight))
				_ = doc.AppendChild(tr, td)
			}
			_ = doc.AppendChild(tbody, tr)
		}
		return table
	})
}

// insertContainer places a list or table. Inside a paragraph-like block the
// block is split around it and halves left empty are dropped; inside a list
// item it nests in place; anywhere else it goes in at the caret.
func (e *Engine) insertContainer(op string, reason Reason, build func() document.NodeID) {
	e.do(func() {
		r, ok := e.capture()
		if !ok {
			return
		}
		p := r.Anchor
		if !e.doc.IsCollapsed(r) {
			if p, ok = e.deleteSelection(r); !ok {
				return
			}
		}
		doc := e.doc
		c := build()
		container := doc.ContainerOf(p)
		block := doc.BlockOf(container)

		switch {
		case block != document.NoNode && doc.LineOf(container) == block &&
			document.IsParagraphTag(doc.Tag(block)):
			second, err := doc.SplitBlockAt(block, p)
			if err != nil {
				_ = doc.Remove(c)
				e.fail(op, err)
				return
			}
			if err := doc.InsertAfter(block, c); err != nil {
				e.fail(op, err)
				return
			}
			for _, half := range []document.NodeID{block, second} {
				doc.PruneEmpty(half, document.NoNode)
				if !doc.HasMeaningfulContent(half) {
					_ = doc.Remove(half)
				}
			}
			e.relink(second)
		default:
			if _, err := doc.InsertAt(p, c); err != nil {
				_ = doc.Remove(c)
				e.fail(op, err)
				return
			}
		}
		e.setRangeInto(c)
		e.changed(reason)
	})
}

// RemoveEmbed deletes the embed with the given identity, as its own delete
// control would.
func (e *Engine) RemoveEmbed(embedID string) {
	e.do(func() {
		em, ok := e.doc.FindEmbed(embedID)
		if !ok {
			e.skip("remove embed", "unknown embed "+embedID)
			return
		}
		line := e.doc.LineOf(em)
		if err := e.doc.Remove(em); err != nil {
			e.fail("remove embed", err)
			return
		}
		e.tidy(line, document.NoNode)
		if _, ok := e.capture(); !ok {
			e.collapse(e.clamp(document.Pos{}, line))
		}
	})
}

// ResizeEmbed applies one interactive resize step to an image.
func (e *Engine) ResizeEmbed(embedID string, width, height int) {
	e.do(func() {
		em, ok := e.doc.FindEmbed(embedID)
		if !ok {
			e.skip("resize embed", "unknown embed "+embedID)
			return
		}
		if err := e.doc.ResizeEmbed(em, width, height); err != nil {
			e.fail("resize embed", err)
		}
	})
}

// UpdateMath replaces the expression of a math embed.
func (e *Engine) UpdateMath(embedID, latex string) {
	e.do(func() {
		em, ok := e.doc.FindEmbed(embedID)
		if !ok {
			e.skip("update math", "unknown embed "+embedID)
			return
		}
		if err := e.doc.SetEmbedValue(em, latex); err != nil {
			e.fail("update math", err)
			return
		}
		e.changed(ReasonEmbedValue)
	})
}
