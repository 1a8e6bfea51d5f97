package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/musaaj/Simaditor/document"
	"github.com/musaaj/Simaditor/markup"
)

// maxLabelCells bounds the width of an embed label.
const maxLabelCells = 32

// projection renders a document as terminal rows. Every line node becomes
// one row (more when it holds line breaks); the cells of a table share rows.
type projection struct {
	st      Style
	doc     *document.Tree
	math    markup.MathRenderer
	width   int
	focused bool

	caret        document.Pos
	hasCaret     bool
	selLo, selHi document.Pos
	hasRange     bool

	rows      []string
	hits      []rowHit
	cursorRow int
}

// rowHit maps a rendered row back to the line it shows: sub is the row's
// index among the line's rows and indent the width of its prefix.
type rowHit struct {
	line   document.NodeID
	sub    int
	indent int
}

func (m *Model) renderContent() string {
	if m.eng == nil {
		return ""
	}
	p := m.projection()
	p.render()
	m.cursorRow = max(p.cursorRow, 0)
	m.hits = p.hits
	return strings.Join(p.rows, "\n")
}

func (m *Model) projection() *projection {
	p := &projection{
		st:        m.cfg.Style,
		doc:       m.eng.Document(),
		math:      m.cfg.MathRenderer,
		width:     m.viewport.Width,
		focused:   m.focused,
		cursorRow: -1,
	}
	if p.math == nil {
		p.math = markup.UnicodeMath
	}
	if r, ok := m.eng.Selection(); ok {
		p.caret, p.hasCaret = r.Focus, true
		if !p.doc.IsCollapsed(r) {
			p.selLo, p.selHi = p.doc.Ordered(r)
			p.hasRange = true
		}
	}
	return p
}

func (p *projection) render() {
	lines := p.doc.Lines()
	for i := 0; i < len(lines); {
		if table := p.tableOf(lines[i]); table != document.NoNode {
			j := i
			for j < len(lines) && p.tableOf(lines[j]) == table {
				j++
			}
			p.table(lines[i:j])
			i = j
			continue
		}
		text, cursor := p.line(lines[i])
		prefix := p.prefix(lines[i])
		p.emit(p.align(lines[i], prefix+text), cursor, lines[i], lipgloss.Width(prefix))
		i++
	}
}

// emit appends the rows of text shown for line. cursor is the index of the
// row holding the caret, or -1.
func (p *projection) emit(text string, cursor int, line document.NodeID, indent int) {
	if cursor >= 0 {
		p.cursorRow = len(p.rows) + cursor
	}
	rows := strings.Split(text, "\n")
	for i := range rows {
		p.hits = append(p.hits, rowHit{line: line, sub: i, indent: indent})
	}
	p.rows = append(p.rows, rows...)
}

// line renders the content of one line node and reports on which of its
// rows the caret sits.
func (p *projection) line(id document.NodeID) (string, int) {
	doc := p.doc
	ln := doc.Line(id)
	base := p.st.Text
	if headingLevel(doc.Tag(id)) > 0 {
		base = p.st.Heading
	}

	cursorCol, cursorRow := -1, -1
	if p.hasCaret && doc.LineOf(doc.ContainerOf(p.caret)) == id {
		cursorCol = ln.Col(doc, p.caret)
	}

	var sb strings.Builder
	row, cells := 0, 0
	for i, unit := range ln.Units {
		n := p.unitNode(ln, i)
		st := p.format(base, n, id)
		var text string
		switch unit {
		case document.ObjectUnit:
			st = p.st.Embed
			text = p.label(n)
		case "\n":
			text = ""
		default:
			text = displayUnit(unit, cells)
		}
		if p.hasRange && doc.ComparePos(p.selLo, ln.Slots[i]) <= 0 && doc.ComparePos(ln.Slots[i+1], p.selHi) <= 0 {
			st = p.st.Selection.Inherit(st)
		}
		if i == cursorCol {
			cursorRow = row
			if p.focused {
				if text == "" {
					text = " "
				}
				st = p.st.Cursor.Inherit(st)
			}
		}
		if text != "" {
			sb.WriteString(st.Render(text))
		}
		if unit == "\n" {
			sb.WriteByte('\n')
			row++
			cells = 0
			continue
		}
		cells += unitCells(unit, cells)
	}
	if cursorCol == len(ln.Units) {
		cursorRow = row
		if p.focused {
			sb.WriteString(p.st.Cursor.Inherit(base).Render(" "))
		}
	}
	return sb.String(), cursorRow
}

// unitNode returns the leaf behind ln.Units[i].
func (p *projection) unitNode(ln document.Line, i int) document.NodeID {
	doc := p.doc
	next := ln.Slots[i+1]
	switch {
	case doc.IsText(next.Node) && next.Offset > 0:
		return next.Node
	case doc.IsText(next.Node):
		// the stop after an embed is reported at the start of the next run
		return p.leafBefore(next.Node)
	default:
		return doc.Child(next.Node, next.Offset-1)
	}
}

func (p *projection) leafBefore(id document.NodeID) document.NodeID {
	doc := p.doc
	n := id
	for doc.PrevSibling(n) == document.NoNode {
		if n = doc.Parent(n); n == document.NoNode {
			return document.NoNode
		}
	}
	n = doc.PrevSibling(n)
	for doc.ChildCount(n) > 0 && !doc.IsAtomicEmbed(n) {
		n = doc.LastChild(n)
	}
	return n
}

// format applies the character formats enclosing n below line.
func (p *projection) format(st lipgloss.Style, n, line document.NodeID) lipgloss.Style {
	for a := p.doc.Parent(n); a != document.NoNode && a != line; a = p.doc.Parent(a) {
		f, ok := p.doc.FormatOfNode(a)
		if !ok {
			continue
		}
		switch f {
		case document.Bold:
			st = st.Bold(true)
		case document.Italic:
			st = st.Italic(true)
		case document.Underline:
			st = st.Underline(true)
		case document.Superscript, document.Subscript:
			st = st.Faint(true)
		}
	}
	return st
}

func (p *projection) label(n document.NodeID) string {
	doc := p.doc
	kind, _ := doc.EmbedKindOf(n)
	var s string
	switch kind {
	case document.EmbedImage:
		w, h := doc.Size(n)
		s = "[img " + strconv.Itoa(w) + "x" + strconv.Itoa(h) + "]"
		if alt, _ := doc.Attr(n, "alt"); alt != "" {
			s = "[img " + alt + " " + strconv.Itoa(w) + "x" + strconv.Itoa(h) + "]"
		}
	case document.EmbedMath:
		v, _ := doc.Attr(n, "value")
		s = p.math.RenderMath(v)
	}
	return runewidth.Truncate(s, maxLabelCells, "…")
}

// prefix renders quote bars, list markers and heading hashes for line id.
func (p *projection) prefix(id document.NodeID) string {
	doc := p.doc
	quotes, lists := 0, 0
	for a := doc.Parent(id); a != document.NoNode && a != doc.Root(); a = doc.Parent(a) {
		switch doc.Tag(a) {
		case "blockquote":
			quotes++
		case "ul", "ol":
			lists++
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("│ ", quotes))
	tag := doc.Tag(id)
	switch {
	case tag == "li":
		sb.WriteString(strings.Repeat("  ", max(lists-1, 0)))
		if doc.Tag(doc.Parent(id)) == "ol" {
			sb.WriteString(strconv.Itoa(doc.IndexOf(id)+1) + ". ")
		} else {
			sb.WriteString("• ")
		}
	case tag == "blockquote":
		sb.WriteString("│ ")
	case headingLevel(tag) > 0:
		sb.WriteString(strings.Repeat("#", headingLevel(tag)) + " ")
	}
	if sb.Len() == 0 {
		return ""
	}
	return p.st.Marker.Render(sb.String())
}

// align honours text-align when the width is known.
func (p *projection) align(id document.NodeID, text string) string {
	if p.width <= 0 {
		return text
	}
	v, _ := p.doc.Style(id, "text-align")
	switch v {
	case "center":
		return lipgloss.PlaceHorizontal(p.width, lipgloss.Center, text)
	case "right", "end":
		return lipgloss.PlaceHorizontal(p.width, lipgloss.Right, text)
	}
	return text
}

func (p *projection) tableOf(id document.NodeID) document.NodeID {
	if !document.IsCellTag(p.doc.Tag(id)) {
		return document.NoNode
	}
	for a := p.doc.Parent(id); a != document.NoNode; a = p.doc.Parent(a) {
		if p.doc.Tag(a) == "table" {
			return a
		}
	}
	return document.NoNode
}

// table renders cells row by row with columns padded to a common width.
// Line breaks inside cells are flattened.
func (p *projection) table(cells []document.NodeID) {
	type cell struct {
		id     document.NodeID
		text   string
		cursor bool
	}
	var grid [][]cell
	var last document.NodeID
	for _, c := range cells {
		if tr := p.doc.Parent(c); tr != last || len(grid) == 0 {
			grid = append(grid, nil)
			last = tr
		}
		text, cursor := p.line(c)
		row := &grid[len(grid)-1]
		*row = append(*row, cell{id: c, text: strings.ReplaceAll(text, "\n", " "), cursor: cursor >= 0})
	}

	var widths []int
	for _, row := range grid {
		for k, c := range row {
			if k == len(widths) {
				widths = append(widths, 1)
			}
			widths[k] = max(widths[k], lipgloss.Width(c.text))
		}
	}

	bar := p.st.Border.Render("│")
	for _, row := range grid {
		var sb strings.Builder
		cursor := -1
		sb.WriteString(bar)
		for k, c := range row {
			sb.WriteString(c.text)
			sb.WriteString(strings.Repeat(" ", widths[k]-lipgloss.Width(c.text)))
			sb.WriteString(bar)
			if c.cursor {
				cursor = 0
			}
		}
		p.emit(sb.String(), cursor, row[0].id, 1)
	}
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
