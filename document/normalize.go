package document

import "strings"

const (
	// ThinSpace fills an otherwise empty document so it has a caret target.
	ThinSpace = "\u2009"
	// ZeroWidthSpace holds the caret inside fresh wrappers and after embeds.
	ZeroWidthSpace = "\u200b"
)

// NormalizeResult reports what Normalize changed.
type NormalizeResult struct {
	Changed bool
	// Wrapped is the block created around the document's leading inline
	// content, if any.
	Wrapped NodeID
}

// Normalize restores the document invariant: every root child is a Block and
// there is at least one. Runs of inline root children are wrapped into a new
// block of tag blockTag; whitespace-only text carrying a newline is markup
// indentation and is dropped. Normalize is idempotent.
func (t *Tree) Normalize(blockTag string) NormalizeResult {
	var res NormalizeResult
	if blockTag == "" {
		blockTag = "p"
	}

	for _, c := range t.Children(t.root) {
		if t.IsText(c) && isIndentation(t.Text(c)) {
			_ = t.Remove(c)
			res.Changed = true
		}
	}

	kids := t.Children(t.root)
	for i := 0; i < len(kids); {
		if t.IsBlock(kids[i]) {
			i++
			continue
		}
		j := i
		for j < len(kids) && !t.IsBlock(kids[j]) {
			j++
		}
		block := t.NewElement(blockTag)
		_ = t.InsertBefore(kids[i], block)
		for _, c := range kids[i:j] {
			_ = t.AppendChild(block, c)
		}
		if i == 0 {
			res.Wrapped = block
		}
		res.Changed = true
		i = j
	}

	if t.ChildCount(t.root) == 0 {
		block := t.NewElement(blockTag)
		_ = t.AppendChild(t.root, block)
		_ = t.AppendChild(block, t.NewText(ThinSpace))
		res.Changed = true
	}
	return res
}

func isIndentation(s string) bool {
	if !strings.ContainsAny(s, "\n\r") {
		return false
	}
	return strings.TrimLeft(s, " \t\n\r\f") == ""
}

// HasMeaningfulContent reports whether id holds any non-empty text run or any
// embed. Line breaks and empty wrappers do not count.
func (t *Tree) HasMeaningfulContent(id NodeID) bool {
	found := false
	t.Walk(id, func(n NodeID) bool {
		if found {
			return false
		}
		switch t.Kind(n) {
		case KindText:
			found = t.Text(n) != ""
		case KindEmbed:
			found = true
		}
		return !found
	})
	return found
}

// JoinText merges the text run after left into left and returns whether it
// did.
func (t *Tree) JoinText(left NodeID) bool {
	right := t.NextSibling(left)
	if !t.IsText(left) || !t.IsText(right) {
		return false
	}
	t.nodes[left].text += t.nodes[right].text
	_ = t.Remove(right)
	return true
}

// PruneEmpty removes childless wrappers and empty text runs under id, except
// keep.
func (t *Tree) PruneEmpty(id NodeID, keep NodeID) {
	for _, c := range t.Children(id) {
		t.PruneEmpty(c, keep)
		if c == keep || t.Contains(c, keep) {
			continue
		}
		switch {
		case t.IsText(c) && t.Text(c) == "":
			_ = t.Remove(c)
		case t.IsWrapper(c) && t.ChildCount(c) == 0:
			_ = t.Remove(c)
		}
	}
}

// EnsurePlaceholder appends a <br> to a block without meaningful content so
// it keeps a line box. It reports whether one was added.
func (t *Tree) EnsurePlaceholder(block NodeID) bool {
	if t.HasMeaningfulContent(block) {
		return false
	}
	found := false
	t.Walk(block, func(n NodeID) bool {
		found = found || t.IsLineBreak(n)
		return !found
	})
	if found {
		return false
	}
	return t.AppendChild(block, t.NewElement("br")) == nil
}
