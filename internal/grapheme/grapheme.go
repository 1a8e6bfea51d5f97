// Package grapheme converts between strings and grapheme-cluster offsets.
//
// Every text offset in the document model counts user-perceived characters,
// so a combining sequence or an emoji family moves and deletes as one unit.
package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the clusters in [start, end) joined back into a string.
// Out of range bounds are clamped.
func Slice(text string, start, end int) string {
	lo, hi := ByteRange(text, start, end)
	return text[lo:hi]
}

// ByteRange maps the cluster range [start, end) to byte offsets in text.
func ByteRange(text string, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	lo, hi := len(text), len(text)
	idx, off := 0, 0
	state := -1
	rest := text
	for len(rest) > 0 {
		if idx == start {
			lo = off
		}
		if idx == end {
			hi = off
			return lo, hi
		}
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		off += len(cluster)
		idx++
	}
	if start >= idx {
		lo = len(text)
	}
	return lo, hi
}

// Splice replaces clusters [start, end) of text with ins.
func Splice(text string, start, end int, ins string) string {
	lo, hi := ByteRange(text, start, end)
	return text[:lo] + ins + text[hi:]
}

// Join concatenates clusters into a single string.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// IsInvisible reports whether every rune of s is a zero-width or thin
// placeholder character the editor inserts to hold a caret.
func IsInvisible(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch r {
		case '\u200b', '\u2009', '\ufeff':
		default:
			return false
		}
	}
	return true
}
