// Package document implements the rich-text document model edited by Simaditor.
//
// A Tree is an arena of nodes addressed by stable NodeIDs. The root is a
// Document whose children are Blocks; Blocks hold inline content (text runs,
// formatting wrappers, atomic embeds) or structural elements (list items,
// table rows). Positions are (node, offset) pairs: offsets count grapheme
// clusters inside text runs and child indexes inside elements.
//
// The package is not safe for concurrent use.
package document
