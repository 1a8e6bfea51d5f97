// Package editor provides the editing engine for a document tree and a
// Bubble Tea component hosting it.
//
// Engine applies editing operations (paragraph breaks, merges, character
// and block formatting, embed, list and table insertion) to a
// document.Tree while keeping its invariant: every top-level child is a
// block and there is at least one. Operations never return errors; a
// missing or invalid selection makes them no-ops and tree errors are
// logged.
//
// Change listeners registered through Config.OnChange or Engine.OnChange
// receive one ChangeEvent per outermost operation, after it has returned.
//
// Model renders the document into a viewport and maps key and mouse input
// onto Engine operations.
package editor
