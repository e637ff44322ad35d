// Package editor provides the editing session and its Bubble Tea component.
//
// A Session owns the document, cursor, viewport and search state and turns
// logical key events into document edits. Session.Frame composes the visible
// window into gutter text and coalesced paint spans; Model paints frames with
// lipgloss styles and adapts Bubble Tea key messages.
package editor
