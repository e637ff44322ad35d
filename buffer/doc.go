// Package buffer implements the document model: an ordered list of rows, each
// holding its raw text, the tab-expanded rendered text and one highlight
// category per rendered rune.
//
// Coordinates are 0-based (Row, Col) with Col counted in raw runes. Rendered
// columns are converted with VisualCol and CharIndex.
package buffer
