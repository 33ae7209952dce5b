// Package buffer implements the pure, grapheme-accurate text model a
// formatting session edits.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// Markup-level code works in rune offsets and converts through
// RuneOffsetFromPos / PosFromRuneOffset.
package buffer
