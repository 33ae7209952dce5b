// Package markup converts between the inline tag dialects stored in a
// project document and ordered runs of tagged text.
//
// Only two tag kinds exist (strong and emphasis) and tags never nest. Any
// delimiter that does not close properly, and any bracket or angle sequence
// that is not a known tag, is kept as literal text so it survives a
// decode/encode cycle unchanged.
package markup
