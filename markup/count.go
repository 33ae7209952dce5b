package markup

import (
	"regexp"
	"strings"
)

var (
	// Dashes separate words; hyphen-minus is not one of them.
	dashRE = regexp.MustCompile(`--|[‒–—―⸺⸻…]`)

	// Notes, comments and tags of both dialects vanish without leaving a
	// space, so a tag inside a word keeps it one word. Hyphens, periods and
	// commas vanish the same way.
	nonWordRE = regexp.MustCompile(`<note>.+?</note>|<comment>.+?</comment>|/\*.+?\*/|\[.+?\]|</?[A-Za-z][^<>]*>|[.,-]`)
)

// CountWords returns the number of words in markup text. Dashes (not
// hyphens) split words; markup inside a word joins its halves.
func CountWords(s string) int {
	s = dashRE.ReplaceAllString(s, " ")
	s = nonWordRE.ReplaceAllString(s, "")
	return len(strings.Fields(s))
}
