package markup

import (
	"fmt"
	"strings"
)

// Dialect describes how tags are spelled in stored text.
type Dialect struct {
	Name string

	left, right string
	names       [3]string // indexed by Tag; None is unused

	// Comments lists the delimiter pairs of notes that are stored but never
	// counted.
	Comments []Comment
}

// Comment is a pair of comment delimiters.
type Comment struct {
	Open, Close string
}

var (
	// Bracket is the yWriter dialect: [b]..[/b], [i]..[/i], /* comments */.
	Bracket = Dialect{
		Name:     "bracket",
		left:     "[",
		right:    "]",
		names:    [3]string{Strong: "b", Emphasis: "i"},
		Comments: []Comment{{Open: "/*", Close: "*/"}},
	}

	// Angle is the XML-like dialect: <strong>..</strong>, <em>..</em>,
	// <note>..</note> and <comment>..</comment> notes.
	Angle = Dialect{
		Name:     "angle",
		left:     "<",
		right:    ">",
		names:    [3]string{Strong: "strong", Emphasis: "em"},
		Comments: []Comment{{Open: "<note>", Close: "</note>"}, {Open: "<comment>", Close: "</comment>"}},
	}
)

// DialectByName returns the built-in dialect called name.
func DialectByName(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Bracket.Name:
		return Bracket, nil
	case Angle.Name:
		return Angle, nil
	default:
		return Dialect{}, fmt.Errorf("unknown markup dialect %q", name)
	}
}

// Open returns the opening delimiter for t, or "" for None.
func (d Dialect) Open(t Tag) string {
	if t == None || int(t) >= len(d.names) {
		return ""
	}
	return d.left + d.names[t] + d.right
}

// Close returns the closing delimiter for t, or "" for None.
func (d Dialect) Close(t Tag) string {
	if t == None || int(t) >= len(d.names) {
		return ""
	}
	return d.left + "/" + d.names[t] + d.right
}

// NextComment finds the first complete comment in s at or after the byte
// offset from. It returns the byte range of the comment, delimiters included.
func (d Dialect) NextComment(s string, from int) (start, end int, ok bool) {
	start = -1
	for _, c := range d.Comments {
		if c.Open == "" || c.Close == "" {
			continue
		}
		i := strings.Index(s[from:], c.Open)
		if i < 0 {
			continue
		}
		i += from
		j := strings.Index(s[i+len(c.Open):], c.Close)
		if j < 0 {
			continue
		}
		if start < 0 || i < start {
			start, end = i, i+len(c.Open)+j+len(c.Close)
		}
	}
	return start, end, start >= 0
}

// openAt reports which tag opens at rs[i:], if any, and the delimiter length.
func (d Dialect) openAt(rs []rune, i int) (Tag, int) {
	for _, t := range Tags {
		if hasPrefixAt(rs, i, d.Open(t)) {
			return t, runeCount(d.Open(t))
		}
	}
	return None, 0
}

func hasPrefixAt(rs []rune, i int, prefix string) bool {
	for _, r := range prefix {
		if i >= len(rs) || rs[i] != r {
			return false
		}
		i++
	}
	return true
}

// indexFrom returns the rune index of the first occurrence of sub in rs at
// or after from, or -1.
func indexFrom(rs []rune, from int, sub string) int {
	for i := from; i < len(rs); i++ {
		if hasPrefixAt(rs, i, sub) {
			return i
		}
	}
	return -1
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
