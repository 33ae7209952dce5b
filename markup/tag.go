package markup

// Tag identifies the formatting attribute of a span.
type Tag uint8

const (
	None Tag = iota
	Strong
	Emphasis
)

// Tags lists the formatting tags in delimiter lookup order.
var Tags = []Tag{Strong, Emphasis}

func (t Tag) String() string {
	switch t {
	case None:
		return "none"
	case Strong:
		return "strong"
	case Emphasis:
		return "emphasis"
	default:
		return "unknown"
	}
}

// Span is a run of text sharing one tag.
type Span struct {
	Text string
	Tag  Tag
}
