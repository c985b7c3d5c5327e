package markdown

// classifies a parsed line
type LineKind int

const (
	KindHeading LineKind = iota
	KindBulletItem
	KindNumberedItem
	KindBlankLine
	KindParagraph
)

// one inline run of text, bold or plain
type Segment struct {
	Bold bool   `json:"bold,omitempty"`
	Text string `json:"text"`
}

// one line of the restricted markdown dialect mapped to a tagged variant.
// Level is only meaningful for KindHeading (1-3). Segments carry the
// bold/plain runs for every variant that has text.
type ParsedLine struct {
	Kind     LineKind  `json:"kind"`
	Level    int       `json:"level,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}
