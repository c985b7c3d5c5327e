// Package markdown implements the line-oriented transform for the restricted
// dialect the generator emits: #/##/### headings, -/* bullets, numbered
// items, **bold** spans, blank lines and plain paragraphs. The transform is
// pure and never fails; malformed input degrades to best-effort segments.
package markdown

import (
	"regexp"
	"strings"
)

var numberedRe = regexp.MustCompile(`^\d+\.`)

// classifies a single line. Heading markers are matched on the raw line,
// list markers and blanks on the trimmed line, everything else is a
// paragraph carrying the full line.
func ParseLine(line string) ParsedLine {
	if rest, ok := strings.CutPrefix(line, "### "); ok {
		return ParsedLine{Kind: KindHeading, Level: 3, Segments: splitSegments(rest)}
	}

	if rest, ok := strings.CutPrefix(line, "## "); ok {
		return ParsedLine{Kind: KindHeading, Level: 2, Segments: splitSegments(rest)}
	}

	if rest, ok := strings.CutPrefix(line, "# "); ok {
		return ParsedLine{Kind: KindHeading, Level: 1, Segments: splitSegments(rest)}
	}

	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return ParsedLine{Kind: KindBulletItem, Segments: splitSegments(trimmed[2:])}
	}

	if numberedRe.MatchString(trimmed) {
		return ParsedLine{Kind: KindNumberedItem, Segments: splitSegments(line)}
	}

	if trimmed == "" {
		return ParsedLine{Kind: KindBlankLine}
	}

	return ParsedLine{Kind: KindParagraph, Segments: splitSegments(line)}
}

// transforms a whole document into an ordered line sequence. Pure: two calls
// on the same input yield structurally identical output.
func RenderDocument(text string) []ParsedLine {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	parsed := make([]ParsedLine, 0, len(lines))

	for _, line := range lines {
		parsed = append(parsed, ParseLine(line))
	}

	return parsed
}

// splits text on the literal ** delimiter; odd split positions are bold.
// An unpaired ** never errors - the alternating assignment simply continues
// past the last real pair. Empty segments (e.g. the leading one produced by
// a bold span at the start of the line) are dropped.
func splitSegments(text string) []Segment {
	parts := strings.Split(text, "**")
	segments := make([]Segment, 0, len(parts))

	for i, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, Segment{Bold: i%2 == 1, Text: part})
	}

	return segments
}
