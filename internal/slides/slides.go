// Package slides splits a presentation script into ordered, titled segments
// ready for speech synthesis.
//
// Two marker conventions are supported: explicit "Slide N: Title" header
// lines, and lines consisting solely of "---". Exactly one convention is
// applied per document; header lines take precedence, and in their presence
// dash lines are plain text.
package slides

import (
	"regexp"
	"strings"
)

// Compiled once; both patterns anchor on whole lines.
var (
	slideMarkerPattern   = regexp.MustCompile(`(?im)^[ \t]*slide[ \t]+\d+[ \t]*:(.*)$`)
	dashDelimiterPattern = regexp.MustCompile(`(?m)^[ \t]*---[ \t\r]*$`)
)

// Format identifies which marker convention a document uses
type Format int

const (
	// FormatUnmarked means no markers were found; the document is one segment.
	FormatUnmarked Format = iota
	// FormatSlideMarker means "Slide N: Title" header lines delimit segments.
	FormatSlideMarker
	// FormatDashDelimiter means lines of "---" delimit segments.
	FormatDashDelimiter
)

func (f Format) String() string {
	switch f {
	case FormatSlideMarker:
		return "slide-marker"
	case FormatDashDelimiter:
		return "dash-delimiter"
	default:
		return "unmarked"
	}
}

// Segment is one titled portion of a script. Index is 1-based and defines
// both processing order and output file numbering.
type Segment struct {
	Index int
	Title string
	Body  string
}

// Text returns the synthesizable text: title first when present, then body.
func (s Segment) Text() string {
	title := strings.TrimSpace(s.Title)
	body := strings.TrimSpace(s.Body)

	switch {
	case title == "":
		return body
	case body == "":
		return title
	default:
		return title + "\n" + body
	}
}

// DetectFormat classifies a document by the first matching marker
// convention. The classification is made once for the whole document.
func DetectFormat(raw string) Format {
	if slideMarkerPattern.MatchString(raw) {
		return FormatSlideMarker
	}
	if dashDelimiterPattern.MatchString(raw) {
		return FormatDashDelimiter
	}
	return FormatUnmarked
}

// Split parses a raw script into ordered segments. Segments whose text is
// empty after trimming are dropped, and the survivors are re-indexed
// contiguously from 1. A whitespace-only document yields no segments.
func Split(raw string) []Segment {
	var segments []Segment

	switch DetectFormat(raw) {
	case FormatSlideMarker:
		segments = splitSlideMarker(raw)
	case FormatDashDelimiter:
		segments = splitDashDelimiter(raw)
	default:
		segments = []Segment{{Body: raw}}
	}

	return finalize(segments)
}

// splitSlideMarker starts a segment at every header line. The header's
// trailing text becomes the title; everything up to the next header (or end
// of document) becomes the body.
func splitSlideMarker(raw string) []Segment {
	matches := slideMarkerPattern.FindAllStringSubmatchIndex(raw, -1)

	segments := make([]Segment, 0, len(matches))
	for i, m := range matches {
		title := raw[m[2]:m[3]]

		bodyStart := m[1]
		bodyEnd := len(raw)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		segments = append(segments, Segment{
			Title: title,
			Body:  raw[bodyStart:bodyEnd],
		})
	}

	return segments
}

// splitDashDelimiter splits on delimiter lines. Within each block the first
// non-empty line is the title and the remainder is the body.
func splitDashDelimiter(raw string) []Segment {
	blocks := dashDelimiterPattern.Split(raw, -1)

	segments := make([]Segment, 0, len(blocks))
	for _, block := range blocks {
		title, body := splitTitleLine(block)
		segments = append(segments, Segment{Title: title, Body: body})
	}

	return segments
}

// splitTitleLine peels the first non-empty line off a block.
func splitTitleLine(block string) (title, body string) {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return line, strings.Join(lines[i+1:], "\n")
		}
	}
	return "", ""
}

// finalize trims, drops empty segments, and re-indexes the survivors so
// that indices stay contiguous from 1 in document order.
func finalize(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		s.Title = strings.TrimSpace(s.Title)
		s.Body = strings.TrimSpace(s.Body)
		if s.Text() == "" {
			continue
		}
		s.Index = len(out) + 1
		out = append(out, s)
	}
	return out
}
