package slides

import (
	"sort"
	"strconv"
	"strings"
)

// Selection is a set of 1-based slide indices chosen for processing.
type Selection map[int]bool

// ParseSelection parses a selection string like "1", "2,4", "3-5" or
// "1,3-4,7" against the total number of slides. Reversed ranges are
// normalized, out-of-range and malformed tokens are collected into invalid
// and otherwise ignored. An empty or fully invalid selection falls back to
// all slides, so a bad flag never silently produces nothing.
func ParseSelection(opt string, total int) (sel Selection, invalid []string) {
	sel = make(Selection)

	if strings.TrimSpace(opt) == "" {
		return allSlides(total), nil
	}

	for _, token := range strings.Split(opt, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			invalid = append(invalid, parseRangeToken(token, total, sel)...)
			continue
		}

		idx, err := strconv.Atoi(token)
		if err != nil || idx < 1 || idx > total {
			invalid = append(invalid, token)
			continue
		}
		sel[idx] = true
	}

	if len(sel) == 0 {
		return allSlides(total), invalid
	}

	return sel, invalid
}

// parseRangeToken handles "a-b" tokens, adding in-range indices to sel and
// returning the tokens it had to ignore.
func parseRangeToken(token string, total int, sel Selection) (invalid []string) {
	parts := strings.SplitN(token, "-", 2)

	start, errStart := strconv.Atoi(strings.TrimSpace(parts[0]))
	end, errEnd := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errStart != nil || errEnd != nil {
		return []string{token}
	}

	if start > end {
		start, end = end, start
	}

	for i := start; i <= end; i++ {
		if i >= 1 && i <= total {
			sel[i] = true
		} else {
			invalid = append(invalid, strconv.Itoa(i))
		}
	}

	return invalid
}

// Apply filters segments to the selection, preserving their indices so
// output numbering still matches the source document.
func (sel Selection) Apply(segments []Segment) []Segment {
	out := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if sel[s.Index] {
			out = append(out, s)
		}
	}
	return out
}

// Indices returns the selected indices in ascending order.
func (sel Selection) Indices() []int {
	out := make([]int, 0, len(sel))
	for i := range sel {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func allSlides(total int) Selection {
	sel := make(Selection, total)
	for i := 1; i <= total; i++ {
		sel[i] = true
	}
	return sel
}
