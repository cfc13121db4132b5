package highlight

import "sort"

// Segment is one rendered run of a message. Highlight is nil for plain text.
type Segment struct {
	Start     int          `json:"start"`
	End       int          `json:"end"`
	Text      string       `json:"text"`
	Highlight *Interactive `json:"highlight,omitempty"`
}

// Layout splits text into non-overlapping segments for inline rendering.
// Highlights are taken in ascending StartIndex, ties in input order. A
// highlight that overlaps an earlier one is clamped forward to start at the
// cursor and keeps at least one character. One that lies entirely inside an
// earlier highlight, or would start at or past the end of text, is dropped.
// The segment texts concatenate to text.
func Layout(text string, hs []Interactive) []Segment {
	ordered := make([]Interactive, len(hs))
	copy(ordered, hs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartIndex < ordered[j].StartIndex
	})

	var segs []Segment
	cursor := 0
	for i := range ordered {
		h := &ordered[i]
		if h.StartIndex < cursor && h.EndIndex <= cursor {
			continue
		}
		start := max(h.StartIndex, cursor)
		if start >= len(text) {
			continue
		}
		end := min(max(h.EndIndex, start+1), len(text))

		if start > cursor {
			segs = append(segs, Segment{Start: cursor, End: start, Text: text[cursor:start]})
		}
		segs = append(segs, Segment{Start: start, End: end, Text: text[start:end], Highlight: h})
		cursor = end
	}
	if cursor < len(text) {
		segs = append(segs, Segment{Start: cursor, End: len(text), Text: text[cursor:]})
	}
	return segs
}
