// Package highlight locates lexicon cues inside parsed messages, both as a
// per-message summary list and as character-offset spans for inline markup.
package highlight

import "fmt"

// Kind is the type of an interactive highlight.
type Kind string

const (
	KindBid             Kind = "bid"
	KindResponseToward  Kind = "response-toward"
	KindResponseAway    Kind = "response-away"
	KindResponseAgainst Kind = "response-against"
	KindOpportunity     Kind = "opportunity"
	KindConcern         Kind = "concern"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBid, KindResponseToward, KindResponseAway, KindResponseAgainst, KindOpportunity, KindConcern:
		return true
	}
	return false
}

// CoarseType is the type of a summary highlight.
type CoarseType string

const (
	CoarsePositive    CoarseType = "positive"
	CoarseOpportunity CoarseType = "opportunity"
	CoarseConcern     CoarseType = "concern"
)

// Coarse is a summary highlight. It carries the whole message text and no
// offsets.
type Coarse struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Speaker     string     `json:"speaker"`
	Type        CoarseType `json:"type"`
	Category    string     `json:"category"`
	Explanation string     `json:"explanation"`
}

// Interactive is a highlight anchored on byte offsets of one message's text.
// 0 <= StartIndex < EndIndex <= len(text) always holds.
type Interactive struct {
	ID           string `json:"id"`
	MessageID    string `json:"messageId"`
	StartIndex   int    `json:"startIndex"`
	EndIndex     int    `json:"endIndex"`
	Type         Kind   `json:"type"`
	Category     string `json:"category"`
	Explanation  string `json:"explanation"`
	Suggestion   string `json:"suggestion,omitempty"`
	OriginalText string `json:"originalText"`
}

// ForMessage returns the highlights anchored on messageID, in input order.
func ForMessage(hs []Interactive, messageID string) []Interactive {
	var out []Interactive
	for _, h := range hs {
		if h.MessageID == messageID {
			out = append(out, h)
		}
	}
	return out
}

// Count returns how many highlights have kind k.
func Count(hs []Interactive, k Kind) int {
	n := 0
	for _, h := range hs {
		if h.Type == k {
			n++
		}
	}
	return n
}

// HasCategory reports whether any highlight carries category.
func HasCategory(hs []Interactive, category string) bool {
	for _, h := range hs {
		if h.Category == category {
			return true
		}
	}
	return false
}

func highlightID(n int) string {
	return fmt.Sprintf("highlight-%d", n)
}
