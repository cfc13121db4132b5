// Package lexicon holds the categorized trigger phrases consulted by every
// stage of the analysis engine. A Lexicon is read-only once built.
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Response classifies a reply to a bid for connection.
type Response string

const (
	Toward  Response = "toward"
	Away    Response = "away"
	Against Response = "against"
)

// Entry is one row of a phrase table.
type Entry struct {
	Category    string
	Explanation string
	Suggestion  string
	Phrases     []string
	// Risk is the caution reported when a concern entry matches anywhere in
	// a transcript. Empty for non-concern entries.
	Risk string
}

// ResponseEntry is an Entry that maps its phrases to exactly one response type.
type ResponseEntry struct {
	Entry
	Type Response
}

// Lexicon is the full set of phrase tables and word lists.
type Lexicon struct {
	Bids      []Entry
	Responses []ResponseEntry
	Positives []Entry
	Concerns  []Entry

	AppreciationStems []string
	ApologyWords      []string
	QuestionStarters  []string
	EmotionWords      []string
	NeedWords         []string

	PositiveWords []string
	NegativeWords []string
	NeutralWords  []string
}

// Match is a phrase hit inside a message.
type Match struct {
	Entry  *Entry
	Phrase string
	Start  int
	End    int
}

// Find returns the first matching phrase of the entry in text. Matching is
// case-insensitive and on word boundaries.
func (e *Entry) Find(text string) (Match, bool) {
	lower := Lower(text)
	for _, phrase := range e.Phrases {
		if idx := Index(lower, phrase, false); idx >= 0 {
			return Match{Entry: e, Phrase: phrase, Start: idx, End: idx + len(phrase)}, true
		}
	}
	return Match{}, false
}

// FirstPerCategory returns at most one match per category, in table order.
// Within a category the first entry with a hit wins.
func FirstPerCategory(text string, entries []Entry) []Match {
	var matches []Match
	seen := make(map[string]bool)
	for i := range entries {
		e := &entries[i]
		if seen[e.Category] {
			continue
		}
		if m, ok := e.Find(text); ok {
			seen[e.Category] = true
			matches = append(matches, m)
		}
	}
	return matches
}

// ContainsAny reports whether any phrase occurs in text on word boundaries.
func ContainsAny(text string, phrases []string) bool {
	lower := Lower(text)
	for _, p := range phrases {
		if Index(lower, p, false) >= 0 {
			return true
		}
	}
	return false
}

// FindStem returns the first of stems that occurs at a word start in text.
// The match need not end on a word boundary, so "thank" matches "thanks".
func FindStem(text string, stems []string) (start int, stem string, ok bool) {
	lower := Lower(text)
	for _, s := range stems {
		if idx := Index(lower, s, true); idx >= 0 {
			return idx, s, true
		}
	}
	return -1, "", false
}

// Index finds phrase in lower (already lowercased with Lower) starting at a
// word boundary. Unless stem is set the match must also end on one.
// It returns -1 when there is no match.
func Index(lower, phrase string, stem bool) int {
	phrase = Lower(phrase)
	if phrase == "" {
		return -1
	}
	from := 0
	for from <= len(lower)-len(phrase) {
		idx := strings.Index(lower[from:], phrase)
		if idx < 0 {
			return -1
		}
		idx += from
		end := idx + len(phrase)
		if boundaryBefore(lower, idx) && (stem || boundaryAfter(lower, end)) {
			return idx
		}
		from = idx + 1
	}
	return -1
}

// CountWords counts whitespace-separated tokens of text that equal one of words.
// Surrounding punctuation is ignored.
func CountWords(text string, words []string) int {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[Lower(w)] = true
	}
	n := 0
	for _, tok := range strings.Fields(Lower(text)) {
		if set[strings.TrimFunc(tok, isPunct)] {
			n++
		}
	}
	return n
}

// Lower lowercases ASCII letters only, so byte offsets in the result line up
// with the input.
func Lower(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return !isWordRune(r) || !isWordRune(firstRune(s[idx:]))
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	last, _ := utf8.DecodeLastRuneInString(s[:end])
	return !isWordRune(r) || !isWordRune(last)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPunct(r rune) bool {
	return !isWordRune(r) && r != '\''
}

// ShortReplyWords is the longest reply, in words, that turns a dismissive
// phrase into stonewalling.
const ShortReplyWords = 3

// ConcernMatches returns the concern hits in text, one per category. A reply
// of at most ShortReplyWords words matching Dismissive Language is reported
// as Stonewalling Pattern instead.
func (l *Lexicon) ConcernMatches(text string) []Match {
	matches := FirstPerCategory(text, l.Concerns)
	if len(strings.Fields(text)) > ShortReplyWords {
		return matches
	}

	stonewall := l.concern(CategoryStonewalling)
	hasStonewall := false
	for _, m := range matches {
		if m.Entry.Category == CategoryStonewalling {
			hasStonewall = true
		}
	}

	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.Entry.Category == CategoryDismissiveLanguage && stonewall != nil {
			if hasStonewall {
				continue
			}
			m.Entry = stonewall
		}
		out = append(out, m)
	}
	return out
}

func (l *Lexicon) concern(category string) *Entry {
	for i := range l.Concerns {
		if l.Concerns[i].Category == category {
			return &l.Concerns[i]
		}
	}
	return nil
}
