package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

// Interactives builds the offset highlights for msgs. Passes run per message
// in a fixed order: appreciation, question, bids, responses, other positives,
// concerns. Ids are sequential across the whole transcript.
func Interactives(lex *lexicon.Lexicon, msgs []conversation.Message) []Interactive {
	g := &generator{lex: lex, out: []Interactive{}}
	for _, m := range msgs {
		g.message(m)
	}
	return g.out
}

type generator struct {
	lex *lexicon.Lexicon
	out []Interactive
}

func (g *generator) emit(m conversation.Message, start, end int, kind Kind, e *lexicon.Entry) {
	if start < 0 || end > len(m.Text) || start >= end {
		return
	}
	g.out = append(g.out, Interactive{
		ID:           highlightID(len(g.out)),
		MessageID:    m.ID,
		StartIndex:   start,
		EndIndex:     end,
		Type:         kind,
		Category:     e.Category,
		Explanation:  e.Explanation,
		Suggestion:   e.Suggestion,
		OriginalText: m.Text[start:end],
	})
}

func (g *generator) message(m conversation.Message) {
	text := m.Text
	hasQuestion := strings.Contains(text, "?")

	if start, stem, ok := lexicon.FindStem(text, g.lex.AppreciationStems); ok {
		if e := entry(g.lex.Positives, lexicon.CategoryAppreciation); e != nil {
			g.emit(m, start, start+len(stem), KindOpportunity, e)
		}
	}

	if hasQuestion {
		if e := entry(g.lex.Bids, lexicon.CategoryQuestionBid); e != nil {
			start, end := questionSpan(text, g.lex.QuestionStarters)
			g.emit(m, start, end, KindBid, e)
		}
	}

	for _, match := range lexicon.FirstPerCategory(text, g.lex.Bids) {
		if hasQuestion && match.Entry.Category == lexicon.CategoryQuestionBid {
			continue
		}
		g.emit(m, match.Start, match.End, KindBid, match.Entry)
	}

	for i := range g.lex.Responses {
		r := &g.lex.Responses[i]
		if match, ok := r.Find(text); ok {
			g.emit(m, match.Start, match.End, responseKind(r.Type), match.Entry)
		}
	}

	for _, match := range lexicon.FirstPerCategory(text, g.lex.Positives) {
		if match.Entry.Category == lexicon.CategoryAppreciation {
			continue
		}
		g.emit(m, match.Start, match.End, KindOpportunity, match.Entry)
	}

	for _, match := range g.lex.ConcernMatches(text) {
		g.emit(m, match.Start, match.End, KindConcern, match.Entry)
	}
}

// questionSpan returns the span of the first question in text: from the
// earliest question-starter word of its sentence through the '?'. Contractions
// count as their leading word. Without a starter word the span begins at 0.
func questionSpan(text string, starters []string) (int, int) {
	q := strings.IndexByte(text, '?')
	sentence := strings.LastIndexAny(text[:q], ".!\n") + 1

	set := make(map[string]bool, len(starters))
	for _, s := range starters {
		set[s] = true
	}

	start := 0
	for i := sentence; i < q; {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		j := i
		for j < q {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !isWordRune(r) {
				break
			}
			j += size
		}
		if set[contractionBase(lexicon.Lower(text[i:j]))] {
			start = i
			break
		}
		i = j
	}
	return start, q + 1
}

// contractionBase drops a contraction suffix, so "how's" compares as "how".
func contractionBase(word string) string {
	if k := strings.IndexByte(word, '\''); k > 0 {
		return word[:k]
	}
	return word
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
}

func responseKind(r lexicon.Response) Kind {
	switch r {
	case lexicon.Toward:
		return KindResponseToward
	case lexicon.Against:
		return KindResponseAgainst
	default:
		return KindResponseAway
	}
}

func entry(entries []lexicon.Entry, category string) *lexicon.Entry {
	for i := range entries {
		if entries[i].Category == category {
			return &entries[i]
		}
	}
	return nil
}
