package highlight

import (
	"strings"

	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

const (
	appreciationNote = "Expressing gratitude strengthens relationships and creates positive connection."
	questionNote     = `Questions are "bids" for connection. Responding positively builds relationship strength.`
	apologyNote      = "Taking responsibility and apologizing shows emotional maturity and care for the relationship."
)

// Coarses builds the summary highlights for msgs. Each message is tested for
// appreciation, a question mark, apology words and the first concern, with at
// most one highlight per category.
func Coarses(lex *lexicon.Lexicon, msgs []conversation.Message) []Coarse {
	out := []Coarse{}
	emit := func(m conversation.Message, t CoarseType, category, explanation string) {
		out = append(out, Coarse{
			ID:          highlightID(len(out)),
			Text:        m.Text,
			Speaker:     m.Speaker,
			Type:        t,
			Category:    category,
			Explanation: explanation,
		})
	}

	for _, m := range msgs {
		if _, _, ok := lexicon.FindStem(m.Text, lex.AppreciationStems); ok {
			emit(m, CoarsePositive, lexicon.CategoryAppreciation, appreciationNote)
		}
		if strings.Contains(m.Text, "?") {
			emit(m, CoarseOpportunity, lexicon.CategoryBidForConnection, questionNote)
		}
		if _, _, ok := lexicon.FindStem(m.Text, lex.ApologyWords); ok {
			emit(m, CoarsePositive, lexicon.CategoryRepairAttempt, apologyNote)
		}
		if concerns := lex.ConcernMatches(m.Text); len(concerns) > 0 {
			e := concerns[0].Entry
			emit(m, CoarseConcern, e.Category, e.Explanation)
		}
	}
	return out
}
