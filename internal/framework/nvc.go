package framework

import (
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

const (
	defaultNeed    = "Understanding and connection"
	defaultRequest = "No direct questions yet - consider making a clear, specific request"
)

// NVC fills the four Nonviolent Communication summaries from the messages
// and the Gottman bid count.
func NVC(lex *lexicon.Lexicon, msgs []conversation.Message, g analysis.Gottman) analysis.NVC {
	text := lexicon.Lower(conversation.Conversation{Messages: msgs}.Text())

	nvc := analysis.NVC{
		Observation: fmt.Sprintf("%d messages exchanged with %d connection attempts", len(msgs), g.Bids),
		Feeling:     "No feelings named directly",
		Need:        defaultNeed,
		Request:     defaultRequest,
	}

	if feelings := present(text, lex.EmotionWords); len(feelings) > 0 {
		nvc.Feeling = "Feelings expressed: " + strings.Join(feelings, ", ")
	}
	if needs := present(text, lex.NeedWords); len(needs) > 0 {
		nvc.Need = "Needs voiced through: " + strings.Join(needs, ", ")
	}
	if q := strings.Count(text, "?"); q > 0 {
		nvc.Request = fmt.Sprintf("%d questions invite the other person to respond", q)
	}
	return nvc
}

// present returns the words of list found in lower, in list order.
func present(lower string, list []string) []string {
	var out []string
	for _, w := range list {
		if lexicon.Index(lower, w, false) >= 0 {
			out = append(out, w)
		}
	}
	return out
}
