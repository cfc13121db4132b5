// Package sentiment derives the overall sentiment score and tone labels of a
// conversation.
package sentiment

import (
	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/highlight"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

// Tone labels, in reporting order.
const (
	Curious        = "Curious"
	Appreciative   = "Appreciative"
	Supportive     = "Supportive"
	Tense          = "Tense"
	Reserved       = "Reserved"
	Conversational = "Conversational"
)

// Score rates the conversation from its interactive highlights. Toward
// responses, appreciation and validation count as positive signals; against
// responses and concerns as negative; away responses as neutral. When there
// are no signals at all the raw text is scored with Lexical instead.
func Score(lex *lexicon.Lexicon, hs []highlight.Interactive, text string) analysis.Sentiment {
	var pos, neg, neutral int
	for _, h := range hs {
		switch {
		case h.Type == highlight.KindResponseToward:
			pos++
		case h.Type == highlight.KindOpportunity &&
			(h.Category == lexicon.CategoryAppreciation || h.Category == lexicon.CategoryValidation):
			pos++
		case h.Type == highlight.KindResponseAgainst, h.Type == highlight.KindConcern:
			neg++
		case h.Type == highlight.KindResponseAway:
			neutral++
		}
	}

	total := pos + neg + neutral
	if total == 0 {
		return Lexical(lex, text)
	}
	score := float64(pos-neg) / float64(total)
	return analysis.Sentiment{Score: score, Label: Label(score)}
}

// Lexical scores raw text by comparing counts of positive, negative and
// neutral vocabulary. The score is one of 0.6, 0.3, 0, -0.3 and -0.6.
func Lexical(lex *lexicon.Lexicon, text string) analysis.Sentiment {
	pos := lexicon.CountWords(text, lex.PositiveWords)
	neg := lexicon.CountWords(text, lex.NegativeWords)
	neutral := lexicon.CountWords(text, lex.NeutralWords)

	var score float64
	switch {
	case pos > neg && pos > neutral:
		score = 0.6
	case pos > neg:
		score = 0.3
	case neg > pos && neg > neutral:
		score = -0.6
	case neg > pos:
		score = -0.3
	}
	return analysis.Sentiment{Score: score, Label: Label(score)}
}

// Label maps a score in [-1, 1] to its label.
func Label(score float64) string {
	switch {
	case score >= 0.6:
		return "Positive"
	case score > 0.3:
		return "Slightly Positive"
	case score <= -0.6:
		return "Negative"
	case score < -0.3:
		return "Slightly Negative"
	default:
		return analysis.Neutral
	}
}

// Tone returns the ordered tone labels implied by the highlights, or
// Conversational when none apply.
func Tone(hs []highlight.Interactive) []string {
	var curious, appreciative, supportive, tense bool
	var toward, away, positive int
	for _, h := range hs {
		switch h.Category {
		case lexicon.CategoryQuestionBid:
			curious = true
		case lexicon.CategoryAppreciation:
			appreciative = true
		case lexicon.CategoryValidation, lexicon.CategoryEmpathy:
			supportive = true
		}
		switch h.Type {
		case highlight.KindConcern:
			tense = true
		case highlight.KindResponseToward:
			toward++
		case highlight.KindResponseAway:
			away++
		case highlight.KindOpportunity:
			positive++
		}
	}

	tone := []string{}
	if curious {
		tone = append(tone, Curious)
	}
	if appreciative {
		tone = append(tone, Appreciative)
	}
	if supportive {
		tone = append(tone, Supportive)
	}
	if tense {
		tone = append(tone, Tense)
	}
	if away > toward+positive {
		tone = append(tone, Reserved)
	}
	if len(tone) == 0 {
		tone = append(tone, Conversational)
	}
	return tone
}
