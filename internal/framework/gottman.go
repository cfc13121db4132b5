// Package framework scores a parsed conversation against the Gottman Method
// and Nonviolent Communication models.
package framework

import (
	"strings"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

// Gottman counts bids, responses to bids, three of the four horsemen and
// repair attempts. Each counter is incremented at most once per message and
// category; a message can land in several buckets.
func Gottman(lex *lexicon.Lexicon, msgs []conversation.Message) analysis.Gottman {
	var g analysis.Gottman
	for _, m := range msgs {
		g.Bids += strings.Count(m.Text, "?")
		g.Bids += len(lexicon.FirstPerCategory(m.Text, lex.Bids))

		for i := range lex.Responses {
			r := &lex.Responses[i]
			if _, ok := r.Find(m.Text); !ok {
				continue
			}
			switch r.Type {
			case lexicon.Toward:
				g.TurningToward++
			case lexicon.Away:
				g.TurningAway++
			case lexicon.Against:
				g.TurningAgainst++
			}
		}

		for _, c := range lex.ConcernMatches(m.Text) {
			switch c.Entry.Category {
			case lexicon.CategoryCriticism:
				g.Criticism++
			case lexicon.CategoryDefensiveness:
				g.Defensiveness++
			case lexicon.CategoryStonewalling:
				g.Stonewalling++
			}
		}

		if IsRepairAttempt(lex, m.Text) {
			g.RepairAttempts++
		}
	}
	return g
}

// IsRepairAttempt reports whether text apologizes or tries to restart the
// conversation. Sympathy ("sorry to hear that") is not an apology.
func IsRepairAttempt(lex *lexicon.Lexicon, text string) bool {
	empathy := false
	for _, table := range [][]lexicon.Entry{lex.Bids, lex.Positives} {
		for _, m := range lexicon.FirstPerCategory(text, table) {
			switch m.Entry.Category {
			case lexicon.CategoryRepairAttempt, lexicon.CategorySpecificApology:
				return true
			case lexicon.CategoryEmpathy:
				empathy = true
			}
		}
	}
	if empathy {
		return false
	}
	_, _, ok := lexicon.FindStem(text, lex.ApologyWords)
	return ok
}
