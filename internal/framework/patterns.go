package framework

import (
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

const turningAgainstRisk = "Turning against bids detected - rejecting attempts to connect erodes trust"

// Patterns describes the notable communication habits of the conversation.
func Patterns(lex *lexicon.Lexicon, msgs []conversation.Message, g analysis.Gottman) []string {
	patterns := []string{}

	questions, gratitude, dismissive := 0, 0, 0
	for _, m := range msgs {
		if strings.Contains(m.Text, "?") {
			questions++
		}
		if _, _, ok := lexicon.FindStem(m.Text, lex.AppreciationStems); ok {
			gratitude++
		}
		for _, c := range lex.ConcernMatches(m.Text) {
			if c.Entry.Category == lexicon.CategoryDismissiveLanguage {
				dismissive++
			}
		}
	}

	if questions > 0 {
		patterns = append(patterns, fmt.Sprintf("%d questions detected - shows curiosity", questions))
	}
	if gratitude > 0 {
		patterns = append(patterns, fmt.Sprintf("%d expressions of gratitude found", gratitude))
	}
	if g.Bids > 0 {
		patterns = append(patterns, fmt.Sprintf("%d bids for connection made", g.Bids))
	}
	if responses := g.TurningToward + g.TurningAway + g.TurningAgainst; responses > 0 {
		patterns = append(patterns, fmt.Sprintf("Turned toward %d of %d responses to bids", g.TurningToward, responses))
	}
	if g.RepairAttempts > 0 {
		patterns = append(patterns, fmt.Sprintf("%d repair attempts to restore connection", g.RepairAttempts))
	}
	if dismissive > 0 {
		patterns = append(patterns, fmt.Sprintf("Dismissive replies in %d messages", dismissive))
	}
	return patterns
}

// Risks returns one caution per concern family found in the conversation,
// in lexicon order, followed by a turning-against caution when bids were
// rejected.
func Risks(lex *lexicon.Lexicon, msgs []conversation.Message, g analysis.Gottman) []string {
	hit := make([]bool, len(lex.Concerns))
	stonewall := -1
	for i := range lex.Concerns {
		if lex.Concerns[i].Category == lexicon.CategoryStonewalling {
			stonewall = i
			break
		}
	}

	for _, m := range msgs {
		short := len(strings.Fields(m.Text)) <= lexicon.ShortReplyWords
		for i := range lex.Concerns {
			e := &lex.Concerns[i]
			if _, ok := e.Find(m.Text); !ok {
				continue
			}
			if short && e.Category == lexicon.CategoryDismissiveLanguage && stonewall >= 0 {
				hit[stonewall] = true
				continue
			}
			hit[i] = true
		}
	}

	risks := []string{}
	seen := make(map[string]bool)
	for i, ok := range hit {
		risk := lex.Concerns[i].Risk
		if !ok || risk == "" || seen[risk] {
			continue
		}
		seen[risk] = true
		risks = append(risks, risk)
	}
	if g.TurningAgainst > 0 {
		risks = append(risks, turningAgainstRisk)
	}
	return risks
}
