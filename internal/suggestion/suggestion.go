// Package suggestion turns a goal and the analysis of a conversation into a
// short list of rewrite suggestions.
package suggestion

import (
	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/highlight"
)

// Style is the register of a suggested message.
type Style string

const (
	StyleWarm          Style = "warm"
	StyleDirect        Style = "direct"
	StyleCurious       Style = "curious"
	StyleCollaborative Style = "collaborative"
	StyleAccountable   Style = "accountable"
	StyleCaring        Style = "caring"
	StyleStructured    Style = "structured"
	StyleValidating    Style = "validating"
	StyleSelfAware     Style = "self-aware"
	StyleRepair        Style = "repair"
	StyleEngaged       Style = "engaged"
	StyleAttentive     Style = "attentive"
	StyleSupportive    Style = "supportive"
)

// Framework names the communication model a suggestion draws on.
type Framework string

const (
	FrameworkGottman             Framework = "Gottman Method"
	FrameworkNVC                 Framework = "NVC"
	FrameworkGottmanRepair       Framework = "Gottman Repair"
	FrameworkDeEscalation        Framework = "De-escalation"
	FrameworkCommunicationSkills Framework = "Communication Skills"
	FrameworkAvoidingCriticism   Framework = "Gottman Method - Avoiding Criticism"
	FrameworkDefensiveness       Framework = "Gottman Method - Overcoming Defensiveness"
	FrameworkStonewalling        Framework = "Gottman Method - Preventing Stonewalling"
	FrameworkRepairAttempts      Framework = "Gottman Method - Repair Attempts"
	FrameworkActiveListening     Framework = "Active Listening"
	FrameworkSupportive          Framework = "Supportive Communication"
)

// Suggestion is one proposed message. IDs are sequential from 1.
type Suggestion struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Style     Style     `json:"style"`
	Rationale string    `json:"rationale"`
	Framework Framework `json:"framework"`
}

// Template is a suggestion without an id.
type Template struct {
	Text      string
	Style     Style
	Rationale string
	Framework Framework
}

const (
	MinSuggestions = 3
	MaxSuggestions = 4
)

// Filler pads the list up to MinSuggestions.
var Filler = Template{
	Text:      "I appreciate you sharing this with me. How can I best support you right now?",
	Style:     StyleSupportive,
	Rationale: "Shows care and asks how to help",
	Framework: FrameworkSupportive,
}

// TurnCounts overrides the turning-away and turning-against counts read from
// the analysis result.
type TurnCounts struct {
	Away    int
	Against int
}

// Input is everything the rules look at.
type Input struct {
	Goal       analysis.Goal
	Highlights []highlight.Interactive
	Result     analysis.Result
	Counts     *TurnCounts
}

func (in Input) gottman() analysis.Gottman {
	g := in.Result.Frameworks.Gottman
	if in.Counts != nil {
		g.TurningAway = in.Counts.Away
		g.TurningAgainst = in.Counts.Against
	}
	return g
}

// Generate builds the suggestion list: goal seeds, then every rule that
// fires in Rules order, padded with Filler and capped at MaxSuggestions.
func Generate(in Input) []Suggestion {
	var templates []Template
	templates = append(templates, GoalSeeds[in.Goal]...)
	for _, r := range Rules {
		if r.When(in) {
			templates = append(templates, r.Template)
		}
	}
	for len(templates) < MinSuggestions {
		templates = append(templates, Filler)
	}
	if len(templates) > MaxSuggestions {
		templates = templates[:MaxSuggestions]
	}

	out := make([]Suggestion, len(templates))
	for i, t := range templates {
		out[i] = Suggestion{
			ID:        i + 1,
			Text:      t.Text,
			Style:     t.Style,
			Rationale: t.Rationale,
			Framework: t.Framework,
		}
	}
	return out
}
