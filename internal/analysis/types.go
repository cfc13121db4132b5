// Package analysis defines the result shapes shared by the scoring stages.
package analysis

import (
	"fmt"
	"strings"
)

// Goal is what the user wants to achieve with their next message.
type Goal string

const (
	GoalReconnect Goal = "reconnect"
	GoalClarify   Goal = "clarify"
	GoalApologize Goal = "apologize"
	GoalBoundary  Goal = "boundary"
	GoalConflict  Goal = "conflict"
	GoalGeneral   Goal = "general"
)

// Goals lists every goal in display order.
var Goals = []Goal{GoalReconnect, GoalClarify, GoalApologize, GoalBoundary, GoalConflict, GoalGeneral}

// ParseGoal validates a goal name. The empty string means GoalGeneral.
func ParseGoal(s string) (Goal, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GoalGeneral, nil
	}
	for _, g := range Goals {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// Sentiment is the aggregate tone score of a conversation.
type Sentiment struct {
	Score float64 `json:"score"` // -1 to 1
	Label string  `json:"label"`
}

// NVC holds the descriptive Nonviolent Communication summaries.
type NVC struct {
	Observation string `json:"observation"`
	Feeling     string `json:"feeling"`
	Need        string `json:"need"`
	Request     string `json:"request"`
}

// Gottman holds the Gottman Method counts.
type Gottman struct {
	Bids           int `json:"bids"`
	TurningToward  int `json:"turning_toward"`
	TurningAway    int `json:"turning_away"`
	TurningAgainst int `json:"turning_against"`
	Criticism      int `json:"criticism"`
	Defensiveness  int `json:"defensiveness"`
	Stonewalling   int `json:"stonewalling"`
	RepairAttempts int `json:"repair_attempts"`
}

type Frameworks struct {
	NVC     NVC     `json:"nvc"`
	Gottman Gottman `json:"gottman"`
}

// Result is the structured analysis of one transcript.
type Result struct {
	Sentiment  Sentiment  `json:"sentiment"`
	Tone       []string   `json:"tone"`
	Frameworks Frameworks `json:"frameworks"`
	Patterns   []string   `json:"patterns"`
	Risks      []string   `json:"risks"`
}

// Neutral labels a conversation with no tone signal.
const Neutral = "Neutral"

// Empty returns a Result with every field at its safe default.
func Empty() Result {
	return Result{
		Sentiment: Sentiment{Score: 0, Label: Neutral},
		Tone:      []string{},
		Patterns:  []string{},
		Risks:     []string{},
	}
}
