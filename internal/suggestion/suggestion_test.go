package suggestion

import (
	"testing"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/highlight"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

func withGottman(g analysis.Gottman) analysis.Result {
	r := analysis.Empty()
	r.Frameworks.Gottman = g
	return r
}

func TestGenerate_EmptyIsAllFiller(t *testing.T) {
	got := Generate(Input{Goal: analysis.GoalGeneral, Result: analysis.Empty()})
	if len(got) != MinSuggestions {
		t.Fatalf("len = %d, want %d", len(got), MinSuggestions)
	}
	for i, s := range got {
		if s.ID != i+1 {
			t.Errorf("suggestion %d has id %d", i, s.ID)
		}
		if s.Text != Filler.Text || s.Style != StyleSupportive {
			t.Errorf("suggestion %d = %+v, want filler", i, s)
		}
	}
}

func TestGenerate_GoalSeedsFirst(t *testing.T) {
	for _, goal := range analysis.Goals {
		t.Run(string(goal), func(t *testing.T) {
			in := Input{
				Goal:   goal,
				Result: withGottman(analysis.Gottman{Criticism: 1, Stonewalling: 1}),
			}
			got := Generate(in)
			if len(got) < MinSuggestions || len(got) > MaxSuggestions {
				t.Fatalf("len = %d", len(got))
			}
			seeds := GoalSeeds[goal]
			for i, seed := range seeds {
				if got[i].Text != seed.Text {
					t.Errorf("suggestion %d = %q, want seed %q", i, got[i].Text, seed.Text)
				}
			}
			// The criticism rule always follows the seeds here.
			if got[len(seeds)].Framework != FrameworkAvoidingCriticism {
				t.Errorf("suggestion after seeds = %+v", got[len(seeds)])
			}
		})
	}
}

func TestGenerate_RuleOrderAndCap(t *testing.T) {
	in := Input{
		Goal: analysis.GoalGeneral,
		Highlights: []highlight.Interactive{
			{Type: highlight.KindConcern, Category: lexicon.CategoryDefensiveLanguage},
			{Type: highlight.KindBid, Category: lexicon.CategoryQuestionBid},
		},
		Result: withGottman(analysis.Gottman{Criticism: 1, Defensiveness: 2, Stonewalling: 1, TurningAway: 1}),
	}
	got := Generate(in)

	want := []Framework{
		FrameworkCommunicationSkills,
		FrameworkAvoidingCriticism,
		FrameworkDefensiveness,
		FrameworkStonewalling,
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, f := range want {
		if got[i].Framework != f {
			t.Errorf("suggestion %d framework = %q, want %q", i, got[i].Framework, f)
		}
		if got[i].ID != i+1 {
			t.Errorf("suggestion %d id = %d", i, got[i].ID)
		}
	}
}

func TestRules(t *testing.T) {
	bid := []highlight.Interactive{{Type: highlight.KindBid}}

	tests := []struct {
		rule string
		in   Input
		want bool
	}{
		{"reframe-defensive-language", Input{Highlights: []highlight.Interactive{{Type: highlight.KindConcern, Category: lexicon.CategoryCriticism}}}, false},
		{"initiate-repair", Input{Result: withGottman(analysis.Gottman{TurningAgainst: 1})}, true},
		{"initiate-repair", Input{Result: withGottman(analysis.Gottman{TurningAgainst: 1, RepairAttempts: 1})}, false},
		{"initiate-repair", Input{Result: withGottman(analysis.Gottman{}), Counts: &TurnCounts{Away: 2}}, true},
		{"engage-with-bids", Input{Highlights: bid}, true},
		{"engage-with-bids", Input{Highlights: bid, Result: withGottman(analysis.Gottman{TurningToward: 1})}, false},
		{"pay-attention", Input{Result: withGottman(analysis.Gottman{TurningAway: 2, TurningToward: 1})}, true},
		{"pay-attention", Input{Result: withGottman(analysis.Gottman{TurningAway: 2}), Counts: &TurnCounts{}}, false},
	}

	byName := make(map[string]Rule)
	for _, r := range Rules {
		byName[r.Name] = r
	}

	for _, tt := range tests {
		r, ok := byName[tt.rule]
		if !ok {
			t.Fatalf("no rule %q", tt.rule)
		}
		if got := r.When(tt.in); got != tt.want {
			t.Errorf("%s.When(%+v) = %v, want %v", tt.rule, tt.in, got, tt.want)
		}
	}
}

func TestScripts(t *testing.T) {
	set, err := Scripts("")
	if err != nil {
		t.Fatalf("Scripts: %v", err)
	}
	if set.Style != ScriptWarm || len(set.Scripts) != 3 || len(set.Steps) != 4 {
		t.Errorf("default set = %+v", set)
	}

	set, err = Scripts("concise")
	if err != nil {
		t.Fatalf("Scripts: %v", err)
	}
	if set.Scripts[0] != "I was wrong. Let me fix this." {
		t.Errorf("first concise script = %q", set.Scripts[0])
	}

	if _, err := Scripts("shouty"); err == nil {
		t.Error("expected error for unknown style")
	}
}
