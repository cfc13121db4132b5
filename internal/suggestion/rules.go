package suggestion

import (
	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/highlight"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
)

// GoalSeeds are the fixed opening suggestions per goal. GoalGeneral has none.
var GoalSeeds = map[analysis.Goal][]Template{
	analysis.GoalReconnect: {
		{
			Text:      "I've been thinking about you and wanted to check in. How have you been feeling lately?",
			Style:     StyleWarm,
			Rationale: "Shows care and opens space for emotional connection",
			Framework: FrameworkGottman,
		},
		{
			Text:      "I really value our relationship and want to make sure we're good. Can we talk?",
			Style:     StyleDirect,
			Rationale: "Direct but caring approach that prioritizes the relationship",
			Framework: FrameworkNVC,
		},
	},
	analysis.GoalClarify: {
		{
			Text:      "I want to make sure I understand what you're saying. Can you help me see this from your perspective?",
			Style:     StyleCurious,
			Rationale: "Shows genuine interest in understanding rather than being right",
			Framework: FrameworkNVC,
		},
		{
			Text:      "I think we might be seeing this differently. Let me share what I heard and you can correct me if I'm off.",
			Style:     StyleCollaborative,
			Rationale: "Invites collaboration and shows willingness to be wrong",
			Framework: FrameworkGottman,
		},
	},
	analysis.GoalApologize: {
		{
			Text:      "I realize I hurt you with what I said/did, and I'm truly sorry. That wasn't my intention, but I understand the impact.",
			Style:     StyleAccountable,
			Rationale: "Takes responsibility without making excuses",
			Framework: FrameworkGottmanRepair,
		},
		{
			Text:      "I messed up and I want to make this right. What do you need from me?",
			Style:     StyleDirect,
			Rationale: "Shows accountability and asks how to repair",
			Framework: FrameworkNVC,
		},
	},
	analysis.GoalBoundary: {
		{
			Text:      "I care about our relationship, and I need to share something that's important to me.",
			Style:     StyleCaring,
			Rationale: "Frames boundary-setting as caring for the relationship",
			Framework: FrameworkNVC,
		},
		{
			Text:      "I've noticed I feel [feeling] when [situation]. I'd appreciate if we could [request].",
			Style:     StyleStructured,
			Rationale: "Uses NVC format to communicate needs clearly",
			Framework: FrameworkNVC,
		},
	},
	analysis.GoalConflict: {
		{
			Text:      "I can see this is really important to you. Help me understand what you need right now.",
			Style:     StyleValidating,
			Rationale: "Validates their experience and seeks to understand",
			Framework: FrameworkDeEscalation,
		},
		{
			Text:      "We both care about this relationship. Let's take a step back and figure this out together.",
			Style:     StyleCollaborative,
			Rationale: "Reminds both parties of shared values",
			Framework: FrameworkGottman,
		},
	},
}

// Rule appends Template when When holds.
type Rule struct {
	Name     string
	When     func(Input) bool
	Template Template
}

// Rules are evaluated in order after the goal seeds.
var Rules = []Rule{
	{
		Name: "reframe-defensive-language",
		When: func(in Input) bool {
			for _, h := range in.Highlights {
				if h.Type == highlight.KindConcern && h.Category == lexicon.CategoryDefensiveLanguage {
					return true
				}
			}
			return false
		},
		Template: Template{
			Text:      "I understand your perspective, and here's how I see it...",
			Style:     StyleCollaborative,
			Rationale: `Replaces "but" with "and" to sound less dismissive`,
			Framework: FrameworkCommunicationSkills,
		},
	},
	{
		Name: "i-statement",
		When: func(in Input) bool { return in.gottman().Criticism > 0 },
		Template: Template{
			Text:      "I feel [emotion] when [specific behavior happens]. I need [specific need].",
			Style:     StyleStructured,
			Rationale: `Uses "I" statements to express concerns without attacking character`,
			Framework: FrameworkAvoidingCriticism,
		},
	},
	{
		Name: "take-responsibility",
		When: func(in Input) bool { return in.gottman().Defensiveness > 0 },
		Template: Template{
			Text:      "You're right that I contributed to this. Let me take responsibility for my part.",
			Style:     StyleAccountable,
			Rationale: "Takes responsibility instead of defending, which de-escalates conflict",
			Framework: FrameworkDefensiveness,
		},
	},
	{
		Name: "time-out",
		When: func(in Input) bool { return in.gottman().Stonewalling > 0 },
		Template: Template{
			Text:      "I'm feeling overwhelmed and need a 20-minute break to collect my thoughts. Then I'd like to continue this conversation.",
			Style:     StyleSelfAware,
			Rationale: "Communicates need for space while committing to return to the conversation",
			Framework: FrameworkStonewalling,
		},
	},
	{
		Name: "initiate-repair",
		When: func(in Input) bool {
			g := in.gottman()
			return g.RepairAttempts == 0 && (g.TurningAway > 0 || g.TurningAgainst > 0)
		},
		Template: Template{
			Text:      "I can see this conversation isn't going well. Can we pause and try a different approach?",
			Style:     StyleRepair,
			Rationale: "Initiates repair when conversation is going off track",
			Framework: FrameworkRepairAttempts,
		},
	},
	{
		Name: "engage-with-bids",
		When: func(in Input) bool {
			return highlight.Count(in.Highlights, highlight.KindBid) > 0 && in.gottman().TurningToward == 0
		},
		Template: Template{
			Text:      "That sounds really interesting! Tell me more about that.",
			Style:     StyleEngaged,
			Rationale: "Shows enthusiasm for their bids for connection",
			Framework: FrameworkGottman,
		},
	},
	{
		Name: "pay-attention",
		When: func(in Input) bool {
			g := in.gottman()
			return g.TurningAway > g.TurningToward
		},
		Template: Template{
			Text:      "I want to give this the attention it deserves. Can you help me understand why this matters to you?",
			Style:     StyleAttentive,
			Rationale: "Shows you want to engage more fully with their concerns",
			Framework: FrameworkActiveListening,
		},
	},
}
