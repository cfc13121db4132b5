package suggestion

import "fmt"

// ScriptStyle selects the register of the repair scripts.
type ScriptStyle string

const (
	ScriptConcise      ScriptStyle = "concise"
	ScriptWarm         ScriptStyle = "warm"
	ScriptProfessional ScriptStyle = "professional"
)

// DefaultScriptStyle is used when no style is requested.
const DefaultScriptStyle = ScriptWarm

// Step is one de-escalation step.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ScriptSet is the conflict-repair guidance for one style.
type ScriptSet struct {
	Style       ScriptStyle `json:"style"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
	Scripts     []string    `json:"scripts"`
	Steps       []Step      `json:"steps"`
	Do          []string    `json:"do"`
	Dont        []string    `json:"dont"`
}

var deEscalationSteps = []Step{
	{"Pause & Breathe", "Take a moment to center yourself before responding"},
	{"Acknowledge Their Feelings", "Show that you hear and understand their perspective"},
	{"Take Responsibility", "Own your part without making excuses"},
	{"Find Common Ground", "Identify what you both care about"},
}

var dos = []string{
	`Use "I" statements to express your feelings`,
	"Listen actively without planning your rebuttal",
	"Acknowledge their perspective before sharing yours",
	"Focus on the specific behavior, not their character",
	"Suggest a break if emotions are too high",
}

var donts = []string{
	`Use absolute words like "always" or "never"`,
	"Bring up past unrelated conflicts",
	"Make assumptions about their intentions",
	"Respond immediately when you're angry",
	`Try to "win" the argument`,
}

var repairScripts = map[ScriptStyle]struct {
	label, description string
	scripts            []string
}{
	ScriptConcise: {"Concise", "Direct and to the point", []string{
		"I was wrong. Let me fix this.",
		"I hear you're upset. What do you need?",
		"Can we start over? I care about us.",
	}},
	ScriptWarm: {"Warm", "Empathetic and caring", []string{
		"I realize I hurt you, and I'm truly sorry. That wasn't my intention, but I understand the impact.",
		"I can see this is really important to you. Help me understand what you're feeling right now.",
		"I love you and I want to make this right. What would help you feel heard?",
	}},
	ScriptProfessional: {"Professional", "Formal and structured", []string{
		"I acknowledge that my approach was ineffective and I take responsibility for the miscommunication.",
		"I value our relationship and would like to understand your perspective more clearly.",
		"I propose we take a step back and address this systematically to find a mutually beneficial solution.",
	}},
}

// Scripts returns the repair guidance for style. An empty style means
// DefaultScriptStyle.
func Scripts(style string) (ScriptSet, error) {
	s := ScriptStyle(style)
	if s == "" {
		s = DefaultScriptStyle
	}
	r, ok := repairScripts[s]
	if !ok {
		return ScriptSet{}, fmt.Errorf("unknown script style %q", style)
	}
	return ScriptSet{
		Style:       s,
		Label:       r.label,
		Description: r.description,
		Scripts:     append([]string(nil), r.scripts...),
		Steps:       append([]Step(nil), deEscalationSteps...),
		Do:          append([]string(nil), dos...),
		Dont:        append([]string(nil), donts...),
	}, nil
}
