// Package engine runs the full conversation analysis pipeline and defines the
// Analyzer interface shared by the local pipeline and the remote service.
package engine

import (
	"context"
	"log/slog"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/framework"
	"github.com/MikeSquared-Agency/betterfriend/internal/highlight"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
	"github.com/MikeSquared-Agency/betterfriend/internal/sentiment"
	"github.com/MikeSquared-Agency/betterfriend/internal/suggestion"
)

// Source values recorded on a Bundle.
const (
	SourceLocal  = "local"
	SourceRemote = "remote"
)

// Bundle is the complete result of analyzing one transcript.
type Bundle struct {
	Analysis              analysis.Result         `json:"analysis"`
	Suggestions           []suggestion.Suggestion `json:"suggestions"`
	Highlights            []highlight.Coarse      `json:"highlights"`
	InteractiveHighlights []highlight.Interactive `json:"interactiveHighlights"`
	ParsedMessages        []conversation.Message  `json:"parsedMessages"`

	// Source is SourceLocal or SourceRemote. It is not part of the wire shape.
	Source string `json:"-"`
}

// Analyzer produces a Bundle for a transcript and goal.
type Analyzer interface {
	Analyze(ctx context.Context, text string, goal analysis.Goal) (*Bundle, error)
}

// Engine is the deterministic local pipeline. It is safe for concurrent use.
type Engine struct {
	lex    *lexicon.Lexicon
	logger *slog.Logger
}

func New(lex *lexicon.Lexicon, logger *slog.Logger) *Engine {
	if lex == nil {
		lex = lexicon.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{lex: lex, logger: logger}
}

// Run analyzes text. Every stage starts from its safe default and runs under
// a recover guard, so a failing stage degrades its part of the Bundle
// instead of aborting the whole analysis.
func (e *Engine) Run(text string, goal analysis.Goal) *Bundle {
	b := &Bundle{
		Analysis:              analysis.Empty(),
		Suggestions:           []suggestion.Suggestion{},
		Highlights:            []highlight.Coarse{},
		InteractiveHighlights: []highlight.Interactive{},
		ParsedMessages:        []conversation.Message{},
		Source:                SourceLocal,
	}
	res := &b.Analysis

	conv := conversation.Conversation{Messages: []conversation.Message{}, Speakers: []string{}}
	e.guard("parse", func() { conv = conversation.Parse(text) })
	b.ParsedMessages = conv.Messages
	msgs := conv.Messages

	e.guard("interactive highlights", func() { b.InteractiveHighlights = highlight.Interactives(e.lex, msgs) })
	e.guard("coarse highlights", func() { b.Highlights = highlight.Coarses(e.lex, msgs) })

	e.guard("gottman", func() { res.Frameworks.Gottman = framework.Gottman(e.lex, msgs) })
	g := res.Frameworks.Gottman
	e.guard("nvc", func() { res.Frameworks.NVC = framework.NVC(e.lex, msgs, g) })
	e.guard("patterns", func() { res.Patterns = framework.Patterns(e.lex, msgs, g) })
	e.guard("risks", func() { res.Risks = framework.Risks(e.lex, msgs, g) })

	hs := b.InteractiveHighlights
	e.guard("sentiment", func() { res.Sentiment = sentiment.Score(e.lex, hs, conv.Text()) })
	e.guard("tone", func() { res.Tone = sentiment.Tone(hs) })

	e.guard("suggestions", func() {
		b.Suggestions = suggestion.Generate(suggestion.Input{
			Goal:       goal,
			Highlights: hs,
			Result:     b.Analysis,
		})
	})
	if len(b.Suggestions) < suggestion.MinSuggestions {
		b.Suggestions = fillerOnly()
	}

	return b
}

func (e *Engine) guard(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("analysis stage failed", "stage", stage, "panic", r)
		}
	}()
	fn()
}

func fillerOnly() []suggestion.Suggestion {
	out := make([]suggestion.Suggestion, suggestion.MinSuggestions)
	for i := range out {
		f := suggestion.Filler
		out[i] = suggestion.Suggestion{ID: i + 1, Text: f.Text, Style: f.Style, Rationale: f.Rationale, Framework: f.Framework}
	}
	return out
}
