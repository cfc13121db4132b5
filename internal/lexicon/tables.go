package lexicon

// Categories shared across the engine.
const (
	CategoryQuestionBid        = "Question Bid"
	CategoryActivityBid        = "Activity Bid"
	CategoryEmotionalBid       = "Emotional Bid"
	CategorySpecificApology    = "Specific Apology"
	CategoryRepairAttempt      = "Repair Attempt"
	CategoryBidForConnection   = "Bid for Connection"
	CategoryTurningToward      = "Turning Toward"
	CategoryTurningAway        = "Turning Away"
	CategoryTurningAgainst     = "Turning Against"
	CategoryAppreciation       = "Appreciation"
	CategoryValidation         = "Validation"
	CategoryEmpathy            = "Empathy/Sympathy"
	CategoryAccountability     = "Specific Accountability"
	CategoryImpactAwareness    = "Impact Awareness"
	CategoryDefensiveLanguage  = "Defensive Language"
	CategoryCriticism          = "Criticism Pattern"
	CategoryDefensiveness      = "Defensiveness Pattern"
	CategoryStonewalling       = "Stonewalling Pattern"
	CategoryDismissiveLanguage = "Dismissive Language"
)

var defaultLexicon = build()

// Default returns the built-in lexicon. Callers must not modify it.
func Default() *Lexicon {
	return defaultLexicon
}

func build() *Lexicon {
	return &Lexicon{
		Bids:      bidEntries(),
		Responses: responseEntries(),
		Positives: positiveEntries(),
		Concerns:  concernEntries(),

		AppreciationStems: []string{"thank", "thanks", "appreciate"},
		ApologyWords:      []string{"sorry", "apologize", "apologise"},
		QuestionStarters: []string{
			"how", "what", "when", "where", "why", "who",
			"can", "could", "would", "should", "do", "did", "are", "is",
		},
		EmotionWords: []string{
			"feel", "feeling", "happy", "sad", "angry", "hurt", "excited",
			"worried", "frustrated", "scared", "upset", "anxious", "lonely",
			"grateful", "disappointed", "overwhelmed", "love",
		},
		NeedWords: []string{
			"need", "needs", "want", "wish", "hope", "would like", "important to me",
		},

		PositiveWords: []string{
			"love", "great", "awesome", "happy", "good", "thanks", "appreciate",
			"wonderful", "amazing", "perfect",
		},
		NegativeWords: []string{
			"hate", "terrible", "awful", "sad", "bad", "angry", "frustrated",
			"disappointed", "upset", "horrible",
		},
		NeutralWords: []string{"ok", "okay", "fine", "maybe", "alright", "whatever"},
	}
}

func bidEntries() []Entry {
	return []Entry{
		{Category: CategoryQuestionBid, Phrases: []string{"how are"},
			Explanation: `This is a "bid" - an attempt to connect. Responding positively builds relationship strength.`,
			Suggestion:  "Great question! This shows genuine interest. Consider following up with active listening."},
		{Category: CategoryQuestionBid, Phrases: []string{"how was"},
			Explanation: "This shows genuine interest in their experience.",
			Suggestion:  `Perfect way to show you care about their day. Follow up with "Tell me more about that."`},
		{Category: CategoryQuestionBid, Phrases: []string{"what do"},
			Explanation: "Asking questions shows curiosity and care.",
			Suggestion:  "Good question! Shows you value their opinion. Listen actively to their response."},
		{Category: CategoryQuestionBid, Phrases: []string{"how did"},
			Explanation: "Following up on their experiences builds connection.",
			Suggestion:  "Nice follow-up question! This shows you remember and care about their experiences."},
		{Category: CategoryQuestionBid, Phrases: []string{"tell me"},
			Explanation: "Inviting them to share creates intimacy.",
			Suggestion:  "Excellent invitation to share! This creates space for deeper connection."},
		{Category: CategoryQuestionBid, Phrases: []string{"what happened"},
			Explanation: "Showing interest in their story builds bonds.",
			Suggestion:  "Great way to show concern and interest. Listen without trying to fix unless they ask."},
		{Category: CategoryActivityBid, Phrases: []string{"want to"},
			Explanation: `This is a "bid" - an attempt to connect through shared activity.`,
			Suggestion:  "Nice invitation! This shows you want to spend quality time together."},
		{Category: CategoryActivityBid, Phrases: []string{"let's"},
			Explanation: "Suggesting activities together builds shared experiences.",
			Suggestion:  "Great collaborative approach! This builds partnership and shared memories."},
		{Category: CategoryActivityBid, Phrases: []string{"should we"},
			Explanation: "Collaborative planning strengthens partnerships.",
			Suggestion:  "Perfect collaborative language! This shows you see them as an equal partner."},
		{Category: CategoryEmotionalBid, Phrases: []string{"i feel"},
			Explanation: "Sharing feelings is vulnerable and builds connection.",
			Suggestion:  "Brave emotional sharing! This vulnerability creates deeper intimacy."},
		{Category: CategoryEmotionalBid, Phrases: []string{"i think"},
			Explanation: "Sharing thoughts creates intellectual intimacy.",
			Suggestion:  "Good way to share your perspective while staying open to theirs."},
		{Category: CategoryEmotionalBid, Phrases: []string{"i'm excited"},
			Explanation: "Sharing positive emotions invites others to celebrate with you.",
			Suggestion:  "Beautiful enthusiasm! This invites them to share in your joy."},
		{Category: CategoryEmotionalBid, Phrases: []string{"i'm worried"},
			Explanation: "Sharing concerns invites support and understanding.",
			Suggestion:  "Honest vulnerability. This opens the door for support and comfort."},
		{Category: CategoryEmotionalBid, Phrases: []string{"i love"},
			Explanation: "Expressing love and appreciation strengthens bonds.",
			Suggestion:  "Wonderful expression of appreciation! This builds positive emotional connection."},
		{Category: CategorySpecificApology, Phrases: []string{"i'm sorry for"},
			Explanation: "Taking specific responsibility shows maturity and care for the relationship.",
			Suggestion:  "Excellent specific apology! This shows you understand exactly how you affected them."},
		{Category: CategorySpecificApology, Phrases: []string{"i'm sorry that i"},
			Explanation: "Taking personal responsibility for your actions shows accountability.",
			Suggestion:  "Perfect accountability! This shows you understand your role in what happened."},
		{Category: CategoryRepairAttempt, Phrases: []string{"my bad"},
			Explanation: "Informal but genuine acknowledgment of responsibility.",
			Suggestion:  "Taking responsibility is mature. Consider being more specific about what you'll do differently."},
	}
}

func responseEntries() []ResponseEntry {
	return []ResponseEntry{
		{Type: Toward, Entry: Entry{
			Category:    CategoryTurningToward,
			Phrases:     []string{"yes", "yeah", "sure", "sounds good", "i'd love to", "that sounds", "absolutely", "definitely"},
			Explanation: "This positive response builds connection and shows engagement.",
			Suggestion:  "Perfect! Keep showing this enthusiasm for their bids.",
		}},
		{Type: Away, Entry: Entry{
			Category:    CategoryTurningAway,
			Phrases:     []string{"ok", "okay", "fine", "maybe", "i guess"},
			Explanation: "This brief response may miss the connection opportunity.",
			Suggestion:  `Consider showing more engagement: "That sounds interesting, tell me more!"`,
		}},
		{Type: Against, Entry: Entry{
			Category:    CategoryTurningAgainst,
			Phrases:     []string{"not now", "busy", "can't", "don't want"},
			Explanation: "This response may damage the relationship connection.",
			Suggestion:  `Try: "I can't right now, but I'd love to talk about this later. When works for you?"`,
		}},
	}
}

func positiveEntries() []Entry {
	return []Entry{
		{Category: CategoryAppreciation,
			Phrases:     []string{"thank you", "thanks", "appreciate"},
			Explanation: "Expressing gratitude strengthens relationships and creates positive connection.",
			Suggestion:  "Keep expressing specific appreciation like this - it builds strong emotional bonds!"},
		{Category: CategoryValidation,
			Phrases:     []string{"i understand", "that makes sense", "i can see"},
			Explanation: "Acknowledging their perspective creates emotional safety and shows you care.",
			Suggestion:  "Excellent validation! Continue showing this level of empathy and understanding."},
		{Category: CategoryEmpathy,
			Phrases: []string{
				"sorry that happened", "sorry to hear that", "i'm sorry that happened",
				"sorry you're going through", "i'm sorry you're", "sorry you had to",
			},
			Explanation: "Expressing empathy for someone else's difficult experience shows genuine care and emotional intelligence.",
			Suggestion:  "Beautiful empathy! This kind of genuine care strengthens your connection."},
		{Category: CategoryRepairAttempt,
			Phrases:     []string{"let me try again", "can we start over", "i want to understand", "help me get this right"},
			Explanation: "Attempting to repair and reconnect shows emotional maturity and commitment to the relationship.",
			Suggestion:  "Fantastic repair attempt! You're prioritizing the relationship - keep doing this."},
		{Category: CategoryAccountability,
			Phrases:     []string{"especially for"},
			Explanation: "Being specific about your actions shows deep accountability and understanding of impact.",
			Suggestion:  "Outstanding accountability! This shows you understand exactly how your actions affected them."},
		{Category: CategoryImpactAwareness,
			Phrases:     []string{"stressing you out"},
			Explanation: "Acknowledging the specific emotional impact shows high emotional intelligence.",
			Suggestion:  "Perfect impact awareness! This shows you truly understand how they felt."},
	}
}

func concernEntries() []Entry {
	return []Entry{
		{Category: CategoryDefensiveLanguage,
			Phrases:     []string{"but", "however", "actually"},
			Explanation: "This language pattern might create distance or defensiveness.",
			Suggestion:  `Try: "I hear you, and I also think..." instead of "but" to sound less dismissive.`,
			Risk:        "Defensive language detected - consider using 'and' instead of 'but'"},
		{Category: CategoryCriticism,
			Phrases:     []string{"you always", "you never"},
			Explanation: "Absolute statements can trigger defensiveness.",
			Suggestion:  `Try: "I feel hurt when this happens" instead of "you always/never"`,
			Risk:        "Absolute language ('you always' / 'you never') detected - this can feel like an attack on character"},
		{Category: CategoryCriticism,
			Phrases:     []string{"you should", "you need to", "why don't you", "why can't you"},
			Explanation: "These phrases can sound critical and judgmental.",
			Suggestion:  `Try: "I would appreciate if..." or "It would help me if..."`,
			Risk:        "Directive language ('you should') detected - requests land better than instructions"},
		{Category: CategoryDefensiveness,
			Phrases:     []string{"that's not true", "i never said that", "you're wrong", "that's ridiculous"},
			Explanation: "Defensive responses can escalate conflict and prevent understanding.",
			Suggestion:  `Try: "I see it differently" or "Help me understand your perspective"`,
			Risk:        "Defensiveness detected - counter-attacks tend to escalate conflict"},
		{Category: CategoryStonewalling,
			Phrases:     []string{"i don't want to talk", "leave me alone", "i'm done", "forget it"},
			Explanation: "Withdrawing from conversation can damage connection over time.",
			Suggestion:  `Try: "I need a break to process this. Can we talk in 20 minutes?"`,
			Risk:        "Stonewalling detected - withdrawing from the conversation can damage connection"},
		{Category: CategoryDismissiveLanguage,
			Phrases:     []string{"whatever", "fine"},
			Explanation: "These responses might signal disconnection.",
			Suggestion:  `If you're overwhelmed, try: "I need a moment to process this thoughtfully."`,
			Risk:        "Dismissive replies detected - short answers like 'whatever' can signal disconnection"},
	}
}
