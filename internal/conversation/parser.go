package conversation

import (
	"fmt"
	"regexp"
	"strings"
)

// UnknownSpeaker is assigned to lines that carry no "Speaker: text" prefix.
const UnknownSpeaker = "Unknown"

// Message is a single speaker-attributed line of a transcript.
type Message struct {
	ID        string `json:"id"`
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
	IsUser    bool   `json:"isUser"`
}

// Conversation is the parsed form of a pasted transcript.
type Conversation struct {
	Messages []Message `json:"messages"`
	Speakers []string  `json:"speakers"`
}

// WhatsApp-style exports prefix each line with "[10:30 AM] ".
var timestampPrefix = regexp.MustCompile(`^\[([^\]]+)\]\s*`)

// Parse splits raw transcript text into messages. It never fails: lines
// without a speaker delimiter become messages from UnknownSpeaker.
func Parse(text string) Conversation {
	conv := Conversation{
		Messages: []Message{},
		Speakers: []string{},
	}
	seen := make(map[string]bool)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		var timestamp string
		if m := timestampPrefix.FindStringSubmatch(line); m != nil && len(m[0]) < len(line) {
			timestamp = strings.TrimSpace(m[1])
			line = strings.TrimSpace(line[len(m[0]):])
		}

		msg := Message{
			ID:        fmt.Sprintf("msg-%d", len(conv.Messages)),
			Speaker:   UnknownSpeaker,
			Text:      line,
			Timestamp: timestamp,
		}

		if speaker, body, ok := splitSpeaker(line); ok {
			msg.Speaker = speaker
			msg.Text = body
			msg.IsUser = isUserSpeaker(speaker)
			if !seen[speaker] {
				seen[speaker] = true
				conv.Speakers = append(conv.Speakers, speaker)
			}
		}

		conv.Messages = append(conv.Messages, msg)
	}

	return conv
}

// splitSpeaker matches "<speaker>: <message>" on the first colon. Both sides
// must be non-empty after trimming.
func splitSpeaker(line string) (speaker, body string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx <= 0 {
		return "", "", false
	}
	speaker = strings.TrimSpace(line[:idx])
	body = strings.TrimSpace(line[idx+1:])
	if speaker == "" || body == "" {
		return "", "", false
	}
	return speaker, body, true
}

func isUserSpeaker(speaker string) bool {
	switch strings.ToLower(speaker) {
	case "me", "i":
		return true
	default:
		return false
	}
}

// Text joins the message bodies, one per line. Speaker names are excluded so
// that counting over the transcript never picks up a speaker label.
func (c Conversation) Text() string {
	parts := make([]string, len(c.Messages))
	for i, m := range c.Messages {
		parts[i] = m.Text
	}
	return strings.Join(parts, "\n")
}

// ByID returns the message with the given id.
func (c Conversation) ByID(id string) (Message, bool) {
	for _, m := range c.Messages {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}
