package lexicon

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overlay adds phrases to existing lexicon entries. A key is a category name
// such as "Question Bid", which selects the first entry of that category, or
// "Criticism Pattern#2" for a later one. The phrase inherits the selected
// entry's explanation, suggestion and risk text.
type Overlay struct {
	Bids      map[string][]string `yaml:"bids,omitempty"`
	Responses map[string][]string `yaml:"responses,omitempty"`
	Positives map[string][]string `yaml:"positives,omitempty"`
	Concerns  map[string][]string `yaml:"concerns,omitempty"`
}

// LoadOverlay reads an overlay file.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}
	return &o, nil
}

// WithOverlay returns a copy of base with the overlay phrases appended to the
// entries the keys select. base is left untouched.
func WithOverlay(base *Lexicon, o *Overlay) (*Lexicon, error) {
	lex := base.clone()
	if o == nil {
		return lex, nil
	}

	if err := mergeEntries("bids", lex.Bids, o.Bids); err != nil {
		return nil, err
	}
	if err := mergeEntries("positives", lex.Positives, o.Positives); err != nil {
		return nil, err
	}
	if err := mergeEntries("concerns", lex.Concerns, o.Concerns); err != nil {
		return nil, err
	}

	responses := make([]Entry, len(lex.Responses))
	for i, r := range lex.Responses {
		responses[i] = r.Entry
	}
	if err := mergeEntries("responses", responses, o.Responses); err != nil {
		return nil, err
	}
	for i := range lex.Responses {
		lex.Responses[i].Entry = responses[i]
	}

	return lex, nil
}

func mergeEntries(table string, entries []Entry, extra map[string][]string) error {
	for key, phrases := range extra {
		idx, err := entryIndex(entries, key)
		if err != nil {
			return fmt.Errorf("overlay %s: %w", table, err)
		}
		for _, p := range phrases {
			p = strings.TrimSpace(Lower(p))
			if p != "" {
				entries[idx].Phrases = append(entries[idx].Phrases, p)
			}
		}
	}
	return nil
}

// entryIndex resolves "Category" to the first entry of that category and
// "Category#N" to its Nth entry, counting from 1.
func entryIndex(entries []Entry, key string) (int, error) {
	category, nth := key, 1
	if i := strings.LastIndexByte(key, '#'); i >= 0 {
		n, err := strconv.Atoi(key[i+1:])
		if err != nil || n < 1 {
			return -1, fmt.Errorf("invalid entry number in %q", key)
		}
		category, nth = strings.TrimSpace(key[:i]), n
	}

	seen := 0
	for i := range entries {
		if entries[i].Category != category {
			continue
		}
		if seen++; seen == nth {
			return i, nil
		}
	}
	if seen == 0 {
		return -1, fmt.Errorf("unknown category %q", category)
	}
	return -1, fmt.Errorf("category %q has %d entries, not %d", category, seen, nth)
}

func (l *Lexicon) clone() *Lexicon {
	c := *l
	c.Bids = cloneEntries(l.Bids)
	c.Positives = cloneEntries(l.Positives)
	c.Concerns = cloneEntries(l.Concerns)
	c.Responses = make([]ResponseEntry, len(l.Responses))
	for i, r := range l.Responses {
		c.Responses[i] = ResponseEntry{Entry: cloneEntry(r.Entry), Type: r.Type}
	}
	return &c
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e Entry) Entry {
	e.Phrases = append([]string(nil), e.Phrases...)
	return e
}
