package lexicon

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestIndex_WordBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		phrase string
		stem   bool
		want   int
	}{
		{"exact word", "ok then", "ok", false, 0},
		{"inside word", "book club", "ok", false, -1},
		{"later occurrence", "book ok", "ok", false, 5},
		{"but vs butter", "butter but", "but", false, 7},
		{"case insensitive", "You ALWAYS do this", "you always", false, 0},
		{"apostrophe phrase", "well, let's go", "let's", false, 6},
		{"followed by apostrophe", "I can't", "can", false, 2},
		{"stem matches longer word", "thanks a lot", "thank", true, 0},
		{"stem needs word start", "unthankful", "thank", true, -1},
		{"no stem needs word end", "thanks", "thank", false, -1},
		{"empty phrase", "anything", "", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Index(Lower(tt.text), tt.phrase, tt.stem)
			if got != tt.want {
				t.Errorf("Index(%q, %q, %v) = %d, want %d", tt.text, tt.phrase, tt.stem, got, tt.want)
			}
		})
	}
}

func TestLower_PreservesOffsets(t *testing.T) {
	in := "Ça VA? Thank YOU"
	out := Lower(in)
	if len(out) != len(in) {
		t.Fatalf("length changed: %d -> %d", len(in), len(out))
	}
	if out != "Ça va? thank you" {
		t.Errorf("Lower(%q) = %q", in, out)
	}
}

func TestFirstPerCategory(t *testing.T) {
	lex := Default()

	// Both criticism entries match, only the first is reported.
	matches := FirstPerCategory("You always say you should relax", lex.Concerns)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Entry.Category != CategoryCriticism || matches[0].Phrase != "you always" {
		t.Errorf("unexpected match %+v", matches[0])
	}

	matches = FirstPerCategory("Whatever, that's not true but fine", lex.Concerns)
	var cats []string
	for _, m := range matches {
		cats = append(cats, m.Entry.Category)
	}
	want := []string{CategoryDefensiveLanguage, CategoryDefensiveness, CategoryDismissiveLanguage}
	if len(cats) != len(want) {
		t.Fatalf("categories = %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("categories[%d] = %q, want %q", i, cats[i], want[i])
		}
	}
}

func TestEntryFind_Offsets(t *testing.T) {
	e := Entry{Category: "x", Phrases: []string{"leave me alone", "forget it"}}
	m, ok := e.Find("Just FORGET it.")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Start != 5 || m.End != 14 || m.Phrase != "forget it" {
		t.Errorf("match = %+v", m)
	}
}

func TestFindStem(t *testing.T) {
	start, stem, ok := FindStem("Really, I appreciate it. Thanks!", Default().AppreciationStems)
	if !ok {
		t.Fatal("expected a stem")
	}
	// "thank" is earlier in the list and matches "Thanks".
	if stem != "thank" || start != 25 {
		t.Errorf("FindStem = %d %q", start, stem)
	}
}

func TestCountWords(t *testing.T) {
	n := CountWords("Great! That's GOOD, really good.", []string{"good", "great"})
	if n != 3 {
		t.Errorf("CountWords = %d, want 3", n)
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("I'm so sorry", []string{"apologize", "sorry"}) {
		t.Error("expected sorry to match")
	}
	if ContainsAny("sorrow", []string{"sorry"}) {
		t.Error("did not expect sorrow to match")
	}
}

func TestWithOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	content := `
bids:
  Question Bid: ["How's It Going"]
responses:
  Turning Toward: ["for sure"]
concerns:
  Dismissive Language: ["k"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	o, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay: %v", err)
	}
	base := Default()
	lex, err := WithOverlay(base, o)
	if err != nil {
		t.Fatalf("WithOverlay: %v", err)
	}

	if !ContainsAny("how's it going", lex.Bids[0].Phrases) {
		t.Errorf("overlay bid missing: %v", lex.Bids[0].Phrases)
	}
	if ContainsAny("how's it going", base.Bids[0].Phrases) {
		t.Error("base lexicon was modified")
	}
	if _, ok := lex.Responses[0].Find("For sure!"); !ok {
		t.Error("overlay response phrase not matched")
	}
	if lex.Responses[0].Type != Toward {
		t.Errorf("response type changed to %q", lex.Responses[0].Type)
	}
}

func TestWithOverlay_UnknownCategory(t *testing.T) {
	_, err := WithOverlay(Default(), &Overlay{Positives: map[string][]string{"Nope": {"x"}}})
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestWithOverlay_NamedEntry(t *testing.T) {
	lex, err := WithOverlay(Default(), &Overlay{Concerns: map[string][]string{
		CategoryCriticism + "#2": {"you ought to"},
	}})
	if err != nil {
		t.Fatalf("WithOverlay: %v", err)
	}

	var directive *Entry
	for i := range lex.Concerns {
		if slices.Contains(lex.Concerns[i].Phrases, "you ought to") {
			directive = &lex.Concerns[i]
		}
	}
	if directive == nil {
		t.Fatal("overlay phrase not merged")
	}
	if !strings.HasPrefix(directive.Risk, "Directive language") {
		t.Errorf("phrase merged into wrong entry, risk = %q", directive.Risk)
	}
}

func TestWithOverlay_BadEntryNumber(t *testing.T) {
	tests := []string{
		CategoryCriticism + "#3",
		CategoryCriticism + "#0",
		CategoryCriticism + "#x",
		"Nope#1",
	}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			if _, err := WithOverlay(Default(), &Overlay{Concerns: map[string][]string{key: {"x"}}}); err == nil {
				t.Fatalf("expected error for key %q", key)
			}
		})
	}
}

func TestLoadOverlay_MissingFile(t *testing.T) {
	if _, err := LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConcernMatches_ShortDismissalIsStonewalling(t *testing.T) {
	lex := Default()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"short whatever", "Whatever.", []string{CategoryStonewalling}},
		{"three words", "fine, go ahead", []string{CategoryStonewalling}},
		{"long reply stays dismissive", "fine, I will do the dishes later", []string{CategoryDismissiveLanguage}},
		{"stonewall already present", "I'm done. Whatever", []string{CategoryStonewalling}},
		{"no concern", "sounds lovely", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := lex.ConcernMatches(tt.text)
			if len(matches) != len(tt.want) {
				t.Fatalf("ConcernMatches(%q) = %d matches, want %d", tt.text, len(matches), len(tt.want))
			}
			for i, m := range matches {
				if m.Entry.Category != tt.want[i] {
					t.Errorf("match[%d] category = %q, want %q", i, m.Entry.Category, tt.want[i])
				}
			}
		})
	}
}
