package refiner

import (
	"testing"

	"github.com/valpere/zonerefine/internal/zone"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		action      Action
		expected    string
		wantChanged bool
	}{
		{"fix spacing", "Hello   world.\t Bye.", FixSpacing, "Hello world. Bye.", true},
		{"fix spacing noop", "Hello world.", FixSpacing, "Hello world.", false},
		{"capitalize name", "Hi, my name is bob and he is called tom.", CapitalizeName, "Hi, my name is Bob and he is called tom.", true},
		{"capitalize name i'm", "Hey, I'm sarah.", CapitalizeName, "Hey, I'm Sarah.", true},
		{"capitalize name noop", "My name is Bob.", CapitalizeName, "My name is Bob.", false},
		{"fix contractions", "im sure they dont and CANT.", FixContractions, "I'm sure they don't and can't.", true},
		{"fix contractions all", "didnt isnt arent wasnt werent havent hasnt wouldnt couldnt shouldnt wont", FixContractions,
			"didn't isn't aren't wasn't weren't haven't hasn't wouldn't couldn't shouldn't won't", true},
		{"fix contractions whole words only", "Imagine dontcha.", FixContractions, "Imagine dontcha.", false},
		{"add compound comma", "I went to the shop but it was closed.", AddCompoundComma, "I went to the shop, but it was closed.", true},
		{"add compound comma first qualifying", "Oh. Yes but we went to the shop so it was fine.", AddCompoundComma,
			"Oh. Yes but we went to the shop, so it was fine.", true},
		{"add compound comma guarded", "One two three, four six so on.", AddCompoundComma, "One two three, four six so on.", false},
		{"add compound comma noop", "Tired but happy.", AddCompoundComma, "Tired but happy.", false},
		{"add period", "  hello world  ", AddPeriod, "hello world.", true},
		{"add period always appends", "Done.", AddPeriod, "Done..", true},
		{"capitalize after period", "One. two! three? four.", CapitalizeAfterPeriod, "One. Two! Three? Four.", true},
		{"capitalize after period noop", "One. Two.", CapitalizeAfterPeriod, "One. Two.", false},
		{"capitalize first", "hello.", CapitalizeFirst, "Hello.", true},
		{"capitalize first conjunction", "but why.", CapitalizeFirst, "But why.", true},
		{"capitalize first unicode", "élan.", CapitalizeFirst, "Élan.", true},
		{"capitalize first single char", "a", CapitalizeFirst, "A", true},
		{"capitalize first noop", "Hello.", CapitalizeFirst, "Hello.", false},
		{"capitalize first empty", "", CapitalizeFirst, "", false},
		{"no change", "whatever", NoChange, "whatever", false},
		{"unknown action", "whatever", Action("shout"), "whatever", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := zone.New(1, tt.text, zone.Intro)
			changed := Apply(z, tt.action)
			if z.Text != tt.expected {
				t.Errorf("Apply(%q, %q) text = %q, want %q", tt.text, tt.action, z.Text, tt.expected)
			}
			if changed != tt.wantChanged {
				t.Errorf("Apply(%q, %q) changed = %v, want %v", tt.text, tt.action, changed, tt.wantChanged)
			}
			wantChanges := 0
			if tt.wantChanged {
				wantChanges = 1
			}
			if z.ChangesMade != wantChanges {
				t.Errorf("ChangesMade = %d, want %d", z.ChangesMade, wantChanges)
			}
			if z.TokensProcessed != z.CountTokens() {
				t.Errorf("TokensProcessed = %d, want %d", z.TokensProcessed, z.CountTokens())
			}
			if z.OriginalText != tt.text {
				t.Errorf("OriginalText changed to %q", z.OriginalText)
			}
		})
	}
}

func TestApply_TokensAccumulate(t *testing.T) {
	z := zone.New(1, "one two three", zone.Body)
	Apply(z, AddPeriod)
	Apply(z, CapitalizeFirst)
	Apply(z, FixSpacing)
	if z.TokensProcessed != 9 {
		t.Errorf("TokensProcessed = %d, want 9", z.TokensProcessed)
	}
	if z.ChangesMade != 2 {
		t.Errorf("ChangesMade = %d, want 2", z.ChangesMade)
	}
}

// Every action the predictor selects must make progress on the text that
// triggered it.
func TestPredictedActionChangesText(t *testing.T) {
	texts := []string{
		"hello world",
		"Hello  world.",
		"I dont know.",
		"hello world.",
		"My name is bob.",
		"I went to the shop but it was closed.",
		"Done. then more.",
	}
	for _, text := range texts {
		z := zone.New(1, text, zone.Intro)
		action := Predict(z)
		if action == NoChange {
			t.Fatalf("expected an action for %q", text)
		}
		if !Apply(z, action) {
			t.Errorf("%q on %q made no change", action, text)
		}
	}
}
