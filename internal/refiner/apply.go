package refiner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/valpere/zonerefine/internal/zone"
)

// contractions maps a lowercase bare contraction to its fixed replacement.
var contractions = map[string]string{
	"im":       "I'm",
	"dont":     "don't",
	"didnt":    "didn't",
	"cant":     "can't",
	"wont":     "won't",
	"isnt":     "isn't",
	"arent":    "aren't",
	"wasnt":    "wasn't",
	"werent":   "weren't",
	"havent":   "haven't",
	"hasnt":    "hasn't",
	"wouldnt":  "wouldn't",
	"couldnt":  "couldn't",
	"shouldnt": "shouldn't",
}

// capitalizeAfterStopRe captures the punctuation/whitespace prefix and the
// lowercase letter that follows it.
var capitalizeAfterStopRe = regexp.MustCompile(`([.!?]\s+)([a-z])`)

// commaGuardWindow is how far before a conjunction an existing comma blocks
// the inserted one.
const commaGuardWindow = 15

// Apply performs the transform for action on z. It updates z.Text, counts a
// change when the text differs, adds the zone's current word count to
// z.TokensProcessed and reports whether the text changed. Actions without a
// transform, and transforms whose pattern is absent, leave the text as is.
func Apply(z *zone.Zone, action Action) bool {
	original := z.Text
	text := original

	switch action {
	case FixSpacing:
		text = strings.Join(strings.Fields(text), " ")
	case CapitalizeName:
		text = capitalizeName(text)
	case FixContractions:
		text = contractionRe.ReplaceAllStringFunc(text, func(word string) string {
			return contractions[strings.ToLower(word)]
		})
	case AddCompoundComma:
		text = addCompoundComma(text)
	case AddPeriod:
		text = strings.TrimSpace(text) + "."
	case CapitalizeAfterPeriod:
		text = capitalizeAfterStopRe.ReplaceAllStringFunc(text, strings.ToUpper)
	case CapitalizeFirst:
		text = capitalizeFirst(text)
	}

	changed := text != original
	if changed {
		z.MarkChange()
	}
	z.Text = text
	z.TokensProcessed += z.CountTokens()
	return changed
}

// capitalizeName uppercases the first letter of the name in the first
// name introduction.
func capitalizeName(text string) string {
	loc := nameIntroRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	return capitalizeAt(text, loc[2])
}

// addCompoundComma inserts a comma right after the word preceding the first
// qualifying conjunction, unless a comma already sits within
// commaGuardWindow bytes before the conjunction.
func addCompoundComma(text string) string {
	m, ok := findConjunction(text)
	if !ok {
		return text
	}
	if strings.Contains(tail(text[:m[6]], commaGuardWindow), ",") {
		return text
	}
	return text[:m[3]] + "," + text[m[3]:]
}

// capitalizeFirst uppercases the first character when it is lowercase.
func capitalizeFirst(text string) string {
	r, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsLower(r) {
		return text
	}
	return capitalizeAt(text, 0)
}

// capitalizeAt uppercases the rune starting at byte offset i.
func capitalizeAt(text string, i int) string {
	r, size := utf8.DecodeRuneInString(text[i:])
	if r == utf8.RuneError {
		return text
	}
	return text[:i] + string(unicode.ToUpper(r)) + text[i+size:]
}
