package refiner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/valpere/zonerefine/internal/zone"
)

var (
	// contractionRe matches the unapostrophized contractions as whole
	// words, in any case.
	contractionRe = regexp.MustCompile(`(?i)\b(im|dont|didnt|cant|wont|isnt|arent|wasnt|werent|havent|hasnt|wouldnt|couldnt|shouldnt)\b`)

	// nameIntroRe matches a name introduction followed by a lowercase name.
	// Only the introducing phrase is case-insensitive.
	nameIntroRe = regexp.MustCompile(`(?i:name is|i am|i'm|called)\s+([a-z]\w+)`)

	// conjunctionRe matches a word, a coordinating conjunction and the
	// whitespace around it. Group 1 is the preceding word, group 3 the
	// conjunction.
	conjunctionRe = regexp.MustCompile(`(?i)(\w+)(\s+)(but|so|yet)(\s+)`)

	// lowerAfterStopRe matches sentence-final punctuation, whitespace and a
	// lowercase letter.
	lowerAfterStopRe = regexp.MustCompile(`[.!?]\s+[a-z]`)
)

const (
	// conjunctionWindow is how far before a conjunction a comma or period
	// suppresses the compound-comma rule.
	conjunctionWindow = 10
	// conjunctionMinWords is the number of words that must precede a
	// conjunction for it to start an independent clause.
	conjunctionMinWords = 3
)

// rule pairs a guard with the action it selects.
type rule struct {
	action Action
	match  func(z *zone.Zone) bool
}

// rules is evaluated top to bottom; the first matching guard wins.
var rules = []rule{
	{AddPeriod, needsPeriod},
	{FixSpacing, hasDoubleSpace},
	{FixContractions, hasBareContraction},
	{CapitalizeFirst, startsLowercase},
	{CapitalizeName, hasLowercaseName},
	{AddCompoundComma, hasBareConjunction},
	{CapitalizeAfterPeriod, hasLowercaseAfterStop},
	{AddPeriod, needsPeriod},
}

// Predict returns the highest-priority action whose guard matches the zone,
// or NoChange when none does.
func Predict(z *zone.Zone) Action {
	for _, r := range rules {
		if r.match(z) {
			return r.action
		}
	}
	return NoChange
}

func needsPeriod(z *zone.Zone) bool {
	return strings.TrimSpace(z.Text) != "" && !z.HasTerminalPunctuation()
}

func hasDoubleSpace(z *zone.Zone) bool {
	return strings.Contains(z.Text, "  ")
}

func hasBareContraction(z *zone.Zone) bool {
	return contractionRe.MatchString(z.Text)
}

func startsLowercase(z *zone.Zone) bool {
	r, _ := utf8.DecodeRuneInString(z.Text)
	return unicode.IsLower(r)
}

func hasLowercaseName(z *zone.Zone) bool {
	return z.Type == zone.Intro && nameIntroRe.MatchString(z.Text)
}

func hasBareConjunction(z *zone.Zone) bool {
	_, ok := findConjunction(z.Text)
	return ok
}

func hasLowercaseAfterStop(z *zone.Zone) bool {
	return lowerAfterStopRe.MatchString(z.Text)
}

// findConjunction locates the first conjunction that joins two clauses
// without punctuation: at least conjunctionMinWords words precede it and
// the conjunctionWindow bytes before it hold no comma or period. It returns
// the submatch indices of that occurrence.
func findConjunction(text string) ([]int, bool) {
	for _, m := range conjunctionRe.FindAllStringSubmatchIndex(text, -1) {
		before := text[:m[6]]
		if strings.ContainsAny(tail(before, conjunctionWindow), ",.") {
			continue
		}
		if len(strings.Fields(before)) < conjunctionMinWords {
			continue
		}
		return m, true
	}
	return nil, false
}

// tail returns the last n bytes of s, or s itself when it is shorter.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
