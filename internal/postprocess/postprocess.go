// Package postprocess applies the polish pass that runs after every
// refinement action. Polish is a fixed sequence of regex normalizations on
// spacing, punctuation and a few casing conventions; it is idempotent on
// its own output.
package postprocess

import (
	"regexp"
	"strings"

	"github.com/valpere/zonerefine/internal/zone"
)

// Polish normalizes text in six phases and returns the result:
//  1. Whitespace before punctuation removal
//  2. Single space after punctuation followed by a letter
//  3. Whitespace run collapsing
//  4. Standalone "i" pronoun capitalization
//  5. Repeated period and comma collapsing
//  6. Comma insertion in "like X Y and Z" enumerations
func Polish(text string) string {
	text = tightenPunctuation(text)
	text = collapseWhitespace(text)
	text = capitalizePronoun(text)
	text = collapseRepeats(text)
	text = punctuateLists(text)
	return text
}

// PolishZone polishes z.Text in place, counting a change on z when the text
// differs. It reports whether anything changed.
func PolishZone(z *zone.Zone) bool {
	polished := Polish(z.Text)
	if polished == z.Text {
		return false
	}
	z.Text = polished
	z.MarkChange()
	return true
}

// --- Phases 1-2: punctuation spacing ---

var (
	// The whitespace class matches everything strings.Fields splits on, so
	// phase 3 cannot leave a space in front of punctuation.
	spaceBeforePunctRe  = regexp.MustCompile(`[\s\v\x{85}\p{Zs}]+([,.!?;:])`)
	punctBeforeLetterRe = regexp.MustCompile(`([,.!?;:])([A-Za-z])`)
)

func tightenPunctuation(text string) string {
	text = spaceBeforePunctRe.ReplaceAllString(text, "$1")
	return punctBeforeLetterRe.ReplaceAllString(text, "$1 $2")
}

// --- Phase 3: whitespace ---

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// --- Phase 4: pronoun ---

var pronounRe = regexp.MustCompile(`\bi\b`)

func capitalizePronoun(text string) string {
	return pronounRe.ReplaceAllString(text, "I")
}

// --- Phase 5: repeated punctuation ---

var (
	repeatedPeriodRe = regexp.MustCompile(`\.\.+`)
	repeatedCommaRe  = regexp.MustCompile(`,,+`)
)

func collapseRepeats(text string) string {
	text = repeatedPeriodRe.ReplaceAllString(text, ".")
	return repeatedCommaRe.ReplaceAllString(text, ",")
}

// --- Phase 6: simple enumerations ---

// likeListRe matches "like X Y and Z" where X, Y and Z are single words.
// The word "like" keeps its original case.
var likeListRe = regexp.MustCompile(`(?i)\b(like)\s+([a-z]+)\s+([a-z]+)\s+and\s+([a-z]+)`)

func punctuateLists(text string) string {
	return likeListRe.ReplaceAllString(text, "${1} ${2}, ${3} and ${4}")
}
