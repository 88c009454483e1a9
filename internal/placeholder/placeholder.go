// Package placeholder shields spans that the refinement rules would mangle
// (code, URLs, e-mail addresses) by swapping them for numbered markers
// ([PH0], [PH1], …) before refinement. Restore puts the originals back.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// fenced code blocks: ```...``` (non-greedy, may span lines)
	reFencedCode = regexp.MustCompile("(?s)```.*?```")

	// inline code spans: `...`
	reInlineCode = regexp.MustCompile("`[^`]+`")

	// URLs with a scheme or a www. prefix; trailing sentence punctuation
	// is left outside the match.
	reURL = regexp.MustCompile(`(?i)(?:https?://|www\.)[^\s]*[^\s.,!?;:)]`)

	// e-mail addresses
	reEmail = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9-]+(?:\.[a-z0-9-]+)*\.[a-z]{2,}`)

	// placeholder reference in refined text
	rePlaceholder = regexp.MustCompile(`\[PH(\d+)\]`)
)

// Protect replaces code, URLs and e-mail addresses with numbered
// placeholders in the order they are found. It returns the modified text and
// the captured originals for Restore.
func Protect(text string) (string, []string) {
	var markers []string

	replace := func(match string) string {
		id := fmt.Sprintf("[PH%d]", len(markers))
		markers = append(markers, match)
		return id
	}

	// Order matters: code first so URLs inside code stay part of the block.
	text = reFencedCode.ReplaceAllStringFunc(text, replace)
	text = reInlineCode.ReplaceAllStringFunc(text, replace)
	text = reURL.ReplaceAllStringFunc(text, replace)
	text = reEmail.ReplaceAllStringFunc(text, replace)

	return text, markers
}

// Restore substitutes [PHn] markers in text with the originals captured by
// Protect. Unknown indices leave the marker as is.
func Restore(text string, markers []string) string {
	if len(markers) == 0 {
		return text
	}
	return rePlaceholder.ReplaceAllStringFunc(text, func(match string) string {
		sub := rePlaceholder.FindStringSubmatch(match)
		idx, err := strconv.Atoi(sub[1])
		if err != nil || idx >= len(markers) {
			return match
		}
		return markers[idx]
	})
}

// Validate returns the indices of markers that no longer appear in text.
func Validate(text string, markers []string) []int {
	var missing []int
	for i := range markers {
		if !strings.Contains(text, fmt.Sprintf("[PH%d]", i)) {
			missing = append(missing, i)
		}
	}
	return missing
}
