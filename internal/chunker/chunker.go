// Package chunker splits prose into sentences and groups consecutive
// sentences into zone-sized chunks. The group size adapts to the sentence
// count so that short texts stay in one piece while long texts get a zone
// count that scales with their structure.
package chunker

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultPreviewWords is the number of leading words returned by
	// Preview when a non-positive count is given.
	DefaultPreviewWords = 8
)

// sentenceBoundaryRe matches sentence-ending punctuation and the whitespace
// run that follows it. The split happens after the punctuation mark.
var sentenceBoundaryRe = regexp.MustCompile(`[.!?]\s+`)

// Sentences splits text into sentences at every '.', '!' or '?' that is
// followed by whitespace. The input is NFC-normalized and trimmed first;
// empty fragments are discarded. Whitespace-only text yields nil.
func Sentences(text string) []string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation byte; keep it with the sentence.
		if s := text[start : loc[0]+1]; strings.TrimSpace(s) != "" {
			sentences = append(sentences, s)
		}
		start = loc[1]
	}
	if s := text[start:]; strings.TrimSpace(s) != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// GroupSize returns how many sentences go into one chunk for a text of n
// sentences:
//
//	n ≤ 2      → n (a single chunk)
//	3 ≤ n ≤ 5  → 2
//	n > 5      → 3
func GroupSize(n int) int {
	switch {
	case n <= 2:
		return n
	case n <= 5:
		return 2
	default:
		return 3
	}
}

// Group joins consecutive sentences into chunks of GroupSize(len(sentences))
// sentences each, separated by a single space. The last chunk may be
// shorter.
func Group(sentences []string) []string {
	n := len(sentences)
	if n == 0 {
		return nil
	}
	k := GroupSize(n)

	chunks := make([]string, 0, (n+k-1)/k)
	for i := 0; i < n; i += k {
		end := i + k
		if end > n {
			end = n
		}
		if chunk := strings.Join(sentences[i:end], " "); strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
	}
	return chunks
}

// Preview returns the first wordCount words of text joined by single
// spaces, with "..." appended when words were dropped. If wordCount ≤ 0,
// DefaultPreviewWords is used.
func Preview(text string, wordCount int) string {
	if wordCount <= 0 {
		wordCount = DefaultPreviewWords
	}
	words := strings.Fields(text)
	if len(words) <= wordCount {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:wordCount], " ") + "..."
}
