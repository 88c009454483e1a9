// Package detector identifies the language of input prose. The refinement
// rules only make sense for English, so callers use it to flag other input.
package detector

import (
	lingua "github.com/pemistahl/lingua-go"
)

// candidates limits detection to languages commonly mistaken for, or mixed
// with, English prose. A smaller model set builds faster and is more
// decisive on short inputs.
var candidates = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
	lingua.Russian,
	lingua.Ukrainian,
}

type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(candidates...).
		WithPreloadedLanguageModels().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return lang.IsoCode639_1().String(), true
}

// IsEnglish reports whether text was detected as English. The second result
// is false when no language could be determined.
func (d *Detector) IsEnglish(text string) (bool, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return false, false
	}
	return lang == lingua.English, true
}
