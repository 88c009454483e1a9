// Package validator guards the refinement engine against input its English
// rule set was not written for.
package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valpere/zonerefine/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// ErrUnsupportedLanguage is returned when input is confidently detected as
// something other than English.
var ErrUnsupportedLanguage = errors.New("unsupported input language")

// Validator checks that input prose is English.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

// New creates a Validator backed by the lingua-go language detector.
func New() *Validator {
	return &Validator{det: detector.New()}
}

// CheckEnglish returns nil when text is English, too short to judge, empty,
// or of undeterminable language. Otherwise it returns an error wrapping
// ErrUnsupportedLanguage that names the detected language.
func (v *Validator) CheckEnglish(text string) error {
	text = strings.TrimSpace(text)

	// Detector is unreliable for very short texts; skip validation.
	if len([]rune(text)) < minValidationLength {
		return nil
	}

	english, ok := v.det.IsEnglish(text)
	if !ok || english {
		return nil
	}

	code, _ := v.det.DetectISO(text)
	return fmt.Errorf("%w: detected %s, rules are written for EN", ErrUnsupportedLanguage, code)
}
