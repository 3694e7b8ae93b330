// Package validator sanity-checks that translated text actually came back in
// the requested target language.
package validator

import (
	"fmt"
	"strings"

	"github.com/tanveersultan53/polyglot/internal/detector"
)

// minCheckLength is the minimum rune count required to attempt language
// detection. Shorter texts produce unreliable results and pass unchecked.
const minCheckLength = 20

// Validator detects the language of a translation result and compares it to
// the requested target. The underlying detector is expensive to build; reuse
// the instance.
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// NewWithDetector shares an already-built detector.
func NewWithDetector(det *detector.Detector) *Validator {
	return &Validator{det: det}
}

// Check returns nil when translatedText appears to be written in targetLang.
// Texts too short or too ambiguous to classify pass; a confident mismatch
// returns an error naming both codes.
func (v *Validator) Check(translatedText, targetLang string) error {
	if targetLang == "" {
		return nil
	}

	text := strings.TrimSpace(translatedText)
	if text == "" {
		return fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minCheckLength {
		return nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return nil
	}

	// Compare primary subtags only: a "zh-CN" request detected as "zh" is
	// a match.
	want := strings.ToLower(strings.SplitN(targetLang, "-", 2)[0])
	if !strings.EqualFold(detected, want) {
		return fmt.Errorf("expected %s but detected %s", want, detected)
	}

	return nil
}
