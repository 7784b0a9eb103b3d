// Package langdetect provides the language identification adapter.
// Adapter implementing ports.LanguageDetector on top of lingua-go.
package langdetect

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// supportedLanguages mirrors the languages the translator has display names
// for. Restricting the detector to this set keeps detection fast and avoids
// misclassification into languages the pipeline would never translate to.
var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.Turkish,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Arabic,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
}

// LinguaDetector implements ports.LanguageDetector.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds the statistical models for the supported
// language set. Construction is expensive; do it once at startup.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build(),
	}
}

// Detect returns the lowercase ISO 639-1 code of the given text. Empty or
// unrecognizable input is an error; callers treat detection as advisory and
// fall back to their default language.
func (d *LinguaDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty text")
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", errors.New("language not recognized")
	}
	return strings.ToLower(language.IsoCode639_1().String()), nil
}
