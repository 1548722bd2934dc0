package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// SupportedLanguages maps the ISO 639-1 codes the app can analyze to display names
var SupportedLanguages = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"mr": "Marathi",
}

// Detector identifies which supported language a text is written in
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector restricted to the supported language set
func NewDetector() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.Hindi, lingua.Marathi).
		Build()

	return &Detector{detector: detector}
}

// Detect returns the ISO code of the detected language. Unsupported or
// undetectable input defaults to "en".
func (d *Detector) Detect(text string) string {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "en"
	}

	code := strings.ToLower(lang.IsoCode639_1().String())
	if _, supported := SupportedLanguages[code]; !supported {
		return "en"
	}
	return code
}

// Name returns the display name for a language code, "Unknown" otherwise
func Name(code string) string {
	if name, ok := SupportedLanguages[code]; ok {
		return name
	}
	return "Unknown"
}

// IsSupported reports whether a language code is in the supported set
func IsSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}
