package language

import (
	"context"

	"github.com/newsguard/newsguard/internal/models"
)

// Service bundles detection and translation for the verification pipeline
type Service struct {
	detector   *Detector
	translator *Translator
}

// NewService creates a language service with a detector and translator
func NewService() *Service {
	return &Service{
		detector:   NewDetector(),
		translator: NewTranslator(),
	}
}

// Detect returns the ISO code of the text's language
func (s *Service) Detect(text string) string {
	return s.detector.Detect(text)
}

// Info returns the detected language along with its display name and
// whether the app supports it
func (s *Service) Info(text string) models.LanguageInfo {
	code := s.Detect(text)
	return models.LanguageInfo{
		Code:      code,
		Name:      Name(code),
		Supported: IsSupported(code),
	}
}

// Translate converts text between two language codes, returning the input
// unchanged on failure
func (s *Service) Translate(ctx context.Context, text, source, target string) string {
	return s.translator.Translate(ctx, text, source, target)
}

// ToEnglish prepares text for analysis. It returns the English text and the
// language the input was detected in. An empty sourceLang triggers detection.
func (s *Service) ToEnglish(ctx context.Context, text, sourceLang string) (string, string) {
	if sourceLang == "" {
		sourceLang = s.Detect(text)
	}
	if sourceLang == "en" {
		return text, "en"
	}
	return s.translator.Translate(ctx, text, sourceLang, "en"), sourceLang
}

// FromEnglish translates analysis output back into the reader's language
func (s *Service) FromEnglish(ctx context.Context, text, targetLang string) string {
	if targetLang == "en" {
		return text
	}
	return s.translator.Translate(ctx, text, "en", targetLang)
}

// TranslateResult rewrites the reader-facing fields of a verification result
// into the target language. Structural fields like the verdict and scores are
// left in English so the client can still match on them.
func (s *Service) TranslateResult(ctx context.Context, result *models.VerificationResult, targetLang string) {
	if result == nil || targetLang == "en" || !IsSupported(targetLang) {
		return
	}

	if result.Summary != "" {
		result.Summary = s.FromEnglish(ctx, result.Summary, targetLang)
	}
	for i, rec := range result.Recommendations {
		result.Recommendations[i] = s.FromEnglish(ctx, rec, targetLang)
	}
	for i := range result.Claims {
		if result.Claims[i].Explanation != "" {
			result.Claims[i].Explanation = s.FromEnglish(ctx, result.Claims[i].Explanation, targetLang)
		}
	}
}
