package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/sirupsen/logrus"
)

const verifySystem = "You are a fact-checker expert. Analyze social media content and WhatsApp forwards for misinformation. Respond only with clean JSON."

const verifyPrompt = `You are an expert fact-checker specialized in identifying misinformation in social media posts and WhatsApp forwards.

Analyze the following text for credibility:

TEXT TO VERIFY:
%s

Perform a detailed analysis:
1. Identify the main claims in the text
2. Assess each claim's credibility
3. Look for red flags like:
   - Lack of credible sources
   - Emotional manipulation
   - Urgency tactics ("share before deleted!")
   - Unverified statistics
   - Anonymous sources
   - Conspiracy language
4. Check for common misinformation patterns

Respond with a JSON object:
{
    "credibility_score": <0-100>,
    "verdict": "Likely True" | "Needs Verification" | "Likely False" | "Misinformation",
    "claims": [
        {
            "claim": "the claim text",
            "assessment": "true|unverified|false|misleading",
            "explanation": "why this assessment",
            "confidence": <0-100>,
            "corrected_statement": "factual correction if needed"
        }
    ],
    "red_flags": ["list of red flags found"],
    "recommendations": ["what user should do to verify"],
    "summary": "brief summary of analysis"
}`

type rawVerification struct {
	CredibilityScore float64    `json:"credibility_score"`
	Verdict          string     `json:"verdict"`
	Claims           []rawClaim `json:"claims"`
	RedFlags         []string   `json:"red_flags"`
	Recommendations  []string   `json:"recommendations"`
	Summary          string     `json:"summary"`
}

type rawClaim struct {
	Claim              string  `json:"claim"`
	Assessment         string  `json:"assessment"`
	Explanation        string  `json:"explanation"`
	Confidence         float64 `json:"confidence"`
	CorrectedStatement string  `json:"corrected_statement"`
}

// VerifyText assesses the credibility of a text passage. The passage must already
// be in English; originalLang records what the user typed in. Failures never
// surface as errors, the caller always receives a renderable result.
func (s *Service) VerifyText(ctx context.Context, text, originalLang string) *models.VerificationResult {
	content, err := s.provider.Complete(ctx, verifySystem, fmt.Sprintf(verifyPrompt, text))
	if err != nil {
		logrus.Errorf("Text verification completion failed: %v", err)
		return degradedVerification(originalLang)
	}

	result, err := parseVerification(content)
	if err != nil {
		logrus.Errorf("Failed to parse verification completion: %v", err)
		return degradedVerification(originalLang)
	}

	result.OriginalLanguage = originalLang
	return result
}

func parseVerification(content string) (*models.VerificationResult, error) {
	jsonStr, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	// Defaults survive when the model omits a field
	raw := rawVerification{
		CredibilityScore: 50,
		Verdict:          "Needs Verification",
		Summary:          "Analysis completed",
	}

	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		// Keep whatever decoded cleanly when only a field type was off
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to decode verification JSON: %w", err)
		}
	}

	claims := make([]models.Claim, 0, len(raw.Claims))
	for _, c := range raw.Claims {
		assessment := c.Assessment
		if assessment == "" {
			assessment = "unverified"
		}
		claims = append(claims, models.Claim{
			Claim:              c.Claim,
			Assessment:         assessment,
			Explanation:        c.Explanation,
			Confidence:         clamp(int(c.Confidence), 0, 100),
			CorrectedStatement: c.CorrectedStatement,
		})
	}

	return &models.VerificationResult{
		CredibilityScore: clamp(int(raw.CredibilityScore), 0, 100),
		Verdict:          raw.Verdict,
		Claims:           claims,
		RedFlags:         capList(raw.RedFlags, 10),
		Recommendations:  capList(raw.Recommendations, 10),
		Summary:          raw.Summary,
	}, nil
}

// degradedVerification is returned when the model call or parse fails; the
// user still gets a neutral, actionable result instead of an error page
func degradedVerification(originalLang string) *models.VerificationResult {
	return &models.VerificationResult{
		CredibilityScore: 50,
		Verdict:          "Needs Verification",
		Claims:           []models.Claim{},
		RedFlags:         []string{"Unable to perform complete analysis"},
		Recommendations:  []string{"Try verifying from official sources"},
		Summary:          "Analysis could not be completed fully",
		OriginalLanguage: originalLang,
	}
}
