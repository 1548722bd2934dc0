package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/sirupsen/logrus"
)

const authenticitySystem = "You are a professional fact-checker, news analyst, and misinformation expert. Analyze content thoroughly and respond only with clean JSON. Include claim-by-claim analysis, bias detection, emotional manipulation detection, and sensational tone analysis."

const authenticityPrompt = `You are a professional fact-checker and news analyst.
Analyze the given content for misinformation by comparing against trusted sources.

Original News Article:
%s

Trusted Sources:
%s

Perform a detailed analysis:
1. Identify each claim in the article and classify it as:
   - "verified_true" - Confirmed by trusted sources
   - "misleading" - Partially true but missing context
   - "false" - Contradicted by trusted sources
   - "unverified" - Cannot be confirmed

2. For every misleading or false claim, provide:
   - The exact sentence from the article
   - Why it is misleading/false
   - Missing context if any
   - Corrected factual statement
   - Confidence percentage (0-100)

3. Detect and report:
   - Bias indicators (political lean, one-sided reporting)
   - Emotional manipulation tactics (fear, anger, outrage triggers)
   - Sensational headline/tone (clickbait, exaggeration)
   - Hallucinated or unsourced statistics

Respond with a JSON object containing:
{
    "authenticity_score": <0-100>,
    "key_findings": ["finding1", "finding2", "finding3"],
    "differences": ["difference1", "difference2"],
    "supporting_evidence": [{"quote": "...", "source": "..."}],
    "score_breakdown": {
        "factual_accuracy": <0-40>,
        "source_consistency": <0-30>,
        "detail_accuracy": <0-20>,
        "context_accuracy": <0-10>
    },
    "claims_analysis": [
        {
            "claim": "exact sentence from article",
            "classification": "verified_true|misleading|false|unverified",
            "explanation": "why this classification",
            "corrected_statement": "factual correction if needed",
            "confidence": <0-100>
        }
    ],
    "bias_detection": {
        "detected": true/false,
        "type": "political|commercial|sensational|none",
        "indicators": ["indicator1", "indicator2"]
    },
    "emotional_manipulation": {
        "detected": true/false,
        "tactics": ["fear", "anger", "urgency"],
        "examples": ["example phrase from text"]
    },
    "sensational_tone": {
        "detected": true/false,
        "score": <0-100>,
        "indicators": ["clickbait phrases", "exaggerations"]
    }
}`

type rawAuthenticity struct {
	AuthenticityScore  float64  `json:"authenticity_score"`
	KeyFindings        []string `json:"key_findings"`
	Differences        []string `json:"differences"`
	SupportingEvidence []struct {
		Quote  string `json:"quote"`
		Source string `json:"source"`
	} `json:"supporting_evidence"`
	ScoreBreakdown struct {
		FactualAccuracy   float64 `json:"factual_accuracy"`
		SourceConsistency float64 `json:"source_consistency"`
		DetailAccuracy    float64 `json:"detail_accuracy"`
		ContextAccuracy   float64 `json:"context_accuracy"`
	} `json:"score_breakdown"`
	ClaimsAnalysis []struct {
		Claim              string   `json:"claim"`
		Classification     string   `json:"classification"`
		Explanation        string   `json:"explanation"`
		CorrectedStatement string   `json:"corrected_statement"`
		Confidence         *float64 `json:"confidence"`
	} `json:"claims_analysis"`
	BiasDetection struct {
		Detected   bool     `json:"detected"`
		Type       string   `json:"type"`
		Indicators []string `json:"indicators"`
	} `json:"bias_detection"`
	EmotionalManipulation struct {
		Detected bool     `json:"detected"`
		Tactics  []string `json:"tactics"`
		Examples []string `json:"examples"`
	} `json:"emotional_manipulation"`
	SensationalTone struct {
		Detected   bool     `json:"detected"`
		Score      float64  `json:"score"`
		Indicators []string `json:"indicators"`
	} `json:"sensational_tone"`
}

// AnalyzeAuthenticity compares an original news item against reference article
// contents and scores how well it matches them. It never returns an error; a
// failed comparison yields a zero-score result explaining what went wrong.
func (s *Service) AnalyzeAuthenticity(ctx context.Context, originalNews string, articles []models.ArticleContent) *models.AuthenticityResult {
	var contents []string
	for _, a := range articles {
		if a.Content != "" {
			contents = append(contents, a.Content)
		}
	}

	if len(contents) == 0 {
		return noReferencesResult()
	}
	if len(contents) > 3 {
		contents = contents[:3]
	}

	prompt := fmt.Sprintf(authenticityPrompt, originalNews, strings.Join(contents, " "))

	content, err := s.provider.Complete(ctx, authenticitySystem, prompt)
	if err != nil {
		logrus.Errorf("Authenticity completion failed: %v", err)
		return authenticityErrorResult(fmt.Sprintf("Analysis failed: %v", err))
	}

	result, err := parseAuthenticity(content)
	if err != nil {
		logrus.Errorf("Failed to parse authenticity completion: %v", err)
		return authenticityErrorResult(err.Error())
	}

	return result
}

func parseAuthenticity(content string) (*models.AuthenticityResult, error) {
	jsonStr, err := extractJSON(content)
	if err != nil {
		return nil, fmt.Errorf("could not find JSON in model response")
	}

	var raw rawAuthenticity
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, fmt.Errorf("failed to parse model response")
		}
	}

	evidence := make([]models.SupportingEvidence, 0, len(raw.SupportingEvidence))
	for i, e := range raw.SupportingEvidence {
		if i >= 3 {
			break
		}
		source := e.Source
		if source == "" {
			source = "Unknown"
		}
		evidence = append(evidence, models.SupportingEvidence{Quote: e.Quote, Source: source})
	}

	claims := make([]models.ClaimAnalysis, 0, len(raw.ClaimsAnalysis))
	for i, c := range raw.ClaimsAnalysis {
		if i >= 10 {
			break
		}
		classification := c.Classification
		if classification == "" {
			classification = "unverified"
		}
		confidence := 50
		if c.Confidence != nil {
			confidence = clamp(int(*c.Confidence), 0, 100)
		}
		claims = append(claims, models.ClaimAnalysis{
			Claim:              c.Claim,
			Classification:     classification,
			Explanation:        c.Explanation,
			CorrectedStatement: c.CorrectedStatement,
			Confidence:         confidence,
		})
	}

	biasType := raw.BiasDetection.Type
	if biasType == "" {
		biasType = "none"
	}

	return &models.AuthenticityResult{
		AuthenticityScore:  clamp(int(raw.AuthenticityScore), 0, 100),
		KeyFindings:        capList(raw.KeyFindings, 3),
		Differences:        capList(raw.Differences, 3),
		SupportingEvidence: evidence,
		ScoreBreakdown: models.ScoreBreakdown{
			FactualAccuracy:   clamp(int(raw.ScoreBreakdown.FactualAccuracy), 0, 40),
			SourceConsistency: clamp(int(raw.ScoreBreakdown.SourceConsistency), 0, 30),
			DetailAccuracy:    clamp(int(raw.ScoreBreakdown.DetailAccuracy), 0, 20),
			ContextAccuracy:   clamp(int(raw.ScoreBreakdown.ContextAccuracy), 0, 10),
		},
		ClaimsAnalysis: claims,
		BiasDetection: models.BiasDetection{
			Detected:   raw.BiasDetection.Detected,
			Type:       biasType,
			Indicators: capList(raw.BiasDetection.Indicators, 5),
		},
		EmotionalManipulation: models.EmotionalManipulation{
			Detected: raw.EmotionalManipulation.Detected,
			Tactics:  capList(raw.EmotionalManipulation.Tactics, 5),
			Examples: capList(raw.EmotionalManipulation.Examples, 5),
		},
		SensationalTone: models.SensationalTone{
			Detected:   raw.SensationalTone.Detected,
			Score:      clamp(int(raw.SensationalTone.Score), 0, 100),
			Indicators: capList(raw.SensationalTone.Indicators, 5),
		},
	}, nil
}

// noReferencesResult is returned when no reference article had any content
func noReferencesResult() *models.AuthenticityResult {
	return &models.AuthenticityResult{
		AuthenticityScore:  0,
		KeyFindings:        []string{"No verified sources available for comparison"},
		Differences:        []string{"Unable to verify due to lack of reference content"},
		SupportingEvidence: []models.SupportingEvidence{{Quote: "No verified sources found", Source: "System"}},
		ClaimsAnalysis:     []models.ClaimAnalysis{},
		BiasDetection:      models.BiasDetection{Type: "none", Indicators: []string{}},
		EmotionalManipulation: models.EmotionalManipulation{
			Tactics:  []string{},
			Examples: []string{},
		},
		SensationalTone: models.SensationalTone{Indicators: []string{}},
	}
}

func authenticityErrorResult(message string) *models.AuthenticityResult {
	return &models.AuthenticityResult{
		AuthenticityScore:  0,
		KeyFindings:        []string{message},
		Differences:        []string{"Analysis failed"},
		SupportingEvidence: []models.SupportingEvidence{{Quote: "Error processing request", Source: "System"}},
		ClaimsAnalysis:     []models.ClaimAnalysis{},
		BiasDetection:      models.BiasDetection{Type: "none", Indicators: []string{}},
		EmotionalManipulation: models.EmotionalManipulation{
			Tactics:  []string{},
			Examples: []string{},
		},
		SensationalTone: models.SensationalTone{Indicators: []string{}},
	}
}
