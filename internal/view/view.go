// Package view maps analysis results onto view models. Every function here is
// pure so rendering decisions can be tested without touching templates: lists
// always come back non-nil, optional blocks carry an explicit show flag, and
// re-projecting the same result yields the same view.
package view

import "github.com/newsguard/newsguard/internal/models"

// DefaultRecommendation is shown when a verification result carries none
const DefaultRecommendation = "Always verify news from multiple trusted sources before sharing"

// ReasonsPlaceholder fills the reasons list when the detector gave none
const ReasonsPlaceholder = "No specific indicators reported"

// ArtifactsEmptyMessage is shown inside the always-visible artifacts panel
// when the scan found nothing
const ArtifactsEmptyMessage = "No artifacts detected"

// TextResultView is the renderable form of a verification result
type TextResultView struct {
	Badge           Badge
	Score           int
	Summary         string
	Claims          []ClaimView
	RedFlags        []string
	ShowRedFlags    bool
	Recommendations []string
	LanguageName    string
	ShowLanguage    bool
}

// ClaimView is one assessed claim ready for display
type ClaimView struct {
	Text          string
	Assessment    string
	Style         BadgeKind
	Confidence    int
	Explanation   string
	Correction    string
	HasCorrection bool
}

// TextResult projects a verification result into its view model
func TextResult(r *models.VerificationResult) TextResultView {
	v := TextResultView{
		Badge:           VerdictBadge(r.Verdict),
		Score:           r.CredibilityScore,
		Summary:         r.Summary,
		Claims:          make([]ClaimView, 0, len(r.Claims)),
		RedFlags:        append([]string{}, r.RedFlags...),
		ShowRedFlags:    len(r.RedFlags) > 0,
		Recommendations: append([]string{}, r.Recommendations...),
		LanguageName:    r.LanguageName,
		ShowLanguage:    r.LanguageName != "",
	}

	for _, c := range r.Claims {
		v.Claims = append(v.Claims, ClaimView{
			Text:          c.Claim,
			Assessment:    c.Assessment,
			Style:         assessmentStyle(c.Assessment),
			Confidence:    c.Confidence,
			Explanation:   c.Explanation,
			Correction:    c.CorrectedStatement,
			HasCorrection: c.CorrectedStatement != "",
		})
	}

	if len(v.Recommendations) == 0 {
		v.Recommendations = []string{DefaultRecommendation}
	}
	return v
}

// ImageResultView is the renderable form of an image detection result
type ImageResultView struct {
	Badge           Badge
	Status          string
	Confidence      int
	Reasons         []string
	Artifacts       []ArtifactView
	ArtifactsEmpty  bool
	ArtifactsNotice string
	Note            string
	HasNote         bool
}

// ArtifactView is one detected artifact ready for display
type ArtifactView struct {
	Type        string
	Confidence  string
	Description string
}

// ImageResult projects an image detection result into its view model. The
// artifacts panel is always rendered, with a notice when empty; the reasons
// list instead gets a placeholder item.
func ImageResult(r *models.ImageAnalysisResult) ImageResultView {
	v := ImageResultView{
		Badge:      StatusBadge(r.IsAIGenerated, r.Status),
		Status:     r.Status,
		Confidence: r.Confidence,
		Reasons:    append([]string{}, r.Reasons...),
		Artifacts:  make([]ArtifactView, 0, len(r.Artifacts)),
		Note:       r.Note,
		HasNote:    r.Note != "",
	}

	if len(v.Reasons) == 0 {
		v.Reasons = []string{ReasonsPlaceholder}
	}

	for _, a := range r.Artifacts {
		v.Artifacts = append(v.Artifacts, ArtifactView{
			Type:        a.Type,
			Confidence:  a.Confidence,
			Description: a.Description,
		})
	}
	if len(v.Artifacts) == 0 {
		v.ArtifactsEmpty = true
		v.ArtifactsNotice = ArtifactsEmptyMessage
	}
	return v
}

// AuthenticityView is the renderable form of an authenticity comparison.
// Each panel carries its own show flag; the three detection panels require
// the nested detected flag on top of field presence.
type AuthenticityView struct {
	Score            int
	KeyFindings      []string
	ShowFindings     bool
	Differences      []string
	ShowDifferences  bool
	Evidence         []EvidenceView
	ShowEvidence     bool
	Claims           []ClaimAnalysisView
	ShowClaims       bool
	Bias             BiasPanel
	ShowBias         bool
	Manipulation     ManipulationPanel
	ShowManipulation bool
	Sensational      SensationalPanel
	ShowSensational  bool
}

// EvidenceView is one supporting quote with its source
type EvidenceView struct {
	Quote  string
	Source string
}

// ClaimAnalysisView is one claim from the comparison, ready for display
type ClaimAnalysisView struct {
	Text           string
	Classification string
	Style          BadgeKind
	Confidence     int
	Explanation    string
	Correction     string
	HasCorrection  bool
}

// BiasPanel shows the bias type with its indicators
type BiasPanel struct {
	Type       string
	Indicators []string
}

// ManipulationPanel shows manipulation tactics and example phrases
type ManipulationPanel struct {
	Tactics  []string
	Examples []string
}

// SensationalPanel shows the tone score with its indicators
type SensationalPanel struct {
	Score      int
	Indicators []string
}

// Authenticity projects a comparison result into its view model
func Authenticity(r *models.AuthenticityResult) AuthenticityView {
	v := AuthenticityView{
		Score:            r.AuthenticityScore,
		KeyFindings:      append([]string{}, r.KeyFindings...),
		Differences:      append([]string{}, r.Differences...),
		Evidence:         make([]EvidenceView, 0, len(r.SupportingEvidence)),
		Claims:           make([]ClaimAnalysisView, 0, len(r.ClaimsAnalysis)),
		ShowBias:         r.BiasDetection.Detected,
		ShowManipulation: r.EmotionalManipulation.Detected,
		ShowSensational:  r.SensationalTone.Detected,
	}
	v.ShowFindings = len(v.KeyFindings) > 0
	v.ShowDifferences = len(v.Differences) > 0

	for _, e := range r.SupportingEvidence {
		v.Evidence = append(v.Evidence, EvidenceView{Quote: e.Quote, Source: e.Source})
	}
	v.ShowEvidence = len(v.Evidence) > 0

	for _, c := range r.ClaimsAnalysis {
		v.Claims = append(v.Claims, ClaimAnalysisView{
			Text:           c.Claim,
			Classification: c.Classification,
			Style:          assessmentStyle(c.Classification),
			Confidence:     c.Confidence,
			Explanation:    c.Explanation,
			Correction:     c.CorrectedStatement,
			HasCorrection:  c.CorrectedStatement != "",
		})
	}
	v.ShowClaims = len(v.Claims) > 0

	if v.ShowBias {
		v.Bias = BiasPanel{
			Type:       r.BiasDetection.Type,
			Indicators: append([]string{}, r.BiasDetection.Indicators...),
		}
	}
	if v.ShowManipulation {
		v.Manipulation = ManipulationPanel{
			Tactics:  append([]string{}, r.EmotionalManipulation.Tactics...),
			Examples: append([]string{}, r.EmotionalManipulation.Examples...),
		}
	}
	if v.ShowSensational {
		v.Sensational = SensationalPanel{
			Score:      r.SensationalTone.Score,
			Indicators: append([]string{}, r.SensationalTone.Indicators...),
		}
	}
	return v
}
