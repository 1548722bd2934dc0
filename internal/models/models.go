package models

import "time"

// VerificationResult is the credibility assessment for a submitted text passage
type VerificationResult struct {
	CredibilityScore int      `json:"credibility_score"` // 0-100
	Verdict          string   `json:"verdict"`           // "Likely True", "Needs Verification", "Likely False", "Misinformation"
	Claims           []Claim  `json:"claims"`
	RedFlags         []string `json:"red_flags"`
	Recommendations  []string `json:"recommendations"`
	Summary          string   `json:"summary"`
	OriginalLanguage string   `json:"original_language,omitempty"`
	DetectedLanguage string   `json:"detected_language,omitempty"`
	LanguageName     string   `json:"language_name,omitempty"`
}

// Claim is a single factual assertion extracted from submitted text
type Claim struct {
	Claim              string `json:"claim"`
	Assessment         string `json:"assessment"` // "true", "false", "misleading", "unverified"
	Explanation        string `json:"explanation"`
	Confidence         int    `json:"confidence,omitempty"` // 0-100
	CorrectedStatement string `json:"corrected_statement,omitempty"`
}

// ImageAnalysisResult is the AI-generation assessment for an uploaded image
type ImageAnalysisResult struct {
	IsAIGenerated     bool       `json:"is_ai_generated"`
	Confidence        int        `json:"confidence"` // 0-100, confidence in the stated status
	Status            string     `json:"status"`     // "AI-generated", "Real", "Unknown"
	Reasons           []string   `json:"reasons"`
	Artifacts         []Artifact `json:"artifacts"`
	ArtifactsDetected bool       `json:"artifacts_detected"`
	DetectionMethod   string     `json:"detection_method"`
	RawScore          float64    `json:"raw_score,omitempty"`
	Note              string     `json:"note,omitempty"`
}

// Artifact is a specific visual or metadata anomaly cited as AI-generation evidence
type Artifact struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"` // "High", "Medium", "Low", "Analyzing", "N/A"
}

// AuthenticityResult compares an original news item against verified reference articles
type AuthenticityResult struct {
	AuthenticityScore     int                   `json:"authenticity_score"` // 0-100
	KeyFindings           []string              `json:"key_findings"`
	Differences           []string              `json:"differences"`
	SupportingEvidence    []SupportingEvidence  `json:"supporting_evidence"`
	ScoreBreakdown        ScoreBreakdown        `json:"score_breakdown"`
	ClaimsAnalysis        []ClaimAnalysis       `json:"claims_analysis"`
	BiasDetection         BiasDetection         `json:"bias_detection"`
	EmotionalManipulation EmotionalManipulation `json:"emotional_manipulation"`
	SensationalTone       SensationalTone       `json:"sensational_tone"`
}

// SupportingEvidence is a quote from a reference article backing a finding
type SupportingEvidence struct {
	Quote  string `json:"quote"`
	Source string `json:"source"`
}

// ScoreBreakdown splits the authenticity score into weighted components
type ScoreBreakdown struct {
	FactualAccuracy   int `json:"factual_accuracy"`   // 0-40
	SourceConsistency int `json:"source_consistency"` // 0-30
	DetailAccuracy    int `json:"detail_accuracy"`    // 0-20
	ContextAccuracy   int `json:"context_accuracy"`   // 0-10
}

// ClaimAnalysis classifies one claim from the original article against references
type ClaimAnalysis struct {
	Claim              string `json:"claim"`
	Classification     string `json:"classification"` // "verified_true", "misleading", "false", "unverified"
	Explanation        string `json:"explanation"`
	CorrectedStatement string `json:"corrected_statement,omitempty"`
	Confidence         int    `json:"confidence"` // 0-100
}

// BiasDetection reports editorial slant found in the original article
type BiasDetection struct {
	Detected   bool     `json:"detected"`
	Type       string   `json:"type"` // "political", "commercial", "sensational", "none"
	Indicators []string `json:"indicators"`
}

// EmotionalManipulation reports persuasion tactics found in the original article
type EmotionalManipulation struct {
	Detected bool     `json:"detected"`
	Tactics  []string `json:"tactics"`
	Examples []string `json:"examples"`
}

// SensationalTone reports clickbait or exaggerated framing
type SensationalTone struct {
	Detected   bool     `json:"detected"`
	Score      int      `json:"score"` // 0-100
	Indicators []string `json:"indicators"`
}

// Article is the extracted content and metadata of a reference news page
type Article struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Description string     `json:"description"`
	Source      string     `json:"source"` // domain without www prefix
	ImageURL    string     `json:"image_url,omitempty"`
	SourceInfo  SourceInfo `json:"source_info"`
}

// SourceInfo carries the transparency rating of a news outlet
type SourceInfo struct {
	Name             string `json:"name"`
	Bias             string `json:"bias"` // "left", "center-left", "center", "center-right", "right", "unknown"
	BiasLabel        string `json:"bias_label"`
	Credibility      string `json:"credibility"` // "high", "medium", "low", "unknown"
	CredibilityLabel string `json:"credibility_label"`
	Description      string `json:"description"`
	BiasColor        string `json:"bias_color"`
	CredibilityColor string `json:"credibility_color"`
}

// HeadlineSet is the set of concise headlines extracted from a news passage
type HeadlineSet struct {
	NewsHeadline []string `json:"news_headline"`
}

// HeadlineMatches pairs one extracted headline with the reference articles found for it
type HeadlineMatches struct {
	Headline string    `json:"headline"`
	Articles []Article `json:"articles"`
}

// LanguageInfo is the response of a language detection request
type LanguageInfo struct {
	Code      string `json:"language_code"`
	Name      string `json:"language_name"`
	Supported bool   `json:"supported"`
}

// ContactMessage is a submission from the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// VerifyTextRequest is the body of a text verification call
type VerifyTextRequest struct {
	Text string `json:"text"`
}

// AuthenticityRequest is the body of an authenticity comparison call
type AuthenticityRequest struct {
	OriginalNews     string           `json:"original_news"`
	VerifiedArticles []ArticleContent `json:"verified_articles"`
}

// ArticleContent is the textual content of one verified article card
type ArticleContent struct {
	Content string `json:"content"`
}

// AnalysisRecord wraps an archived analysis result with its identity
type AnalysisRecord struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // "verification", "image", "authenticity"
	CreatedAt time.Time `json:"created_at"`
	Language  string    `json:"language,omitempty"`
	Payload   any       `json:"payload"`
}
