package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProvider is a mock implementation of the llm.Provider interface
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	args := m.Called(ctx, system, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockProvider) Name() string { return "mock" }
func (m *MockProvider) Close() error { return nil }

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "Bare object",
			content: `{"a":1}`,
			want:    `{"a":1}`,
		},
		{
			name:    "Object wrapped in prose",
			content: "Here is the analysis you asked for:\n{\"a\":1}\nLet me know if you need more.",
			want:    `{"a":1}`,
		},
		{
			name:    "Object in code fence",
			content: "```json\n{\"a\":{\"b\":2}}\n```",
			want:    `{"a":{"b":2}}`,
		},
		{
			name:    "No object",
			content: "I cannot produce JSON for that.",
			wantErr: true,
		},
		{
			name:    "Braces out of order",
			content: "} nothing here {",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_VerifyText(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		err        error
		check      func(t *testing.T, result *models.VerificationResult)
	}{
		{
			name: "Complete response",
			completion: `Sure, here it is: {
				"credibility_score": 85,
				"verdict": "Likely True",
				"claims": [{"claim": "The sky is blue", "assessment": "true", "explanation": "Widely observed", "confidence": 95}],
				"red_flags": [],
				"recommendations": ["Cross-check with official sources"],
				"summary": "The text appears accurate"
			}`,
			check: func(t *testing.T, result *models.VerificationResult) {
				assert.Equal(t, 85, result.CredibilityScore)
				assert.Equal(t, "Likely True", result.Verdict)
				require.Len(t, result.Claims, 1)
				assert.Equal(t, "true", result.Claims[0].Assessment)
				assert.Equal(t, 95, result.Claims[0].Confidence)
				assert.Empty(t, result.RedFlags)
				assert.NotNil(t, result.RedFlags)
			},
		},
		{
			name:       "Missing fields get defaults",
			completion: `{"claims": []}`,
			check: func(t *testing.T, result *models.VerificationResult) {
				assert.Equal(t, 50, result.CredibilityScore)
				assert.Equal(t, "Needs Verification", result.Verdict)
				assert.Equal(t, "Analysis completed", result.Summary)
				assert.NotNil(t, result.Claims)
				assert.NotNil(t, result.Recommendations)
			},
		},
		{
			name:       "Score above range is clamped",
			completion: `{"credibility_score": 400, "verdict": "Likely True"}`,
			check: func(t *testing.T, result *models.VerificationResult) {
				assert.Equal(t, 100, result.CredibilityScore)
			},
		},
		{
			name:       "Empty claim assessment defaults to unverified",
			completion: `{"claims": [{"claim": "Something happened"}]}`,
			check: func(t *testing.T, result *models.VerificationResult) {
				require.Len(t, result.Claims, 1)
				assert.Equal(t, "unverified", result.Claims[0].Assessment)
			},
		},
		{
			name:       "Provider failure degrades",
			completion: "",
			err:        errors.New("connection refused"),
			check: func(t *testing.T, result *models.VerificationResult) {
				assert.Equal(t, 50, result.CredibilityScore)
				assert.Equal(t, "Needs Verification", result.Verdict)
				assert.Equal(t, []string{"Unable to perform complete analysis"}, result.RedFlags)
				assert.Equal(t, []string{"Try verifying from official sources"}, result.Recommendations)
			},
		},
		{
			name:       "Completion without JSON degrades",
			completion: "I am unable to analyze this text.",
			check: func(t *testing.T, result *models.VerificationResult) {
				assert.Equal(t, 50, result.CredibilityScore)
				assert.Equal(t, []string{"Unable to perform complete analysis"}, result.RedFlags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &MockProvider{}
			provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(tt.completion, tt.err)

			service := NewService(provider)
			result := service.VerifyText(context.Background(), "some text to verify", "en")

			require.NotNil(t, result)
			assert.Equal(t, "en", result.OriginalLanguage)
			tt.check(t, result)
		})
	}
}

func TestService_AnalyzeAuthenticity(t *testing.T) {
	t.Run("No reference content", func(t *testing.T) {
		provider := &MockProvider{}
		service := NewService(provider)

		result := service.AnalyzeAuthenticity(context.Background(), "original", []models.ArticleContent{{Content: ""}})

		assert.Equal(t, 0, result.AuthenticityScore)
		assert.Equal(t, []string{"No verified sources available for comparison"}, result.KeyFindings)
		require.Len(t, result.SupportingEvidence, 1)
		assert.Equal(t, "System", result.SupportingEvidence[0].Source)
		provider.AssertNotCalled(t, "Complete")
	})

	t.Run("Normalizes and clamps fields", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(`{
			"authenticity_score": 150,
			"key_findings": ["a", "b", "c", "d", "e"],
			"differences": ["x"],
			"supporting_evidence": [{"quote": "q1"}, {"quote": "q2", "source": "BBC"}],
			"score_breakdown": {"factual_accuracy": 90, "source_consistency": 25, "detail_accuracy": 30, "context_accuracy": 4},
			"claims_analysis": [{"claim": "c1", "classification": "false", "explanation": "contradicted"}],
			"bias_detection": {"detected": true, "type": "political", "indicators": ["i1", "i2", "i3", "i4", "i5", "i6", "i7"]},
			"emotional_manipulation": {"detected": false},
			"sensational_tone": {"detected": true, "score": 70, "indicators": ["loud"]}
		}`, nil)

		service := NewService(provider)
		result := service.AnalyzeAuthenticity(context.Background(), "original", []models.ArticleContent{{Content: "reference"}})

		assert.Equal(t, 100, result.AuthenticityScore)
		assert.Len(t, result.KeyFindings, 3)
		assert.Equal(t, 40, result.ScoreBreakdown.FactualAccuracy)
		assert.Equal(t, 25, result.ScoreBreakdown.SourceConsistency)
		assert.Equal(t, 20, result.ScoreBreakdown.DetailAccuracy)
		assert.Equal(t, 4, result.ScoreBreakdown.ContextAccuracy)

		require.Len(t, result.SupportingEvidence, 2)
		assert.Equal(t, "Unknown", result.SupportingEvidence[0].Source)
		assert.Equal(t, "BBC", result.SupportingEvidence[1].Source)

		require.Len(t, result.ClaimsAnalysis, 1)
		assert.Equal(t, 50, result.ClaimsAnalysis[0].Confidence, "missing confidence defaults to 50")

		assert.True(t, result.BiasDetection.Detected)
		assert.Len(t, result.BiasDetection.Indicators, 5)
		assert.True(t, result.SensationalTone.Detected)
		assert.Equal(t, 70, result.SensationalTone.Score)
	})

	t.Run("Provider failure yields error result with 200-style payload", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("model offline"))

		service := NewService(provider)
		result := service.AnalyzeAuthenticity(context.Background(), "original", []models.ArticleContent{{Content: "reference"}})

		assert.Equal(t, 0, result.AuthenticityScore)
		assert.Contains(t, result.KeyFindings[0], "Analysis failed")
		assert.Equal(t, []string{"Analysis failed"}, result.Differences)
		assert.False(t, result.BiasDetection.Detected)
	})

	t.Run("Only first three references are used", func(t *testing.T) {
		provider := &MockProvider{}
		var seenPrompt string
		provider.On("Complete", mock.Anything, mock.Anything, mock.MatchedBy(func(prompt string) bool {
			seenPrompt = prompt
			return true
		})).Return(`{"authenticity_score": 50}`, nil)

		service := NewService(provider)
		articles := []models.ArticleContent{
			{Content: "first"}, {Content: "second"}, {Content: "third"}, {Content: "fourth"},
		}
		service.AnalyzeAuthenticity(context.Background(), "original", articles)

		assert.Contains(t, seenPrompt, "third")
		assert.NotContains(t, seenPrompt, "fourth")
	})
}

func TestService_ExtractHeadlines(t *testing.T) {
	t.Run("Extracts headlines", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
			"```json\n{\"news_headline\": [\"One\", \"Two\", \"Three\"]}\n```", nil)

		service := NewService(provider)
		set, err := service.ExtractHeadlines(context.Background(), "long news text")

		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two", "Three"}, set.NewsHeadline)
	})

	t.Run("Truncates extra headlines", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
			`{"news_headline": ["One", "Two", "Three", "Four"]}`, nil)

		service := NewService(provider)
		set, err := service.ExtractHeadlines(context.Background(), "long news text")

		require.NoError(t, err)
		assert.Len(t, set.NewsHeadline, 3)
	})

	t.Run("Empty completion is an error", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(
			`{"news_headline": []}`, nil)

		service := NewService(provider)
		_, err := service.ExtractHeadlines(context.Background(), "long news text")

		assert.Error(t, err)
	})
}
