package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsguard/newsguard/internal/models"
)

func TestClient_VerifyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify_text", r.URL.Path)

		var req models.VerifyTextRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "the government announced new subsidies yesterday", req.Text)

		w.Write([]byte(`{
			"credibility_score": 82,
			"verdict": "True",
			"summary": "Consistent with official statements",
			"claims": [{"claim": "subsidies announced", "assessment": "true", "explanation": "confirmed"}],
			"red_flags": [],
			"recommendations": ["check the official gazette"]
		}`))
	}))
	defer server.Close()

	result, err := New(server.URL).VerifyText(context.Background(), "the government announced new subsidies yesterday")
	require.NoError(t, err)

	assert.Equal(t, 82, result.CredibilityScore)
	assert.Equal(t, "True", result.Verdict)
	require.Len(t, result.Claims, 1)
	assert.Equal(t, "true", result.Claims[0].Assessment)
}

func TestClient_ErrorResponses(t *testing.T) {
	t.Run("server error message is surfaced verbatim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "No text provided"}`))
		}))
		defer server.Close()

		_, err := New(server.URL).VerifyText(context.Background(), "anything")
		require.Error(t, err)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "No text provided", err.Error())
	})

	t.Run("missing error field falls back to a generic message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`upstream exploded`))
		}))
		defer server.Close()

		_, err := New(server.URL).VerifyText(context.Background(), "anything")
		require.Error(t, err)
		assert.Equal(t, "request failed with status 502", err.Error())
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := New(server.URL).VerifyText(context.Background(), "anything")
		assert.Error(t, err)
	})
}

func TestClient_DetectLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect_language", r.URL.Path)
		w.Write([]byte(`{"language_code": "hi", "language_name": "Hindi", "supported": true}`))
	}))
	defer server.Close()

	info, err := New(server.URL).DetectLanguage(context.Background(), "some sample text")
	require.NoError(t, err)
	assert.Equal(t, "hi", info.Code)
	assert.Equal(t, "Hindi", info.Name)
	assert.True(t, info.Supported)
}

func TestClient_DetectImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect_image", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "photo.png", header.Filename)

		w.Write([]byte(`{
			"is_ai_generated": true,
			"confidence": 91,
			"status": "AI-generated",
			"reasons": ["strong generation patterns"],
			"artifacts": [{"type": "Missing EXIF Data", "description": "no metadata", "confidence": "Medium"}],
			"artifacts_detected": true,
			"detection_method": "SightEngine AI"
		}`))
	}))
	defer server.Close()

	result, err := New(server.URL).DetectImage(context.Background(), "photo.png", []byte("image bytes"))
	require.NoError(t, err)

	assert.True(t, result.IsAIGenerated)
	assert.Equal(t, 91, result.Confidence)
	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "Missing EXIF Data", result.Artifacts[0].Type)
}

func TestClient_AnalyzeAuthenticity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze_authenticity", r.URL.Path)

		var req models.AuthenticityRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "the original story", req.OriginalNews)
		require.Len(t, req.VerifiedArticles, 2)
		assert.Equal(t, "first article body", req.VerifiedArticles[0].Content)

		w.Write([]byte(`{
			"authenticity_score": 74,
			"key_findings": ["matches trusted coverage"],
			"differences": [],
			"supporting_evidence": [{"quote": "officials confirmed", "source": "Reuters"}],
			"score_breakdown": {"factual_accuracy": 32, "source_consistency": 22, "detail_accuracy": 13, "context_accuracy": 7},
			"claims_analysis": [],
			"bias_detection": {"detected": false, "type": "none", "indicators": []},
			"emotional_manipulation": {"detected": false, "tactics": [], "examples": []},
			"sensational_tone": {"detected": false, "score": 10, "indicators": []}
		}`))
	}))
	defer server.Close()

	articles := []models.ArticleContent{{Content: "first article body"}, {Content: "second article body"}}
	result, err := New(server.URL).AnalyzeAuthenticity(context.Background(), "the original story", articles)
	require.NoError(t, err)

	assert.Equal(t, 74, result.AuthenticityScore)
	assert.Equal(t, 32, result.ScoreBreakdown.FactualAccuracy)
	require.Len(t, result.SupportingEvidence, 1)
	assert.Equal(t, "Reuters", result.SupportingEvidence[0].Source)
}
