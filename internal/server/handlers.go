package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/newsguard/newsguard/internal/language"
	"github.com/newsguard/newsguard/internal/models"
	"github.com/sirupsen/logrus"
)

var allowedImageExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) handleVerifyText(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	ctx := r.Context()

	originalLang := s.language.Detect(req.Text)
	englishText, detectedLang := s.language.ToEnglish(ctx, req.Text, originalLang)

	result := s.analysis.VerifyText(ctx, englishText, detectedLang)

	s.language.TranslateResult(ctx, result, detectedLang)
	result.DetectedLanguage = detectedLang
	result.LanguageName = language.Name(detectedLang)

	s.count(&s.metrics.TextVerifications)
	s.archive.RecordAsync(&models.AnalysisRecord{Kind: "verification", Language: detectedLang, Payload: result})

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyTextRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	info := s.language.Info(req.Text)
	s.count(&s.metrics.LanguageDetections)

	writeJSON(w, http.StatusOK, struct {
		models.LanguageInfo
		MultilingualEnabled bool `json:"multilingual_enabled"`
	}{info, true})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
		SourceLang string `json:"source_lang"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}
	if req.TargetLang == "" {
		req.TargetLang = "en"
	}

	ctx := r.Context()
	s.count(&s.metrics.Translations)

	if req.TargetLang == "en" {
		translated, detected := s.language.ToEnglish(ctx, req.Text, req.SourceLang)
		writeJSON(w, http.StatusOK, map[string]string{
			"translated_text": translated,
			"source_lang":     detected,
			"target_lang":     "en",
		})
		return
	}

	// Route non-English pairs through English
	text := req.Text
	if req.SourceLang != "" && req.SourceLang != "en" {
		text, _ = s.language.ToEnglish(ctx, text, req.SourceLang)
	}
	translated := s.language.FromEnglish(ctx, text, req.TargetLang)

	source := req.SourceLang
	if source == "" {
		source = "en"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"translated_text": translated,
		"source_lang":     source,
		"target_lang":     req.TargetLang,
	})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req struct {
		News string `json:"news"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.News == "" {
		writeError(w, http.StatusBadRequest, "No news text provided")
		return
	}

	headlines, err := s.analysis.ExtractHeadlines(r.Context(), req.News)
	if err != nil {
		logrus.Errorf("Headline extraction failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to extract headlines")
		return
	}

	s.count(&s.metrics.HeadlineExtractions)
	writeJSON(w, http.StatusOK, map[string]any{"key_phrases": headlines})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		News string `json:"news"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if req.News == "" {
		writeError(w, http.StatusBadRequest, "No news text provided")
		return
	}

	urls, err := s.search.Search(r.Context(), req.News)
	if err != nil {
		logrus.Errorf("Reference search failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if urls == nil {
		urls = []string{}
	}

	s.count(&s.metrics.Searches)
	writeJSON(w, http.StatusOK, map[string]any{"google_search_results": urls})
}

func (s *Server) handleAnalyzeAuthenticity(w http.ResponseWriter, r *http.Request) {
	var req models.AuthenticityRequest
	if err := decodeJSON(r, &req); err != nil {
		logrus.Errorf("Authenticity request rejected: %v", err)
		writeJSON(w, http.StatusOK, authenticityFallback())
		return
	}
	if req.OriginalNews == "" {
		logrus.Error("Authenticity request rejected: no original news text")
		writeJSON(w, http.StatusOK, authenticityFallback())
		return
	}

	result := s.analysis.AnalyzeAuthenticity(r.Context(), req.OriginalNews, req.VerifiedArticles)

	s.count(&s.metrics.AuthenticityChecks)
	s.archive.RecordAsync(&models.AnalysisRecord{Kind: "authenticity", Payload: result})

	writeJSON(w, http.StatusOK, result)
}

// authenticityFallback is the degraded comparison payload returned when the
// request itself cannot be processed. The comparison card renders it as a
// zero score rather than surfacing a transport error.
func authenticityFallback() map[string]any {
	return map[string]any{
		"authenticity_score":  0,
		"key_findings":        []string{"Error during analysis"},
		"differences":         []string{"Analysis failed"},
		"supporting_evidence": []models.SupportingEvidence{{Quote: "Unable to process", Source: "System"}},
		"score_breakdown":     models.ScoreBreakdown{},
	}
}

func (s *Server) handleDetectImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No image selected")
		return
	}

	ext := ""
	if i := strings.LastIndex(header.Filename, "."); i >= 0 {
		ext = strings.ToLower(header.Filename[i+1:])
	}
	if !allowedImageExts[ext] {
		writeError(w, http.StatusBadRequest, "Invalid file type. Please upload an image (PNG, JPG, JPEG, GIF, WEBP)")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		logrus.Errorf("Failed to read uploaded image: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to process image",
			"details": err.Error(),
		})
		return
	}

	result := s.images.Analyze(r.Context(), data)

	s.count(&s.metrics.ImageChecks)
	s.archive.RecordAsync(&models.AnalysisRecord{Kind: "image", Payload: result})

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := decodeJSON(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, "Please fill out all fields")
		return
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		writeError(w, http.StatusBadRequest, "Please fill out all fields")
		return
	}

	if err := s.mailer.SendContactMessage(&msg); err != nil {
		logrus.Errorf("Failed to send contact email: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit form")
		return
	}

	s.count(&s.metrics.ContactSubmissions)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Form submitted successfully! We will get back to you shortly.",
	})
}
