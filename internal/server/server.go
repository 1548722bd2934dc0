package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/newsguard/newsguard/internal/analysis"
	"github.com/newsguard/newsguard/internal/archive"
	"github.com/newsguard/newsguard/internal/articles"
	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/imagecheck"
	"github.com/newsguard/newsguard/internal/language"
	"github.com/newsguard/newsguard/internal/notifications"
)

// SearchProvider is the reference search contract used by the handlers.
// It is satisfied by search.Client.
type SearchProvider interface {
	Enabled() bool
	Search(ctx context.Context, query string) ([]string, error)
}

// Server wires the analysis services into the HTTP API
type Server struct {
	config    *config.Config
	analysis  *analysis.Service
	language  *language.Service
	images    *imagecheck.Service
	search    SearchProvider
	extractor *articles.Extractor
	mailer    notifications.NotificationInterface
	archive   *archive.Service
	metrics   *Metrics
	mu        sync.RWMutex
}

// Metrics holds request counters for the API endpoints
type Metrics struct {
	TextVerifications   int       `json:"text_verifications"`
	LanguageDetections  int       `json:"language_detections"`
	Translations        int       `json:"translations"`
	HeadlineExtractions int       `json:"headline_extractions"`
	Searches            int       `json:"searches"`
	ImageChecks         int       `json:"image_checks"`
	AuthenticityChecks  int       `json:"authenticity_checks"`
	ContactSubmissions  int       `json:"contact_submissions"`
	LastActivity        time.Time `json:"last_activity"`
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	analysisService *analysis.Service,
	languageService *language.Service,
	imageService *imagecheck.Service,
	searchClient SearchProvider,
	extractor *articles.Extractor,
	mailer notifications.NotificationInterface,
	archiveService *archive.Service,
) *Server {
	return &Server{
		config:    cfg,
		analysis:  analysisService,
		language:  languageService,
		images:    imageService,
		search:    searchClient,
		extractor: extractor,
		mailer:    mailer,
		archive:   archiveService,
		metrics:   &Metrics{},
	}
}

// Router builds the HTTP route table
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.recoveryMiddleware, s.loggingMiddleware)

	router.HandleFunc("/", s.handleIndex).Methods("GET")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")

	router.HandleFunc("/verify_text", s.handleVerifyText).Methods("POST")
	router.HandleFunc("/detect_language", s.handleDetectLanguage).Methods("POST")
	router.HandleFunc("/translate", s.handleTranslate).Methods("POST")
	router.HandleFunc("/extract", s.handleExtract).Methods("POST")
	router.HandleFunc("/search", s.handleSearch).Methods("POST")
	router.HandleFunc("/results", s.handleResults).Methods("POST")
	router.HandleFunc("/extracted_content", s.handleExtractedContent).Methods("POST")
	router.HandleFunc("/analyze_authenticity", s.handleAnalyzeAuthenticity).Methods("POST")
	router.HandleFunc("/detect_image", s.handleDetectImage).Methods("POST")
	router.HandleFunc("/submit-contact", s.handleSubmitContact).Methods("POST")

	return router
}

func (s *Server) count(counter *int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*counter++
	s.metrics.LastActivity = time.Now()
}

// GetMetrics returns current request counters as JSON
func (s *Server) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"timestamp":       time.Now().Format(time.RFC3339),
		"llm_provider":    s.config.LLMProvider,
		"search_enabled":  s.search.Enabled(),
		"archive_enabled": s.archive.Enabled(),
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.GetMetrics()))
}
