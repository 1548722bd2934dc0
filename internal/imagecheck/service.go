package imagecheck

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/newsguard/newsguard/internal/config"
	"github.com/newsguard/newsguard/internal/models"
)

// aiDimensions are output sizes that AI generators produce by default
var aiDimensions = [][2]int{
	{512, 512}, {768, 768}, {1024, 1024}, {1536, 1536},
	{512, 768}, {768, 512}, {768, 1024}, {1024, 768},
}

// Service detects AI-generated images, preferring the SightEngine API and
// falling back to local metadata heuristics when it is unavailable
type Service struct {
	client *SightEngineClient
}

// NewService creates an image detection service from the app configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		client: NewSightEngineClient(cfg.SightEngineUser, cfg.SightEngineSecret),
	}
}

// Analyze runs AI-generation detection on an uploaded image and attaches the
// artifact scan to the result. It always returns a usable result.
func (s *Service) Analyze(ctx context.Context, data []byte) *models.ImageAnalysisResult {
	meta, metaErr := extractMetadata(data)

	var result *models.ImageAnalysisResult
	if s.client.Enabled() {
		if score, ok := s.client.Check(ctx, data); ok {
			result = resultFromScore(score)
		}
	}
	if result == nil {
		if metaErr != nil {
			logrus.Errorf("Image analysis failed: %v", metaErr)
			result = errorResult(metaErr)
		} else {
			result = localFallback(meta)
		}
	}

	if metaErr != nil {
		result.Artifacts = errorArtifacts(metaErr)
	} else {
		result.Artifacts = analyzeArtifacts(meta)
	}
	return result
}

// resultFromScore converts a SightEngine AI-generation score into a detection
// result with reader-friendly reasons
func resultFromScore(score float64) *models.ImageAnalysisResult {
	isAI := score > 0.5

	confidence := int((1 - score) * 100)
	if isAI {
		confidence = int(score * 100)
	}

	var reasons []string
	if isAI {
		switch {
		case score > 0.9:
			reasons = []string{
				"High confidence AI-generated content detected",
				"Image shows strong artificial generation patterns",
			}
		case score > 0.7:
			reasons = []string{
				"AI-generated patterns detected in image",
				"Visual analysis indicates synthetic origin",
			}
		default:
			reasons = []string{
				"Moderate AI-generation indicators found",
				"Some artificial patterns detected",
			}
		}
	} else {
		switch {
		case score < 0.1:
			reasons = []string{
				"High confidence authentic photograph",
				"No AI-generation markers detected",
			}
		case score < 0.3:
			reasons = []string{
				"Natural image characteristics detected",
				"Image appears to be genuine",
			}
		default:
			reasons = []string{
				"No significant AI-generation markers found",
				"Image likely authentic",
			}
		}
	}
	reasons = append(reasons, "Analysis powered by SightEngine AI detection")
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	status := "Real"
	if isAI {
		status = "AI-generated"
	}

	return &models.ImageAnalysisResult{
		IsAIGenerated:     isAI,
		Confidence:        confidence,
		Status:            status,
		Reasons:           reasons,
		ArtifactsDetected: isAI,
		DetectionMethod:   "SightEngine AI",
		RawScore:          math.Round(score*10000) / 10000,
	}
}

// localFallback scores the image from its metadata alone. It starts from a
// neutral 50 and moves toward AI or authentic as indicators accumulate.
func localFallback(meta *Metadata) *models.ImageAnalysisResult {
	score := 50
	var reasons []string

	if !meta.HasEXIF {
		score += 15
		reasons = append(reasons, "No camera metadata found (common in AI images)")
	} else {
		if meta.CameraMake != "" || meta.CameraModel != "" {
			score -= 25
			reasons = append(reasons, strings.TrimSpace(
				fmt.Sprintf("Camera metadata found: %s %s", meta.CameraMake, meta.CameraModel)))
		}
		if meta.HasGPS {
			score -= 20
			reasons = append(reasons, "GPS location data present")
		}
		if containsAISignature(strings.ToLower(meta.Software)) {
			score += 40
			reasons = append(reasons, "AI generation software detected in metadata")
		}
	}

	if len(meta.PNGText) > 0 {
		if containsAISignature(pngTextBlob(meta.PNGText)) {
			score += 40
			reasons = append(reasons, "AI parameters found in PNG metadata")
		} else if hasGenerationText(meta.PNGText) {
			score += 35
			reasons = append(reasons, "Generation prompt found in metadata")
		}
	}

	w, h := meta.Width, meta.Height
	if isAIDimension(w, h) {
		score += 15
		reasons = append(reasons, fmt.Sprintf("Dimensions %dx%d match common AI output", w, h))
	} else if w%64 == 0 && h%64 == 0 && w >= 512 {
		score += 10
		reasons = append(reasons, "Dimensions are multiples of 64 (diffusion model pattern)")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	isAI := score >= 50
	confidence := 100 - score
	if isAI {
		confidence = score
	}
	if len(reasons) == 0 {
		reasons = []string{"Image analysis complete (local fallback method)"}
	}

	status := "Real"
	if isAI {
		status = "AI-generated"
	}

	return &models.ImageAnalysisResult{
		IsAIGenerated:     isAI,
		Confidence:        confidence,
		Status:            status,
		Reasons:           reasons,
		ArtifactsDetected: isAI,
		DetectionMethod:   "Local Analysis (API unavailable)",
		Note:              "For best results, configure SightEngine API credentials",
	}
}

// errorResult is returned when the image could not be analyzed at all
func errorResult(err error) *models.ImageAnalysisResult {
	return &models.ImageAnalysisResult{
		IsAIGenerated:     false,
		Confidence:        50,
		Status:            "Unknown",
		Reasons:           []string{fmt.Sprintf("Analysis error: %v", err)},
		ArtifactsDetected: false,
		DetectionMethod:   "Error",
		Note:              "Could not complete analysis",
	}
}

func isAIDimension(w, h int) bool {
	for _, dim := range aiDimensions {
		if (w == dim[0] && h == dim[1]) || (h == dim[0] && w == dim[1]) {
			return true
		}
	}
	return false
}
