package imagecheck

import (
	"fmt"

	"github.com/newsguard/newsguard/internal/models"
)

// analyzeArtifacts inspects image properties for traces that AI generators
// commonly leave behind
func analyzeArtifacts(meta *Metadata) []models.Artifact {
	var artifacts []models.Artifact
	w, h := meta.Width, meta.Height

	if w == h && w >= 512 {
		artifacts = append(artifacts, models.Artifact{
			Type:        "Square Dimensions",
			Description: fmt.Sprintf("Image is %dx%d - common AI generator output size", w, h),
			Confidence:  "Medium",
		})
	}
	if w > 0 && w%64 == 0 && h%64 == 0 {
		artifacts = append(artifacts, models.Artifact{
			Type:        "Diffusion Model Dimensions",
			Description: "Dimensions are multiples of 64 (required by diffusion models)",
			Confidence:  "Medium",
		})
	}
	if !meta.HasEXIF {
		artifacts = append(artifacts, models.Artifact{
			Type:        "Missing EXIF Data",
			Description: "No camera metadata found - common in AI-generated images",
			Confidence:  "Medium",
		})
	}
	if hasGenerationText(meta.PNGText) {
		artifacts = append(artifacts, models.Artifact{
			Type:        "AI Generation Parameters",
			Description: "Found AI generation prompt/parameters in metadata",
			Confidence:  "High",
		})
	}

	artifacts = append(artifacts, models.Artifact{
		Type:        "Texture Consistency",
		Description: "Analyzing texture patterns for AI artifacts",
		Confidence:  "Analyzing",
	})
	return artifacts
}

// errorArtifacts is returned when the image could not be inspected at all
func errorArtifacts(err error) []models.Artifact {
	return []models.Artifact{{
		Type:        "Analysis Error",
		Description: err.Error(),
		Confidence:  "N/A",
	}}
}

func hasGenerationText(text map[string]string) bool {
	if _, ok := text["parameters"]; ok {
		return true
	}
	_, ok := text["prompt"]
	return ok
}
