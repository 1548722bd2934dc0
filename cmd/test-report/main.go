package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/newsguard/newsguard/internal/models"
	"github.com/newsguard/newsguard/internal/view"
)

func main() {
	fmt.Println("🔍 NewsGuard - Sample Analysis Preview")
	fmt.Println("======================================")

	verification := sampleVerification()
	image := sampleImageAnalysis()
	authenticity := sampleAuthenticity()

	fmt.Println("\n📊 Rendering sample results through the view layer...")

	printTextResult(view.TextResult(verification))
	printImageResult(view.ImageResult(image))
	printAuthenticity(view.Authenticity(authenticity))

	saveJSON("verification", verification)
	saveJSON("image_analysis", image)
	saveJSON("authenticity", authenticity)

	fmt.Println("\n✅ Sample preview completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Check the 'test_output' directory for saved JSON payloads")
	fmt.Println("   • Run 'go test ./internal/view -v' for the projection tests")
	fmt.Println("   • Start the full app with 'go run cmd/server/main.go'")
}

func sampleVerification() *models.VerificationResult {
	return &models.VerificationResult{
		CredibilityScore: 35,
		Verdict:          "Likely False",
		Summary:          "The claim of a city-wide evacuation order is not supported by any official source and contradicts current municipal announcements.",
		Claims: []models.Claim{
			{
				Claim:              "The city issued a mandatory evacuation order for all districts",
				Assessment:         "false",
				Explanation:        "Municipal authorities have published no evacuation order. The official bulletin from this morning asks residents to avoid two riverside roads only.",
				Confidence:         88,
				CorrectedStatement: "Authorities advised residents to avoid two flooded riverside roads",
			},
			{
				Claim:       "Heavy rainfall flooded parts of the riverside area overnight",
				Assessment:  "true",
				Explanation: "Meteorological reports confirm 140mm of rainfall and localized flooding along the river.",
				Confidence:  92,
			},
			{
				Claim:       "Rescue teams have stopped responding to calls",
				Assessment:  "unverified",
				Explanation: "No source confirms or denies this. Emergency services have not published response statistics for the period.",
				Confidence:  40,
			},
		},
		RedFlags: []string{
			"Urgent call to forward the message to others",
			"No named official or agency cited",
			"Claim contradicts the official municipal bulletin",
		},
		Recommendations: []string{
			"Check the municipal authority's official channels before acting",
			"Do not forward unverified evacuation notices",
		},
		DetectedLanguage: "hi",
		LanguageName:     "Hindi",
	}
}

func sampleImageAnalysis() *models.ImageAnalysisResult {
	return &models.ImageAnalysisResult{
		IsAIGenerated: true,
		Confidence:    83,
		Status:        "AI-generated",
		Reasons: []string{
			"Synthetic texture patterns detected across the background",
			"No camera metadata present in the file",
		},
		Artifacts: []models.Artifact{
			{Type: "Texture repetition", Description: "Tiled cloud pattern repeats in the upper third of the frame", Confidence: "High"},
			{Type: "Missing EXIF data", Description: "File carries no camera make, model, or capture timestamp", Confidence: "Medium"},
		},
		ArtifactsDetected: true,
		DetectionMethod:   "SightEngine API",
		RawScore:          0.83,
	}
}

func sampleAuthenticity() *models.AuthenticityResult {
	return &models.AuthenticityResult{
		AuthenticityScore: 42,
		KeyFindings: []string{
			"The original article exaggerates the scale of the flooding",
			"Reference coverage names two affected roads, not entire districts",
		},
		Differences: []string{
			"Original claims a city-wide emergency, references report localized disruption",
			"Original omits the official advisory quoted by all reference articles",
		},
		SupportingEvidence: []models.SupportingEvidence{
			{Quote: "Officials asked residents to avoid Riverside Road and Mill Lane until water levels recede", Source: "Regional Daily"},
			{Quote: "The municipal office said no evacuation is planned at this stage", Source: "City Wire"},
		},
		ScoreBreakdown: models.ScoreBreakdown{
			FactualAccuracy:   14,
			SourceConsistency: 12,
			DetailAccuracy:    10,
			ContextAccuracy:   6,
		},
		ClaimsAnalysis: []models.ClaimAnalysis{
			{
				Claim:              "Entire districts are under water",
				Classification:     "misleading",
				Explanation:        "Reference articles describe flooding on two roads, not across districts.",
				CorrectedStatement: "Two riverside roads were flooded overnight",
				Confidence:         85,
			},
		},
		BiasDetection: models.BiasDetection{
			Detected:   true,
			Type:       "sensational",
			Indicators: []string{"Catastrophic framing absent from reference coverage"},
		},
		EmotionalManipulation: models.EmotionalManipulation{
			Detected: true,
			Tactics:  []string{"Fear appeal", "Urgency pressure"},
			Examples: []string{"Leave NOW before it is too late"},
		},
		SensationalTone: models.SensationalTone{
			Detected:   true,
			Score:      78,
			Indicators: []string{"All-caps warnings", "Exclamation-heavy phrasing"},
		},
	}
}

func printTextResult(v view.TextResultView) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("📰 TEXT VERIFICATION")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("%s Verdict: %s\n", badgeEmoji(v.Badge.Kind), v.Badge.Label)
	fmt.Printf("⭐ Credibility score: %d/100\n", v.Score)
	if v.ShowLanguage {
		fmt.Printf("🌐 Detected language: %s\n", v.LanguageName)
	}
	fmt.Printf("📝 Summary: %s\n", v.Summary)

	fmt.Println("\n🔎 Claims:")
	for i, c := range v.Claims {
		fmt.Printf("\n   %d. %s\n", i+1, c.Text)
		fmt.Printf("      %s %s (confidence %d%%)\n", badgeEmoji(c.Style), c.Assessment, c.Confidence)
		fmt.Printf("      %s\n", c.Explanation)
		if c.HasCorrection {
			fmt.Printf("      ✏️  Correction: %s\n", c.Correction)
		}
	}

	if v.ShowRedFlags {
		fmt.Println("\n🚩 Red flags:")
		for _, flag := range v.RedFlags {
			fmt.Printf("   • %s\n", flag)
		}
	}

	fmt.Println("\n💡 Recommendations:")
	for _, rec := range v.Recommendations {
		fmt.Printf("   • %s\n", rec)
	}
}

func printImageResult(v view.ImageResultView) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("🖼️  IMAGE DETECTION")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("%s Status: %s (confidence %d%%)\n", badgeEmoji(v.Badge.Kind), v.Status, v.Confidence)

	fmt.Println("\n🔎 Reasons:")
	for _, reason := range v.Reasons {
		fmt.Printf("   • %s\n", reason)
	}

	fmt.Println("\n🧩 Artifacts:")
	if v.ArtifactsEmpty {
		fmt.Printf("   %s\n", v.ArtifactsNotice)
	}
	for _, a := range v.Artifacts {
		fmt.Printf("   • [%s] %s: %s\n", a.Confidence, a.Type, a.Description)
	}

	if v.HasNote {
		fmt.Printf("\n⚠️  Note: %s\n", v.Note)
	}
}

func printAuthenticity(v view.AuthenticityView) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	fmt.Println("⚖️  AUTHENTICITY COMPARISON")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("⭐ Authenticity score: %d/100\n", v.Score)

	if v.ShowFindings {
		fmt.Println("\n🔑 Key findings:")
		for _, f := range v.KeyFindings {
			fmt.Printf("   • %s\n", f)
		}
	}

	if v.ShowDifferences {
		fmt.Println("\n↔️  Differences from reference coverage:")
		for _, d := range v.Differences {
			fmt.Printf("   • %s\n", d)
		}
	}

	if v.ShowEvidence {
		fmt.Println("\n📚 Supporting evidence:")
		for _, e := range v.Evidence {
			fmt.Printf("   • %q (%s)\n", e.Quote, e.Source)
		}
	}

	if v.ShowClaims {
		fmt.Println("\n🔎 Claims analysis:")
		for i, c := range v.Claims {
			fmt.Printf("\n   %d. %s\n", i+1, c.Text)
			fmt.Printf("      %s %s (confidence %d%%)\n", badgeEmoji(c.Style), c.Classification, c.Confidence)
			fmt.Printf("      %s\n", c.Explanation)
			if c.HasCorrection {
				fmt.Printf("      ✏️  Correction: %s\n", c.Correction)
			}
		}
	}

	if v.ShowBias {
		fmt.Printf("\n🎭 Bias detected (%s):\n", v.Bias.Type)
		for _, ind := range v.Bias.Indicators {
			fmt.Printf("   • %s\n", ind)
		}
	}

	if v.ShowManipulation {
		fmt.Println("\n🪝 Emotional manipulation:")
		for _, tactic := range v.Manipulation.Tactics {
			fmt.Printf("   • %s\n", tactic)
		}
		for _, ex := range v.Manipulation.Examples {
			fmt.Printf("     e.g. %q\n", ex)
		}
	}

	if v.ShowSensational {
		fmt.Printf("\n📢 Sensational tone (score %d):\n", v.Sensational.Score)
		for _, ind := range v.Sensational.Indicators {
			fmt.Printf("   • %s\n", ind)
		}
	}
}

func badgeEmoji(kind view.BadgeKind) string {
	switch kind {
	case view.BadgePositive:
		return "🟢"
	case view.BadgeNegative:
		return "🔴"
	default:
		return "🟡"
	}
}

func saveJSON(name string, payload any) {
	dir := "test_output"
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("\n⚠️  Warning: Could not create %s: %v\n", dir, err)
		return
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("%s_sample_%s.json", name, timestamp))

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Printf("\n⚠️  Warning: Could not encode %s sample: %v\n", name, err)
		return
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("\n⚠️  Warning: Could not save %s sample: %v\n", name, err)
		return
	}

	fmt.Printf("💾 Saved %s\n", filename)
}
