package sourcetrust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name            string
		domain          string
		wantName        string
		wantBias        string
		wantCredibility string
	}{
		{"exact match", "bbc.com", "BBC News", "center", "high"},
		{"www prefix stripped", "www.reuters.com", "Reuters", "center", "high"},
		{"uppercase and whitespace", "  FOXNEWS.COM ", "Fox News", "right", "medium"},
		{"subdomain resolves to parent", "edition.cnn.com", "CNN", "center-left", "medium"},
		{"nested registry domain", "timesofindia.indiatimes.com", "Times of India", "center", "medium"},
		{"fact checker", "altnews.in", "Alt News", "center", "high"},
		{"marathi outlet", "divyamarathi.bhaskar.com", "Divya Marathi", "center", "medium"},
		{"unrecognized domain", "random-blog.example.net", "Unknown Source", "unknown", "unknown"},
		{"empty domain", "", "Unknown Source", "unknown", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Lookup(tt.domain)
			assert.Equal(t, tt.wantName, s.Name)
			assert.Equal(t, tt.wantBias, s.Bias)
			assert.Equal(t, tt.wantCredibility, s.Credibility)
		})
	}
}

func TestInfo(t *testing.T) {
	t.Run("known source", func(t *testing.T) {
		info := Info("opindia.com")

		assert.Equal(t, "OpIndia", info.Name)
		assert.Equal(t, "right", info.Bias)
		assert.Equal(t, "Right-Leaning", info.BiasLabel)
		assert.Equal(t, "low", info.Credibility)
		assert.Equal(t, "Low Credibility", info.CredibilityLabel)
		assert.Equal(t, "#ef4444", info.BiasColor)
		assert.Equal(t, "#ef4444", info.CredibilityColor)
	})

	t.Run("unknown source", func(t *testing.T) {
		info := Info("nobody-heard-of-this.site")

		assert.Equal(t, "Unknown Source", info.Name)
		assert.Equal(t, "Unknown Bias", info.BiasLabel)
		assert.Equal(t, "Unverified", info.CredibilityLabel)
		assert.Equal(t, "#6b7280", info.BiasColor)
		assert.Equal(t, "#6b7280", info.CredibilityColor)
		assert.Equal(t, "Source credibility not yet evaluated", info.Description)
	})
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Centrist", BiasLabel("center"))
	assert.Equal(t, "Center-Left", BiasLabel("center-left"))
	assert.Equal(t, "Unknown Bias", BiasLabel("something-else"))

	assert.Equal(t, "High Credibility", CredibilityLabel("high"))
	assert.Equal(t, "Medium Credibility", CredibilityLabel("medium"))
	assert.Equal(t, "Unverified", CredibilityLabel("nonsense"))
}

func TestColors(t *testing.T) {
	assert.Equal(t, "#10b981", BiasColor("center"))
	assert.Equal(t, "#3b82f6", BiasColor("left"))
	assert.Equal(t, "#6b7280", BiasColor("made-up"))

	assert.Equal(t, "#10b981", CredibilityColor("high"))
	assert.Equal(t, "#f59e0b", CredibilityColor("medium"))
	assert.Equal(t, "#6b7280", CredibilityColor("made-up"))
}
