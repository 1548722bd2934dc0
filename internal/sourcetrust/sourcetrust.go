// Package sourcetrust annotates news domains with bias and credibility data
// so readers can judge where a matched article is coming from.
package sourcetrust

import (
	"strings"

	"github.com/newsguard/newsguard/internal/models"
)

// Lookup returns the transparency record for a domain. Subdomains resolve to
// their parent outlet and anything unrecognized gets the unknown record.
func Lookup(domain string) Source {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "www.")
	if domain == "" {
		return unknownSource
	}

	for _, e := range registry {
		if e.domain == domain {
			return e.source
		}
	}
	for _, e := range registry {
		if strings.HasSuffix(domain, e.domain) || strings.HasSuffix(e.domain, domain) {
			return e.source
		}
	}
	return unknownSource
}

// Info builds the annotated source record for a domain, including display
// labels and UI colors
func Info(domain string) models.SourceInfo {
	s := Lookup(domain)
	return models.SourceInfo{
		Name:             s.Name,
		Bias:             s.Bias,
		BiasLabel:        BiasLabel(s.Bias),
		Credibility:      s.Credibility,
		CredibilityLabel: CredibilityLabel(s.Credibility),
		Description:      s.Description,
		BiasColor:        BiasColor(s.Bias),
		CredibilityColor: CredibilityColor(s.Credibility),
	}
}

// BiasLabel returns the human-readable label for a bias category
func BiasLabel(bias string) string {
	if label, ok := biasLabels[bias]; ok {
		return label
	}
	return "Unknown Bias"
}

// CredibilityLabel returns the human-readable label for a credibility level
func CredibilityLabel(credibility string) string {
	if label, ok := credibilityLabels[credibility]; ok {
		return label
	}
	return "Unverified"
}

// BiasColor returns the UI color for a bias category
func BiasColor(bias string) string {
	if color, ok := biasColors[bias]; ok {
		return color
	}
	return biasColors["unknown"]
}

// CredibilityColor returns the UI color for a credibility level
func CredibilityColor(credibility string) string {
	if color, ok := credibilityColors[credibility]; ok {
		return color
	}
	return credibilityColors["unknown"]
}
