package analysis

import (
	"fmt"
	"strings"
)

// extractJSON returns the substring between the first '{' and the last '}'.
// Model completions routinely wrap the requested JSON in prose or code fences.
func extractJSON(content string) (string, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in completion")
	}
	return content[start : end+1], nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// capList truncates a list to at most max entries, mapping nil to an empty slice
func capList[T any](items []T, max int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > max {
		return items[:max]
	}
	return items
}
