package view

import "strings"

// BadgeKind selects the visual style of a result badge
type BadgeKind string

const (
	BadgePositive BadgeKind = "positive"
	BadgeNeutral  BadgeKind = "neutral"
	BadgeNegative BadgeKind = "negative"
)

// Badge pairs a result label with its style and icon
type Badge struct {
	Kind  BadgeKind
	Icon  string
	Label string
}

// VerdictBadge classifies a free-text verdict into a badge. Matching is a
// case-insensitive substring check in priority order: "true" wins over
// "verification", which wins over "misinformation". Anything unmatched is
// treated as negative. The verdict text itself is passed through verbatim.
func VerdictBadge(verdict string) Badge {
	v := strings.ToLower(verdict)
	switch {
	case strings.Contains(v, "true"):
		return Badge{Kind: BadgePositive, Icon: "check-circle", Label: verdict}
	case strings.Contains(v, "verification"):
		return Badge{Kind: BadgeNeutral, Icon: "help-circle", Label: verdict}
	case strings.Contains(v, "misinformation"):
		return Badge{Kind: BadgeNegative, Icon: "x-circle", Label: verdict}
	default:
		return Badge{Kind: BadgeNegative, Icon: "x-circle", Label: verdict}
	}
}

// StatusBadge builds the badge for an image detection result from the
// AI-generated flag
func StatusBadge(isAI bool, status string) Badge {
	if isAI {
		return Badge{Kind: BadgeNegative, Icon: "cpu", Label: status}
	}
	return Badge{Kind: BadgePositive, Icon: "camera", Label: status}
}

// assessmentStyle maps a claim assessment onto a display style. Unrecognized
// assessments keep their text but render with the neutral style.
func assessmentStyle(assessment string) BadgeKind {
	switch strings.ToLower(assessment) {
	case "true", "verified_true":
		return BadgePositive
	case "false", "misleading":
		return BadgeNegative
	default:
		return BadgeNeutral
	}
}
