package types

import (
	"fmt"
	"strings"
)

// FormatRiskLevel converts a backend risk_level value to a display label
func FormatRiskLevel(riskLevel string) string {
	switch riskLevel {
	case "very_low":
		return "Very Low"
	case "low":
		return "Low"
	case "medium":
		return "Medium"
	case "high":
		return "High"
	default:
		return "Unknown"
	}
}

// RiskLevelClass returns the CSS class used to colour a risk badge
func RiskLevelClass(riskLevel string) string {
	switch riskLevel {
	case "very_low", "low":
		return "risk-low"
	case "medium":
		return "risk-medium"
	case "high":
		return "risk-high"
	default:
		return "risk-unknown"
	}
}

// FormatLabel converts a prediction label to a display label.
// Older backends report degraded predictions as "unknown" - treat them the same as "uncertain".
func FormatLabel(label string) string {
	switch label {
	case "phishing":
		return "Phishing"
	case "legitimate":
		return "Legitimate"
	case "uncertain", "unknown":
		return "Uncertain"
	default:
		return label
	}
}

// FormatPercent renders a [0,1] probability as a percentage with one decimal
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// TruncateText shortens text for previews, appending an ellipsis when trimmed
func TruncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	return strings.TrimSpace(text[:maxLen]) + "..."
}

func FormatResultsReturned(count int) string {
	if count == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", count)
}
