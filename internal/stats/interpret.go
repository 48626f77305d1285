package stats

import "math"

// SignificanceLabel maps a p-value to the wording used in reports.
func SignificanceLabel(p float64) string {
	switch {
	case p < 0.001:
		return "Highly significant (p < 0.001)"
	case p < 0.01:
		return "Very significant (p < 0.01)"
	case p < 0.05:
		return "Significant (p < 0.05)"
	default:
		return "Not significant (p >= 0.05)"
	}
}

// SignificanceStars gives the compact star notation for a p-value.
func SignificanceStars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return ""
	}
}

// EtaSquaredLabel classifies an ANOVA eta-squared effect size.
func EtaSquaredLabel(etaSquared float64) string {
	switch {
	case etaSquared < 0.01:
		return "Small effect"
	case etaSquared < 0.06:
		return "Medium effect"
	default:
		return "Large effect"
	}
}

// CohensDLabel classifies a Cohen's d effect size.
func CohensDLabel(d float64) string {
	switch ad := math.Abs(d); {
	case ad < 0.2:
		return "Negligible effect"
	case ad < 0.5:
		return "Small effect"
	case ad < 0.8:
		return "Medium effect"
	default:
		return "Large effect"
	}
}

// CramersVLabel classifies a Cramér's V association strength.
func CramersVLabel(v float64) string {
	switch {
	case v < 0.1:
		return "Negligible association"
	case v < 0.3:
		return "Weak association"
	case v < 0.5:
		return "Moderate association"
	default:
		return "Strong association"
	}
}
