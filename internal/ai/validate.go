package ai

import (
	"strings"

	"careerpro/internal/resume"
)

// SanitizeAnalysis normalizes a model-produced analysis before it is merged
// into a session. Scores are clamped to [0, 100], unknown categories and
// statuses are coerced to safe values, and findings with no message are
// dropped.
func SanitizeAnalysis(analysis resume.AtsAnalysis) resume.AtsAnalysis {
	clean := resume.AtsAnalysis{
		Score:     resume.ClampScore(analysis.Score),
		Feedbacks: make([]resume.AtsFeedback, 0, len(analysis.Feedbacks)),
	}

	for _, fb := range analysis.Feedbacks {
		fb.Message = strings.TrimSpace(fb.Message)
		if fb.Message == "" {
			continue
		}
		fb.Suggestion = strings.TrimSpace(fb.Suggestion)
		if !resume.ValidCategory(fb.Category) {
			fb.Category = resume.CategoryContent
		}
		if !resume.ValidStatus(fb.Status) {
			fb.Status = resume.StatusWarning
		}
		clean.Feedbacks = append(clean.Feedbacks, fb)
	}

	return clean
}
