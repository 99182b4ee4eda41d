package resume

// FeedbackCategory is the closed set of ATS feedback categories.
type FeedbackCategory string

const (
	CategoryFormatting FeedbackCategory = "Formatting"
	CategoryContent    FeedbackCategory = "Content"
	CategoryKeywords   FeedbackCategory = "Keywords"
)

// FeedbackStatus is the closed set of ATS feedback severities.
type FeedbackStatus string

const (
	StatusGood     FeedbackStatus = "good"
	StatusWarning  FeedbackStatus = "warning"
	StatusCritical FeedbackStatus = "critical"
)

// AtsFeedback is a single finding from an ATS readiness analysis. Produced
// only by the enrichment service; never constructed or mutated locally.
type AtsFeedback struct {
	Category   FeedbackCategory `json:"category"`
	Message    string           `json:"message"`
	Status     FeedbackStatus   `json:"status"`
	Suggestion string           `json:"suggestion,omitempty"`
}

// AtsAnalysis is an ephemeral, replaceable snapshot of ATS readiness. A new
// analysis replaces the previous one wholesale, never merges.
type AtsAnalysis struct {
	Score     int           `json:"score"`
	Feedbacks []AtsFeedback `json:"feedbacks"`
}

// ClampScore bounds an ATS score to [0, 100]. The enrichment service
// declares the bound but does not enforce it.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c FeedbackCategory) bool {
	switch c {
	case CategoryFormatting, CategoryContent, CategoryKeywords:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the closed status set.
func ValidStatus(s FeedbackStatus) bool {
	switch s {
	case StatusGood, StatusWarning, StatusCritical:
		return true
	}
	return false
}
