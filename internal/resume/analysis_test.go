package resume

import "testing"

func TestClampScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected int
	}{
		{name: "negative clamps to zero", score: -5, expected: 0},
		{name: "zero passes through", score: 0, expected: 0},
		{name: "mid range passes through", score: 72, expected: 72},
		{name: "hundred passes through", score: 100, expected: 100},
		{name: "above hundred clamps", score: 140, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampScore(tt.score); got != tt.expected {
				t.Errorf("ClampScore(%d) = %d, expected %d", tt.score, got, tt.expected)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []FeedbackCategory{CategoryFormatting, CategoryContent, CategoryKeywords} {
		if !ValidCategory(c) {
			t.Errorf("Expected %q to be a valid category", c)
		}
	}
	for _, c := range []FeedbackCategory{"", "formatting", "Layout"} {
		if ValidCategory(c) {
			t.Errorf("Expected %q to be rejected", c)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []FeedbackStatus{StatusGood, StatusWarning, StatusCritical} {
		if !ValidStatus(s) {
			t.Errorf("Expected %q to be a valid status", s)
		}
	}
	for _, s := range []FeedbackStatus{"", "Good", "fatal"} {
		if ValidStatus(s) {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}
