package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpro/internal/resume"
	"careerpro/internal/session"
)

func TestViewBeforeReady(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, "Loading...", m.View())
}

func TestViewBasicsForm(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()

	assert.Contains(t, out, "CareerPro Resume Builder")
	assert.Contains(t, out, "Basics")
	assert.Contains(t, out, "Full name")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "not saved yet")
}

func TestViewEmptyList(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	out := m.View()

	assert.Contains(t, out, "No entries yet. Press a to add one.")
	assert.Contains(t, out, "a add, enter edit, d delete")
}

func TestViewListEntries(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})

	m.Update(keyRunes("a"))
	m.inputs[0].SetValue("Acme Corp")
	m.inputs[1].SetValue("Engineer")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	out := m.View()

	assert.Contains(t, out, "Engineer at Acme Corp")
}

func TestViewAnalysisPanel(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.sess.SetSummary("score me")

	ticket, err := m.sess.BeginScore()
	require.NoError(t, err)
	require.NoError(t, m.sess.ApplyAnalysis(ticket, resume.AtsAnalysis{
		Score: 65,
		Feedbacks: []resume.AtsFeedback{
			{
				Category:   resume.CategoryKeywords,
				Status:     resume.StatusWarning,
				Message:    "Few role keywords",
				Suggestion: "Mirror terms from the job posting",
			},
		},
	}))

	out := m.View()

	assert.Contains(t, out, "ATS Readiness")
	assert.Contains(t, out, "65/100")
	assert.Contains(t, out, "[Keywords] Few role keywords")
	assert.Contains(t, out, "Mirror terms from the job posting")
}

func TestViewConfirmReset(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})

	out := m.View()

	assert.Contains(t, out, "Reset the resume? This deletes everything.")
	assert.Contains(t, out, "y confirm, n cancel")
}

func TestBreadcrumbFollowsStep(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	for range 2 {
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	}

	// Every step name stays visible regardless of the active step.
	out := m.View()
	for _, name := range session.StepNames {
		assert.Contains(t, out, name)
	}
}

func TestStatusBarShowsBusy(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.NotContains(t, m.View(), "working...")

	m.scoreBusy = true

	assert.Contains(t, m.View(), "working...")
}
