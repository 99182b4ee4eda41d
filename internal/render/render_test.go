package render

import (
	"strings"
	"testing"

	"careerpro/internal/resume"
)

func fullDoc() *resume.Document {
	doc := resume.NewDocument()
	doc.PersonalInfo = resume.PersonalInfo{
		FullName: "Jane Doe",
		JobTitle: "Backend Engineer",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Berlin",
		Website:  "https://jane.dev",
		LinkedIn: "linkedin.com/in/janedoe",
	}
	doc.Summary = "Backend engineer focused on billing systems."
	doc.Experience = append(doc.Experience,
		resume.Experience{
			ID:          "e1",
			Company:     "Acme",
			Position:    "Senior Engineer",
			Location:    "Berlin",
			StartDate:   "Jan 2021",
			Current:     true,
			Description: "Led the billing rewrite\nCut invoice latency by 40%",
		},
		resume.Experience{
			ID:        "e2",
			Company:   "Globex",
			Position:  "Engineer",
			StartDate: "2017",
			EndDate:   "2020",
		},
	)
	doc.Education = append(doc.Education, resume.Education{
		ID: "ed1", School: "State University", Degree: "B.Sc.", Field: "Computer Science",
		GraduationDate: "2017", Location: "Munich",
	})
	doc.Skills = append(doc.Skills,
		resume.Skill{ID: "s1", Name: "Go", Level: "Expert"},
		resume.Skill{ID: "s2", Name: "PostgreSQL"},
	)
	doc.Projects = append(doc.Projects, resume.Project{
		ID: "p1", Title: "Sidecar", Link: "https://github.com/janedoe/sidecar",
		Description: "A tiny service mesh helper",
	})
	return doc
}

func TestRenderingIsPure(t *testing.T) {
	doc := fullDoc()
	for _, name := range GlobalRegistry.SupportedTemplates() {
		t.Run(name, func(t *testing.T) {
			first, err := GlobalRegistry.Render(doc, name)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			second, err := GlobalRegistry.Render(doc, name)
			if err != nil {
				t.Fatalf("Second render failed: %v", err)
			}
			if first != second {
				t.Error("Identical input must produce identical output")
			}
		})
	}
}

func TestRenderDoesNotMutateDocument(t *testing.T) {
	doc := fullDoc()
	originalDescription := doc.Experience[0].Description

	for _, name := range GlobalRegistry.SupportedTemplates() {
		if _, err := GlobalRegistry.Render(doc, name); err != nil {
			t.Fatalf("Render %s failed: %v", name, err)
		}
	}

	if doc.Experience[0].Description != originalDescription {
		t.Error("Rendering must not modify the document")
	}
}

func TestSupportedTemplates(t *testing.T) {
	got := GlobalRegistry.SupportedTemplates()
	expected := []string{"classic", "minimal", "modern"}
	if len(got) != len(expected) {
		t.Fatalf("SupportedTemplates() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("SupportedTemplates()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := GlobalRegistry.Render(fullDoc(), "fancy"); err == nil {
		t.Error("Expected an unknown template name to be rejected")
	}
}

func TestCurrentPositionRendersPresent(t *testing.T) {
	doc := fullDoc()
	for _, name := range GlobalRegistry.SupportedTemplates() {
		t.Run(name, func(t *testing.T) {
			out, err := GlobalRegistry.Render(doc, name)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(out, "Present") {
				t.Error("A current position should render its end date as Present")
			}
		})
	}
}

func TestCurrentFlagWinsOverEndDateText(t *testing.T) {
	doc := fullDoc()
	doc.Experience[0].EndDate = "Dec 2022"
	doc.Experience[0].Current = true

	out, err := GlobalRegistry.Render(doc, "modern")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(out, "Dec 2022") {
		t.Error("The current flag must override any stored end date text")
	}
	if !strings.Contains(out, "Present") {
		t.Error("Expected Present for a current position")
	}
}

func TestEmptyEndDateRendering(t *testing.T) {
	// A finished entry with no typed end date reads as ongoing in the
	// modern and classic layouts; the dense layout keeps the bare start.
	doc := resume.NewDocument()
	doc.Experience = append(doc.Experience, resume.Experience{
		ID: "e1", Company: "Acme", Position: "Engineer", StartDate: "2020",
	})

	tests := []struct {
		template string
		expected string
	}{
		{template: "modern", expected: "2020 — Present"},
		{template: "classic", expected: "2020 – Present"},
		{template: "minimal", expected: "2020"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			out, err := GlobalRegistry.Render(doc, tt.template)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if !strings.Contains(out, tt.expected) {
				t.Errorf("Expected %q in:\n%s", tt.expected, out)
			}
			if tt.template == "minimal" {
				if strings.Contains(out, "Present") {
					t.Error("The minimal template should keep an empty end date empty")
				}
				if strings.Contains(out, "2020 -") {
					t.Error("A lone start date should not carry a dangling separator")
				}
			}
		})
	}
}

func TestEmptyDocumentRendersPlaceholders(t *testing.T) {
	doc := resume.NewDocument()

	out, err := GlobalRegistry.Render(doc, "modern")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, PlaceholderName) {
		t.Errorf("Expected the name placeholder %q in:\n%s", PlaceholderName, out)
	}
	if !strings.Contains(out, PlaceholderTitle) {
		t.Errorf("Expected the title placeholder %q in:\n%s", PlaceholderTitle, out)
	}
}

func TestEmptySummaryOmitsSection(t *testing.T) {
	doc := fullDoc()
	doc.Summary = ""

	for _, name := range GlobalRegistry.SupportedTemplates() {
		t.Run(name, func(t *testing.T) {
			out, err := GlobalRegistry.Render(doc, name)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			for _, heading := range []string{"PROFESSIONAL SUMMARY", "ABOUT"} {
				if strings.Contains(out, heading) {
					t.Errorf("Empty summary should omit the %s heading", heading)
				}
			}
		})
	}
}

func TestEmptySectionsOmitted(t *testing.T) {
	doc := resume.NewDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.Skills = append(doc.Skills, resume.Skill{ID: "s1", Name: "Go"})

	out, err := GlobalRegistry.Render(doc, "minimal")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "SKILLS") {
		t.Error("Populated skills section missing")
	}
	for _, heading := range []string{"EXPERIENCE", "EDUCATION", "PROJECTS"} {
		if strings.Contains(out, heading) {
			t.Errorf("Empty section %s should be omitted", heading)
		}
	}
}

func TestBulletLinesNeverDoubleUp(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    []string
	}{
		{
			name:        "plain lines get glyphs",
			description: "Did one thing\nDid another",
			expected:    []string{"• Did one thing", "• Did another"},
		},
		{
			name:        "existing markers are stripped first",
			description: "• Already bulleted\n  •   Spaced marker",
			expected:    []string{"• Already bulleted", "• Spaced marker"},
		},
		{
			name:        "blank lines are dropped",
			description: "One\n\n\nTwo",
			expected:    []string{"• One", "• Two"},
		},
		{
			name:        "empty description yields nothing",
			description: "",
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bulletLines(tt.description, "• ")
			if len(got) != len(tt.expected) {
				t.Fatalf("bulletLines() = %v, expected %v", got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestRenderedBulletsSurviveReRendering(t *testing.T) {
	// A description that already carries markers from a previous render
	// must not accumulate a second set.
	doc := fullDoc()
	doc.Experience[0].Description = "• Led the billing rewrite\n• Cut invoice latency by 40%"

	out, err := GlobalRegistry.Render(doc, "classic")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(out, "• •") || strings.Contains(out, "• • ") {
		t.Error("Bullet markers doubled up on re-render")
	}
}

func TestSkillLabels(t *testing.T) {
	doc := resume.NewDocument()
	doc.Skills = append(doc.Skills,
		resume.Skill{ID: "s1", Name: "Go", Level: "Expert"},
		resume.Skill{ID: "s2", Name: "PostgreSQL"},
	)

	out, err := GlobalRegistry.Render(doc, "minimal")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, "Go (Expert)") {
		t.Error("Skill with a level should render as Name (Level)")
	}
	if !strings.Contains(out, "PostgreSQL") || strings.Contains(out, "PostgreSQL (") {
		t.Error("Skill without a level should render bare")
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected string
	}{
		{name: "both empty", start: "", end: "", expected: ""},
		{name: "both set", start: "2020", end: "2023", expected: "2020 - 2023"},
		{name: "only start", start: "2020", end: "", expected: "2020"},
		{name: "only end", start: "", end: "2023", expected: "2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateRange(tt.start, tt.end, " - "); got != tt.expected {
				t.Errorf("dateRange(%q, %q) = %q, expected %q", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}
