package resume

import (
	"encoding/json"
	"testing"
)

func TestNewDocumentSerializesSectionsAsArrays(t *testing.T) {
	doc := NewDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal fresh document: %v", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		t.Fatalf("Failed to unmarshal probe: %v", err)
	}

	for _, key := range []string{"experience", "education", "skills", "projects"} {
		if string(probe[key]) != "[]" {
			t.Errorf("Expected %s to serialize as [], got %s", key, probe[key])
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := NewDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.Summary = "Original summary"
	doc.Experience = append(doc.Experience, Experience{ID: "e1", Company: "Acme", Description: "built things"})
	doc.Skills = append(doc.Skills, Skill{ID: "s1", Name: "Go", Level: "Expert"})

	clone := doc.Clone()

	clone.PersonalInfo.FullName = "Someone Else"
	clone.Summary = "Changed"
	clone.Experience[0].Company = "Other Corp"
	clone.Skills[0].Name = "Rust"

	if doc.PersonalInfo.FullName != "Jane Doe" {
		t.Errorf("Clone mutation leaked into original name: %s", doc.PersonalInfo.FullName)
	}
	if doc.Summary != "Original summary" {
		t.Errorf("Clone mutation leaked into original summary: %s", doc.Summary)
	}
	if doc.Experience[0].Company != "Acme" {
		t.Errorf("Clone mutation leaked into original experience: %s", doc.Experience[0].Company)
	}
	if doc.Skills[0].Name != "Go" {
		t.Errorf("Clone mutation leaked into original skills: %s", doc.Skills[0].Name)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Document)
		expected bool
	}{
		{
			name:     "fresh document is empty",
			mutate:   func(d *Document) {},
			expected: true,
		},
		{
			name:     "personal info only",
			mutate:   func(d *Document) { d.PersonalInfo.Email = "jane@example.com" },
			expected: false,
		},
		{
			name:     "summary only",
			mutate:   func(d *Document) { d.Summary = "text" },
			expected: false,
		},
		{
			name:     "one skill",
			mutate:   func(d *Document) { d.Skills = append(d.Skills, Skill{ID: "s1"}) },
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocument()
			tt.mutate(doc)
			if got := doc.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestNormalizeRepairsNilSections(t *testing.T) {
	doc := &Document{}
	doc.Normalize()

	if doc.Experience == nil || doc.Education == nil || doc.Skills == nil || doc.Projects == nil {
		t.Error("Normalize left a nil section slice")
	}
}

func TestExperienceByID(t *testing.T) {
	doc := NewDocument()
	doc.Experience = append(doc.Experience,
		Experience{ID: "e1", Company: "Acme"},
		Experience{ID: "e2", Company: "Globex"},
	)

	if e := doc.ExperienceByID("e2"); e == nil || e.Company != "Globex" {
		t.Errorf("ExperienceByID(e2) = %+v, expected Globex entry", e)
	}
	if e := doc.ExperienceByID("missing"); e != nil {
		t.Errorf("ExperienceByID(missing) = %+v, expected nil", e)
	}

	// The pointer aliases the slice so patches write through.
	doc.ExperienceByID("e1").Company = "Changed"
	if doc.Experience[0].Company != "Changed" {
		t.Error("ExperienceByID should return a pointer into the sequence")
	}
}
