package session

import (
	"fmt"
	"testing"

	"careerpro/internal/resume"
)

// seqIDs generates predictable ids for tests.
type seqIDs struct {
	n int
}

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestSession() *Session {
	return New(nil, &seqIDs{}, nil)
}

func TestNewWithNilDocumentStartsEmpty(t *testing.T) {
	s := newTestSession()
	if !s.Snapshot().IsEmpty() {
		t.Error("Expected a fresh session to hold an empty document")
	}
}

func TestAddItemThenRemoveItemRestoresSection(t *testing.T) {
	sections := []Section{SectionExperience, SectionEducation, SectionSkills, SectionProjects}

	for _, section := range sections {
		t.Run(string(section), func(t *testing.T) {
			s := newTestSession()
			before := s.Snapshot()

			id, err := s.AddItem(section)
			if err != nil {
				t.Fatalf("AddItem(%s) failed: %v", section, err)
			}
			if id == "" {
				t.Fatal("AddItem returned an empty id")
			}

			if err := s.RemoveItem(section, id); err != nil {
				t.Fatalf("RemoveItem(%s, %s) failed: %v", section, id, err)
			}

			after := s.Snapshot()
			if len(after.Experience) != len(before.Experience) ||
				len(after.Education) != len(before.Education) ||
				len(after.Skills) != len(before.Skills) ||
				len(after.Projects) != len(before.Projects) {
				t.Error("Add followed by remove should restore the section lengths")
			}
		})
	}
}

func TestAddItemSkillGetsDefaultLevel(t *testing.T) {
	s := newTestSession()
	id, err := s.AddItem(SectionSkills)
	if err != nil {
		t.Fatalf("AddItem(skills) failed: %v", err)
	}

	doc := s.Snapshot()
	if len(doc.Skills) != 1 || doc.Skills[0].ID != id {
		t.Fatalf("Expected one skill with id %s, got %+v", id, doc.Skills)
	}
	if doc.Skills[0].Level != resume.DefaultSkillLevel {
		t.Errorf("Expected default level %q, got %q", resume.DefaultSkillLevel, doc.Skills[0].Level)
	}
}

func TestAddItemUnknownSection(t *testing.T) {
	s := newTestSession()
	if _, err := s.AddItem(Section("references")); err == nil {
		t.Error("Expected an error for an unknown section")
	}
}

func TestRemoveItemMissingIDIsNoOp(t *testing.T) {
	s := newTestSession()
	if _, err := s.AddItem(SectionExperience); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := s.RemoveItem(SectionExperience, "no-such-id"); err != nil {
		t.Errorf("RemoveItem with a missing id should be a no-op, got %v", err)
	}
	if len(s.Snapshot().Experience) != 1 {
		t.Error("RemoveItem with a missing id must not remove anything")
	}
}

func TestUpdateExperienceMissingIDIsNoOp(t *testing.T) {
	s := newTestSession()
	id, _ := s.AddItem(SectionExperience)
	company := "Acme"
	s.UpdateExperience(id, ExperiencePatch{Company: &company})

	ghost := "Ghost Corp"
	s.UpdateExperience("no-such-id", ExperiencePatch{Company: &ghost})

	doc := s.Snapshot()
	if len(doc.Experience) != 1 || doc.Experience[0].Company != "Acme" {
		t.Errorf("Patch against a missing id must not change the document: %+v", doc.Experience)
	}
}

func TestUpdateExperiencePatchesOnlyProvidedFields(t *testing.T) {
	s := newTestSession()
	id, _ := s.AddItem(SectionExperience)

	company := "Acme"
	position := "Engineer"
	s.UpdateExperience(id, ExperiencePatch{Company: &company, Position: &position})

	newPosition := "Senior Engineer"
	s.UpdateExperience(id, ExperiencePatch{Position: &newPosition})

	e := s.Snapshot().ExperienceByID(id)
	if e.Company != "Acme" {
		t.Errorf("Untouched field changed: company = %q", e.Company)
	}
	if e.Position != "Senior Engineer" {
		t.Errorf("Patched field not applied: position = %q", e.Position)
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	s := newTestSession()
	summary := "A summary"
	s.Update(Partial{Summary: &summary})

	info := resume.PersonalInfo{FullName: "Jane Doe"}
	s.Update(Partial{PersonalInfo: &info})

	doc := s.Snapshot()
	if doc.Summary != "A summary" {
		t.Errorf("Summary lost by a later partial update: %q", doc.Summary)
	}
	if doc.PersonalInfo.FullName != "Jane Doe" {
		t.Errorf("PersonalInfo not applied: %+v", doc.PersonalInfo)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	s := newTestSession()
	s.SetSummary("something")

	if err := s.Reset(false); err == nil {
		t.Fatal("Expected unconfirmed reset to be refused")
	}
	if s.Snapshot().Summary != "something" {
		t.Error("Refused reset must not modify the document")
	}

	if err := s.Reset(true); err != nil {
		t.Fatalf("Confirmed reset failed: %v", err)
	}
	if !s.Snapshot().IsEmpty() {
		t.Error("Confirmed reset should leave an empty document")
	}
	if s.Step() != 0 {
		t.Errorf("Reset should rewind to step 0, got %d", s.Step())
	}
}

func TestOnChangeReceivesClones(t *testing.T) {
	s := newTestSession()

	var notified []*resume.Document
	s.OnChange(func(doc *resume.Document) {
		notified = append(notified, doc)
	})

	s.SetSummary("first")
	s.SetSummary("second")

	if len(notified) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(notified))
	}
	// Mutating the notified copy must not leak into the session.
	notified[1].Summary = "tampered"
	if s.Snapshot().Summary != "second" {
		t.Error("OnChange must hand out clones, not the live document")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newTestSession()
	s.SetSummary("original")

	snap := s.Snapshot()
	snap.Summary = "mutated"

	if s.Snapshot().Summary != "original" {
		t.Error("Mutating a snapshot must not change the session document")
	}
}
