package storage

import (
	"os"
	"path/filepath"
	"testing"

	"careerpro/internal/resume"
)

func testDoc() *resume.Document {
	doc := resume.NewDocument()
	doc.PersonalInfo.FullName = "Jane Doe"
	doc.Summary = "Engineer with a decade of backend experience"
	doc.Experience = append(doc.Experience, resume.Experience{
		ID:          "e1",
		Company:     "Acme",
		Position:    "Engineer",
		StartDate:   "Jan 2020",
		Current:     true,
		Description: "Built the billing pipeline\nCut costs by 30%",
	})
	doc.Skills = append(doc.Skills, resume.Skill{ID: "s1", Name: "Go", Level: "Expert"})
	return doc
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "resume.json")
	store := NewFileStore(path, nil)

	original := testDoc()
	if err := store.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected the saved snapshot to be found")
	}

	if loaded.PersonalInfo.FullName != original.PersonalInfo.FullName {
		t.Errorf("Name lost in round trip: %q", loaded.PersonalInfo.FullName)
	}
	if loaded.Summary != original.Summary {
		t.Errorf("Summary lost in round trip: %q", loaded.Summary)
	}
	if len(loaded.Experience) != 1 || loaded.Experience[0].Description != original.Experience[0].Description {
		t.Errorf("Experience lost in round trip: %+v", loaded.Experience)
	}
	if !loaded.Experience[0].Current {
		t.Error("Current flag lost in round trip")
	}
}

func TestLoadMissingSnapshotReportsAbsent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "resume.json"), nil)

	doc, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load of a missing snapshot should not error: %v", err)
	}
	if ok || doc != nil {
		t.Error("Expected a missing snapshot to be reported as absent")
	}
}

func TestLoadCorruptSnapshotReportsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	store := NewFileStore(path, nil)
	doc, ok, err := store.Load()
	if err != nil {
		t.Fatalf("A corrupt snapshot should degrade to absent, got error: %v", err)
	}
	if ok || doc != nil {
		t.Error("Expected a corrupt snapshot to be reported as absent")
	}

	// The damaged file must be kept for inspection.
	if _, statErr := os.Stat(path); statErr != nil {
		t.Error("Corrupt snapshot file should not be deleted")
	}
}

func TestSaveReplacesSnapshotWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	store := NewFileStore(path, nil)

	if err := store.Save(testDoc()); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	replacement := resume.NewDocument()
	replacement.Summary = "only a summary"
	if err := store.Save(replacement); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	loaded, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if len(loaded.Experience) != 0 {
		t.Error("A later save must replace the snapshot, not merge into it")
	}
	if loaded.Summary != "only a summary" {
		t.Errorf("Replacement content missing: %q", loaded.Summary)
	}
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	store := NewFileStore(path, nil)

	if err := store.Save(testDoc()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Error("Expected no snapshot after Clear")
	}

	// Clearing an already absent snapshot is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear of a missing snapshot should succeed: %v", err)
	}
}

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectError bool
	}{
		{
			name: "full snapshot",
			data: `{"personalInfo":{"fullName":"Jane"},"summary":"s","experience":[],"education":[],"skills":[],"projects":[]}`,
		},
		{
			name: "partial snapshot with one known key",
			data: `{"summary":"just a summary"}`,
		},
		{
			name:        "not JSON at all",
			data:        `this is not json`,
			expectError: true,
		},
		{
			name:        "JSON array",
			data:        `[1,2,3]`,
			expectError: true,
		},
		{
			name:        "JSON object without resume keys",
			data:        `{"not":"a resume"}`,
			expectError: true,
		},
		{
			name:        "known key with wrong shape",
			data:        `{"experience":"should be a list"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.data))
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected %q to be rejected", tt.data)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			// Decoded documents always come back normalized.
			if doc.Experience == nil || doc.Skills == nil {
				t.Error("Decoded document should have non-nil sections")
			}
		})
	}
}
