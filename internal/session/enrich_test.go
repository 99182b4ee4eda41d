package session

import (
	"testing"

	"careerpro/internal/resume"
)

func TestBeginSummaryRewriteBlocksSecondRequest(t *testing.T) {
	s := newTestSession()

	ticket, err := s.BeginSummaryRewrite()
	if err != nil {
		t.Fatalf("First begin failed: %v", err)
	}

	if _, err := s.BeginSummaryRewrite(); err == nil {
		t.Error("Expected a second begin on the same target to be refused")
	}

	// Releasing the target allows a new request.
	s.Fail(ticket)
	if _, err := s.BeginSummaryRewrite(); err != nil {
		t.Errorf("Begin after Fail should succeed, got %v", err)
	}
}

func TestTicketCarriesSnapshotNotLiveDocument(t *testing.T) {
	s := newTestSession()
	s.SetSummary("before")

	ticket, err := s.BeginSummaryRewrite()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	ticket.Doc.Summary = "tampered"
	if s.Snapshot().Summary != "before" {
		t.Error("Ticket document must be a snapshot, not the live document")
	}
	s.Fail(ticket)
}

func TestApplySummary(t *testing.T) {
	s := newTestSession()

	ticket, err := s.BeginSummaryRewrite()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := s.ApplySummary(ticket, "rewritten"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if s.Snapshot().Summary != "rewritten" {
		t.Errorf("Summary not applied: %q", s.Snapshot().Summary)
	}
}

func TestStaleSummaryResultIsDropped(t *testing.T) {
	s := newTestSession()
	s.SetSummary("original")

	ticket, err := s.BeginSummaryRewrite()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	// The user edits the summary while the request is in flight.
	s.SetSummary("manual edit")

	if err := s.ApplySummary(ticket, "slow network result"); err == nil {
		t.Fatal("Expected the stale result to be rejected")
	}
	if got := s.Snapshot().Summary; got != "manual edit" {
		t.Errorf("Manual edit overwritten by stale result: %q", got)
	}
}

func TestStaleBulletResultIsDropped(t *testing.T) {
	s := newTestSession()
	id, _ := s.AddItem(SectionExperience)
	desc := "original description"
	s.UpdateExperience(id, ExperiencePatch{Description: &desc})

	ticket, err := s.BeginBulletRewrite(id)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	edited := "hand edited"
	s.UpdateExperience(id, ExperiencePatch{Description: &edited})

	if err := s.ApplyBullet(ticket, id, "late rewrite"); err == nil {
		t.Fatal("Expected the stale bullet result to be rejected")
	}
	if got := s.Snapshot().ExperienceByID(id).Description; got != "hand edited" {
		t.Errorf("Manual edit overwritten by stale result: %q", got)
	}
}

func TestBulletRewriteTargetsAreIndependent(t *testing.T) {
	s := newTestSession()
	id1, _ := s.AddItem(SectionExperience)
	id2, _ := s.AddItem(SectionExperience)

	t1, err := s.BeginBulletRewrite(id1)
	if err != nil {
		t.Fatalf("Begin on first entry failed: %v", err)
	}
	t2, err := s.BeginBulletRewrite(id2)
	if err != nil {
		t.Fatalf("Begin on second entry should not be blocked by the first: %v", err)
	}

	if err := s.ApplyBullet(t1, id1, "one"); err != nil {
		t.Errorf("Apply on first entry failed: %v", err)
	}
	if err := s.ApplyBullet(t2, id2, "two"); err != nil {
		t.Errorf("Apply on second entry failed: %v", err)
	}
}

func TestBeginBulletRewriteUnknownID(t *testing.T) {
	s := newTestSession()
	if _, err := s.BeginBulletRewrite("no-such-entry"); err == nil {
		t.Error("Expected begin on an unknown entry to fail immediately")
	}
}

func TestFailedScoreKeepsPreviousAnalysis(t *testing.T) {
	s := newTestSession()
	s.SetSummary("scored content")

	ticket, err := s.BeginScore()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := s.ApplyAnalysis(ticket, resume.AtsAnalysis{Score: 72}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// The next scoring attempt fails; the old analysis must survive.
	ticket2, err := s.BeginScore()
	if err != nil {
		t.Fatalf("Second begin failed: %v", err)
	}
	s.Fail(ticket2)

	analysis := s.Analysis()
	if analysis == nil || analysis.Score != 72 {
		t.Errorf("Previous analysis lost after a failed attempt: %+v", analysis)
	}
}

func TestApplyAnalysisClampsScore(t *testing.T) {
	s := newTestSession()

	ticket, err := s.BeginScore()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := s.ApplyAnalysis(ticket, resume.AtsAnalysis{Score: 140}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := s.Analysis().Score; got != 100 {
		t.Errorf("Expected score clamped to 100, got %d", got)
	}
}

func TestHydrateInvalidatesInFlightResults(t *testing.T) {
	s := newTestSession()
	s.SetSummary("before import")

	ticket, err := s.BeginSummaryRewrite()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}

	imported := resume.NewDocument()
	imported.Summary = "imported"
	s.Hydrate(imported)

	if err := s.ApplySummary(ticket, "stale rewrite"); err == nil {
		t.Fatal("Expected results from before an import to be rejected")
	}
	if got := s.Snapshot().Summary; got != "imported" {
		t.Errorf("Imported summary overwritten: %q", got)
	}
	if s.Analysis() != nil {
		t.Error("Hydrate should discard the previous analysis")
	}
}
