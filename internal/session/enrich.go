package session

import (
	"careerpro/internal/errors"
	"careerpro/internal/resume"
)

// Enrichment targets. Each target carries a generation counter bumped by
// every manual edit of the field it names; a completed enrichment result is
// applied only when its ticket generation still matches, so a slow network
// response never overwrites a field the user has since edited by hand.
const (
	targetSummary  = "summary"
	targetAnalysis = "ats"
)

func targetBullet(id string) string {
	return "bullet:" + id
}

// Ticket identifies one in-flight enrichment request: its target, the
// target's generation at request time, and a read-only document snapshot
// taken at the same moment.
type Ticket struct {
	target string
	gen    uint64

	// Doc is the snapshot to send to the enrichment service.
	Doc *resume.Document
}

func (s *Session) begin(target string) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending[target] {
		return Ticket{}, errors.NewValidationError(errors.ErrCodeEnrichPending,
			"An enrichment request for this field is already in flight", nil).
			WithContext("target", target)
	}
	s.pending[target] = true
	// Materialize the generation entry so wholesale invalidation (reset,
	// import) bumps this target even if it has never been edited.
	if _, ok := s.gens[target]; !ok {
		s.gens[target] = 0
	}
	return Ticket{
		target: target,
		gen:    s.gens[target],
		Doc:    s.doc.Clone(),
	}, nil
}

// BeginSummaryRewrite reserves the summary field for one outstanding
// rewrite request.
func (s *Session) BeginSummaryRewrite() (Ticket, error) {
	return s.begin(targetSummary)
}

// BeginBulletRewrite reserves the description of the experience entry
// matching id. Fails when the id is unknown so the caller gets an
// immediate error instead of a silent drop on completion.
func (s *Session) BeginBulletRewrite(id string) (Ticket, error) {
	s.mu.Lock()
	known := s.doc.ExperienceByID(id) != nil
	s.mu.Unlock()
	if !known {
		return Ticket{}, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"No experience entry with id "+id, nil)
	}
	return s.begin(targetBullet(id))
}

// BeginScore reserves the ATS analysis slot.
func (s *Session) BeginScore() (Ticket, error) {
	return s.begin(targetAnalysis)
}

// ApplySummary merges a completed summary rewrite. Returns a STALE_RESULT
// error when the summary was manually edited after the request was issued;
// the manual edit wins.
func (s *Session) ApplySummary(t Ticket, text string) error {
	return s.apply(t, func() {
		s.doc.Summary = text
		s.gens[targetSummary]++
	})
}

// ApplyBullet merges a completed description rewrite for the experience
// entry matching id. A removed entry or a superseding manual edit drops
// the result.
func (s *Session) ApplyBullet(t Ticket, id, text string) error {
	return s.apply(t, func() {
		if e := s.doc.ExperienceByID(id); e != nil {
			e.Description = text
			s.gens[targetBullet(id)]++
		}
	})
}

// ApplyAnalysis replaces the ATS analysis snapshot wholesale.
func (s *Session) ApplyAnalysis(t Ticket, a resume.AtsAnalysis) error {
	a.Score = resume.ClampScore(a.Score)
	return s.apply(t, func() {
		s.analysis = &a
	})
}

// Fail releases the target after a failed enrichment attempt. The field
// keeps its prior value; the prior analysis snapshot, if any, stays.
func (s *Session) Fail(t Ticket) {
	s.mu.Lock()
	delete(s.pending, t.target)
	s.mu.Unlock()
}

func (s *Session) apply(t Ticket, merge func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, t.target)
	if s.gens[t.target] != t.gen {
		if s.logger != nil {
			s.logger.Warn("Dropping stale enrichment result",
				"target", t.target,
				"request_generation", t.gen,
				"current_generation", s.gens[t.target])
		}
		return errors.NewInternalError(errors.ErrCodeStaleResult,
			"Enrichment result superseded by a manual edit", nil).
			WithContext("target", t.target)
	}
	merge()
	s.notifyLocked()
	return nil
}

// Hydrate replaces the document wholesale, as on import. The analysis is
// discarded along with every in-flight enrichment.
func (s *Session) Hydrate(doc *resume.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.Normalize()
	s.doc = doc.Clone()
	s.analysis = nil
	for k := range s.gens {
		s.gens[k]++
	}
	s.notifyLocked()
}
