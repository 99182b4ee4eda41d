// Package session implements the form controller: the single source of
// truth for the resume document during an editing session. All mutation
// goes through the session; collaborators receive clones, never live
// references.
package session

import (
	"sync"

	"careerpro/internal/errors"
	"careerpro/internal/resume"
)

// Section names the four repeating sequences of the document.
type Section string

const (
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
)

// Session owns the document, the current ATS analysis snapshot, the wizard
// step index and the per-target enrichment bookkeeping. Safe for concurrent
// use: the editing surface and enrichment completions run on different
// goroutines.
type Session struct {
	mu       sync.Mutex
	doc      *resume.Document
	analysis *resume.AtsAnalysis
	step     int
	ids      resume.IDGenerator
	logger   *errors.Logger
	onChange func(*resume.Document)

	gens    map[string]uint64
	pending map[string]bool
}

// New creates a session around an existing document (hydrated from a
// snapshot) or a fresh one when doc is nil.
func New(doc *resume.Document, ids resume.IDGenerator, logger *errors.Logger) *Session {
	if doc == nil {
		doc = resume.NewDocument()
	} else {
		doc.Normalize()
	}
	if ids == nil {
		ids = resume.UUIDGenerator{}
	}
	return &Session{
		doc:     doc,
		ids:     ids,
		logger:  logger,
		gens:    make(map[string]uint64),
		pending: make(map[string]bool),
	}
}

// OnChange registers a callback invoked with a clone of the document after
// every mutation. Used to drive the debounced autosaver and live preview.
func (s *Session) OnChange(fn func(*resume.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns a deep copy of the current document.
func (s *Session) Snapshot() *resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Analysis returns a copy of the current ATS analysis, or nil when no
// analysis has completed yet.
func (s *Session) Analysis() *resume.AtsAnalysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return nil
	}
	c := *s.analysis
	c.Feedbacks = append([]resume.AtsFeedback(nil), s.analysis.Feedbacks...)
	return &c
}

// Partial is a shallow-merge update of top-level document fields. Only
// non-nil fields are applied; sequences replace wholesale.
type Partial struct {
	PersonalInfo *resume.PersonalInfo
	Summary      *string
	Experience   *[]resume.Experience
	Education    *[]resume.Education
	Skills       *[]resume.Skill
	Projects     *[]resume.Project
}

// Update merges the provided top-level fields into the document. It never
// fails; no constraint checking is performed.
func (s *Session) Update(p Partial) {
	s.mu.Lock()
	if p.PersonalInfo != nil {
		s.doc.PersonalInfo = *p.PersonalInfo
	}
	if p.Summary != nil {
		s.doc.Summary = *p.Summary
		s.gens[targetSummary]++
	}
	if p.Experience != nil {
		s.doc.Experience = append([]resume.Experience{}, (*p.Experience)...)
		for i := range s.doc.Experience {
			s.gens[targetBullet(s.doc.Experience[i].ID)]++
		}
	}
	if p.Education != nil {
		s.doc.Education = append([]resume.Education{}, (*p.Education)...)
	}
	if p.Skills != nil {
		s.doc.Skills = append([]resume.Skill{}, (*p.Skills)...)
	}
	if p.Projects != nil {
		s.doc.Projects = append([]resume.Project{}, (*p.Projects)...)
	}
	s.notifyLocked()
	s.mu.Unlock()
}

// AddItem appends a fresh entry with a newly generated id and default field
// values to the named section, returning the new id.
func (s *Session) AddItem(section Section) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.ids.NewID()
	switch section {
	case SectionExperience:
		s.doc.Experience = append(s.doc.Experience, resume.Experience{ID: id})
	case SectionEducation:
		s.doc.Education = append(s.doc.Education, resume.Education{ID: id})
	case SectionSkills:
		s.doc.Skills = append(s.doc.Skills, resume.Skill{ID: id, Level: resume.DefaultSkillLevel})
	case SectionProjects:
		s.doc.Projects = append(s.doc.Projects, resume.Project{ID: id})
	default:
		return "", errors.NewValidationError(errors.ErrCodeUnknownSection,
			"Unknown section: "+string(section), nil)
	}
	s.notifyLocked()
	return id, nil
}

// RemoveItem removes the entry with the matching id from the named section.
// A missing id is a no-op, not an error.
func (s *Session) RemoveItem(section Section, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch section {
	case SectionExperience:
		s.doc.Experience = removeByID(s.doc.Experience, id, func(e resume.Experience) string { return e.ID })
	case SectionEducation:
		s.doc.Education = removeByID(s.doc.Education, id, func(e resume.Education) string { return e.ID })
	case SectionSkills:
		s.doc.Skills = removeByID(s.doc.Skills, id, func(e resume.Skill) string { return e.ID })
	case SectionProjects:
		s.doc.Projects = removeByID(s.doc.Projects, id, func(e resume.Project) string { return e.ID })
	default:
		return errors.NewValidationError(errors.ErrCodeUnknownSection,
			"Unknown section: "+string(section), nil)
	}
	s.notifyLocked()
	return nil
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	for i := range items {
		if key(items[i]) == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// Reset replaces the document with a fresh empty one and discards any
// pending analysis. The confirmation flag is the destructive-action
// contract: without it the reset is refused.
func (s *Session) Reset(confirmed bool) error {
	if !confirmed {
		return errors.NewValidationError(errors.ErrCodeResetUnconfirmed,
			"Reset requires explicit confirmation", nil)
	}
	s.mu.Lock()
	s.doc = resume.NewDocument()
	s.analysis = nil
	s.step = 0
	// Invalidate every in-flight enrichment result.
	for k := range s.gens {
		s.gens[k]++
	}
	s.notifyLocked()
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Info("Session reset to empty document")
	}
	return nil
}

func (s *Session) notifyLocked() {
	if s.onChange != nil {
		s.onChange(s.doc.Clone())
	}
}
