package session

import "careerpro/internal/resume"

// ExperiencePatch carries the fields of an experience entry to shallow-merge.
// Nil fields are left untouched. The entry id itself is immutable.
type ExperiencePatch struct {
	Company     *string
	Position    *string
	Location    *string
	StartDate   *string
	EndDate     *string
	Current     *bool
	Description *string
}

// EducationPatch carries the fields of an education entry to shallow-merge.
type EducationPatch struct {
	School         *string
	Degree         *string
	Field          *string
	GraduationDate *string
	Location       *string
}

// SkillPatch carries the fields of a skill entry to shallow-merge.
type SkillPatch struct {
	Name  *string
	Level *string
}

// ProjectPatch carries the fields of a project entry to shallow-merge.
type ProjectPatch struct {
	Title       *string
	Link        *string
	Description *string
}

// UpdateExperience shallow-merges the patch into the entry matching id.
// A missing id is a no-op.
func (s *Session) UpdateExperience(id string, p ExperiencePatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.doc.ExperienceByID(id)
	if e == nil {
		return
	}
	setString(&e.Company, p.Company)
	setString(&e.Position, p.Position)
	setString(&e.Location, p.Location)
	setString(&e.StartDate, p.StartDate)
	setString(&e.EndDate, p.EndDate)
	if p.Current != nil {
		e.Current = *p.Current
	}
	if p.Description != nil {
		e.Description = *p.Description
		// A manual description edit supersedes any in-flight bullet rewrite.
		s.gens[targetBullet(id)]++
	}
	s.notifyLocked()
}

// UpdateEducation shallow-merges the patch into the entry matching id.
func (s *Session) UpdateEducation(id string, p EducationPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Education {
		if s.doc.Education[i].ID != id {
			continue
		}
		e := &s.doc.Education[i]
		setString(&e.School, p.School)
		setString(&e.Degree, p.Degree)
		setString(&e.Field, p.Field)
		setString(&e.GraduationDate, p.GraduationDate)
		setString(&e.Location, p.Location)
		s.notifyLocked()
		return
	}
}

// UpdateSkill shallow-merges the patch into the entry matching id.
func (s *Session) UpdateSkill(id string, p SkillPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Skills {
		if s.doc.Skills[i].ID != id {
			continue
		}
		setString(&s.doc.Skills[i].Name, p.Name)
		setString(&s.doc.Skills[i].Level, p.Level)
		s.notifyLocked()
		return
	}
}

// UpdateProject shallow-merges the patch into the entry matching id.
func (s *Session) UpdateProject(id string, p ProjectPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Projects {
		if s.doc.Projects[i].ID != id {
			continue
		}
		pr := &s.doc.Projects[i]
		setString(&pr.Title, p.Title)
		setString(&pr.Link, p.Link)
		setString(&pr.Description, p.Description)
		s.notifyLocked()
		return
	}
}

// SetSummary replaces the summary text. Manual edits supersede any
// in-flight summary rewrite.
func (s *Session) SetSummary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Summary = text
	s.gens[targetSummary]++
	s.notifyLocked()
}

// SetPersonalInfo replaces the personal info block.
func (s *Session) SetPersonalInfo(info resume.PersonalInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.PersonalInfo = info
	s.notifyLocked()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
