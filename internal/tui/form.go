package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"careerpro/internal/resume"
	"careerpro/internal/session"
)

// sectionForStep maps wizard steps 1..4 to their document section.
var sectionForStep = map[int]session.Section{
	1: session.SectionExperience,
	2: session.SectionEducation,
	3: session.SectionSkills,
	4: session.SectionProjects,
}

// enterStep rebuilds the widget state for the session's current step.
func (m *Model) enterStep() {
	m.err = nil
	m.editID = ""
	m.cursor = 0
	if m.sess.Step() == 0 {
		m.buildBasicsForm()
		m.mode = modeForm
		return
	}
	m.mode = modeList
}

func newInput(value, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.SetValue(value)
	return ti
}

func (m *Model) newBody(label, value, placeholder string) {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetHeight(5)
	if m.width > 0 {
		ta.SetWidth(min(m.width-4, 78))
	}
	ta.SetValue(value)
	m.body = ta
	m.bodyLabel = label
	m.hasBody = true
}

func (m *Model) buildBasicsForm() {
	doc := m.sess.Snapshot()
	info := doc.PersonalInfo
	m.labels = []string{"Full name", "Job title", "Email", "Phone", "Location", "Website", "LinkedIn"}
	m.inputs = []textinput.Model{
		newInput(info.FullName, "Jane Doe"),
		newInput(info.JobTitle, "Senior Software Engineer"),
		newInput(info.Email, "jane@example.com"),
		newInput(info.Phone, "+1 555 0100"),
		newInput(info.Location, "City, Country"),
		newInput(info.Website, "https://"),
		newInput(info.LinkedIn, "linkedin.com/in/"),
	}
	m.newBody("Summary", doc.Summary, "Professional summary, or ctrl+g to generate one")
	m.focusIndex = 0
}

func (m *Model) buildEntryForm(id string) {
	doc := m.sess.Snapshot()
	m.editID = id
	m.hasBody = false
	m.current = false

	switch sectionForStep[m.sess.Step()] {
	case session.SectionExperience:
		e := doc.ExperienceByID(id)
		if e == nil {
			e = &resume.Experience{}
		}
		m.labels = []string{"Company", "Position", "Location", "Start date", "End date"}
		m.inputs = []textinput.Model{
			newInput(e.Company, "Acme Corp"),
			newInput(e.Position, "Software Engineer"),
			newInput(e.Location, "Remote"),
			newInput(e.StartDate, "Jan 2021"),
			newInput(e.EndDate, "Dec 2023"),
		}
		m.current = e.Current
		m.newBody("Description", e.Description, "One achievement per line, or ctrl+o to optimize")

	case session.SectionEducation:
		var ed resume.Education
		for _, it := range doc.Education {
			if it.ID == id {
				ed = it
				break
			}
		}
		m.labels = []string{"School", "Degree", "Field", "Graduation date", "Location"}
		m.inputs = []textinput.Model{
			newInput(ed.School, "State University"),
			newInput(ed.Degree, "B.Sc."),
			newInput(ed.Field, "Computer Science"),
			newInput(ed.GraduationDate, "2019"),
			newInput(ed.Location, "City, Country"),
		}

	case session.SectionSkills:
		var sk resume.Skill
		for _, it := range doc.Skills {
			if it.ID == id {
				sk = it
				break
			}
		}
		m.labels = []string{"Skill", "Level"}
		m.inputs = []textinput.Model{
			newInput(sk.Name, "Go"),
			newInput(sk.Level, resume.DefaultSkillLevel),
		}

	case session.SectionProjects:
		var p resume.Project
		for _, it := range doc.Projects {
			if it.ID == id {
				p = it
				break
			}
		}
		m.labels = []string{"Title", "Link"}
		m.inputs = []textinput.Model{
			newInput(p.Title, "Side Project"),
			newInput(p.Link, "https://"),
		}
		m.newBody("Description", p.Description, "What it does and what you built it with")
	}

	m.focusIndex = 0
	m.mode = modeForm
}

// fieldCount is the number of focusable fields, textarea included.
func (m *Model) fieldCount() int {
	n := len(m.inputs)
	if m.hasBody {
		n++
	}
	return n
}

// focusCmd focuses the widget at focusIndex and blurs the rest.
func (m *Model) focusCmd() tea.Cmd {
	if m.mode != modeForm {
		return nil
	}
	var cmds []tea.Cmd
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds = append(cmds, m.inputs[i].Focus())
		} else {
			m.inputs[i].Blur()
		}
	}
	if m.hasBody {
		if m.focusIndex == len(m.inputs) {
			cmds = append(cmds, m.body.Focus())
		} else {
			m.body.Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.focusIndex++
		if m.focusIndex >= m.fieldCount() {
			m.focusIndex = 0
		}
		return m, m.focusCmd()
	case "shift+tab":
		m.focusIndex--
		if m.focusIndex < 0 {
			m.focusIndex = m.fieldCount() - 1
		}
		return m, m.focusCmd()
	case "ctrl+t":
		if m.editID != "" && sectionForStep[m.sess.Step()] == session.SectionExperience {
			m.current = !m.current
			return m, nil
		}
	case "esc":
		m.commitForm()
		if m.sess.Step() == 0 {
			m.status = "Changes staged for autosave"
			return m, nil
		}
		m.mode = modeList
		m.editID = ""
		return m, nil
	case keyEnter:
		// Enter advances through single-line fields; the textarea keeps
		// it for newlines.
		if m.focusIndex < len(m.inputs) {
			m.focusIndex++
			if m.focusIndex >= m.fieldCount() {
				m.focusIndex = 0
			}
			return m, m.focusCmd()
		}
	}

	var cmd tea.Cmd
	if m.focusIndex < len(m.inputs) {
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	} else if m.hasBody {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

// commitForm writes the form values back into the session. Unchanged
// summary and description fields are skipped so an open form does not
// invalidate its own in-flight rewrite.
func (m *Model) commitForm() {
	if m.mode != modeForm {
		return
	}
	doc := m.sess.Snapshot()

	if m.sess.Step() == 0 {
		m.sess.SetPersonalInfo(resume.PersonalInfo{
			FullName: m.inputs[0].Value(),
			JobTitle: m.inputs[1].Value(),
			Email:    m.inputs[2].Value(),
			Phone:    m.inputs[3].Value(),
			Location: m.inputs[4].Value(),
			Website:  m.inputs[5].Value(),
			LinkedIn: m.inputs[6].Value(),
		})
		if m.body.Value() != doc.Summary {
			m.sess.SetSummary(m.body.Value())
		}
		return
	}
	if m.editID == "" {
		return
	}

	switch sectionForStep[m.sess.Step()] {
	case session.SectionExperience:
		patch := session.ExperiencePatch{
			Company:   ptr(m.inputs[0].Value()),
			Position:  ptr(m.inputs[1].Value()),
			Location:  ptr(m.inputs[2].Value()),
			StartDate: ptr(m.inputs[3].Value()),
			EndDate:   ptr(m.inputs[4].Value()),
			Current:   ptr(m.current),
		}
		if e := doc.ExperienceByID(m.editID); e == nil || e.Description != m.body.Value() {
			patch.Description = ptr(m.body.Value())
		}
		m.sess.UpdateExperience(m.editID, patch)

	case session.SectionEducation:
		m.sess.UpdateEducation(m.editID, session.EducationPatch{
			School:         ptr(m.inputs[0].Value()),
			Degree:         ptr(m.inputs[1].Value()),
			Field:          ptr(m.inputs[2].Value()),
			GraduationDate: ptr(m.inputs[3].Value()),
			Location:       ptr(m.inputs[4].Value()),
		})

	case session.SectionSkills:
		m.sess.UpdateSkill(m.editID, session.SkillPatch{
			Name:  ptr(m.inputs[0].Value()),
			Level: ptr(m.inputs[1].Value()),
		})

	case session.SectionProjects:
		m.sess.UpdateProject(m.editID, session.ProjectPatch{
			Title:       ptr(m.inputs[0].Value()),
			Link:        ptr(m.inputs[1].Value()),
			Description: ptr(m.body.Value()),
		})
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	section := sectionForStep[m.sess.Step()]
	ids := m.entryIDs()

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case keyDown, "j":
		if m.cursor < len(ids)-1 {
			m.cursor++
		}
	case "left", "h":
		m.sess.PrevStep()
		m.enterStep()
		return m, m.focusCmd()
	case "right", "l":
		m.sess.NextStep()
		m.enterStep()
		return m, m.focusCmd()
	case "a":
		id, err := m.sess.AddItem(section)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.buildEntryForm(id)
		return m, m.focusCmd()
	case "d":
		if m.cursor < len(ids) {
			if err := m.sess.RemoveItem(section, ids[m.cursor]); err != nil {
				m.err = err
				return m, nil
			}
			if m.cursor > 0 {
				m.cursor--
			}
			m.err = nil
		}
	case keyEnter:
		if m.cursor < len(ids) {
			m.buildEntryForm(ids[m.cursor])
			return m, m.focusCmd()
		}
	}
	return m, nil
}

// entryIDs returns the IDs of the current step's section in display order.
func (m *Model) entryIDs() []string {
	doc := m.sess.Snapshot()
	var ids []string
	switch sectionForStep[m.sess.Step()] {
	case session.SectionExperience:
		for _, e := range doc.Experience {
			ids = append(ids, e.ID)
		}
	case session.SectionEducation:
		for _, e := range doc.Education {
			ids = append(ids, e.ID)
		}
	case session.SectionSkills:
		for _, s := range doc.Skills {
			ids = append(ids, s.ID)
		}
	case session.SectionProjects:
		for _, p := range doc.Projects {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// entryLabel builds the one-line list label for an entry.
func entryLabel(doc *resume.Document, section session.Section, id string) string {
	switch section {
	case session.SectionExperience:
		if e := doc.ExperienceByID(id); e != nil {
			return listLabel(e.Position, e.Company, "New experience entry")
		}
	case session.SectionEducation:
		for _, e := range doc.Education {
			if e.ID == id {
				return listLabel(e.Degree, e.School, "New education entry")
			}
		}
	case session.SectionSkills:
		for _, s := range doc.Skills {
			if s.ID == id {
				if s.Name == "" {
					return "New skill"
				}
				if s.Level == "" {
					return s.Name
				}
				return s.Name + " (" + s.Level + ")"
			}
		}
	case session.SectionProjects:
		for _, p := range doc.Projects {
			if p.ID == id {
				if p.Title == "" {
					return "New project"
				}
				return p.Title
			}
		}
	}
	return id
}

func listLabel(primary, secondary, fallback string) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(primary) != "" {
		parts = append(parts, primary)
	}
	if strings.TrimSpace(secondary) != "" {
		parts = append(parts, secondary)
	}
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, " at ")
}

func ptr[T any](v T) *T { return &v }
