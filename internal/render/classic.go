package render

import (
	"strings"

	"careerpro/internal/resume"
)

// ClassicTemplate is the traditional serif-style layout: centered uppercase
// name, pipe-separated contact line, underlined section headings, bulleted
// experience descriptions.
type ClassicTemplate struct{}

func (*ClassicTemplate) Name() string { return "classic" }

func (t *ClassicTemplate) Render(doc *resume.Document) string {
	var b strings.Builder
	info := doc.PersonalInfo

	name := info.FullName
	if name == "" {
		name = PlaceholderName
	}
	b.WriteString(strings.ToUpper(name) + "\n")
	if info.JobTitle != "" {
		b.WriteString(info.JobTitle + "\n")
	}
	if contact := joinPresent(" | ", info.Location, info.Phone, info.Email); contact != "" {
		b.WriteString(contact + "\n")
	}
	if links := joinPresent(" | ", info.LinkedIn, info.Website); links != "" {
		b.WriteString(links + "\n")
	}
	b.WriteString(strings.Repeat("-", 64) + "\n")

	if doc.Summary != "" {
		t.heading(&b, "PROFESSIONAL SUMMARY")
		b.WriteString(doc.Summary + "\n")
	}

	if len(doc.Experience) > 0 {
		t.heading(&b, "EXPERIENCE")
		for i, e := range doc.Experience {
			if i > 0 {
				b.WriteString("\n")
			}
			if line := joinPresent("  ", e.Company, e.Location); line != "" {
				b.WriteString(line + "\n")
			}
			if line := joinPresent("  ", e.Position, dateRange(e.StartDate, endDateOrPresent(e), " – ")); line != "" {
				b.WriteString(line + "\n")
			}
			for _, line := range bulletLines(e.Description, "• ") {
				b.WriteString(line + "\n")
			}
		}
	}

	if len(doc.Education) > 0 {
		t.heading(&b, "EDUCATION")
		for _, e := range doc.Education {
			if line := joinPresent("  ", e.School, e.Location); line != "" {
				b.WriteString(line + "\n")
			}
			if line := joinPresent("  ", joinPresent(" in ", e.Degree, e.Field), e.GraduationDate); line != "" {
				b.WriteString(line + "\n")
			}
		}
	}

	if len(doc.Skills) > 0 {
		t.heading(&b, "SKILLS")
		b.WriteString("Technical Skills: " + skillList(doc.Skills) + "\n")
	}

	if len(doc.Projects) > 0 {
		t.heading(&b, "PROJECTS")
		for _, p := range doc.Projects {
			if line := joinPresent("  ", p.Title, p.Link); line != "" {
				b.WriteString(line + "\n")
			}
			if p.Description != "" {
				b.WriteString(p.Description + "\n")
			}
		}
	}

	return b.String()
}

func (*ClassicTemplate) heading(b *strings.Builder, title string) {
	b.WriteString("\n" + title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}
