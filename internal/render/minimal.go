package render

import (
	"strings"

	"careerpro/internal/resume"
)

// MinimalTemplate is the dense layout: dot-separated contact line, short
// headings, single-line entries, lists joined rather than itemized.
type MinimalTemplate struct{}

func (*MinimalTemplate) Name() string { return "minimal" }

func (*MinimalTemplate) Render(doc *resume.Document) string {
	var b strings.Builder
	info := doc.PersonalInfo

	name := info.FullName
	if name == "" {
		name = PlaceholderName
	}
	b.WriteString(name + "\n")
	if info.JobTitle != "" {
		b.WriteString(info.JobTitle + "\n")
	}
	if contact := joinPresent(" • ", info.Email, info.Phone, info.Location, info.Website, info.LinkedIn); contact != "" {
		b.WriteString(contact + "\n")
	}

	if doc.Summary != "" {
		b.WriteString("\nABOUT\n")
		b.WriteString(doc.Summary + "\n")
	}

	if len(doc.Experience) > 0 {
		b.WriteString("\nEXPERIENCE\n")
		for _, e := range doc.Experience {
			head := joinPresent(" — ", e.Position, e.Company)
			if dates := dateRange(e.StartDate, endDate(e), " - "); dates != "" {
				head = joinPresent("  ", head, dates)
			}
			if e.Location != "" {
				head = joinPresent("  ", head, e.Location)
			}
			if head != "" {
				b.WriteString(head + "\n")
			}
			if e.Description != "" {
				b.WriteString(strings.Join(bulletLines(e.Description, "- "), "\n") + "\n")
			}
		}
	}

	if len(doc.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, e := range doc.Education {
			line := joinPresent(", ", e.School, joinPresent(" in ", e.Degree, e.Field), e.GraduationDate, e.Location)
			if line != "" {
				b.WriteString(line + "\n")
			}
		}
	}

	if len(doc.Skills) > 0 {
		b.WriteString("\nSKILLS\n")
		b.WriteString(skillList(doc.Skills) + "\n")
	}

	if len(doc.Projects) > 0 {
		b.WriteString("\nPROJECTS\n")
		for _, p := range doc.Projects {
			line := joinPresent(" — ", joinPresent("  ", p.Title, p.Link), p.Description)
			if line != "" {
				b.WriteString(line + "\n")
			}
		}
	}

	return b.String()
}
