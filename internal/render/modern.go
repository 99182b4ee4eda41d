package render

import (
	"strings"

	"careerpro/internal/resume"
)

// ModernTemplate is the default layout: bold header with placeholders for
// the empty document, spaced sections, bulleted experience.
type ModernTemplate struct{}

func (*ModernTemplate) Name() string { return "modern" }

func (*ModernTemplate) Render(doc *resume.Document) string {
	var b strings.Builder
	info := doc.PersonalInfo

	name := info.FullName
	if name == "" {
		name = PlaceholderName
	}
	title := info.JobTitle
	if title == "" {
		title = PlaceholderTitle
	}

	b.WriteString(name + "\n")
	b.WriteString(title + "\n")
	if contact := joinPresent(" | ", info.Email, info.Phone, info.Location, info.Website, info.LinkedIn); contact != "" {
		b.WriteString(contact + "\n")
	}
	b.WriteString(strings.Repeat("=", 64) + "\n")

	if doc.Summary != "" {
		b.WriteString("\nPROFESSIONAL SUMMARY\n\n")
		b.WriteString(doc.Summary + "\n")
	}

	if len(doc.Experience) > 0 {
		b.WriteString("\nWORK EXPERIENCE\n")
		for _, e := range doc.Experience {
			b.WriteString("\n")
			b.WriteString(joinPresent(" — ", e.Position, e.Company) + "\n")
			meta := joinPresent("  ", dateRange(e.StartDate, endDateOrPresent(e), " — "), e.Location)
			if meta != "" {
				b.WriteString(meta + "\n")
			}
			for _, line := range bulletLines(e.Description, "  • ") {
				b.WriteString(line + "\n")
			}
		}
	}

	if len(doc.Projects) > 0 {
		b.WriteString("\nSELECTED PROJECTS\n")
		for _, p := range doc.Projects {
			b.WriteString("\n")
			b.WriteString(joinPresent("  ", p.Title, p.Link) + "\n")
			if p.Description != "" {
				b.WriteString(p.Description + "\n")
			}
		}
	}

	if len(doc.Skills) > 0 {
		b.WriteString("\nCORE SKILLS\n\n")
		b.WriteString(skillList(doc.Skills) + "\n")
	}

	if len(doc.Education) > 0 {
		b.WriteString("\nEDUCATION\n")
		for _, e := range doc.Education {
			b.WriteString("\n")
			b.WriteString(joinPresent(" in ", e.Degree, e.Field) + "\n")
			if line := joinPresent("  ", e.School, e.Location); line != "" {
				b.WriteString(line + "\n")
			}
			if e.GraduationDate != "" {
				b.WriteString(e.GraduationDate + "\n")
			}
		}
	}

	return b.String()
}
