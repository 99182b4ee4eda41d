// Package render maps a resume document to a plain-text visual document.
// Rendering is pure: no hidden state, no IO, and identical inputs always
// produce identical output.
package render

import (
	"fmt"
	"strings"

	"careerpro/internal/resume"
)

// Template renders a document in one visual style.
type Template interface {
	Name() string
	Render(doc *resume.Document) string
}

// Registry manages the available templates.
type Registry struct {
	templates map[string]Template
}

// NewRegistry creates a registry with the three built-in templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]Template)}
	r.Register(&ModernTemplate{})
	r.Register(&ClassicTemplate{})
	r.Register(&MinimalTemplate{})
	return r
}

// GlobalRegistry is the default registry used by the CLI and server.
var GlobalRegistry = NewRegistry()

// Register adds a template under its name.
func (r *Registry) Register(t Template) {
	r.templates[t.Name()] = t
}

// Render renders the document with the named template.
func (r *Registry) Render(doc *resume.Document, template string) (string, error) {
	t, ok := r.templates[template]
	if !ok {
		return "", fmt.Errorf("unknown template '%s'. Supported templates: %v",
			template, r.SupportedTemplates())
	}
	return t.Render(doc), nil
}

// SupportedTemplates returns the registered template names, sorted.
func (r *Registry) SupportedTemplates() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	// Stable order for error messages and shell completion.
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[j] < names[i] {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	return names
}

// Placeholder text shown in the header when the corresponding field is empty.
const (
	PlaceholderName  = "YOUR NAME"
	PlaceholderTitle = "JOB TITLE"
)

// endDate resolves the display text for an experience end date. A current
// position always reads "Present"; otherwise the free-text end date is
// rendered verbatim, including the empty string. The dense layout uses
// this directly.
func endDate(e resume.Experience) string {
	if e.Current {
		return "Present"
	}
	return e.EndDate
}

// endDateOrPresent resolves like endDate but substitutes "Present" for an
// empty end date. The modern and classic layouts use this.
func endDateOrPresent(e resume.Experience) string {
	if d := endDate(e); d != "" {
		return d
	}
	return "Present"
}

// dateRange joins start and end dates with the template's separator. When
// either side is empty the other is returned alone, with no dangling
// separator.
func dateRange(start, end, sep string) string {
	if start == "" {
		return end
	}
	if end == "" {
		return start
	}
	return start + sep + end
}

// bulletLines splits a description on newlines and re-applies a fresh
// bullet glyph per line. Any leading marker typed (or produced by a
// previous render) is stripped first so bullets never double up.
func bulletLines(description, glyph string) []string {
	if description == "" {
		return nil
	}
	raw := strings.Split(description, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimPrefix(strings.TrimSpace(line), "•")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, glyph+line)
	}
	return lines
}

// joinPresent joins the non-empty parts with sep.
func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

// skillLabel renders one skill, appending the level when set.
func skillLabel(s resume.Skill) string {
	if s.Level != "" {
		return s.Name + " (" + s.Level + ")"
	}
	return s.Name
}

// skillList joins all skills for dense templates.
func skillList(skills []resume.Skill) string {
	labels := make([]string, len(skills))
	for i, s := range skills {
		labels[i] = skillLabel(s)
	}
	return strings.Join(labels, ", ")
}
