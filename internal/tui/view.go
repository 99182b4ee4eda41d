package tui

import (
	"fmt"
	"strings"

	"careerpro/internal/resume"
	"careerpro/internal/session"
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("CareerPro Resume Builder"))
	b.WriteString("\n")
	b.WriteString(m.renderBreadcrumb())
	b.WriteString("\n\n")

	switch m.mode {
	case modeConfirmReset:
		b.WriteString(m.styles.Warning.Render("Reset the resume? This deletes everything."))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("y confirm, n cancel"))
	case modeForm:
		b.WriteString(m.renderForm())
	case modeList:
		b.WriteString(m.renderList())
	}

	if panel := m.renderAnalysis(); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Success.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m *Model) renderBreadcrumb() string {
	parts := make([]string, len(session.StepNames))
	for i, name := range session.StepNames {
		if i == m.sess.Step() {
			parts[i] = m.styles.Subtitle.Render(name)
		} else {
			parts[i] = m.styles.Muted.Render(name)
		}
	}
	return strings.Join(parts, m.styles.Muted.Render(" > "))
}

func (m *Model) renderForm() string {
	var b strings.Builder
	for i, label := range m.labels {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%-16s", label)))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.editID != "" && sectionForStep[m.sess.Step()] == session.SectionExperience {
		flag := "no"
		if m.current {
			flag = "yes"
		}
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%-16s", "Current")))
		b.WriteString(m.styles.Normal.Render(flag))
		b.WriteString(m.styles.Help.Render("  (ctrl+t toggles)"))
		b.WriteString("\n")
	}
	if m.hasBody {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.bodyLabel))
		b.WriteString("\n")
		b.WriteString(m.body.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderList() string {
	ids := m.entryIDs()
	if len(ids) == 0 {
		return m.styles.Muted.Render("No entries yet. Press a to add one.") + "\n"
	}

	doc := m.sess.Snapshot()
	section := sectionForStep[m.sess.Step()]
	var b strings.Builder
	for i, id := range ids {
		label := entryLabel(doc, section, id)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(" " + label + " "))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderAnalysis() string {
	analysis := m.sess.Analysis()
	if analysis == nil {
		return ""
	}

	scoreStyle := m.styles.Error
	switch {
	case analysis.Score >= 80:
		scoreStyle = m.styles.Success
	case analysis.Score >= 60:
		scoreStyle = m.styles.Warning
	}

	var b strings.Builder
	b.WriteString(m.styles.Subtitle.Render("ATS Readiness"))
	b.WriteString("  ")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%d/100", analysis.Score)))
	b.WriteString("\n")
	for _, fb := range analysis.Feedbacks {
		style := m.styles.Normal
		switch fb.Status {
		case resume.StatusGood:
			style = m.styles.Success
		case resume.StatusWarning:
			style = m.styles.Warning
		case resume.StatusCritical:
			style = m.styles.Error
		}
		b.WriteString(style.Render(fmt.Sprintf("[%s] %s", fb.Category, fb.Message)))
		b.WriteString("\n")
		if fb.Suggestion != "" {
			b.WriteString(m.styles.Muted.Render("  " + fb.Suggestion))
			b.WriteString("\n")
		}
	}
	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) helpLine() string {
	switch m.mode {
	case modeConfirmReset:
		return ""
	case modeForm:
		keys := []string{"tab next field"}
		if m.sess.Step() == 0 {
			keys = append(keys, "ctrl+g rewrite summary")
		} else if sectionForStep[m.sess.Step()] == session.SectionExperience {
			keys = append(keys, "ctrl+o optimize")
		}
		keys = append(keys, "esc done", "ctrl+n/ctrl+p step", "ctrl+r score", "ctrl+q quit")
		return strings.Join(keys, ", ")
	case modeList:
		return "a add, enter edit, d delete, arrows move, ctrl+r score, ctrl+x reset, ctrl+q quit"
	}
	return ""
}

func (m *Model) renderStatusBar() string {
	saved := "not saved yet"
	if !m.savedAt.IsZero() {
		saved = "saved " + m.savedAt.Format("15:04:05")
	}
	busy := ""
	if m.summaryBusy || m.bulletBusy != "" || m.scoreBusy {
		busy = "  working..."
	}
	return m.styles.StatusBar.Render(fmt.Sprintf("%s  %s%s", m.cfg.SnapshotPath(), saved, busy))
}
