package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"careerpro/internal/ai"
	"careerpro/internal/resume"
	"careerpro/internal/session"
)

type summaryRewrittenMsg struct {
	ticket session.Ticket
	text   string
	usage  *ai.TokenUsage
	err    error
}

type bulletOptimizedMsg struct {
	ticket session.Ticket
	id     string
	text   string
	usage  *ai.TokenUsage
	err    error
}

type scoreCompletedMsg struct {
	ticket   session.Ticket
	analysis resume.AtsAnalysis
	usage    *ai.TokenUsage
	err      error
}

// startSummaryRewrite kicks off an AI summary rewrite against the current
// document. The form is committed first so the request sees the latest
// on-screen values.
func (m *Model) startSummaryRewrite() (tea.Model, tea.Cmd) {
	if m.summaryBusy {
		m.status = "Summary rewrite already running"
		return m, nil
	}
	m.commitForm()

	doc := m.sess.Snapshot()
	if len(doc.Experience) == 0 && len(doc.Skills) == 0 {
		m.err = nil
		m.status = "Add experience or skills before generating a summary"
		return m, nil
	}

	ticket, err := m.sess.BeginSummaryRewrite()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.summaryBusy = true
	m.err = nil
	m.status = "Rewriting summary..."

	opCfg := m.cfg.GetSummaryConfig()
	return m, func() tea.Msg {
		svc, err := ai.NewService(&opCfg, "summary", m.logger)
		if err != nil {
			return summaryRewrittenMsg{ticket: ticket, err: err}
		}
		defer func() { _ = svc.Close() }()
		text, usage, err := svc.Provider.RewriteSummary(m.ctx, ticket.Doc)
		return summaryRewrittenMsg{ticket: ticket, text: text, usage: usage, err: err}
	}
}

// startBulletRewrite kicks off an AI rewrite of one experience description:
// the open entry in form mode, the selected entry in list mode.
func (m *Model) startBulletRewrite() (tea.Model, tea.Cmd) {
	if sectionForStep[m.sess.Step()] != session.SectionExperience {
		m.status = "Bullet optimization works on experience entries"
		return m, nil
	}
	var id string
	switch m.mode {
	case modeForm:
		id = m.editID
	case modeList:
		if ids := m.entryIDs(); m.cursor < len(ids) {
			id = ids[m.cursor]
		}
	}
	if id == "" {
		m.status = "Select an experience entry first"
		return m, nil
	}
	if m.bulletBusy != "" {
		m.status = "Bullet optimization already running"
		return m, nil
	}
	m.commitForm()

	ticket, err := m.sess.BeginBulletRewrite(id)
	if err != nil {
		m.err = err
		return m, nil
	}
	entry := ticket.Doc.ExperienceByID(id)
	if entry == nil || entry.Description == "" {
		m.sess.Fail(ticket)
		m.status = "Write a description first, then optimize it"
		return m, nil
	}
	m.bulletBusy = id
	m.err = nil
	m.status = "Optimizing description..."

	opCfg := m.cfg.GetBulletConfig()
	description := entry.Description
	return m, func() tea.Msg {
		svc, err := ai.NewService(&opCfg, "bullet", m.logger)
		if err != nil {
			return bulletOptimizedMsg{ticket: ticket, id: id, err: err}
		}
		defer func() { _ = svc.Close() }()
		text, usage, err := svc.Provider.OptimizeBullet(m.ctx, description)
		return bulletOptimizedMsg{ticket: ticket, id: id, text: text, usage: usage, err: err}
	}
}

// startScore kicks off an ATS scoring run over the whole document.
func (m *Model) startScore() (tea.Model, tea.Cmd) {
	if m.scoreBusy {
		m.status = "Scoring already running"
		return m, nil
	}
	m.commitForm()

	if m.sess.Snapshot().IsEmpty() {
		m.status = "Nothing to score yet"
		return m, nil
	}

	ticket, err := m.sess.BeginScore()
	if err != nil {
		m.err = err
		return m, nil
	}
	m.scoreBusy = true
	m.err = nil
	m.status = "Scoring resume..."

	opCfg := m.cfg.GetAtsConfig()
	return m, func() tea.Msg {
		svc, err := ai.NewService(&opCfg, "ats", m.logger)
		if err != nil {
			return scoreCompletedMsg{ticket: ticket, err: err}
		}
		defer func() { _ = svc.Close() }()
		analysis, usage, err := svc.Provider.ScoreResume(m.ctx, ticket.Doc)
		return scoreCompletedMsg{ticket: ticket, analysis: analysis, usage: usage, err: err}
	}
}

func (m *Model) handleSummaryRewritten(msg summaryRewrittenMsg) (tea.Model, tea.Cmd) {
	m.summaryBusy = false
	if msg.err != nil {
		m.sess.Fail(msg.ticket)
		m.err = msg.err
		m.status = ""
		return m, nil
	}
	if err := m.sess.ApplySummary(msg.ticket, msg.text); err != nil {
		m.status = "Summary was edited meanwhile, rewrite discarded"
		return m, nil
	}
	m.logTokenUsage("summary", msg.usage)
	m.status = "Summary rewritten"
	// Refresh the on-screen field when the basics form is open.
	if m.sess.Step() == 0 && m.mode == modeForm {
		m.body.SetValue(msg.text)
	}
	return m, nil
}

func (m *Model) handleBulletOptimized(msg bulletOptimizedMsg) (tea.Model, tea.Cmd) {
	m.bulletBusy = ""
	if msg.err != nil {
		m.sess.Fail(msg.ticket)
		m.err = msg.err
		m.status = ""
		return m, nil
	}
	if err := m.sess.ApplyBullet(msg.ticket, msg.id, msg.text); err != nil {
		m.status = "Description was edited meanwhile, rewrite discarded"
		return m, nil
	}
	m.logTokenUsage("bullet", msg.usage)
	m.status = "Description optimized"
	if m.mode == modeForm && m.editID == msg.id {
		m.body.SetValue(msg.text)
	}
	return m, nil
}

func (m *Model) handleScoreCompleted(msg scoreCompletedMsg) (tea.Model, tea.Cmd) {
	m.scoreBusy = false
	if msg.err != nil {
		m.sess.Fail(msg.ticket)
		m.err = msg.err
		m.status = ""
		return m, nil
	}
	if err := m.sess.ApplyAnalysis(msg.ticket, msg.analysis); err != nil {
		m.status = "Resume changed meanwhile, score discarded"
		return m, nil
	}
	m.logTokenUsage("ats", msg.usage)
	m.status = "Resume scored"
	return m, nil
}

func (m *Model) logTokenUsage(operation string, usage *ai.TokenUsage) {
	if usage == nil || m.logger == nil {
		return
	}
	m.logger.Info("AI token usage",
		"operation", operation,
		"input_tokens", usage.InputTokens,
		"output_tokens", usage.OutputTokens,
		"total_tokens", usage.TotalTokens)
}
